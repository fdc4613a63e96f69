// Package models contains the GORM persistence models that map to database
// tables. Domain types carry no GORM tags; repositories convert between the
// two at the persistence boundary.
//
// Every master and document record shares one table, records, keyed by
// (collection, subtype, record_id) with the record body stored as JSON.
package models
