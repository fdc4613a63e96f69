package models

import (
	"time"

	"github.com/erp/mfgdesk/internal/domain/record"
)

// RecordModel is the persistence model of a single record
type RecordModel struct {
	Collection string    `gorm:"column:collection;primaryKey;size:64"`
	Subtype    string    `gorm:"column:subtype;primaryKey;size:64"`
	RecordID   string    `gorm:"column:record_id;primaryKey;size:64"`
	Payload    string    `gorm:"column:payload;not null"`
	Version    int64     `gorm:"column:version;not null;default:1"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;index"`
}

// TableName returns the table name for GORM
func (RecordModel) TableName() string {
	return "records"
}

// Path returns the record path of the model
func (m *RecordModel) Path() record.Path {
	return record.Path{Collection: m.Collection, Subtype: m.Subtype, ID: m.RecordID}
}

// RecordModelFromPath creates a model addressed at p with an encoded payload
func RecordModelFromPath(p record.Path, payload string) *RecordModel {
	return &RecordModel{
		Collection: p.Collection,
		Subtype:    p.Subtype,
		RecordID:   p.ID,
		Payload:    payload,
		Version:    1,
	}
}
