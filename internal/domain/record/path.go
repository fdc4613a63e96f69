// Package record defines how master and document records are addressed and
// stored: every record lives at <collection>/<subtype>/<id>, and a bucket
// <collection>/<subtype> is read and cached as a whole.
package record

import (
	"strings"

	"github.com/erp/mfgdesk/internal/domain/shared"
)

// ErrInvalidPath is returned for paths that do not have the expected segments
var ErrInvalidPath = shared.NewDomainError("INVALID_PATH", "Invalid record path")

// Bucket addresses every record of one subtype inside a collection
type Bucket struct {
	Collection string
	Subtype    string
}

// NewBucket returns the bucket collection/subtype
func NewBucket(collection, subtype string) Bucket {
	return Bucket{Collection: collection, Subtype: subtype}
}

// ParseBucket parses "<collection>/<subtype>"
func ParseBucket(s string) (Bucket, error) {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) != 2 || !validSegment(parts[0]) || !validSegment(parts[1]) {
		return Bucket{}, ErrInvalidPath
	}
	return Bucket{Collection: parts[0], Subtype: parts[1]}, nil
}

func (b Bucket) String() string {
	return b.Collection + "/" + b.Subtype
}

// IsValid reports whether both segments are set and contain no separators
func (b Bucket) IsValid() bool {
	return validSegment(b.Collection) && validSegment(b.Subtype)
}

// Path returns the path of record id inside the bucket
func (b Bucket) Path(id string) Path {
	return Path{Collection: b.Collection, Subtype: b.Subtype, ID: id}
}

// Path addresses a single record
type Path struct {
	Collection string
	Subtype    string
	ID         string
}

// ParsePath parses "<collection>/<subtype>/<id>"
func ParsePath(s string) (Path, error) {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) != 3 {
		return Path{}, ErrInvalidPath
	}
	p := Path{Collection: parts[0], Subtype: parts[1], ID: parts[2]}
	if !p.IsValid() {
		return Path{}, ErrInvalidPath
	}
	return p, nil
}

func (p Path) String() string {
	return p.Collection + "/" + p.Subtype + "/" + p.ID
}

// Bucket returns the bucket holding the record
func (p Path) Bucket() Bucket {
	return Bucket{Collection: p.Collection, Subtype: p.Subtype}
}

// IsValid reports whether all three segments are set
func (p Path) IsValid() bool {
	return p.Bucket().IsValid() && validSegment(p.ID)
}

func validSegment(s string) bool {
	return s != "" && strings.TrimSpace(s) == s && !strings.ContainsAny(s, "/.#$[]")
}
