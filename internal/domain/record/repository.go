package record

import (
	"context"
	"strings"
	"time"
)

// Entry is a decoded record of type T together with its address
type Entry[T any] struct {
	ID        string    `json:"id"`
	Subtype   string    `json:"subtype"`
	Value     T         `json:"value"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Repository is a typed view over one collection of the Store.
// Records that cannot be decoded into T are skipped by FindAll and reported
// as errors by FindByID.
type Repository[T any] interface {
	Collection() string
	FindAll(ctx context.Context, subtype string) ([]Entry[T], error)
	FindByID(ctx context.Context, subtype, id string) (*Entry[T], error)
	Create(ctx context.Context, subtype string, value T) (*Entry[T], error)
	Replace(ctx context.Context, subtype, id string, value T) (*Entry[T], error)
	Delete(ctx context.Context, subtype, id string) error
	Refresh(ctx context.Context, subtype string) error
}

// FindByKey returns the first entry other than exceptID whose key equals
// value, ignoring case and surrounding space. A blank value never matches.
func FindByKey[T any](entries []Entry[T], key func(*T) string, value, exceptID string) *Entry[T] {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for i := range entries {
		if entries[i].ID == exceptID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key(&entries[i].Value)), value) {
			return &entries[i]
		}
	}
	return nil
}
