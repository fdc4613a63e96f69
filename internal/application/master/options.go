package master

import (
	"context"
	"time"

	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/infrastructure/cache"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/infrastructure/phone"
	"go.uber.org/zap"
)

// ErrInvalidSubtype is returned for a bucket subtype the collection does not have
var ErrInvalidSubtype = shared.NewDomainError("INVALID_SUBTYPE", "Unknown record type")

// WriteObserver is told about every successful create, replace and delete
type WriteObserver interface {
	ObserveWrite(collection, subtype, op string)
}

type serviceOptions struct {
	now      func() time.Time
	phones   *phone.Formatter
	observer WriteObserver
	locker   cache.Locker
	lockTTL  time.Duration
}

// Option configures the master record services
type Option func(*serviceOptions)

// WithClock sets the time source used for record timestamps
func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) {
		o.now = now
	}
}

// WithPhoneFormatter sets the formatter used for contact number display
func WithPhoneFormatter(f *phone.Formatter) Option {
	return func(o *serviceOptions) {
		o.phones = f
	}
}

// WithWriteObserver registers an observer for record writes
func WithWriteObserver(observer WriteObserver) Option {
	return func(o *serviceOptions) {
		o.observer = observer
	}
}

// WithLocker sets the lock used to serialize item code allocation and
// writes to one bucket. A process-local lock is used when none is given.
func WithLocker(locker cache.Locker, ttl time.Duration) Option {
	return func(o *serviceOptions) {
		o.locker = locker
		if ttl > 0 {
			o.lockTTL = ttl
		}
	}
}

func newServiceOptions(opts []Option) serviceOptions {
	o := serviceOptions{
		now:     time.Now,
		phones:  phone.NewFormatter(phone.DefaultRegion),
		lockTTL: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.locker == nil {
		o.locker = cache.NewLocalLocker()
	}
	return o
}

func (o serviceOptions) observe(collection, subtype, op string) {
	if o.observer != nil {
		o.observer.ObserveWrite(collection, subtype, op)
	}
}

// lockBucket serializes writes to one bucket so that a business key is checked
// and stored as one step. The returned function releases the lock.
func (o serviceOptions) lockBucket(ctx context.Context, collection, subtype string) (func(), error) {
	key := "bucket:" + collection + "/" + subtype
	release, err := o.locker.Obtain(ctx, key, o.lockTTL)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.L(ctx).Warn("Failed to release bucket lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}
