package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/mfgdesk/internal/domain/shared"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer used for service spans
const TracerName = "mfgdesk"

// Span attribute keys shared by the services
const (
	AttrCollection = "record.collection"
	AttrSubtype    = "record.subtype"
	AttrRecordID   = "record.id"
	AttrResultSize = "result.size"
)

// StartServiceSpan starts an internal span named "{service}.{method}".
// Pass the returned span to EndSpan.
//
//	ctx, span := telemetry.StartServiceSpan(ctx, "party", "create", telemetry.AttrSubtype, subtype)
//	defer func() { telemetry.EndSpan(span, err) }()
func StartServiceSpan(ctx context.Context, service, method string, keyValues ...any) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, service+"."+method,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(Attributes(keyValues...)...),
	)
}

// EndSpan records err on the span and ends it. Validation failures are
// client errors and leave the span status unset.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		var fieldErrs shared.FieldErrors
		var domainErr *shared.DomainError
		switch {
		case errors.As(err, &fieldErrs):
			span.SetAttributes(attribute.Int("validation.failures", len(fieldErrs)))
		case errors.As(err, &domainErr):
			span.SetAttributes(attribute.String("error.code", domainErr.Code))
		default:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}

// Attributes converts alternating key/value pairs; non-string keys are skipped
func Attributes(keyValues ...any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(keyValues)/2)
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		attrs = append(attrs, toAttribute(key, keyValues[i+1]))
	}
	return attrs
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
