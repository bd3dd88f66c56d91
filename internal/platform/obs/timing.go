package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a child context carrying the request correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the correlation id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of the operation name when the returned func is called.
// Usage: defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string, attrs ...string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	extra := ""
	for i := 0; i+1 < len(attrs); i += 2 {
		extra += " " + attrs[i] + "=" + attrs[i+1]
	}

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s%s dur=%dms err=%v", reqID, name, extra, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s%s dur=%dms", reqID, name, extra, dur.Milliseconds())
	}
}
