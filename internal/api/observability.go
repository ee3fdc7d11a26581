package api

import (
	"go.uber.org/zap"
)

// RequestEvent records metadata about a single API request.
type RequestEvent struct {
	Method    string
	Path      string
	Status    int
	LatencyMs int64
	RequestID string
	Err       string
}

// Observer receives events about API requests for logging and metrics.
type Observer interface {
	OnRequestComplete(event RequestEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnRequestComplete(RequestEvent) {}

// ZapObserver writes request events to a zap logger.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver creates an Observer that logs events to log.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnRequestComplete(event RequestEvent) {
	fields := []zap.Field{
		zap.String("method", event.Method),
		zap.String("path", event.Path),
		zap.Int("status", event.Status),
		zap.Int64("latency_ms", event.LatencyMs),
		zap.String("request_id", event.RequestID),
	}
	if event.Err != "" {
		o.log.Warn("api_request", append(fields, zap.String("error", event.Err))...)
		return
	}
	o.log.Info("api_request", fields...)
}
