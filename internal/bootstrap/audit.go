package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// AuditLog is one operator-visible event: a submission reaching a terminal
// state, or the server starting/stopping.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// Terminal submission outcomes recorded by the service.
const (
	AuditSubmissionDelivered      = "SUBMISSION_DELIVERED"
	AuditSubmissionRejected       = "SUBMISSION_REJECTED"
	AuditSubmissionDispatchFailed = "SUBMISSION_DISPATCH_FAILED"
	AuditServerShutdown           = "SERVER_SHUTDOWN"
)

type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
