package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/events"
)

// StartAuditWorker subscribes an audit-trail logger to all record mutations.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	w := &auditWorker{logger: logger.Named("audit")}
	dispatcher.Subscribe(events.EventEmployeeCreated, w.handle)
	dispatcher.Subscribe(events.EventEmployeeUpdated, w.handle)
	dispatcher.Subscribe(events.EventEmployeeDeleted, w.handle)
	dispatcher.Subscribe(events.EventDepartmentCreated, w.handle)
}

type auditWorker struct {
	logger *zap.Logger
}

func (w *auditWorker) handle(_ context.Context, event events.Event) error {
	w.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("entity_id", event.EntityID),
		zap.String("actor_id", event.ActorID),
		zap.Time("timestamp", event.Timestamp),
		zap.Any("payload", event.Payload),
	)
	return nil
}
