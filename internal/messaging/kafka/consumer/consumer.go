package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/leavebalance"
	"go-hrms/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type BalanceSeeder interface {
	GetBalance(ctx context.Context, employeeID string, year int) ([]leavebalance.BalanceResponse, error)
}

// ConsumeEmployeeLifecycle materializes the current year's leave balances for
// every newly created employee. Reading the balance self-heals missing rows,
// so redelivered events are harmless.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	balances BalanceSeeder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if event.EventType != "" && event.EventType != events.EventEmployeeCreated {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		year := event.OccurredAt.UTC().Year()
		if event.OccurredAt.IsZero() {
			year = time.Now().UTC().Year()
		}

		rows, err := balances.GetBalance(ctx, event.EmployeeID, year)
		if err != nil {
			if isPermanent(err) {
				log.Warn("skipping employee_created event",
					zap.String("employee_id", event.EmployeeID),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("seed leave balances failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Int("year", year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("leave balances seeded from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.Int("year", year),
			zap.Int("balances", len(rows)),
		)
	}
}

// isPermanent reports errors that will not go away on redelivery.
func isPermanent(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.HTTPStatus < 500
}
