package consumer

import (
	"context"
	"encoding/json"

	"go-hrms/internal/events"
	"go-hrms/internal/payroll"

	"go.uber.org/zap"
)

type PayrollRunner interface {
	GenerateBulk(ctx context.Context, req payroll.PeriodRequest) (payroll.BulkResult, error)
}

// ConsumePayrollRunRequested executes queued bulk payroll runs one at a time.
func ConsumePayrollRunRequested(
	ctx context.Context,
	reader MessageReader,
	runner PayrollRunner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_run")
	log.Info("payroll run consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll run consumer stopped")
				return
			}
			log.Error("fetch payroll run message failed", zap.Error(err))
			continue
		}

		var event events.PayrollRunRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll run event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		result, err := runner.GenerateBulk(ctx, payroll.PeriodRequest{Month: event.Month, Year: event.Year})
		if err != nil {
			if isPermanent(err) {
				log.Warn("skipping payroll run event",
					zap.String("run_id", event.RunID),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("bulk payroll run failed",
				zap.String("run_id", event.RunID),
				zap.Int("month", event.Month),
				zap.Int("year", event.Year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll run message failed", zap.Error(err))
			continue
		}

		log.Info("payroll run completed",
			zap.String("run_id", event.RunID),
			zap.String("requested_by", event.RequestedBy),
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
			zap.Int("generated", len(result.Generated)),
			zap.Int("failed", len(result.Failed)),
		)
	}
}
