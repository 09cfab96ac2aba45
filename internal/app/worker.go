package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hrms/internal/config"
	"go-hrms/internal/leavebalance"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/messaging/kafka/producer"
	"go-hrms/internal/payroll"
	"go-hrms/internal/shared/calendar"
	"go-hrms/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunWorker relays the outbox to kafka and runs the scheduled jobs until
// SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, sqlDB, err := ConnectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Brokers, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	m, err := buildModules(sqlDB, gormDB, nil, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler, err := newScheduler(ctx, cfg.Payroll, m.leaveBalance, m.payroll, calendar.SystemClock, logger)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	go producer.ProcessOutboxEvents(
		ctx,
		kafka.NewOutboxRepository(sqlDB),
		kafkaWriter,
		logger,
		cfg.Payroll.OutboxPollInterval,
		cfg.Payroll.OutboxBatchSize,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

type yearResetter interface {
	ResetForYear(ctx context.Context, year int) (leavebalance.ResetResult, error)
}

type bulkRunner interface {
	GenerateBulk(ctx context.Context, req payroll.PeriodRequest) (payroll.BulkResult, error)
}

// newScheduler registers the yearly leave reset and the monthly bulk payroll
// run for the month that just ended.
func newScheduler(
	ctx context.Context,
	cfg config.PayrollConfig,
	balances yearResetter,
	runner bulkRunner,
	clock calendar.Clock,
	logger *zap.Logger,
) (*cron.Cron, error) {
	log := logger.Named("cron")
	c := cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.Recover(cronLogger{log})))

	if _, err := c.AddFunc(cfg.LeaveResetCron, func() {
		year := clock().UTC().Year()
		res, err := balances.ResetForYear(ctx, year)
		if err != nil {
			log.Error("yearly leave reset failed", zap.Int("year", year), zap.Error(err))
			return
		}
		log.Info("yearly leave reset finished", zap.Int("year", year), zap.Int("employees", res.Employees), zap.Int("balances", res.Rows))
	}); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(cfg.BulkRunCron, func() {
		year, month := calendar.PreviousMonth(clock())
		res, err := runner.GenerateBulk(ctx, payroll.PeriodRequest{Month: month, Year: year})
		if err != nil {
			log.Error("scheduled payroll run failed", zap.Int("month", month), zap.Int("year", year), zap.Error(err))
			return
		}
		log.Info("scheduled payroll run finished",
			zap.Int("month", month),
			zap.Int("year", year),
			zap.Int("generated", len(res.Generated)),
			zap.Int("failed", len(res.Failed)),
		)
	}); err != nil {
		return nil, err
	}

	return c, nil
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Infow(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().With(zap.Error(err)).Errorw(msg, keysAndValues...)
}
