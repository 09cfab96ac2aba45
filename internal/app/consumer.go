package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-hrms/internal/config"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer seeds leave balances for new employees and executes queued
// payroll runs until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := ConnectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	m, err := buildModules(sqlDB, gormDB, nil, logger)
	if err != nil {
		return err
	}

	lifecycleReader := newReader(cfg, events.EmployeeLifecycleTopic, "leave-balance")
	defer lifecycleReader.Close()

	runReader := newReader(cfg, events.PayrollRunRequestedTopic, "payroll-run")
	defer runReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, m.leaveBalance, logger)
	go consumer.ConsumePayrollRunRequested(ctx, runReader, m.payroll, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}

func newReader(cfg *config.Config, topic, suffix string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          topic,
		GroupID:        cfg.Kafka.GroupID + "-" + suffix,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}
