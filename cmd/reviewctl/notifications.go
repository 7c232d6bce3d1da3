package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RazanRezq/jadara-sub002/internal/config"
	"github.com/RazanRezq/jadara-sub002/internal/logger"
	"github.com/RazanRezq/jadara-sub002/internal/notification"
	"github.com/RazanRezq/jadara-sub002/internal/queue"
)

func tailNotificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tail-notifications",
		Short: "Log broadcast events from the notification queue until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.RabbitMQURL == "" {
				return fmt.Errorf("RABBITMQ_URL is not set")
			}
			log := logger.New(cfg.LogLevel, cfg.LogFormat)

			mq, err := queue.NewRabbitMQ(cfg.RabbitMQURL, cfg.NotificationQueue, log)
			if err != nil {
				return err
			}
			defer mq.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.WithField("queue", cfg.NotificationQueue).Info("Waiting for broadcast events")
			return mq.Consume(ctx, func(m queue.Message) error {
				return logBroadcast(log, m)
			})
		},
	}
}

func logBroadcast(log logrus.FieldLogger, m queue.Message) error {
	if m.Type != notification.BroadcastEventType {
		log.WithField("type", m.Type).Debug("Skipping unknown event")
		return nil
	}
	var msg notification.BroadcastMessage
	if err := m.Decode(&msg); err != nil {
		return fmt.Errorf("failed to decode broadcast: %w", err)
	}
	log.WithFields(logrus.Fields{
		"type":       msg.Type,
		"related_id": msg.RelatedID,
		"actor_id":   msg.ActorID,
		"recipients": len(msg.Recipients),
		"link":       msg.Link,
	}).Info(msg.Title)
	return nil
}
