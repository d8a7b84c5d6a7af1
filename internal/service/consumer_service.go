package service

import (
	"context"
	"encoding/json"

	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService records every catalog mutation in the audit log. Events
// arrive after their write was persisted, so the log reflects durable state.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event events.CatalogChangedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Warn("consumer", "failed to unmarshal catalog event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("consumer", "catalog changed", map[string]interface{}{
		"action":      event.Action,
		"slug":        event.Slug,
		"occurred_at": event.OccurredAt,
	})
	msg.Ack()
}
