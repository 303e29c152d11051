package service

import (
	"context"
	"encoding/json"

	"translator-ai-be/internal/dto"
	"translator-ai-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService enqueues phrase batches for asynchronous embedding.
type IPublisherService interface {
	PublishEmbedPhrases(ctx context.Context, phrases []dto.PhraseDTO) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sysLogger logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		sysLogger: sysLogger,
	}
}

func (ps *publisherService) PublishEmbedPhrases(ctx context.Context, phrases []dto.PhraseDTO) error {
	payload, err := json.Marshal(dto.PublishEmbedPhraseMessage{Phrases: phrases})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		ps.sysLogger.Error("publisher_service", "failed to publish embed-phrases message", map[string]interface{}{
			"topic": ps.topicName,
			"error": err.Error(),
		})
		return err
	}

	ps.sysLogger.Info("publisher_service", "enqueued phrase batch for embedding", map[string]interface{}{
		"topic": ps.topicName,
		"count": len(phrases),
	})
	return nil
}
