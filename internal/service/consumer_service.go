package service

import (
	"context"
	"encoding/json"

	"translator-ai-be/internal/dto"
	"translator-ai-be/internal/pkg/logger"
	"translator-ai-be/pkg/embedding"
	"translator-ai-be/pkg/events"
	pktNats "translator-ai-be/pkg/nats"
	"translator-ai-be/pkg/pipeline"
	"translator-ai-be/pkg/vectorindex"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	embeddingProvider embedding.Provider
	index             vectorindex.Index
	natsPub           *pktNats.Publisher
	sysLogger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	embeddingProvider embedding.Provider,
	index vectorindex.Index,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		embeddingProvider: embeddingProvider,
		index:             index,
		natsPub:           natsPub,
		sysLogger:         sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedPhraseMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLogger.Error("consumer_service", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages would never succeed on retry
		return
	}

	records := make([]vectorindex.Record, 0, len(payload.Phrases))
	for _, phrase := range payload.Phrases {
		res, err := cs.embeddingProvider.Generate(ctx, phrase.Text)
		if err != nil {
			cs.sysLogger.Error("consumer_service", "failed to embed phrase", map[string]interface{}{
				"text":  phrase.Text,
				"error": err.Error(),
			})
			msg.Nack()
			return
		}
		if res == nil || len(res.Values) == 0 {
			cs.sysLogger.Error("consumer_service", "embedding provider returned no vector", map[string]interface{}{
				"text": phrase.Text,
			})
			msg.Nack()
			return
		}

		id := phrase.Id
		if id == "" {
			id = uuid.NewString()
		}

		meta := pipeline.RecordMetadata{
			Lang:            phrase.Lang,
			Text:            phrase.Text,
			Translation:     phrase.Translation,
			Pinyin:          phrase.Pinyin,
			PairID:          phrase.PairId,
			ContextExamples: phrase.ContextExamples,
		}

		records = append(records, vectorindex.Record{
			ID:       id,
			Values:   res.Values,
			Metadata: meta.ToMap(),
		})
	}

	if len(records) > 0 {
		if err := cs.index.Upsert(ctx, records); err != nil {
			cs.sysLogger.Error("consumer_service", "failed to upsert phrase embeddings", map[string]interface{}{
				"count": len(records),
				"error": err.Error(),
			})
			msg.Nack()
			return
		}
	}

	cs.sysLogger.Info("consumer_service", "phrase batch ingested", map[string]interface{}{
		"count": len(records),
	})

	if cs.natsPub != nil {
		if err := cs.natsPub.Publish(ctx, events.PhrasesIngested(len(records))); err != nil {
			cs.sysLogger.Warn("consumer_service", "failed to publish ingest event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
