package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"psybot-be/internal/entity"
	"psybot-be/internal/pkg/logger"
	"psybot-be/internal/repository/unitofwork"
	"psybot-be/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the write side of the persistence sink: it drains
// chat-recorded events and turns each into one chats row.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     sysLogger,
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
	var payload events.ChatRecorded
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("persistence", "failed to unmarshal chat record event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	record := &entity.ChatRecord{
		Id:        uuid.New(),
		Message:   payload.Message,
		Reply:     payload.Reply,
		Model:     payload.Model,
		Language:  payload.Language,
		Citations: payload.Citations,
		Timestamp: payload.Timestamp,
	}

	if err := uow.ChatRecordRepository().Create(ctx, record); err != nil {
		// The user already has the reply; the failed write is logged and
		// nacked for a retry.
		cs.logger.Error("persistence", "failed to write chat record", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
