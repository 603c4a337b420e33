package service

import (
	"context"
	"time"

	"psybot-be/internal/constant"
	"psybot-be/internal/dto"
	"psybot-be/internal/pkg/logger"
	"psybot-be/internal/repository/memory"
	"psybot-be/internal/repository/specification"
	"psybot-be/internal/repository/unitofwork"
	"psybot-be/pkg/events"
	"psybot-be/pkg/store"
	"psybot-be/pkg/upstream"
)

// IChatService is the provider-routing core of the proxy.
type IChatService interface {
	SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	GetHistory(ctx context.Context) ([]*dto.ChatRecordResponse, error)
}

type chatService struct {
	uowFactory    unitofwork.RepositoryFactory
	conversations *memory.ConversationRepository
	retrieval     upstream.Adapter
	generic       upstream.Adapter
	publisher     IPublisherService
	logger        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	conversations *memory.ConversationRepository,
	retrieval upstream.Adapter,
	generic upstream.Adapter,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:    uowFactory,
		conversations: conversations,
		retrieval:     retrieval,
		generic:       generic,
		publisher:     publisher,
		logger:        sysLogger,
	}
}

// normalize produces a fully-populated upstream request from the raw body.
// All field defaulting lives here; adapters never see a missing field.
func (cs *chatService) normalize(request *dto.ChatRequest) (*upstream.Request, upstream.Kind, string) {
	req := &upstream.Request{
		Message:  request.Message,
		History:  request.History,
		Language: request.Language,
		Model:    request.Model,
		Params:   request.Params,
	}
	if req.Model == "" {
		req.Model = constant.DefaultChatModel
	}
	if req.Language == "" {
		req.Language = constant.DefaultLanguage
	}
	if req.History == nil {
		req.History = []store.Turn{}
	}
	if req.Params == nil {
		req.Params = map[string]interface{}{}
	}

	userKey := request.UserId
	if userKey == "" {
		userKey = constant.DefaultUserKey
	}

	return req, upstream.ResolveKind(request.Provider), userKey
}

func (cs *chatService) SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	now := time.Now()

	req, kind, userKey := cs.normalize(request)

	// Lazily created per-user conversation; lastActivity touched every call.
	conv := cs.conversations.GetOrCreate(userKey, now)

	cs.logger.Info("chat", "dispatching chat request", map[string]interface{}{
		"provider": request.Provider,
		"model":    req.Model,
		"language": req.Language,
		"user_key": userKey,
	})

	// Exactly one adapter per request.
	adapter := cs.generic
	if kind == upstream.KindRetrieval {
		adapter = cs.retrieval
	}

	callCtx, cancel := context.WithTimeout(ctx, constant.UpstreamTimeout)
	defer cancel()

	reply, err := adapter.Handle(callCtx, req)
	if err != nil {
		// No record is written for a failed exchange.
		cs.logger.Error("chat", "upstream call failed", map[string]interface{}{
			"error":    err.Error(),
			"user_key": userKey,
		})
		return nil, err
	}

	conv.Append(constant.ChatMessageRoleAssistant, reply.Text)
	cs.conversations.Save(conv)

	// Fire-and-forget durable record. A publish failure must not fail the
	// reply the user already has.
	if err := cs.publisher.PublishChatRecorded(&events.ChatRecorded{
		Message:   req.Message,
		Reply:     reply.Text,
		Model:     req.Model,
		Language:  req.Language,
		Citations: reply.Citations,
		Timestamp: now,
	}); err != nil {
		cs.logger.Warn("chat", "failed to publish chat record", map[string]interface{}{
			"error": err.Error(),
		})
	}

	resp := &dto.ChatResponse{Reply: reply.Text}
	if kind == upstream.KindRetrieval {
		resp.Citations = reply.Citations
		if resp.Citations == nil {
			resp.Citations = []upstream.Citation{}
		}
	}
	return resp, nil
}

func (cs *chatService) GetHistory(ctx context.Context) ([]*dto.ChatRecordResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.ChatRecordRepository().FindAll(ctx,
		specification.OrderBy{Field: "timestamp", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ChatRecordResponse, 0, len(records))
	for _, r := range records {
		response = append(response, &dto.ChatRecordResponse{
			Message:   r.Message,
			Reply:     r.Reply,
			Model:     r.Model,
			Language:  r.Language,
			Citations: r.Citations,
			Timestamp: r.Timestamp,
		})
	}

	return response, nil
}
