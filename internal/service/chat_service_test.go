package service

import (
	"context"
	"errors"
	"testing"

	"psybot-be/internal/constant"
	"psybot-be/internal/dto"
	"psybot-be/internal/repository/memory"
	"psybot-be/pkg/events"
	"psybot-be/pkg/upstream"

	"github.com/stretchr/testify/assert"
)

type fakeAdapter struct {
	calls   int
	lastReq *upstream.Request
	reply   *upstream.Reply
	err     error
}

func (f *fakeAdapter) Handle(ctx context.Context, req *upstream.Request) (*upstream.Reply, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

type fakePublisher struct {
	published []*events.ChatRecorded
	err       error
}

func (f *fakePublisher) PublishChatRecorded(event *events.ChatRecorded) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, event)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestChatService(retrieval, generic upstream.Adapter, publisher IPublisherService) IChatService {
	return NewChatService(
		nil, // unit of work only backs GetHistory
		memory.NewConversationRepository(),
		retrieval,
		generic,
		publisher,
		noopLogger{},
	)
}

func TestSendChatRoutesExclusively(t *testing.T) {
	tests := []struct {
		name          string
		provider      string
		wantRetrieval int
		wantGeneric   int
	}{
		{name: "hmrag only hits retrieval", provider: "hmrag", wantRetrieval: 1, wantGeneric: 0},
		{name: "unset only hits generic", provider: "", wantRetrieval: 0, wantGeneric: 1},
		{name: "unknown only hits generic", provider: "mistral", wantRetrieval: 0, wantGeneric: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieval := &fakeAdapter{reply: &upstream.Reply{Text: "ok"}}
			generic := &fakeAdapter{reply: &upstream.Reply{Text: "ok"}}
			svc := newTestChatService(retrieval, generic, &fakePublisher{})

			_, err := svc.SendChat(context.Background(), &dto.ChatRequest{
				Provider: tt.provider,
				Message:  "bonjour",
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRetrieval, retrieval.calls)
			assert.Equal(t, tt.wantGeneric, generic.calls)
		})
	}
}

func TestSendChatAppliesDefaults(t *testing.T) {
	generic := &fakeAdapter{reply: &upstream.Reply{Text: "ok"}}
	svc := newTestChatService(&fakeAdapter{}, generic, &fakePublisher{})

	_, err := svc.SendChat(context.Background(), &dto.ChatRequest{Message: "bonjour"})

	assert.NoError(t, err)
	assert.Equal(t, constant.DefaultLanguage, generic.lastReq.Language)
	assert.Equal(t, constant.DefaultChatModel, generic.lastReq.Model)
	assert.NotNil(t, generic.lastReq.History)
	assert.NotNil(t, generic.lastReq.Params)
}

func TestSendChatUpstreamFailureWritesNoRecord(t *testing.T) {
	upErr := &upstream.Error{Tag: constant.ErrTagOllama, Err: errors.New("dial tcp: timeout")}
	generic := &fakeAdapter{err: upErr}
	publisher := &fakePublisher{}
	svc := newTestChatService(&fakeAdapter{}, generic, publisher)

	resp, err := svc.SendChat(context.Background(), &dto.ChatRequest{Message: "bonjour"})

	assert.Nil(t, resp)
	var ue *upstream.Error
	assert.True(t, errors.As(err, &ue))
	assert.Equal(t, constant.ErrTagOllama, ue.Tag)
	assert.Empty(t, publisher.published)
}

func TestSendChatPublishesRecordOnSuccess(t *testing.T) {
	retrieval := &fakeAdapter{reply: &upstream.Reply{
		Text:      "Bonjour, comment puis-je vous aider ?",
		Citations: []upstream.Citation{{Score: 0.9, Snippet: "extrait"}},
	}}
	publisher := &fakePublisher{}
	svc := newTestChatService(retrieval, &fakeAdapter{}, publisher)

	resp, err := svc.SendChat(context.Background(), &dto.ChatRequest{
		Provider: "hmrag",
		Message:  "bonjour",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bonjour, comment puis-je vous aider ?", resp.Reply)
	assert.Equal(t, []upstream.Citation{{Score: 0.9, Snippet: "extrait"}}, resp.Citations)

	assert.Len(t, publisher.published, 1)
	record := publisher.published[0]
	assert.Equal(t, "bonjour", record.Message)
	assert.Equal(t, resp.Reply, record.Reply)
	assert.Equal(t, constant.DefaultChatModel, record.Model)
	assert.Equal(t, constant.DefaultLanguage, record.Language)
}

func TestSendChatPublishFailureDoesNotFailReply(t *testing.T) {
	generic := &fakeAdapter{reply: &upstream.Reply{Text: "ok"}}
	publisher := &fakePublisher{err: errors.New("bus closed")}
	svc := newTestChatService(&fakeAdapter{}, generic, publisher)

	resp, err := svc.SendChat(context.Background(), &dto.ChatRequest{Message: "bonjour"})

	assert.NoError(t, err)
	assert.Equal(t, "ok", resp.Reply)
}

func TestSendChatCitationsOnlyForRetrieval(t *testing.T) {
	generic := &fakeAdapter{reply: &upstream.Reply{Text: "ok"}}
	svc := newTestChatService(&fakeAdapter{}, generic, &fakePublisher{})

	resp, err := svc.SendChat(context.Background(), &dto.ChatRequest{Message: "bonjour"})

	assert.NoError(t, err)
	assert.Nil(t, resp.Citations)
}

func TestSendChatRetrievalNilCitationsBecomeEmpty(t *testing.T) {
	retrieval := &fakeAdapter{reply: &upstream.Reply{Text: "ok", Citations: nil}}
	svc := newTestChatService(retrieval, &fakeAdapter{}, &fakePublisher{})

	resp, err := svc.SendChat(context.Background(), &dto.ChatRequest{Provider: "hmrag", Message: "bonjour"})

	assert.NoError(t, err)
	assert.Equal(t, []upstream.Citation{}, resp.Citations)
}
