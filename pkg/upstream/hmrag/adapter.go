package hmrag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"psybot-be/internal/constant"
	"psybot-be/pkg/store"
	"psybot-be/pkg/upstream"
)

// Adapter talks to the HM-RAG retrieval service.
type Adapter struct {
	BaseURL string
	Client  *http.Client
}

var _ upstream.Adapter = &Adapter{}

func NewAdapter(baseURL string) *Adapter {
	return &Adapter{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: constant.UpstreamTimeout,
		},
	}
}

// --- Request/Response structs (internal to this package) ---

type chatRequest struct {
	Message string                 `json:"message"`
	History []store.Turn           `json:"history"`
	Params  map[string]interface{} `json:"params"`
}

type chatResponse struct {
	Answer    string              `json:"answer"`
	Citations []upstream.Citation `json:"citations"`
}

func (a *Adapter) Handle(ctx context.Context, req *upstream.Request) (*upstream.Reply, error) {
	history := req.History
	if history == nil {
		history = []store.Turn{}
	}
	params := req.Params
	if params == nil {
		params = map[string]interface{}{}
	}

	payloadBytes, err := json.Marshal(chatRequest{
		Message: req.Message,
		History: history,
		Params:  params,
	})
	if err != nil {
		return nil, &upstream.Error{Tag: constant.ErrTagHMRAG, Err: fmt.Errorf("marshal request: %w", err)}
	}

	url := a.BaseURL + "/chat"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, &upstream.Error{Tag: constant.ErrTagHMRAG, Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(httpReq)
	if err != nil {
		return nil, &upstream.Error{Tag: constant.ErrTagHMRAG, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &upstream.Error{Tag: constant.ErrTagHMRAG, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &upstream.Error{
			Tag: constant.ErrTagHMRAG,
			Err: fmt.Errorf("status %d, body: %s", resp.StatusCode, string(bodyBytes)),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return nil, &upstream.Error{Tag: constant.ErrTagHMRAG, Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	reply := chatResp.Answer
	if reply == "" {
		reply = constant.NoAnswerHMRAG
	}
	citations := chatResp.Citations
	if citations == nil {
		citations = []upstream.Citation{}
	}

	return &upstream.Reply{Text: reply, Citations: citations}, nil
}

// WithTimeout overrides the default client timeout, mainly for tests.
func (a *Adapter) WithTimeout(d time.Duration) *Adapter {
	a.Client.Timeout = d
	return a
}
