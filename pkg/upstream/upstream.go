package upstream

import (
	"context"
	"fmt"

	"psybot-be/internal/constant"
	"psybot-be/pkg/store"
)

// Kind is the closed set of upstream providers. The wire-level provider
// string is resolved into a Kind exactly once, at the router boundary.
type Kind int

const (
	KindRetrieval Kind = iota // HM-RAG answer + citations
	KindGeneric               // OpenAI-compatible chat completion
)

// ResolveKind maps the wire provider hint to a Kind. Unset or unknown values
// route to the generic provider, never an error.
func ResolveKind(provider string) Kind {
	if provider == constant.ProviderHMRAG {
		return KindRetrieval
	}
	return KindGeneric
}

// Request is the fully-populated request handed to an adapter. All defaulting
// has already happened by the time an adapter sees one.
type Request struct {
	Message  string
	History  []store.Turn
	Language string
	Model    string
	Params   map[string]interface{}
}

// Citation is a scored snippet supporting a retrieval answer.
type Citation struct {
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet"`
}

// Reply is the normalized result of one upstream call.
type Reply struct {
	Text      string
	Citations []Citation
}

// Adapter translates a normalized request into one provider-specific call.
type Adapter interface {
	Handle(ctx context.Context, req *Request) (*Reply, error)
}

// Error wraps an upstream failure with the short tag surfaced to the caller.
type Error struct {
	Tag string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Tag, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
