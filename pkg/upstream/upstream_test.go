package upstream

import (
	"testing"
)

func TestResolveKind(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		want     Kind
	}{
		{name: "hmrag routes to retrieval", provider: "hmrag", want: KindRetrieval},
		{name: "ollama routes to generic", provider: "ollama", want: KindGeneric},
		{name: "empty routes to generic", provider: "", want: KindGeneric},
		{name: "unknown routes to generic", provider: "gpt4", want: KindGeneric},
		{name: "case sensitive", provider: "HMRAG", want: KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveKind(tt.provider); got != tt.want {
				t.Errorf("ResolveKind(%q) = %v, want %v", tt.provider, got, tt.want)
			}
		})
	}
}
