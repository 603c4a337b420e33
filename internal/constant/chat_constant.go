package constant

import "time"

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Provider discriminator accepted on the wire. Anything else routes to
	// the generic inference provider.
	ProviderHMRAG = "hmrag"

	DefaultChatModel = "gemma3:1b"
	DefaultLanguage  = "fr"
	DefaultUserKey   = "default"

	// Placeholder replies when an upstream returns a payload without the
	// expected answer field.
	NoAnswerHMRAG  = "(aucune réponse HM-RAG)"
	NoAnswerOllama = "(aucune réponse Ollama)"

	// Error tags surfaced to the caller on upstream failure.
	ErrTagHMRAG  = "HM-RAG unreachable"
	ErrTagOllama = "Ollama unreachable"

	// Bound for a single upstream call. Exceeding it is treated the same as
	// any other upstream failure.
	UpstreamTimeout = 30 * time.Second
)

// SystemPrompts selects the canned therapist prompt per language. Unrecognized
// languages degrade to an empty system prompt, never an error.
var SystemPrompts = map[string]string{
	"fr": "[Réponds UNIQUEMENT en français] Tu es un psychologue bienveillant. Écoute attentivement, pose des questions ouvertes et propose des pistes concrètes sans jamais poser de diagnostic médical.",
	"en": "[Respond ONLY in English] You are a kind therapist. Listen carefully, ask open questions and suggest concrete next steps without ever giving a medical diagnosis.",
	"ar": "[أجب باللغة العربية فقط] أنت أخصائي نفسي طيب. استمع باهتمام واطرح أسئلة مفتوحة واقترح خطوات عملية دون تقديم تشخيص طبي.",
}
