package domain

import (
	"context"
	"time"
)

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn in a conversation with the text model
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// TextGenerator defines the interface for text completion collaborators.
// There is no contract on format compliance of the returned text; the
// parsers exist precisely because this contract is weak.
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Chat(ctx context.Context, messages []ChatMessage) (string, error)
}

// VisionAnalyzer defines the interface for image analysis collaborators
type VisionAnalyzer interface {
	AnalyzeImage(ctx context.Context, systemPrompt string, imageData []byte, mimeType string) (string, error)
}

// SearchResult is one hit from a video search
type SearchResult struct {
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Score float64 `json:"score"`
}

// VideoSearcher defines the interface for exercise video search collaborators
type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string) ([]SearchResult, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
