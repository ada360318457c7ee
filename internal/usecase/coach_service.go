package usecase

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gymcoach/backend/internal/domain"
)

// maxMessageLength caps chat messages, in characters
const maxMessageLength = 2000

// CoachService runs the conversational coaching endpoint over a single
// process-wide conversation buffer. The buffer is the only state; calls
// are serialized so turns stay in order.
type CoachService struct {
	textGen domain.TextGenerator

	mu      sync.Mutex
	history []domain.ChatMessage
}

// NewCoachService creates a coaching chat service
func NewCoachService(textGen domain.TextGenerator) *CoachService {
	return &CoachService{textGen: textGen}
}

// Chat validates the message, runs one conversation turn and returns
// the coach's reply
func (s *CoachService) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return "", domain.ErrMessageTooLong
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		s.history = append(s.history, domain.ChatMessage{
			Role:    domain.RoleSystem,
			Content: coachSystemPrompt,
		})
	}

	messages := append(append([]domain.ChatMessage(nil), s.history...), domain.ChatMessage{
		Role:    domain.RoleUser,
		Content: message,
	})

	reply, err := s.textGen.Chat(ctx, messages)
	if err != nil {
		return "", err
	}

	s.history = append(s.history,
		domain.ChatMessage{Role: domain.RoleUser, Content: message},
		domain.ChatMessage{Role: domain.RoleAssistant, Content: reply},
	)

	return reply, nil
}

// Reset clears the conversation buffer
func (s *CoachService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// HistoryLength reports the number of buffered turns, including the
// system prompt
func (s *CoachService) HistoryLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}
