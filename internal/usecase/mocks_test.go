package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/gymcoach/backend/internal/domain"
)

// MockTextGenerator is a mock implementation of domain.TextGenerator
type MockTextGenerator struct {
	mu            sync.Mutex
	response      string
	err           error
	completeCalls int
	chatCalls     int
	lastSystem    string
	lastPrompt    string
	lastMessages  []domain.ChatMessage
}

func (m *MockTextGenerator) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completeCalls++
	m.lastSystem = systemPrompt
	m.lastPrompt = userPrompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *MockTextGenerator) Chat(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatCalls++
	m.lastMessages = append([]domain.ChatMessage(nil), messages...)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// MockVideoSearcher is a mock implementation of domain.VideoSearcher
type MockVideoSearcher struct {
	mu      sync.Mutex
	results []domain.SearchResult
	err     error
	calls   int
	queries []string
}

func (m *MockVideoSearcher) SearchVideos(ctx context.Context, query string) ([]domain.SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *MockVideoSearcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockVisionAnalyzer is a mock implementation of domain.VisionAnalyzer
type MockVisionAnalyzer struct {
	response  string
	err       error
	lastImage []byte
	lastMime  string
}

func (m *MockVisionAnalyzer) AnalyzeImage(ctx context.Context, systemPrompt string, imageData []byte, mimeType string) (string, error) {
	m.lastImage = imageData
	m.lastMime = mimeType
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{data: make(map[string]string)}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return "", domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func testProfile() *domain.UserProfile {
	return &domain.UserProfile{
		PrimaryGoal:         domain.GoalBuildMuscle,
		WeightKg:            80,
		HeightCm:            180,
		IsMeatEater:         true,
		IsLactoseIntolerant: false,
		Allergies:           []string{"peanuts"},
		EatingStyle:         domain.EatingStyleBalanced,
		CaffeineConsumption: domain.ConsumptionOccasionally,
		SugarConsumption:    domain.ConsumptionRegularly,
	}
}
