package views

import (
	"context"

	"go.uber.org/zap"

	"github.com/ihangire/ihangire/internal/gemini"
	"github.com/ihangire/ihangire/internal/models"
)

// mockGateway implements Gateway with per-operation function fields.
type mockGateway struct {
	DiscoverIdeasFunc func(ctx context.Context, locationQuery string) (gemini.IdeaDiscovery, error)
	AnalyzeIdeaFunc   func(ctx context.Context, idea models.BusinessIdea) (string, error)
	GenerateNamesFunc func(ctx context.Context, concept string) ([]string, error)
	StreamChatFunc    func(ctx context.Context, message string, onFragment func(string)) error
	GenerateImageFunc func(ctx context.Context, prompt string) ([]byte, error)
}

func (m *mockGateway) DiscoverIdeas(ctx context.Context, locationQuery string) (gemini.IdeaDiscovery, error) {
	return m.DiscoverIdeasFunc(ctx, locationQuery)
}

func (m *mockGateway) AnalyzeIdea(ctx context.Context, idea models.BusinessIdea) (string, error) {
	return m.AnalyzeIdeaFunc(ctx, idea)
}

func (m *mockGateway) GenerateNames(ctx context.Context, concept string) ([]string, error) {
	return m.GenerateNamesFunc(ctx, concept)
}

func (m *mockGateway) StreamChat(ctx context.Context, message string, onFragment func(string)) error {
	return m.StreamChatFunc(ctx, message, onFragment)
}

func (m *mockGateway) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	return m.GenerateImageFunc(ctx, prompt)
}

// memHistory is an in-memory HistoryStore mirroring the history service's
// de-duplication rules.
type memHistory struct {
	bundles map[string]models.AppHistory
	saveErr error
}

func newMemHistory() *memHistory {
	return &memHistory{bundles: make(map[string]models.AppHistory)}
}

func (m *memHistory) GetHistory(_ context.Context, email string) models.AppHistory {
	bundle, ok := m.bundles[email]
	if !ok {
		return models.EmptyHistory()
	}
	return bundle
}

func (m *memHistory) SaveIdea(ctx context.Context, idea models.BusinessIdea, email string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	bundle := m.GetHistory(ctx, email)
	for _, saved := range bundle.SavedIdeas {
		if saved.Equal(idea) {
			return nil
		}
	}
	bundle.SavedIdeas = append(bundle.SavedIdeas, idea)
	m.bundles[email] = bundle
	return nil
}

func (m *memHistory) SaveNameList(ctx context.Context, list models.SavedNameList, email string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	bundle := m.GetHistory(ctx, email)
	for _, saved := range bundle.SavedNameLists {
		if saved.Concept == list.Concept {
			return nil
		}
	}
	bundle.SavedNameLists = append(bundle.SavedNameLists, list)
	m.bundles[email] = bundle
	return nil
}

func (m *memHistory) SaveChatHistory(ctx context.Context, messages []models.ChatMessage, email string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	bundle := m.GetHistory(ctx, email)
	bundle.ChatHistory = messages
	m.bundles[email] = bundle
	return nil
}

func (m *memHistory) IsIdeaSaved(ctx context.Context, idea models.BusinessIdea, email string) bool {
	for _, saved := range m.GetHistory(ctx, email).SavedIdeas {
		if saved.Equal(idea) {
			return true
		}
	}
	return false
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
