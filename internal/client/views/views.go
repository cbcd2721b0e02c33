// Package views contains the per-feature view controllers. Each controller
// is a small state machine (idle → loading → success/error) coordinating
// the AI gateway with the per-user history store; the shell in cmd/client
// drives them and renders their state.
package views

import (
	"context"

	"github.com/ihangire/ihangire/internal/gemini"
	"github.com/ihangire/ihangire/internal/models"
)

// State is the lifecycle position of a view's most recent user action.
type State int

const (
	// StateIdle means no action has been triggered yet.
	StateIdle State = iota
	// StateLoading means a gateway call is in flight.
	StateLoading
	// StateSuccess means the last action completed.
	StateSuccess
	// StateError means the last action failed; the user may re-trigger.
	StateError
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Gateway is the slice of the AI backend the controllers consume.
type Gateway interface {
	// DiscoverIdeas returns ideas and citations for a location query.
	DiscoverIdeas(ctx context.Context, locationQuery string) (gemini.IdeaDiscovery, error)
	// AnalyzeIdea returns a sectioned markdown analysis of an idea.
	AnalyzeIdea(ctx context.Context, idea models.BusinessIdea) (string, error)
	// GenerateNames returns business name suggestions for a concept.
	GenerateNames(ctx context.Context, concept string) ([]string, error)
	// StreamChat delivers the advisor's reply as ordered text fragments.
	StreamChat(ctx context.Context, message string, onFragment func(string)) error
	// GenerateImage returns encoded JPEG bytes for a logo concept.
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// HistoryStore is the slice of the history service the controllers consume.
type HistoryStore interface {
	GetHistory(ctx context.Context, email string) models.AppHistory
	SaveIdea(ctx context.Context, idea models.BusinessIdea, email string) error
	SaveNameList(ctx context.Context, list models.SavedNameList, email string) error
	SaveChatHistory(ctx context.Context, messages []models.ChatMessage, email string) error
	IsIdeaSaved(ctx context.Context, idea models.BusinessIdea, email string) bool
}
