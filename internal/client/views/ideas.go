package views

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ihangire/ihangire/internal/models"
)

// User-facing error messages for the ideas view.
const (
	ideasErrMsg    = "Failed to fetch business ideas. Please try again."
	analysisErrMsg = "Failed to get analysis. Please try again."
)

// IdeasController drives idea discovery, deep-dive analysis, and saving
// ideas to history. Search and analysis are separate user actions and keep
// separate states.
type IdeasController struct {
	gateway Gateway
	history HistoryStore
	log     *zap.Logger
	email   string

	state   State
	errMsg  string
	ideas   []models.BusinessIdea
	sources []models.GroundingSource

	analysisState State
}

// NewIdeasController constructs the controller for the given user.
func NewIdeasController(gateway Gateway, history HistoryStore, email string, log *zap.Logger) *IdeasController {
	return &IdeasController{
		gateway: gateway,
		history: history,
		log:     log,
		email:   email,
	}
}

// Search fetches ideas for the given location query, replacing any previous
// results. On failure the previous results are cleared and the view shows a
// retry-eligible error.
func (c *IdeasController) Search(ctx context.Context, locationQuery string) {
	c.state = StateLoading
	c.errMsg = ""
	c.ideas = nil
	c.sources = nil

	result, err := c.gateway.DiscoverIdeas(ctx, locationQuery)
	if err != nil {
		c.log.Warn("idea discovery failed", zap.Error(err))
		c.state = StateError
		c.errMsg = ideasErrMsg
		return
	}

	c.ideas = result.Ideas
	c.sources = result.Sources
	c.state = StateSuccess
}

// Analyze fetches the deep-dive analysis for the idea at index (1-based,
// matching the numbered shell listing).
func (c *IdeasController) Analyze(ctx context.Context, index int) (string, error) {
	idea, err := c.ideaAt(index)
	if err != nil {
		return "", err
	}

	c.analysisState = StateLoading
	analysis, err := c.gateway.AnalyzeIdea(ctx, idea)
	if err != nil {
		c.log.Warn("idea analysis failed", zap.Error(err))
		c.analysisState = StateError
		return "", fmt.Errorf("%s", analysisErrMsg)
	}
	c.analysisState = StateSuccess
	return analysis, nil
}

// Save stores the idea at index in the user's history. The second return
// value is true when an identical idea was already saved and the call was a
// no-op.
func (c *IdeasController) Save(ctx context.Context, index int) (alreadySaved bool, err error) {
	idea, err := c.ideaAt(index)
	if err != nil {
		return false, err
	}
	if c.history.IsIdeaSaved(ctx, idea, c.email) {
		return true, nil
	}
	return false, c.history.SaveIdea(ctx, idea, c.email)
}

// IsSaved reports whether the idea at index is already in history.
func (c *IdeasController) IsSaved(ctx context.Context, index int) bool {
	idea, err := c.ideaAt(index)
	if err != nil {
		return false
	}
	return c.history.IsIdeaSaved(ctx, idea, c.email)
}

func (c *IdeasController) ideaAt(index int) (models.BusinessIdea, error) {
	if index < 1 || index > len(c.ideas) {
		return models.BusinessIdea{}, fmt.Errorf("no idea with number %d", index)
	}
	return c.ideas[index-1], nil
}

// State returns the search action's state.
func (c *IdeasController) State() State { return c.state }

// AnalysisState returns the analysis action's state.
func (c *IdeasController) AnalysisState() State { return c.analysisState }

// Err returns the user-facing message for the last failed search.
func (c *IdeasController) Err() string { return c.errMsg }

// Ideas returns the ideas from the last successful search.
func (c *IdeasController) Ideas() []models.BusinessIdea { return c.ideas }

// Sources returns the citations from the last successful search.
func (c *IdeasController) Sources() []models.GroundingSource { return c.sources }
