package views

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/ihangire/ihangire/internal/models"
)

const namesErrMsg = "Failed to generate names. Please try again."

// NamesController drives business-name generation, clipboard copying, and
// saving a generated batch to history.
type NamesController struct {
	gateway Gateway
	history HistoryStore
	log     *zap.Logger
	email   string

	state     State
	errMsg    string
	concept   string
	names     []string
	listSaved bool

	// writeClipboard is swapped out in tests; defaults to the system
	// clipboard.
	writeClipboard func(string) error
}

// NewNamesController constructs the controller for the given user.
func NewNamesController(gateway Gateway, history HistoryStore, email string, log *zap.Logger) *NamesController {
	return &NamesController{
		gateway:        gateway,
		history:        history,
		log:            log,
		email:          email,
		writeClipboard: clipboard.WriteAll,
	}
}

// Generate fetches name suggestions for concept, replacing any previous
// batch. The results are kept verbatim; de-duplication happens only when a
// batch is saved.
func (c *NamesController) Generate(ctx context.Context, concept string) {
	c.state = StateLoading
	c.errMsg = ""
	c.names = nil
	c.listSaved = false
	c.concept = concept

	names, err := c.gateway.GenerateNames(ctx, concept)
	if err != nil {
		c.log.Warn("name generation failed", zap.Error(err))
		c.state = StateError
		c.errMsg = namesErrMsg
		return
	}

	c.names = names
	c.state = StateSuccess
}

// SaveList stores the current batch in history. The second return value is
// true when a batch for the same concept was already saved (the stored
// batch wins and this call is a no-op).
func (c *NamesController) SaveList(ctx context.Context) (alreadySaved bool, err error) {
	if len(c.names) == 0 || c.concept == "" {
		return false, fmt.Errorf("nothing to save; generate names first")
	}

	for _, saved := range c.history.GetHistory(ctx, c.email).SavedNameLists {
		if saved.Concept == c.concept {
			c.listSaved = true
			return true, nil
		}
	}

	list := models.SavedNameList{Concept: c.concept, Names: c.names}
	if err := c.history.SaveNameList(ctx, list, c.email); err != nil {
		return false, err
	}
	c.listSaved = true
	return false, nil
}

// Copy places the name at index (1-based) on the system clipboard and
// returns it for feedback.
func (c *NamesController) Copy(index int) (string, error) {
	if index < 1 || index > len(c.names) {
		return "", fmt.Errorf("no name with number %d", index)
	}
	name := c.names[index-1]
	if err := c.writeClipboard(name); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	return name, nil
}

// State returns the generation action's state.
func (c *NamesController) State() State { return c.state }

// Err returns the user-facing message for the last failed generation.
func (c *NamesController) Err() string { return c.errMsg }

// Names returns the current batch.
func (c *NamesController) Names() []string { return c.names }

// ListSaved reports whether the current batch has been saved already.
func (c *NamesController) ListSaved() bool { return c.listSaved }
