package views

import (
	"context"

	"github.com/ihangire/ihangire/internal/models"
)

// HistoryController drives the history browsing view. It is a pure reader:
// the bundle is re-fetched on every load so it reflects saves made by the
// other views since.
type HistoryController struct {
	history HistoryStore
	email   string
}

// NewHistoryController constructs the controller for the given user.
func NewHistoryController(history HistoryStore, email string) *HistoryController {
	return &HistoryController{history: history, email: email}
}

// Load returns the user's current history bundle.
func (c *HistoryController) Load(ctx context.Context) models.AppHistory {
	return c.history.GetHistory(ctx, c.email)
}
