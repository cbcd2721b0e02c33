package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ihangire/ihangire/internal/models"
)

// historyKeyPrefix prefixes the per-user history key in the local store.
const historyKeyPrefix = "ihangire_history_"

// historyKey derives the storage key for a user's history bundle.
func historyKey(email string) string {
	return historyKeyPrefix + email
}

// HistoryService owns the persisted per-user history bundle: saved ideas,
// saved name lists, and the chat transcript. Reads never fail — corrupt or
// missing data degrades to empty defaults. Writes that fail are logged and
// reported to the caller but must not crash anything.
type HistoryService struct {
	kv  KVStore
	log *zap.Logger
}

// NewHistoryService constructs a HistoryService over the given store.
func NewHistoryService(kv KVStore, log *zap.Logger) *HistoryService {
	return &HistoryService{kv: kv, log: log}
}

// GetHistory returns the history bundle for email. A user with no prior
// data, or with unparseable stored data, gets an empty bundle; a stored
// bundle missing a sub-field gets that field defaulted to empty.
func (s *HistoryService) GetHistory(ctx context.Context, email string) models.AppHistory {
	raw, ok, err := s.kv.Get(ctx, historyKey(email))
	if err != nil {
		s.log.Warn("failed to read history", zap.String("email", email), zap.Error(err))
		return models.EmptyHistory()
	}
	if !ok {
		return models.EmptyHistory()
	}

	var history models.AppHistory
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		s.log.Warn("corrupt history, degrading to empty", zap.String("email", email), zap.Error(err))
		return models.EmptyHistory()
	}

	// Any sub-field missing from the stored JSON defaults to empty.
	if history.SavedIdeas == nil {
		history.SavedIdeas = []models.BusinessIdea{}
	}
	if history.SavedNameLists == nil {
		history.SavedNameLists = []models.SavedNameList{}
	}
	if history.ChatHistory == nil {
		history.ChatHistory = []models.ChatMessage{}
	}
	return history
}

// saveHistory persists the whole bundle for email. Failures are logged and
// returned so callers can decline to mark the record as saved.
func (s *HistoryService) saveHistory(ctx context.Context, history models.AppHistory, email string) error {
	raw, err := json.Marshal(history)
	if err != nil {
		s.log.Warn("failed to encode history", zap.String("email", email), zap.Error(err))
		return err
	}
	if err := s.kv.Put(ctx, historyKey(email), string(raw)); err != nil {
		s.log.Warn("failed to persist history", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

// SaveIdea appends idea to the user's saved ideas unless an idea with the
// same (name, concept) pair is already saved. Idempotent.
func (s *HistoryService) SaveIdea(ctx context.Context, idea models.BusinessIdea, email string) error {
	history := s.GetHistory(ctx, email)

	for _, saved := range history.SavedIdeas {
		if saved.Equal(idea) {
			return nil
		}
	}

	idea.ID = uuid.NewString()
	idea.SavedAt = time.Now().Unix()
	history.SavedIdeas = append(history.SavedIdeas, idea)
	return s.saveHistory(ctx, history, email)
}

// SaveNameList appends list unless a list with the same concept is already
// saved. Concept equality alone decides duplication; the names themselves
// are not compared, so a second batch for the same concept is a no-op.
func (s *HistoryService) SaveNameList(ctx context.Context, list models.SavedNameList, email string) error {
	history := s.GetHistory(ctx, email)

	for _, saved := range history.SavedNameLists {
		if saved.Concept == list.Concept {
			return nil
		}
	}

	list.ID = uuid.NewString()
	list.SavedAt = time.Now().Unix()
	history.SavedNameLists = append(history.SavedNameLists, list)
	return s.saveHistory(ctx, history, email)
}

// SaveChatHistory replaces the user's chat transcript wholesale with
// messages. Last writer wins; there is no merge.
func (s *HistoryService) SaveChatHistory(ctx context.Context, messages []models.ChatMessage, email string) error {
	history := s.GetHistory(ctx, email)
	history.ChatHistory = messages
	return s.saveHistory(ctx, history, email)
}

// IsIdeaSaved reports whether an idea with the same (name, concept) pair as
// idea is already saved for email.
func (s *HistoryService) IsIdeaSaved(ctx context.Context, idea models.BusinessIdea, email string) bool {
	history := s.GetHistory(ctx, email)
	for _, saved := range history.SavedIdeas {
		if saved.Equal(idea) {
			return true
		}
	}
	return false
}
