package main

import (
	"context"
	"errors"

	"github.com/ihangire/ihangire/internal/gemini"
	"github.com/ihangire/ihangire/internal/models"
)

// errNoAPIKey is returned by every AI operation when the client started
// without a Gemini API key.
var errNoAPIKey = errors.New("no Gemini API key configured; set GEMINI_API_KEY")

// unavailableGateway keeps the shell usable (auth, history) when the AI
// backend cannot be reached at all.
type unavailableGateway struct{}

func (unavailableGateway) DiscoverIdeas(context.Context, string) (gemini.IdeaDiscovery, error) {
	return gemini.IdeaDiscovery{}, errNoAPIKey
}

func (unavailableGateway) AnalyzeIdea(context.Context, models.BusinessIdea) (string, error) {
	return "", errNoAPIKey
}

func (unavailableGateway) GenerateNames(context.Context, string) ([]string, error) {
	return nil, errNoAPIKey
}

func (unavailableGateway) StreamChat(context.Context, string, func(string)) error {
	return errNoAPIKey
}

func (unavailableGateway) GenerateImage(context.Context, string) ([]byte, error) {
	return nil, errNoAPIKey
}
