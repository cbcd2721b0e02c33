package gemini

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/ihangire/ihangire/internal/models"
)

// The model sometimes wraps JSON in a markdown code block despite the
// prompt forbidding it.
var (
	fencePrefix = regexp.MustCompile("^```(?:json)?\\s*")
	fenceSuffix = regexp.MustCompile("```\\s*$")
)

// stripCodeFence removes a leading ```json (or bare ```) marker and a
// trailing ``` marker from s, if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = fencePrefix.ReplaceAllString(s, "")
	s = fenceSuffix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// parseIdeas decodes the model's idea-discovery response. It never fails:
// when raw is not a valid idea array, the result is a single synthetic idea
// carrying the error marker as its startup cost and the raw text in its
// concept, so the user always sees something.
func parseIdeas(raw string) []models.BusinessIdea {
	var ideas []models.BusinessIdea
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &ideas); err != nil || len(ideas) == 0 {
		return []models.BusinessIdea{{
			Name:        "AI Response Error",
			Concept:     "Could not parse the AI's response. Raw output:\n\n" + raw,
			StartupCost: models.CostUnknown,
		}}
	}
	return ideas
}

// parseNames decodes the model's name-generation response, a JSON array of
// strings. Unlike idea discovery there is no synthetic fallback; a bad
// payload is a gateway failure.
func parseNames(raw string) ([]string, error) {
	var names []string
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &names); err != nil {
		return nil, err
	}
	return names, nil
}
