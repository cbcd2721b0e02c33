// Package models defines the core data structures for users, sessions,
// business ideas, name lists, and chat transcripts.
package models

// User represents an application user, identified solely by email.
type User struct {
	// Email is the unique identifier for the user.
	Email string `json:"email"`
}

// StartupCost is the estimated cost bracket reported for a business idea.
// Values outside the known brackets are preserved as-is.
type StartupCost = string

const (
	// CostLow marks an idea the AI estimates as cheap to start.
	CostLow StartupCost = "Low"
	// CostMedium marks a mid-range startup cost estimate.
	CostMedium StartupCost = "Medium"
	// CostHigh marks an expensive-to-start idea.
	CostHigh StartupCost = "High"
	// CostUnknown marks an idea synthesized from an unparseable AI response.
	CostUnknown StartupCost = "N/A"
)

// BusinessIdea is a single AI-generated business idea. Ideas are immutable
// once created; two ideas are the same idea when both Name and Concept match.
type BusinessIdea struct {
	// ID is assigned when the idea is saved to history; empty otherwise.
	ID string `json:"id,omitempty"`
	// Name is the proposed business name.
	Name string `json:"name"`
	// Concept is the one-sentence business concept.
	Concept string `json:"concept"`
	// StartupCost is "Low", "Medium", "High", or a fallback string.
	StartupCost StartupCost `json:"startupCost"`
	// SavedAt is the Unix timestamp of the save, zero if never saved.
	SavedAt int64 `json:"savedAt,omitempty"`
}

// Equal reports whether two ideas are the same for de-duplication purposes.
// Only the (Name, Concept) pair participates; cost and metadata do not.
func (i BusinessIdea) Equal(other BusinessIdea) bool {
	return i.Name == other.Name && i.Concept == other.Concept
}

// SavedNameList is a saved batch of generated business names for one concept.
// Lists are de-duplicated by Concept alone.
type SavedNameList struct {
	// ID is assigned when the list is saved to history.
	ID string `json:"id,omitempty"`
	// Concept is the business concept the names were generated for.
	Concept string `json:"concept"`
	// Names is the ordered list of generated names.
	Names []string `json:"names"`
	// SavedAt is the Unix timestamp of the save, zero if never saved.
	SavedAt int64 `json:"savedAt,omitempty"`
}

// Sender identifies the author of a chat message.
type Sender string

const (
	// SenderUser marks a message typed by the user.
	SenderUser Sender = "user"
	// SenderBot marks a message produced by the AI advisor.
	SenderBot Sender = "bot"
)

// ChatMessage is one entry in the advisor chat transcript. While a streamed
// response is arriving, the last bot message's Text grows by concatenation.
type ChatMessage struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// GroundingSource is a citation (a map listing or web page) returned
// alongside an idea-discovery response.
type GroundingSource struct {
	// Title is the human-readable name of the source.
	Title string `json:"title"`
	// URI links to the source.
	URI string `json:"uri"`
}

// AppHistory is the per-user bundle of everything the user saved. One
// instance exists per email; missing sub-fields default to empty slices.
type AppHistory struct {
	SavedIdeas     []BusinessIdea  `json:"savedIdeas"`
	SavedNameLists []SavedNameList `json:"savedNameLists"`
	ChatHistory    []ChatMessage   `json:"chatHistory"`
}

// EmptyHistory returns an AppHistory with all three sequences empty but
// non-nil, the shape callers receive for a user with no prior data.
func EmptyHistory() AppHistory {
	return AppHistory{
		SavedIdeas:     []BusinessIdea{},
		SavedNameLists: []SavedNameList{},
		ChatHistory:    []ChatMessage{},
	}
}
