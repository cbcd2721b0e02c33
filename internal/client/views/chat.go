package views

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ihangire/ihangire/internal/models"
)

// Greeting is the advisor's opening message, shown when the user has no
// prior transcript.
const Greeting = "Hello! I'm your AI business advisor. How can I help you brainstorm today?"

// chatApology replaces an empty bot message when the stream fails before
// any fragment arrives. Partial replies are kept as-is.
const chatApology = "Sorry, I'm having trouble connecting. Please try again."

// ErrTurnInProgress is returned when a message is sent while the previous
// reply is still streaming. The design rejects concurrent turns rather
// than queueing or cancelling.
var ErrTurnInProgress = errors.New("the advisor is still answering; wait for the reply to finish")

// ConversationStarters are suggested first questions for an empty chat.
var ConversationStarters = []string{
	"How do I validate a business idea?",
	"Suggest some low-cost marketing tricks",
	"What's a SWOT analysis for a cafe?",
	"Explain 'product-market fit' simply",
}

// ChatController drives the advisor chat. The transcript hydrates from the
// history store on startup and is persisted back after every turn, including
// failed ones (partial replies are part of the conversation).
type ChatController struct {
	gateway Gateway
	history HistoryStore
	log     *zap.Logger
	email   string

	state     State
	messages  []models.ChatMessage
	streaming bool

	// OnFragment, when set, observes each fragment as it is appended to
	// the transcript. The shell uses it to print the reply live.
	OnFragment func(fragment string)
}

// NewChatController constructs the controller for the given user.
func NewChatController(gateway Gateway, history HistoryStore, email string, log *zap.Logger) *ChatController {
	return &ChatController{
		gateway: gateway,
		history: history,
		log:     log,
		email:   email,
	}
}

// Hydrate loads the user's transcript from history, seeding the greeting
// when there is none.
func (c *ChatController) Hydrate(ctx context.Context) {
	c.messages = c.history.GetHistory(ctx, c.email).ChatHistory
	if len(c.messages) == 0 {
		c.messages = []models.ChatMessage{{Sender: models.SenderBot, Text: Greeting}}
	}
}

// Send submits a chat turn. It appends the user's message and a single bot
// placeholder to the transcript, then grows the placeholder's text with
// each arriving fragment, preserving arrival order. If the stream fails
// before any fragment arrives the placeholder becomes an apology; fragments
// already received are kept. A send while a reply is still streaming fails
// with ErrTurnInProgress.
func (c *ChatController) Send(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil
	}
	if c.streaming {
		return ErrTurnInProgress
	}

	c.messages = append(c.messages,
		models.ChatMessage{Sender: models.SenderUser, Text: prompt},
		models.ChatMessage{Sender: models.SenderBot, Text: ""},
	)
	last := len(c.messages) - 1

	c.streaming = true
	c.state = StateLoading

	err := c.gateway.StreamChat(ctx, prompt, func(fragment string) {
		c.messages[last].Text += fragment
		if c.OnFragment != nil {
			c.OnFragment(fragment)
		}
	})

	c.streaming = false
	if err != nil {
		c.log.Warn("chat stream failed", zap.Error(err))
		if c.messages[last].Text == "" {
			c.messages[last].Text = chatApology
		}
		c.state = StateError
	} else {
		c.state = StateSuccess
	}

	if saveErr := c.history.SaveChatHistory(ctx, c.messages, c.email); saveErr != nil {
		c.log.Warn("failed to persist chat transcript", zap.Error(saveErr))
	}
	return nil
}

// Messages returns the current transcript.
func (c *ChatController) Messages() []models.ChatMessage { return c.messages }

// State returns the last turn's state.
func (c *ChatController) State() State { return c.state }

// Streaming reports whether a reply is currently arriving.
func (c *ChatController) Streaming() bool { return c.streaming }
