// Package gemini is the client's boundary to the generative AI backend.
// It shapes requests for the five operations the application needs (idea
// discovery, deep-dive analysis, name generation, advisor chat, logo
// generation) and parses their responses defensively.
package gemini

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/ihangire/ihangire/internal/models"
)

// advisorSystemInstruction steers the chat model.
const advisorSystemInstruction = "You are a helpful and encouraging business advisor chatbot for young entrepreneurs. Keep your responses concise and actionable. Use markdown for formatting when appropriate (e.g., lists, bolding)."

// analysisThinkingBudget is the token budget granted to the pro model for
// the deep-dive analysis.
const analysisThinkingBudget = int32(32768)

// Config selects the models used for each operation.
type Config struct {
	// APIKey authenticates against the backend.
	APIKey string
	// FlashModel handles idea discovery, name generation, and chat.
	FlashModel string
	// ProModel handles deep-dive analysis.
	ProModel string
	// ImageModel handles logo generation.
	ImageModel string
}

// Client wraps the generative AI SDK. The advisor chat session is created
// lazily on the first message and reused for the life of the process.
type Client struct {
	genai      *genai.Client
	flashModel string
	proModel   string
	imageModel string
	chat       *genai.Chat
	log        *zap.Logger
}

// NewClient creates a gateway client. The API key is required.
func NewClient(ctx context.Context, cfg Config, log *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{
		genai:      client,
		flashModel: cfg.FlashModel,
		proModel:   cfg.ProModel,
		imageModel: cfg.ImageModel,
		log:        log,
	}, nil
}

// IdeaDiscovery is the result of one idea-discovery request: the parsed
// ideas plus the citations grounding them.
type IdeaDiscovery struct {
	Ideas   []models.BusinessIdea
	Sources []models.GroundingSource
}

// DiscoverIdeas asks the backend for five business ideas for the given
// location. The prompt demands strict JSON; the response is nevertheless
// stripped of code fences before parsing, and a parse failure degrades to a
// single synthetic error idea rather than an error. Only transport failures
// are returned as errors.
func (c *Client) DiscoverIdeas(ctx context.Context, locationQuery string) (IdeaDiscovery, error) {
	prompt := fmt.Sprintf(`Based on a detailed analysis of the location %q, generate 5 innovative and viable business ideas for young entrepreneurs. Consider local demographics, existing businesses, and potential unmet needs in that specific area.
Your response MUST be a single, valid JSON array of objects. Do not include any text, explanations, or markdown formatting like `+"```json"+` before or after the JSON array. The JSON must be parseable.
Each object in the array must have the following keys:
- "name": A string for the business name.
- "concept": A string for the one-sentence concept.
- "startupCost": A string with one of these exact values: 'Low', 'Medium', or 'High'.

Here is an example of the required format:
[
  {
    "name": "Example Name",
    "concept": "Example one-sentence concept.",
    "startupCost": "Medium"
  }
]

Ensure all string values are properly quoted and all objects in the array are separated by commas.`, locationQuery)

	c.log.Debug("discovering ideas", zap.String("location", locationQuery))
	resp, err := c.genai.Models.GenerateContent(ctx, c.flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
	})
	if err != nil {
		return IdeaDiscovery{}, fmt.Errorf("idea discovery: %w", err)
	}

	return IdeaDiscovery{
		Ideas:   parseIdeas(resp.Text()),
		Sources: groundingSources(resp),
	}, nil
}

// groundingSources collects map and web citations from a response.
func groundingSources(resp *genai.GenerateContentResponse) []models.GroundingSource {
	sources := []models.GroundingSource{}
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return sources
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		switch {
		case chunk.Maps != nil:
			sources = append(sources, models.GroundingSource{Title: chunk.Maps.Title, URI: chunk.Maps.URI})
		case chunk.Web != nil:
			sources = append(sources, models.GroundingSource{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
	}
	return sources
}

// AnalyzeIdea asks the pro model for a deep-dive analysis of idea and
// returns the sectioned markdown narrative as-is.
func (c *Client) AnalyzeIdea(ctx context.Context, idea models.BusinessIdea) (string, error) {
	prompt := fmt.Sprintf(`Perform a deep, comprehensive analysis of the following business idea for a young entrepreneur:
    Name: %s
    Concept: %s
    Estimated Startup Cost: %s

    Provide the following in well-structured markdown:
    1.  **SWOT Analysis:** Strengths, Weaknesses, Opportunities, and Threats.
    2.  **Target Audience:** A detailed description of the ideal customer.
    3.  **Marketing & Branding Strategy:** Creative and low-cost marketing ideas suitable for a new venture.
    4.  **Initial 3-Step Action Plan:** The first three concrete steps to get started.`,
		idea.Name, idea.Concept, idea.StartupCost)

	c.log.Debug("analyzing idea", zap.String("name", idea.Name))
	budget := analysisThinkingBudget
	resp, err := c.genai.Models.GenerateContent(ctx, c.proModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: &budget},
	})
	if err != nil {
		return "", fmt.Errorf("idea analysis: %w", err)
	}
	return resp.Text(), nil
}

// GenerateNames asks for ten creative business names for concept. The
// response schema pins the payload to a JSON array of strings.
func (c *Client) GenerateNames(ctx context.Context, concept string) ([]string, error) {
	prompt := fmt.Sprintf("Generate 10 creative, catchy, and memorable business names for the following concept: %q. The names should be short and easy to remember.", concept)

	resp, err := c.genai.Models.GenerateContent(ctx, c.flashModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("name generation: %w", err)
	}

	names, err := parseNames(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("name generation: parse response: %w", err)
	}
	return names, nil
}

// ensureChat creates the advisor chat session on first use.
func (c *Client) ensureChat(ctx context.Context) (*genai.Chat, error) {
	if c.chat != nil {
		return c.chat, nil
	}
	chat, err := c.genai.Chats.Create(ctx, c.flashModel, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(advisorSystemInstruction, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create chat session: %w", err)
	}
	c.chat = chat
	return chat, nil
}

// StreamChat sends message on the advisor chat session and invokes
// onFragment once per text fragment, strictly in arrival order. The stream
// is finite and non-restartable; an error mid-stream leaves fragments
// already delivered in place.
func (c *Client) StreamChat(ctx context.Context, message string, onFragment func(string)) error {
	chat, err := c.ensureChat(ctx)
	if err != nil {
		return err
	}

	for resp, err := range chat.SendMessageStream(ctx, genai.Part{Text: message}) {
		if err != nil {
			return fmt.Errorf("chat stream: %w", err)
		}
		if fragment := resp.Text(); fragment != "" {
			onFragment(fragment)
		}
	}
	return nil
}

// GenerateImage renders a logo concept for prompt and returns the encoded
// JPEG bytes. One image, square, no retries.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	fullPrompt := fmt.Sprintf("A vibrant, modern logo concept for a startup. The logo should be for a business concept: %q. Minimalist, clean, memorable.", prompt)

	resp, err := c.genai.Models.GenerateImages(ctx, c.imageModel, fullPrompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    "1:1",
	})
	if err != nil {
		return nil, fmt.Errorf("image generation: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("image generation: empty response")
	}
	return resp.GeneratedImages[0].Image.ImageBytes, nil
}
