package views

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

const imageErrMsg = "Failed to generate image. Please try again."

// ImageController drives logo generation. The generated JPEG is held in
// memory until the user writes it to a file; the terminal cannot display it.
type ImageController struct {
	gateway Gateway
	log     *zap.Logger

	state  State
	errMsg string
	prompt string
	image  []byte
}

// NewImageController constructs the controller.
func NewImageController(gateway Gateway, log *zap.Logger) *ImageController {
	return &ImageController{gateway: gateway, log: log}
}

// Generate renders a logo concept for prompt, replacing any previous image.
func (c *ImageController) Generate(ctx context.Context, prompt string) {
	c.state = StateLoading
	c.errMsg = ""
	c.image = nil
	c.prompt = prompt

	image, err := c.gateway.GenerateImage(ctx, prompt)
	if err != nil {
		c.log.Warn("image generation failed", zap.Error(err))
		c.state = StateError
		c.errMsg = imageErrMsg
		return
	}

	c.image = image
	c.state = StateSuccess
}

// SaveTo writes the generated JPEG to path.
func (c *ImageController) SaveTo(path string) error {
	if len(c.image) == 0 {
		return fmt.Errorf("no image generated yet")
	}
	if err := os.WriteFile(path, c.image, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

// HasImage reports whether a generated image is ready to save.
func (c *ImageController) HasImage() bool { return len(c.image) > 0 }

// State returns the generation action's state.
func (c *ImageController) State() State { return c.state }

// Err returns the user-facing message for the last failed generation.
func (c *ImageController) Err() string { return c.errMsg }
