package views

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageGenerate_Success(t *testing.T) {
	jpeg := []byte{0xff, 0xd8, 0xff, 0xe0}
	gateway := &mockGateway{
		GenerateImageFunc: func(_ context.Context, prompt string) ([]byte, error) {
			assert.Equal(t, "eco fashion brand", prompt)
			return jpeg, nil
		},
	}
	c := NewImageController(gateway, testLogger())

	c.Generate(context.Background(), "eco fashion brand")
	assert.Equal(t, StateSuccess, c.State())
	assert.True(t, c.HasImage())

	path := filepath.Join(t.TempDir(), "logo.jpg")
	require.NoError(t, c.SaveTo(path))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, jpeg, written)
}

func TestImageGenerate_Failure(t *testing.T) {
	gateway := &mockGateway{
		GenerateImageFunc: func(_ context.Context, _ string) ([]byte, error) {
			return nil, errors.New("no capacity")
		},
	}
	c := NewImageController(gateway, testLogger())

	c.Generate(context.Background(), "eco fashion brand")
	assert.Equal(t, StateError, c.State())
	assert.Equal(t, imageErrMsg, c.Err())
	assert.False(t, c.HasImage())
}

func TestSaveTo_NoImage(t *testing.T) {
	c := NewImageController(&mockGateway{}, testLogger())
	err := c.SaveTo(filepath.Join(t.TempDir(), "logo.jpg"))
	assert.Error(t, err)
}
