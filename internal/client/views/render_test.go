package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocks(t *testing.T) {
	text := strings.Join([]string{
		"## SWOT Analysis",
		"",
		"### Strengths",
		"* Strong cycling community",
		"**Verdict**",
		"A plain closing paragraph.",
	}, "\n")

	blocks := parseBlocks(text)
	require.Len(t, blocks, 5, "empty lines are dropped")

	assert.Equal(t, block{blockHeading2, "SWOT Analysis"}, blocks[0])
	assert.Equal(t, block{blockHeading3, "Strengths"}, blocks[1])
	assert.Equal(t, block{blockBullet, "Strong cycling community"}, blocks[2])
	assert.Equal(t, block{blockBold, "Verdict"}, blocks[3])
	assert.Equal(t, block{blockParagraph, "A plain closing paragraph."}, blocks[4])
}

func TestParseBlocks_UnrecognizedMarkupFallsThrough(t *testing.T) {
	blocks := parseBlocks("> blockquote\n1. numbered item\n#### deep heading")
	require.Len(t, blocks, 3)
	for _, blk := range blocks {
		assert.Equal(t, blockParagraph, blk.kind)
	}
}

func TestParseBlocks_LinesAreTrimmed(t *testing.T) {
	blocks := parseBlocks("   ## Heading   ")
	require.Len(t, blocks, 1)
	assert.Equal(t, block{blockHeading2, "Heading"}, blocks[0])
}

func TestRenderAnalysis(t *testing.T) {
	out := RenderAnalysis("## Plan\n* step one\ndone")
	assert.Contains(t, out, "Plan")
	assert.Contains(t, out, "• step one")
	assert.Contains(t, out, "done")
}
