package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The analysis text uses a small set of markdown-like block markers. Only
// these are rendered; anything unrecognized falls through as a paragraph.
type blockKind int

const (
	blockHeading2 blockKind = iota
	blockHeading3
	blockBold
	blockBullet
	blockParagraph
)

type block struct {
	kind blockKind
	text string
}

// parseBlocks splits an analysis into display blocks. Lines are trimmed and
// empty lines dropped, matching the original renderer.
func parseBlocks(text string) []block {
	var blocks []block
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, block{blockHeading3, line[4:]})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, block{blockHeading2, line[3:]})
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4:
			blocks = append(blocks, block{blockBold, line[2 : len(line)-2]})
		case strings.HasPrefix(line, "* "):
			blocks = append(blocks, block{blockBullet, line[2:]})
		default:
			blocks = append(blocks, block{blockParagraph, line})
		}
	}
	return blocks
}

var (
	heading2Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).MarginTop(1)
	heading3Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).MarginTop(1)
	boldStyle     = lipgloss.NewStyle().Bold(true)
)

// RenderAnalysis converts the analysis markdown into styled terminal text.
func RenderAnalysis(text string) string {
	var b strings.Builder
	for _, blk := range parseBlocks(text) {
		switch blk.kind {
		case blockHeading2:
			b.WriteString(heading2Style.Render(blk.text))
		case blockHeading3:
			b.WriteString(heading3Style.Render(blk.text))
		case blockBold:
			b.WriteString(boldStyle.Render(blk.text))
		case blockBullet:
			b.WriteString("  • " + blk.text)
		default:
			b.WriteString(blk.text)
		}
		b.WriteString("\n")
	}
	return b.String()
}
