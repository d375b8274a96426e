package tui

import (
	"fmt"
	"strings"
)

// samplePhrases cycle to fill the demo viewport with something worth
// scrolling through.
var samplePhrases = []string{
	"issue stream updated",
	"dashboard widget rendered",
	"alert rule evaluated",
	"trace sampled",
	"release created",
	"session replay indexed",
	"error group resolved",
	"metric rollup flushed",
}

// generateContent produces numbered filler lines for the page viewport.
func generateContent(lines, width int) string {
	var b strings.Builder
	for i := 1; i <= lines; i++ {
		line := fmt.Sprintf("%5d  %s", i, samplePhrases[(i-1)%len(samplePhrases)])
		if width > 0 && len(line) > width {
			line = line[:width]
		}
		b.WriteString(line)
		if i < lines {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
