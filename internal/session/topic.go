package session

import (
	"strings"

	"github.com/rivo/uniseg"
)

// MaxTopicWidth is the display width a generated topic is truncated to
const MaxTopicWidth = 40

const topicEllipsis = "…"

// summarizeTopic derives a chat topic from the first line of a message.
// Long lines are cut on grapheme boundaries so emoji and accented letters
// stay whole.
func summarizeTopic(content string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	line = strings.Join(strings.Fields(line), " ")
	if uniseg.StringWidth(line) <= MaxTopicWidth {
		return line
	}

	limit := MaxTopicWidth - uniseg.StringWidth(topicEllipsis)
	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := g.Width()
		if width+w > limit {
			break
		}
		b.WriteString(g.Str())
		width += w
	}
	return strings.TrimRight(b.String(), " ") + topicEllipsis
}
