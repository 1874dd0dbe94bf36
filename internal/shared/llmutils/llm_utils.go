package llmutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tickertalk/tickertalk/internal/schema"
)

var reThinking = regexp.MustCompile(`(?s)<thinking>(.*?)</thinking>`)

// Truncate shortens a string to at most n characters, adding "..." if it was truncated.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// StringOrDefault returns s if it's not empty, or def if s is empty.
func StringOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// ExtractThinking splits a model response into the <thinking>…</thinking>
// content some models embed and the remaining output text. thought is empty
// when the response carries no thinking block.
func ExtractThinking(s string) (thought, rest string) {
	m := reThinking.FindStringSubmatch(s)
	if m == nil {
		return "", strings.TrimSpace(s)
	}
	rest = reThinking.ReplaceAllString(s, "")
	return strings.TrimSpace(m[1]), strings.TrimSpace(rest)
}

// ToolHint generates a short hint string for a list of tool invocations,
// e.g. `get_stock_price("AMZN")`.
func ToolHint(invs []schema.ToolInvocation) string {
	parts := make([]string, 0, len(invs))
	for _, inv := range invs {
		var firstVal string
		for _, v := range inv.Input {
			if s, ok := v.(string); ok {
				firstVal = s
			}
			break
		}
		if firstVal == "" {
			parts = append(parts, inv.Name)
			continue
		}
		if len(firstVal) > 40 {
			firstVal = firstVal[:40] + "…"
		}
		parts = append(parts, fmt.Sprintf("%s(%q)", inv.Name, firstVal))
	}
	return strings.Join(parts, ", ")
}
