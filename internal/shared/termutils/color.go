// Package termutils holds the small ANSI helpers the CLI uses to render
// agent output. Nothing here touches the conversation core.
package termutils

import "fmt"

// ColorName selects one of the supported ANSI foreground colors.
type ColorName string

const (
	Yellow ColorName = "yellow"
	Green  ColorName = "green"
	Red    ColorName = "red"
	Blue   ColorName = "blue"
)

var colorCodes = map[ColorName]string{
	Yellow: "\033[33m",
	Green:  "\033[32m",
	Red:    "\033[31m",
	Blue:   "\033[34m",
}

const reset = "\033[0m"

// Color wraps text in the escape codes for the given color. Unknown colors
// return the text unchanged.
func Color(text string, c ColorName) string {
	code, ok := colorCodes[c]
	if !ok {
		return text
	}
	return code + text + reset
}

// Thought formats a model thinking excerpt for the terminal.
func Thought(text string) string {
	return Color(fmt.Sprintf("Thought » %s", text), Yellow)
}

// Output formats final agent output for the terminal.
func Output(text string) string {
	return Color(fmt.Sprintf("Output »\n%s", text), Green)
}
