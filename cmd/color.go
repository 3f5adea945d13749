package cmd

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// colorMode controls ANSI color output.
type colorMode int

const (
	colorAuto colorMode = iota
	colorOn
	colorOff
)

// resolveColor determines whether to emit ANSI color codes on w.
// Priority: DEMO_ACTIONS_COLOR > NO_COLOR env > auto-detect TTY.
func resolveColor(setting string, w io.Writer) colorMode {
	switch strings.ToLower(setting) {
	case "1", "true", "yes", "on":
		return colorOn
	case "0", "false", "no", "off":
		return colorOff
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return colorOff
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return colorOn
	}
	return colorOff
}

// ANSI escape helpers. They return s unchanged when color is off.
func bold(s string, c colorMode) string {
	if c == colorOn {
		return "\033[1m" + s + "\033[0m"
	}
	return s
}

func cyan(s string, c colorMode) string {
	if c == colorOn {
		return "\033[36m" + s + "\033[0m"
	}
	return s
}

func dim(s string, c colorMode) string {
	if c == colorOn {
		return "\033[2m" + s + "\033[0m"
	}
	return s
}
