package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Sequencer banner with a gradient and the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  ___                            ", "#818cf8"},
		{" / __| ___ __ _ _  _ ___ _ _  __ ___ _ _ ", "#a78bfa"},
		{" \\__ \\/ -_) _` | || / -_) ' \\/ _/ -_) '_|", "#c084fc"},
		{" |___/\\___\\__, |\\_,_\\___|_||_\\__\\___|_|  ", "#e879f9"},
		{"             |_|                          ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, termenv.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
