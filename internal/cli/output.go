package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/sequencer"
	"github.com/aretw0/sequencer/internal/presentation/tui"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteReport.
const (
	OutputText     = "text"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"
	OutputYAML     = "yaml"
)

// OutputFormats lists the accepted output formats.
var OutputFormats = []string{OutputText, OutputMarkdown, OutputJSON, OutputYAML}

// WriteReport writes report to w in the requested format.
// Text passes the markdown through render; markdown writes it as-is.
func WriteReport(w io.Writer, report *sequencer.Report, output string, render tui.Renderer) error {
	switch strings.ToLower(output) {
	case "", OutputText:
		if render == nil {
			render = tui.Plain
		}
		out, err := render(report.Markdown())
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		_, err = fmt.Fprintln(w, strings.TrimSpace(out))
		return err
	case OutputMarkdown:
		_, err := io.WriteString(w, report.Markdown())
		return err
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (expected one of %s)", output, strings.Join(OutputFormats, ", "))
	}
}
