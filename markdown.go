package sequencer

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/aretw0/sequencer/pkg/format"
)

//go:embed about.md
var aboutMarkdown string

// About returns the "About Sequences" help text as markdown.
func About() string {
	return aboutMarkdown
}

// Markdown renders the report as a markdown document.
func (r *Report) Markdown() string {
	var sb strings.Builder

	sb.WriteString("## Results\n\n")
	sb.WriteString("### General Formula\n\n")
	fmt.Fprintf(&sb, "`%s`\n\n", r.Formula)

	fmt.Fprintf(&sb, "| First Term | %s | Number of Terms |\n", r.StepName)
	sb.WriteString("| --- | --- | --- |\n")
	fmt.Fprintf(&sb, "| %s | %s | %d |\n\n", r.FirstTerm, r.Step, r.TermCount)

	fmt.Fprintf(&sb, "### %s\n\n", r.KindLabel)
	fmt.Fprintf(&sb, "```\n%s\n```\n\n", r.TermsText)

	sb.WriteString("### Additional Information\n\n")
	fmt.Fprintf(&sb, "- **Last Term:** %s\n", r.LastTerm)
	fmt.Fprintf(&sb, "- **Sum of Sequence:** %s\n", r.SumText)

	if len(r.Steps) > 0 {
		sb.WriteString("\n### Step-by-Step Calculation")
		if len(r.Steps) == format.StepCount {
			fmt.Fprintf(&sb, " (First %d Terms)", format.StepCount)
		}
		sb.WriteString("\n\n")
		for i, step := range r.Steps {
			fmt.Fprintf(&sb, "- **Term %d:** %s\n", i+1, step)
		}
	}
	return sb.String()
}
