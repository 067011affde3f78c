package web

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/aretw0/sequencer"
	"github.com/aretw0/sequencer/internal/config"
	"github.com/aretw0/sequencer/pkg/format"
	"github.com/aretw0/sequencer/pkg/sequence"
)

//go:embed page.html.tmpl
var pageTemplate string

var tmpl = template.Must(template.New("page").Parse(pageTemplate))

// Form holds the raw values of the form fields, as typed.
type Form struct {
	Kind       string
	FirstTerm  string
	Difference string
	Ratio      string
	TermCount  string
}

// NewForm fills a form with the configured defaults.
func NewForm(d config.FormDefaults) Form {
	return Form{
		Kind:       d.DefaultKind().String(),
		FirstTerm:  format.Number(d.FirstTerm),
		Difference: format.Number(d.Difference),
		Ratio:      format.Number(d.Ratio),
		TermCount:  fmt.Sprint(d.TermCount),
	}
}

// Request parses the form into a sequence request.
// The step comes from the difference or the ratio field depending on the kind.
func (f Form) Request() (sequence.Request, error) {
	kind, err := sequence.ParseKind(f.Kind)
	if err != nil {
		return sequence.Request{}, err
	}
	first, err := sequence.ParseFloat("first_term", f.FirstTerm)
	if err != nil {
		return sequence.Request{}, err
	}
	stepText := f.Difference
	if kind == sequence.Geometric {
		stepText = f.Ratio
	}
	step, err := sequence.ParseFloat("step", stepText)
	if err != nil {
		return sequence.Request{}, err
	}
	n, err := sequence.ParseTermCount(f.TermCount)
	if err != nil {
		return sequence.Request{}, err
	}
	return sequence.Request{Kind: kind, FirstTerm: first, Step: step, TermCount: n}, nil
}

// Page is the data rendered by the page template.
type Page struct {
	Version    string
	Form       Form
	MaxTerms   int
	Report     *sequencer.Report
	ReportHTML template.HTML
	AboutHTML  template.HTML
	Error      string
}

// NewPage prepares a page for form, rendering the report and the About text.
func NewPage(form Form, report *sequencer.Report, errMsg string) (Page, error) {
	about, err := Markdown(sequencer.About())
	if err != nil {
		return Page{}, fmt.Errorf("render about: %w", err)
	}
	p := Page{
		Version:   sequencer.Version,
		Form:      form,
		MaxTerms:  sequence.MaxTerms,
		Report:    report,
		AboutHTML: about,
		Error:     errMsg,
	}
	if report != nil {
		p.ReportHTML, err = Markdown(report.Markdown())
		if err != nil {
			return Page{}, fmt.Errorf("render report: %w", err)
		}
	}
	return p, nil
}

// Render writes the page as HTML.
func Render(w io.Writer, p Page) error {
	return tmpl.Execute(w, p)
}
