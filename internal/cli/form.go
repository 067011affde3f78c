package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/aretw0/sequencer"
	"github.com/aretw0/sequencer/internal/config"
	"github.com/aretw0/sequencer/internal/logging"
	"github.com/aretw0/sequencer/internal/presentation/tui"
	"github.com/aretw0/sequencer/pkg/format"
	"github.com/aretw0/sequencer/pkg/sequence"
)

// ErrQuit is returned when the user leaves the form.
var ErrQuit = errors.New("quit")

// Form is the interactive terminal version of the sequence form.
// It asks for each parameter in turn, offering the configured default.
type Form struct {
	Writer   io.Writer
	Renderer tui.Renderer
	Defaults config.FormDefaults
	Logger   *slog.Logger

	reader    *bufio.Reader
	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithRenderer sets the markdown renderer used for results.
func WithRenderer(r tui.Renderer) FormOption {
	return func(f *Form) {
		f.Renderer = r
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) FormOption {
	return func(f *Form) {
		f.Logger = l
	}
}

// NewForm creates a form reading answers from r and writing prompts and results to w.
func NewForm(r io.Reader, w io.Writer, defaults config.FormDefaults, opts ...FormOption) *Form {
	f := &Form{
		Writer:   w,
		Renderer: tui.Plain,
		Defaults: defaults,
		Logger:   logging.NewNop(),
		reader:   bufio.NewReader(r),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) initPump() {
	f.startOnce.Do(func() {
		f.inputChan = make(chan inputResult)
		go f.pump()
	})
}

func (f *Form) pump() {
	for {
		text, err := f.reader.ReadString('\n')
		if text != "" {
			f.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				f.inputChan <- inputResult{err: err}
			}
			close(f.inputChan)
			return
		}
	}
}

func (f *Form) readLine(ctx context.Context) (string, error) {
	f.initPump()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-f.inputChan:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

// prompt asks one question. An empty answer selects def.
func (f *Form) prompt(ctx context.Context, label, def string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(f.Writer, "%s [%s]: ", label, def)

		line, err := f.readLine(ctx)
		if err != nil {
			return "", err
		}
		answer, err := SanitizeInput(line)
		if err != nil {
			fmt.Fprintf(f.Writer, "Error: %v. Please try again.\n", err)
			continue
		}
		if isQuit(answer) {
			return "", ErrQuit
		}
		if answer == "" {
			return def, nil
		}
		return answer, nil
	}
}

// askField prompts until parse accepts the answer.
func askField[T any](ctx context.Context, f *Form, label, def string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := f.prompt(ctx, label, def)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(f.Writer, "Error: %s Please try again.\n", sentence(err))
	}
}

// sentence terminates an error message with a period.
func sentence(err error) string {
	msg := err.Error()
	if strings.HasSuffix(msg, ".") {
		return msg
	}
	return msg + "."
}

func isQuit(answer string) bool {
	switch strings.ToLower(answer) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

// Ask fills the form once and returns the submitted request.
// Bounds are not checked here; Calculate reports them like the web form does.
func (f *Form) Ask(ctx context.Context) (sequence.Request, error) {
	d := f.Defaults

	kind, err := askField(ctx, f, "Sequence type (arithmetic/geometric)", d.DefaultKind().String(), sequence.ParseKind)
	if err != nil {
		return sequence.Request{}, err
	}
	first, err := askField(ctx, f, "First Term (a₁)", format.Number(d.FirstTerm), func(s string) (float64, error) {
		return sequence.ParseFloat("first_term", s)
	})
	if err != nil {
		return sequence.Request{}, err
	}
	stepLabel := fmt.Sprintf("%s (%s)", kind.StepName(), kind.StepSymbol())
	step, err := askField(ctx, f, stepLabel, format.Number(d.Step(kind)), func(s string) (float64, error) {
		return sequence.ParseFloat("step", s)
	})
	if err != nil {
		return sequence.Request{}, err
	}
	n, err := askField(ctx, f, fmt.Sprintf("Number of Terms (n, 1-%d)", sequence.MaxTerms), fmt.Sprint(d.TermCount), sequence.ParseTermCount)
	if err != nil {
		return sequence.Request{}, err
	}

	return sequence.Request{Kind: kind, FirstTerm: first, Step: step, TermCount: n}, nil
}

// Run repeats the form until the user quits or input ends.
func (f *Form) Run(ctx context.Context) error {
	f.render("# 🔢 Arithmetic & Geometric Sequence Calculator\n\nCalculate and display arithmetic or geometric sequences with custom parameters. Press Enter to keep a default, `q` to quit.")

	for {
		req, err := f.Ask(ctx)
		if err != nil {
			return finish(err)
		}

		report, err := sequencer.Calculate(req)
		if err != nil {
			f.Logger.Debug("Calculation rejected", "kind", req.Kind, "term_count", req.TermCount, "error", err)
			fmt.Fprintf(f.Writer, "Error: %v\n\n", err)
			continue
		}
		f.Logger.Debug("Calculation done", "kind", req.Kind, "term_count", req.TermCount)
		f.render(report.Markdown())

		again, err := f.prompt(ctx, "Calculate another? (y/n)", "y")
		if err != nil {
			return finish(err)
		}
		if strings.HasPrefix(strings.ToLower(again), "n") {
			return nil
		}
	}
}

func (f *Form) render(markdown string) {
	out := markdown
	if f.Renderer != nil {
		if rendered, err := f.Renderer(markdown); err == nil {
			out = rendered
		} else {
			f.Logger.Warn("Render failed", "error", err)
		}
	}
	fmt.Fprintln(f.Writer, strings.TrimSpace(out))
	fmt.Fprintln(f.Writer)
}

// finish maps the ways a user leaves the form to a clean exit.
func finish(err error) error {
	if errors.Is(err, ErrQuit) || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
