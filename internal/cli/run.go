package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/sequencer"
	"github.com/aretw0/sequencer/internal/config"
	"github.com/aretw0/sequencer/internal/presentation/tui"
	"github.com/aretw0/sequencer/pkg/sequence"
)

// RunOptions contains the configuration shared by the run and calc commands.
type RunOptions struct {
	ConfigPath string
	LogLevel   string
	Plain      bool   // Disable glamour rendering and the banner
	Output     string // calc only: text, markdown, json or yaml
}

// loadConfig reads the configuration and applies the --log-level flag over it.
func loadConfig(opts RunOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath, nil)
	if err != nil {
		return config.Config{}, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg, nil
}

func renderer(opts RunOptions) tui.Renderer {
	if opts.Plain {
		return tui.Plain
	}
	return tui.ForOutput(os.Stdout)
}

// RunInteractive starts the terminal form on stdin/stdout.
func RunInteractive(opts RunOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	if !opts.Plain && tui.IsTerminal(os.Stdout) {
		tui.PrintBanner(os.Stdout, sequencer.Version)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	form := NewForm(os.Stdin, os.Stdout, cfg.Defaults,
		WithRenderer(renderer(opts)),
		WithLogger(logger),
	)
	err = form.Run(sigCtx)
	if sig := sigCtx.Signal(); sig != nil {
		logger.Info("Interrupted", "signal", sig.String())
	}
	return finish(err)
}

// CalcArgs holds the calc flags as typed. Empty values take the configured defaults.
type CalcArgs struct {
	Kind      string
	FirstTerm string
	Step      string
	TermCount string
}

// Request parses the arguments over the defaults.
func (a CalcArgs) Request(d config.FormDefaults) (sequence.Request, error) {
	kind := d.DefaultKind()
	if a.Kind != "" {
		k, err := sequence.ParseKind(a.Kind)
		if err != nil {
			return sequence.Request{}, err
		}
		kind = k
	}
	req := d.Request(kind)

	var err error
	if a.FirstTerm != "" {
		if req.FirstTerm, err = sequence.ParseFloat("first_term", a.FirstTerm); err != nil {
			return sequence.Request{}, err
		}
	}
	if a.Step != "" {
		if req.Step, err = sequence.ParseFloat("step", a.Step); err != nil {
			return sequence.Request{}, err
		}
	}
	if a.TermCount != "" {
		if req.TermCount, err = sequence.ParseTermCount(a.TermCount); err != nil {
			return sequence.Request{}, err
		}
	}
	return req, nil
}

// RunCalc performs a single calculation and writes the report to stdout.
// Validation failures are returned with the message users see in the form.
func RunCalc(opts RunOptions, args CalcArgs) error {
	return runCalc(os.Stdout, opts, args)
}

func runCalc(w io.Writer, opts RunOptions, args CalcArgs) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	req, err := args.Request(cfg.Defaults)
	if err != nil {
		return err
	}
	report, err := sequencer.Calculate(req)
	if err != nil {
		logger.Debug("Calculation rejected", "kind", req.Kind, "term_count", req.TermCount, "error", err)
		return err
	}
	if err := WriteReport(w, report, opts.Output, renderer(opts)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// LoadConfig reads the configuration and builds the logger for the server commands.
func LoadConfig(opts RunOptions) (config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}
