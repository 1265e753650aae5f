// Command algeo evaluates a YAML file of linear-algebra problems and prints
// the results with optional step traces.
//
//	algeo -in problems.yaml -steps
//	algeo -format yaml -verify < problems.yaml
//
// It exits with status 1 when any problem fails.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/algeo/calc"
)

var log = logging.Logger("algeo")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "algeo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := Load(args, stderr)
	if err != nil {
		return err
	}
	if err = logging.SetLogLevel("*", cfg.LogLevel); err != nil {
		return errors.Wrapf(err, "log level %q", cfg.LogLevel)
	}

	in := stdin
	if cfg.In != "-" {
		f, err := os.Open(cfg.In)
		if err != nil {
			return errors.Wrap(err, "open problems")
		}
		defer f.Close()
		in = f
	}

	reqs, err := calc.DecodeRequests(in)
	if err != nil {
		return errors.Wrapf(err, "read %s", cfg.In)
	}
	log.Infow("problems loaded", "count", len(reqs), "source", cfg.In)

	out, err := calc.EvaluateAll(ctx, reqs, cfg.CalcOptions()...)
	if err != nil {
		return errors.Wrap(err, "evaluate")
	}
	if cfg.Verify {
		for i := range out {
			if out[i].Err != nil {
				continue
			}
			if verr := calc.Verify(out[i].Request, out[i].Response, calc.DefaultTolerance); verr != nil {
				out[i].Err = errors.Wrap(verr, "verify")
			}
		}
	}

	if err = write(stdout, cfg.Format, out); err != nil {
		return errors.Wrap(err, "write results")
	}

	failed := 0
	for _, oc := range out {
		if oc.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d problems failed", failed, len(out))
	}

	return nil
}

func write(w io.Writer, format string, out []calc.Outcome) error {
	if format == FormatYAML {
		return calc.EncodeOutcomes(w, out)
	}

	for i, oc := range out {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		text := oc.Response.Render()
		if oc.Err != nil {
			text = fmt.Sprintf("== %s (%s) ==\nerror: %v\n", label(oc), oc.Request.Op, oc.Err)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}

	return nil
}

func label(oc calc.Outcome) string {
	if oc.Request.Name != "" {
		return oc.Request.Name
	}

	return fmt.Sprintf("#%d", oc.Index+1)
}
