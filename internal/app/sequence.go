package app

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/fibseq/internal/cli"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fibonacci"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/metrics"
)

var tracer = otel.Tracer("github.com/agbru/fibseq/internal/app")

// runPrompt implements the classic console flow: prompt, read one count,
// print the sequence. Every input, malformed or not, exits with ExitSuccess.
func (a *Application) runPrompt(ctx context.Context, in io.Reader, out io.Writer) int {
	n := a.Config.N
	if !a.Config.HasN {
		n = a.readCount(in, out)
	}

	seq := a.generate(ctx, n)

	var err error
	if a.Config.Quiet {
		err = cli.DisplayQuietSequence(out, seq)
	} else {
		err = cli.DisplaySequence(out, seq)
	}
	if err != nil {
		a.Logger.Error("failed to write sequence", err, logging.Int("terms", len(seq)))
	}
	return apperrors.ExitSuccess
}

// readCount prompts for and reads the term count. Malformed input is logged
// and counted, then treated as zero terms.
func (a *Application) readCount(in io.Reader, out io.Writer) int {
	if !a.Config.Quiet {
		if err := cli.DisplayPrompt(out); err != nil {
			a.Logger.Error("failed to write prompt", err)
		}
	}

	n, err := cli.ReadCount(in)
	if err != nil {
		if apperrors.IsInputError(err) {
			a.Metrics.IncInputErrors()
		}
		a.Logger.Warn("malformed term count, generating an empty sequence", logging.Err(err))
		return 0
	}
	a.Logger.Debug("term count read", logging.Int("n", n))
	return n
}

// generate runs the generator inside a trace span, with the optional
// progress spinner, and records metrics and debug diagnostics.
func (a *Application) generate(ctx context.Context, n int) []uint64 {
	_, span := tracer.Start(ctx, "fibonacci.Generate")
	defer span.End()

	spin := cli.NewProgressSpinner(a.ErrWriter, a.Config.Progress)
	spin.UpdateSuffix(cli.GenerationSuffix(n))
	spin.Start()

	var before metrics.MemorySnapshot
	if a.Config.Verbose {
		before = metrics.TakeMemorySnapshot()
	}

	start := time.Now()
	seq := a.Generator.Generate(n)
	elapsed := time.Since(start)
	spin.Stop()

	wrapped := !fibonacci.Exact(len(seq))
	span.SetAttributes(
		attribute.Int("fibseq.requested_terms", n),
		attribute.Int("fibseq.terms", len(seq)),
		attribute.Bool("fibseq.wrapped", wrapped),
	)
	a.Metrics.ObserveGeneration(len(seq), wrapped, elapsed)

	if a.Config.Verbose {
		allocated := metrics.TakeMemorySnapshot().AllocatedSince(before)
		a.Logger.Debug("sequence generated",
			logging.String("generator", a.Generator.Name()),
			logging.Int("requested", n),
			logging.Int("terms", len(seq)),
			logging.String("elapsed", cli.FormatExecutionDuration(elapsed)),
			logging.Uint64("allocated_bytes", allocated),
		)
		if wrapped {
			a.Logger.Debug("terms past the exact uint64 range wrapped modulo 2^64",
				logging.Int("exact_terms", fibonacci.MaxExactTerms))
		}
	}
	return seq
}
