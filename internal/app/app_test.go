package app

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fibonacci"
	"github.com/agbru/fibseq/internal/fibonacci/mocks"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/metrics"
)

// newTestApp builds an Application whose logs go to a plain-text buffer.
func newTestApp(t *testing.T, args []string, opts ...AppOption) (*Application, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts = append([]AppOption{WithLogger(logging.NewStdLoggerAdapter(log.New(&logs, "", 0)))}, opts...)
	app, err := New(append([]string{"fibseq"}, args...), &logs, opts...)
	if err != nil {
		t.Fatalf("New(%v) error = %v", args, err)
	}
	return app, &logs
}

func TestRun_PromptMode(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		input   string
		wantOut string
	}{
		{
			name:    "ten terms",
			input:   "10\n",
			wantOut: "Enter the number of Fibonacci terms to generate: Fibonacci sequence:\n0 1 1 2 3 5 8 13 21 34\n",
		},
		{
			name:    "one term",
			input:   "1\n",
			wantOut: "Enter the number of Fibonacci terms to generate: Fibonacci sequence:\n0\n",
		},
		{
			name:    "zero terms",
			input:   "0\n",
			wantOut: "Enter the number of Fibonacci terms to generate: Fibonacci sequence:\n\n",
		},
		{
			name:    "negative count",
			input:   "-5\n",
			wantOut: "Enter the number of Fibonacci terms to generate: Fibonacci sequence:\n\n",
		},
		{
			name:    "malformed input",
			input:   "abc\n",
			wantOut: "Enter the number of Fibonacci terms to generate: Fibonacci sequence:\n\n",
		},
		{
			name:    "empty input",
			input:   "",
			wantOut: "Enter the number of Fibonacci terms to generate: Fibonacci sequence:\n\n",
		},
		{
			name:    "count from flag skips the prompt",
			args:    []string{"-n", "5"},
			wantOut: "Fibonacci sequence:\n0 1 1 2 3\n",
		},
		{
			name:    "quiet with flag",
			args:    []string{"-q", "-n", "3"},
			wantOut: "0 1 1\n",
		},
		{
			name:    "quiet reads stdin without prompt",
			args:    []string{"--quiet"},
			input:   "4",
			wantOut: "0 1 1 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, tt.args)
			var out bytes.Buffer

			code := app.Run(context.Background(), strings.NewReader(tt.input), &out)

			if code != apperrors.ExitSuccess {
				t.Errorf("Run() exit code = %d, want %d", code, apperrors.ExitSuccess)
			}
			if got := out.String(); got != tt.wantOut {
				t.Errorf("Run() output = %q, want %q", got, tt.wantOut)
			}
		})
	}
}

func TestRun_MalformedInputIsLogged(t *testing.T) {
	app, logs := newTestApp(t, nil)
	var out bytes.Buffer

	app.Run(context.Background(), strings.NewReader("12abc"), &out)

	got := logs.String()
	if !strings.Contains(got, "[WARN] malformed term count") {
		t.Errorf("expected a warning in logs, got %q", got)
	}
	if !strings.Contains(got, `"12abc"`) {
		t.Errorf("expected the rejected token in logs, got %q", got)
	}
	if strings.Contains(out.String(), "WARN") {
		t.Errorf("log output leaked to stdout: %q", out.String())
	}
}

func TestRun_CountAboveMaximumIsMalformed(t *testing.T) {
	tests := []string{"4611686018427387904", "99999999999999999999", strconv.Itoa(fibonacci.MaxTerms + 1)}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			app, logs := newTestApp(t, []string{"--metrics"})
			var out bytes.Buffer

			code := app.Run(context.Background(), strings.NewReader(input+"\n"), &out)

			if code != apperrors.ExitSuccess {
				t.Errorf("Run() exit code = %d, want %d", code, apperrors.ExitSuccess)
			}
			want := "Enter the number of Fibonacci terms to generate: Fibonacci sequence:\n\n"
			if out.String() != want {
				t.Errorf("Run() output = %q, want %q", out.String(), want)
			}
			for _, wantLog := range []string{"[WARN] malformed term count", "value out of range", "fibseq_input_errors_total 1"} {
				if !strings.Contains(logs.String(), wantLog) {
					t.Errorf("logs missing %q:\n%s", wantLog, logs.String())
				}
			}
		})
	}
}

func TestRun_WrapMetricFollowsProducedTerms(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		produced []uint64
		want     string
	}{
		{"short request, wrapped result", 3, fibonacci.Generate(fibonacci.MaxExactTerms + 1), "fibseq_wrapped_sequences_total 1"},
		{"long request, exact result", 200, []uint64{0, 1, 1}, "fibseq_wrapped_sequences_total 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := mocks.NewMockGenerator(ctrl)
			gen.EXPECT().Generate(tt.n).Return(tt.produced)
			gen.EXPECT().Name().Return("mock").AnyTimes()

			app, logs := newTestApp(t, []string{"--metrics", "-q", "-n", strconv.Itoa(tt.n)}, WithGenerator(gen))
			app.Run(context.Background(), strings.NewReader(""), &bytes.Buffer{})

			if !strings.Contains(logs.String(), tt.want) {
				t.Errorf("metrics dump missing %q", tt.want)
			}
		})
	}
}

func TestRun_UsesInjectedGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(3).Return([]uint64{7, 8, 9})
	gen.EXPECT().Name().Return("mock").AnyTimes()

	app, _ := newTestApp(t, nil, WithGenerator(gen))
	var out bytes.Buffer

	app.Run(context.Background(), strings.NewReader("3\n"), &out)

	want := "Enter the number of Fibonacci terms to generate: Fibonacci sequence:\n7 8 9\n"
	if out.String() != want {
		t.Errorf("Run() output = %q, want %q", out.String(), want)
	}
}

func TestRun_MalformedInputGeneratesZeroTerms(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(0).Return([]uint64{})
	gen.EXPECT().Name().Return("mock").AnyTimes()

	app, _ := newTestApp(t, nil, WithGenerator(gen))
	app.Run(context.Background(), strings.NewReader("not-a-number"), &bytes.Buffer{})
}

func TestRun_VerboseLogsGeneration(t *testing.T) {
	app, logs := newTestApp(t, []string{"-v", "-n", "100"})

	app.Run(context.Background(), strings.NewReader(""), &bytes.Buffer{})

	got := logs.String()
	for _, want := range []string{"[DEBUG] sequence generated", "generator=iterative", "terms=100", "wrapped modulo 2^64"} {
		if !strings.Contains(got, want) {
			t.Errorf("verbose logs missing %q:\n%s", want, got)
		}
	}
}

func TestRun_MetricsDump(t *testing.T) {
	rec := metrics.NewRecorder()
	app, logs := newTestApp(t, []string{"--metrics"}, WithMetrics(rec))

	app.Run(context.Background(), strings.NewReader("oops"), &bytes.Buffer{})

	got := logs.String()
	for _, want := range []string{"fibseq_runs_total 1", "fibseq_input_errors_total 1", "fibseq_terms_generated_total 0"} {
		if !strings.Contains(got, want) {
			t.Errorf("metrics dump missing %q", want)
		}
	}
}

func TestRun_Completion(t *testing.T) {
	app, _ := newTestApp(t, []string{"--completion", "bash"})
	var out bytes.Buffer

	code := app.Run(context.Background(), strings.NewReader(""), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(out.String(), "complete -F") {
		t.Errorf("expected a bash completion script, got %q", out.String())
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantHelp  bool
		wantCfErr bool
	}{
		{name: "help", args: []string{"--help"}, wantHelp: true},
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "non-numeric n", args: []string{"-n", "ten"}},
		{name: "bad shell", args: []string{"--completion", "tcsh"}, wantCfErr: true},
		{name: "positional argument", args: []string{"extra"}, wantCfErr: true},
		{name: "count above maximum", args: []string{"-n", "4611686018427387904"}, wantCfErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := New(append([]string{"fibseq"}, tt.args...), &stderr)
			if err == nil {
				t.Fatal("New() expected an error")
			}
			if got := IsHelpError(err); got != tt.wantHelp {
				t.Errorf("IsHelpError() = %v, want %v", got, tt.wantHelp)
			}
			var cfgErr apperrors.ConfigError
			if got := errors.As(err, &cfgErr); got != tt.wantCfErr {
				t.Errorf("errors.As(ConfigError) = %v, want %v", got, tt.wantCfErr)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	app, err := New([]string{"fibseq", "--no-color"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if app.Generator == nil || app.Generator.Name() != "iterative" {
		t.Errorf("default generator = %v, want iterative", app.Generator)
	}
	if app.Logger == nil {
		t.Error("default logger is nil")
	}
	if app.Metrics == nil {
		t.Error("default metrics recorder is nil")
	}
}
