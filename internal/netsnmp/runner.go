package netsnmp

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// MaxOutputSize is the maximum size of stdout/stderr captured from an
// external command.
const MaxOutputSize = 1024 * 1024 // 1MB

// Outcome captures the result of one completed external command. It is
// produced once per invocation and consumed exactly once by a parser.
type Outcome struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the command exited cleanly.
func (o Outcome) Success() bool { return o.ExitCode == 0 }

// Runner executes an external command to completion and captures its
// output. The command is never interacted with while running: no input
// stream, no incremental reads.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Outcome, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct {
	logger *zap.Logger
}

// NewExecRunner creates a Runner backed by os/exec.
func NewExecRunner(logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &ExecRunner{logger: logger.Named("runner")}
}

// Run executes the command and waits for it to finish. A non-zero exit is
// reported through the Outcome, not the error; the error is reserved for
// commands that could not be started at all.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Outcome, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &limitedWriter{buf: &stdout, limit: MaxOutputSize}
	cmd.Stderr = &limitedWriter{buf: &stderr, limit: MaxOutputSize}

	r.logger.Debug("running command",
		zap.String("name", name),
		zap.Strings("args", args),
	)

	err := cmd.Run()
	outcome := Outcome{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			r.logger.Error("command could not be started",
				zap.String("name", name),
				zap.Error(err),
			)
			return Outcome{}, fmt.Errorf("running %s: %w", name, err)
		}
		outcome.ExitCode = exitErr.ExitCode()
	}

	return outcome, nil
}

// CheckTools verifies that the Net-SNMP binaries are installed and on PATH.
func CheckTools() error {
	for _, tool := range []string{"snmpget", "snmpbulkget", "snmpwalk", "snmptable"} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("net-snmp does not appear to be installed on this system: %s not found on PATH", tool)
		}
	}
	return nil
}

// limitedWriter wraps a buffer with a size limit.
type limitedWriter struct {
	buf     *bytes.Buffer
	limit   int
	written int
}

func (w *limitedWriter) Write(p []byte) (n int, err error) {
	if w.written >= w.limit {
		// Discard additional data but don't error
		return len(p), nil
	}

	orig := len(p)
	remaining := w.limit - w.written
	if len(p) > remaining {
		p = p[:remaining]
	}

	n, err = w.buf.Write(p)
	w.written += n
	return orig, err // Return original length to avoid short write errors
}
