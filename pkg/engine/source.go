package engine

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	maxLineSize = 1 << 20
	waitDelay   = 5 * time.Second
)

// Source yields a campaign's whole console report.
// Drain may return text along with an error.
type Source interface {
	Drain(ctx context.Context) (string, error)
}

// Echoer is shown each line as the engine prints it.
type Echoer interface {
	Line(string)
}

var (
	_ Source = (*Buffered)(nil)
	_ Source = (*Streaming)(nil)
	_ Source = (*Captured)(nil)
)

// Buffered runs the engine to completion then hands over its output.
type Buffered struct {
	Engine *Engine
}

// Drain runs the engine and returns its stdout followed by its stderr.
func (b *Buffered) Drain(ctx context.Context) (text string, err error) {
	var stdout, stderr bytes.Buffer
	cmd := b.Engine.command(ctx)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	runErr := cmd.Run()
	log.Printf("[NFO] engine ran for %s", time.Since(start))

	text = stdout.String()
	if stderr.Len() != 0 {
		if text != "" && !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		text += stderr.String()
	}
	if runErr != nil {
		err = b.Engine.failed(runErr, stdout.String(), stderr.String())
	}
	return
}

// Streaming echoes the engine's merged stdout and stderr line by line
// as it runs and hands over all of it once the engine exits.
type Streaming struct {
	Engine *Engine
	Echo   Echoer
}

// Drain runs the engine. Cancelling ctx kills it.
func (s *Streaming) Drain(ctx context.Context) (string, error) {
	pr, pw := io.Pipe()
	cmd := s.Engine.command(ctx)
	cmd.Stdout = pw
	cmd.Stderr = pw
	cmd.WaitDelay = waitDelay

	if err := cmd.Start(); err != nil {
		return "", s.Engine.failed(err, "", "")
	}
	start := time.Now()

	var text strings.Builder
	var waitErr error
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.pump(pr, &text)
		// Unblocks the engine's writes if reading stopped early
		_ = pr.CloseWithError(err)
		return err
	})
	g.Go(func() error {
		waitErr = cmd.Wait()
		return pw.Close()
	})
	err := g.Wait()
	log.Printf("[NFO] engine ran for %s", time.Since(start))

	if waitErr != nil {
		return text.String(), s.Engine.failed(waitErr, text.String(), "")
	}
	if err != nil {
		return text.String(), fmt.Errorf("reading engine output: %w", err)
	}
	return text.String(), nil
}

func (s *Streaming) pump(r io.Reader, text *strings.Builder) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if s.Echo != nil {
			s.Echo.Line(line)
		}
		text.WriteString(line)
		text.WriteByte('\n')
	}
	return scanner.Err()
}

// Captured hands over an already produced report, such as a file or stdin.
type Captured struct {
	R io.Reader
}

// Drain reads R until EOF.
func (c *Captured) Drain(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(c.R)
	if err != nil {
		return string(data), fmt.Errorf("reading report: %w", err)
	}
	return string(data), nil
}

func (e *Engine) failed(err error, stdout, stderr string) error {
	log.Println("[ERR]", err)
	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return &NotFoundError{Binary: e.Binary, Err: err}
	}
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return &InvocationError{
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}
