package engine

import (
	"bytes"
	"context"
	"log"
	"os/exec"
	"strings"
	"time"
)

const versionTimeout = 30 * time.Second

// Engine describes how to invoke the property fuzzer against its target.
type Engine struct {
	Binary   string
	Target   string
	Contract string
	Config   string
}

// Default invokes echidna on the BasicEchidnaTest end-to-end contract.
func Default() *Engine {
	return &Engine{
		Binary:   "echidna",
		Target:   ".",
		Contract: "BasicEchidnaTest",
		Config:   "test/e2e/echidna/echidna-config.yaml",
	}
}

// Args are the command line arguments following Binary.
func (e *Engine) Args() []string {
	return []string{e.Target, "--contract", e.Contract, "--config", e.Config}
}

func (e *Engine) String() string {
	return strings.Join(append([]string{e.Binary}, e.Args()...), " ")
}

// Locate ensures Binary can be found and executed, returning its version string.
func (e *Engine) Locate(ctx context.Context) (version string, err error) {
	var path string
	if path, err = exec.LookPath(e.Binary); err != nil {
		log.Println("[ERR]", err)
		err = &NotFoundError{Binary: e.Binary, Err: err}
		return
	}
	log.Printf("[DBG] found %s at %s", e.Binary, path)

	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "--version")
	cmd.Stdout = &stdout
	if err = cmd.Run(); err != nil {
		log.Println("[ERR]", err)
		err = &NotFoundError{Binary: e.Binary, Err: err}
		return
	}
	version = strings.TrimSpace(stdout.String())
	log.Printf("[NFO] %s version: %q", e.Binary, version)
	return
}

func (e *Engine) command(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, e.Binary, e.Args()...)
	log.Printf("[NFO] running: %s", e)
	return cmd
}
