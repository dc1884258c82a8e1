package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/code"
	"github.com/FuzzyMonkeyCo/verdict/pkg/engine"
	"github.com/FuzzyMonkeyCo/verdict/pkg/runtime"
	"github.com/FuzzyMonkeyCo/verdict/pkg/summary"
)

const installHint = "Install from: https://github.com/crytic/echidna/releases"

func doRun(ctx context.Context, args *params) int {
	rt, err := runtime.New(args.Starfile)
	if err != nil {
		as.ColorERR.Println(err)
		return code.FailedConfig
	}
	eng := rt.Engine()

	fmt.Printf("Running %s campaign on %s...\n", eng.Binary, eng.Contract)
	if _, err := eng.Locate(ctx); err != nil {
		as.ColorERR.Printf("Error: %s not found!\n", eng.Binary)
		fmt.Println(installHint)
		return code.FailedRequire
	}

	stream := rt.Streams()
	switch {
	case args.Stream:
		stream = true
	case args.Buffered:
		stream = false
	}

	progress := newProgresser(args.Progress)
	progress.WithContext(ctx)
	progress.Printf("Running: %s", eng)
	c, err := rt.Campaign(ctx, rt.Source(stream, progress))
	switch {
	case err != nil:
		progress.Errorf("%s could not complete the campaign", eng.Binary)
	case c.EngineErr != nil:
		progress.Printf("%s reported falsified properties (%v)", eng.Binary, c.EngineErr)
	}
	if err := progress.Terminate(); err != nil {
		log.Println("[ERR]", err)
	}
	return conclude(c, err, args, eng.String(), !stream)
}

// conclude reports a judged campaign and picks the exit code.
// echo shows the engine's output again when the engine failed.
func conclude(c *runtime.Campaign, err error, args *params, engineName string, echo bool) int {
	if err != nil {
		var invocation *engine.InvocationError
		switch {
		case errors.Is(err, engine.ErrNotFound):
			as.ColorERR.Println("Error:", err)
			fmt.Println(installHint)
			return code.FailedRequire
		case errors.As(err, &invocation):
			if echo {
				fmt.Print(invocation.Stdout)
				fmt.Fprint(os.Stderr, invocation.Stderr)
			}
			as.ColorERR.Println("Error:", err)
			return code.FailedExec
		default:
			as.ColorERR.Println("Error:", err)
			return code.FailedExec
		}
	}
	log.Printf("[DBG] engine output:\n%s", c.Text)

	fmt.Println()
	if err := summary.Render(os.Stdout, c.Results, c.Stats, c.Verdict); err != nil {
		log.Println("[ERR]", err)
	}
	if args.Diff {
		fmt.Println()
		if err := summary.RenderDiff(os.Stdout, c.Verdict); err != nil {
			log.Println("[ERR]", err)
		}
	}
	fmt.Println()
	summary.Conclusion(os.Stdout, c.Verdict)

	if args.Summary != "" {
		f := summary.NewFile(engineName, c.Stats, c.Verdict)
		if len(args.Labels) != 0 {
			f.Labels = args.Labels
		}
		if err := summary.WriteFile(args.Summary, f); err != nil {
			as.ColorERR.Println(err)
			return code.FailedSummary
		}
		log.Println("[NFO] wrote summary to", args.Summary)
	}

	if !c.Verdict.SuitePassed() {
		return code.Failed
	}
	return code.OK
}
