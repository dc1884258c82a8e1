package main

import (
	"context"
	"io"
	"os"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/code"
	"github.com/FuzzyMonkeyCo/verdict/pkg/engine"
	"github.com/FuzzyMonkeyCo/verdict/pkg/runtime"
)

func doParse(ctx context.Context, args *params) int {
	rt, err := runtime.New(args.Starfile)
	if err != nil {
		as.ColorERR.Println(err)
		return code.FailedConfig
	}

	var r io.Reader = os.Stdin
	name := "-"
	if args.File != "" && args.File != "-" {
		f, err := os.Open(args.File)
		if err != nil {
			as.ColorERR.Println(err)
			return code.Failed
		}
		defer f.Close()
		r, name = f, args.File
	}

	c, err := rt.Campaign(ctx, &engine.Captured{R: r})
	return conclude(c, err, args, name, false)
}
