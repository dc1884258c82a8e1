package main

import (
	"fmt"
	"os"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/code"
	"github.com/FuzzyMonkeyCo/verdict/pkg/runtime"
)

func doLint(args *params) int {
	rt, err := runtime.New(args.Starfile)
	if err != nil {
		as.ColorERR.Println(err)
		return code.FailedConfig
	}
	if err := rt.Lint(os.Stdout, args.Show); err != nil {
		as.ColorERR.Println(err)
		return code.FailedConfig
	}
	fmt.Println("No configuration errors found.")
	return code.OK
}

func doFmt(args *params) int {
	if err := runtime.Format(args.Starfile, args.Write, os.Stdout); err != nil {
		as.ColorERR.Println(err)
		return code.FailedConfig
	}
	return code.OK
}
