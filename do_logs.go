package main

import (
	"io"
	"os"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/code"
	"github.com/FuzzyMonkeyCo/verdict/pkg/cwid"
)

func doLogs() int {
	f, err := os.Open(cwid.LogFile())
	if err != nil {
		as.ColorERR.Println(err)
		return code.Failed
	}
	defer f.Close()

	if _, err := io.Copy(os.Stdout, f); err != nil {
		as.ColorERR.Println(err)
		return code.Failed
	}
	return code.OK
}
