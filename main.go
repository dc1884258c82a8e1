package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/hashicorp/logutils"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/code"
	"github.com/FuzzyMonkeyCo/verdict/pkg/cwid"
	"github.com/FuzzyMonkeyCo/verdict/pkg/oracle"
	"github.com/FuzzyMonkeyCo/verdict/pkg/runtime"
)

const (
	binName    = "verdict"
	binVersion = "0.1.0"
	binTitle   = binName + "/" + binVersion

	defaultStarfile = runtime.DefaultStarfile
	defaultMarker   = oracle.ShouldFailMarker
)

func main() {
	os.Exit(actualMain())
}

func actualMain() int {
	args, ret := usage(os.Args[1:])
	if args == nil {
		return ret
	}

	if args.Version {
		fmt.Println(binTitle)
		return code.OK
	}

	var offset uint64
	if args.Logs {
		offset = 1 + args.LogOffset
	}
	if err := cwid.MakePwdID(binName, args.Starfile, offset); err != nil {
		as.ColorERR.Println(err)
		return code.Failed
	}
	if args.Logs {
		return doLogs()
	}

	logCatchall, err := os.OpenFile(cwid.LogFile(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		as.ColorERR.Println(err)
		return code.Failed
	}
	defer logCatchall.Close()
	setupLogging(logCatchall, args.Verbosity)
	log.Printf("[NFO] %s %+v", binTitle, *args)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	switch {
	case args.Fmt:
		return doFmt(args)
	case args.Lint:
		return doLint(args)
	case args.Parse:
		return doParse(ctx, args)
	case args.Run:
		return doRun(ctx, args)
	default:
		log.Println("[ERR] unhandled command")
		return code.Failed
	}
}

var logLevels = []logutils.LogLevel{"DBG", "NFO", "WRN", "ERR", "NOP"}

// Everything goes to the log file, only what verbosity asks for to stderr.
func setupLogging(logFile io.Writer, verbosity uint8) {
	log.SetFlags(log.Lshortfile | log.Lmicroseconds | log.LUTC)
	log.SetOutput(io.MultiWriter(logFile, &logutils.LevelFilter{
		Levels:   logLevels,
		MinLevel: minLevel(verbosity),
		Writer:   os.Stderr,
	}))
}

func minLevel(verbosity uint8) logutils.LogLevel {
	switch verbosity {
	case 0:
		return "NOP"
	case 1:
		return "ERR"
	case 2:
		return "NFO"
	default:
		return "DBG"
	}
}
