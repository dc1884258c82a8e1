package main

import (
	"fmt"

	docopt "github.com/docopt/docopt-go"
	"github.com/mitchellh/mapstructure"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/code"
	"github.com/FuzzyMonkeyCo/verdict/pkg/tags"
)

type params struct {
	Run, Parse, Lint, Fmt, Logs bool
	Version, Help               bool
	Stream                      bool     `mapstructure:"--stream"`
	Buffered                    bool     `mapstructure:"--buffered"`
	Progress                    string   `mapstructure:"--progress"`
	Starfile                    string   `mapstructure:"--starfile"`
	Summary                     string   `mapstructure:"--summary"`
	Diff                        bool     `mapstructure:"--diff"`
	Show                        bool     `mapstructure:"--show"`
	Write                       bool     `mapstructure:"-w"`
	File                        string   `mapstructure:"FILE"`
	LogOffset                   uint64   `mapstructure:"--previous"`
	Verbosity                   uint8    `mapstructure:"-v"`
	Tags                        []string `mapstructure:"--tag"`
	Labels                      tags.Labels
}

func usage(argv []string) (args *params, ret int) {
	B := as.ColorNFO.Sprintf(binName)
	usage := binTitle + `

Usage:
  ` + B + ` [-vvv] run [--stream | --buffered] [--progress=MODE] [--starfile=PATH]
                 [--summary=PATH] [--diff] [--tag=KV]...
  ` + B + ` [-vvv] parse [--starfile=PATH] [--summary=PATH] [--diff] [--tag=KV]...
                 [FILE]
  ` + B + ` [-vvv] lint [--show] [--starfile=PATH]
  ` + B + ` [-vvv] fmt [-w] [--starfile=PATH]
  ` + B + ` logs [--previous=N]
  ` + B + ` version | --version
  ` + B + ` help    | --help    | -h

Options:
  -v                Debug verbosity level, repeat for more
  version           Show the version string
  run               Run the fuzzing engine then judge its report
  parse             Judge an already captured report read from FILE or STDIN
  lint              Show the effective configuration
  fmt               Standardize the configuration file's format
  logs              Show the log of a previous run
  --stream          Echo the engine's output while it runs
  --buffered        Show only the judged report once the engine exits
  --progress=MODE   How to echo a streaming run: ci, cli or dots
  --starfile=PATH   Configuration file [default: ` + defaultStarfile + `]
  --summary=PATH    Also write a YAML summary of the verdict to PATH
  --diff            Show expected against observed outcomes as a diff
  --show            Print the configuration file too
  -w                Rewrite the configuration file in place
  --tag=KV          Label the summary with key=value pairs
  --previous=N      Show the Nth log before the last one

Properties whose name contains "` + defaultMarker + `" are expected to be falsified,
every other property is expected to hold. Exit code is 0 iff all properties behaved.

Try:
  ` + B + ` run --stream
  echidna . --contract BasicEchidnaTest | ` + B + ` parse --diff`

	parser := &docopt.Parser{
		HelpHandler:   docopt.NoHelpHandler,
		SkipHelpFlags: true,
	}
	opts, err := parser.ParseArgs(usage, argv, "")
	if err != nil {
		// Usage shown: bad args
		as.ColorERR.Println(err)
		ret = code.Failed
		return
	}

	if opts["help"].(bool) || opts["--help"].(bool) || opts["-h"].(bool) {
		fmt.Println(usage)
		ret = code.OK
		return
	}

	args = &params{}
	cfg := &mapstructure.DecoderConfig{
		Result:           &args,
		WeaklyTypedInput: true,
	}
	d, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		as.ColorERR.Println(err)
		return nil, code.Failed
	}
	if err := d.Decode(opts); err != nil {
		as.ColorERR.Println(err)
		return nil, code.Failed
	}

	if opts["--version"].(bool) {
		args.Version = true
	}
	if args.Starfile == "" {
		args.Starfile = defaultStarfile
	}
	switch args.Progress {
	case "", progressCI, progressCLI, progressDots:
	default:
		as.ColorERR.Printf("--progress must be one of %s, %s or %s\n", progressCI, progressCLI, progressDots)
		return nil, code.Failed
	}
	if args.Labels, err = tags.ParseLabels(args.Tags); err != nil {
		as.ColorERR.Println(err)
		return nil, code.Failed
	}

	return
}
