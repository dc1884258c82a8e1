package main

import (
	"github.com/fatih/color"

	"github.com/FuzzyMonkeyCo/verdict/pkg/progresser"
	"github.com/FuzzyMonkeyCo/verdict/pkg/progresser/ci"
	"github.com/FuzzyMonkeyCo/verdict/pkg/progresser/cli"
	"github.com/FuzzyMonkeyCo/verdict/pkg/progresser/dots"
)

const (
	progressCI   = "ci"
	progressCLI  = "cli"
	progressDots = "dots"
)

func newProgresser(mode string) progresser.Interface {
	if mode == "" {
		mode = progressCLI
		if color.NoColor {
			mode = progressCI
		}
	}
	switch mode {
	case progressDots:
		return &dots.Progresser{}
	case progressCLI:
		return &cli.Progresser{}
	default:
		return &ci.Progresser{}
	}
}
