package as

import (
	"github.com/fatih/color"
)

var (
	// ColorERR highlights violations and fatal errors
	ColorERR = color.New(color.FgRed)
	// ColorWRN highlights counts and warnings
	ColorWRN = color.New(color.FgYellow)
	// ColorNFO highlights property names and section titles
	ColorNFO = color.New(color.Bold)
	// ColorOK highlights expected behaviors
	ColorOK = color.New(color.FgGreen)
)
