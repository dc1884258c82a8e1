package runtime

import (
	"fmt"
	"io"
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fatih/color"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
)

var (
	lintPPlexer = chroma.Coalesce(lexers.Get("python"))
	lintPPfmter = formatters.TTY16m
	lintPPstyle = styles.Monokai
)

// Lint describes the effective configuration, optionally showing the starfile
func (rt *Runtime) Lint(w io.Writer, show bool) (err error) {
	if show && len(rt.contents) != 0 {
		fmter := lintPPfmter
		if color.NoColor {
			fmter = formatters.NoOp
		}
		var it chroma.Iterator
		if it, err = lintPPlexer.Tokenise(nil, string(rt.contents)); err != nil {
			return
		}
		if err = fmter.Format(w, lintPPstyle, it); err != nil {
			return
		}
		fmt.Fprintln(w)
	}

	starfile := rt.starfile
	if starfile == "" {
		starfile = "(defaults)"
	}
	mode := "buffered"
	if rt.stream {
		mode = "streaming"
	}

	as.ColorNFO.Fprint(w, "config: ")
	fmt.Fprintln(w, starfile)
	as.ColorNFO.Fprint(w, "engine: ")
	fmt.Fprintln(w, rt.engine)
	as.ColorNFO.Fprint(w, "mode: ")
	fmt.Fprintln(w, mode)
	envs := make([]string, 0, len(rt.envRead))
	for env := range rt.envRead {
		envs = append(envs, env)
	}
	sort.Strings(envs)
	for _, env := range envs {
		as.ColorNFO.Fprint(w, "env: ")
		fmt.Fprintf(w, "%s=%q\n", env, rt.envRead[env])
	}
	for _, rule := range rt.oracle.Rules() {
		as.ColorNFO.Fprint(w, "expect: ")
		fmt.Fprintf(w, "names containing %q are %s\n", rule.Marker, rule.Expect)
	}
	as.ColorNFO.Fprint(w, "fallback: ")
	fmt.Fprintf(w, "other names are %s\n", rt.oracle.Fallback())
	return
}
