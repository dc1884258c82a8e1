package runtime

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"go.starlark.net/starlark"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/engine"
	"github.com/FuzzyMonkeyCo/verdict/pkg/oracle"
	"github.com/FuzzyMonkeyCo/verdict/pkg/report"
)

// DefaultStarfile is looked up in the current directory
const DefaultStarfile = "verdict.star"

// Runtime holds how to run a campaign and how to judge its report
type Runtime struct {
	starfile string
	contents []byte

	thread  *starlark.Thread
	globals starlark.StringDict
	envRead map[string]string

	engine    *engine.Engine
	engineSet bool
	stream    bool

	rules       []oracle.Rule
	fallback    report.Outcome
	fallbackSet bool
	oracle      *oracle.Oracle
}

// Defaults runs echidna on BasicEchidnaTest in buffered mode and expects
// properties marked `_should_fail` to fail
func Defaults() *Runtime {
	return &Runtime{
		engine:   engine.Default(),
		fallback: report.Passing,
		oracle:   oracle.Default(),
		envRead:  make(map[string]string),
	}
}

// New loads configuration from starfile. A missing DefaultStarfile
// means Defaults.
func New(starfile string) (rt *Runtime, err error) {
	var contents []byte
	if contents, err = os.ReadFile(starfile); err != nil {
		if errors.Is(err, os.ErrNotExist) && starfile == DefaultStarfile {
			log.Printf("[NFO] no %s found, using defaults", starfile)
			rt, err = Defaults(), nil
			return
		}
		log.Println("[ERR]", err)
		as.ColorERR.Printf("You must provide a readable %q file.\n", starfile)
		return
	}

	r := Defaults()
	r.starfile = starfile
	r.contents = contents
	r.thread = &starlark.Thread{
		Name:  "cfg",
		Load:  loadDisabled,
		Print: func(_ *starlark.Thread, msg string) { as.ColorWRN.Println(msg) },
	}

	log.Println("[NFO] loading starlark config from", starfile)
	start := time.Now()
	if err = r.loadCfg(); err != nil {
		return
	}
	log.Println("[NFO] loaded", starfile, "in", time.Since(start))

	rt = r
	return
}

func (rt *Runtime) loadCfg() (err error) {
	globals := starlark.StringDict{"verdict": rt.newModule()}
	if rt.globals, err = starlark.ExecFile(rt.thread, rt.starfile, rt.contents, globals); err != nil {
		log.Println("[ERR]", err)
		return
	}
	delete(rt.globals, "verdict")
	log.Printf("[DBG] starlark globals: %d", len(rt.globals))

	rules := rt.rules
	if len(rules) == 0 {
		rules = oracle.Default().Rules()
	}
	if rt.oracle, err = oracle.New(rules, rt.fallback); err != nil {
		log.Println("[ERR]", err)
		return
	}

	log.Printf("[NFO] engine: %s (streaming: %v)", rt.engine, rt.stream)
	for _, rule := range rt.oracle.Rules() {
		log.Printf("[NFO] expecting names containing %q to be %s", rule.Marker, rule.Expect)
	}
	log.Printf("[NFO] expecting other names to be %s", rt.oracle.Fallback())
	return
}

func loadDisabled(_ *starlark.Thread, module string) (starlark.StringDict, error) {
	return nil, fmt.Errorf("cannot load %q: load() is disabled", module)
}

// Starfile is the configuration file loaded, empty when using Defaults
func (rt *Runtime) Starfile() string { return rt.starfile }

// Engine describes the fuzzer invocation
func (rt *Runtime) Engine() *engine.Engine { return rt.engine }

// Streams tells whether the configuration asks for streaming mode
func (rt *Runtime) Streams() bool { return rt.stream }

// Oracle judges property results
func (rt *Runtime) Oracle() *oracle.Oracle { return rt.oracle }
