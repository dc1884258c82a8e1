package runtime

import (
	"errors"
	"fmt"
	"log"

	"go.starlark.net/starlark"

	"github.com/FuzzyMonkeyCo/verdict/pkg/engine"
	"github.com/FuzzyMonkeyCo/verdict/pkg/oracle"
	"github.com/FuzzyMonkeyCo/verdict/pkg/report"
)

const moduleAttrs = 4

type module struct {
	attrs map[string]*starlark.Builtin
}

var _ starlark.HasAttrs = (*module)(nil)

func (rt *Runtime) newModule() (m *module) {
	m = &module{
		attrs: make(map[string]*starlark.Builtin, moduleAttrs),
	}
	m.attrs["engine"] = starlark.NewBuiltin("engine", rt.bEngine).BindReceiver(m)
	m.attrs["env"] = starlark.NewBuiltin("env", rt.bEnv).BindReceiver(m)
	m.attrs["expect"] = starlark.NewBuiltin("expect", rt.bExpect).BindReceiver(m)
	m.attrs["fallback"] = starlark.NewBuiltin("fallback", rt.bFallback).BindReceiver(m)
	return
}

func (m *module) AttrNames() []string {
	return []string{
		"engine",
		"env",
		"expect",
		"fallback",
	}
}

func (m *module) Attr(name string) (starlark.Value, error) {
	if v := m.attrs[name]; v != nil {
		return v, nil
	}
	return nil, nil // no such method
}

func (m *module) String() string        { return "verdict" }
func (m *module) Type() string          { return "verdict" }
func (m *module) Freeze()               {}
func (m *module) Truth() starlark.Bool  { return true }
func (m *module) Hash() (uint32, error) { return 0, errors.New("unhashable type: verdict") }

func namedArgsOnly(b *starlark.Builtin, args starlark.Tuple) (err error) {
	if len(args) != 0 {
		err = fmt.Errorf("%s(...) does not take positional arguments, only named ones", b.Name())
		log.Println("[ERR]", err)
	}
	return
}

func outcomeArg(b *starlark.Builtin, s starlark.String) (o report.Outcome, err error) {
	var ok bool
	if o, ok = report.ParseOutcome(s.GoString()); !ok {
		err = fmt.Errorf("%s: outcome must be %q or %q, got %q",
			b.Name(), report.Passing, report.Failed, s.GoString())
		log.Println("[ERR]", err)
	}
	return
}

func (rt *Runtime) bEngine(th *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (ret starlark.Value, err error) {
	ret = starlark.None
	if err = namedArgsOnly(b, args); err != nil {
		return
	}
	if rt.engineSet {
		err = fmt.Errorf("%s(...) can only be called once", b.Name())
		log.Println("[ERR]", err)
		return
	}

	d := engine.Default()
	binary := starlark.String(d.Binary)
	target := starlark.String(d.Target)
	contract := starlark.String(d.Contract)
	config := starlark.String(d.Config)
	var stream starlark.Bool
	if err = starlark.UnpackArgs(b.Name(), args, kwargs,
		"binary?", &binary,
		"target?", &target,
		"contract?", &contract,
		"config?", &config,
		"stream?", &stream,
	); err != nil {
		log.Println("[ERR]", err)
		return
	}

	for _, kv := range []struct {
		key   string
		value starlark.String
	}{
		{"binary", binary},
		{"target", target},
		{"contract", contract},
		{"config", config},
	} {
		if kv.value.GoString() == "" {
			err = fmt.Errorf("%s: %s must not be empty", b.Name(), kv.key)
			log.Println("[ERR]", err)
			return
		}
	}

	rt.engine = &engine.Engine{
		Binary:   binary.GoString(),
		Target:   target.GoString(),
		Contract: contract.GoString(),
		Config:   config.GoString(),
	}
	rt.stream = bool(stream)
	rt.engineSet = true
	log.Printf("[NFO] registered %s: %s", b.Name(), rt.engine)
	return
}

func (rt *Runtime) bExpect(th *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (ret starlark.Value, err error) {
	ret = starlark.None
	if err = namedArgsOnly(b, args); err != nil {
		return
	}

	var marker, outcome starlark.String
	if err = starlark.UnpackArgs(b.Name(), args, kwargs,
		"marker", &marker,
		"outcome", &outcome,
	); err != nil {
		log.Println("[ERR]", err)
		return
	}
	if marker.GoString() == "" {
		err = fmt.Errorf("%s: marker must not be empty", b.Name())
		log.Println("[ERR]", err)
		return
	}
	for _, rule := range rt.rules {
		if rule.Marker == marker.GoString() {
			err = fmt.Errorf("%s: marker %q is already expected", b.Name(), rule.Marker)
			log.Println("[ERR]", err)
			return
		}
	}

	var o report.Outcome
	if o, err = outcomeArg(b, outcome); err != nil {
		return
	}
	rt.rules = append(rt.rules, oracle.Rule{Marker: marker.GoString(), Expect: o})
	log.Printf("[NFO] registered %s: %q -> %s", b.Name(), marker.GoString(), o)
	return
}

func (rt *Runtime) bFallback(th *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (ret starlark.Value, err error) {
	ret = starlark.None
	if err = namedArgsOnly(b, args); err != nil {
		return
	}
	if rt.fallbackSet {
		err = fmt.Errorf("%s(...) can only be called once", b.Name())
		log.Println("[ERR]", err)
		return
	}

	var outcome starlark.String
	if err = starlark.UnpackArgs(b.Name(), args, kwargs, "outcome", &outcome); err != nil {
		log.Println("[ERR]", err)
		return
	}
	if rt.fallback, err = outcomeArg(b, outcome); err != nil {
		return
	}
	rt.fallbackSet = true
	return
}
