package runtime

import (
	"fmt"
	"log"
	"os"

	"go.starlark.net/starlark"
)

// bEnv reads an environment variable once per load, falling back on an
// optional default. An unset variable without a default is an error.
func (rt *Runtime) bEnv(th *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var env, def starlark.String
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &env, &def); err != nil {
		log.Println("[ERR]", err)
		return nil, err
	}
	envStr := env.GoString()

	if cachedStr, ok := rt.envRead[envStr]; ok {
		log.Printf("[NFO] read (cached) env %q: %q", envStr, cachedStr)
		return starlark.String(cachedStr), nil
	}

	if read, ok := os.LookupEnv(envStr); ok {
		rt.envRead[envStr] = read
		log.Printf("[NFO] read env %q: %q", envStr, read)
		return starlark.String(read), nil
	}

	if len(args) < 2 {
		err := fmt.Errorf("unset environment variable: %q", envStr)
		log.Println("[ERR]", err)
		return nil, err
	}
	defStr := def.GoString()
	rt.envRead[envStr] = defStr
	log.Printf("[NFO] read (unset) env %q: %q", envStr, defStr)
	return def, nil
}
