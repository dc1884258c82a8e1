package cwid

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// slotDigits pads slot numbers so they sort lexically
const slotDigits = 20

var runPrefix string

// LogFile points to a usable regular file after a call to MakePwdID()
func LogFile() string { return runPrefix + ".log" }

// MakePwdID picks the per-run file prefix in the temporary directory.
// Runs from the same directory with the same starfile share a base name.
// offset 0 picks a fresh slot, 1 the latest existing one, and so on.
func MakePwdID(name, starfile string, offset uint64) error {
	if err := refuseSymlink(starfile); err != nil {
		return err
	}

	id, err := dirID(starfile)
	if err != nil {
		return err
	}

	tmp := os.TempDir()
	if err := os.MkdirAll(tmp, 0700); err != nil {
		return err
	}
	base := filepath.Join(tmp, "."+name+"_"+id)

	latest, err := latestSlot(base)
	if err != nil {
		return err
	}
	if offset > latest {
		return fmt.Errorf("no run that far back: only %d so far", latest)
	}

	runPrefix = fmt.Sprintf("%s_%0*d", base, slotDigits, latest+1-offset)
	return nil
}

// A missing starfile is fine: defaults apply.
func refuseSymlink(starfile string) error {
	fi, err := os.Lstat(starfile)
	if err == nil && fi.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("is a symlink: %q", starfile)
	}
	return nil
}

func dirID(starfile string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if cwd, err = filepath.EvalSymlinks(cwd); err != nil {
		return "", err
	}

	h := fnv.New64a()
	if _, err := io.WriteString(h, cwd+"/"+path.Clean(filepath.ToSlash(starfile))); err != nil {
		return "", err
	}
	return strconv.FormatUint(h.Sum64(), 10), nil
}

// latestSlot is the biggest slot used so far under base, 0 if none.
func latestSlot(base string) (latest uint64, err error) {
	var paths []string
	if paths, err = filepath.Glob(base + "_" + strings.Repeat("?", slotDigits) + ".*"); err != nil {
		return
	}
	for _, p := range paths {
		digits := p[len(base)+1 : len(base)+1+slotDigits]
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			continue
		}
		if n > latest {
			latest = n
		}
	}
	return
}
