package tags

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet lists the only characters allowed in LegalName
const Alphabet = "abcdefghijklmnopqrstuvwxyz_1234567890"

// Labels classify a campaign, e.g. by CI job or branch
type Labels = map[string]string

// ParseLabels reads key=value pairs. Keys must be legal names,
// values non-empty and keys unique.
func ParseLabels(kvs []string) (labels Labels, err error) {
	labels = make(Labels, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			err = fmt.Errorf("labels must follow key=value format: %q", kv)
			return nil, err
		}
		if err = LegalName(k); err != nil {
			return nil, err
		}
		if v == "" {
			err = fmt.Errorf("value for label %q is empty", k)
			return nil, err
		}
		if _, ok := labels[k]; ok {
			err = fmt.Errorf("label %q appears more than once", k)
			return nil, err
		}
		labels[k] = v
	}
	return
}

// LegalName fails when string isn't the right format.
func LegalName(name string) error {
	if len(name) == 0 {
		return errors.New("string is empty")
	}
	if len(name) > 255 {
		return fmt.Errorf("string is too long: %q", name)
	}
	for _, c := range name {
		if !strings.ContainsRune(Alphabet, c) {
			return fmt.Errorf("string should only contain characters from %s: %q", Alphabet, name)
		}
	}
	return nil
}
