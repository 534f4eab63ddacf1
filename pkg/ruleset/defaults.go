package ruleset

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed rules.yml
var defaultPack []byte

//nolint:gochecknoglobals // Lazily built, immutable default pack.
var (
	defaultOnce sync.Once
	defaultSet  *RuleSet
)

// Default returns the built-in rule pack.
// The embedded pack is covered by tests; a parse failure here is a build
// defect, so it panics rather than returning an error.
func Default() *RuleSet {
	defaultOnce.Do(func() {
		rs, err := Load(bytes.NewReader(defaultPack))
		if err != nil {
			panic(fmt.Sprintf("ruleset: embedded rule pack is invalid: %v", err))
		}
		defaultSet = rs
	})
	return defaultSet
}
