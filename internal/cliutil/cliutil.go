// internal/cliutil/cliutil.go
package cliutil

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals turns positional arguments into input paths.
// Globs are expanded in sorted order and must match at least one file;
// "-" stands for stdin. A path named twice (directly or through a glob)
// is kept once, since counting it again would double its k-mers.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool, len(posArgs))
	add := func(p string) {
		key := p
		if p != "-" {
			key = filepath.Clean(p)
		}
		if !seen[key] {
			seen[key] = true
			out = append(out, p)
		}
	}
	for _, a := range posArgs {
		if a == "-" || !hasGlobMeta(a) {
			add(a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, errors.Wrapf(err, "bad glob %q", a)
		}
		if len(m) == 0 {
			return nil, errors.Errorf("no input matched %q", a)
		}
		sort.Strings(m)
		for _, p := range m {
			add(p)
		}
	}
	return out, nil
}
