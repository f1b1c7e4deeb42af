// internal/cli/config.go
package cli

import (
	"strconv"

	"github.com/pkg/errors"
	toml "github.com/pelletier/go-toml"
	"github.com/spf13/pflag"
)

// Flags that only make sense on the command line.
var cliOnly = map[string]bool{"config": true, "help": true, "version": true}

// LoadConfig reads a TOML file whose top-level keys are long flag names and
// applies each value to flags not already set on the command line.
// Arrays are applied element by element, so repeatable flags work as expected.
func LoadConfig(fs *pflag.FlagSet, path string) error {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return errors.Wrapf(err, "error reading configuration file '%s'", path)
	}
	for _, key := range tree.Keys() {
		f := fs.Lookup(key)
		if f == nil || cliOnly[key] {
			return errors.Errorf("invalid option in configuration file: %v", key)
		}
		if f.Changed {
			continue
		}
		vals, err := configValues(tree.Get(key))
		if err != nil {
			return errors.Wrapf(err, "configuration file '%s': %s", path, key)
		}
		for _, v := range vals {
			if err := f.Value.Set(v); err != nil {
				return errors.Wrapf(err, "configuration file '%s': %s", path, key)
			}
		}
	}
	return nil
}

func configValues(v interface{}) ([]string, error) {
	switch x := v.(type) {
	case string:
		return []string{x}, nil
	case int64:
		return []string{strconv.FormatInt(x, 10)}, nil
	case bool:
		return []string{strconv.FormatBool(x)}, nil
	case []interface{}:
		var out []string
		for _, e := range x {
			if _, nested := e.([]interface{}); nested {
				return nil, errors.New("nested arrays are not supported")
			}
			vs, err := configValues(e)
			if err != nil {
				return nil, err
			}
			out = append(out, vs...)
		}
		return out, nil
	case *toml.Tree:
		return nil, errors.New("tables are not supported")
	}
	return nil, errors.Errorf("unsupported value type %T", v)
}
