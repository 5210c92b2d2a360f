package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// YAML renders c in the same layout Load reads, so the output can be used
// as a starting config file.
func (c Config) YAML() ([]byte, error) {
	k := koanf.New(".")
	var setErr error
	walkLeaves(reflect.ValueOf(c), "", func(path string, v reflect.Value) {
		if setErr != nil {
			return
		}
		val := v.Interface()
		if d, ok := val.(time.Duration); ok {
			val = d.String()
		}
		setErr = k.Set(path, val)
	})
	if setErr != nil {
		return nil, fmt.Errorf("render config: %w", setErr)
	}

	out, err := k.Marshal(yaml.Parser())
	if err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	return out, nil
}
