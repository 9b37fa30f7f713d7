package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/confhaus/confval/pkg/errors"
	"github.com/confhaus/confval/pkg/logging"
	"github.com/confhaus/confval/pkg/types"
)

// LoadValues reads a flat TOML or YAML file of candidate values keyed by
// parameter name. Numbers are loaded as arbitrary-precision decimals.
func LoadValues(path string) (map[string]types.Value, error) {
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loading candidate values")

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported values format %q", filepath.Ext(path))
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load values from %s", path)
	}

	values := make(map[string]types.Value)
	for key, raw := range k.Raw() {
		value, err := valueFromRaw(key, raw)
		if err != nil {
			return nil, err
		}
		values[key] = value
	}

	logger.Debug().Int("valueCount", len(values)).Msg("Values loaded")
	return values, nil
}

// valueFromRaw maps a decoded file entry onto the value sum type
func valueFromRaw(key string, raw interface{}) (types.Value, error) {
	switch v := raw.(type) {
	case bool:
		return types.BoolValue(v), nil
	case string:
		return types.TextValue(v), nil
	case int:
		return types.NewBigDecimal(decimal.NewFromInt(int64(v))), nil
	case int64:
		return types.NewBigDecimal(decimal.NewFromInt(v)), nil
	case uint64:
		return types.NewBigDecimal(decimal.NewFromUint64(v)), nil
	case float64:
		return types.NewBigDecimal(decimal.NewFromFloat(v)), nil
	case []interface{}:
		list := make(types.ListValue, 0, len(v))
		for _, el := range v {
			value, err := valueFromRaw(key, el)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "value %q has unsupported type %T", key, raw)
	}
}
