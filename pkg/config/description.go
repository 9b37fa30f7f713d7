package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/confhaus/confval/pkg/errors"
	"github.com/confhaus/confval/pkg/logging"
	"github.com/confhaus/confval/pkg/types"
)

// descriptionFile mirrors the TOML layout of a description file
type descriptionFile struct {
	URI        string          `koanf:"uri"`
	Parameters []parameterFile `koanf:"parameter"`
}

type parameterFile struct {
	Name          string      `koanf:"name"`
	Type          string      `koanf:"type"`
	Required      bool        `koanf:"required"`
	Min           interface{} `koanf:"min"`
	Max           interface{} `koanf:"max"`
	Pattern       string      `koanf:"pattern"`
	Options       []string    `koanf:"options"`
	Multiple      bool        `koanf:"multiple"`
	MultipleLimit int         `koanf:"multiple_limit"`
}

// LoadDescription reads a configuration description from a TOML or XML
// file, dispatching on the file extension.
func LoadDescription(path string) (*types.ConfigDescription, error) {
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loading configuration description")

	var desc *types.ConfigDescription
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		desc, err = loadDescriptionTOML(path)
	case ".xml":
		desc, err = loadDescriptionXML(path)
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported description format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if err := desc.Validate(); err != nil {
		return nil, err
	}
	logger.Debug().Str("uri", desc.URI).Int("parameterCount", len(desc.Parameters)).
		Msg("Description loaded")
	return desc, nil
}

func loadDescriptionTOML(path string) (*types.ConfigDescription, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load description from %s", path)
	}

	var df descriptionFile
	if err := k.Unmarshal("", &df); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse description from %s", path)
	}

	desc := &types.ConfigDescription{URI: df.URI}
	for _, pf := range df.Parameters {
		param, err := pf.toParameter()
		if err != nil {
			return nil, err
		}
		desc.Parameters = append(desc.Parameters, *param)
	}
	return desc, nil
}

func (pf parameterFile) toParameter() (*types.Parameter, error) {
	kind, err := types.ParseKind(pf.Type)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDescInvalid, "parameter %q declares an invalid type", pf.Name)
	}

	min, err := boundFromRaw(pf.Name, pf.Min)
	if err != nil {
		return nil, err
	}
	max, err := boundFromRaw(pf.Name, pf.Max)
	if err != nil {
		return nil, err
	}

	return &types.Parameter{
		Name:          pf.Name,
		Kind:          kind,
		Required:      pf.Required,
		Min:           min,
		Max:           max,
		Pattern:       pf.Pattern,
		Options:       pf.Options,
		Multiple:      pf.Multiple,
		MultipleLimit: pf.MultipleLimit,
	}, nil
}

// boundFromRaw converts a decoded TOML number (or number string) into a
// bound. TOML floats arrive as float64; the shortest decimal representation
// of the float is used, which round-trips the lexical form of the file.
func boundFromRaw(name string, raw interface{}) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	var d decimal.Decimal
	switch n := raw.(type) {
	case int64:
		d = decimal.NewFromInt(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case uint64:
		d = decimal.NewFromUint64(n)
	case float64:
		d = decimal.NewFromFloat(n)
	case string:
		var err error
		d, err = decimal.NewFromString(n)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDescInvalid, "parameter %q declares an invalid bound", name)
		}
	default:
		return nil, errors.Newf(errors.ErrDescInvalid, "parameter %q declares a non-numeric bound %v", name, raw)
	}
	return &d, nil
}
