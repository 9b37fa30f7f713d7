package config

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/confhaus/confval/pkg/errors"
	"github.com/confhaus/confval/pkg/types"
)

// loadDescriptionXML reads a description in the XML catalog format:
//
//	<config-description uri="thing-type:hue:bridge">
//	  <parameter name="host" type="text" required="true" min="3" max="64"/>
//	  <parameter name="protocol" type="text">
//	    <options>
//	      <option value="http"/>
//	      <option value="https"/>
//	    </options>
//	  </parameter>
//	</config-description>
func loadDescriptionXML(path string) (*types.ConfigDescription, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load description from %s", path)
	}

	root := doc.SelectElement("config-description")
	if root == nil {
		return nil, errors.Newf(errors.ErrConfigParse, "%s has no config-description root element", path)
	}

	desc := &types.ConfigDescription{URI: root.SelectAttrValue("uri", "")}
	for _, el := range root.SelectElements("parameter") {
		param, err := parameterFromXML(el)
		if err != nil {
			return nil, err
		}
		desc.Parameters = append(desc.Parameters, *param)
	}
	return desc, nil
}

func parameterFromXML(el *etree.Element) (*types.Parameter, error) {
	name := el.SelectAttrValue("name", "")

	kind, err := types.ParseKind(el.SelectAttrValue("type", ""))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDescInvalid, "parameter %q declares an invalid type", name)
	}

	param := &types.Parameter{
		Name:    name,
		Kind:    kind,
		Pattern: el.SelectAttrValue("pattern", ""),
	}

	if v := el.SelectAttrValue("required", ""); v != "" {
		param.Required, err = strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDescInvalid, "parameter %q declares an invalid required flag", name)
		}
	}
	if v := el.SelectAttrValue("multiple", ""); v != "" {
		param.Multiple, err = strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDescInvalid, "parameter %q declares an invalid multiple flag", name)
		}
	}
	if v := el.SelectAttrValue("multipleLimit", ""); v != "" {
		param.MultipleLimit, err = strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDescInvalid, "parameter %q declares an invalid multipleLimit", name)
		}
	}
	if v := el.SelectAttrValue("min", ""); v != "" {
		param.Min, err = boundFromRaw(name, v)
		if err != nil {
			return nil, err
		}
	}
	if v := el.SelectAttrValue("max", ""); v != "" {
		param.Max, err = boundFromRaw(name, v)
		if err != nil {
			return nil, err
		}
	}

	if options := el.SelectElement("options"); options != nil {
		for _, opt := range options.SelectElements("option") {
			param.Options = append(param.Options, opt.SelectAttrValue("value", ""))
		}
	}

	return param, nil
}
