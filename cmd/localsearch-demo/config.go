package main

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/localsearch/param"
)

// loadParamOverrides reads path as YAML and returns it as a
// {prefix: {flag: value}} document, ready to hand to param.Box.FromJSON one
// prefix at a time. An empty path is not an error: it means "use every
// runner/solver default", which solve treats as the normal case, not a
// degraded one.
func loadParamOverrides(path string) (map[string]map[string]interface{}, error) {
	doc := map[string]map[string]interface{}{}
	if path == "" {
		return doc, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// applyOverrides routes doc[box.Prefix] into box, if present. A missing
// prefix in the document is not an error: a config file overriding only the
// solver's parameters, say, should leave the runner's box untouched.
func applyOverrides(box *param.Box, doc map[string]map[string]interface{}) error {
	section, ok := doc[box.Prefix]
	if !ok {
		return nil
	}
	return box.FromJSON(section)
}
