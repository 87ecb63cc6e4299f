// Package i18n looks up display labels by language.
package i18n

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Language is a display language tag.
type Language string

const (
	English Language = "English"
	Arabic  Language = "Arabic"
)

// Languages lists the supported tags in toggle order.
var Languages = []Language{English, Arabic}

// Next returns the language after l, wrapping around.
func (l Language) Next() Language {
	for i, v := range Languages {
		if v == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return English
}

// ParseLanguage validates a language tag.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", s)
}

//go:embed labels.yaml
var builtinLabels []byte

var builtin = mustLoad(builtinLabels)

// Catalog holds labels per language.
type Catalog struct {
	labels map[Language]map[string]string
}

// Builtin returns the embedded catalog.
func Builtin() *Catalog {
	return builtin
}

// Load parses a YAML table of language -> key -> label.
func Load(data []byte) (*Catalog, error) {
	var labels map[Language]map[string]string
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	if _, ok := labels[English]; !ok {
		return nil, fmt.Errorf("parse labels: missing %s table", English)
	}
	return &Catalog{labels: labels}, nil
}

func mustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Label returns the label for key in lang, falling back to English and then
// to the key itself.
func (c *Catalog) Label(lang Language, key string) string {
	if v, ok := c.labels[lang][key]; ok {
		return v
	}
	if v, ok := c.labels[English][key]; ok {
		return v
	}
	return key
}
