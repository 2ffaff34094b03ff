package locale

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// LoadYAML merges templates parsed from a YAML document into the catalog.
// The document maps language codes to code/template pairs:
//
//	es:
//	  validation.equal: "'{PropertyName}' debe ser igual a '{ComparisonValue}'."
//	de:
//	  validation.equal: "'{PropertyName}' muss gleich '{ComparisonValue}' sein."
func (c *Catalog) LoadYAML(content []byte) error {
	var data map[string]map[string]string
	if err := yaml.Unmarshal(content, &data); err != nil {
		return errors.Join(ErrParseCatalog, err)
	}
	return c.merge(data)
}

// LoadJSON merges templates parsed from a JSON document into the catalog,
// using the same language-to-templates structure as LoadYAML.
func (c *Catalog) LoadJSON(content []byte) error {
	var data map[string]map[string]string
	if err := json.Unmarshal(content, &data); err != nil {
		return errors.Join(ErrParseCatalog, err)
	}
	return c.merge(data)
}

func (c *Catalog) merge(data map[string]map[string]string) error {
	if len(data) == 0 {
		return ErrEmptyCatalog
	}

	for lang, templates := range data {
		if normalize(lang) == "" {
			return ErrEmptyLanguage
		}
		c.register(lang, templates)
	}
	return nil
}
