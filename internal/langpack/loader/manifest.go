package loader

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// manifest mirrors language.yaml. Sentence-type order in the file is the
// order the loaded language reports.
type manifest struct {
	Code          string              `yaml:"code"`
	Name          string              `yaml:"name"`
	SentenceTypes []sentenceTypeEntry `yaml:"sentence_types"`
}

type sentenceTypeEntry struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

func parseManifest(data []byte) (manifest, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return manifest{}, fmt.Errorf("parse %s: %w", ManifestName, err)
	}

	m.Code = strings.TrimSpace(m.Code)
	m.Name = strings.TrimSpace(m.Name)
	if m.Code == "" {
		return manifest{}, errors.New("manifest does not declare a language code")
	}
	if m.Name == "" {
		return manifest{}, errors.New("manifest does not declare a language name")
	}

	for i := range m.SentenceTypes {
		entry := &m.SentenceTypes[i]
		entry.Name = strings.TrimSpace(entry.Name)
		if entry.Name == "" {
			return manifest{}, fmt.Errorf("sentence type %d has no name", i)
		}
		if entry.File == "" {
			return manifest{}, fmt.Errorf("sentence type %q does not reference a definition file", entry.Name)
		}
	}

	return m, nil
}

// parseDefinition checks a sentence-type definition file is well-formed YAML
// with some content. The definition's grammar semantics are owned by the
// downstream linguistic tool, not inspected here.
func parseDefinition(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc) == 0 {
		return errors.New("definition is empty")
	}
	return nil
}
