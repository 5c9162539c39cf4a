package headermap

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/comps-cli/internal/model"
)

// LoadSynonyms reads a YAML synonym table keyed by canonical field name.
// Unknown keys are rejected so a typo cannot silently disable a field.
// Fields omitted from the file fall back to the built-in defaults.
func LoadSynonyms(path string) (Synonyms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "headermap: read synonyms file")
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(err, "headermap: unmarshal synonyms file")
	}

	known := make(map[model.CanonicalField]bool, len(model.CanonicalFields))
	for _, key := range model.CanonicalFields {
		known[key] = true
	}

	syn := Defaults()
	for key, names := range raw {
		field := model.CanonicalField(key)
		if !known[field] {
			return nil, eris.Errorf("headermap: unknown canonical field %q in synonyms file", key)
		}
		syn[field] = names
	}
	return syn, nil
}
