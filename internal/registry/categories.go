package registry

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// CategorySet is the fixed taxonomy of category identifiers. Membership is
// exact, case-sensitive string equality. The set is built once per run and
// read-only afterwards.
type CategorySet map[string]struct{}

type categoryRecord struct {
	ID string `yaml:"id"`
}

// LoadCategories reads the taxonomy document: a YAML sequence of records
// carrying at least an id field. An absent or unparsable file yields an
// empty set, so every downstream category reference fails instead of a
// broken taxonomy silently passing validation.
func LoadCategories(path string) CategorySet {
	set := CategorySet{}

	data, err := os.ReadFile(path)
	if err != nil {
		return set
	}

	var records []categoryRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return set
	}

	for _, rec := range records {
		if rec.ID != "" {
			set[rec.ID] = struct{}{}
		}
	}
	return set
}

// Has reports whether id belongs to the taxonomy.
func (s CategorySet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the identifiers in sorted order.
func (s CategorySet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
