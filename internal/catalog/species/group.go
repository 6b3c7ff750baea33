package species

import (
	"sort"
	"strings"
)

// Group is one display bucket of the grouped species view.
type Group struct {
	Name    string     `json:"name"`
	Species []*Species `json:"species"`
}

// GroupAll partitions list into display buckets keyed by [Species.GroupKey].
// Buckets are sorted alphabetically; within a bucket the input order is kept.
func GroupAll(list []*Species, fallback string) []Group {
	buckets := map[string][]*Species{}
	for _, s := range list {
		key := s.GroupKey(fallback)
		buckets[key] = append(buckets[key], s)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, Group{Name: name, Species: buckets[name]})
	}
	return groups
}

// Matches reports whether s satisfies every set field of f.
// Query is a case-insensitive substring match on common and scientific name.
func (s *Species) Matches(f Filter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.ScientificName), q) {
			return false
		}
	}
	if f.Family != "" && !strings.EqualFold(s.Family, f.Family) {
		return false
	}
	if f.Category != "" {
		if s.Category == nil || !strings.EqualFold(*s.Category, f.Category) {
			return false
		}
	}
	return true
}
