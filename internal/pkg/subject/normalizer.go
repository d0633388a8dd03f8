package subject

import (
	"sort"
	"strings"
)

// Normalizer maps surface subject spellings to canonical names. The alias and
// canonical tables are injected from configuration; unknown subjects pass
// through unchanged so the retrieval layer can still try them.
type Normalizer struct {
	aliases  map[string]string
	standard map[string]struct{}
}

func NewNormalizer(standardSubjects []string, aliases map[string]string) *Normalizer {
	std := make(map[string]struct{}, len(standardSubjects))
	for _, s := range standardSubjects {
		std[clean(s)] = struct{}{}
	}

	// Keys get the same cleaning as lookups so aliases configured with
	// underscores or mixed case still resolve.
	al := make(map[string]string, len(aliases))
	for k, v := range aliases {
		al[clean(k)] = clean(v)
	}

	return &Normalizer{aliases: al, standard: std}
}

func clean(subject string) string {
	s := strings.ToLower(strings.TrimSpace(subject))
	return strings.ReplaceAll(s, "_", " ")
}

// Normalize converts any subject input to its canonical form. Total over
// strings: never errors, unknown input is returned cleaned but unmapped.
func (n *Normalizer) Normalize(subject string) string {
	s := clean(subject)

	if canonical, ok := n.aliases[s]; ok {
		return canonical
	}

	if _, ok := n.standard[s]; ok {
		return s
	}

	return s
}

// StandardSubjects returns the canonical subject names, sorted.
func (n *Normalizer) StandardSubjects() []string {
	subjects := make([]string, 0, len(n.standard))
	for s := range n.standard {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}
