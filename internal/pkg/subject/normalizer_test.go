package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(
		[]string{"mathematics", "english language", "basic science", "civic education"},
		map[string]string{
			"math":          "mathematics",
			"maths":         "mathematics",
			"english":       "english language",
			"eng":           "english language",
			"science":       "basic science",
			"civic":         "civic education",
			"civic_studies": "civic education",
		},
	)
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"alias", "math", "mathematics"},
		{"alias uppercase", "MATHS", "mathematics"},
		{"alias with padding", "  english  ", "english language"},
		{"underscores to spaces", "civic_education", "civic education"},
		{"underscore alias", "civic_studies", "civic education"},
		{"already canonical", "basic science", "basic science"},
		{"unknown passes through", "home economics", "home economics"},
		{"unknown cleaned", "Home_Economics", "home economics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

// Alias keys go through the same cleaning as lookups, so configured keys with
// underscores, padding, or mixed case still resolve.
func TestNormalizeAliasKeysCleaned(t *testing.T) {
	n := NewNormalizer(
		[]string{"social studies"},
		map[string]string{"  Soc_Studies ": "Social Studies"},
	)

	assert.Equal(t, "social studies", n.Normalize("soc_studies"))
	assert.Equal(t, "social studies", n.Normalize("SOC STUDIES"))
}

// Normalization must be idempotent for every key and value in the tables.
func TestNormalizeIdempotent(t *testing.T) {
	n := newTestNormalizer()

	inputs := []string{
		"math", "maths", "english", "eng", "science", "civic", "civic_studies",
		"mathematics", "english language", "basic science", "civic education",
	}

	for _, s := range inputs {
		once := n.Normalize(s)
		assert.Equal(t, once, n.Normalize(once), "normalize(normalize(%q))", s)
	}
}

func TestStandardSubjectsSorted(t *testing.T) {
	n := newTestNormalizer()
	subjects := n.StandardSubjects()

	assert.Equal(t, []string{
		"basic science", "civic education", "english language", "mathematics",
	}, subjects)
}
