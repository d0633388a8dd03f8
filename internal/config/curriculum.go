package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CurriculumConfig carries the subject and grade tables the core packages
// are parameterized with. Tables can be overridden per deployment through
// curriculum.json; the built-in defaults cover the Nigerian system.
type CurriculumConfig struct {
	// StandardSubjects is the canonical subject vocabulary.
	StandardSubjects []string `json:"standard_subjects"`
	// SubjectAliases maps lowercase variants to canonical subject names.
	SubjectAliases map[string]string `json:"subject_aliases"`
	// Countries holds per-country grade conventions keyed by country name.
	Countries map[string]CountryGrades `json:"countries"`
	// DefaultCountry is used when a request names a country without an entry.
	DefaultCountry string `json:"default_country"`
}

// CountryGrades describes how one country labels its grade levels.
type CountryGrades struct {
	// GradePatterns are regexes run against chunk text to find explicit
	// grade mentions. A pattern captures either (level, number) or a bare
	// number whose level is then inferred.
	GradePatterns []string `json:"grade_patterns"`
	// LevelKeywords maps a keyword found in source material to the grade
	// level family it implies, e.g. "jss" -> "jss".
	LevelKeywords map[string]string `json:"level_keywords"`
	// NumberRanges maps a level family to the inclusive number range it
	// spans. Ordered: the first range containing a bare number wins.
	NumberRanges []LevelRange `json:"number_ranges"`
	// Grades enumerates the country's grade labels in ascending order.
	Grades []string `json:"grades"`
}

// LevelRange binds a grade level family to its inclusive number span.
type LevelRange struct {
	Level string `json:"level"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// GradesFor returns the grade table for the country, falling back to the
// default country when the name is unknown.
func (c *CurriculumConfig) GradesFor(country string) CountryGrades {
	for name, g := range c.Countries {
		if strings.EqualFold(name, country) {
			return g
		}
	}
	return c.Countries[c.DefaultCountry]
}

func defaultCurriculumConfig() *CurriculumConfig {
	return &CurriculumConfig{
		StandardSubjects: []string{
			"Agricultural Science",
			"Basic Science",
			"Basic Technology",
			"Biology",
			"Business Studies",
			"Chemistry",
			"Civic Education",
			"Computer Studies",
			"Economics",
			"English Language",
			"Further Mathematics",
			"Geography",
			"Government",
			"History",
			"Literature in English",
			"Mathematics",
			"Physical and Health Education",
			"Physics",
			"Social Studies",
		},
		SubjectAliases: map[string]string{
			"math":                "Mathematics",
			"maths":               "Mathematics",
			"mathematics":         "Mathematics",
			"further math":        "Further Mathematics",
			"further maths":       "Further Mathematics",
			"english":             "English Language",
			"english language":    "English Language",
			"literature":          "Literature in English",
			"science":             "Basic Science",
			"basic science":       "Basic Science",
			"basic tech":          "Basic Technology",
			"intro tech":          "Basic Technology",
			"agric":               "Agricultural Science",
			"agric science":       "Agricultural Science",
			"agriculture":         "Agricultural Science",
			"computer":            "Computer Studies",
			"computer science":    "Computer Studies",
			"ict":                 "Computer Studies",
			"civic":               "Civic Education",
			"phe":                 "Physical and Health Education",
			"physical education":  "Physical and Health Education",
			"business":            "Business Studies",
			"social studies":      "Social Studies",
			"lit in english":      "Literature in English",
		},
		Countries: map[string]CountryGrades{
			"Nigeria": {
				GradePatterns: []string{
					`(primary|secondary|jss|sss)\s*(\d+)`,
					`grade\s*(\d+)`,
				},
				LevelKeywords: map[string]string{
					"primary":          "primary",
					"pry":              "primary",
					"elementary":       "primary",
					"junior secondary": "jss",
					"jss":              "jss",
					"junior":           "jss",
					"senior secondary": "sss",
					"sss":              "sss",
					"senior":           "sss",
					"secondary":        "secondary",
				},
				NumberRanges: []LevelRange{
					{Level: "primary", Min: 1, Max: 6},
					{Level: "secondary", Min: 7, Max: 12},
				},
				Grades: []string{
					"primary 1", "primary 2", "primary 3",
					"primary 4", "primary 5", "primary 6",
					"jss 1", "jss 2", "jss 3",
					"sss 1", "sss 2", "sss 3",
				},
			},
		},
		DefaultCountry: "Nigeria",
	}
}

func loadCurriculumConfig() (*CurriculumConfig, error) {
	configPath := filepath.Join("internal", "config", "curriculum.json")

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Warning: curriculum config not found at %s, using built-in defaults\n", configPath)
		return defaultCurriculumConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read curriculum config file: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("curriculum config file is empty: %s", configPath)
	}

	cfg := &CurriculumConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse curriculum config JSON: %w", err)
	}

	if len(cfg.StandardSubjects) == 0 || len(cfg.Countries) == 0 {
		return nil, fmt.Errorf("curriculum config is missing subjects or countries: %s", configPath)
	}
	if _, ok := cfg.Countries[cfg.DefaultCountry]; !ok {
		return nil, fmt.Errorf("curriculum config default country %q has no entry", cfg.DefaultCountry)
	}

	fmt.Printf("Loaded curriculum tables for %d countries from %s\n", len(cfg.Countries), configPath)
	return cfg, nil
}
