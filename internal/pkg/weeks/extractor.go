// Package weeks slices generated scheme/plan/notes markdown by week so that
// dependent generation steps can be fed only the relevant section. Every
// function is total: a document with no parseable weeks still yields a usable
// fallback rather than aborting a generation pipeline.
package weeks

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const fallbackTopic = "General Topic"

var weekPattern = regexp.MustCompile(`(?i)\bweek\s*(\d+)\b|\b(\d+)\b`)

// Topic extracts the topic for a given week from scheme content.
// Tries, in order: an exact table-row match on the week column, a loose scan
// for the week number followed by text, a document-level "TOPIC:" marker, and
// finally a fixed fallback string.
func Topic(content string, week int) string {
	weekStr := strconv.Itoa(week)

	// Table row: "| 3 | Fractions | ... |"
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "| "+weekStr+" |") || strings.Contains(line, "|"+weekStr+"|") {
			cells := splitCells(line)
			if len(cells) >= 3 {
				return cells[1]
			}
		}
	}

	// Loose match: anything after the week number up to the next column
	for _, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, weekStr) {
			continue
		}
		_, after, found := strings.Cut(line, weekStr)
		if !found {
			continue
		}
		topic := strings.TrimSpace(after)
		if i := strings.Index(topic, "|"); i >= 0 {
			topic = topic[:i]
		}
		if topic = strings.TrimSpace(topic); topic != "" {
			return topic
		}
	}

	// Document-level topic marker
	for _, line := range strings.Split(content, "\n") {
		if _, after, found := strings.Cut(line, "TOPIC:"); found {
			return strings.TrimSpace(after)
		}
	}

	return fallbackTopic
}

// Content returns the section of a document belonging to one week: from its
// "WEEK {n}" marker up to (not including) the next "WEEK " marker, or to the
// end of the document for the last week. Returns "" when the marker is absent.
// Sections are contiguous and non-overlapping by construction, so no end
// markers are needed.
func Content(content string, week int) string {
	header := fmt.Sprintf("WEEK %d", week)

	start := strings.Index(content, header)
	if start < 0 {
		return ""
	}

	rest := content[start+len(header):]
	if next := strings.Index(rest, "WEEK "); next >= 0 {
		return content[start : start+len(header)+next]
	}

	return content[start:]
}

// FromScheme collects the distinct week identifiers in a scheme, numerically
// sorted. Prefers the first column of a markdown table; falls back to a regex
// scan for "week N" or bare integers. Never returns an empty slice: a scheme
// with zero parseable weeks is treated as a one-week scheme.
func FromScheme(content string) []string {
	seen := make(map[string]struct{})
	var found []string

	add := func(week string) {
		if _, ok := seen[week]; !ok {
			seen[week] = struct{}{}
			found = append(found, week)
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		cells := splitCells(line)
		if len(cells) > 0 && isDigits(cells[0]) {
			add(cells[0])
		}
	}

	if len(found) == 0 {
		for _, m := range weekPattern.FindAllStringSubmatch(content, -1) {
			week := m[1]
			if week == "" {
				week = m[2]
			}
			if week != "" {
				add(week)
			}
		}
	}

	if len(found) == 0 {
		return []string{"1"}
	}

	sort.Slice(found, func(i, j int) bool {
		a, _ := strconv.Atoi(found[i])
		b, _ := strconv.Atoi(found[j])
		return a < b
	})

	return found
}

func splitCells(line string) []string {
	var cells []string
	for _, p := range strings.Split(line, "|") {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
