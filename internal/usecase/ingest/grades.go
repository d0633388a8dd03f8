package ingest

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/eduforge/curricula-backend/internal/config"
)

var digits = regexp.MustCompile(`\d+`)

// standardizeGradeLevel converts the loose grade formats curriculum documents
// use ("Primary 4-6", "JSS2", "Grade 5") into the canonical lowercase form
// stored in chunk metadata. Range information is preserved, not collapsed.
func standardizeGradeLevel(gradeText string, cg config.CountryGrades) string {
	gradeText = strings.ToLower(gradeText)

	numbers := digits.FindAllString(gradeText, -1)
	if len(numbers) == 0 {
		return "unknown"
	}

	level := levelFromKeywords(gradeText, cg)

	if len(numbers) > 1 {
		if level == "" {
			level = defaultLevel(cg)
		}
		return fmt.Sprintf("%s %s-%s", level, numbers[0], numbers[1])
	}

	num, _ := strconv.Atoi(numbers[0])
	if level != "" {
		return fmt.Sprintf("%s %d", level, num)
	}

	return inferLevelFromNumber(num, cg)
}

// determineChunkGrade refines the document-level grade for a single chunk.
// Grade-specific topics win, then explicit grade mentions matched by the
// country's patterns, then the document-level default.
func determineChunkGrade(chunkText string, gradeTopics map[string][]string, defaultGrade string, cg config.CountryGrades) string {
	lower := strings.ToLower(chunkText)

	// Sorted so a chunk matching topics of several grades resolves the same
	// way on every run.
	grades := make([]string, 0, len(gradeTopics))
	for grade := range gradeTopics {
		grades = append(grades, grade)
	}
	sort.Strings(grades)

	for _, grade := range grades {
		for _, topic := range gradeTopics[grade] {
			if topic != "" && strings.Contains(lower, strings.ToLower(topic)) {
				return standardizeGradeLevel(grade, cg)
			}
		}
	}

	for _, pattern := range cg.GradePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}

		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		// (level, number) capture versus a bare number.
		if len(m) >= 3 && m[1] != "" && m[2] != "" {
			return fmt.Sprintf("%s %s", m[1], m[2])
		}
		num, err := strconv.Atoi(m[len(m)-1])
		if err != nil {
			continue
		}
		if level := levelFromKeywords(lower, cg); level != "" {
			return fmt.Sprintf("%s %d", level, num)
		}
		return inferLevelFromNumber(num, cg)
	}

	return defaultGrade
}

func levelFromKeywords(text string, cg config.CountryGrades) string {
	// Longest keyword first so "junior secondary" resolves before "secondary".
	best := ""
	bestLen := 0
	for keyword, level := range cg.LevelKeywords {
		if strings.Contains(text, keyword) && len(keyword) > bestLen {
			best = level
			bestLen = len(keyword)
		}
	}

	return best
}

func inferLevelFromNumber(num int, cg config.CountryGrades) string {
	for _, r := range cg.NumberRanges {
		if num >= r.Min && num <= r.Max {
			return fmt.Sprintf("%s %d", r.Level, num)
		}
	}

	if level := defaultLevel(cg); level != "" {
		return fmt.Sprintf("%s %d", level, num)
	}

	return fmt.Sprintf("grade %d", num)
}

func defaultLevel(cg config.CountryGrades) string {
	if len(cg.NumberRanges) > 0 {
		return cg.NumberRanges[0].Level
	}

	return ""
}
