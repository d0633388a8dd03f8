package weeks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleScheme = `SCHEME OF WORK

| Week | Topic | Objectives |
| 1 | Fractions | Identify halves and quarters |
| 2 | Decimals | Read decimal notation |
| 3 | Percentages | Convert fractions to percentages |
`

func TestTopicFromTable(t *testing.T) {
	assert.Equal(t, "Fractions", Topic(sampleScheme, 1))
	assert.Equal(t, "Decimals", Topic(sampleScheme, 2))
	assert.Equal(t, "Percentages", Topic(sampleScheme, 3))
}

func TestTopicLooseMatch(t *testing.T) {
	content := "Week 4 Measurement and scales\nWeek 5 Shapes"
	assert.Equal(t, "Measurement and scales", Topic(content, 4))
}

func TestTopicMarkerFallback(t *testing.T) {
	content := "Some preamble\nTOPIC: Photosynthesis\nmore text"
	assert.Equal(t, "Photosynthesis", Topic(content, 9))
}

func TestTopicFinalFallback(t *testing.T) {
	assert.Equal(t, "General Topic", Topic("nothing useful here", 7))
	assert.Equal(t, "General Topic", Topic("", 1))
}

func TestContent(t *testing.T) {
	content := "WEEK 1\nfoo\nWEEK 2\nbar"

	assert.Equal(t, "WEEK 1\nfoo\n", Content(content, 1))
	assert.Equal(t, "WEEK 2\nbar", Content(content, 2))
}

func TestContentMissingWeek(t *testing.T) {
	assert.Equal(t, "", Content("WEEK 1\nfoo", 3))
	assert.Equal(t, "", Content("", 1))
}

func TestContentSingleWeekRunsToEnd(t *testing.T) {
	content := "intro\nWEEK 1\nall the material"
	assert.Equal(t, "WEEK 1\nall the material", Content(content, 1))
}

func TestFromScheme(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, FromScheme(sampleScheme))
}

func TestFromSchemeRegexFallback(t *testing.T) {
	content := "covers week 2 and week 1 plus revision in week 10"
	assert.Equal(t, []string{"1", "2", "10"}, FromScheme(content))
}

func TestFromSchemeNeverEmpty(t *testing.T) {
	assert.Equal(t, []string{"1"}, FromScheme(""))
	assert.Equal(t, []string{"1"}, FromScheme("no numbers at all"))
}

func TestFromSchemeDeduplicates(t *testing.T) {
	content := "| 1 | Fractions |\n| 1 | Fractions continued |\n| 2 | Decimals |"
	assert.Equal(t, []string{"1", "2"}, FromScheme(content))
}
