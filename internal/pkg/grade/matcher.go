package grade

import (
	"regexp"
	"strconv"
	"strings"
)

var digits = regexp.MustCompile(`\d+`)

// Curriculum documents spell grades out as often as they number them.
// Ordered so lookup is deterministic when a text contains several words.
var numberWords = []struct {
	word string
	num  int
}{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4},
	{"five", 5}, {"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9},
}

// ExtractNumber pulls a single grade number out of free text like
// "primary four" or "primary 4". Digit sequences win over number words.
func ExtractNumber(text string) (int, bool) {
	text = strings.ToLower(strings.TrimSpace(text))

	if m := digits.FindString(text); m != "" {
		n, err := strconv.Atoi(m)
		if err == nil {
			return n, true
		}
	}

	for _, w := range numberWords {
		if strings.Contains(text, w.word) {
			return w.num, true
		}
	}

	return 0, false
}

// ExtractRange pulls (start, end) out of a range like "primary 4-6".
// Requires at least two digit sequences.
func ExtractRange(text string) (int, int, bool) {
	nums := digits.FindAllString(text, 2)
	if len(nums) < 2 {
		return 0, 0, false
	}

	start, err1 := strconv.Atoi(nums[0])
	end, err2 := strconv.Atoi(nums[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}

	return start, end, true
}

// Matches reports whether a query grade falls within a stored grade or grade
// range. Stored ranges like "primary 4-6" use containment; single grades use
// equality. Any extraction failure yields false, never an error - grade data
// in the wild is too inconsistent to treat mismatches as faults.
func Matches(queryGrade, storedGrade string) bool {
	query := strings.ToLower(strings.TrimSpace(queryGrade))
	stored := strings.ToLower(strings.TrimSpace(storedGrade))

	if query == stored {
		return true
	}

	queryNum, ok := ExtractNumber(query)
	if !ok {
		return false
	}

	if strings.Contains(stored, "-") {
		start, end, ok := ExtractRange(stored)
		if !ok {
			return false
		}
		return start <= queryNum && queryNum <= end
	}

	storedNum, ok := ExtractNumber(stored)
	if !ok {
		return false
	}

	return queryNum == storedNum
}
