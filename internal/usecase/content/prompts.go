package content

import (
	"fmt"
	"strings"
	"text/template"
)

// Prompt templates for the four artifact types. Each template receives a
// typed data struct so missing fields fail at build time, not at render time.

var schemePrompt = template.Must(template.New("scheme").Parse(
	`You are an experienced {{.Country}} curriculum planner. Create a termly scheme of work.

Subject: {{.Subject}}
Grade Level: {{.GradeLevel}}
Topic: {{.Topic}}

Use the following curriculum material as the authoritative source:

{{.Context}}

Produce the scheme of work as a markdown table with columns
| Week | Topic | Learning Objectives | Activities |
followed by a "WEEK n" section per week expanding that week's coverage.
Stay within the curriculum material; do not invent topics it does not support.`))

type schemePromptData struct {
	Subject    string
	GradeLevel string
	Topic      string
	Country    string
	Context    string
}

var lessonPlanPrompt = template.Must(template.New("lesson_plan").Parse(
	`You are an experienced {{.Country}} teacher. Create a single-lesson lesson plan.

Subject: {{.Subject}}
Grade Level: {{.GradeLevel}}
Week: {{.Week}}
Week Topic: {{.WeekTopic}}
{{- if .Limitations}}
Classroom constraints: {{.Limitations}}
{{- end}}

This week's coverage from the approved scheme:

{{.WeekContent}}

Curriculum context:

{{.Context}}

Produce a complete lesson plan with learning objectives, materials, timed
lesson stages and an assessment section, all consistent with the scheme.`))

type lessonPlanPromptData struct {
	Subject     string
	GradeLevel  string
	Week        int
	WeekTopic   string
	Limitations string
	WeekContent string
	Context     string
	Country     string
}

var lessonNotesPrompt = template.Must(template.New("lesson_notes").Parse(
	`You are an experienced {{.Country}} teacher. Write detailed lesson notes.

Subject: {{.Subject}}
Grade Level: {{.GradeLevel}}
Week: {{.Week}}
Topic: {{.Topic}}
{{- if .TeachingMethod}}
Teaching method: {{.TeachingMethod}}
{{- end}}

The approved plan for this week:

{{.LessonPlan}}

This week's scheme coverage:

{{.WeekContent}}

Curriculum context:

{{.Context}}

Produce learner-facing lesson notes with an introduction, key concepts,
worked examples, a summary and practice questions.`))

type lessonNotesPromptData struct {
	Subject        string
	GradeLevel     string
	Week           int
	Topic          string
	TeachingMethod string
	LessonPlan     string
	WeekContent    string
	Context        string
	Country        string
}

var examPrompt = template.Must(template.New("exam").Parse(
	`You are an experienced {{.Country}} examiner. Create an exam paper.

Subject: {{.Subject}}
Grade Level: {{.GradeLevel}}
Weeks covered: {{.Weeks}}
Topics covered: {{.Topics}}
Duration: {{.Duration}}
Total marks: {{.TotalMarks}}
Question types: {{.QuestionTypes}}
Number of questions: {{.NumQuestions}}
Assessment focus: {{.Focus}}

Teaching material the exam must assess:

{{.Materials}}

Produce a complete exam paper with numbered questions, per-question marks
summing to the total, and a marking guide.`))

type examPromptData struct {
	Subject       string
	GradeLevel    string
	Weeks         string
	Topics        string
	Duration      string
	TotalMarks    int
	QuestionTypes string
	NumQuestions  int
	Focus         string
	Materials     string
	Country       string
}

func renderPrompt(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", tmpl.Name(), err)
	}

	return sb.String(), nil
}
