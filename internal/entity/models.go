package entity

import "time"

// CurriculumContext is the retrieval context snapshot an artifact was
// generated from. Stored once per successful retrieval and referenced by
// every artifact produced with it.
type CurriculumContext struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	GradeLevel string    `json:"grade_level"`
	Topic      string    `json:"topic"`
	Country    string    `json:"country"`
	Context    string    `json:"context"`
	CreatedAt  time.Time `json:"created_at"`
}

// SchemePayload captures the originating request of a scheme of work.
type SchemePayload struct {
	Subject    string `json:"subject"`
	GradeLevel string `json:"grade_level"`
	Topic      string `json:"topic"`
	Country    string `json:"country"`
}

type Scheme struct {
	ID        string        `json:"id"`
	Payload   SchemePayload `json:"payload"`
	Content   string        `json:"content"`
	ContextID *string       `json:"context_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type LessonPlanPayload struct {
	Subject     string `json:"subject"`
	GradeLevel  string `json:"grade_level"`
	Topic       string `json:"topic"`
	Limitations string `json:"limitations,omitempty"`
	Week        int    `json:"week"`
}

// LessonPlan belongs to exactly one scheme. Week is authoritative here:
// lesson notes derive their week from the plan, never from the caller.
type LessonPlan struct {
	ID        string            `json:"id"`
	SchemeID  string            `json:"scheme_id"`
	Payload   LessonPlanPayload `json:"payload"`
	Content   string            `json:"content"`
	ContextID *string           `json:"context_id,omitempty"`
	Week      int               `json:"week"`
	CreatedAt time.Time         `json:"created_at"`
}

type LessonNotesPayload struct {
	TeachingMethod string `json:"teaching_method,omitempty"`
	Topic          string `json:"topic"`
	Week           int    `json:"week"`
}

type LessonNotes struct {
	ID           string             `json:"id"`
	SchemeID     string             `json:"scheme_id"`
	LessonPlanID string             `json:"lesson_plan_id"`
	Payload      LessonNotesPayload `json:"payload"`
	Content      string             `json:"content"`
	ContextID    *string            `json:"context_id,omitempty"`
	Week         int                `json:"week"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ExamMaterials records how much source material the exam was built from.
type ExamMaterials struct {
	LessonPlans int `json:"lesson_plans"`
	LessonNotes int `json:"lesson_notes"`
}

type ExamPayload struct {
	WeeksCovered    []int         `json:"weeks_covered"`
	ExamDuration    string        `json:"exam_duration"`
	TotalMarks      int           `json:"total_marks"`
	QuestionTypes   string        `json:"question_types"`
	NumQuestions    int           `json:"num_questions"`
	AssessmentFocus string        `json:"assessment_focus"`
	Country         string        `json:"country"`
	MaterialsUsed   ExamMaterials `json:"materials_used"`
}

// Exam is the only mutable artifact: it may aggregate several weeks of plans
// and notes, so the plan/notes references are optional rather than FKs to a
// single row.
type Exam struct {
	ID           string      `json:"id"`
	SchemeID     string      `json:"scheme_id"`
	LessonPlanID *string     `json:"lesson_plan_id,omitempty"`
	LessonNoteID *string     `json:"lesson_notes_id,omitempty"`
	Payload      ExamPayload `json:"payload"`
	Content      string      `json:"content"`
	ContextID    *string     `json:"context_id,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
}
