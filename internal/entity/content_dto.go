package entity

// Request/response shapes for the content generation API. Week numbers are
// integers at the API boundary and only formatted to strings when matched
// against WEEK markers in generated text.

type GenerateSchemeRequest struct {
	Subject    string `json:"subject"`
	GradeLevel string `json:"grade_level"`
	Topic      string `json:"topic"`
	Country    string `json:"country,omitempty"`
}

type GenerateSchemeResponse struct {
	SchemeID  string `json:"scheme_of_work_id"`
	ContextID string `json:"context_id"`
	Content   string `json:"scheme_of_work_output"`
	Status    string `json:"status"`
}

type GenerateLessonPlanRequest struct {
	SchemeID    string `json:"scheme_of_work_id"`
	Week        int    `json:"week"`
	Limitations string `json:"limitations,omitempty"`
}

type GenerateLessonPlanResponse struct {
	SchemeID     string `json:"scheme_of_work_id"`
	LessonPlanID string `json:"lesson_plan_id"`
	Content      string `json:"lesson_plan_output"`
	ContextID    string `json:"context_id"`
	Week         int    `json:"week"`
	Status       string `json:"status"`
}

type GenerateLessonNotesRequest struct {
	SchemeID       string `json:"scheme_of_work_id"`
	LessonPlanID   string `json:"lesson_plan_id"`
	TeachingMethod string `json:"teaching_method,omitempty"`
	Topic          string `json:"topic,omitempty"`
}

type GenerateLessonNotesResponse struct {
	SchemeID      string `json:"scheme_of_work_id"`
	LessonPlanID  string `json:"lesson_plan_id"`
	LessonNotesID string `json:"lesson_notes_id"`
	Content       string `json:"content"`
	ContextID     string `json:"context_id"`
	Week          int    `json:"week"`
	Status        string `json:"status"`
}

type GenerateExamRequest struct {
	SchemeID        string `json:"scheme_of_work_id"`
	Weeks           []int  `json:"weeks"`
	ExamDuration    string `json:"exam_duration,omitempty"`
	TotalMarks      int    `json:"total_marks,omitempty"`
	QuestionTypes   string `json:"question_types,omitempty"`
	NumQuestions    int    `json:"num_questions,omitempty"`
	AssessmentFocus string `json:"assessment_focus,omitempty"`
}

// Normalize fills the optional exam knobs with the defaults the prompt
// templates expect.
func (r *GenerateExamRequest) Normalize() {
	if r.ExamDuration == "" {
		r.ExamDuration = "1 hour"
	}
	if r.TotalMarks <= 0 {
		r.TotalMarks = 50
	}
	if r.QuestionTypes == "" {
		r.QuestionTypes = "Multiple Choice, Short Answer, Essay"
	}
	if r.NumQuestions <= 0 {
		r.NumQuestions = 25
	}
	if r.AssessmentFocus == "" {
		r.AssessmentFocus = "Assess learning objectives covered in selected weeks"
	}
}

type GenerateExamResponse struct {
	ExamID        string        `json:"exam_id"`
	WeeksCovered  []int         `json:"weeks_covered"`
	Country       string        `json:"country"`
	MaterialsUsed ExamMaterials `json:"materials_used"`
	Content       string        `json:"content"`
	Status        string        `json:"status"`
}

type UpdateExamRequest struct {
	Content         *string `json:"content,omitempty"`
	ExamDuration    *string `json:"exam_duration,omitempty"`
	TotalMarks      *int    `json:"total_marks,omitempty"`
	AssessmentFocus *string `json:"assessment_focus,omitempty"`
}

type DeleteExamResponse struct {
	Status string `json:"status"`
}

type ListExamsResponse struct {
	Exams []*Exam `json:"exams"`
}

// SearchRequest runs the retrieval engine directly for introspection.
type SearchRequest struct {
	RetrievalQuery
	TopK int `json:"top_k,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
