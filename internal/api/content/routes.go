package content

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers content generation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/content", func(r chi.Router) {
		r.Post("/scheme-of-work", h.GenerateScheme)
		r.Post("/lesson-plan", h.GenerateLessonPlan)
		r.Post("/lesson-notes", h.GenerateLessonNotes)
		r.Post("/exam", h.GenerateExam)

		r.Get("/schemes/{scheme_id}", h.GetScheme)
		r.Get("/schemes/{scheme_id}/exams", h.ListExamsByScheme)
		r.Get("/contexts/{context_id}", h.GetContext)
		r.Get("/lesson-plans/{lesson_plan_id}", h.GetLessonPlan)
		r.Get("/lesson-notes/{lesson_notes_id}", h.GetLessonNotes)

		r.Get("/exams/{exam_id}", h.GetExam)
		r.Patch("/exams/{exam_id}", h.UpdateExam)
		r.Delete("/exams/{exam_id}", h.DeleteExam)
	})
}
