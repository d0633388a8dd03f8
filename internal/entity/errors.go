package entity

import "errors"

// Domain errors
var (
	// Artifact errors
	ErrSchemeNotFound      = errors.New("scheme not found")
	ErrLessonPlanNotFound  = errors.New("lesson plan not found")
	ErrLessonNotesNotFound = errors.New("lesson notes not found")
	ErrExamNotFound        = errors.New("exam not found")
	ErrContextNotFound     = errors.New("curriculum context not found")

	// A scheme without a context reference cannot seed dependent generation
	ErrMissingContext = errors.New("scheme is missing context reference")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")

	// Retrieval errors surfaced to generation flows
	ErrContextRetrieval = errors.New("context retrieval failed")
	ErrNoRelevantData   = errors.New("no relevant curriculum data found")
)
