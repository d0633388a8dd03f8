package llm

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns canned completions for local development.
// It inspects the prompt to decide which artifact is being generated
// so downstream parsing (week tables, sections) keeps working.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] LLM completion", zap.Int("prompt_length", len(prompt)))

	lower := strings.ToLower(prompt)
	// Order matters: exam prompts embed plan and notes material, and the
	// plan prompt references the scheme, so the most specific checks go first.
	// The exam check matches the full phrase: "exam" alone would also hit
	// "examples" in the other prompts.
	switch {
	case strings.Contains(lower, "exam paper"):
		return mockExam, nil
	case strings.Contains(lower, "lesson notes"):
		return mockLessonNotes, nil
	case strings.Contains(lower, "lesson plan"):
		return mockLessonPlan, nil
	case strings.Contains(lower, "scheme of work"):
		return mockScheme, nil
	default:
		return "Mock completion for: " + firstLine(prompt), nil
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

const mockScheme = `# Scheme of Work

| Week | Topic | Learning Objectives | Activities |
|------|-------|--------------------|-----------|
| 1 | Introduction to the Topic | Define key terms and concepts | Class discussion, brainstorming |
| 2 | Core Concepts | Explain the main principles | Group work, demonstrations |
| 3 | Applications | Apply concepts to real examples | Practical exercises |
| 4 | Problem Solving | Solve guided and independent problems | Worked examples, practice sets |
| 5 | Review and Extension | Consolidate and extend understanding | Quizzes, peer teaching |
| 6 | Assessment | Demonstrate mastery of the topic | Class test, feedback session |

WEEK 1
Introduction to the Topic. Learners are introduced to the key vocabulary
and motivating examples drawn from everyday life.

WEEK 2
Core Concepts. The main principles are developed step by step with
demonstrations and guided note taking.

WEEK 3
Applications. Learners connect the concepts to real situations through
practical exercises.

WEEK 4
Problem Solving. Guided worked examples followed by independent practice.

WEEK 5
Review and Extension. Consolidation activities and extension tasks for
faster learners.

WEEK 6
Assessment. A class test covering weeks 1 to 5 with a feedback session.`

const mockLessonPlan = `# Lesson Plan

**Duration:** 40 minutes

## Learning Objectives
By the end of the lesson, learners will be able to:
1. Recall the key terms introduced in the scheme of work
2. Explain the main concept in their own words
3. Complete a short guided exercise

## Materials
- Whiteboard and markers
- Learner worksheets

## Lesson Stages
1. **Introduction (5 min):** Review of prior knowledge through questioning.
2. **Presentation (15 min):** Teacher explains the concept with examples.
3. **Guided Practice (10 min):** Learners work in pairs on the worksheet.
4. **Independent Practice (7 min):** Individual exercise.
5. **Plenary (3 min):** Recap and exit questions.

## Assessment
Observation during guided practice and review of the exit questions.`

const mockLessonNotes = `# Lesson Notes

## Introduction
These notes cover the material for this week's lesson in detail.

## Key Concepts
The central idea is developed from first principles with definitions,
worked examples, and common misconceptions addressed along the way.

## Worked Examples
1. A fully worked introductory example with each step explained.
2. A second example at a slightly higher difficulty.

## Summary
- The key terms and their definitions
- The main result and when it applies

## Practice Questions
1. A recall question on the definitions.
2. An application question using the worked method.
3. A stretch question for faster learners.`

const mockExam = `# Examination Paper

**Instructions:** Answer all questions in Section A and any two in Section B.

## Section A: Multiple Choice (20 marks)
1. Which of the following best describes the key concept? (2 marks)
2. Identify the correct application of the method. (2 marks)
3. Select the statement that is true. (2 marks)

## Section B: Short Answer (20 marks)
4. Explain the main principle in your own words. (5 marks)
5. Solve the given problem, showing all working. (5 marks)

## Section C: Essay (10 marks)
6. Discuss the topic with reference to examples covered in class. (10 marks)

**Total: 50 marks**

## Marking Guide
Award full marks for complete answers with correct reasoning; partial
credit for correct method with arithmetic slips.`
