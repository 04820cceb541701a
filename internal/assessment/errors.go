package assessment

import (
	"fmt"
	"strings"
)

// IncompleteSessionError signals that required phase-1 answers are missing.
// The caller is expected to resume the session, not retry the computation.
type IncompleteSessionError struct {
	QuizID  string
	Missing []string // unanswered phase-1 question ids, declaration order
}

func (e *IncompleteSessionError) Error() string {
	return fmt.Sprintf("quiz %s: session incomplete, missing phase-1 answers for [%s]",
		e.QuizID, strings.Join(e.Missing, ", "))
}

// InvalidAnswerValueError signals an answer value outside its question's
// declared domain. This is a data-integrity bug in the caller; values are
// never clamped.
type InvalidAnswerValueError struct {
	QuestionID string
	Value      int
	Domain     ValueDomain
}

func (e *InvalidAnswerValueError) Error() string {
	return fmt.Sprintf("question %s: answer value %d outside domain [%d, %d]",
		e.QuestionID, e.Value, e.Domain.Min, e.Domain.Max)
}

// UnknownCategoryError signals a malformed catalog: a question, template
// or matrix entry references a category id the quiz does not define.
type UnknownCategoryError struct {
	CategoryID string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.CategoryID)
}

// UnknownQuestionError signals an answer for a question id the quiz does
// not define.
type UnknownQuestionError struct {
	QuestionID string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("unknown question %q", e.QuestionID)
}
