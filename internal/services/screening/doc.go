// Package screening runs the ASQ-3 questionnaire for one child.
//
// A questionnaire moves through four states:
//   - resolving: find the screening to answer (explicit id, the child's
//     in-progress screening, or a newly created one) and load its questions.
//   - answering: the parent picks a choice for the current question; moving
//     forward submits that single answer and advances only once the backend
//     acknowledges it.
//   - completing: the last answer was acknowledged and the navigator has been
//     told to replace the questionnaire with the results view.
//   - error: resolution or question loading failed; Retry starts over from
//     the step that failed.
//
// The question sequence is always re-derived from the backend's grouped
// payload with Flatten. Answers live only in memory for the lifetime of one
// Questionnaire.
package screening
