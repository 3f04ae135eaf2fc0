// Package devserver is an in-memory implementation of the backend REST API.
//
// It serves the same routes the client uses, seeded with one parent account,
// two children, a small ASQ-3 question bank and a few PMT menus, so the CLI
// can be exercised without the real backend. Scoring is a simple stand-in for the backend's:
// yes scores 10, sometimes 5, no 0, summed per domain and compared with the
// domain's monitoring and cutoff scores. Growth measurements get a BMI and a
// BMI band in place of the backend's WHO z-score assessment.
//
// Tests use FailNext to make a named route answer with an error status once.
package devserver
