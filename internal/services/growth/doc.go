// Package growth records and lists a child's anthropometry (weight, height
// and head circumference). BMI, z-scores and nutritional status are computed
// by the backend.
package growth
