// Package api provides the HTTP implementation of the domain backend
// interfaces used by kembang.
//
// The backend is the system of record for children, growth measurements,
// supplemental feeding (PMT) schedules, ASQ-3 reference data, screenings and
// answers. This package offers a concrete JSON-over-HTTP
// client for it.
//
// Supported operations include:
//   - Registering, logging in and out, reading the current user.
//   - Listing, adding, editing and removing children.
//   - Listing and recording growth measurements.
//   - Listing PMT menus, planning schedules, logging meals and reading
//     compliance progress.
//   - Reading ASQ-3 domains, age intervals, questions and recommendations.
//   - Creating, reading, cancelling and answering screenings, and reading
//     their results.
//
// Every request accepts a context for cancellation and deadlines, carries the
// bearer token when one is set, and is tagged with an X-Request-ID. Non-2xx
// statuses are returned as *Error values carrying the HTTP method, path,
// status and the backend's message, error code and validation errors.
package api
