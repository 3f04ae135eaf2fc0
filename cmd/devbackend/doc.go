// Package main runs the in-memory screening backend used by kembang during
// development and tests. All state lives in memory and is lost on exit.
//
// HTTP API (prefix /api/v1, bearer token on everything except login and register)
//
//	POST /auth/register | /auth/login | /auth/logout | /auth/refresh
//	GET  /auth/me
//	GET|POST /children
//	GET|PUT|DELETE /children/{id}
//	GET|POST /children/{id}/anthropometry?start_date=&end_date=&page=&per_page=
//	GET  /pmt/menus?age_months=
//	GET|POST /children/{id}/pmt-schedules?start_date=&end_date=
//	GET  /children/{id}/pmt-progress?start_date=&end_date=
//	POST|PUT /pmt-schedules/{id}/log
//	GET  /asq3/domains, /asq3/age-intervals
//	GET  /asq3/age-intervals/{id}/questions
//	GET  /asq3/recommendations?domain_id=&age_interval_id=
//	GET|POST /children/{id}/screenings
//	GET|PUT  /children/{id}/screenings/{sid}
//	POST /children/{id}/screenings/{sid}/answers
//	GET  /children/{id}/screenings/{sid}/results
//
// Behaviour
//
// A seeded parent account owns two children. Creating a screening picks the
// age interval from the child's age and fails while another screening for
// the same child is in progress, and a cancelled screening cannot be reopened
// while another one is. Submitting the last unanswered question
// completes the screening and scores it. A PMT schedule carries at most one
// log: POST creates it and PUT corrects it.
package main
