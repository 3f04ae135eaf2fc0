package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"kembang/internal/domain"
	"kembang/internal/logging"
)

type account struct {
	user     domain.User
	password string
}

type screeningRecord struct {
	screening domain.Screening
	answers   map[int64]domain.AnswerValue
}

// Server holds the in-memory backend state.
type Server struct {
	mu sync.Mutex

	accounts        map[string]*account
	tokens          map[string]int64
	children        map[int64]*domain.Child
	domains         []domain.Asq3Domain
	intervals       []domain.AgeInterval
	questions       map[int64][]domain.Question
	cutoffs         map[int64]map[domain.DomainCode]domain.Cutoff
	recommendations []domain.Recommendation
	screenings      map[int64]*screeningRecord
	nextScreeningID int64

	nextUserID        int64
	nextChildID       int64
	measurements      map[int64]*domain.Anthropometry
	nextMeasurementID int64
	menus             []domain.PmtMenu
	schedules         map[int64]*domain.PmtSchedule
	nextScheduleID    int64
	nextLogID         int64

	failures map[string][]int
	hits     map[string]int

	now    func() time.Time
	log    *logging.Logger
	router *mux.Router
}

// New returns a seeded server. log may be nil.
func New(log *logging.Logger) *Server {
	s := &Server{
		accounts:   make(map[string]*account),
		tokens:     make(map[string]int64),
		children:   make(map[int64]*domain.Child),
		questions:  make(map[int64][]domain.Question),
		cutoffs:    make(map[int64]map[domain.DomainCode]domain.Cutoff),
		screenings: make(map[int64]*screeningRecord),

		measurements: make(map[int64]*domain.Anthropometry),
		schedules:    make(map[int64]*domain.PmtSchedule),

		failures: make(map[string][]int),
		hits:     make(map[string]int),
		now:      time.Now,
		log:      log,
	}
	s.seed()
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler serving the API under /api/v1.
func (s *Server) Handler() http.Handler { return s.router }

// FailNext makes the next request to route answer with status.
func (s *Server) FailNext(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = append(s.failures[route], status)
}

// Hits returns how many requests reached route.
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

// IssueToken logs in as email without a password and returns the token.
func (s *Server) IssueToken(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[email]
	if !ok {
		return ""
	}
	return s.issueTokenLocked(acc.user.ID)
}

func (s *Server) routes() *mux.Router {
	root := mux.NewRouter()
	r := root.PathPrefix("/api/v1").Subrouter()
	r.Use(s.logRequests)

	r.Handle("/auth/login", s.route("login", false, s.handleLogin)).Methods(http.MethodPost)
	r.Handle("/auth/register", s.route("register", false, s.handleRegister)).Methods(http.MethodPost)
	r.Handle("/auth/logout", s.route("logout", true, s.handleLogout)).Methods(http.MethodPost)
	r.Handle("/auth/me", s.route("me", true, s.handleMe)).Methods(http.MethodGet)
	r.Handle("/auth/refresh", s.route("refresh", true, s.handleRefresh)).Methods(http.MethodPost)

	const childPath = "/children/{child:[0-9]+}"
	r.Handle("/children", s.route("children.list", true, s.handleListChildren)).Methods(http.MethodGet)
	r.Handle("/children", s.route("children.create", true, s.handleCreateChild)).Methods(http.MethodPost)
	r.Handle(childPath, s.route("children.get", true, s.handleGetChild)).Methods(http.MethodGet)
	r.Handle(childPath, s.route("children.update", true, s.handleUpdateChild)).Methods(http.MethodPut)
	r.Handle(childPath, s.route("children.delete", true, s.handleDeleteChild)).Methods(http.MethodDelete)

	r.Handle(childPath+"/anthropometry", s.route("anthropometry.list", true, s.handleListMeasurements)).Methods(http.MethodGet)
	r.Handle(childPath+"/anthropometry", s.route("anthropometry.create", true, s.handleCreateMeasurement)).Methods(http.MethodPost)

	r.Handle("/pmt/menus", s.route("pmt.menus", true, s.handlePmtMenus)).Methods(http.MethodGet)
	r.Handle(childPath+"/pmt-schedules", s.route("pmt.schedules", true, s.handleListPmtSchedules)).Methods(http.MethodGet)
	r.Handle(childPath+"/pmt-schedules", s.route("pmt.schedule", true, s.handleCreatePmtSchedule)).Methods(http.MethodPost)
	r.Handle(childPath+"/pmt-progress", s.route("pmt.progress", true, s.handlePmtProgress)).Methods(http.MethodGet)
	r.Handle("/pmt-schedules/{schedule:[0-9]+}/log", s.route("pmt.log", true, s.handleLogPmt)).Methods(http.MethodPost)
	r.Handle("/pmt-schedules/{schedule:[0-9]+}/log", s.route("pmt.log.update", true, s.handleUpdatePmtLog)).Methods(http.MethodPut)

	r.Handle("/asq3/domains", s.route("domains", true, s.handleDomains)).Methods(http.MethodGet)
	r.Handle("/asq3/age-intervals", s.route("intervals", true, s.handleIntervals)).Methods(http.MethodGet)
	r.Handle("/asq3/age-intervals/{interval:[0-9]+}/questions", s.route("questions", true, s.handleQuestions)).Methods(http.MethodGet)
	r.Handle("/asq3/recommendations", s.route("recommendations", true, s.handleRecommendations)).Methods(http.MethodGet)

	const screeningsPath = childPath + "/screenings"
	const screeningPath = screeningsPath + "/{screening:[0-9]+}"
	r.Handle(screeningsPath, s.route("screenings.list", true, s.handleListScreenings)).Methods(http.MethodGet)
	r.Handle(screeningsPath, s.route("screenings.create", true, s.handleCreateScreening)).Methods(http.MethodPost)
	r.Handle(screeningPath, s.route("screenings.get", true, s.handleGetScreening)).Methods(http.MethodGet)
	r.Handle(screeningPath, s.route("screenings.update", true, s.handleUpdateScreening)).Methods(http.MethodPut)
	r.Handle(screeningPath+"/answers", s.route("answers", true, s.handleSubmitAnswers)).Methods(http.MethodPost)
	r.Handle(screeningPath+"/results", s.route("results", true, s.handleResults)).Methods(http.MethodGet)

	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found.")
	})
	return root
}

// authedHandler receives the authenticated user id (0 for public routes).
type authedHandler func(w http.ResponseWriter, r *http.Request, userID int64)

// route counts hits, applies injected failures and, when auth is set,
// resolves the bearer token before calling h.
func (s *Server) route(name string, auth bool, h authedHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[name]++
		var fail int
		if q := s.failures[name]; len(q) > 0 {
			fail, s.failures[name] = q[0], q[1:]
		}
		var userID int64
		authorized := true
		if auth {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			userID, authorized = s.tokens[token]
		}
		s.mu.Unlock()

		if fail != 0 {
			writeError(w, fail, "Injected failure.")
			return
		}
		if !authorized {
			writeError(w, http.StatusUnauthorized, "Unauthenticated.")
			return
		}
		h(w, r, userID)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.TimedEvent("serve", start, map[string]any{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"request_id": r.Header.Get("X-Request-ID"),
		}, nil)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"message": msg})
}

func writeValidation(w http.ResponseWriter, field, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"message": msg,
		"errors":  map[string][]string{field: {msg}},
	})
}

func pathID(r *http.Request, key string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[key], 10, 64)
	return id
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
