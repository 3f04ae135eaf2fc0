package screening

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"kembang/internal/domain"
	"kembang/internal/logging"
)

var (
	// ErrNoAnswer is returned by Next when the current question has no choice.
	ErrNoAnswer = errors.New("screening: current question has no answer")
	// ErrSubmissionPending is returned while an answer is being submitted.
	ErrSubmissionPending = errors.New("screening: answer submission in progress")
	// ErrClosed is returned once the questionnaire has been closed.
	ErrClosed = errors.New("screening: questionnaire closed")
	// ErrNoQuestions is returned when the age interval has no questions.
	ErrNoQuestions = errors.New("screening: no questions for this age interval")
	// ErrWrongState is returned when an action does not apply in the current state.
	ErrWrongState = errors.New("screening: action not allowed in current state")
)

// NoQuestionsText is shown when the resolved age interval has no questions.
const NoQuestionsText = "Tidak ada pertanyaan yang tersedia untuk usia ini."

// State is the questionnaire lifecycle state.
type State int

const (
	StateResolving State = iota
	StateAnswering
	StateCompleting
	StateError
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateAnswering:
		return "answering"
	case StateCompleting:
		return "completing"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Activity is the network work currently in flight.
type Activity int

const (
	Idle Activity = iota
	Resolving
	LoadingQuestions
	Submitting
)

// Text returns the status line shown while the activity runs.
func (a Activity) Text() string {
	switch a {
	case Resolving:
		return "Membuat sesi screening..."
	case LoadingQuestions:
		return "Memuat pertanyaan..."
	case Submitting:
		return "Menyimpan jawaban..."
	}
	return ""
}

// ResultsRoute is where the questionnaire sends the user when done.
type ResultsRoute struct {
	ScreeningID int64
	ChildID     int64
}

// Navigator replaces the questionnaire view with another one.
type Navigator interface {
	Replace(route ResultsRoute)
}

// Snapshot is a consistent copy of the questionnaire's visible state.
type Snapshot struct {
	RunID       string
	State       State
	Activity    Activity
	Session     Session
	AgeInterval domain.AgeInterval
	Index       int
	Total       int
	Question    *domain.Question
	Selected    Choice
	NoQuestions bool
	Err         error
}

type stage int

const (
	stageResolve stage = iota
	stageLoad
)

func (s stage) String() string {
	if s == stageLoad {
		return "load_questions"
	}
	return "resolve"
}

// Questionnaire is one run of the ASQ-3 questionnaire. It is safe for
// concurrent use; the blocking methods (Start, Retry, Next) are meant to run
// off the UI goroutine.
type Questionnaire struct {
	backend  Backend
	resolver *Resolver
	nav      Navigator
	params   Params
	log      *logging.Logger
	runID    string

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	state     State
	activity  Activity
	failed    stage
	session   Session
	payload   domain.QuestionSet
	sequence  []domain.Question
	cursor    Cursor
	answers   Answers
	err       error
	navigated bool
	closed    bool
}

// NewQuestionnaire returns a questionnaire in the resolving state. Every
// request it makes is bound to parent; Close cancels them.
func NewQuestionnaire(
	parent context.Context,
	backend Backend,
	resolver *Resolver,
	nav Navigator,
	params Params,
	log *logging.Logger,
) *Questionnaire {
	ctx, cancel := context.WithCancel(parent)
	runID := ulid.Make().String()
	return &Questionnaire{
		backend:  backend,
		resolver: resolver,
		nav:      nav,
		params:   params,
		log:      log.WithRun(runID),
		runID:    runID,
		ctx:      ctx,
		cancel:   cancel,
		state:    StateResolving,
		answers:  make(Answers),
	}
}

// Start resolves the screening and loads its questions. It blocks.
func (q *Questionnaire) Start() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	if q.state != StateResolving || q.activity != Idle {
		q.mu.Unlock()
		return ErrWrongState
	}
	q.activity = Resolving
	q.mu.Unlock()
	return q.resolveAndLoad()
}

// Retry re-runs the step that failed. Only valid in the error state.
func (q *Questionnaire) Retry() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	if q.state != StateError || q.activity != Idle {
		q.mu.Unlock()
		return ErrWrongState
	}
	q.err = nil
	from := q.failed
	if from == stageResolve {
		q.state = StateResolving
		q.activity = Resolving
	} else {
		q.activity = LoadingQuestions
	}
	q.mu.Unlock()

	q.log.Info("retry", map[string]any{"stage": from.String()})
	if from == stageResolve {
		return q.resolveAndLoad()
	}
	return q.load()
}

// resolveAndLoad expects activity to be set to Resolving by the caller.
func (q *Questionnaire) resolveAndLoad() error {
	start := time.Now()
	s, err := q.resolver.Resolve(q.ctx, q.params)

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		q.activity = Idle
		q.fail(stageResolve, err)
		q.mu.Unlock()
		q.log.TimedEvent("resolve", start, nil, err)
		return err
	}
	q.session = s
	q.activity = LoadingQuestions
	q.mu.Unlock()

	q.log.TimedEvent("resolve", start, map[string]any{
		"screening_id": s.ScreeningID,
		"origin":       s.Origin,
	}, nil)
	return q.load()
}

// load expects activity to be set to LoadingQuestions by the caller.
func (q *Questionnaire) load() error {
	q.mu.Lock()
	intervalID := q.session.AgeIntervalID
	q.mu.Unlock()

	start := time.Now()
	set, err := q.backend.Questions(q.ctx, intervalID)

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrClosed
	}
	q.activity = Idle
	if err != nil {
		q.fail(stageLoad, err)
		q.log.TimedEvent("load_questions", start, map[string]any{"age_interval_id": intervalID}, err)
		return err
	}
	q.payload = set
	q.sequence = Flatten(set.QuestionsByDomain)
	q.cursor = NewCursor(len(q.sequence))
	q.state = StateAnswering
	q.log.TimedEvent("load_questions", start, map[string]any{
		"age_interval_id": intervalID,
		"questions":       len(q.sequence),
	}, nil)
	return nil
}

// fail must be called with q.mu held.
func (q *Questionnaire) fail(at stage, err error) {
	q.state = StateError
	q.failed = at
	q.err = err
}

// Select records c for the current question, replacing any earlier choice.
func (q *Questionnaire) Select(c Choice) error {
	if _, ok := c.Answer(); !ok {
		return ErrNoAnswer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	id, err := q.currentLocked()
	if err != nil {
		return err
	}
	q.answers[id] = c
	return nil
}

// Prev moves back one question. It is a no-op on the first question.
func (q *Questionnaire) Prev() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, err := q.currentLocked(); err != nil {
		return err
	}
	q.cursor.Prev()
	q.err = nil
	return nil
}

// Next submits the current answer and advances once the backend accepts
// it. After the last question it completes the questionnaire and navigates
// to the results. On failure nothing moves and the error is kept in the
// snapshot until the next action.
func (q *Questionnaire) Next() error {
	q.mu.Lock()
	id, err := q.currentLocked()
	if err != nil {
		q.mu.Unlock()
		return err
	}
	choice := q.answers[id]
	value, ok := choice.Answer()
	if !ok {
		q.mu.Unlock()
		return ErrNoAnswer
	}
	q.activity = Submitting
	q.err = nil
	s := q.session
	last := q.cursor.AtLast()
	q.mu.Unlock()

	start := time.Now()
	req := domain.SubmitAnswersRequest{Answers: []domain.AnswerInput{{QuestionID: id, Answer: value}}}
	updated, err := q.backend.SubmitAnswers(q.ctx, s.ChildID, s.ScreeningID, req)
	extra := map[string]any{"screening_id": s.ScreeningID, "question_id": id, "answer": value}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.activity = Idle
	if err != nil {
		q.err = err
		q.mu.Unlock()
		q.log.TimedEvent("submit_answer", start, extra, err)
		return err
	}
	q.log.TimedEvent("submit_answer", start, extra, nil)
	if !last {
		q.cursor.Next()
		q.mu.Unlock()
		return nil
	}

	q.state = StateCompleting
	navigate := !q.navigated
	q.navigated = true
	q.mu.Unlock()

	if updated.Status != domain.ScreeningCompleted {
		q.log.Warn("completion_status_mismatch", map[string]any{
			"screening_id": s.ScreeningID,
			"status":       updated.Status,
		}, nil)
	}
	if navigate && q.nav != nil {
		q.nav.Replace(ResultsRoute{ScreeningID: s.ScreeningID, ChildID: s.ChildID})
	}
	return nil
}

// currentLocked returns the current question id when answering is allowed.
func (q *Questionnaire) currentLocked() (int64, error) {
	switch {
	case q.closed:
		return 0, ErrClosed
	case q.state != StateAnswering:
		return 0, ErrWrongState
	case q.activity == Submitting:
		return 0, ErrSubmissionPending
	case len(q.sequence) == 0:
		return 0, ErrNoQuestions
	}
	return q.sequence[q.cursor.Index()].ID, nil
}

// Snapshot returns the current visible state.
func (q *Questionnaire) Snapshot() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()
	snap := Snapshot{
		RunID:       q.runID,
		State:       q.state,
		Activity:    q.activity,
		Session:     q.session,
		AgeInterval: q.payload.AgeInterval,
		Index:       q.cursor.Index(),
		Total:       len(q.sequence),
		Err:         q.err,
		NoQuestions: q.state == StateAnswering && len(q.sequence) == 0,
	}
	if snap.Total > 0 {
		cur := q.sequence[q.cursor.Index()]
		snap.Question = &cur
		snap.Selected = q.answers[cur.ID]
	}
	return snap
}

// Sequence returns a copy of the ordered questions.
func (q *Questionnaire) Sequence() []domain.Question {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]domain.Question(nil), q.sequence...)
}

// Close cancels in-flight requests. Results that arrive afterwards are
// dropped.
func (q *Questionnaire) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cancel()
	q.log.Info("closed", map[string]any{"state": q.state.String()})
}
