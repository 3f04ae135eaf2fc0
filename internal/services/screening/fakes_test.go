package screening_test

import (
	"context"
	"errors"
	"sync"

	"kembang/internal/domain"
	"kembang/internal/services/screening"
)

const (
	childID    int64 = 7
	screenID   int64 = 42
	intervalID int64 = 3
)

var errBoom = errors.New("boom")

// questionSet builds perDomain questions for each domain with ids from 101 in
// presentation order. Each domain's slice is stored in reverse display order.
func questionSet(perDomain int) domain.QuestionSet {
	byDomain := make(domain.QuestionsByDomain)
	id := int64(100)
	for _, code := range screening.DomainOrder {
		qs := make([]domain.Question, 0, perDomain)
		for k := 1; k <= perDomain; k++ {
			id++
			qs = append(qs, domain.Question{
				ID:           id,
				QuestionText: string(code),
				DisplayOrder: k,
				Domain:       domain.Asq3Domain{Code: code},
			})
		}
		for i, j := 0, len(qs)-1; i < j; i, j = i+1, j-1 {
			qs[i], qs[j] = qs[j], qs[i]
		}
		byDomain[code] = qs
	}
	return domain.QuestionSet{
		AgeInterval:       domain.AgeInterval{ID: intervalID, AgeMonths: 24, AgeLabel: "24 Bulan"},
		QuestionsByDomain: byDomain,
		TotalQuestions:    perDomain * len(screening.DomainOrder),
	}
}

type fakeBackend struct {
	mu sync.Mutex

	inProgress    *domain.Screening
	inProgressErr error
	inProgressN   int

	detail domain.Screening
	getN   int

	createErrs []error
	createN    int

	set          domain.QuestionSet
	questionErrs []error
	questionsN   int

	submitted  []domain.SubmitAnswersRequest
	submitErr  error
	submitGate chan struct{}
	submitting chan struct{}
	finalState domain.ScreeningStatus

	list    []domain.Screening
	results domain.ScreeningResults
	updates []domain.UpdateScreeningRequest
}

func newFake() *fakeBackend {
	return &fakeBackend{set: questionSet(6), finalState: domain.ScreeningCompleted}
}

func (f *fakeBackend) ListScreenings(context.Context, int64, int) ([]domain.Screening, domain.Pagination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list, domain.Pagination{Total: len(f.list)}, nil
}

func (f *fakeBackend) GetScreening(_ context.Context, _, id int64) (domain.Screening, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getN++
	return f.detail, nil
}

func (f *fakeBackend) InProgressScreening(context.Context, int64) (*domain.Screening, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inProgressN++
	return f.inProgress, f.inProgressErr
}

func (f *fakeBackend) CreateScreening(_ context.Context, child int64, _ domain.CreateScreeningRequest) (domain.Screening, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createN++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return domain.Screening{}, err
		}
	}
	return domain.Screening{
		ID:          screenID,
		ChildID:     child,
		Status:      domain.ScreeningInProgress,
		AgeInterval: domain.AgeInterval{ID: intervalID},
	}, nil
}

func (f *fakeBackend) UpdateScreening(_ context.Context, _, id int64, req domain.UpdateScreeningRequest) (domain.Screening, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, req)
	return domain.Screening{ID: id, Status: req.Status}, nil
}

func (f *fakeBackend) SubmitAnswers(ctx context.Context, _, id int64, req domain.SubmitAnswersRequest) (domain.Screening, error) {
	f.mu.Lock()
	f.submitted = append(f.submitted, req)
	gate, started, err := f.submitGate, f.submitting, f.submitErr
	total := f.set.TotalQuestions
	count := len(f.submitted)
	final := f.finalState
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return domain.Screening{}, ctx.Err()
		}
	}
	if err != nil {
		return domain.Screening{}, err
	}
	status := domain.ScreeningInProgress
	if count >= total {
		status = final
	}
	return domain.Screening{ID: id, Status: status, AnswersCount: count}, nil
}

func (f *fakeBackend) ScreeningResults(context.Context, int64, int64) (domain.ScreeningResults, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.results, nil
}

func (f *fakeBackend) Questions(context.Context, int64) (domain.QuestionSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questionsN++
	if len(f.questionErrs) > 0 {
		err := f.questionErrs[0]
		f.questionErrs = f.questionErrs[1:]
		if err != nil {
			return domain.QuestionSet{}, err
		}
	}
	return f.set, nil
}

func (f *fakeBackend) submissions() []domain.SubmitAnswersRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.SubmitAnswersRequest(nil), f.submitted...)
}

func (f *fakeBackend) creations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createN
}

type activeChild struct {
	id  int64
	ok  bool
	err error
}

func (a activeChild) ActiveChildID() (int64, bool, error) { return a.id, a.ok, a.err }

type navigator struct {
	mu     sync.Mutex
	routes []screening.ResultsRoute
}

func (n *navigator) Replace(r screening.ResultsRoute) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, r)
}

func (n *navigator) replaced() []screening.ResultsRoute {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]screening.ResultsRoute(nil), n.routes...)
}
