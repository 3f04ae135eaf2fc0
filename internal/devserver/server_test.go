package devserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kembang/internal/devserver"
	"kembang/internal/domain"
)

type harness struct {
	t     *testing.T
	srv   *devserver.Server
	ts    *httptest.Server
	token string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := devserver.New(nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &harness{t: t, srv: srv, ts: ts, token: srv.IssueToken(devserver.DemoEmail)}
}

func (h *harness) call(method, path string, in, out any) int {
	h.t.Helper()
	var body bytes.Buffer
	if in != nil {
		require.NoError(h.t, json.NewEncoder(&body).Encode(in))
	}
	req, err := http.NewRequest(method, h.ts.URL+"/api/v1"+path, &body)
	require.NoError(h.t, err)
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	resp, err := h.ts.Client().Do(req)
	require.NoError(h.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(h.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type screeningEnvelope struct {
	Message   string           `json:"message"`
	Screening domain.Screening `json:"screening"`
}

type validationBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func screeningsURL(childID int64) string {
	return fmt.Sprintf("/children/%d/screenings", childID)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	h := newHarness(t)
	h.token = ""

	var bad validationBody
	status := h.call(http.MethodPost, "/auth/login", domain.LoginRequest{Email: devserver.DemoEmail, Password: "nope"}, &bad)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.NotEmpty(t, bad.Errors["email"])

	var ok domain.AuthResponse
	status = h.call(http.MethodPost, "/auth/login", domain.LoginRequest{Email: devserver.DemoEmail, Password: devserver.DemoPassword}, &ok)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, ok.Token)
	assert.Equal(t, devserver.DemoUserID, ok.User.ID)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	h := newHarness(t)
	h.token = "bogus"
	assert.Equal(t, http.StatusUnauthorized, h.call(http.MethodGet, "/children", nil, nil))
}

func TestCreateScreeningPicksIntervalByAge(t *testing.T) {
	h := newHarness(t)

	var created screeningEnvelope
	require.Equal(t, http.StatusCreated, h.call(http.MethodPost, screeningsURL(devserver.DemoChildID), nil, &created))
	assert.Equal(t, devserver.FirstScreeningID, created.Screening.ID)
	assert.Equal(t, devserver.DemoIntervalID, created.Screening.AgeInterval.ID)
	assert.Equal(t, domain.ScreeningInProgress, created.Screening.Status)

	var bad validationBody
	assert.Equal(t, http.StatusUnprocessableEntity, h.call(http.MethodPost, screeningsURL(devserver.DemoChildID), nil, &bad))
	assert.NotEmpty(t, bad.Errors["screening"])
}

func TestAnswersCompleteScreening(t *testing.T) {
	h := newHarness(t)

	var created screeningEnvelope
	require.Equal(t, http.StatusCreated, h.call(http.MethodPost, screeningsURL(devserver.DemoChildID), nil, &created))
	sc := created.Screening

	var set domain.QuestionSet
	require.Equal(t, http.StatusOK, h.call(http.MethodGet, fmt.Sprintf("/asq3/age-intervals/%d/questions", sc.AgeInterval.ID), nil, &set))
	require.Equal(t, 5*devserver.DemoQuestionsPerDomain, set.TotalQuestions)

	answersURL := fmt.Sprintf("%s/%d/answers", screeningsURL(devserver.DemoChildID), sc.ID)
	resultsURL := fmt.Sprintf("%s/%d/results", screeningsURL(devserver.DemoChildID), sc.ID)

	assert.Equal(t, http.StatusUnprocessableEntity, h.call(http.MethodGet, resultsURL, nil, nil))

	var last screeningEnvelope
	n := 0
	for _, qs := range set.QuestionsByDomain {
		for _, q := range qs {
			req := domain.SubmitAnswersRequest{Answers: []domain.AnswerInput{{QuestionID: q.ID, Answer: domain.AnswerYes}}}
			require.Equal(t, http.StatusOK, h.call(http.MethodPost, answersURL, req, &last))
			n++
			assert.Equal(t, n, last.Screening.AnswersCount)
		}
	}
	assert.Equal(t, domain.ScreeningCompleted, last.Screening.Status)

	var results domain.ScreeningResults
	require.Equal(t, http.StatusOK, h.call(http.MethodGet, resultsURL, nil, &results))
	assert.Equal(t, domain.ResultSesuai, results.Screening.OverallStatus)
	assert.Len(t, results.Results, 5)
}

func TestAnswersValidated(t *testing.T) {
	h := newHarness(t)

	var created screeningEnvelope
	require.Equal(t, http.StatusCreated, h.call(http.MethodPost, screeningsURL(devserver.DemoChildID), nil, &created))
	answersURL := fmt.Sprintf("%s/%d/answers", screeningsURL(devserver.DemoChildID), created.Screening.ID)

	var bad validationBody
	req := domain.SubmitAnswersRequest{Answers: []domain.AnswerInput{{QuestionID: 101, Answer: "maybe"}}}
	assert.Equal(t, http.StatusUnprocessableEntity, h.call(http.MethodPost, answersURL, req, &bad))
	assert.NotEmpty(t, bad.Errors["answers.0.answer"])

	req = domain.SubmitAnswersRequest{Answers: []domain.AnswerInput{{QuestionID: 1001, Answer: domain.AnswerYes}}}
	assert.Equal(t, http.StatusUnprocessableEntity, h.call(http.MethodPost, answersURL, req, &bad))
}

func TestCancelFreesChildForNewScreening(t *testing.T) {
	h := newHarness(t)

	var created screeningEnvelope
	require.Equal(t, http.StatusCreated, h.call(http.MethodPost, screeningsURL(devserver.DemoChildID), nil, &created))

	url := fmt.Sprintf("%s/%d", screeningsURL(devserver.DemoChildID), created.Screening.ID)
	var updated screeningEnvelope
	require.Equal(t, http.StatusOK, h.call(http.MethodPut, url, domain.UpdateScreeningRequest{Status: domain.ScreeningCancelled}, &updated))
	assert.Equal(t, domain.ScreeningCancelled, updated.Screening.Status)

	var again screeningEnvelope
	require.Equal(t, http.StatusCreated, h.call(http.MethodPost, screeningsURL(devserver.DemoChildID), nil, &again))
	assert.Equal(t, devserver.FirstScreeningID+1, again.Screening.ID)
}

func TestReopenRefusedWhileAnotherInProgress(t *testing.T) {
	h := newHarness(t)
	child := devserver.DemoChildID

	var first screeningEnvelope
	require.Equal(t, http.StatusCreated, h.call(http.MethodPost, screeningsURL(child), nil, &first))
	firstURL := fmt.Sprintf("%s/%d", screeningsURL(child), first.Screening.ID)
	require.Equal(t, http.StatusOK, h.call(http.MethodPut, firstURL, domain.UpdateScreeningRequest{Status: domain.ScreeningCancelled}, nil))

	var second screeningEnvelope
	require.Equal(t, http.StatusCreated, h.call(http.MethodPost, screeningsURL(child), nil, &second))

	var bad validationBody
	status := h.call(http.MethodPut, firstURL, domain.UpdateScreeningRequest{Status: domain.ScreeningInProgress}, &bad)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.NotEmpty(t, bad.Errors["screening"])

	var list struct {
		Screenings []domain.Screening `json:"screenings"`
	}
	require.Equal(t, http.StatusOK, h.call(http.MethodGet, screeningsURL(child), nil, &list))
	inProgress := 0
	for _, sc := range list.Screenings {
		if sc.Status == domain.ScreeningInProgress {
			inProgress++
			assert.Equal(t, second.Screening.ID, sc.ID)
		}
	}
	assert.Equal(t, 1, inProgress)

	// Once the newer one is cancelled the older one may be reopened.
	secondURL := fmt.Sprintf("%s/%d", screeningsURL(child), second.Screening.ID)
	require.Equal(t, http.StatusOK, h.call(http.MethodPut, secondURL, domain.UpdateScreeningRequest{Status: domain.ScreeningCancelled}, nil))
	var reopened screeningEnvelope
	require.Equal(t, http.StatusOK, h.call(http.MethodPut, firstURL, domain.UpdateScreeningRequest{Status: domain.ScreeningInProgress}, &reopened))
	assert.Equal(t, domain.ScreeningInProgress, reopened.Screening.Status)
}

func TestListScreeningsPages(t *testing.T) {
	h := newHarness(t)
	child := devserver.DemoChildID
	for i := 0; i < 3; i++ {
		var sc screeningEnvelope
		require.Equal(t, http.StatusCreated, h.call(http.MethodPost, screeningsURL(child), nil, &sc))
		url := fmt.Sprintf("%s/%d", screeningsURL(child), sc.Screening.ID)
		require.Equal(t, http.StatusOK, h.call(http.MethodPut, url, domain.UpdateScreeningRequest{Status: domain.ScreeningCancelled}, nil))
	}

	var page struct {
		Screenings []domain.Screening `json:"screenings"`
		Pagination domain.Pagination  `json:"pagination"`
	}
	require.Equal(t, http.StatusOK, h.call(http.MethodGet, screeningsURL(child)+"?per_page=2&page=2", nil, &page))
	require.Len(t, page.Screenings, 1)
	assert.Equal(t, devserver.FirstScreeningID, page.Screenings[0].ID)
	assert.Equal(t, domain.Pagination{CurrentPage: 2, LastPage: 2, PerPage: 2, Total: 3}, page.Pagination)
}

func TestFailNextAppliesOnce(t *testing.T) {
	h := newHarness(t)
	h.srv.FailNext("domains", http.StatusServiceUnavailable)

	assert.Equal(t, http.StatusServiceUnavailable, h.call(http.MethodGet, "/asq3/domains", nil, nil))
	assert.Equal(t, http.StatusOK, h.call(http.MethodGet, "/asq3/domains", nil, nil))
	assert.Equal(t, 2, h.srv.Hits("domains"))
}

func TestOtherParentsChildIsHidden(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, http.StatusNotFound, h.call(http.MethodGet, "/children/999", nil, nil))
	assert.Equal(t, http.StatusNotFound, h.call(http.MethodGet, screeningsURL(999)+"/42", nil, nil))
}
