package screening_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kembang/internal/domain"
	"kembang/internal/services/screening"
)

func begin(t *testing.T, f *fakeBackend, params screening.Params) (*screening.Questionnaire, *navigator) {
	t.Helper()
	nav := &navigator{}
	q := screening.New(f, nil, nil).Begin(context.Background(), nav, params)
	t.Cleanup(q.Close)
	return q, nav
}

func started(t *testing.T, f *fakeBackend) (*screening.Questionnaire, *navigator) {
	t.Helper()
	q, nav := begin(t, f, screening.Params{ChildID: childID})
	require.NoError(t, q.Start())
	return q, nav
}

func TestFreshStartCreatesAndLoads(t *testing.T) {
	f := newFake()
	q, _ := started(t, f)

	snap := q.Snapshot()
	assert.Equal(t, screening.StateAnswering, snap.State)
	assert.Equal(t, screening.Idle, snap.Activity)
	assert.Equal(t, screenID, snap.Session.ScreeningID)
	assert.Equal(t, intervalID, snap.Session.AgeIntervalID)
	assert.Equal(t, 30, snap.Total)
	assert.Equal(t, 0, snap.Index)
	require.NotNil(t, snap.Question)
	assert.Equal(t, int64(101), snap.Question.ID)
	assert.Equal(t, screening.ChoiceNone, snap.Selected)
	assert.NotEmpty(t, snap.RunID)
	assert.Equal(t, 1, f.creations())
}

func TestResumeDoesNotCreate(t *testing.T) {
	f := newFake()
	f.inProgress = &domain.Screening{ID: screenID, Status: domain.ScreeningInProgress, AgeInterval: domain.AgeInterval{ID: intervalID}}
	q, _ := started(t, f)

	assert.Equal(t, screenID, q.Snapshot().Session.ScreeningID)
	assert.Equal(t, screening.OriginInProgress, q.Snapshot().Session.Origin)
	assert.Zero(t, f.creations())
}

func TestNextWithoutAnswerIsNoop(t *testing.T) {
	f := newFake()
	q, _ := started(t, f)

	assert.ErrorIs(t, q.Next(), screening.ErrNoAnswer)
	assert.Empty(t, f.submissions())
	assert.Equal(t, 0, q.Snapshot().Index)
}

func TestAnswerAndAdvance(t *testing.T) {
	f := newFake()
	q, _ := started(t, f)

	require.NoError(t, q.Select(screening.ChoiceNo))
	require.NoError(t, q.Select(screening.ChoiceYes))
	require.NoError(t, q.Next())

	assert.Equal(t, []domain.SubmitAnswersRequest{
		{Answers: []domain.AnswerInput{{QuestionID: 101, Answer: domain.AnswerYes}}},
	}, f.submissions())
	assert.Equal(t, 1, q.Snapshot().Index)
}

func TestSubmissionFailureKeepsPositionAndChoice(t *testing.T) {
	f := newFake()
	f.submitErr = errBoom
	q, _ := started(t, f)

	require.NoError(t, q.Select(screening.ChoiceYes))
	assert.ErrorIs(t, q.Next(), errBoom)

	snap := q.Snapshot()
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, screening.ChoiceYes, snap.Selected)
	assert.Equal(t, screening.StateAnswering, snap.State)
	assert.ErrorIs(t, snap.Err, errBoom)

	f.mu.Lock()
	f.submitErr = nil
	f.mu.Unlock()
	require.NoError(t, q.Next())
	assert.Len(t, f.submissions(), 2)
	assert.Equal(t, 1, q.Snapshot().Index)
	assert.NoError(t, q.Snapshot().Err)
}

func TestSecondNextWhilePendingMakesNoCall(t *testing.T) {
	f := newFake()
	f.submitGate = make(chan struct{})
	f.submitting = make(chan struct{}, 1)
	q, _ := started(t, f)
	require.NoError(t, q.Select(screening.ChoiceYes))

	done := make(chan error, 1)
	go func() { done <- q.Next() }()
	<-f.submitting

	assert.Equal(t, screening.Submitting, q.Snapshot().Activity)
	assert.ErrorIs(t, q.Next(), screening.ErrSubmissionPending)
	assert.ErrorIs(t, q.Prev(), screening.ErrSubmissionPending)
	assert.ErrorIs(t, q.Select(screening.ChoiceNo), screening.ErrSubmissionPending)

	close(f.submitGate)
	require.NoError(t, <-done)
	assert.Len(t, f.submissions(), 1)
	assert.Equal(t, 1, q.Snapshot().Index)
}

func TestPrevAtStartStays(t *testing.T) {
	f := newFake()
	q, _ := started(t, f)

	require.NoError(t, q.Prev())
	assert.Equal(t, 0, q.Snapshot().Index)

	require.NoError(t, q.Select(screening.ChoiceSometimes))
	require.NoError(t, q.Next())
	require.NoError(t, q.Prev())
	snap := q.Snapshot()
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, screening.ChoiceSometimes, snap.Selected)
}

func TestLastAnswerNavigatesOnce(t *testing.T) {
	f := newFake()
	q, nav := started(t, f)

	for i := 0; i < 29; i++ {
		require.NoError(t, q.Select(screening.ChoiceYes))
		require.NoError(t, q.Next())
	}
	assert.Equal(t, 29, q.Snapshot().Index)
	assert.Empty(t, nav.replaced())

	require.NoError(t, q.Select(screening.ChoiceNo))
	require.NoError(t, q.Next())

	snap := q.Snapshot()
	assert.Equal(t, screening.StateCompleting, snap.State)
	assert.Equal(t, 29, snap.Index)
	assert.Equal(t, []screening.ResultsRoute{{ScreeningID: screenID, ChildID: childID}}, nav.replaced())

	subs := f.submissions()
	require.Len(t, subs, 30)
	assert.Equal(t, domain.AnswerInput{QuestionID: 130, Answer: domain.AnswerNo}, subs[29].Answers[0])

	assert.ErrorIs(t, q.Next(), screening.ErrWrongState)
	assert.Len(t, nav.replaced(), 1)
}

func TestCompletionStillNavigatesWhenServerDisagrees(t *testing.T) {
	f := newFake()
	f.set = questionSet(1)
	f.finalState = domain.ScreeningInProgress
	q, nav := started(t, f)

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Select(screening.ChoiceYes))
		require.NoError(t, q.Next())
	}
	assert.Len(t, nav.replaced(), 1)
}

func TestEmptyIntervalReportsNoQuestions(t *testing.T) {
	f := newFake()
	f.set = domain.QuestionSet{AgeInterval: domain.AgeInterval{ID: intervalID}}
	q, _ := started(t, f)

	snap := q.Snapshot()
	assert.True(t, snap.NoQuestions)
	assert.Nil(t, snap.Question)
	assert.ErrorIs(t, q.Next(), screening.ErrNoQuestions)
	assert.ErrorIs(t, q.Retry(), screening.ErrWrongState)
}

func TestResolutionFailureThenRetry(t *testing.T) {
	f := newFake()
	f.createErrs = []error{errBoom}
	q, _ := begin(t, f, screening.Params{ChildID: childID})

	assert.ErrorIs(t, q.Start(), errBoom)
	snap := q.Snapshot()
	assert.Equal(t, screening.StateError, snap.State)
	assert.ErrorIs(t, snap.Err, errBoom)
	assert.ErrorIs(t, q.Select(screening.ChoiceYes), screening.ErrWrongState)

	require.NoError(t, q.Retry())
	assert.Equal(t, screening.StateAnswering, q.Snapshot().State)
	assert.Equal(t, 2, f.creations())
}

func TestQuestionLoadFailureRetriesLoadOnly(t *testing.T) {
	f := newFake()
	f.questionErrs = []error{errBoom}
	q, _ := begin(t, f, screening.Params{ChildID: childID})

	assert.ErrorIs(t, q.Start(), errBoom)
	assert.Equal(t, screening.StateError, q.Snapshot().State)

	require.NoError(t, q.Retry())
	assert.Equal(t, screening.StateAnswering, q.Snapshot().State)
	assert.Equal(t, 1, f.creations())
	assert.Equal(t, 1, f.inProgressN)
	assert.Equal(t, 2, f.questionsN)
}

func TestStartTwiceIsRejected(t *testing.T) {
	f := newFake()
	q, _ := started(t, f)
	assert.ErrorIs(t, q.Start(), screening.ErrWrongState)
	assert.Equal(t, 1, f.creations())
}

func TestCloseDiscardsLateSubmission(t *testing.T) {
	f := newFake()
	f.submitGate = make(chan struct{})
	f.submitting = make(chan struct{}, 1)
	q, nav := started(t, f)
	require.NoError(t, q.Select(screening.ChoiceYes))

	done := make(chan error, 1)
	go func() { done <- q.Next() }()
	<-f.submitting
	q.Close()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, screening.ErrClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("submission was not cancelled")
	}
	assert.Equal(t, 0, q.Snapshot().Index)
	assert.Empty(t, nav.replaced())
	assert.ErrorIs(t, q.Select(screening.ChoiceNo), screening.ErrClosed)
}
