package devserver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kembang/internal/domain"
)

func TestClassifyZones(t *testing.T) {
	cut := domain.Cutoff{CutoffScore: 24, MonitoringScore: 36}

	assert.Equal(t, domain.ResultSesuai, classify(60, cut))
	assert.Equal(t, domain.ResultSesuai, classify(36, cut))
	assert.Equal(t, domain.ResultPantau, classify(35, cut))
	assert.Equal(t, domain.ResultPantau, classify(25, cut))
	assert.Equal(t, domain.ResultPerluRujukan, classify(24, cut))
	assert.Equal(t, domain.ResultPerluRujukan, classify(0, cut))
}

func TestCompleteTakesWorstDomainAsOverall(t *testing.T) {
	s := New(nil)
	rec := &screeningRecord{
		screening: domain.Screening{ID: 1, AgeInterval: domain.AgeInterval{ID: DemoIntervalID}},
		answers:   make(map[int64]domain.AnswerValue),
	}
	for _, q := range s.questions[DemoIntervalID] {
		ans := domain.AnswerYes
		if q.Domain.Code == domain.DomainFineMotor {
			ans = domain.AnswerSometimes
		}
		rec.answers[q.ID] = ans
	}

	s.completeLocked(rec)

	sc := rec.screening
	assert.Equal(t, domain.ScreeningCompleted, sc.Status)
	if assert.NotNil(t, sc.OverallStatus) {
		assert.Equal(t, domain.ResultPantau, *sc.OverallStatus)
	}
	assert.NotNil(t, sc.CompletedAt)
	assert.Len(t, sc.Results, 5)
	for _, r := range sc.Results {
		if r.Domain.Code == domain.DomainFineMotor {
			assert.Equal(t, 30.0, r.TotalScore)
			assert.Equal(t, domain.ResultPantau, r.Status)
			continue
		}
		assert.Equal(t, 60.0, r.TotalScore)
		assert.Equal(t, domain.ResultSesuai, r.Status)
	}

	recs := s.recommendationsForLocked(sc)
	var domains []domain.DomainCode
	general := 0
	for _, r := range recs {
		if r.Domain == nil {
			general++
			continue
		}
		domains = append(domains, r.Domain.Code)
	}
	assert.Equal(t, []domain.DomainCode{domain.DomainFineMotor}, domains)
	assert.Equal(t, 1, general)
}
