package devserver

import (
	"sort"

	"kembang/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05+00:00"

var answerScores = map[domain.AnswerValue]float64{
	domain.AnswerYes:       10,
	domain.AnswerSometimes: 5,
	domain.AnswerNo:        0,
}

var resultLabels = map[domain.ResultStatus]string{
	domain.ResultSesuai:       "Sesuai Harapan",
	domain.ResultPantau:       "Perlu Pemantauan",
	domain.ResultPerluRujukan: "Perlu Rujukan",
}

var resultSeverity = map[domain.ResultStatus]int{
	domain.ResultSesuai:       0,
	domain.ResultPantau:       1,
	domain.ResultPerluRujukan: 2,
}

// classify maps a domain total onto the ASQ-3 zones.
func classify(total float64, cut domain.Cutoff) domain.ResultStatus {
	switch {
	case total >= cut.MonitoringScore:
		return domain.ResultSesuai
	case total > cut.CutoffScore:
		return domain.ResultPantau
	default:
		return domain.ResultPerluRujukan
	}
}

// completeLocked scores rec and marks it completed.
func (s *Server) completeLocked(rec *screeningRecord) {
	ivID := rec.screening.AgeInterval.ID
	totals := make(map[domain.DomainCode]float64, len(s.domains))
	for _, q := range s.questions[ivID] {
		totals[q.Domain.Code] += answerScores[rec.answers[q.ID]]
	}

	overall := domain.ResultSesuai
	results := make([]domain.DomainResult, 0, len(s.domains))
	for _, d := range s.domains {
		cut := s.cutoffs[ivID][d.Code]
		status := classify(totals[d.Code], cut)
		if resultSeverity[status] > resultSeverity[overall] {
			overall = status
		}
		results = append(results, domain.DomainResult{
			Domain:          domain.DomainRef{Code: d.Code, Name: d.Name, Color: d.Color},
			TotalScore:      totals[d.Code],
			CutoffScore:     cut.CutoffScore,
			MonitoringScore: cut.MonitoringScore,
			Status:          status,
			StatusLabel:     resultLabels[status],
		})
	}

	completedAt := s.now().UTC().Format(timestampLayout)
	label := resultLabels[overall]
	rec.screening.Status = domain.ScreeningCompleted
	rec.screening.StatusLabel = screeningStatusLabels[domain.ScreeningCompleted]
	rec.screening.OverallStatus = &overall
	rec.screening.OverallStatusLabel = &label
	rec.screening.CompletedAt = &completedAt
	rec.screening.Results = results
}

// recommendationsForLocked returns general tips plus tips for every domain
// that did not score sesuai, most important first.
func (s *Server) recommendationsForLocked(sc domain.Screening) []domain.Recommendation {
	flagged := make(map[domain.DomainCode]bool)
	for _, r := range sc.Results {
		if r.Status != domain.ResultSesuai {
			flagged[r.Domain.Code] = true
		}
	}
	out := make([]domain.Recommendation, 0)
	for _, rec := range s.recommendations {
		if rec.AgeIntervalID != nil && *rec.AgeIntervalID != sc.AgeInterval.ID {
			continue
		}
		if rec.Domain != nil && !flagged[rec.Domain.Code] {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}
