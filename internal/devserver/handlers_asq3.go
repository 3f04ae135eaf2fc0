package devserver

import (
	"net/http"
	"strconv"

	"kembang/internal/domain"
)

func itoa(n int) string { return strconv.Itoa(n) }

func (s *Server) handleDomains(w http.ResponseWriter, _ *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"domains": s.domains})
}

func (s *Server) handleIntervals(w http.ResponseWriter, _ *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"age_intervals": s.intervals})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request, _ int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	iv, ok := s.intervalLocked(pathID(r, "interval"))
	if !ok {
		writeError(w, http.StatusNotFound, "Interval usia tidak ditemukan.")
		return
	}
	writeJSON(w, http.StatusOK, s.questionSetLocked(iv))
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request, _ int64) {
	q := r.URL.Query()
	domainID, _ := strconv.ParseInt(q.Get("domain_id"), 10, 64)
	intervalID, _ := strconv.ParseInt(q.Get("age_interval_id"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Recommendation, 0)
	for _, rec := range s.recommendations {
		if domainID != 0 && (rec.DomainID == nil || *rec.DomainID != domainID) {
			continue
		}
		if intervalID != 0 && rec.AgeIntervalID != nil && *rec.AgeIntervalID != intervalID {
			continue
		}
		out = append(out, rec)
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": out})
}

func (s *Server) intervalLocked(id int64) (domain.AgeInterval, bool) {
	for _, iv := range s.intervals {
		if iv.ID == id {
			return iv, true
		}
	}
	return domain.AgeInterval{}, false
}

// intervalForAge picks the largest interval whose age does not exceed months,
// or the youngest interval for very young children.
func (s *Server) intervalForAgeLocked(months int) domain.AgeInterval {
	best := s.intervals[0]
	for _, iv := range s.intervals {
		if iv.AgeMonths <= months && iv.AgeMonths >= best.AgeMonths {
			best = iv
		}
	}
	return best
}

func (s *Server) questionSetLocked(iv domain.AgeInterval) domain.QuestionSet {
	grouped := make(domain.QuestionsByDomain, len(s.domains))
	for _, q := range s.questions[iv.ID] {
		grouped[q.Domain.Code] = append(grouped[q.Domain.Code], q)
	}
	return domain.QuestionSet{
		AgeInterval:       iv,
		QuestionsByDomain: grouped,
		Cutoffs:           s.cutoffs[iv.ID],
		TotalQuestions:    len(s.questions[iv.ID]),
	}
}
