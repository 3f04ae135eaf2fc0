package devserver

import (
	"net/http"
	"sort"
	"strconv"

	"kembang/internal/domain"
)

var screeningStatusLabels = map[domain.ScreeningStatus]string{
	domain.ScreeningInProgress: "Sedang Dikerjakan",
	domain.ScreeningCompleted:  "Selesai",
	domain.ScreeningCancelled:  "Dibatalkan",
}

func (s *Server) handleListScreenings(w http.ResponseWriter, r *http.Request, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	child, ok := s.ownedChildLocked(userID, pathID(r, "child"))
	if !ok {
		writeError(w, http.StatusNotFound, "Anak tidak ditemukan.")
		return
	}
	all := make([]domain.Screening, 0)
	for _, rec := range s.screenings {
		if rec.screening.ChildID == child.ID {
			all = append(all, rec.screening)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	page, meta := paginate(r, all)
	writeJSON(w, http.StatusOK, map[string]any{"screenings": page, "pagination": meta})
}

func (s *Server) handleGetScreening(w http.ResponseWriter, r *http.Request, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.screeningLocked(w, r, userID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"screening": rec.screening})
}

func (s *Server) handleCreateScreening(w http.ResponseWriter, r *http.Request, userID int64) {
	var req domain.CreateScreeningRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	child, ok := s.ownedChildLocked(userID, pathID(r, "child"))
	if !ok {
		writeError(w, http.StatusNotFound, "Anak tidak ditemukan.")
		return
	}
	if s.inProgressLocked(child.ID) != nil {
		writeValidation(w, "screening", "Masih ada screening yang sedang berjalan.")
		return
	}

	now := s.now()
	date := req.ScreeningDate
	if date == "" {
		date = now.Format(dateLayout)
	}
	age := ageOn(child.Birthday, now)
	sc := domain.Screening{
		ID:             s.nextScreeningID,
		ChildID:        child.ID,
		ScreeningDate:  date,
		AgeAtScreening: age,
		AgeInterval:    s.intervalForAgeLocked(age.Months),
		Status:         domain.ScreeningInProgress,
		StatusLabel:    screeningStatusLabels[domain.ScreeningInProgress],
		Results:        []domain.DomainResult{},
		CreatedAt:      now.UTC().Format(timestampLayout),
	}
	if req.Notes != "" {
		notes := req.Notes
		sc.Notes = &notes
	}
	s.nextScreeningID++
	s.screenings[sc.ID] = &screeningRecord{screening: sc, answers: make(map[int64]domain.AnswerValue)}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "Screening dimulai.", "screening": sc})
}

func (s *Server) handleUpdateScreening(w http.ResponseWriter, r *http.Request, userID int64) {
	var req domain.UpdateScreeningRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.screeningLocked(w, r, userID)
	if !ok {
		return
	}
	switch req.Status {
	case "":
	case domain.ScreeningCancelled, domain.ScreeningInProgress:
		if rec.screening.Status == domain.ScreeningCompleted {
			writeValidation(w, "status", "Screening yang sudah selesai tidak dapat diubah.")
			return
		}
		if req.Status == domain.ScreeningInProgress && s.otherInProgressLocked(rec) {
			writeValidation(w, "screening", "Masih ada screening yang sedang berjalan.")
			return
		}
		rec.screening.Status = req.Status
		rec.screening.StatusLabel = screeningStatusLabels[req.Status]
	default:
		writeValidation(w, "status", "Status tidak valid.")
		return
	}
	if req.Notes != nil {
		notes := *req.Notes
		rec.screening.Notes = &notes
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Screening diperbarui.", "screening": rec.screening})
}

func (s *Server) handleSubmitAnswers(w http.ResponseWriter, r *http.Request, userID int64) {
	var req domain.SubmitAnswersRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.screeningLocked(w, r, userID)
	if !ok {
		return
	}
	if rec.screening.Status != domain.ScreeningInProgress {
		writeValidation(w, "screening", "Screening tidak sedang berjalan.")
		return
	}
	if len(req.Answers) == 0 {
		writeValidation(w, "answers", "Jawaban wajib diisi.")
		return
	}

	questions := s.questions[rec.screening.AgeInterval.ID]
	known := make(map[int64]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}
	for i, a := range req.Answers {
		field := "answers." + strconv.Itoa(i)
		if !known[a.QuestionID] {
			writeValidation(w, field+".question_id", "Pertanyaan tidak sesuai dengan interval usia.")
			return
		}
		if !a.Answer.Valid() {
			writeValidation(w, field+".answer", "Jawaban harus yes, sometimes, atau no.")
			return
		}
	}
	for _, a := range req.Answers {
		rec.answers[a.QuestionID] = a.Answer
	}
	rec.screening.AnswersCount = len(rec.answers)

	if len(rec.answers) == len(questions) {
		s.completeLocked(rec)
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Jawaban disimpan.", "screening": rec.screening})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.screeningLocked(w, r, userID)
	if !ok {
		return
	}
	sc := rec.screening
	if sc.Status != domain.ScreeningCompleted || sc.OverallStatus == nil {
		writeValidation(w, "screening", "Screening belum selesai.")
		return
	}
	writeJSON(w, http.StatusOK, domain.ScreeningResults{
		Screening: domain.ScreeningSummary{
			ID:             sc.ID,
			Date:           sc.ScreeningDate,
			AgeAtScreening: sc.AgeAtScreening.Months,
			Status:         sc.Status,
			OverallStatus:  *sc.OverallStatus,
		},
		Results:         sc.Results,
		Recommendations: s.recommendationsForLocked(sc),
	})
}

// screeningLocked resolves the {child}/{screening} pair and writes a 404
// when either is missing or not owned by userID.
func (s *Server) screeningLocked(w http.ResponseWriter, r *http.Request, userID int64) (*screeningRecord, bool) {
	child, ok := s.ownedChildLocked(userID, pathID(r, "child"))
	if !ok {
		writeError(w, http.StatusNotFound, "Anak tidak ditemukan.")
		return nil, false
	}
	rec, ok := s.screenings[pathID(r, "screening")]
	if !ok || rec.screening.ChildID != child.ID {
		writeError(w, http.StatusNotFound, "Screening tidak ditemukan.")
		return nil, false
	}
	return rec, true
}

// inProgressLocked returns the child's in-progress screening, if any. A
// child has at most one.
func (s *Server) inProgressLocked(childID int64) *screeningRecord {
	for _, rec := range s.screenings {
		if rec.screening.ChildID == childID && rec.screening.Status == domain.ScreeningInProgress {
			return rec
		}
	}
	return nil
}

// otherInProgressLocked reports whether a screening other than rec is in
// progress for rec's child.
func (s *Server) otherInProgressLocked(rec *screeningRecord) bool {
	cur := s.inProgressLocked(rec.screening.ChildID)
	return cur != nil && cur != rec
}
