package devserver

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"kembang/internal/domain"
)

func (s *Server) handlePmtMenus(w http.ResponseWriter, r *http.Request, _ int64) {
	age, _ := strconv.Atoi(r.URL.Query().Get("age_months"))

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PmtMenu, 0, len(s.menus))
	for _, m := range s.menus {
		if !m.IsActive {
			continue
		}
		if age > 0 && (age < m.AgeRange.MinMonths || age > m.AgeRange.MaxMonths) {
			continue
		}
		out = append(out, m)
	}
	writeJSON(w, http.StatusOK, map[string]any{"menus": out})
}

func (s *Server) handleListPmtSchedules(w http.ResponseWriter, r *http.Request, userID int64) {
	period, ok := s.period(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	child, ok := s.ownedChildLocked(userID, pathID(r, "child"))
	if !ok {
		writeError(w, http.StatusNotFound, "Anak tidak ditemukan.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"schedules": s.schedulesInLocked(child.ID, period)})
}

func (s *Server) handleCreatePmtSchedule(w http.ResponseWriter, r *http.Request, userID int64) {
	var req domain.CreatePmtScheduleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}
	if _, err := time.Parse(dateLayout, req.ScheduledDate); err != nil {
		writeValidation(w, "scheduled_date", "Tanggal jadwal harus berformat YYYY-MM-DD.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	child, ok := s.ownedChildLocked(userID, pathID(r, "child"))
	if !ok {
		writeError(w, http.StatusNotFound, "Anak tidak ditemukan.")
		return
	}
	menu, ok := s.menuLocked(req.MenuID)
	if !ok || !menu.IsActive {
		writeValidation(w, "menu_id", "Menu PMT tidak ditemukan.")
		return
	}
	for _, sc := range s.schedules {
		if sc.ChildID == child.ID && sc.ScheduledDate == req.ScheduledDate {
			writeValidation(w, "scheduled_date", "Sudah ada jadwal PMT pada tanggal ini.")
			return
		}
	}

	sc := domain.PmtSchedule{
		ID:            s.nextScheduleID,
		ChildID:       child.ID,
		ScheduledDate: req.ScheduledDate,
		Menu: domain.PmtScheduleMenu{
			ID:       menu.ID,
			Name:     menu.Name,
			ImageURL: menu.ImageURL,
			Calories: menu.Nutrition.Calories,
			Protein:  menu.Nutrition.Protein,
		},
		CreatedAt: s.now().UTC().Format(timestampLayout),
	}
	s.nextScheduleID++
	s.schedules[sc.ID] = &sc
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Jadwal PMT dibuat.", "schedule": sc})
}

func (s *Server) handleLogPmt(w http.ResponseWriter, r *http.Request, userID int64) {
	s.writePmtLog(w, r, userID, false)
}

func (s *Server) handleUpdatePmtLog(w http.ResponseWriter, r *http.Request, userID int64) {
	s.writePmtLog(w, r, userID, true)
}

// writePmtLog creates the schedule's log, or with update set changes the
// existing one. A schedule has at most one log.
func (s *Server) writePmtLog(w http.ResponseWriter, r *http.Request, userID int64, update bool) {
	var req domain.PmtLogRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}
	if (!update || req.Portion != "") && !req.Portion.Valid() {
		writeValidation(w, "portion", "Porsi harus habis, half, quarter, atau none.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.schedules[pathID(r, "schedule")]
	if ok {
		_, ok = s.ownedChildLocked(userID, sc.ChildID)
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Jadwal PMT tidak ditemukan.")
		return
	}

	status := http.StatusOK
	switch {
	case !update && sc.Log != nil:
		writeValidation(w, "schedule", "Konsumsi PMT untuk jadwal ini sudah dicatat.")
		return
	case update && sc.Log == nil:
		writeValidation(w, "schedule", "Konsumsi PMT untuk jadwal ini belum dicatat.")
		return
	case !update:
		sc.Log = &domain.PmtLog{ID: s.nextLogID}
		s.nextLogID++
		status = http.StatusCreated
	}

	if req.Portion != "" {
		sc.Log.Portion = req.Portion
		sc.Log.PortionPercentage = req.Portion.Percentage()
		sc.Log.PortionLabel = req.Portion.Label()
	}
	if req.Notes != "" {
		notes := req.Notes
		sc.Log.Notes = &notes
	}
	sc.Log.LoggedAt = s.now().UTC().Format(timestampLayout)
	sc.IsLogged = true
	writeJSON(w, status, map[string]any{"message": "Konsumsi PMT dicatat.", "schedule": sc})
}

func (s *Server) handlePmtProgress(w http.ResponseWriter, r *http.Request, userID int64) {
	period, ok := s.period(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	child, ok := s.ownedChildLocked(userID, pathID(r, "child"))
	if !ok {
		writeError(w, http.StatusNotFound, "Anak tidak ditemukan.")
		return
	}
	writeJSON(w, http.StatusOK, pmtProgress(period, s.schedulesInLocked(child.ID, period)))
}

// pmtProgress summarises schedules. Compliance is the share of schedules
// logged; consumption is the mean portion eaten over logged schedules.
func pmtProgress(period domain.PmtPeriod, schedules []domain.PmtSchedule) domain.PmtProgress {
	out := domain.PmtProgress{Period: period}
	eaten := 0
	for _, sc := range schedules {
		out.Summary.TotalScheduled++
		if sc.Log == nil {
			continue
		}
		out.Summary.TotalLogged++
		eaten += sc.Log.PortionPercentage
		switch sc.Log.Portion {
		case domain.PortionHabis:
			out.ConsumptionBreakdown.Habis++
		case domain.PortionHalf:
			out.ConsumptionBreakdown.Half++
		case domain.PortionQuarter:
			out.ConsumptionBreakdown.Quarter++
		case domain.PortionNone:
			out.ConsumptionBreakdown.None++
		}
	}
	out.Summary.Pending = out.Summary.TotalScheduled - out.Summary.TotalLogged
	if out.Summary.TotalScheduled > 0 {
		out.Summary.ComplianceRate = round1(100 * float64(out.Summary.TotalLogged) / float64(out.Summary.TotalScheduled))
	}
	if out.Summary.TotalLogged > 0 {
		out.Summary.ConsumptionRate = round1(float64(eaten) / float64(out.Summary.TotalLogged))
	}
	return out
}

func (s *Server) schedulesInLocked(childID int64, period domain.PmtPeriod) []domain.PmtSchedule {
	out := make([]domain.PmtSchedule, 0)
	for _, sc := range s.schedules {
		if sc.ChildID == childID && inRange(sc.ScheduledDate, period.StartDate, period.EndDate) {
			out = append(out, *sc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledDate != out[j].ScheduledDate {
			return out[i].ScheduledDate < out[j].ScheduledDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Server) menuLocked(id int64) (domain.PmtMenu, bool) {
	for _, m := range s.menus {
		if m.ID == id {
			return m, true
		}
	}
	return domain.PmtMenu{}, false
}

// period reads start_date and end_date, defaulting to the current month, and
// writes a validation error when either is malformed or they are reversed.
func (s *Server) period(w http.ResponseWriter, r *http.Request) (domain.PmtPeriod, bool) {
	q := r.URL.Query()
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	p := domain.PmtPeriod{
		StartDate: first.Format(dateLayout),
		EndDate:   first.AddDate(0, 1, -1).Format(dateLayout),
	}
	for _, f := range []struct {
		key string
		dst *string
	}{{"start_date", &p.StartDate}, {"end_date", &p.EndDate}} {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, v); err != nil {
			writeValidation(w, f.key, "Tanggal harus berformat YYYY-MM-DD.")
			return domain.PmtPeriod{}, false
		}
		*f.dst = v
	}
	if p.StartDate > p.EndDate {
		writeValidation(w, "end_date", "Tanggal akhir sebelum tanggal awal.")
		return domain.PmtPeriod{}, false
	}
	return p, true
}
