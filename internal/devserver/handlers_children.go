package devserver

import (
	"net/http"
	"strings"
	"time"

	"kembang/internal/domain"
)

func (s *Server) handleCreateChild(w http.ResponseWriter, r *http.Request, userID int64) {
	var req domain.CreateChildRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := domain.Child{
		UserID:            userID,
		Name:              strings.TrimSpace(req.Name),
		Birthday:          req.Birthday,
		Gender:            req.Gender,
		BirthWeight:       req.BirthWeight,
		BirthHeight:       req.BirthHeight,
		HeadCircumference: req.HeadCircumference,
		IsActive:          req.IsActive == nil || *req.IsActive,
	}
	if field, msg, ok := s.validChildLocked(c); !ok {
		writeValidation(w, field, msg)
		return
	}
	now := s.now().UTC().Format(timestampLayout)
	c.ID = s.nextChildID
	c.CreatedAt, c.UpdatedAt = now, now
	s.nextChildID++
	s.children[c.ID] = &c
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Data anak ditambahkan.", "child": s.withAgeLocked(c)})
}

func (s *Server) handleUpdateChild(w http.ResponseWriter, r *http.Request, userID int64) {
	var req domain.UpdateChildRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.ownedChildLocked(userID, pathID(r, "child"))
	if !ok {
		writeError(w, http.StatusNotFound, "Anak tidak ditemukan.")
		return
	}
	next := *cur
	if req.Name != nil {
		next.Name = strings.TrimSpace(*req.Name)
	}
	if req.Birthday != nil {
		next.Birthday = *req.Birthday
	}
	if req.Gender != nil {
		next.Gender = *req.Gender
	}
	if req.BirthWeight != nil {
		next.BirthWeight = req.BirthWeight
	}
	if req.BirthHeight != nil {
		next.BirthHeight = req.BirthHeight
	}
	if req.HeadCircumference != nil {
		next.HeadCircumference = req.HeadCircumference
	}
	if req.IsActive != nil {
		next.IsActive = *req.IsActive
	}
	if field, msg, ok := s.validChildLocked(next); !ok {
		writeValidation(w, field, msg)
		return
	}
	next.UpdatedAt = s.now().UTC().Format(timestampLayout)
	*cur = next
	writeJSON(w, http.StatusOK, map[string]any{"message": "Data anak diperbarui.", "child": s.withAgeLocked(next)})
}

// handleDeleteChild removes the profile together with its screenings,
// measurements and PMT schedules.
func (s *Server) handleDeleteChild(w http.ResponseWriter, r *http.Request, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.ownedChildLocked(userID, pathID(r, "child"))
	if !ok {
		writeError(w, http.StatusNotFound, "Anak tidak ditemukan.")
		return
	}
	for id, rec := range s.screenings {
		if rec.screening.ChildID == c.ID {
			delete(s.screenings, id)
		}
	}
	for id, m := range s.measurements {
		if m.ChildID == c.ID {
			delete(s.measurements, id)
		}
	}
	for id, sc := range s.schedules {
		if sc.ChildID == c.ID {
			delete(s.schedules, id)
		}
	}
	delete(s.children, c.ID)
	writeJSON(w, http.StatusOK, domain.MessageResponse{Message: "Data anak dihapus."})
}

// validChildLocked returns the offending field and message when c is invalid.
func (s *Server) validChildLocked(c domain.Child) (string, string, bool) {
	if c.Name == "" {
		return "name", "Nama anak wajib diisi.", false
	}
	b, err := time.Parse(dateLayout, c.Birthday)
	if err != nil {
		return "birthday", "Tanggal lahir harus berformat YYYY-MM-DD.", false
	}
	if b.After(s.now()) {
		return "birthday", "Tanggal lahir tidak boleh di masa depan.", false
	}
	if !c.Gender.Valid() {
		return "gender", "Jenis kelamin tidak valid.", false
	}
	for _, m := range []struct {
		field string
		v     *float64
	}{
		{"birth_weight", c.BirthWeight},
		{"birth_height", c.BirthHeight},
		{"head_circumference", c.HeadCircumference},
	} {
		if m.v != nil && *m.v <= 0 {
			return m.field, "Nilai harus lebih dari 0.", false
		}
	}
	return "", "", true
}
