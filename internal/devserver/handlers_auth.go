package devserver

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"kembang/internal/domain"
)

const dateLayout = "2006-01-02"

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request, _ int64) {
	var req domain.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeValidation(w, "email", "Email dan kata sandi wajib diisi.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[strings.ToLower(req.Email)]
	if !ok || acc.password != req.Password {
		writeValidation(w, "email", "Email atau kata sandi salah.")
		return
	}
	if req.RevokeOthers {
		for tok, uid := range s.tokens {
			if uid == acc.user.ID {
				delete(s.tokens, tok)
			}
		}
	}
	writeJSON(w, http.StatusOK, domain.AuthResponse{
		Message: "Login berhasil.",
		User:    acc.user,
		Token:   s.issueTokenLocked(acc.user.ID),
	})
}

const minPasswordLength = 8

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request, _ int64) {
	var req domain.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case strings.TrimSpace(req.Name) == "":
		writeValidation(w, "name", "Nama wajib diisi.")
		return
	case !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@"):
		writeValidation(w, "email", "Format email tidak valid.")
		return
	case len(req.Password) < minPasswordLength:
		writeValidation(w, "password", "Kata sandi minimal 8 karakter.")
		return
	case req.Password != req.PasswordConfirmation:
		writeValidation(w, "password", "Konfirmasi kata sandi tidak cocok.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.accounts[email]; taken {
		writeValidation(w, "email", "Email sudah terdaftar.")
		return
	}
	user := domain.User{
		ID:    s.nextUserID,
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Phone: req.Phone,
		Role:  "parent",
	}
	s.nextUserID++
	s.accounts[email] = &account{user: user, password: req.Password}
	writeJSON(w, http.StatusCreated, domain.AuthResponse{
		Message: "Registrasi berhasil.",
		User:    user,
		Token:   s.issueTokenLocked(user.ID),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, _ int64) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, domain.MessageResponse{Message: "Logout berhasil."})
}

func (s *Server) handleMe(w http.ResponseWriter, _ *http.Request, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.user.ID == userID {
			writeJSON(w, http.StatusOK, map[string]any{"user": acc.user})
			return
		}
	}
	writeError(w, http.StatusUnauthorized, "Unauthenticated.")
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request, userID int64) {
	old := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	s.mu.Lock()
	delete(s.tokens, old)
	token := s.issueTokenLocked(userID)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"message": "Token diperbarui.", "token": token})
}

func (s *Server) handleListChildren(w http.ResponseWriter, r *http.Request, userID int64) {
	activeOnly := r.URL.Query().Get("active_only") == "1"
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Child, 0, len(s.children))
	for _, c := range s.children {
		if c.UserID != userID || (activeOnly && !c.IsActive) {
			continue
		}
		out = append(out, s.withAgeLocked(*c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, map[string]any{"data": out})
}

func (s *Server) handleGetChild(w http.ResponseWriter, r *http.Request, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.ownedChildLocked(userID, pathID(r, "child"))
	if !ok {
		writeError(w, http.StatusNotFound, "Anak tidak ditemukan.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"child": s.withAgeLocked(*c)})
}

func (s *Server) ownedChildLocked(userID, childID int64) (*domain.Child, bool) {
	c, ok := s.children[childID]
	if !ok || c.UserID != userID {
		return nil, false
	}
	return c, true
}

func (s *Server) withAgeLocked(c domain.Child) domain.Child {
	c.Age = ageOn(c.Birthday, s.now())
	return c
}

// ageOn splits the time between birthday and now into months and days.
func ageOn(birthday string, now time.Time) domain.Age {
	b, err := time.Parse(dateLayout, birthday)
	if err != nil {
		return domain.Age{}
	}
	months := (now.Year()-b.Year())*12 + int(now.Month()-b.Month())
	if now.Day() < b.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	anchor := b.AddDate(0, months, 0)
	days := int(now.Sub(anchor).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return domain.Age{Months: months, Days: days, Label: ageLabel(months)}
}

func ageLabel(months int) string {
	if months < 12 {
		return itoa(months) + " bulan"
	}
	if months%12 == 0 {
		return itoa(months/12) + " tahun"
	}
	return itoa(months/12) + " tahun " + itoa(months%12) + " bulan"
}
