package devserver

import (
	"math"
	"net/http"
	"sort"
	"time"

	"kembang/internal/domain"
)

const (
	maxWeightKg = 50.0
	maxHeightCm = 150.0
)

func (s *Server) handleListMeasurements(w http.ResponseWriter, r *http.Request, userID int64) {
	q := r.URL.Query()
	from, to := q.Get("start_date"), q.Get("end_date")

	s.mu.Lock()
	defer s.mu.Unlock()
	child, ok := s.ownedChildLocked(userID, pathID(r, "child"))
	if !ok {
		writeError(w, http.StatusNotFound, "Anak tidak ditemukan.")
		return
	}
	all := make([]domain.Anthropometry, 0)
	for _, m := range s.measurements {
		if m.ChildID != child.ID || !inRange(m.MeasurementDate, from, to) {
			continue
		}
		all = append(all, *m)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].MeasurementDate != all[j].MeasurementDate {
			return all[i].MeasurementDate > all[j].MeasurementDate
		}
		return all[i].ID > all[j].ID
	})

	page, meta := paginate(r, all)
	writeJSON(w, http.StatusOK, map[string]any{"data": page, "pagination": meta})
}

func (s *Server) handleCreateMeasurement(w http.ResponseWriter, r *http.Request, userID int64) {
	var req domain.CreateAnthropometryRequest
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

	date, err := time.Parse(dateLayout, req.MeasurementDate)
	switch {
	case err != nil:
		writeValidation(w, "measurement_date", "Tanggal pengukuran harus berformat YYYY-MM-DD.")
		return
	case date.After(s.now()):
		writeValidation(w, "measurement_date", "Tanggal pengukuran tidak boleh di masa depan.")
		return
	case req.MeasurementDate < child.Birthday:
		writeValidation(w, "measurement_date", "Tanggal pengukuran sebelum tanggal lahir.")
		return
	case req.Weight <= 0 || req.Weight > maxWeightKg:
		writeValidation(w, "weight", "Berat badan harus antara 0 dan 50 kg.")
		return
	case req.Height <= 0 || req.Height > maxHeightCm:
		writeValidation(w, "height", "Tinggi badan harus antara 0 dan 150 cm.")
		return
	case req.HeadCircumference != nil && *req.HeadCircumference <= 0:
		writeValidation(w, "head_circumference", "Lingkar kepala harus lebih dari 0.")
		return
	case req.MeasurementLocation != "" && !req.MeasurementLocation.Valid():
		writeValidation(w, "measurement_location", "Lokasi pengukuran tidak valid.")
		return
	}

	m := s.addMeasurementLocked(child.ID, req)
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Pengukuran disimpan.", "measurement": m})
}

// addMeasurementLocked stores an already validated measurement.
func (s *Server) addMeasurementLocked(childID int64, req domain.CreateAnthropometryRequest) domain.Anthropometry {
	bmi := round1(req.Weight / math.Pow(req.Height/100, 2))
	band := bmiBand(bmi)
	m := domain.Anthropometry{
		ID:                s.nextMeasurementID,
		ChildID:           childID,
		MeasurementDate:   req.MeasurementDate,
		Weight:            req.Weight,
		Height:            req.Height,
		HeadCircumference: req.HeadCircumference,
		BMI:               bmi,
		IsLying:           req.IsLying,
		Status:            domain.NutritionalStatus{Nutritional: band, Stunting: "Normal", Wasting: band},
		CreatedAt:         s.now().UTC().Format(timestampLayout),
	}
	if req.MeasurementLocation != "" {
		loc := req.MeasurementLocation
		m.MeasurementLocation = &loc
	}
	if req.Notes != "" {
		notes := req.Notes
		m.Notes = &notes
	}
	s.nextMeasurementID++
	s.measurements[m.ID] = &m
	return m
}

// bmiBand is a coarse stand-in for the WHO weight-for-height assessment.
func bmiBand(bmi float64) string {
	switch {
	case bmi < 13:
		return "Gizi Kurang"
	case bmi > 18:
		return "Berisiko Gizi Lebih"
	default:
		return "Gizi Baik"
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// inRange reports whether date lies in [from, to]. Empty bounds are open.
func inRange(date, from, to string) bool {
	return (from == "" || date >= from) && (to == "" || date <= to)
}
