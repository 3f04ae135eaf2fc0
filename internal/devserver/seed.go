package devserver

import (
	"fmt"

	"github.com/google/uuid"

	"kembang/internal/domain"
)

// Seeded fixtures.
const (
	DemoEmail    = "bunda@example.com"
	DemoPassword = "rahasia123"

	DemoUserID       int64 = 1
	DemoChildID      int64 = 7
	DemoToddlerID    int64 = 8
	DemoIntervalID   int64 = 3
	FirstScreeningID int64 = 42

	// DemoQuestionsPerDomain is the question count per domain for DemoIntervalID.
	DemoQuestionsPerDomain = 6

	// DemoMeasurementID is the one measurement seeded for DemoChildID.
	DemoMeasurementID int64 = 100

	// DemoMenuID is a PMT menu suited to both seeded children.
	DemoMenuID int64 = 1
	// InfantMenuID is a PMT menu for children under one year only.
	InfantMenuID int64 = 3

	firstUserID     int64 = 2
	firstChildID    int64 = 9
	firstScheduleID int64 = 500
)

var menuCatalog = []domain.PmtMenu{
	{
		ID:          DemoMenuID,
		Name:        "Bubur Kacang Hijau",
		Description: strPtr("Bubur kacang hijau dengan santan dan gula aren."),
		Nutrition:   domain.PmtMenuNutrition{Calories: 250, Protein: 8},
		AgeRange:    domain.PmtMenuAgeRange{MinMonths: 6, MaxMonths: 59},
		IsActive:    true,
	},
	{
		ID:          2,
		Name:        "Nugget Ikan Tempe",
		Description: strPtr("Nugget ikan kembung dan tempe, dikukus lalu dipanggang."),
		Nutrition:   domain.PmtMenuNutrition{Calories: 320, Protein: 14},
		AgeRange:    domain.PmtMenuAgeRange{MinMonths: 12, MaxMonths: 59},
		IsActive:    true,
	},
	{
		ID:          InfantMenuID,
		Name:        "Puree Labu Kuning",
		Description: strPtr("Labu kuning kukus dihaluskan dengan ASI."),
		Nutrition:   domain.PmtMenuNutrition{Calories: 90, Protein: 2},
		AgeRange:    domain.PmtMenuAgeRange{MinMonths: 6, MaxMonths: 11},
		IsActive:    true,
	},
	{
		ID:        4,
		Name:      "Biskuit PMT Lama",
		Nutrition: domain.PmtMenuNutrition{Calories: 180, Protein: 4},
		AgeRange:  domain.PmtMenuAgeRange{MinMonths: 6, MaxMonths: 59},
	},
}

func strPtr(s string) *string { return &s }

var domainCatalog = []domain.Asq3Domain{
	{ID: 1, Code: domain.DomainCommunication, Name: "Komunikasi", Color: "#4D96FF", DisplayOrder: 1},
	{ID: 2, Code: domain.DomainGrossMotor, Name: "Motorik Kasar", Color: "#6BCB77", DisplayOrder: 2},
	{ID: 3, Code: domain.DomainFineMotor, Name: "Motorik Halus", Color: "#FFD93D", DisplayOrder: 3},
	{ID: 4, Code: domain.DomainProblemSolving, Name: "Pemecahan Masalah", Color: "#FF6B6B", DisplayOrder: 4},
	{ID: 5, Code: domain.DomainPersonalSocial, Name: "Personal Sosial", Color: "#9D4EDD", DisplayOrder: 5},
}

var questionStems = map[domain.DomainCode]string{
	domain.DomainCommunication:  "Apakah anak dapat menyebutkan kata baru (item %d)?",
	domain.DomainGrossMotor:     "Apakah anak dapat berjalan dan berlari dengan seimbang (item %d)?",
	domain.DomainFineMotor:      "Apakah anak dapat menumpuk balok tanpa jatuh (item %d)?",
	domain.DomainProblemSolving: "Apakah anak dapat meniru gerakan orang dewasa (item %d)?",
	domain.DomainPersonalSocial: "Apakah anak dapat makan sendiri dengan sendok (item %d)?",
}

func (s *Server) seed() {
	s.accounts[DemoEmail] = &account{
		user: domain.User{
			ID:    DemoUserID,
			Name:  "Siti Rahayu",
			Email: DemoEmail,
			Phone: "081234567890",
			Role:  "parent",
		},
		password: DemoPassword,
	}

	now := s.now()
	s.children[DemoChildID] = &domain.Child{
		ID:       DemoChildID,
		UserID:   DemoUserID,
		Name:     "Budi Santoso",
		Birthday: now.AddDate(-2, 0, -10).Format(dateLayout),
		Gender:   domain.GenderMale,
		IsActive: true,
	}
	s.children[DemoToddlerID] = &domain.Child{
		ID:       DemoToddlerID,
		UserID:   DemoUserID,
		Name:     "Ananda Rizky",
		Birthday: now.AddDate(-1, 0, -5).Format(dateLayout),
		Gender:   domain.GenderFemale,
		IsActive: true,
	}

	s.domains = append([]domain.Asq3Domain(nil), domainCatalog...)
	s.intervals = []domain.AgeInterval{
		{ID: 1, AgeMonths: 12, AgeLabel: "12 Bulan", MinDays: 350, MaxDays: 411},
		{ID: 2, AgeMonths: 18, AgeLabel: "18 Bulan", MinDays: 532, MaxDays: 592},
		{ID: DemoIntervalID, AgeMonths: 24, AgeLabel: "24 Bulan", MinDays: 715, MaxDays: 776},
		{ID: 4, AgeMonths: 36, AgeLabel: "36 Bulan", MinDays: 1080, MaxDays: 1141},
	}
	for _, iv := range s.intervals {
		perDomain, base := 2, iv.ID*1000
		if iv.ID == DemoIntervalID {
			perDomain, base = DemoQuestionsPerDomain, 100
		}
		s.seedQuestions(iv.ID, base, perDomain)
	}

	prio := 1
	for _, iv := range s.intervals {
		ivID := iv.ID
		for _, d := range s.domains {
			domainID := d.ID
			dom := d
			s.recommendations = append(s.recommendations, domain.Recommendation{
				ID:            int64(len(s.recommendations) + 1),
				DomainID:      &domainID,
				AgeIntervalID: &ivID,
				Title:         fmt.Sprintf("Stimulasi %s", d.Name),
				Description:   fmt.Sprintf("Ajak anak bermain kegiatan %s setiap hari selama 15 menit.", d.Name),
				Priority:      prio,
				Domain:        &dom,
			})
		}
	}
	s.recommendations = append(s.recommendations, domain.Recommendation{
		ID:          int64(len(s.recommendations) + 1),
		Title:       "Bacakan buku bersama",
		Description: "Membaca bersama setiap malam mendukung semua aspek perkembangan.",
		Priority:    prio + 1,
	})

	s.nextScreeningID = FirstScreeningID

	s.menus = append([]domain.PmtMenu(nil), menuCatalog...)
	s.nextUserID = firstUserID
	s.nextChildID = firstChildID
	s.nextMeasurementID = DemoMeasurementID
	s.nextScheduleID = firstScheduleID
	s.nextLogID = 1

	s.addMeasurementLocked(DemoChildID, domain.CreateAnthropometryRequest{
		MeasurementDate:     now.AddDate(0, -1, 0).Format(dateLayout),
		Weight:              11.8,
		Height:              86.5,
		MeasurementLocation: domain.LocationPosyandu,
	})
}

// seedQuestions creates perDomain questions per domain with ids base+1....
func (s *Server) seedQuestions(intervalID, base int64, perDomain int) {
	cut := make(map[domain.DomainCode]domain.Cutoff, len(s.domains))
	id := base
	for _, d := range s.domains {
		for k := 1; k <= perDomain; k++ {
			id++
			s.questions[intervalID] = append(s.questions[intervalID], domain.Question{
				ID:           id,
				QuestionText: fmt.Sprintf(questionStems[d.Code], k),
				DomainID:     d.ID,
				DisplayOrder: k,
				Domain:       d,
			})
		}
		top := float64(perDomain * 10)
		cut[d.Code] = domain.Cutoff{
			CutoffScore:     top * 0.4,
			MonitoringScore: top * 0.6,
			Domain:          d,
		}
	}
	s.cutoffs[intervalID] = cut
}

func (s *Server) issueTokenLocked(userID int64) string {
	token := uuid.NewString()
	s.tokens[token] = userID
	return token
}
