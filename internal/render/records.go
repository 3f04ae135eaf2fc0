package render

import (
	"fmt"
	"strings"

	"kembang/internal/domain"
)

// Child formats one profile.
func (r *Renderer) Child(c domain.Child) string {
	var sb strings.Builder
	sb.WriteString(r.head.Sprint(c.Name) + r.dim.Sprintf(" (id %d)", c.ID) + "\n")
	fmt.Fprintf(&sb, "Lahir: %s  Usia: %s  Jenis kelamin: %s\n", c.Birthday, c.Age.Label, c.Gender)
	if c.BirthWeight != nil || c.BirthHeight != nil {
		fmt.Fprintf(&sb, "Lahir dengan: %s kg, %s cm\n", optional(c.BirthWeight), optional(c.BirthHeight))
	}
	if !c.IsActive {
		sb.WriteString(r.dim.Sprint("(tidak aktif)") + "\n")
	}
	return sb.String()
}

// Measurements lists growth measurements.
func (r *Renderer) Measurements(list []domain.Anthropometry) string {
	if len(list) == 0 {
		return "Belum ada data pengukuran\n"
	}
	var sb strings.Builder
	for _, m := range list {
		fmt.Fprintf(&sb, "%5d  %s  %5.1f kg  %5.1f cm  IMT %4.1f  %s\n",
			m.ID, m.MeasurementDate, m.Weight, m.Height, m.BMI, r.nutrition(m.Status.Nutritional))
	}
	return sb.String()
}

// nutrition colors a nutritional status label.
func (r *Renderer) nutrition(label string) string {
	switch {
	case label == "":
		return ""
	case strings.Contains(label, "Baik"), label == "Normal":
		return r.ok.Sprint(label)
	case strings.Contains(label, "Buruk"):
		return r.bad.Sprint(label)
	}
	return r.warn.Sprint(label)
}

// PmtMenus lists PMT menus.
func (r *Renderer) PmtMenus(menus []domain.PmtMenu) string {
	if len(menus) == 0 {
		return "Tidak ada menu PMT\n"
	}
	var sb strings.Builder
	for _, m := range menus {
		fmt.Fprintf(&sb, "%4d  %-24s %4.0f kkal %4.1f g protein  %s\n",
			m.ID, m.Name, m.Nutrition.Calories, m.Nutrition.Protein,
			r.dim.Sprintf("%d-%d bulan", m.AgeRange.MinMonths, m.AgeRange.MaxMonths))
	}
	return sb.String()
}

// PmtSchedules lists planned meals and how much of each was eaten.
func (r *Renderer) PmtSchedules(list []domain.PmtSchedule) string {
	if len(list) == 0 {
		return "Belum ada jadwal PMT\n"
	}
	var sb strings.Builder
	for _, sc := range list {
		eaten := r.dim.Sprint("belum dicatat")
		if sc.Log != nil {
			eaten = r.portion(sc.Log.Portion, sc.Log.PortionLabel)
		}
		fmt.Fprintf(&sb, "%5d  %s  %-24s %s\n", sc.ID, sc.ScheduledDate, sc.Menu.Name, eaten)
	}
	return sb.String()
}

func (r *Renderer) portion(p domain.PmtPortion, label string) string {
	if label == "" {
		label = p.Label()
	}
	switch p {
	case domain.PortionHabis:
		return r.ok.Sprint(label)
	case domain.PortionNone:
		return r.bad.Sprint(label)
	}
	return r.warn.Sprint(label)
}

// PmtProgress formats compliance for a period.
func (r *Renderer) PmtProgress(p domain.PmtProgress) string {
	var sb strings.Builder
	sb.WriteString(r.head.Sprintf("PMT %s s/d %s", p.Period.StartDate, p.Period.EndDate) + "\n")
	s := p.Summary
	fmt.Fprintf(&sb, "Terjadwal: %d  Dicatat: %d  Belum: %d\n", s.TotalScheduled, s.TotalLogged, s.Pending)
	fmt.Fprintf(&sb, "Kepatuhan: %.1f%%  Rata-rata dimakan: %.1f%%\n", s.ComplianceRate, s.ConsumptionRate)
	b := p.ConsumptionBreakdown
	for _, row := range []struct {
		portion domain.PmtPortion
		n       int
	}{
		{domain.PortionHabis, b.Habis},
		{domain.PortionHalf, b.Half},
		{domain.PortionQuarter, b.Quarter},
		{domain.PortionNone, b.None},
	} {
		fmt.Fprintf(&sb, "  %-14s %d\n", row.portion.Label(), row.n)
	}
	return sb.String()
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
