// Package render formats backend data for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"kembang/internal/domain"
)

// Renderer formats output, optionally with ANSI colors.
type Renderer struct {
	ok, warn, bad, dim, head *color.Color
}

// New creates a renderer. With noColor set every method returns plain text.
func New(noColor bool) *Renderer {
	r := &Renderer{
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		bad:  color.New(color.FgRed),
		dim:  color.New(color.FgHiBlack),
		head: color.New(color.FgCyan, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{r.ok, r.warn, r.bad, r.dim, r.head} {
			c.DisableColor()
		}
	}
	return r
}

// Status colors a result status by severity.
func (r *Renderer) Status(s domain.ResultStatus, label string) string {
	if label == "" {
		label = string(s)
	}
	switch s {
	case domain.ResultSesuai:
		return r.ok.Sprint(label)
	case domain.ResultPantau:
		return r.warn.Sprint(label)
	case domain.ResultPerluRujukan:
		return r.bad.Sprint(label)
	}
	return label
}

// User formats the logged-in user.
func (r *Renderer) User(u domain.User) string {
	return fmt.Sprintf("%s <%s> %s\n", u.Name, u.Email, r.dim.Sprintf("(id %d)", u.ID))
}

// Children lists children, marking the active one with *.
func (r *Renderer) Children(children []domain.Child, activeID int64) string {
	if len(children) == 0 {
		return "Belum ada data anak\n"
	}
	var sb strings.Builder
	for _, c := range children {
		marker := " "
		if c.ID == activeID {
			marker = r.ok.Sprint("*")
		}
		fmt.Fprintf(&sb, "%s %4d  %-24s %s\n", marker, c.ID, c.Name, r.dim.Sprint(c.Age.Label))
	}
	return sb.String()
}

// Domains lists the ASQ-3 domains.
func (r *Renderer) Domains(domains []domain.Asq3Domain) string {
	var sb strings.Builder
	for _, d := range domains {
		fmt.Fprintf(&sb, "%d  %-16s %s\n", d.DisplayOrder, d.Code, d.Name)
	}
	return sb.String()
}

// Intervals lists age intervals.
func (r *Renderer) Intervals(intervals []domain.AgeInterval) string {
	var sb strings.Builder
	for _, iv := range intervals {
		fmt.Fprintf(&sb, "%3d  %-10s %s\n", iv.ID, iv.AgeLabel, r.dim.Sprintf("%d-%d hari", iv.MinDays, iv.MaxDays))
	}
	return sb.String()
}

// Questions prints a flattened sequence with its position numbers.
func (r *Renderer) Questions(iv domain.AgeInterval, seq []domain.Question) string {
	var sb strings.Builder
	sb.WriteString(r.head.Sprintf("%s (%d pertanyaan)", iv.AgeLabel, len(seq)) + "\n")
	var current domain.DomainCode
	for i, q := range seq {
		if q.Domain.Code != current {
			current = q.Domain.Code
			name := q.Domain.Name
			if name == "" {
				name = string(current)
			}
			sb.WriteString(r.dim.Sprint("» "+name) + "\n")
		}
		fmt.Fprintf(&sb, "%3d. [%d] %s\n", i+1, q.ID, q.QuestionText)
	}
	return sb.String()
}

// Screenings lists screenings.
func (r *Renderer) Screenings(list []domain.Screening) string {
	if len(list) == 0 {
		return "Belum ada screening\n"
	}
	var sb strings.Builder
	for _, s := range list {
		overall := ""
		if s.OverallStatus != nil {
			label := ""
			if s.OverallStatusLabel != nil {
				label = *s.OverallStatusLabel
			}
			overall = r.Status(*s.OverallStatus, label)
		}
		fmt.Fprintf(&sb, "%5d  %s  %-10s %-18s %s\n",
			s.ID, s.ScreeningDate, s.AgeInterval.AgeLabel, s.StatusLabel, overall)
	}
	return sb.String()
}

// Results formats per-domain results and recommendations.
func (r *Renderer) Results(res domain.ScreeningResults) string {
	var sb strings.Builder
	sb.WriteString(r.head.Sprintf("Hasil screening #%d", res.Screening.ID) + "\n")
	fmt.Fprintf(&sb, "Tanggal: %s  Usia: %d bulan  Status: %s\n\n",
		res.Screening.Date, res.Screening.AgeAtScreening, r.Status(res.Screening.OverallStatus, ""))

	for _, d := range res.Results {
		fmt.Fprintf(&sb, "  %-18s %5.1f  %s  %s\n",
			d.Domain.Name, d.TotalScore,
			r.dim.Sprintf("(batas %.1f / pantau %.1f)", d.CutoffScore, d.MonitoringScore),
			r.Status(d.Status, d.StatusLabel))
	}
	if len(res.Recommendations) > 0 {
		sb.WriteString("\nRekomendasi:\n")
		for _, rec := range res.Recommendations {
			fmt.Fprintf(&sb, "  - %s: %s\n", rec.Title, rec.Description)
		}
	}
	return sb.String()
}
