package screening

import (
	"sort"

	"kembang/internal/domain"
)

// DomainOrder is the order domains are presented in.
var DomainOrder = []domain.DomainCode{
	domain.DomainCommunication,
	domain.DomainGrossMotor,
	domain.DomainFineMotor,
	domain.DomainProblemSolving,
	domain.DomainPersonalSocial,
}

// Flatten orders the grouped questions by DomainOrder, then by display order
// within each domain, then by id. Domains missing from byDomain contribute
// nothing and codes outside DomainOrder are ignored. The input is not
// modified.
func Flatten(byDomain domain.QuestionsByDomain) []domain.Question {
	out := make([]domain.Question, 0)
	for _, code := range DomainOrder {
		qs := append([]domain.Question(nil), byDomain[code]...)
		sort.SliceStable(qs, func(i, j int) bool {
			if qs[i].DisplayOrder != qs[j].DisplayOrder {
				return qs[i].DisplayOrder < qs[j].DisplayOrder
			}
			return qs[i].ID < qs[j].ID
		})
		out = append(out, qs...)
	}
	return out
}

// Cursor is a zero-based position in a sequence of n questions.
type Cursor struct {
	pos int
	n   int
}

// NewCursor returns a cursor at 0 over n items.
func NewCursor(n int) Cursor {
	if n < 0 {
		n = 0
	}
	return Cursor{n: n}
}

// Index returns the current position.
func (c Cursor) Index() int { return c.pos }

// Len returns the sequence length.
func (c Cursor) Len() int { return c.n }

// AtLast reports whether the cursor is on the final item.
func (c Cursor) AtLast() bool { return c.n > 0 && c.pos == c.n-1 }

// Next moves forward by one. At the last item it stays put and returns false.
func (c *Cursor) Next() bool {
	if c.pos >= c.n-1 {
		return false
	}
	c.pos++
	return true
}

// Prev moves back by one. At 0 it stays put and returns false.
func (c *Cursor) Prev() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--
	return true
}
