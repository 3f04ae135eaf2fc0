package screening

import (
	"fmt"
	"strings"

	"kembang/internal/domain"
)

// Choice is the parent's answer as offered on screen.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceYes
	ChoiceSometimes
	ChoiceNo
)

// Choices lists the selectable choices in display order.
var Choices = []Choice{ChoiceYes, ChoiceSometimes, ChoiceNo}

// String returns the on-screen label.
func (c Choice) String() string {
	switch c {
	case ChoiceYes:
		return "YA"
	case ChoiceSometimes:
		return "KADANG-KADANG"
	case ChoiceNo:
		return "TIDAK"
	}
	return ""
}

// Answer translates c into the backend's vocabulary.
func (c Choice) Answer() (domain.AnswerValue, bool) {
	switch c {
	case ChoiceYes:
		return domain.AnswerYes, true
	case ChoiceSometimes:
		return domain.AnswerSometimes, true
	case ChoiceNo:
		return domain.AnswerNo, true
	}
	return "", false
}

// ParseChoice accepts an on-screen label or a backend answer value.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "YA", "YES":
		return ChoiceYes, nil
	case "KADANG-KADANG", "SOMETIMES":
		return ChoiceSometimes, nil
	case "TIDAK", "NO":
		return ChoiceNo, nil
	}
	return ChoiceNone, fmt.Errorf("screening: unknown choice %q", s)
}

// Answers maps question id to the selected choice.
type Answers map[int64]Choice
