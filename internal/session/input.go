package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hospbook/internal/model"
	"hospbook/internal/reserve"
)

var (
	ErrNotANumber       = errors.New("answer is not a number")
	ErrChoiceOutOfRange = errors.New("choice out of range")
)

// ParseChoice interprets a 1-based menu answer and enforces [min, max]. The
// retry loop lives in the caller; this classifies a single attempt.
func ParseChoice(input string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", strings.TrimSpace(input), ErrNotANumber)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%d is not between %d and %d: %w", n, min, max, ErrChoiceOutOfRange)
	}
	return n, nil
}

// ParseDate parses a YYYY-MM-DD answer in today's location and rejects days
// before today's calendar day.
func ParseDate(input string, today time.Time) (time.Time, error) {
	date, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(input), today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("date must look like 2025-06-01: %w", err)
	}
	if date.Before(model.Midnight(today)) {
		return time.Time{}, fmt.Errorf("%s: %w", date.Format(model.DateLayout), reserve.ErrDateInPast)
	}
	return date, nil
}
