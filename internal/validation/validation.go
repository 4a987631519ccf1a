package validation

import (
	"fmt"
	"strings"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
	"github.com/LLuCCKKyyyy/lifecompass/internal/utils"
)

// TaskTitle rejects empty task titles.
func TaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	return nil
}

// RockTitle rejects empty big rock titles.
func RockTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("big rock title cannot be empty")
	}
	return nil
}

// PersonName rejects empty person names.
func PersonName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("person name cannot be empty")
	}
	return nil
}

// QuadrantValue rejects quadrants outside 1-4.
func QuadrantValue(q constants.Quadrant) error {
	if q < constants.QuadrantUrgentImportant || q > constants.QuadrantNotUrgentNotImportant {
		return fmt.Errorf("quadrant must be between 1 and 4, got %d", q)
	}
	return nil
}

// ReviewTypeValue rejects unknown review cadences.
func ReviewTypeValue(t constants.ReviewType) error {
	switch t {
	case constants.ReviewWeekly, constants.ReviewMonthly, constants.ReviewYearly:
		return nil
	}
	return fmt.Errorf("review type must be weekly, monthly, or yearly, got %q", t)
}

// ReminderTime rejects malformed or out-of-range HH:MM strings.
func ReminderTime(timeStr string) error {
	_, _, err := utils.ParseClock(timeStr)
	return err
}
