package models

import "github.com/LLuCCKKyyyy/lifecompass/internal/constants"

// GratitudePerson is one person/reason pair inside a gratitude entry.
type GratitudePerson struct {
	Person string `json:"person"`
	Reason string `json:"reason"`
}

// GratitudeEntry is the reflection record for one calendar day. Date is the
// natural key: at most one entry exists per day.
type GratitudeEntry struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Entries     []string          `json:"entries"`
	GratefulFor []GratitudePerson `json:"gratefulFor"`
}

// EntryDraft carries the caller-supplied fields of a gratitude entry. Nil
// slices mean "leave the stored value alone"; empty non-nil slices overwrite.
type EntryDraft struct {
	Date        string
	Entries     []string
	GratefulFor []GratitudePerson
}

// Review is a periodic (weekly/monthly/yearly) self-review. Reviews are
// append-only; there is no uniqueness constraint on date or type.
type Review struct {
	ID              string               `json:"id"`
	Type            constants.ReviewType `json:"type"`
	Date            string               `json:"date"` // RFC3339 timestamp
	Accomplishments []string             `json:"accomplishments"`
	Gratitudes      []string             `json:"gratitudes"`
	Insights        []string             `json:"insights"`
}
