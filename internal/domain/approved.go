package domain

import "time"

// ApprovedDisclaimer is a reference disclaimer stored by the service.
// Submitted documents are compared against these per jurisdiction.
type ApprovedDisclaimer struct {
	ID              string       `json:"id,omitempty"`
	Category        string       `json:"category"`
	Jurisdiction    Jurisdiction `json:"jurisdiction"`
	FullText        string       `json:"full_text"`
	RequiredPhrases []string     `json:"required_phrases"`
	CreatedAt       *time.Time   `json:"created_at,omitempty"`
}
