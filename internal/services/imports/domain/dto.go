// Package domain defines the types and interfaces for the imports service
package domain

import "hearth/internal/core/household"

// PreviewInput is one ingestion run: either a pasted block of tabular text
// or an uploaded body with its declared content type. TargetFamilyID is an
// optional destination-household hint carried through untouched; the engine
// does not consume it
type PreviewInput struct {
	Text           string `json:"text,omitempty"            validate:"omitempty,max=2000000"`
	Content        []byte `json:"content,omitempty"`
	ContentType    string `json:"contentType,omitempty"     validate:"omitempty,max=255"`
	TargetFamilyID string `json:"targetFamilyId,omitempty"  validate:"omitempty,uuid4"`
}

// Stats summarizes one preview run for the review surface
type Stats struct {
	TotalPeople      int `json:"totalPeople"`
	TotalFamilies    int `json:"totalFamilies"`
	HighConfidence   int `json:"highConfidence"`
	MediumConfidence int `json:"mediumConfidence"`
	LowConfidence    int `json:"lowConfidence"`
}

// ReviewOutput is the engine's reviewable result: inferred households sorted
// low-confidence first, plus run stats. The reviewer may mutate members,
// merge or split households, and toggle reviewed/confirmed before commit;
// the engine does not validate those edits
type ReviewOutput struct {
	Families       []household.Candidate `json:"families"`
	Stats          Stats                 `json:"stats"`
	TargetFamilyID string                `json:"targetFamilyId,omitempty"`
}

// CommitInput carries reviewer-confirmed households back for persistence
type CommitInput struct {
	Families []household.Candidate `json:"families" validate:"required,min=1"`
}

// ImportedRef identifies one durably created record
type ImportedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ImportedSet lists everything a commit created
type ImportedSet struct {
	Families    []ImportedRef `json:"families"`
	Individuals []ImportedRef `json:"individuals"`
}

// CommitReceipt is the commit boundary's success payload
type CommitReceipt struct {
	Imported ImportedSet `json:"imported"`
}
