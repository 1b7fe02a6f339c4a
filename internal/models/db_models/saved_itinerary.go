package db_models

import "github.com/google/uuid"

// SavedItinerary is the persisted "selected package" blob. The JSON payload is
// a serialization boundary only; all editing happens on the decoded structure
// and the row is overwritten after every mutation (last writer wins).
type SavedItinerary struct {
	BaseModel
	SubmissionID uuid.UUID `gorm:"uniqueIndex"`
	Method       string
	PackageJSON  string `gorm:"type:jsonb"`
}
