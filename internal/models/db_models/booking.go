package db_models

import "github.com/google/uuid"

type Booking struct {
	BaseModel
	SubmissionID uuid.UUID `gorm:"index"`
	PackageTitle string
	TotalCost    float64
	Status       string

	Submission Submission
}
