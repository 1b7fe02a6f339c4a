package db_models

import "github.com/lib/pq"

// Submission is one submitted preferences form. It is the single source of
// truth for re-generation; generation never mutates it.
type Submission struct {
	BaseModel
	Adults           int
	Kids             int
	Infants          int
	Nights           int
	Emirates         pq.StringArray `gorm:"type:text[]"`
	Month            string
	Budget           string
	DepartureCountry string

	ContactName  string
	ContactEmail string
	ContactPhone string
}
