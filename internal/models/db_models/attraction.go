package db_models

type Attraction struct {
	BaseModel
	Name        string `gorm:"index"`
	Emirate     string `gorm:"index"`
	Price       float64
	Duration    string
	Description string
	ImageURL    string
	Category    string
}
