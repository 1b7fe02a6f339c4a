package db_models

type Transport struct {
	BaseModel
	Name        string `gorm:"index"`
	CostPerDay  float64
	Description string
	ImageURL    string
}
