package db_models

type Hotel struct {
	BaseModel
	Name         string `gorm:"index"`
	Stars        int
	CostPerNight float64
	Description  string
	ImageURL     string
}
