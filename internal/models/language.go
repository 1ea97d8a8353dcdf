package models

type Language struct {
	Code string `gorm:"primaryKey;size:10" json:"code"` // ISO 639-1 style code (e.g., 'th', 'en')
	Name string `gorm:"not null" json:"name"`           // Full name (e.g., 'Thai', 'English')
}

func (Language) TableName() string {
	return "languages"
}
