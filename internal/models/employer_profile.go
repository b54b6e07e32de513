package models

type EmployerProfile struct {
	BaseModel
	UserID      string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	CompanyName string `gorm:"not null" json:"companyName"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}
