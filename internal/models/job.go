package models

type Job struct {
	BaseModel
	EmployerID  string  `gorm:"type:uuid;not null;index" json:"employerId"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"not null" json:"description"`
	Location    string  `gorm:"not null" json:"location"`
	JobType     JobType `gorm:"type:varchar(20);not null" json:"jobType"`
	SalaryRange string  `json:"salaryRange,omitempty"`

	Employer *User `gorm:"foreignKey:EmployerID" json:"-"`
}
