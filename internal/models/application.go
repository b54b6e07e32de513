package models

// Application links one job and one candidate. The composite unique index
// is the backstop for the duplicate check done before insert.
type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate" json:"jobId"`
	CandidateID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate" json:"candidateId"`
	Message     string            `json:"message,omitempty"`
	CVUrl       string            `gorm:"not null" json:"cvUrl"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`

	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Candidate *User `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
}
