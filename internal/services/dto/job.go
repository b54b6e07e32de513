package dto

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	JobType     string `json:"jobType" binding:"required" validate:"required,is-job-type"`
	SalaryRange string `json:"salaryRange"`
}

// UpdateJobRequest is a partial update; nil fields keep their value.
type UpdateJobRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	JobType     *string `json:"jobType,omitempty" validate:"omitempty,is-job-type"`
	SalaryRange *string `json:"salaryRange,omitempty"`
}

type JobListQuery struct {
	Keyword  string `form:"keyword"`
	Location string `form:"location"`
	JobType  string `form:"jobType" validate:"omitempty,is-job-type"`
}
