package models

type UserRole string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleCandidate, UserRoleEmployer, UserRoleAdmin:
		return true
	}
	return false
}

type JobType string

const (
	JobTypeInternship JobType = "Internship"
	JobTypeFullTime   JobType = "Full-time"
)

func (t JobType) Valid() bool {
	return t == JobTypeInternship || t == JobTypeFullTime
}

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "Pending"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}
