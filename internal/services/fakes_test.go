package services

import (
	"context"
	"io"
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes. They implement just enough of the
// contracts for the service tests; errors can be injected per call.

type fakeUserRepo struct {
	users     []*models.User
	createErr error
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users = append(f.users, user)
	return nil
}

type fakeJobRepo struct {
	jobs []*models.Job
}

func (f *fakeJobRepo) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now()
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, repositories.ErrJobNotFound
}

func (f *fakeJobRepo) Save(job *models.Job) error {
	for i, j := range f.jobs {
		if j.ID == job.ID {
			f.jobs[i] = job
			return nil
		}
	}
	return repositories.ErrJobNotFound
}

func (f *fakeJobRepo) Delete(id string) error {
	for i, j := range f.jobs {
		if j.ID == id {
			f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
			return nil
		}
	}
	return repositories.ErrJobNotFound
}

func (f *fakeJobRepo) List(filter repositories.JobFilter) ([]models.Job, error) {
	return f.all(), nil
}

func (f *fakeJobRepo) ListByEmployer(employerID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range f.jobs {
		if j.EmployerID == employerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListAll() ([]models.Job, error) {
	return f.all(), nil
}

func (f *fakeJobRepo) all() []models.Job {
	out := make([]models.Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, *j)
	}
	return out
}

type fakeApplicationRepo struct {
	applications []*models.Application
	createErr    error
}

func (f *fakeApplicationRepo) Create(application *models.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, a := range f.applications {
		if a.JobID == application.JobID && a.CandidateID == application.CandidateID {
			return repositories.ErrDuplicateApplication
		}
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	f.applications = append(f.applications, application)
	return nil
}

func (f *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	for _, a := range f.applications {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	for _, a := range f.applications {
		if a.JobID == jobID && a.CandidateID == candidateID {
			return a, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) ListByCandidate(candidateID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range f.applications {
		if a.CandidateID == candidateID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByJob(jobID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range f.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) Save(application *models.Application) error {
	for i, a := range f.applications {
		if a.ID == application.ID {
			f.applications[i] = application
			return nil
		}
	}
	return repositories.ErrApplicationNotFound
}

func (f *fakeApplicationRepo) Delete(id string) error {
	for i, a := range f.applications {
		if a.ID == id {
			f.applications = append(f.applications[:i], f.applications[i+1:]...)
			return nil
		}
	}
	return repositories.ErrApplicationNotFound
}

type fakeCandidateProfileRepo struct {
	profiles map[string]*models.CandidateProfile // by user id
}

func newFakeCandidateProfileRepo() *fakeCandidateProfileRepo {
	return &fakeCandidateProfileRepo{profiles: map[string]*models.CandidateProfile{}}
}

func (f *fakeCandidateProfileRepo) FindByUserID(userID string) (*models.CandidateProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeCandidateProfileRepo) Upsert(profile *models.CandidateProfile) error {
	if existing, ok := f.profiles[profile.UserID]; ok {
		existing.Phone = profile.Phone
		existing.Location = profile.Location
		existing.Bio = profile.Bio
		existing.Skills = profile.Skills
		return nil
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeCandidateProfileRepo) Save(profile *models.CandidateProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	f.profiles[profile.UserID] = profile
	return nil
}

type fakeEmployerProfileRepo struct {
	profiles map[string]*models.EmployerProfile
}

func newFakeEmployerProfileRepo() *fakeEmployerProfileRepo {
	return &fakeEmployerProfileRepo{profiles: map[string]*models.EmployerProfile{}}
}

func (f *fakeEmployerProfileRepo) FindByUserID(userID string) (*models.EmployerProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeEmployerProfileRepo) Upsert(profile *models.EmployerProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	f.profiles[profile.UserID] = profile
	return nil
}

// fakeStorage records saved paths and serves URLs from memory.
type fakeStorage struct {
	saved   map[string][]byte
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string][]byte{}}
}

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.saved[path] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, io.EOF
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(f.saved, path)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.saved[path]
	return ok, nil
}

func (f *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	return int64(len(f.saved[path])), nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "https://files.test/" + path, nil
}

func (f *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "https://files.test/" + path + "?signed", nil
}

// fakeEmailProvider records what would have been sent.
type fakeEmailProvider struct {
	welcomes []string
	statuses []string
	sendErr  error
}

func (f *fakeEmailProvider) SendWelcome(to, name string, role models.UserRole) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.welcomes = append(f.welcomes, to)
	return nil
}

func (f *fakeEmailProvider) SendApplicationStatus(to, name, jobTitle string, status models.ApplicationStatus) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.statuses = append(f.statuses, to)
	return nil
}
