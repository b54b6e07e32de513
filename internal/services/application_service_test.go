package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationTestEnv struct {
	service      ApplicationService
	applications *fakeApplicationRepo
	jobs         *fakeJobRepo
	profiles     *fakeCandidateProfileRepo
	users        *fakeUserRepo
	storage      *fakeStorage
	emails       *fakeEmailProvider
}

func newApplicationTestEnv() *applicationTestEnv {
	env := &applicationTestEnv{
		applications: &fakeApplicationRepo{},
		jobs:         &fakeJobRepo{},
		profiles:     newFakeCandidateProfileRepo(),
		users:        &fakeUserRepo{},
		storage:      newFakeStorage(),
		emails:       &fakeEmailProvider{},
	}
	env.service = NewApplicationService(
		env.applications,
		env.jobs,
		env.profiles,
		env.users,
		newCVUploader(env.storage),
		auth.NewPolicy("admin@example.com"),
		env.emails,
	)
	return env
}

func candidateIdentity(id string) *auth.Identity {
	return &auth.Identity{UserID: id, Email: id + "@example.com", Role: models.UserRoleCandidate}
}

func employerIdentity(id string) *auth.Identity {
	return &auth.Identity{UserID: id, Email: id + "@example.com", Role: models.UserRoleEmployer}
}

func (env *applicationTestEnv) addJob(employerID string) *models.Job {
	job := &models.Job{
		EmployerID: employerID,
		Title:      "Backend Intern",
		JobType:    models.JobTypeInternship,
	}
	_ = env.jobs.Create(job)
	return job
}

func (env *applicationTestEnv) addProfileWithCVs(userID string, cvs ...models.CVEntry) *models.CandidateProfile {
	profile := &models.CandidateProfile{UserID: userID}
	_ = profile.SetCVs(cvs)
	_ = env.profiles.Save(profile)
	return profile
}

func TestApplyJobNotFound(t *testing.T) {
	env := newApplicationTestEnv()

	_, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), "missing", &ApplyInput{})

	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestApplyUsesLatestStoredCV(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")
	env.addProfileWithCVs("cand-1",
		models.CVEntry{ID: "cv-old", URL: "https://files.test/cvs/old.pdf", UploadedAt: time.Now().Add(-48 * time.Hour)},
		models.CVEntry{ID: "cv-new", URL: "https://files.test/cvs/new.pdf", UploadedAt: time.Now()},
	)

	application, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID, &ApplyInput{Message: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "https://files.test/cvs/new.pdf", application.CVUrl)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.Equal(t, "hi", application.Message)
}

func TestApplySelectedCVWins(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")
	env.addProfileWithCVs("cand-1",
		models.CVEntry{ID: "cv-old", URL: "https://files.test/cvs/old.pdf", UploadedAt: time.Now().Add(-48 * time.Hour)},
		models.CVEntry{ID: "cv-new", URL: "https://files.test/cvs/new.pdf", UploadedAt: time.Now()},
	)

	application, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID,
		&ApplyInput{SelectedCVID: "cv-old"})

	require.NoError(t, err)
	assert.Equal(t, "https://files.test/cvs/old.pdf", application.CVUrl)
}

func TestApplyUnknownSelectedCV(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")
	env.addProfileWithCVs("cand-1",
		models.CVEntry{ID: "cv-1", URL: "https://files.test/cvs/1.pdf", UploadedAt: time.Now()},
	)

	_, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID,
		&ApplyInput{SelectedCVID: "someone-elses-cv"})

	assert.ErrorIs(t, err, apperrors.ErrUnknownCV)
}

func TestApplyUploadedFileOverridesStoredCVs(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")
	env.addProfileWithCVs("cand-1",
		models.CVEntry{ID: "cv-1", URL: "https://files.test/cvs/stored.pdf", UploadedAt: time.Now()},
	)

	application, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID, &ApplyInput{
		File: &UploadedFile{
			Reader:      strings.NewReader("%PDF-1.4"),
			FileName:    "fresh.pdf",
			ContentType: "application/pdf",
		},
	})

	require.NoError(t, err)
	assert.Contains(t, application.CVUrl, "cvs/cand-1/")
	assert.Contains(t, application.CVUrl, "fresh.pdf")
	assert.Len(t, env.storage.saved, 1)
}

func TestApplyWithoutAnyCV(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")

	_, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID, &ApplyInput{})

	assert.ErrorIs(t, err, apperrors.ErrCVRequired)
}

func TestApplyTwiceConflicts(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")
	env.addProfileWithCVs("cand-1",
		models.CVEntry{ID: "cv-1", URL: "https://files.test/cvs/1.pdf", UploadedAt: time.Now()},
	)

	_, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID, &ApplyInput{})
	require.NoError(t, err)

	_, err = env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID, &ApplyInput{})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestApplyDuplicateFromStoreBackstop(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")
	env.addProfileWithCVs("cand-1",
		models.CVEntry{ID: "cv-1", URL: "https://files.test/cvs/1.pdf", UploadedAt: time.Now()},
	)
	// simulate losing the check-then-insert race: the pre-check sees
	// nothing but the insert hits the unique index
	env.applications.createErr = repositories.ErrDuplicateApplication

	_, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID, &ApplyInput{})

	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestListForJobRequiresOwnership(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")

	_, err := env.service.ListForJob(employerIdentity("emp-2"), job.ID)

	assert.ErrorIs(t, err, apperrors.ErrJobForbidden)
}

func TestUpdateStatusNotifiesCandidate(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")
	env.users.users = append(env.users.users, &models.User{
		BaseModel: models.BaseModel{ID: "cand-1"},
		Email:     "cand-1@example.com",
		Name:      "Dana",
		Role:      models.UserRoleCandidate,
	})
	env.addProfileWithCVs("cand-1",
		models.CVEntry{ID: "cv-1", URL: "https://files.test/cvs/1.pdf", UploadedAt: time.Now()},
	)
	application, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID, &ApplyInput{})
	require.NoError(t, err)

	updated, err := env.service.UpdateStatus(employerIdentity("emp-1"), application.ID,
		&dto.UpdateApplicationStatusRequest{Status: "Shortlisted"})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusShortlisted, updated.Status)
	assert.Equal(t, []string{"cand-1@example.com"}, env.emails.statuses)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	env := newApplicationTestEnv()

	_, err := env.service.UpdateStatus(employerIdentity("emp-1"), "any",
		&dto.UpdateApplicationStatusRequest{Status: "Hired"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)
}

func TestUpdateStatusForbiddenForNonOwner(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")
	env.addProfileWithCVs("cand-1",
		models.CVEntry{ID: "cv-1", URL: "https://files.test/cvs/1.pdf", UploadedAt: time.Now()},
	)
	application, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID, &ApplyInput{})
	require.NoError(t, err)

	_, err = env.service.UpdateStatus(employerIdentity("emp-2"), application.ID,
		&dto.UpdateApplicationStatusRequest{Status: "Rejected"})

	assert.ErrorIs(t, err, apperrors.ErrJobForbidden)
}

func TestDeleteMineOnlyByOwner(t *testing.T) {
	env := newApplicationTestEnv()
	job := env.addJob("emp-1")
	env.addProfileWithCVs("cand-1",
		models.CVEntry{ID: "cv-1", URL: "https://files.test/cvs/1.pdf", UploadedAt: time.Now()},
	)
	application, err := env.service.Apply(context.Background(), candidateIdentity("cand-1"), job.ID, &ApplyInput{})
	require.NoError(t, err)

	err = env.service.DeleteMine(candidateIdentity("cand-2"), application.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	require.NoError(t, env.service.DeleteMine(candidateIdentity("cand-1"), application.ID))

	err = env.service.DeleteMine(candidateIdentity("cand-1"), application.ID)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
