package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helperbee_backend/internal/models"
	"helperbee_backend/test/helpers"
)

type jobEnvelope struct {
	Job models.Job `json:"job"`
}

func createJob(t *testing.T, ts *helpers.TestServer, token, title string) models.Job {
	t.Helper()

	var resp jobEnvelope
	status := ts.Do(t, http.MethodPost, "/api/v1/jobs", token, map[string]interface{}{
		"title":       title,
		"description": "Need help moving furniture this weekend",
		"category":    "moving",
		"location":    "Pune",
		"budgetMin":   1000,
		"budgetMax":   1500,
	}, &resp)
	require.Equal(t, http.StatusCreated, status)
	return resp.Job
}

func TestCreateJob(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, token := ts.CreateHirer(t, "hirer-job-1")

	job := createJob(t, ts, token, "Move a sofa")
	assert.Equal(t, "Move a sofa", job.Title)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, "hirer-job-1", job.HirerID)
	assert.Nil(t, job.WorkerID)
	assert.Equal(t, models.JobTypeOneTime, job.JobType)
	assert.Equal(t, models.ExperienceEntry, job.ExperienceLevel)
}

func TestUpdateJobStatusEscapeHatch(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, token := ts.CreateHirer(t, "hirer-job-12")
	job := createJob(t, ts, token, "Manual status")

	// Owners can set status directly, outside the accept/complete flow.
	var resp jobEnvelope
	status := ts.Do(t, http.MethodPatch, "/api/v1/jobs/"+job.ID.String(), token, map[string]interface{}{
		"status": "in_progress",
	}, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.JobStatusInProgress, resp.Job.Status)
}

func TestCreateJobRequiresHirer(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, workerToken := ts.CreateWorker(t, "worker-job-1")

	status := ts.Do(t, http.MethodPost, "/api/v1/jobs", workerToken, map[string]interface{}{
		"title":       "Should fail",
		"description": "Workers cannot post jobs at all",
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestCreateJobRequiresVerifiedAccount(t *testing.T) {
	ts := helpers.GetTestServer(t)

	user := &models.User{
		ID:    "hirer-unverified",
		Email: "unverified@example.com",
		Name:  "Unverified",
		Role:  models.RoleHirer,
	}
	require.NoError(t, ts.DB.Create(user).Error)
	token, err := ts.Verifier.Issue(user.ID, user.Email)
	require.NoError(t, err)

	status := ts.Do(t, http.MethodPost, "/api/v1/jobs", token, map[string]interface{}{
		"title":       "Should fail",
		"description": "Unverified accounts cannot post",
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestListJobsPublic(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, token := ts.CreateHirer(t, "hirer-job-2")

	createJob(t, ts, token, "First job")
	createJob(t, ts, token, "Second job")

	var resp struct {
		Jobs []models.Job `json:"jobs"`
	}
	status := ts.Do(t, http.MethodGet, "/api/v1/jobs", "", nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Jobs, 2)
}

func TestListJobsFilterByLocation(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, token := ts.CreateHirer(t, "hirer-job-3")

	createJob(t, ts, token, "Pune job")

	var resp struct {
		Jobs []models.Job `json:"jobs"`
	}
	status := ts.Do(t, http.MethodGet, "/api/v1/jobs?location=Mumbai", "", nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, resp.Jobs)

	status = ts.Do(t, http.MethodGet, "/api/v1/jobs?location=Pune", "", nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Jobs, 1)
}

func TestUpdateJobPartial(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, token := ts.CreateHirer(t, "hirer-job-4")
	job := createJob(t, ts, token, "Original title")

	var resp jobEnvelope
	status := ts.Do(t, http.MethodPatch, "/api/v1/jobs/"+job.ID.String(), token, map[string]interface{}{
		"title": "Updated title",
	}, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Updated title", resp.Job.Title)
	// Untouched fields survive a partial update.
	assert.Equal(t, job.Description, resp.Job.Description)
}

func TestUpdateJobOwnerOnly(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, ownerToken := ts.CreateHirer(t, "hirer-job-5")
	_, otherToken := ts.CreateHirer(t, "hirer-job-6")
	job := createJob(t, ts, ownerToken, "Owned job")

	status := ts.Do(t, http.MethodPatch, "/api/v1/jobs/"+job.ID.String(), otherToken, map[string]interface{}{
		"title": "Hijacked title",
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestDeleteJob(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, token := ts.CreateHirer(t, "hirer-job-7")
	_, workerToken := ts.CreateWorker(t, "worker-job-7")
	job := createJob(t, ts, token, "To be deleted")
	app := applyToJob(t, ts, workerToken, job.ID.String())

	status := ts.Do(t, http.MethodDelete, "/api/v1/jobs/"+job.ID.String(), token, nil, nil)
	require.Equal(t, http.StatusNoContent, status)

	status = ts.Do(t, http.MethodGet, "/api/v1/jobs/"+job.ID.String(), "", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// No cascade: the application survives as an orphan.
	var orphan models.Application
	assert.NoError(t, ts.DB.First(&orphan, "id = ?", app.ID).Error)
}

func TestCompletionHandshake(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-job-8")
	_, workerToken := ts.CreateWorker(t, "worker-job-8")
	job := createJob(t, ts, hirerToken, "Handshake job")

	// Worker cannot complete an open job.
	var applyResp struct {
		Application models.Application `json:"application"`
	}
	status := ts.Do(t, http.MethodPost, "/api/v1/jobs/"+job.ID.String()+"/applications", workerToken, map[string]string{
		"message": "I can do this",
	}, &applyResp)
	require.Equal(t, http.StatusCreated, status)

	status = ts.Do(t, http.MethodPost, "/api/v1/applications/"+applyResp.Application.ID.String()+"/accept", hirerToken, nil, nil)
	require.Equal(t, http.StatusOK, status)

	var resp jobEnvelope
	status = ts.Do(t, http.MethodPost, "/api/v1/jobs/"+job.ID.String()+"/worker-complete", workerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, resp.Job.WorkerCompletedAt)
	assert.Equal(t, models.JobStatusInProgress, resp.Job.Status)

	status = ts.Do(t, http.MethodPost, "/api/v1/jobs/"+job.ID.String()+"/complete", hirerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.JobStatusCompleted, resp.Job.Status)
	assert.NotNil(t, resp.Job.CompletedAt)

	// Completing again is idempotent.
	status = ts.Do(t, http.MethodPost, "/api/v1/jobs/"+job.ID.String()+"/complete", hirerToken, nil, &resp)
	assert.Equal(t, http.StatusOK, status)
}

func TestCompleteOpenJob(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-job-13")
	job := createJob(t, ts, hirerToken, "Never assigned")

	// A hirer can close a job that never got a worker.
	var resp jobEnvelope
	status := ts.Do(t, http.MethodPost, "/api/v1/jobs/"+job.ID.String()+"/complete", hirerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.JobStatusCompleted, resp.Job.Status)
	assert.NotNil(t, resp.Job.CompletedAt)
	assert.Nil(t, resp.Job.WorkerID)
}

func TestWorkerCompleteRequiresAssignment(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-job-9")
	_, strangerToken := ts.CreateWorker(t, "worker-job-9")
	job := createJob(t, ts, hirerToken, "Unassigned job")

	status := ts.Do(t, http.MethodPost, "/api/v1/jobs/"+job.ID.String()+"/worker-complete", strangerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestListMyJobs(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, token := ts.CreateHirer(t, "hirer-job-10")
	_, otherToken := ts.CreateHirer(t, "hirer-job-11")

	createJob(t, ts, token, "Mine")
	createJob(t, ts, otherToken, "Not mine")

	var resp struct {
		Jobs []models.Job `json:"jobs"`
	}
	status := ts.Do(t, http.MethodGet, "/api/v1/jobs/my", token, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Mine", resp.Jobs[0].Title)
}
