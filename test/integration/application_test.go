package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helperbee_backend/internal/models"
	"helperbee_backend/test/helpers"
)

type applicationEnvelope struct {
	Application models.Application `json:"application"`
}

func applyToJob(t *testing.T, ts *helpers.TestServer, workerToken, jobID string) models.Application {
	t.Helper()

	var resp applicationEnvelope
	status := ts.Do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/applications", workerToken, map[string]string{
		"message": "I am available",
	}, &resp)
	require.Equal(t, http.StatusCreated, status)
	return resp.Application
}

func TestApply(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-app-1")
	_, workerToken := ts.CreateWorker(t, "worker-app-1")
	job := createJob(t, ts, hirerToken, "Apply target")

	app := applyToJob(t, ts, workerToken, job.ID.String())
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, "worker-app-1", app.WorkerID)
}

func TestApplyRequiresWorker(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-app-2")
	job := createJob(t, ts, hirerToken, "Hirer cannot apply")

	status := ts.Do(t, http.MethodPost, "/api/v1/jobs/"+job.ID.String()+"/applications", hirerToken, map[string]string{
		"message": "hire me",
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestApplyToClosedJob(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-app-3")
	_, worker1Token := ts.CreateWorker(t, "worker-app-3a")
	_, worker2Token := ts.CreateWorker(t, "worker-app-3b")
	job := createJob(t, ts, hirerToken, "Soon closed")

	app := applyToJob(t, ts, worker1Token, job.ID.String())
	status := ts.Do(t, http.MethodPost, "/api/v1/applications/"+app.ID.String()+"/accept", hirerToken, nil, nil)
	require.Equal(t, http.StatusOK, status)

	// The job is now in progress, further applications are rejected.
	status = ts.Do(t, http.MethodPost, "/api/v1/jobs/"+job.ID.String()+"/applications", worker2Token, map[string]string{
		"message": "too late",
	}, nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestListApplicationsOwnerOnly(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-app-4")
	_, otherToken := ts.CreateHirer(t, "hirer-app-5")
	_, workerToken := ts.CreateWorker(t, "worker-app-4")
	job := createJob(t, ts, hirerToken, "List apps")

	applyToJob(t, ts, workerToken, job.ID.String())

	var resp struct {
		Applications []models.Application `json:"applications"`
	}
	status := ts.Do(t, http.MethodGet, "/api/v1/jobs/"+job.ID.String()+"/applications", hirerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Applications, 1)
	// The worker profile rides along for display.
	require.NotNil(t, resp.Applications[0].Worker)
	assert.Equal(t, "worker-app-4", resp.Applications[0].Worker.ID)

	status = ts.Do(t, http.MethodGet, "/api/v1/jobs/"+job.ID.String()+"/applications", otherToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAcceptApplication(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-app-6")
	_, winnerToken := ts.CreateWorker(t, "worker-app-6a")
	_, loserToken := ts.CreateWorker(t, "worker-app-6b")
	job := createJob(t, ts, hirerToken, "Accept flow")

	winner := applyToJob(t, ts, winnerToken, job.ID.String())
	loser := applyToJob(t, ts, loserToken, job.ID.String())

	var resp struct {
		Application    models.Application `json:"application"`
		ConversationID string             `json:"conversationId"`
	}
	status := ts.Do(t, http.MethodPost, "/api/v1/applications/"+winner.ID.String()+"/accept", hirerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.ApplicationStatusAccepted, resp.Application.Status)
	assert.NotEmpty(t, resp.ConversationID)

	// The job moved to in_progress with the winner assigned.
	var jobResp jobEnvelope
	status = ts.Do(t, http.MethodGet, "/api/v1/jobs/"+job.ID.String(), "", nil, &jobResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.JobStatusInProgress, jobResp.Job.Status)
	require.NotNil(t, jobResp.Job.WorkerID)
	assert.Equal(t, "worker-app-6a", *jobResp.Job.WorkerID)

	// The competing application was mass-rejected.
	var rejected models.Application
	require.NoError(t, ts.DB.First(&rejected, "id = ?", loser.ID).Error)
	assert.Equal(t, models.ApplicationStatusRejected, rejected.Status)
}

func TestAcceptTwiceFails(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-app-7")
	_, worker1Token := ts.CreateWorker(t, "worker-app-7a")
	_, worker2Token := ts.CreateWorker(t, "worker-app-7b")
	job := createJob(t, ts, hirerToken, "Single winner")

	app1 := applyToJob(t, ts, worker1Token, job.ID.String())
	app2 := applyToJob(t, ts, worker2Token, job.ID.String())

	status := ts.Do(t, http.MethodPost, "/api/v1/applications/"+app1.ID.String()+"/accept", hirerToken, nil, nil)
	require.Equal(t, http.StatusOK, status)

	status = ts.Do(t, http.MethodPost, "/api/v1/applications/"+app2.ID.String()+"/accept", hirerToken, nil, nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestAcceptOwnerOnly(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-app-8")
	_, otherToken := ts.CreateHirer(t, "hirer-app-9")
	_, workerToken := ts.CreateWorker(t, "worker-app-8")
	job := createJob(t, ts, hirerToken, "Owner accepts")

	app := applyToJob(t, ts, workerToken, job.ID.String())

	status := ts.Do(t, http.MethodPost, "/api/v1/applications/"+app.ID.String()+"/accept", otherToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestArbitrationRequiresVerifiedHirer(t *testing.T) {
	ts := helpers.GetTestServer(t)
	hirer, hirerToken := ts.CreateHirer(t, "hirer-app-11")
	_, workerToken := ts.CreateWorker(t, "worker-app-11")
	job := createJob(t, ts, hirerToken, "Verification lapses")
	app := applyToJob(t, ts, workerToken, job.ID.String())

	// Re-registering resets verification; a stale token must not get through.
	require.NoError(t, ts.DB.Model(&models.User{}).
		Where("id = ?", hirer.ID).
		Update("is_verified", false).Error)

	status := ts.Do(t, http.MethodPost, "/api/v1/applications/"+app.ID.String()+"/accept", hirerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status = ts.Do(t, http.MethodPost, "/api/v1/applications/"+app.ID.String()+"/reject", hirerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status = ts.Do(t, http.MethodGet, "/api/v1/jobs/"+job.ID.String()+"/applications", hirerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRejectApplication(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, hirerToken := ts.CreateHirer(t, "hirer-app-10")
	_, workerToken := ts.CreateWorker(t, "worker-app-10")
	job := createJob(t, ts, hirerToken, "Reject flow")

	app := applyToJob(t, ts, workerToken, job.ID.String())

	var resp applicationEnvelope
	status := ts.Do(t, http.MethodPost, "/api/v1/applications/"+app.ID.String()+"/reject", hirerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.ApplicationStatusRejected, resp.Application.Status)

	// The job stays open after a reject.
	var jobResp jobEnvelope
	status = ts.Do(t, http.MethodGet, "/api/v1/jobs/"+job.ID.String(), "", nil, &jobResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.JobStatusOpen, jobResp.Job.Status)
}
