package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helperbee_backend/internal/models"
	"helperbee_backend/test/helpers"
)

func TestUpdateProfilePartial(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, token := ts.CreateWorker(t, "worker-user-1")

	var resp struct {
		User models.User `json:"user"`
	}
	status := ts.Do(t, http.MethodPatch, "/api/v1/users/me", token, map[string]interface{}{
		"city":   "Bengaluru",
		"about":  "Experienced mover and handyman",
		"skills": []string{"moving", "assembly"},
	}, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Bengaluru", resp.User.City)
	assert.Equal(t, []string{"moving", "assembly"}, []string(resp.User.Skills))
	// Fields absent from the request are untouched.
	assert.Equal(t, "Test worker-user-1", resp.User.Name)

	status = ts.Do(t, http.MethodPatch, "/api/v1/users/me", token, map[string]interface{}{
		"phone": "+911234567890",
	}, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "+911234567890", resp.User.Phone)
	assert.Equal(t, "Bengaluru", resp.User.City)
}

func TestGetUserPublic(t *testing.T) {
	ts := helpers.GetTestServer(t)
	ts.CreateWorker(t, "worker-user-2")

	var resp struct {
		User models.User `json:"user"`
	}
	status := ts.Do(t, http.MethodGet, "/api/v1/users/worker-user-2", "", nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "worker-user-2", resp.User.ID)

	status = ts.Do(t, http.MethodGet, "/api/v1/users/nope", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUpdateProfileValidation(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, token := ts.CreateWorker(t, "worker-user-3")

	status := ts.Do(t, http.MethodPatch, "/api/v1/users/me", token, map[string]interface{}{
		"name": "x",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
