package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helperbee_backend/internal/models"
	"helperbee_backend/test/helpers"
)

// setupConversation drives the accept flow and returns the conversation id
// plus tokens for both sides.
func setupConversation(t *testing.T, ts *helpers.TestServer, suffix string) (convID, jobID, hirerToken, workerToken string) {
	t.Helper()

	_, hirerToken = ts.CreateHirer(t, "hirer-msg-"+suffix)
	_, workerToken = ts.CreateWorker(t, "worker-msg-"+suffix)
	job := createJob(t, ts, hirerToken, "Chat job "+suffix)
	jobID = job.ID.String()

	app := applyToJob(t, ts, workerToken, jobID)

	var resp struct {
		ConversationID string `json:"conversationId"`
	}
	status := ts.Do(t, http.MethodPost, "/api/v1/applications/"+app.ID.String()+"/accept", hirerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp.ConversationID)
	return resp.ConversationID, jobID, hirerToken, workerToken
}

func TestSendAndListMessages(t *testing.T) {
	ts := helpers.GetTestServer(t)
	convID, _, hirerToken, workerToken := setupConversation(t, ts, "1")

	status := ts.Do(t, http.MethodPost, "/api/v1/conversations/"+convID+"/messages", hirerToken, map[string]string{
		"text": "When can you start?",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	status = ts.Do(t, http.MethodPost, "/api/v1/conversations/"+convID+"/messages", workerToken, map[string]string{
		"text": "Tomorrow morning",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var resp struct {
		Messages []models.Message `json:"messages"`
	}
	status = ts.Do(t, http.MethodGet, "/api/v1/conversations/"+convID+"/messages", workerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Messages, 2)
	// History is oldest first.
	assert.Equal(t, "When can you start?", resp.Messages[0].Text)
	assert.Equal(t, "Tomorrow morning", resp.Messages[1].Text)
}

func TestMessagesParticipantOnly(t *testing.T) {
	ts := helpers.GetTestServer(t)
	convID, _, _, _ := setupConversation(t, ts, "2")
	_, strangerToken := ts.CreateWorker(t, "worker-msg-stranger")

	status := ts.Do(t, http.MethodGet, "/api/v1/conversations/"+convID+"/messages", strangerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status = ts.Do(t, http.MethodPost, "/api/v1/conversations/"+convID+"/messages", strangerToken, map[string]string{
		"text": "let me in",
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestListConversations(t *testing.T) {
	ts := helpers.GetTestServer(t)
	_, _, hirerToken, workerToken := setupConversation(t, ts, "3")

	var resp struct {
		Conversations []models.Conversation `json:"conversations"`
	}
	status := ts.Do(t, http.MethodGet, "/api/v1/conversations", hirerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Conversations, 1)

	status = ts.Do(t, http.MethodGet, "/api/v1/conversations", workerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Conversations, 1)
}

func TestGetConversationByJob(t *testing.T) {
	ts := helpers.GetTestServer(t)
	convID, jobID, hirerToken, _ := setupConversation(t, ts, "4")
	_, strangerToken := ts.CreateHirer(t, "hirer-msg-stranger")

	var resp struct {
		Conversation models.Conversation `json:"conversation"`
	}
	status := ts.Do(t, http.MethodGet, "/api/v1/conversations/by-job/"+jobID, hirerToken, nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, convID, resp.Conversation.ID.String())

	status = ts.Do(t, http.MethodGet, "/api/v1/conversations/by-job/"+jobID, strangerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestEmptyMessageRejected(t *testing.T) {
	ts := helpers.GetTestServer(t)
	convID, _, hirerToken, _ := setupConversation(t, ts, "5")

	status := ts.Do(t, http.MethodPost, "/api/v1/conversations/"+convID+"/messages", hirerToken, map[string]string{
		"text": "",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
