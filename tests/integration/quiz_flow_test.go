package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"kazvocab/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 30000)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBody
}

// TestAnonymousQuizFlow walks a full session: start, answer every question,
// complete. Requires the seed vocabulary to be loaded.
func TestAnonymousQuizFlow(t *testing.T) {
	requireIntegration(t)

	status, body := doJSON(t, "POST", "/api/quiz/start", dto.StartQuizRequest{Count: 4})
	require.Equal(t, fiber.StatusOK, status, "start failed: %s", string(body))

	var started dto.StartQuizResponse
	require.NoError(t, json.Unmarshal(body, &started))
	require.NotEmpty(t, started.SessionID)
	require.Len(t, started.Questions, 4)
	assert.Equal(t, "random", started.Tier, "anonymous sessions draw from the random tier")

	for _, q := range started.Questions {
		require.Len(t, q.Options, 4)

		status, body = doJSON(t, "POST", "/api/quiz/answer", dto.SubmitAnswerRequest{
			SessionID:     started.SessionID,
			QuestionID:    q.ID,
			SelectedIndex: 0,
		})
		require.Equal(t, fiber.StatusOK, status, "answer failed: %s", string(body))

		var answered dto.SubmitAnswerResponse
		require.NoError(t, json.Unmarshal(body, &answered))
		assert.Equal(t, q.ID, answered.QuestionID)
		assert.GreaterOrEqual(t, answered.CorrectIndex, 0)
		assert.Less(t, answered.CorrectIndex, 4)
		assert.NotEmpty(t, answered.CorrectAnswer)
	}

	status, body = doJSON(t, "POST", "/api/quiz/complete", dto.CompleteQuizRequest{SessionID: started.SessionID})
	require.Equal(t, fiber.StatusOK, status, "complete failed: %s", string(body))

	var summary dto.CompleteQuizResponse
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, started.SessionID, summary.SessionID)
	assert.Equal(t, 4, summary.Total)

	// The session is gone once completed.
	status, _ = doJSON(t, "POST", "/api/quiz/complete", dto.CompleteQuizRequest{SessionID: started.SessionID})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDuplicateAnswerRejected(t *testing.T) {
	requireIntegration(t)

	status, body := doJSON(t, "POST", "/api/quiz/start", dto.StartQuizRequest{Count: 4})
	require.Equal(t, fiber.StatusOK, status)

	var started dto.StartQuizResponse
	require.NoError(t, json.Unmarshal(body, &started))

	answer := dto.SubmitAnswerRequest{
		SessionID:     started.SessionID,
		QuestionID:    started.Questions[0].ID,
		SelectedIndex: 1,
	}
	status, _ = doJSON(t, "POST", "/api/quiz/answer", answer)
	require.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, "POST", "/api/quiz/answer", answer)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, string(body), "DUPLICATE_ANSWER")
}

func TestListWordsReturnsSeededVocabulary(t *testing.T) {
	requireIntegration(t)

	status, body := doJSON(t, "GET", "/api/words?limit=10", nil)
	require.Equal(t, fiber.StatusOK, status)

	var listResp dto.WordListResponse
	require.NoError(t, json.Unmarshal(body, &listResp))
	assert.NotEmpty(t, listResp.Words)
	assert.LessOrEqual(t, len(listResp.Words), 10)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	requireIntegration(t)

	status, _ := doJSON(t, "GET", "/api/users/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
