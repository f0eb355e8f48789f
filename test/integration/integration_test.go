package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/api"
	"secret-santa-service/internal/assigner"
	"secret-santa-service/internal/http/router"
	"secret-santa-service/internal/infrastructure/nower"
	"secret-santa-service/internal/infrastructure/randomizer"
	"secret-santa-service/internal/roster"
	"secret-santa-service/internal/service"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	root := filepath.Clean(filepath.Join(cwd, "..", ".."))
	spec, err := os.ReadFile(filepath.Join(root, "openapi.yml"))
	require.NoError(t, err)

	svc := service.New(assigner.New(randomizer.New()), nower.New())
	server := httptest.NewServer(router.New(svc, spec, 1<<20).Router())
	t.Cleanup(server.Close)
	return server
}

func rosterCSV(size int) string {
	var b strings.Builder
	b.WriteString("Employee_Name,Employee_EmailID\n")
	for i := 1; i <= size; i++ {
		fmt.Fprintf(&b, "Employee %d,employee%d@acme.com\n", i, i)
	}
	return b.String()
}

func TestHappyPath(t *testing.T) {
	if testing.Short() {
		t.Skip("пропуск интеграционного теста в режиме -short")
	}
	t.Parallel()
	server := newServer(t)

	resp := doRequest(t, server, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// 1. Проверка файла участников
	participants := rosterCSV(12)
	resp = doUpload(t, server, "/participants/validate", map[string]string{"participants": participants})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list api.ParticipantList
	decode(t, resp, &list)
	require.Equal(t, 12, list.Count)

	// 2. Первый раунд в CSV
	resp = doUpload(t, server, "/assignments/csv", map[string]string{"participants": participants})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Disposition"), "secret_santa_assignments_")
	firstRound := readAll(t, resp)
	prior, err := roster.ReadPriorPairings(strings.NewReader(firstRound))
	require.NoError(t, err)
	require.Len(t, prior, 12)

	// 3. Второй раунд с учётом первого
	resp = doUpload(t, server, "/assignments/csv", map[string]string{
		"participants":   participants,
		"prior_pairings": firstRound,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	secondRound, err := roster.ReadPriorPairings(strings.NewReader(readAll(t, resp)))
	require.NoError(t, err)
	require.Len(t, secondRound, 12)

	previous := make(map[string]string, len(prior))
	for _, p := range prior {
		previous[p.GiverID] = p.ReceiverID
	}
	receivers := make(map[string]struct{}, len(secondRound))
	for i, p := range secondRound {
		require.Equal(t, fmt.Sprintf("employee%d@acme.com", i+1), p.GiverID)
		require.NotEqual(t, p.GiverID, p.ReceiverID)
		require.NotEqual(t, previous[p.GiverID], p.ReceiverID)
		receivers[p.ReceiverID] = struct{}{}
	}
	require.Len(t, receivers, 12)

	// 4. JSON-розыгрыш
	resp = doRequest(t, server, http.MethodPost, "/assignments", api.DrawRequest{
		Participants: []api.Participant{
			{Name: "Alice", Email: "a@x"},
			{Name: "Bob", Email: "b@x"},
			{Name: "Carol", Email: "c@x"},
		},
		PriorPairings: []api.Pairing{{GiverName: "Alice", GiverEmail: "a@x", ReceiverName: "Bob", ReceiverEmail: "b@x"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]api.Assignment
	decode(t, resp, &created)
	assignment := created["assignment"]
	require.Len(t, assignment.Pairings, 3)
	require.Equal(t, "c@x", assignment.Pairings[0].ReceiverEmail)
	require.GreaterOrEqual(t, assignment.Attempts, 1)
	require.LessOrEqual(t, assignment.Attempts, assigner.MaxAttempts)

	resp = doRequest(t, server, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	metrics := readAll(t, resp)
	require.Contains(t, metrics, "secret_santa_draws_succeeded_total")
	require.Contains(t, metrics, "secret_santa_draw_attempts")
}

func TestInfeasibleAndInvalidInput(t *testing.T) {
	if testing.Short() {
		t.Skip("пропуск интеграционного теста в режиме -short")
	}
	t.Parallel()
	server := newServer(t)

	resp := doRequest(t, server, http.MethodPost, "/assignments", api.DrawRequest{
		Participants: []api.Participant{{Name: "Alice", Email: "a@x"}, {Name: "Bob", Email: "b@x"}},
		PriorPairings: []api.Pairing{
			{GiverName: "Alice", GiverEmail: "a@x", ReceiverName: "Bob", ReceiverEmail: "b@x"},
			{GiverName: "Bob", GiverEmail: "b@x", ReceiverName: "Alice", ReceiverEmail: "a@x"},
		},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, "ASSIGNMENT_INFEASIBLE", errorCode(t, resp))

	resp = doRequest(t, server, http.MethodPost, "/assignments", api.DrawRequest{
		Participants: []api.Participant{{Name: "Alice", Email: "a@x"}},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "NOT_ENOUGH_PARTICIPANTS", errorCode(t, resp))

	resp = doUpload(t, server, "/assignments/csv", map[string]string{
		"participants": "Employee_Name,Employee_EmailID\nAlice,a@x\nAlice Again,a@x\n",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "DUPLICATE_PARTICIPANT", errorCode(t, resp))

	resp = doUpload(t, server, "/assignments/csv", map[string]string{
		"participants": "Name,Email\nAlice,a@x\nBob,b@x\n",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_ERROR", errorCode(t, resp))
}

func doRequest(t *testing.T, server *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func doUpload(t *testing.T, server *httptest.Server, path string, files map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, content := range files {
		fw, err := mw.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = io.WriteString(fw, content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decode(t, resp, &body)
	return body.Error.Code
}
