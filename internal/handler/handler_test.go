package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"asq/internal/auth"
	"asq/internal/config"
	"asq/internal/handler"
	"asq/internal/repository/repositorytest"
	"asq/internal/router"
	"asq/internal/service"
)

type testServer struct {
	t *testing.T
	e *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := repositorytest.NewStore(t)
	hasher, err := auth.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	log, _ := test.NewNullLogger()

	e := echo.New()
	router.Register(e, &config.Config{}, log,
		handler.NewPresenterHandler(service.NewAuthService(store, hasher, log)),
		handler.NewPresentationHandler(service.NewPresentationService(store, log)),
		handler.NewQuestionHandler(service.NewQuestionService(store, log)),
	)
	return &testServer{t: t, e: e}
}

// raw sends body verbatim and decodes the JSON response.
func (s *testServer) raw(method, path, body string) (int, map[string]interface{}) {
	s.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var out map[string]interface{}
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func (s *testServer) send(method, path string, body interface{}) (int, map[string]interface{}) {
	s.t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(s.t, err)
	return s.raw(method, path, string(encoded))
}

func (s *testServer) register(email, password string) string {
	s.t.Helper()
	code, out := s.send(http.MethodPost, "/presenters/register", map[string]string{
		"emailAddress": email,
		"password":     password,
	})
	require.Equal(s.t, http.StatusOK, code, out)
	token, ok := out["sessionToken"].(string)
	require.True(s.t, ok)
	return token
}

func TestEndToEnd_RegisterAskNod(t *testing.T) {
	s := newTestServer(t)

	token := s.register("a@b.com", "pw")
	assert.NotEmpty(t, token)

	code, out := s.send(http.MethodPost, "/questions/ask", map[string]string{
		"presentation": "P1",
		"question":     "Why?",
	})
	require.Equal(t, http.StatusOK, code, out)
	assert.Nil(t, out["error"])
	question := out["question"].(map[string]interface{})
	assert.Equal(t, "P1", question["presentation"])
	assert.Equal(t, "Why?", question["text"])
	assert.Equal(t, float64(0), question["nods"])
	assert.Equal(t, false, question["answered"])
	assert.NotContains(t, question, "version")

	code, out = s.send(http.MethodPut, "/questions/nod", map[string]string{"question": question["id"].(string)})
	require.Equal(t, http.StatusOK, code, out)
	assert.Equal(t, float64(1), out["question"].(map[string]interface{})["nods"])

	code, out = s.raw(http.MethodGet, "/questions?presentation=P1", "")
	require.Equal(t, http.StatusOK, code, out)
	questions := out["questions"].([]interface{})
	require.Len(t, questions, 1)
	assert.Equal(t, float64(1), questions[0].(map[string]interface{})["nods"])
}

func TestRegister_Failures(t *testing.T) {
	s := newTestServer(t)
	s.register("a@b.com", "pw")

	for _, email := range []string{"a@b.com", "not-an-email"} {
		code, out := s.send(http.MethodPost, "/presenters/register", map[string]string{
			"emailAddress": email,
			"password":     "pw",
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Email address taken.", out["error"])
		assert.Nil(t, out["sessionToken"])
	}
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	registered := s.register("a@b.com", "pw")

	code, out := s.send(http.MethodPost, "/presenters/login", map[string]string{
		"emailAddress": "a@b.com",
		"password":     "pw",
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEqual(t, registered, out["sessionToken"])

	wrongCode, wrongPassword := s.send(http.MethodPost, "/presenters/login", map[string]string{
		"emailAddress": "a@b.com",
		"password":     "nope",
	})
	unknownCode, unknownEmail := s.send(http.MethodPost, "/presenters/login", map[string]string{
		"emailAddress": "x@y.com",
		"password":     "pw",
	})

	assert.Equal(t, http.StatusBadRequest, wrongCode)
	assert.Equal(t, wrongCode, unknownCode)
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, "Invalid credentials.", wrongPassword["error"])
	assert.Nil(t, wrongPassword["sessionToken"])
}

func TestMalformedRequests(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		payload string
	}{
		{name: "register with broken json", method: http.MethodPost, path: "/presenters/register", body: "{not json", payload: "sessionToken"},
		{name: "register without password", method: http.MethodPost, path: "/presenters/register", body: `{"emailAddress":"a@b.com"}`, payload: "sessionToken"},
		{name: "login with empty body", method: http.MethodPost, path: "/presenters/login", body: "", payload: "sessionToken"},
		{name: "presentations without presenter", method: http.MethodGet, path: "/presentations", payload: "presentations"},
		{name: "create presentation without title", method: http.MethodPost, path: "/presentations", body: `{"sessionToken":"t"}`, payload: "presentation"},
		{name: "questions without presentation", method: http.MethodGet, path: "/questions", payload: "questions"},
		{name: "ask without text", method: http.MethodPost, path: "/questions/ask", body: `{"presentation":"P1"}`, payload: "question"},
		{name: "nod with wrong type", method: http.MethodPut, path: "/questions/nod", body: `{"question":7}`, payload: "question"},
		{name: "answer without session", method: http.MethodPost, path: "/questions/answer", body: `{"question":"q","text":"t"}`, payload: "answer"},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := s.raw(tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "Missing or invalid request data.", out["error"])
			assert.Contains(t, out, tt.payload)
			assert.Nil(t, out[tt.payload])
		})
	}
}

func TestPresentations(t *testing.T) {
	s := newTestServer(t)

	code, out := s.raw(http.MethodGet, "/presentations?presenter=nobody@b.com", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Unknown presenter.", out["error"])
	assert.Nil(t, out["presentations"])

	token := s.register("a@b.com", "pw")

	code, out = s.raw(http.MethodGet, "/presentations?presenter=a@b.com", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []interface{}{}, out["presentations"])

	code, out = s.send(http.MethodPost, "/presentations", map[string]interface{}{
		"sessionToken":      "forged",
		"title":             "Talk",
		"isOpenToQuestions": true,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid session token.", out["error"])

	code, out = s.send(http.MethodPost, "/presentations", map[string]interface{}{
		"sessionToken":      token,
		"title":             "Talk",
		"isOpenToQuestions": true,
	})
	require.Equal(t, http.StatusOK, code, out)
	created := out["presentation"].(map[string]interface{})
	assert.Equal(t, "a@b.com", created["creator"])
	assert.Equal(t, true, created["isOpenToQuestions"])

	code, out = s.raw(http.MethodGet, "/presentations?presenter=a@b.com", "")
	require.Equal(t, http.StatusOK, code)
	listed := out["presentations"].([]interface{})
	require.Len(t, listed, 1)
	assert.Equal(t, created["id"], listed[0].(map[string]interface{})["id"])
}

func TestAnswer_OnlyOwnerAnswersOnce(t *testing.T) {
	s := newTestServer(t)
	owner := s.register("owner@b.com", "pw")
	stranger := s.register("stranger@b.com", "pw")

	_, out := s.send(http.MethodPost, "/presentations", map[string]interface{}{
		"sessionToken": owner,
		"title":        "Talk",
	})
	presentation := out["presentation"].(map[string]interface{})["id"].(string)

	_, out = s.send(http.MethodPost, "/questions/ask", map[string]string{
		"presentation": presentation,
		"question":     "Why?",
	})
	question := out["question"].(map[string]interface{})["id"].(string)

	answer := func(token string) (int, map[string]interface{}) {
		return s.send(http.MethodPost, "/questions/answer", map[string]string{
			"sessionToken": token,
			"question":     question,
			"text":         "Because.",
		})
	}

	code, out := answer(stranger)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "You are not allowed to do that!", out["error"])
	assert.Nil(t, out["answer"])

	_, out = s.raw(http.MethodGet, "/questions?presentation="+presentation, "")
	assert.Equal(t, false, out["questions"].([]interface{})[0].(map[string]interface{})["answered"])

	code, out = answer(owner)
	require.Equal(t, http.StatusOK, code, out)
	assert.Equal(t, "owner@b.com", out["answer"].(map[string]interface{})["author"])

	_, out = s.raw(http.MethodGet, "/questions?presentation="+presentation, "")
	assert.Equal(t, true, out["questions"].([]interface{})[0].(map[string]interface{})["answered"])

	code, out = answer(owner)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Question already answered.", out["error"])
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestOversizedBodyIsRejected(t *testing.T) {
	s := newTestServer(t)

	code, out := s.send(http.MethodPost, "/questions/ask", map[string]string{
		"presentation": "P1",
		"question":     strings.Repeat("x", 12<<20),
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing or invalid request data.", out["error"])
	assert.Nil(t, out["question"])

	code, out = s.raw(http.MethodGet, "/questions?presentation=P1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, out["questions"])
}

func TestUnroutedRequestsUseErrorEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		status  int
		message string
	}{
		{name: "unknown route", method: http.MethodGet, path: "/nope", status: http.StatusNotFound, message: "Not Found"},
		{name: "wrong method", method: http.MethodGet, path: "/questions/nod", status: http.StatusMethodNotAllowed, message: "Method Not Allowed"},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := s.raw(tt.method, tt.path, "")
			assert.Equal(t, tt.status, code)
			assert.Equal(t, map[string]interface{}{"error": tt.message}, out)
		})
	}
}
