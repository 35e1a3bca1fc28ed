package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"mergington/internal/activities/service"
	"mergington/internal/activities/store"
	"mergington/internal/seeder"
)

type activityRecord struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

type HandlerSuite struct {
	suite.Suite
	router http.Handler
}

func (s *HandlerSuite) SetupTest() {
	registry := store.NewInMemory()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	s.Require().NoError(seeder.New(registry, logger).Seed(context.Background()))

	h := New(service.New(registry, logger), logger)
	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) activities() map[string]activityRecord {
	rec := s.do(http.MethodGet, "/activities")
	s.Require().Equal(http.StatusOK, rec.Code)

	var out map[string]activityRecord
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *HandlerSuite) detail(rec *httptest.ResponseRecorder) string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body["detail"]
}

func (s *HandlerSuite) message(rec *httptest.ResponseRecorder) string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func (s *HandlerSuite) TestListActivities() {
	rec := s.do(http.MethodGet, "/activities")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))

	activities := s.activities()
	s.Len(activities, 9)

	chess, ok := activities["Chess Club"]
	s.Require().True(ok)
	s.Equal(12, chess.MaxParticipants)
	s.Equal([]string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
	s.NotEmpty(chess.Description)
	s.NotEmpty(chess.Schedule)
}

func (s *HandlerSuite) TestListActivities_ObjectKeysFollowSeedOrder() {
	rec := s.do(http.MethodGet, "/activities")
	body := rec.Body.String()

	s.Less(strings.Index(body, `"Chess Club"`), strings.Index(body, `"Programming Class"`))
	s.Less(strings.Index(body, `"Programming Class"`), strings.Index(body, `"Math Olympiad"`))
}

func (s *HandlerSuite) TestSignup_NewStudent() {
	rec := s.do(http.MethodPost, "/activities/Chess%20Club/signup?email=alice@mergington.edu")
	s.Require().Equal(http.StatusOK, rec.Code)

	message := s.message(rec)
	s.Contains(message, "alice@mergington.edu")
	s.Contains(message, "Chess Club")

	s.Contains(s.activities()["Chess Club"].Participants, "alice@mergington.edu")
}

func (s *HandlerSuite) TestSignup_PlusEncodedActivityName() {
	rec := s.do(http.MethodPost, "/activities/Track+and+Field/signup?email=bob@mergington.edu")
	s.Require().Equal(http.StatusOK, rec.Code)

	s.Contains(s.activities()["Track and Field"].Participants, "bob@mergington.edu")
}

func (s *HandlerSuite) TestSignup_NonexistentActivity() {
	rec := s.do(http.MethodPost, "/activities/Nonexistent%20Club/signup?email=alice@mergington.edu")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Activity not found", s.detail(rec))
}

func (s *HandlerSuite) TestSignup_AlreadyInAnotherActivity() {
	rec := s.do(http.MethodPost, "/activities/Chess%20Club/signup?email=alice@mergington.edu")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/activities/Programming%20Class/signup?email=alice@mergington.edu")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.detail(rec), "already signed up")
}

func (s *HandlerSuite) TestSignup_SameActivityTwice() {
	rec := s.do(http.MethodPost, "/activities/Chess%20Club/signup?email=alice@mergington.edu")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/activities/Chess%20Club/signup?email=alice@mergington.edu")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestSignup_MissingEmail() {
	rec := s.do(http.MethodPost, "/activities/Chess%20Club/signup")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.detail(rec), "email")
}

func (s *HandlerSuite) TestSignup_EncodedEmail() {
	rec := s.do(http.MethodPost, "/activities/Chess%20Club/signup?email=test.user%2Bspecial@mergington.edu")
	s.Require().Equal(http.StatusOK, rec.Code)

	s.Contains(s.activities()["Chess Club"].Participants, "test.user+special@mergington.edu")
}

func (s *HandlerSuite) TestUnregister_ExistingParticipant() {
	rec := s.do(http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	s.Require().Equal(http.StatusOK, rec.Code)

	message := s.message(rec)
	s.Contains(message, "Unregistered")
	s.Contains(message, "michael@mergington.edu")

	s.NotContains(s.activities()["Chess Club"].Participants, "michael@mergington.edu")
}

func (s *HandlerSuite) TestUnregister_NonexistentActivity() {
	rec := s.do(http.MethodDelete, "/activities/Nonexistent%20Club/unregister?email=alice@mergington.edu")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Activity not found", s.detail(rec))
}

func (s *HandlerSuite) TestUnregister_NonParticipant() {
	rec := s.do(http.MethodDelete, "/activities/Chess%20Club/unregister?email=notregistered@mergington.edu")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.detail(rec), "not registered")
}

func (s *HandlerSuite) TestUnregister_MissingEmail() {
	rec := s.do(http.MethodDelete, "/activities/Chess%20Club/unregister")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestSignupAndUnregisterFlow() {
	email := "testuser@mergington.edu"

	rec := s.do(http.MethodPost, "/activities/Chess%20Club/signup?email="+email)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(s.activities()["Chess Club"].Participants, email)

	rec = s.do(http.MethodDelete, "/activities/Chess%20Club/unregister?email="+email)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotContains(s.activities()["Chess Club"].Participants, email)
}
