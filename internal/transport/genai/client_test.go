package genai

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
		s.server = nil
	}
}

func (s *ClientTestSuite) newServer(status int, response *generateResponse) *httptest.Server {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/v1beta/models/test-model:generateContent", r.URL.Path)
		s.Equal("test-key", r.Header.Get("x-goog-api-key"))

		var request generateRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&request))
		s.Require().NotNil(request.SystemInstruction)
		s.Require().Len(request.Contents, 1)

		var body []byte
		if response != nil {
			w.Header().Set("Content-Type", "application/json")
			var bErr error
			body, bErr = json.Marshal(response)
			s.NoError(bErr)
		}
		w.WriteHeader(status)

		if body != nil {
			_, wErr := w.Write(body)
			s.NoError(wErr)
		}
	}))
	return s.server
}

func (s *ClientTestSuite) TestGenerateContent() {
	response := &generateResponse{
		Candidates: []candidate{{
			Content: content{Parts: []contentPart{{Text: "hello "}, {Text: "world"}}},
		}},
	}
	server := s.newServer(http.StatusOK, response)
	client := New(server.URL, "test-model", "test-key")

	text, err := client.GenerateContent(s.T().Context(), "system", "user question")

	s.Require().NoError(err)
	// Текст собирается из всех частей первого кандидата.
	s.Equal("hello world", text)
}

func (s *ClientTestSuite) TestGenerateContentStatusCode() {
	server := s.newServer(http.StatusInternalServerError, nil)
	client := New(server.URL, "test-model", "test-key")

	_, err := client.GenerateContent(s.T().Context(), "system", "user question")

	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusInternalServerError, statusErr.Code)
}

func (s *ClientTestSuite) TestGenerateContentNoCandidates() {
	server := s.newServer(http.StatusOK, &generateResponse{})
	client := New(server.URL, "test-model", "test-key")

	_, err := client.GenerateContent(s.T().Context(), "system", "user question")

	s.Require().True(errors.Is(err, ErrNoCandidates))
}
