package github

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var notFoundBody = []byte(`{"message": "Not Found", "documentation_url": "https://docs.example.com/rest"}`)

type trainedResponse struct {
	status  int
	headers map[string]string
	body    []byte
}

type trainedPost struct {
	validate func(t *testing.T, body []byte)
	response trainedResponse
	calls    int
}

// mockTransport answers only the exchanges it was trained for. An
// untrained GET or DELETE gets the service's stock 404 envelope; an
// untrained POST fails the test outright.
type mockTransport struct {
	t        *testing.T
	gets     map[string]trainedResponse
	posts    map[string]*trainedPost
	deletes  map[string]trainedResponse
	getCalls int
}

func newMockTransport(t *testing.T) *mockTransport {
	return &mockTransport{
		t:       t,
		gets:    map[string]trainedResponse{},
		posts:   map[string]*trainedPost{},
		deletes: map[string]trainedResponse{},
	}
}

func (m *mockTransport) trainGet(path string, body []byte) {
	m.trainGetStatus(path, 200, body, nil)
}

func (m *mockTransport) trainGetStatus(path string, status int, body []byte, headers map[string]string) {
	m.gets[path] = trainedResponse{status: status, headers: headers, body: body}
}

func (m *mockTransport) trainPost(path string, validate func(t *testing.T, body []byte), response []byte) *trainedPost {
	return m.trainPostStatus(path, validate, 200, response)
}

func (m *mockTransport) trainPostStatus(path string, validate func(t *testing.T, body []byte), status int, response []byte) *trainedPost {
	p := &trainedPost{
		validate: validate,
		response: trainedResponse{status: status, body: response},
	}
	m.posts[path] = p

	return p
}

func (m *mockTransport) trainDelete(path string, status int) {
	m.deletes[path] = trainedResponse{status: status}
}

// Pagination follows absolute next URLs; trained paths stay relative.
func normalizeURL(url string) string {
	return strings.TrimPrefix(url, DefaultBaseURL)
}

func (r trainedResponse) toResponse() *Response {
	h := http.Header{}
	for k, v := range r.headers {
		h.Set(k, v)
	}

	return &Response{StatusCode: r.status, Header: h, Body: r.body}
}

func (m *mockTransport) Get(url string, headers map[string]string) (*Response, error) {
	m.getCalls++

	trained, ok := m.gets[normalizeURL(url)]
	if !ok {
		return &Response{StatusCode: 404, Header: http.Header{}, Body: notFoundBody}, nil
	}

	return trained.toResponse(), nil
}

func (m *mockTransport) Post(url string, body []byte, headers map[string]string) (*Response, error) {
	trained, ok := m.posts[normalizeURL(url)]
	if !ok {
		m.t.Errorf("unexpected POST %s", url)
		return &Response{StatusCode: 404, Header: http.Header{}, Body: notFoundBody}, nil
	}

	trained.calls++
	if trained.validate != nil {
		trained.validate(m.t, body)
	}

	return trained.response.toResponse(), nil
}

func (m *mockTransport) Delete(url string, headers map[string]string) (*Response, error) {
	trained, ok := m.deletes[normalizeURL(url)]
	if !ok {
		return &Response{StatusCode: 404, Header: http.Header{}, Body: notFoundBody}, nil
	}

	return trained.toResponse(), nil
}

func newTestClient(t *testing.T) (*Client, *mockTransport) {
	transport := newMockTransport(t)

	return NewWithTransport(transport), transport
}

func getFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return data
}
