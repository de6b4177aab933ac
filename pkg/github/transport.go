package github

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// DefaultBaseURL is the API origin used when no other origin is configured.
const DefaultBaseURL = "https://api.github.com"

// Response is the result of a single raw HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs a single HTTP call against the API.
//
// URLs are either paths relative to the API origin or absolute URLs
// (pagination follows "next" links exactly as the server sent them).
// Implementations must be safe for concurrent use.
type Transport interface {
	Get(url string, headers map[string]string) (*Response, error)
	Post(url string, body []byte, headers map[string]string) (*Response, error)
	Delete(url string, headers map[string]string) (*Response, error)
}

type restyTransport struct {
	client  *resty.Client
	baseURL string
	token   string
}

// NewTransport returns a Transport that authenticates with the given
// bearer token. An empty baseURL selects DefaultBaseURL.
func NewTransport(baseURL, token string) Transport {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &restyTransport{
		client:  resty.New(),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
	}
}

func (t *restyTransport) resolve(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}

	return t.baseURL + url
}

func (t *restyTransport) request(headers map[string]string) *resty.Request {
	r := t.client.R().SetHeaders(headers)
	if t.token != "" {
		r.SetAuthToken(t.token)
	}

	return r
}

func (t *restyTransport) Get(url string, headers map[string]string) (*Response, error) {
	r, err := t.request(headers).Get(t.resolve(url))
	if err != nil {
		return nil, &TransportError{Cause: errors.Wrap(err, "GET "+url)}
	}

	return wrapResponse(r), nil
}

func (t *restyTransport) Post(url string, body []byte, headers map[string]string) (*Response, error) {
	r, err := t.request(headers).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(t.resolve(url))
	if err != nil {
		return nil, &TransportError{Cause: errors.Wrap(err, "POST "+url)}
	}

	return wrapResponse(r), nil
}

func (t *restyTransport) Delete(url string, headers map[string]string) (*Response, error) {
	r, err := t.request(headers).Delete(t.resolve(url))
	if err != nil {
		return nil, &TransportError{Cause: errors.Wrap(err, "DELETE "+url)}
	}

	return wrapResponse(r), nil
}

func wrapResponse(r *resty.Response) *Response {
	return &Response{
		StatusCode: r.StatusCode(),
		Header:     r.Header(),
		Body:       r.Body(),
	}
}
