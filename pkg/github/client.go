package github

import (
	"encoding/json"
	"errors"

	"github.com/spf13/viper"
)

var ErrMissingGithubToken = errors.New("github token is missing")

// Client is the typed API façade. Every method performs its own
// synchronous exchange (or pagination chain) through the Transport;
// there is no shared mutable state, no caching, and no retrying, so a
// Client is safe for concurrent use whenever its Transport is.
type Client struct {
	transport Transport
}

type ClientOptions struct {
	// BaseURL overrides the API origin. Empty selects DefaultBaseURL.
	BaseURL string
	Token   string
}

func New(o *ClientOptions) *Client {
	return &Client{
		transport: NewTransport(o.BaseURL, o.Token),
	}
}

// NewWithTransport builds a Client on a caller-supplied Transport.
func NewWithTransport(t Transport) *Client {
	return &Client{transport: t}
}

// DefaultClient builds a Client from the loaded configuration.
func DefaultClient() (*Client, error) {
	token := viper.GetString("github.token")
	if token == "" {
		return nil, ErrMissingGithubToken
	}

	return New(&ClientOptions{
		BaseURL: viper.GetString("github.api_url"),
		Token:   token,
	}), nil
}

// decodeEntity unmarshals a 2xx body into out, converting any failure
// into a MalformedResponseError naming the entity. Unknown fields in
// the body are ignored.
func decodeEntity(entity string, body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		var malformed *MalformedResponseError
		if errors.As(err, &malformed) {
			if malformed.Entity == "" {
				malformed.Entity = entity
			}
			return malformed
		}

		return &MalformedResponseError{Entity: entity, Cause: err}
	}

	return nil
}

func (c *Client) get(path, entity string, out interface{}) error {
	r, err := c.transport.Get(path, nil)
	if err != nil {
		return err
	}
	if r.StatusCode >= 300 {
		return errorFromResponse("GET", path, r)
	}

	return decodeEntity(entity, r.Body, out)
}

// post marshals body, performs the call, and decodes the response into
// out when out is non-nil.
func (c *Client) post(path string, body interface{}, entity string, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return &ValidationError{Message: "unencodable request body: " + err.Error(), Cause: err}
	}

	r, err := c.transport.Post(path, data, nil)
	if err != nil {
		return err
	}
	if r.StatusCode >= 300 {
		return errorFromResponse("POST", path, r)
	}

	if out == nil {
		return nil
	}

	return decodeEntity(entity, r.Body, out)
}

func (c *Client) delete(path string) error {
	r, err := c.transport.Delete(path, nil)
	if err != nil {
		return err
	}
	if r.StatusCode >= 300 {
		return errorFromResponse("DELETE", path, r)
	}

	return nil
}

// listAll walks a plain JSON-array list endpoint to completion.
func listAll[T any](c *Client, entity, path string) ([]T, error) {
	return newPageIterator(c.transport, path, func(body []byte) ([]T, error) {
		page := []T{}
		if err := decodeEntity(entity, body, &page); err != nil {
			return nil, err
		}

		return page, nil
	}).GetAll()
}

// notFoundAsValidation converts a NOT_FOUND ApiError into a
// ValidationError with a caller-facing message, keeping the ApiError
// as the cause. Any other error passes through untouched.
func notFoundAsValidation(err error, message string) error {
	var apiErr *ApiError
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		return &ValidationError{Message: message, Cause: apiErr}
	}

	return err
}
