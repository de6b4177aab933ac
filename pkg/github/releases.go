package github

import "fmt"

// CreateRelease publishes a release for an existing tag, or creates
// the tag from the request's target commitish.
func (c *Client) CreateRelease(project string, req *CreateReleaseRequest) (*Release, error) {
	if req.TagName == "" {
		return nil, &ValidationError{Message: "release tag name is required"}
	}

	var release Release
	path := fmt.Sprintf("/repos/%s/releases", project)
	if err := c.post(path, req, "release", &release); err != nil {
		return nil, err
	}

	return &release, nil
}
