package github

import (
	"errors"
	"fmt"
	"strings"
)

const refsPrefix = "refs/"

// Message text of the conflict the API answers with when listing
// references on a repository without any commits.
const emptyRepositoryMessage = "Git Repository is empty"

func validateRefName(ref string) error {
	if !strings.HasPrefix(ref, refsPrefix) {
		return &ValidationError{Message: fmt.Sprintf(
			`Ref must start with "refs/". Got: %s`, ref)}
	}

	return nil
}

// GetReferences lists every git reference of a repository. A
// repository without any commits yields an empty list, not an error.
func (c *Client) GetReferences(project string) ([]Ref, error) {
	path := fmt.Sprintf("/repos/%s/git/refs", project)
	refs, err := listAll[Ref](c, "ref list", path)
	if err != nil {
		var apiErr *ApiError
		if errors.As(err, &apiErr) &&
			apiErr.Code == ResponseCodeConflict &&
			strings.HasPrefix(apiErr.Message, emptyRepositoryMessage) {
			return []Ref{}, nil
		}

		return nil, err
	}

	return refs, nil
}

// GetReference fetches one git reference. ref must be fully qualified,
// starting with "refs/".
func (c *Client) GetReference(project, ref string) (*Ref, error) {
	if err := validateRefName(ref); err != nil {
		return nil, err
	}

	var result Ref
	path := fmt.Sprintf("/repos/%s/git/%s", project, ref)
	if err := c.get(path, "ref", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateReference points a git reference at a new sha and returns the
// updated reference.
func (c *Client) UpdateReference(project, ref string, req *UpdateReferenceRequest) (*Ref, error) {
	if err := validateRefName(ref); err != nil {
		return nil, err
	}
	if req.SHA == "" {
		return nil, &ValidationError{Message: "sha is required to update a reference"}
	}

	var result Ref
	path := fmt.Sprintf("/repos/%s/git/%s", project, ref)
	if err := c.post(path, req, "ref", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteReference removes a git reference. Any 2xx answer counts as
// success; the API uses 202 or 204 depending on deployment.
func (c *Client) DeleteReference(project, ref string) error {
	if err := validateRefName(ref); err != nil {
		return err
	}

	return c.delete(fmt.Sprintf("/repos/%s/git/%s", project, ref))
}
