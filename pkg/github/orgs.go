package github

import "fmt"

// GetAuthenticatedUser fetches the user the token belongs to.
func (c *Client) GetAuthenticatedUser() (*User, error) {
	var user User
	if err := c.get("/user", "user", &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserPermissionLevel resolves a collaborator's permission on a
// repository.
func (c *Client) GetUserPermissionLevel(project, username string) (*UserPermissionLevel, error) {
	var level UserPermissionLevel
	path := fmt.Sprintf("/repos/%s/collaborators/%s/permission", project, username)
	if err := c.get(path, "user permission level", &level); err != nil {
		return nil, err
	}

	return &level, nil
}

// GetOrganization fetches one organization.
func (c *Client) GetOrganization(org string) (*Organization, error) {
	var organization Organization
	path := fmt.Sprintf("/orgs/%s", org)
	if err := c.get(path, "organization", &organization); err != nil {
		return nil, err
	}

	return &organization, nil
}

type installationsPage struct {
	TotalCount    int64          `json:"total_count"`
	Installations []Installation `json:"installations"`
}

// GetInstallations lists the app installations of an organization.
func (c *Client) GetInstallations(org string) ([]Installation, error) {
	path := fmt.Sprintf("/orgs/%s/installations", org)

	return newPageIterator(c.transport, path, func(body []byte) ([]Installation, error) {
		var page installationsPage
		if err := decodeEntity("installation list", body, &page); err != nil {
			return nil, err
		}

		return page.Installations, nil
	}).GetAll()
}
