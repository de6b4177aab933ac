package github

import "fmt"

// GetIssue fetches one issue.
func (c *Client) GetIssue(project string, number int64) (*Issue, error) {
	var issue Issue
	path := fmt.Sprintf("/repos/%s/issues/%d", project, number)
	if err := c.get(path, "issue", &issue); err != nil {
		return nil, err
	}

	return &issue, nil
}

// CreateIssue opens an issue.
func (c *Client) CreateIssue(project string, req *CreateIssueRequest) (*Issue, error) {
	if req.Title == "" {
		return nil, &ValidationError{Message: "issue title is required"}
	}

	var issue Issue
	path := fmt.Sprintf("/repos/%s/issues", project)
	if err := c.post(path, req, "issue", &issue); err != nil {
		return nil, err
	}

	return &issue, nil
}

// AddLabels attaches labels to an issue and returns the issue's full
// label set as the server reports it.
func (c *Client) AddLabels(project string, number int64, labels []string) ([]Label, error) {
	if len(labels) == 0 {
		return nil, &ValidationError{Message: "at least one label is required"}
	}

	result := []Label{}
	path := fmt.Sprintf("/repos/%s/issues/%d/labels", project, number)
	if err := c.post(path, &AddLabels{Labels: labels}, "label list", &result); err != nil {
		return nil, err
	}

	return result, nil
}

// AddAssignees assigns users to an issue and returns the updated issue.
func (c *Client) AddAssignees(project string, number int64, req *AddAssignees) (*Issue, error) {
	if len(req.Assignees) == 0 {
		return nil, &ValidationError{Message: "at least one assignee is required"}
	}

	var issue Issue
	path := fmt.Sprintf("/repos/%s/issues/%d/assignees", project, number)
	if err := c.post(path, req, "issue", &issue); err != nil {
		return nil, err
	}

	return &issue, nil
}

// PostComment adds a comment to the conversation thread of an issue or
// pull request.
func (c *Client) PostComment(project string, number int64, comment string) error {
	path := fmt.Sprintf("/repos/%s/issues/%d/comments", project, number)

	return c.post(path, &CommentBody{Body: comment}, "", nil)
}

// ListIssueComments lists the conversation comments of an issue or
// pull request in fetch order.
func (c *Client) ListIssueComments(project string, number int64) ([]IssueComment, error) {
	path := fmt.Sprintf("/repos/%s/issues/%d/comments", project, number)

	return listAll[IssueComment](c, "issue comment list", path)
}
