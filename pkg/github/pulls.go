package github

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// SortFilter orders a pull request listing.
type SortFilter string

const (
	SortCreated     SortFilter = "created"
	SortUpdated     SortFilter = "updated"
	SortPopularity  SortFilter = "popularity"
	SortLongRunning SortFilter = "long-running"
)

// DirectionFilter is the sort direction of a pull request listing.
type DirectionFilter string

const (
	DirectionAsc  DirectionFilter = "asc"
	DirectionDesc DirectionFilter = "desc"
)

var (
	sortFilters      = []SortFilter{SortCreated, SortUpdated, SortPopularity, SortLongRunning}
	directionFilters = []DirectionFilter{DirectionAsc, DirectionDesc}
)

// ListPullRequestsOptions narrows a pull request listing. The zero
// value lists everything the endpoint returns by default.
type ListPullRequestsOptions struct {
	// Head filters by head in "user:branch" form.
	Head      string
	Base      string
	Sort      SortFilter
	Direction DirectionFilter
}

func (o *ListPullRequestsOptions) query() (string, error) {
	if o == nil {
		return "", nil
	}

	if o.Sort != "" && !slices.Contains(sortFilters, o.Sort) {
		return "", &ValidationError{
			Message: fmt.Sprintf("invalid sort filter %q", o.Sort),
		}
	}
	if o.Direction != "" && !slices.Contains(directionFilters, o.Direction) {
		return "", &ValidationError{
			Message: fmt.Sprintf("invalid direction filter %q", o.Direction),
		}
	}

	q := ""
	if o.Head != "" {
		q += "&head=" + o.Head
	}
	if o.Base != "" {
		q += "&base=" + o.Base
	}
	if o.Sort != "" {
		q += "&sort=" + string(o.Sort)
	}
	if o.Direction != "" {
		q += "&direction=" + string(o.Direction)
	}

	return q, nil
}

// GetPullRequests lists the pull requests of a repository, following
// pagination to completion. project is the "owner/repo" full name.
func (c *Client) GetPullRequests(project string, o *ListPullRequestsOptions) ([]PullRequest, error) {
	q, err := o.query()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/repos/%s/pulls?per_page=%d%s", project, pageLength, q)

	return listAll[PullRequest](c, "pull request list", path)
}

// GetPullRequest fetches one pull request. A missing pull request is
// surfaced as a ValidationError with the underlying ApiError as cause.
func (c *Client) GetPullRequest(project string, number int64) (*PullRequest, error) {
	var pr PullRequest
	path := fmt.Sprintf("/repos/%s/pulls/%d", project, number)
	if err := c.get(path, "pull request", &pr); err != nil {
		return nil, notFoundAsValidation(err, fmt.Sprintf(
			"Pull Request not found: %s/%d", project, number))
	}

	return &pr, nil
}

// CreatePullRequest opens a pull request.
func (c *Client) CreatePullRequest(project string, req *CreatePullRequest) (*PullRequest, error) {
	if req.Title == "" {
		return nil, &ValidationError{Message: "pull request title is required"}
	}
	if req.Head == "" || req.Base == "" {
		return nil, &ValidationError{Message: "pull request head and base are required"}
	}

	var pr PullRequest
	path := fmt.Sprintf("/repos/%s/pulls", project)
	if err := c.post(path, req, "pull request", &pr); err != nil {
		return nil, err
	}

	return &pr, nil
}

// UpdatePullRequest updates the title, body or state of a pull request
// and returns the resulting entity.
func (c *Client) UpdatePullRequest(project string, number int64, req *UpdatePullRequest) (*PullRequest, error) {
	var pr PullRequest
	path := fmt.Sprintf("/repos/%s/pulls/%d", project, number)
	if err := c.post(path, req, "pull request", &pr); err != nil {
		return nil, err
	}

	return &pr, nil
}

// GetReviews lists all reviews of a pull request in fetch order.
func (c *Client) GetReviews(project string, number int64) ([]Review, error) {
	path := fmt.Sprintf("/repos/%s/pulls/%d/reviews", project, number)

	return listAll[Review](c, "review list", path)
}

// GetPullRequestComment fetches a single review comment by id.
func (c *Client) GetPullRequestComment(project string, commentID int64) (*PullRequestComment, error) {
	var comment PullRequestComment
	path := fmt.Sprintf("/repos/%s/pulls/comments/%d", project, commentID)
	if err := c.get(path, "pull request comment", &comment); err != nil {
		return nil, notFoundAsValidation(err, fmt.Sprintf(
			"Pull Request Comment not found: %d", commentID))
	}

	return &comment, nil
}

// GetPullRequestComments lists the review comments of a pull request.
func (c *Client) GetPullRequestComments(project string, number int64) ([]PullRequestComment, error) {
	path := fmt.Sprintf("/repos/%s/pulls/%d/comments", project, number)
	comments, err := listAll[PullRequestComment](c, "pull request comment list", path)
	if err != nil {
		return nil, notFoundAsValidation(err, fmt.Sprintf(
			"Pull Request not found: %s/%d", project, number))
	}

	return comments, nil
}
