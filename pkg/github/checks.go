package github

import "fmt"

// GetCommit fetches one commit by sha.
func (c *Client) GetCommit(project, sha string) (*Commit, error) {
	var commit Commit
	path := fmt.Sprintf("/repos/%s/commits/%s", project, sha)
	if err := c.get(path, "commit", &commit); err != nil {
		return nil, err
	}

	return &commit, nil
}

// CreateStatus posts a commit status and returns the created status.
func (c *Client) CreateStatus(project, sha string, req *CreateStatusRequest) (*Status, error) {
	if req.State == "" {
		return nil, &ValidationError{Message: "status state is required"}
	}
	if req.Context == "" {
		return nil, &ValidationError{Message: "status context is required"}
	}

	var status Status
	path := fmt.Sprintf("/repos/%s/statuses/%s", project, sha)
	if err := c.post(path, req, "status", &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// GetCombinedStatus fetches the aggregated statuses of a commit. The
// endpoint pages like a list; sha, overall state and total count are
// repeated on every page, so they are taken from the first one and the
// per-page statuses are concatenated in fetch order.
func (c *Client) GetCombinedStatus(project, sha string) (*CombinedStatus, error) {
	path := fmt.Sprintf("/repos/%s/commits/%s/status", project, sha)

	var combined *CombinedStatus
	it := newPageIterator(c.transport, path, func(body []byte) ([]Status, error) {
		var page CombinedStatus
		if err := decodeEntity("combined status", body, &page); err != nil {
			return nil, err
		}
		if combined == nil {
			first := page
			first.Statuses = nil
			combined = &first
		}

		return page.Statuses, nil
	})

	statuses, err := it.GetAll()
	if err != nil {
		return nil, err
	}

	combined.Statuses = statuses
	return combined, nil
}

type checkRunsPage struct {
	TotalCount int64      `json:"total_count"`
	CheckRuns  []CheckRun `json:"check_runs"`
}

// GetCheckRuns lists the check runs reported for a commit.
func (c *Client) GetCheckRuns(project, sha string) ([]CheckRun, error) {
	path := fmt.Sprintf("/repos/%s/commits/%s/check-runs", project, sha)

	return newPageIterator(c.transport, path, func(body []byte) ([]CheckRun, error) {
		var page checkRunsPage
		if err := decodeEntity("check run list", body, &page); err != nil {
			return nil, err
		}

		return page.CheckRuns, nil
	}).GetAll()
}

type checkSuitesPage struct {
	TotalCount  int64        `json:"total_count"`
	CheckSuites []CheckSuite `json:"check_suites"`
}

// GetCheckSuites lists the check suites reported for a commit.
func (c *Client) GetCheckSuites(project, sha string) ([]CheckSuite, error) {
	path := fmt.Sprintf("/repos/%s/commits/%s/check-suites", project, sha)

	return newPageIterator(c.transport, path, func(body []byte) ([]CheckSuite, error) {
		var page checkSuitesPage
		if err := decodeEntity("check suite list", body, &page); err != nil {
			return nil, err
		}

		return page.CheckSuites, nil
	}).GetAll()
}
