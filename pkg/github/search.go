package github

import "strings"

// SearchType narrows a search to issues or pull requests.
type SearchType string

const (
	SearchTypeIssue       SearchType = "issue"
	SearchTypePullRequest SearchType = "pr"
)

// SearchState narrows a search by state.
type SearchState string

const (
	SearchStateOpen   SearchState = "open"
	SearchStateClosed SearchState = "closed"
)

// SearchIssuesParams describes an issue/pull-request search. Empty
// fields are left out of the query.
type SearchIssuesParams struct {
	// Project restricts the search to one "owner/repo".
	Project string
	// Commit matches issues and pull requests mentioning a sha.
	Commit string
	Type   SearchType
	State  SearchState
}

func (p *SearchIssuesParams) query() string {
	terms := []string{}
	if p.Project != "" {
		terms = append(terms, "repo:"+p.Project)
	}
	if p.Commit != "" {
		terms = append(terms, "commit:"+p.Commit)
	}
	if p.Type != "" {
		terms = append(terms, "is:"+string(p.Type))
	}
	if p.State != "" {
		terms = append(terms, "state:"+string(p.State))
	}

	return strings.Join(terms, "+")
}

// SearchIssues runs an issue/pull-request search and returns the first
// page of results together with the server's total count.
func (c *Client) SearchIssues(p *SearchIssuesParams) (*IssuesSearchResult, error) {
	if p == nil || p.query() == "" {
		return nil, &ValidationError{Message: "search requires at least one term"}
	}

	var result IssuesSearchResult
	if err := c.get("/search/issues?q="+p.query(), "search result", &result); err != nil {
		return nil, err
	}

	return &result, nil
}
