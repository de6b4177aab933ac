package github

// Outbound request payloads. Construct these through the New*
// functions; the façade validates domain rules before any network call.

// CreatePullRequest is the payload for opening a pull request.
type CreatePullRequest struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Head  string `json:"head"`
	Base  string `json:"base"`
	Draft bool   `json:"draft,omitempty"`
}

func NewCreatePullRequest(title, body, head, base string, draft bool) *CreatePullRequest {
	return &CreatePullRequest{
		Title: title,
		Body:  body,
		Head:  head,
		Base:  base,
		Draft: draft,
	}
}

// PullRequestState is the requested state in an update payload.
type PullRequestState string

const (
	PullRequestStateOpen   PullRequestState = "open"
	PullRequestStateClosed PullRequestState = "closed"
)

// UpdatePullRequest is the payload for updating a pull request. Empty
// fields are left untouched by the server.
type UpdatePullRequest struct {
	Title string           `json:"title,omitempty"`
	Body  string           `json:"body,omitempty"`
	State PullRequestState `json:"state,omitempty"`
}

func NewUpdatePullRequest(title, body string, state PullRequestState) *UpdatePullRequest {
	return &UpdatePullRequest{
		Title: title,
		Body:  body,
		State: state,
	}
}

// CreateIssueRequest is the payload for opening an issue.
type CreateIssueRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
}

func NewCreateIssueRequest(title, body string, assignees []string) *CreateIssueRequest {
	return &CreateIssueRequest{
		Title:     title,
		Body:      body,
		Assignees: assignees,
	}
}

// CreateStatusRequest is the payload for posting a commit status.
type CreateStatusRequest struct {
	State       StatusState `json:"state"`
	TargetURL   string      `json:"target_url,omitempty"`
	Description string      `json:"description,omitempty"`
	Context     string      `json:"context"`
}

func NewCreateStatusRequest(state StatusState, targetURL, description, context string) *CreateStatusRequest {
	return &CreateStatusRequest{
		State:       state,
		TargetURL:   targetURL,
		Description: description,
		Context:     context,
	}
}

// UpdateReferenceRequest points a git reference at a new sha.
type UpdateReferenceRequest struct {
	SHA   string `json:"sha"`
	Force bool   `json:"force"`
}

func NewUpdateReferenceRequest(sha string, force bool) *UpdateReferenceRequest {
	return &UpdateReferenceRequest{SHA: sha, Force: force}
}

// AddLabels is the payload for attaching labels to an issue.
type AddLabels struct {
	Labels []string `json:"labels"`
}

// AddAssignees is the payload for assigning users to an issue.
type AddAssignees struct {
	Assignees []string `json:"assignees"`
}

func NewAddAssignees(assignees []string) *AddAssignees {
	return &AddAssignees{Assignees: assignees}
}

// CommentBody is the payload for posting an issue comment.
type CommentBody struct {
	Body string `json:"body"`
}

// CreateReleaseRequest is the payload for publishing a release. A
// release always carries a tag name; everything else is optional.
type CreateReleaseRequest struct {
	TagName         string `json:"tag_name"`
	Name            string `json:"name,omitempty"`
	Body            string `json:"body,omitempty"`
	TargetCommitish string `json:"target_commitish,omitempty"`
	Draft           bool   `json:"draft,omitempty"`
	Prerelease      bool   `json:"prerelease,omitempty"`
	MakeLatest      string `json:"make_latest,omitempty"`
}

func NewCreateReleaseRequest(tagName string) *CreateReleaseRequest {
	return &CreateReleaseRequest{TagName: tagName}
}

func (r *CreateReleaseRequest) WithName(name string) *CreateReleaseRequest {
	r.Name = name
	return r
}

func (r *CreateReleaseRequest) WithBody(body string) *CreateReleaseRequest {
	r.Body = body
	return r
}

func (r *CreateReleaseRequest) WithCommitish(commitish string) *CreateReleaseRequest {
	r.TargetCommitish = commitish
	return r
}

func (r *CreateReleaseRequest) WithDraft() *CreateReleaseRequest {
	r.Draft = true
	return r
}

func (r *CreateReleaseRequest) WithPrerelease() *CreateReleaseRequest {
	r.Prerelease = true
	return r
}

func (r *CreateReleaseRequest) WithLatest(latest bool) *CreateReleaseRequest {
	if latest {
		r.MakeLatest = "true"
	} else {
		r.MakeLatest = "false"
	}
	return r
}
