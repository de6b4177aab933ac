package github

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slices"
)

// User is an account on the service.
type User struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
	Type  string `json:"type"`
}

// Label is an issue or pull request label.
type Label struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BranchRef is the tip of a pull request branch (head or base).
type BranchRef struct {
	Label string `json:"label"`
	Ref   string `json:"ref"`
	SHA   string `json:"sha"`
}

// PullRequest is a decoded pull request resource.
type PullRequest struct {
	Number             int64     `json:"number"`
	State              string    `json:"state"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	Head               BranchRef `json:"head"`
	Base               BranchRef `json:"base"`
	User               *User     `json:"user"`
	Assignee           *User     `json:"assignee"`
	Assignees          []User    `json:"assignees"`
	RequestedReviewers []User    `json:"requested_reviewers"`
	Merged             bool      `json:"merged"`
	Commits            int64     `json:"commits"`
}

// Issue is a decoded issue resource.
type Issue struct {
	Number    int64   `json:"number"`
	State     string  `json:"state"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	User      *User   `json:"user"`
	Assignee  *User   `json:"assignee"`
	Assignees []User  `json:"assignees"`
	Labels    []Label `json:"labels"`
}

// Review is a pull request review.
type Review struct {
	ID       int64  `json:"id"`
	User     *User  `json:"user"`
	Body     string `json:"body"`
	State    string `json:"state"`
	CommitID string `json:"commit_id"`
}

// Approved reports whether the review approved the pull request.
func (r *Review) Approved() bool {
	return r.State == "APPROVED"
}

// GitObject is the object a git reference points at.
type GitObject struct {
	Type string `json:"type"`
	SHA  string `json:"sha"`
	URL  string `json:"url"`
}

// Ref is a git reference resource (git/refs endpoints). The reference
// name always starts with "refs/".
type Ref struct {
	Ref    string     `json:"ref"`
	URL    string     `json:"url"`
	Object *GitObject `json:"object"`
}

// SHA returns the sha of the referenced object, or "" when the server
// omitted the object.
func (r *Ref) SHA() string {
	if r.Object == nil {
		return ""
	}

	return r.Object.SHA
}

func (r *Ref) String() string {
	return fmt.Sprintf("%s\t%s", r.SHA(), r.Ref)
}

// AuthorAssociation is the commenter's relation to the repository.
type AuthorAssociation string

const (
	AuthorAssociationCollaborator         AuthorAssociation = "COLLABORATOR"
	AuthorAssociationContributor          AuthorAssociation = "CONTRIBUTOR"
	AuthorAssociationFirstTimer           AuthorAssociation = "FIRST_TIMER"
	AuthorAssociationFirstTimeContributor AuthorAssociation = "FIRST_TIME_CONTRIBUTOR"
	AuthorAssociationMannequin            AuthorAssociation = "MANNEQUIN"
	AuthorAssociationMember               AuthorAssociation = "MEMBER"
	AuthorAssociationNone                 AuthorAssociation = "NONE"
	AuthorAssociationOwner                AuthorAssociation = "OWNER"
)

var authorAssociations = []AuthorAssociation{
	AuthorAssociationCollaborator,
	AuthorAssociationContributor,
	AuthorAssociationFirstTimer,
	AuthorAssociationFirstTimeContributor,
	AuthorAssociationMannequin,
	AuthorAssociationMember,
	AuthorAssociationNone,
	AuthorAssociationOwner,
}

func (a *AuthorAssociation) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if !slices.Contains(authorAssociations, AuthorAssociation(raw)) {
		return &MalformedResponseError{Field: "author_association", Value: raw}
	}

	*a = AuthorAssociation(raw)
	return nil
}

// IssueComment is a comment on an issue or on a pull request's
// conversation thread.
type IssueComment struct {
	ID                int64             `json:"id"`
	Body              string            `json:"body"`
	User              *User             `json:"user"`
	AuthorAssociation AuthorAssociation `json:"author_association"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// PullRequestComment is a review comment anchored to a diff position.
type PullRequestComment struct {
	ID               int64     `json:"id"`
	Body             string    `json:"body"`
	User             *User     `json:"user"`
	Path             string    `json:"path"`
	Position         *int64    `json:"position"`
	OriginalPosition *int64    `json:"original_position"`
	CommitID         string    `json:"commit_id"`
	OriginalCommitID string    `json:"original_commit_id"`
	DiffHunk         string    `json:"diff_hunk"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// StatusState is the state of a commit status.
type StatusState string

const (
	StatusStatePending StatusState = "pending"
	StatusStateSuccess StatusState = "success"
	StatusStateError   StatusState = "error"
	StatusStateFailure StatusState = "failure"
)

var statusStates = []StatusState{
	StatusStatePending,
	StatusStateSuccess,
	StatusStateError,
	StatusStateFailure,
}

func (s *StatusState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if !slices.Contains(statusStates, StatusState(raw)) {
		return &MalformedResponseError{Field: "state", Value: raw}
	}

	*s = StatusState(raw)
	return nil
}

// Status is a single commit status.
type Status struct {
	Context     string      `json:"context"`
	TargetURL   string      `json:"target_url"`
	Description string      `json:"description"`
	State       StatusState `json:"state"`
	Creator     *User       `json:"creator"`
}

// CombinedStatus aggregates the statuses reported for a commit. The
// overall state is computed by the server and never recomputed here.
type CombinedStatus struct {
	SHA        string      `json:"sha"`
	State      StatusState `json:"state"`
	TotalCount int64       `json:"total_count"`
	Statuses   []Status    `json:"statuses"`
}

// App is the application that owns a check run or check suite.
type App struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// CheckRun is a single check run reported for a commit.
type CheckRun struct {
	ID         int64  `json:"id"`
	Status     string `json:"status"`
	Conclusion string `json:"conclusion"`
	DetailsURL string `json:"details_url"`
	App        *App   `json:"app"`
}

// CheckSuite groups the check runs of one app for a commit.
type CheckSuite struct {
	ID         int64  `json:"id"`
	Status     string `json:"status"`
	Conclusion string `json:"conclusion"`
	App        *App   `json:"app"`
}

// CommitAuthor is the git-level author or committer of a commit.
type CommitAuthor struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// GitCommit is the git-level commit data nested inside a Commit.
type GitCommit struct {
	Author    *CommitAuthor `json:"author"`
	Committer *CommitAuthor `json:"committer"`
	Message   string        `json:"message"`
}

// Commit is a commit resource, pairing git-level data with the service
// accounts resolved for the author and committer.
type Commit struct {
	SHA       string     `json:"sha"`
	Author    *User      `json:"author"`
	Committer *User      `json:"committer"`
	Commit    *GitCommit `json:"commit"`
	HTMLURL   string     `json:"html_url"`
}

// Organization is an organization account.
type Organization struct {
	Login                       string `json:"login"`
	ID                          int64  `json:"id"`
	TwoFactorRequirementEnabled *bool  `json:"two_factor_requirement_enabled"`
}

// Installation is an app installation on an organization.
type Installation struct {
	ID                  int64  `json:"id"`
	AppSlug             string `json:"app_slug"`
	TargetType          string `json:"target_type"`
	RepositorySelection string `json:"repository_selection"`
}

// Release is a release resource.
type Release struct {
	ID         int64  `json:"id"`
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	HTMLURL    string `json:"html_url"`
	TarballURL string `json:"tarball_url"`
	ZipballURL string `json:"zipball_url"`
}

// UserPermission is a collaborator's permission level on a repository.
type UserPermission string

const (
	UserPermissionAdmin UserPermission = "admin"
	UserPermissionWrite UserPermission = "write"
	UserPermissionRead  UserPermission = "read"
	UserPermissionNone  UserPermission = "none"
)

var userPermissions = []UserPermission{
	UserPermissionAdmin,
	UserPermissionWrite,
	UserPermissionRead,
	UserPermissionNone,
}

func (p *UserPermission) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if !slices.Contains(userPermissions, UserPermission(raw)) {
		return &MalformedResponseError{Field: "permission", Value: raw}
	}

	*p = UserPermission(raw)
	return nil
}

// UserPermissionLevel is a collaborator's resolved permission.
type UserPermissionLevel struct {
	Permission UserPermission `json:"permission"`
	User       *User          `json:"user"`
}

// IssuesSearchResult holds one page of issue/pull-request search hits.
type IssuesSearchResult struct {
	TotalCount        int64             `json:"total_count"`
	IncompleteResults bool              `json:"incomplete_results"`
	Items             []IssueSearchItem `json:"items"`
}

// IssueSearchItem is a single search hit.
type IssueSearchItem struct {
	ID     int64  `json:"id"`
	Number int64  `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
	User   *User  `json:"user"`
}
