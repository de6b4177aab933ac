package github

import "github.com/sourcegraph/go-diff/diff"

// ParseDiffHunk parses a review comment's diff hunk into structured
// hunks so callers can render the surrounding context. A comment
// without a hunk yields nil.
func ParseDiffHunk(comment *PullRequestComment) ([]*diff.Hunk, error) {
	if comment == nil || comment.DiffHunk == "" {
		return nil, nil
	}

	hunks, err := diff.ParseHunks([]byte(comment.DiffHunk + "\n"))
	if err != nil {
		return nil, &MalformedResponseError{
			Entity: "pull request comment",
			Field:  "diff_hunk",
			Cause:  err,
		}
	}

	return hunks, nil
}
