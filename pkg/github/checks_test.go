package github

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommit(t *testing.T) {
	c, transport := newTestClient(t)
	transport.trainGet(
		"/repos/example/project/commits/604aa8e189a6fee605140ebbe4a3c34ad24619d1",
		getFixture(t, "commit_response_testdata.json"),
	)

	commit, err := c.GetCommit("example/project", "604aa8e189a6fee605140ebbe4a3c34ad24619d1")
	require.NoError(t, err)

	assert.Equal(t, "604aa8e189a6fee605140ebbe4a3c34ad24619d1", commit.SHA)
	require.NotNil(t, commit.Author)
	assert.Equal(t, "the-author", commit.Author.Login)
	require.NotNil(t, commit.Committer)
	assert.Equal(t, "the-committer", commit.Committer.Login)
	require.NotNil(t, commit.Commit)
	assert.Equal(t, "The Author", commit.Commit.Author.Name)
	assert.Equal(t, "theauthor@example.com", commit.Commit.Author.Email)
	assert.Equal(t, time.Date(2018, 12, 7, 23, 36, 45, 0, time.UTC), commit.Commit.Author.Date)
	assert.Equal(t, "The Committer", commit.Commit.Committer.Name)
	assert.Contains(t, commit.Commit.Message, "Temporal fix to the CI")
}

func TestCreateStatus(t *testing.T) {
	t.Run("posts the status and decodes the result", func(t *testing.T) {
		c, transport := newTestClient(t)
		post := transport.trainPost(
			"/repos/example/project/statuses/6dcb09b5b57875f334f61aebed695e2e4193db5e",
			func(t *testing.T, body []byte) {
				var req CreateStatusRequest
				require.NoError(t, json.Unmarshal(body, &req))
				assert.Equal(t, StatusStateSuccess, req.State)
				assert.Equal(t, "continuous-integration/jenkins", req.Context)
				assert.Equal(t, "https://ci.example.com/1000/output", req.TargetURL)
			},
			getFixture(t, "create_status_response_testdata.json"),
		)

		status, err := c.CreateStatus("example/project", "6dcb09b5b57875f334f61aebed695e2e4193db5e",
			NewCreateStatusRequest(StatusStateSuccess,
				"https://ci.example.com/1000/output",
				"Build has completed successfully",
				"continuous-integration/jenkins"))
		require.NoError(t, err)
		assert.Equal(t, StatusStateSuccess, status.State)
		assert.Equal(t, "continuous-integration/jenkins", status.Context)
		assert.Equal(t, "octocat", status.Creator.Login)
		assert.Equal(t, 1, post.calls)
	})

	t.Run("requires a state", func(t *testing.T) {
		c, _ := newTestClient(t)

		_, err := c.CreateStatus("example/project", "abc",
			&CreateStatusRequest{Context: "ci"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("requires a context", func(t *testing.T) {
		c, _ := newTestClient(t)

		_, err := c.CreateStatus("example/project", "abc",
			&CreateStatusRequest{State: StatusStateSuccess})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})
}

func TestGetCombinedStatus(t *testing.T) {
	t.Run("decodes the aggregate", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.trainGet(
			"/repos/example/project/commits/6dcb09b5b57875f334f61aebed695e2e4193db5e/status?per_page=100",
			getFixture(t, "get_combined_status_testdata.json"),
		)

		combined, err := c.GetCombinedStatus("example/project", "6dcb09b5b57875f334f61aebed695e2e4193db5e")
		require.NoError(t, err)

		assert.Equal(t, "6dcb09b5b57875f334f61aebed695e2e4193db5e", combined.SHA)
		assert.Equal(t, StatusStateSuccess, combined.State)
		assert.Equal(t, int64(2), combined.TotalCount)
		require.Len(t, combined.Statuses, 2)
		assert.Equal(t, "continuous-integration/jenkins", combined.Statuses[0].Context)
		assert.Equal(t, "security/brakeman", combined.Statuses[1].Context)
	})

	t.Run("concatenates statuses across pages", func(t *testing.T) {
		fixture := getFixture(t, "get_combined_status_testdata.json")
		c, transport := newTestClient(t)
		transport.trainGetStatus(
			"/repos/example/project/commits/6dcb09b5b57875f334f61aebed695e2e4193db5e/status?per_page=100",
			200, fixture,
			map[string]string{"Link": `<https://api.github.com/repositories/123/commits/6dcb09b5b57875f334f61aebed695e2e4193db5e/status?per_page=100&page=2>; rel="next"`},
		)
		transport.trainGet(
			"/repositories/123/commits/6dcb09b5b57875f334f61aebed695e2e4193db5e/status?per_page=100&page=2",
			fixture,
		)

		combined, err := c.GetCombinedStatus("example/project", "6dcb09b5b57875f334f61aebed695e2e4193db5e")
		require.NoError(t, err)
		assert.Equal(t, StatusStateSuccess, combined.State)
		assert.Len(t, combined.Statuses, 4)
	})

	t.Run("rejects an unrecognized state token", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.trainGet(
			"/repos/example/project/commits/abc/status?per_page=100",
			[]byte(`{"sha": "abc", "state": "maybe", "total_count": 0, "statuses": []}`),
		)

		_, err := c.GetCombinedStatus("example/project", "abc")

		var malformed *MalformedResponseError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "state", malformed.Field)
		assert.Equal(t, "maybe", malformed.Value)
	})
}

func TestGetCheckRuns(t *testing.T) {
	t.Run("unwraps the envelope", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.trainGet(
			"/repos/example/project/commits/6dcb09b5b57875f334f61aebed695e2e4193db5e/check-runs?per_page=100",
			getFixture(t, "get_check_runs_testdata.json"),
		)

		runs, err := c.GetCheckRuns("example/project", "6dcb09b5b57875f334f61aebed695e2e4193db5e")
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, int64(4), runs[0].ID)
		assert.Equal(t, "completed", runs[0].Status)
		assert.Equal(t, "neutral", runs[0].Conclusion)
		assert.Equal(t, "https://example.com", runs[0].DetailsURL)
		require.NotNil(t, runs[0].App)
		assert.Equal(t, int64(1), runs[0].App.ID)
		assert.Equal(t, "octoapp", runs[0].App.Slug)
		assert.Equal(t, "Octocat App", runs[0].App.Name)
	})

	t.Run("concatenates pages", func(t *testing.T) {
		fixture := getFixture(t, "get_check_runs_testdata.json")
		c, transport := newTestClient(t)
		transport.trainGetStatus(
			"/repos/example/project/commits/abc/check-runs?per_page=100", 200, fixture,
			map[string]string{"Link": `<https://api.github.com/repositories/123/check-runs?per_page=100&page=2>; rel="next"`},
		)
		transport.trainGetStatus(
			"/repositories/123/check-runs?per_page=100&page=2", 200, fixture,
			map[string]string{"Link": `<https://api.github.com/repositories/123/check-runs?per_page=100&page=3>; rel="next"`},
		)
		transport.trainGet("/repositories/123/check-runs?per_page=100&page=3", fixture)

		runs, err := c.GetCheckRuns("example/project", "abc")
		require.NoError(t, err)
		assert.Len(t, runs, 3)
		assert.Equal(t, 3, transport.getCalls)
	})
}

func TestGetCheckSuites(t *testing.T) {
	t.Run("unwraps the envelope", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.trainGet(
			"/repos/example/project/commits/6dcb09b5b57875f334f61aebed695e2e4193db5e/check-suites?per_page=100",
			getFixture(t, "get_check_suites_testdata.json"),
		)

		suites, err := c.GetCheckSuites("example/project", "6dcb09b5b57875f334f61aebed695e2e4193db5e")
		require.NoError(t, err)
		require.Len(t, suites, 1)
		assert.Equal(t, int64(5), suites[0].ID)
		assert.Equal(t, "completed", suites[0].Status)
		assert.Equal(t, "neutral", suites[0].Conclusion)
		require.NotNil(t, suites[0].App)
		assert.Equal(t, "octoapp", suites[0].App.Slug)
	})

	t.Run("concatenates pages", func(t *testing.T) {
		fixture := getFixture(t, "get_check_suites_testdata.json")
		c, transport := newTestClient(t)
		transport.trainGetStatus(
			"/repos/example/project/commits/abc/check-suites?per_page=100", 200, fixture,
			map[string]string{"Link": `<https://api.github.com/repositories/123/check-suites?per_page=100&page=2>; rel="next"`},
		)
		transport.trainGet("/repositories/123/check-suites?per_page=100&page=2", fixture)

		suites, err := c.GetCheckSuites("example/project", "abc")
		require.NoError(t, err)
		assert.Len(t, suites, 2)
	})
}
