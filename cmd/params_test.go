package cmd

import (
	"testing"

	"ghapi/internal/errcodes"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func Test_repoParam(t *testing.T) {
	newCmd := func(repository string) *cobra.Command {
		c := &cobra.Command{}
		addRepositoryFlag(c)
		if repository != "" {
			_ = c.Flags().Set("repository", repository)
		}

		return c
	}

	t.Run("accepts owner/repo", func(t *testing.T) {
		repo, err := repoParam(newCmd("octocat/Hello-World"))
		assert.NoError(t, err)
		assert.Equal(t, "octocat/Hello-World", repo)
	})

	t.Run("rejects a bare name", func(t *testing.T) {
		_, err := repoParam(newCmd("Hello-World"))
		assert.ErrorIs(t, err, errcodes.ErrRepositoryMustBeInFormOwnerRepo)
	})

	t.Run("rejects a missing owner", func(t *testing.T) {
		_, err := repoParam(newCmd("/Hello-World"))
		assert.ErrorIs(t, err, errcodes.ErrRepositoryMustBeInFormOwnerRepo)
	})

	t.Run("rejects too many segments", func(t *testing.T) {
		_, err := repoParam(newCmd("a/b/c"))
		assert.ErrorIs(t, err, errcodes.ErrRepositoryMustBeInFormOwnerRepo)
	})
}
