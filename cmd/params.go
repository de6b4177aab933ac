package cmd

import (
	"strings"

	"ghapi/internal/configutil"
	"ghapi/internal/errcodes"
	"ghapi/internal/gitutils"

	"github.com/spf13/cobra"
)

// repoParam resolves the "owner/repo" the command operates on: the
// --repository flag when given, otherwise the working tree's origin
// remote.
func repoParam(cmd *cobra.Command) (string, error) {
	repo := configutil.GetStringFlagOrDefault(cmd.Flags(), "repository", "")
	if repo == "" {
		remote, err := gitutils.GetRemoteInfo()
		if err != nil {
			return "", errcodes.ErrMissingRepository
		}

		return remote.FullName(), nil
	}

	v := strings.Split(repo, "/")
	if len(v) != 2 || v[0] == "" || v[1] == "" {
		return "", errcodes.ErrRepositoryMustBeInFormOwnerRepo
	}

	return repo, nil
}

func addRepositoryFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("repository", "r", "", "repository in the form of 'owner/repo'")
}
