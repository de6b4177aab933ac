package cmd

import (
	"ghapi/internal/configutil"
	"ghapi/internal/errcodes"
	"ghapi/pkg/github"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Manage releases",
}

var releaseCreateCmd = &cobra.Command{
	Use:     "create [tag]",
	Aliases: []string{"cr"},
	Short:   "Create a release for a tag",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if args[0] == "" {
			log.Fatal(errcodes.ErrMissingTagName)
		}

		c, err := github.DefaultClient()
		if err != nil {
			log.Fatal(err)
		}

		repo, err := repoParam(cmd)
		if err != nil {
			log.Fatal(err)
		}

		req := github.NewCreateReleaseRequest(args[0])
		if name := configutil.GetStringFlagOrDefault(cmd.Flags(), "name", ""); name != "" {
			req.WithName(name)
		}
		if body := configutil.GetStringFlagOrDefault(cmd.Flags(), "notes", ""); body != "" {
			req.WithBody(body)
		}
		if commitish := configutil.GetStringFlagOrDefault(cmd.Flags(), "target", ""); commitish != "" {
			req.WithCommitish(commitish)
		}
		if draft, _ := cmd.Flags().GetBool("draft"); draft {
			req.WithDraft()
		}

		release, err := c.CreateRelease(repo, req)
		if err != nil {
			log.Fatal(err)
		}

		log.Infof("Created release %s: %s", release.TagName, release.HTMLURL)
	},
}

func init() {
	addRepositoryFlag(releaseCreateCmd)
	releaseCreateCmd.Flags().String("name", "", "release name")
	releaseCreateCmd.Flags().String("notes", "", "release notes body")
	releaseCreateCmd.Flags().String("target", "", "target commitish for the tag")
	releaseCreateCmd.Flags().Bool("draft", false, "create as a draft release")
	releaseCmd.AddCommand(releaseCreateCmd)
	rootCmd.AddCommand(releaseCmd)
}
