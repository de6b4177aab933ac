package cmd

import (
	"strings"

	"ghapi/internal/configutil"
	"ghapi/internal/errcodes"
	"ghapi/internal/gitutils"
	"ghapi/pkg/github"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type createCmdParams struct {
	Repository string
	Title      string
	Body       string
	Head       string
	Base       string
	Draft      bool
}

func fillDefaultCreateParams(params *createCmdParams) {
	if remote, err := gitutils.GetRemoteInfo(); err == nil {
		params.Repository = remote.FullName()
	}
	if branch, err := gitutils.GetCurrentBranch(); err == nil {
		params.Head = branch
	}
}

func fillFlagCreateParams(cmd *cobra.Command, params *createCmdParams) error {
	flags := cmd.Flags()

	repo := configutil.GetStringFlagOrDefault(flags, "repository", params.Repository)
	if repo != "" {
		v := strings.Split(repo, "/")
		if len(v) != 2 || v[0] == "" || v[1] == "" {
			return errcodes.ErrRepositoryMustBeInFormOwnerRepo
		}
	}

	params.Repository = repo
	params.Title = configutil.GetStringFlagOrDefault(flags, "title", params.Title)
	params.Body = configutil.GetStringFlagOrDefault(flags, "body", params.Body)
	params.Head = configutil.GetStringFlagOrDefault(flags, "head", params.Head)
	params.Base = configutil.GetStringFlagOrDefault(flags, "base", params.Base)
	params.Draft, _ = flags.GetBool("draft")

	return nil
}

func validateCreateParams(params *createCmdParams) error {
	if params.Repository == "" {
		return errcodes.ErrMissingRepository
	}
	if params.Title == "" {
		return errcodes.ErrMissingTitle
	}
	if params.Head == "" {
		return errcodes.ErrMissingHead
	}
	if params.Base == "" {
		return errcodes.ErrMissingBase
	}

	return nil
}

var prCreateCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"cr", "new"},
	Short:   "Create a pull request",
	Long:    `Creates a pull request on the service hosting your origin remote`,
	Run: func(cmd *cobra.Command, args []string) {
		params := &createCmdParams{}
		fillDefaultCreateParams(params)
		if err := fillFlagCreateParams(cmd, params); err != nil {
			log.Fatal(err)
		}

		interactive, _ := cmd.Flags().GetBool("interactive")
		if interactive {
			if err := fillInteractiveCreateParams(params); err != nil {
				log.Fatal(err)
			}
		}

		if err := validateCreateParams(params); err != nil {
			log.Fatal(err)
		}

		c, err := github.DefaultClient()
		if err != nil {
			log.Fatal(err)
		}

		pr, err := c.CreatePullRequest(params.Repository, github.NewCreatePullRequest(
			params.Title,
			params.Body,
			params.Head,
			params.Base,
			params.Draft,
		))
		if err != nil {
			log.Fatal(err)
		}

		log.Infof("Created pull request #%d: %s", pr.Number, pr.Title)
	},
}

func init() {
	addRepositoryFlag(prCreateCmd)
	prCreateCmd.Flags().StringP("title", "t", "", "pull request title")
	prCreateCmd.Flags().String("body", "", "pull request body")
	prCreateCmd.Flags().StringP("head", "s", "", "head (source) branch")
	prCreateCmd.Flags().StringP("base", "d", "", "base (destination) branch")
	prCreateCmd.Flags().Bool("draft", false, "open as a draft")
	prCreateCmd.Flags().BoolP("interactive", "i", false, "prompt for missing values")
	prCmd.AddCommand(prCreateCmd)
}
