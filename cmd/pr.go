package cmd

import (
	"fmt"
	"os"
	"strconv"

	"ghapi/internal/configutil"
	"ghapi/pkg/github"

	"github.com/gosuri/uilive"
	"github.com/gosuri/uitable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var prCmd = &cobra.Command{
	Use:     "pr",
	Aliases: []string{"pullrequest"},
	Short:   "Manage pull requests",
}

var prListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List pull requests",
	Long:    `Lists the pull requests of the repository hosting your origin remote`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := github.DefaultClient()
		if err != nil {
			log.Fatal(err)
		}

		repo, err := repoParam(cmd)
		if err != nil {
			log.Fatal(err)
		}

		writer := uilive.New()
		writer.Start()
		defer writer.Stop()
		fmt.Fprintln(writer, "Loading pull requests...")

		prs, err := c.GetPullRequests(repo, &github.ListPullRequestsOptions{
			Base: configutil.GetStringFlagOrDefault(cmd.Flags(), "base", ""),
		})
		if err != nil {
			log.Fatal(err)
		}

		table := uitable.New()
		table.AddRow("#", "TITLE", "SRC/DEST", "STATE")
		table.AddRow("-", "-----", "--------", "-----")
		for _, pr := range prs {
			table.AddRow(
				pr.Number,
				pr.Title,
				fmt.Sprintf("%s -> %s", pr.Head.Ref, pr.Base.Ref),
				pr.State,
			)
		}

		fmt.Fprintln(writer, table.String())
	},
}

var prViewCmd = &cobra.Command{
	Use:   "view [number]",
	Short: "View a pull request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		number, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatal("pull request number must be numeric")
		}

		c, err := github.DefaultClient()
		if err != nil {
			log.Fatal(err)
		}

		repo, err := repoParam(cmd)
		if err != nil {
			log.Fatal(err)
		}

		pr, err := c.GetPullRequest(repo, number)
		if err != nil {
			log.Fatal(err)
		}

		table := uitable.New()
		table.Wrap = true
		table.AddRow("Number:", pr.Number)
		table.AddRow("Title:", pr.Title)
		table.AddRow("State:", pr.State)
		table.AddRow("Source:", pr.Head.Label)
		table.AddRow("Destination:", pr.Base.Label)
		if pr.User != nil {
			table.AddRow("Author:", pr.User.Login)
		}
		table.AddRow("Body:", pr.Body)
		fmt.Fprintln(os.Stdout, table.String())
	},
}

func init() {
	addRepositoryFlag(prListCmd)
	prListCmd.Flags().String("base", "", "filter by base branch")
	addRepositoryFlag(prViewCmd)
	prCmd.AddCommand(prListCmd)
	prCmd.AddCommand(prViewCmd)
	rootCmd.AddCommand(prCmd)
}
