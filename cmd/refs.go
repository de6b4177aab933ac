package cmd

import (
	"fmt"
	"os"

	"ghapi/pkg/github"

	"github.com/gosuri/uitable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var refsCmd = &cobra.Command{
	Use:   "refs",
	Short: "Manage git references",
}

var refsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List git references",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := github.DefaultClient()
		if err != nil {
			log.Fatal(err)
		}

		repo, err := repoParam(cmd)
		if err != nil {
			log.Fatal(err)
		}

		refs, err := c.GetReferences(repo)
		if err != nil {
			log.Fatal(err)
		}

		table := uitable.New()
		table.AddRow("SHA", "REF")
		for _, ref := range refs {
			table.AddRow(ref.SHA(), ref.Ref)
		}
		fmt.Fprintln(os.Stdout, table.String())
	},
}

var refsGetCmd = &cobra.Command{
	Use:   "get [ref]",
	Short: "Show a single git reference",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := github.DefaultClient()
		if err != nil {
			log.Fatal(err)
		}

		repo, err := repoParam(cmd)
		if err != nil {
			log.Fatal(err)
		}

		ref, err := c.GetReference(repo, args[0])
		if err != nil {
			log.Fatal(err)
		}

		fmt.Fprintln(os.Stdout, ref.String())
	},
}

var refsDeleteCmd = &cobra.Command{
	Use:     "delete [ref]",
	Aliases: []string{"rm"},
	Short:   "Delete a git reference",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := github.DefaultClient()
		if err != nil {
			log.Fatal(err)
		}

		repo, err := repoParam(cmd)
		if err != nil {
			log.Fatal(err)
		}

		if err := c.DeleteReference(repo, args[0]); err != nil {
			log.Fatal(err)
		}

		log.Infof("Deleted %s", args[0])
	},
}

func init() {
	addRepositoryFlag(refsListCmd)
	addRepositoryFlag(refsGetCmd)
	addRepositoryFlag(refsDeleteCmd)
	refsCmd.AddCommand(refsListCmd)
	refsCmd.AddCommand(refsGetCmd)
	refsCmd.AddCommand(refsDeleteCmd)
	rootCmd.AddCommand(refsCmd)
}
