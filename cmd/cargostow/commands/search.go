package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargostow/internal/project"
	"github.com/piwi3910/cargostow/internal/retrieval"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Locate an item in a saved job and print its retrieval plan",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().String("job", "", "saved job name (required)")
	searchCmd.Flags().String("id", "", "item ID to search for")
	searchCmd.Flags().String("name", "", "item name to search for")
	_ = searchCmd.MarkFlagRequired("job")
}

func runSearch(cmd *cobra.Command, args []string) error {
	jobName, _ := cmd.Flags().GetString("job")
	id, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")
	if id == "" && name == "" {
		return fmt.Errorf("search requires --id or --name")
	}

	job, err := project.LoadJob(jobName)
	if err != nil {
		return err
	}

	result, found := retrieval.Search(id, name, job.Containers)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if !found {
		return enc.Encode(map[string]any{"found": false})
	}
	return enc.Encode(result)
}
