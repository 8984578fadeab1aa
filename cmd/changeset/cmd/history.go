package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osmkit/changeset/internal/cmd/output"
	"github.com/osmkit/changeset/pkg/history"
)

var (
	recordComment string
	recordSource  string
)

// historyEntries is the non-table output shape of the history command.
type historyEntries struct {
	Comments []string `json:"comments" yaml:"comments"`
	Sources  []string `json:"sources" yaml:"sources"`
}

// historyCmd represents the history command.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded comment and source history",
	Long: `Show the comment and source input histories, most recent first.

Sources fall back to the built-in defaults when nothing has been recorded.`,
	RunE: runHistory,
}

// historyRecordCmd records new history entries.
var historyRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a comment or source in history",
	Long: `Record a submitted comment or source at the front of its history.

Recording an existing value moves it to the front. Comment recording is
disabled when the upload.comment.max-age preference is zero or negative.

Examples:
  changeset history record --comment "Added a playground"
  changeset history record --source survey`,
	RunE: runHistoryRecord,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyRecordCmd)

	historyRecordCmd.Flags().StringVar(&recordComment, "comment", "", "comment to record")
	historyRecordCmd.Flags().StringVar(&recordSource, "source", "", "source to record")
	historyRecordCmd.MarkFlagsOneRequired("comment", "source")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	manager := history.NewManager(store, history.WithLimit(store.HistoryLimit()))

	entries := historyEntries{
		Comments: manager.Comments(),
		Sources:  manager.Sources(),
	}

	var payload any = entries
	if output.Format(outputFormat) == output.FormatTable {
		data := output.Data{Headers: []string{"kind", "value"}}
		for _, c := range entries.Comments {
			data.Rows = append(data.Rows, []string{"comment", c})
		}
		for _, s := range entries.Sources {
			data.Rows = append(data.Rows, []string{"source", s})
		}
		payload = data
	}

	return formatter().Format(cmd.OutOrStdout(), payload)
}

func runHistoryRecord(cmd *cobra.Command, _ []string) error {
	store, path, err := openStore()
	if err != nil {
		return err
	}
	manager := history.NewManager(store, history.WithLimit(store.HistoryLimit()))

	if cmd.Flags().Changed("comment") {
		manager.RecordComment(recordComment)
	}
	if cmd.Flags().Changed("source") {
		manager.RecordSource(recordSource)
	}

	return saveStore(store, path)
}
