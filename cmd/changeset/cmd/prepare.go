package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	changeset "github.com/osmkit/changeset"
	"github.com/osmkit/changeset/pkg/tags"
	"github.com/osmkit/changeset/pkg/upload"
)

var (
	prepareAgent    string
	prepareCheck    bool
	prepareRemember bool
)

// prepareRequest is the YAML shape of a prepare request file.
type prepareRequest struct {
	// Dataset carries the changeset tags derived from the edited dataset.
	Dataset map[string]string `yaml:"dataset"`

	// Selected carries the tags of a user-selected open changeset. Absent
	// means no changeset is selected.
	Selected map[string]string `yaml:"selected"`

	// KeepCurrent preserves the live comment and source values instead of
	// history and dataset derived ones.
	KeepCurrent    bool   `yaml:"keep-current"`
	CurrentComment string `yaml:"current-comment"`
	CurrentSource  string `yaml:"current-source"`
}

// prepareCmd represents the prepare command.
var prepareCmd = &cobra.Command{
	Use:   "prepare [request-file]",
	Short: "Reconcile the changeset tag set for an upload",
	Long: `Reconcile the final changeset tag set from a request file, the input
histories, and the configured agent.

The request file is YAML:

  dataset:            # tags derived from the dataset
    import: "yes"
    hashtags: mapathon
  selected:           # tags of a selected open changeset (omit when none)
    comment: ongoing import
  keep-current: false
  current-comment: ""
  current-source: ""

Without a request file, tags are reconciled from history alone.

Examples:
  changeset prepare request.yaml
  changeset prepare request.yaml --check
  changeset prepare --agent "editor/2.0" -o yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrepare,
}

func init() {
	rootCmd.AddCommand(prepareCmd)

	prepareCmd.Flags().StringVar(&prepareAgent, "agent", changeset.DefaultAgent, "client identification for the created_by tag")
	prepareCmd.Flags().BoolVar(&prepareCheck, "check", false, "also check tags and upload strategy for blocking problems")
	prepareCmd.Flags().BoolVar(&prepareRemember, "remember", false, "record the reconciled comment and source in history")
}

func runPrepare(cmd *cobra.Command, args []string) error {
	var req prepareRequest
	if len(args) == 1 {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading request file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("parsing request file: %w", err)
		}
	}

	store, path, err := openStore()
	if err != nil {
		return err
	}

	preparer, err := changeset.New(
		changeset.WithStore(store),
		changeset.WithAgent(prepareAgent),
		changeset.WithHistoryLimit(store.HistoryLimit()),
	)
	if err != nil {
		return err
	}

	set := preparer.PrepareTags(req.Dataset, req.Selected, req.KeepCurrent, req.CurrentComment, req.CurrentSource)

	if prepareCheck {
		spec := upload.Load(store)
		if err := preparer.Check(spec); err != nil {
			return err
		}
	}

	if prepareRemember {
		preparer.RememberInput(set[tags.Comment], set[tags.Source])
		if err := saveStore(store, path); err != nil {
			return err
		}
	}

	return formatter().Format(cmd.OutOrStdout(), map[string]string(set))
}
