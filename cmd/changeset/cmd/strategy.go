package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osmkit/changeset/internal/cmd/output"
	"github.com/osmkit/changeset/pkg/upload"
)

var strategyChunkSize int

// strategyCmd represents the strategy command.
var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Show the configured upload strategy",
	Long: `Show the upload strategy stored in the preference file: how the
changed primitives are partitioned into API requests.

Strategies:
  singlerequest      upload everything in one request
  individualobjects  one request per object (default)
  chunked            fixed-size batches, requires a chunk size`,
	RunE: runStrategy,
}

// strategySetCmd stores a new upload strategy.
var strategySetCmd = &cobra.Command{
	Use:   "set <strategy>",
	Short: "Set and validate the upload strategy",
	Long: `Set the upload strategy, validating it first. The chunked strategy
is rejected without a positive --chunk-size.

Examples:
  changeset strategy set individualobjects
  changeset strategy set chunked --chunk-size 500`,
	Args: cobra.ExactArgs(1),
	RunE: runStrategySet,
}

func init() {
	rootCmd.AddCommand(strategyCmd)
	strategyCmd.AddCommand(strategySetCmd)

	strategySetCmd.Flags().IntVar(&strategyChunkSize, "chunk-size", upload.UnspecifiedChunkSize, "objects per request for the chunked strategy")
}

func runStrategy(cmd *cobra.Command, _ []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	spec := upload.Load(store)

	return formatter().Format(cmd.OutOrStdout(), strategyPayload(spec))
}

func runStrategySet(cmd *cobra.Command, args []string) error {
	strategy, err := upload.ParseStrategy(args[0])
	if err != nil {
		return err
	}

	spec := upload.Specification{Strategy: strategy, ChunkSize: strategyChunkSize}
	if err := spec.Validate(); err != nil {
		return err
	}

	store, path, err := openStore()
	if err != nil {
		return err
	}
	upload.Save(store, spec)
	if err := saveStore(store, path); err != nil {
		return err
	}

	return formatter().Format(cmd.OutOrStdout(), strategyPayload(spec))
}

func strategyPayload(spec upload.Specification) any {
	chunk := ""
	if spec.ChunkSize > 0 {
		chunk = strconv.Itoa(spec.ChunkSize)
	}

	if output.Format(outputFormat) == output.FormatTable {
		return output.Data{
			Headers: []string{"strategy", "chunk size"},
			Rows:    [][]string{{spec.Strategy.String(), chunk}},
		}
	}
	return struct {
		Strategy  string `json:"strategy" yaml:"strategy"`
		ChunkSize int    `json:"chunk_size,omitempty" yaml:"chunk_size,omitempty"`
	}{spec.Strategy.String(), spec.ChunkSize}
}
