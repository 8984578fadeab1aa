package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osmkit/changeset/internal/cmd/output"
	"github.com/osmkit/changeset/pkg/constants"
	"github.com/osmkit/changeset/pkg/validate"
)

var (
	validateComment string
	validateSource  string
)

// validateResult is one validation verdict in command output.
type validateResult struct {
	Field   string `json:"field" yaml:"field"`
	Value   string `json:"value" yaml:"value"`
	Status  string `json:"status" yaml:"status"`
	Problem string `json:"problem,omitempty" yaml:"problem,omitempty"`
}

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate upload comment and source values",
	Long: `Validate an upload comment and source against the term rules in the
preference file, and flag comments that look too short to describe an edit.

Term rules live under upload.comment.* and upload.source.* preference keys:
mandatory-terms must all appear in the value, forbidden-terms must not,
unless an exception-term contains them.

Examples:
  changeset validate --comment "Added a playground" --source survey
  changeset validate --comment "wip"`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateComment, "comment", "", "upload comment to validate")
	validateCmd.Flags().StringVar(&validateSource, "source", "", "upload source to validate")
	validateCmd.MarkFlagsOneRequired("comment", "source")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	var results []validateResult
	failed := false

	if cmd.Flags().Changed("comment") {
		rule := validate.LoadRule(store, constants.CommentValidationPrefix, validate.Rule{Subject: "comment"})
		result := verdict("comment", validateComment, rule.Validate(validateComment))
		if result.Status == "invalid" {
			failed = true
		} else if validate.CommentTooShort(validateComment) {
			result.Status = "warning"
			result.Problem = "comment looks too short to describe the edit"
		}
		results = append(results, result)
	}

	if cmd.Flags().Changed("source") {
		rule := validate.LoadRule(store, constants.SourceValidationPrefix, validate.Rule{Subject: "source"})
		result := verdict("source", validateSource, rule.Validate(validateSource))
		if result.Status == "invalid" {
			failed = true
		}
		results = append(results, result)
	}

	var payload any = results
	if output.Format(outputFormat) == output.FormatTable {
		data := output.Data{Headers: []string{"field", "value", "status", "problem"}}
		for _, r := range results {
			data.Rows = append(data.Rows, []string{r.Field, r.Value, r.Status, r.Problem})
		}
		payload = data
	}

	if err := formatter().Format(cmd.OutOrStdout(), payload); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func verdict(field, value string, err error) validateResult {
	result := validateResult{Field: field, Value: value, Status: "ok"}
	if err != nil {
		result.Status = "invalid"
		result.Problem = err.Error()
	}
	return result
}
