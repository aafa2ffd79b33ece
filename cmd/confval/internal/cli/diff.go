package cli

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tonylang/confval/coerce"
	"github.com/tonylang/confval/parse"
)

func newDiffCommand(logger *zap.SugaredLogger, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Parse two values and print a character-level diff of their canonical forms",
		Long: `diff parses its two arguments with the strict grammar, renders each
through the canonical to_string form (coerce.ToString) and prints a
character-level diff between them, useful for spotting exactly what a
configuration override changes.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parse.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parsing first argument: %w", err)
			}
			b, err := parse.Parse(args[1])
			if err != nil {
				return fmt.Errorf("parsing second argument: %w", err)
			}

			left, right := coerce.ToString(a), coerce.ToString(b)
			if left == right {
				logger.Debug("values are identical after canonicalization")
				fmt.Fprintln(cmd.OutOrStdout(), "(no difference)")
				return nil
			}

			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(left, right, false)
			fmt.Fprintln(cmd.OutOrStdout(), dmp.DiffPrettyText(diffs))
			return nil
		},
	}
	return cmd
}
