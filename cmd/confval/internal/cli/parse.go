package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tonylang/confval/parse"
	"github.com/tonylang/confval/print"
	"github.com/tonylang/confval/value"
)

func newParseCommand(logger *zap.SugaredLogger, flags *globalFlags) *cobra.Command {
	var shape string
	listFlag := newShortcutValue(parse.ShapeList)

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse a value and print its canonical form",
		Long: `Parse a value from the confval text grammar and print it back in
canonical form. By default the strict grammar (spec §4.1) is used on the
positional argument; pass --shape to accept the relaxed CLI-shortcut
grammar instead (spec §4.2). --list demonstrates binding that same
shortcut grammar directly to a flag, the way a real confval-consuming
command would declare "--tag a,b,c" without requiring bracket syntax.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("list") {
				return print.Print(cmd.OutOrStdout(), listFlag.Value(), flags.colorOption()...)
			}
			if len(args) != 1 {
				return fmt.Errorf("parse requires a positional value unless --list is given")
			}
			v, err := parseWithShape(args[0], shape)
			if err != nil {
				logger.Debugw("parse failed", "shape", shape, "error", err)
				return err
			}
			return print.Print(cmd.OutOrStdout(), v, flags.colorOption()...)
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "", `CLI-shortcut target shape: "list", "string-list", or "nested-list"`)
	cmd.Flags().Var(listFlag, "list", "parse the value via the list-shortcut grammar (e.g. a,b,c)")
	return cmd
}

func parseWithShape(text, shape string) (value.Value, error) {
	s, err := shapeFromFlag(shape)
	if err != nil {
		return value.Value{}, err
	}
	if s == parse.ShapeAny {
		return parse.Parse(text)
	}
	return parse.ParseCLI(text, s)
}

func shapeFromFlag(shape string) (parse.TargetShape, error) {
	switch shape {
	case "":
		return parse.ShapeAny, nil
	case "list":
		return parse.ShapeList, nil
	case "string-list":
		return parse.ShapeStringList, nil
	case "nested-list":
		return parse.ShapeNestedList, nil
	default:
		return parse.ShapeAny, fmt.Errorf("unknown --shape %q", shape)
	}
}
