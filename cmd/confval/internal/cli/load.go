package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tonylang/confval/confload"
	"github.com/tonylang/confval/print"
)

func newLoadCommand(logger *zap.SugaredLogger, flags *globalFlags) *cobra.Command {
	var paths []string
	var envPrefix string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load a layered file/env configuration and print its canonical form",
		Long: `load tries each --path in order, reading the first file that can be
parsed, then prints the resulting dictionary. Use --env-prefix to let
environment variables of the form PREFIX_KEY override file values, per
the layered precedence confload implements.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []confload.Option{confload.WithLogger(logger)}
			if len(paths) > 0 {
				opts = append(opts, confload.WithPaths(paths...))
			}
			if envPrefix != "" {
				opts = append(opts, confload.WithEnvPrefix(envPrefix))
			}
			loader := confload.New(opts...)
			v, err := loader.Load()
			if err != nil {
				return err
			}
			return print.Print(cmd.OutOrStdout(), v, flags.colorOption()...)
		},
	}
	cmd.Flags().StringSliceVar(&paths, "path", nil, "configuration file path, may be repeated; first match wins")
	cmd.Flags().StringVar(&envPrefix, "env-prefix", "", "environment variable prefix for overrides")
	return cmd
}
