// Command confval exercises the confval library end to end: parsing a
// value from the CLI-shortcut grammar, printing it canonically (with
// optional color), diffing two values, and loading a layered
// file/env configuration. Grounded on the cobra + pflag CLI shape used
// elsewhere in the retrieved pack (z5labs-bedrock, euiko-tooyoul-oss)
// rather than the teacher's own thinner scott-cotton/cli, since this
// tool's flag surface (custom list/string-list flag values, global
// --color) fits cobra's richer flag binding more directly.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tonylang/confval/cmd/confval/internal/cli"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	root := cli.NewRootCommand(logger.Sugar())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
