// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command pcomb parses text with grammars built from pcomb combinators.
package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/tliron/kutil/util"

	_ "github.com/tliron/commonlog/simple"
)

type globalFlags struct {
	verbose int
	trace   bool
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "pcomb",
		Short:         "Parse text with combinator grammars",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := flags.verbose
			if flags.trace {
				// Trace lines are logged at debug level.
				verbosity = max(verbosity, 2)
			}
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&flags.trace, "trace", false, "log every grammar rule application")

	rootCmd.AddCommand(newSplitCmd(&flags))
	rootCmd.AddCommand(newKVCmd(&flags))
	rootCmd.AddCommand(newSemverCmd(&flags))

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("error:", err)
		// Exit runs the exit hooks that flush the buffered log backend.
		util.Exit(1)
	}
	util.Exit(0)
}
