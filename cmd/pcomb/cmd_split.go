// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"code.hybscloud.com/pcomb"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var splitLog = commonlog.GetLogger("pcomb.split")

func newSplitCmd(flags *globalFlags) *cobra.Command {
	var sep string
	var strict bool

	cmd := &cobra.Command{
		Use:   "split <text|->",
		Short: "Split a separator-delimited list of non-empty items",
		Long: `Split parses one or more non-empty items separated by --sep on the
first line of the input and prints one item per line. An empty list, an
empty item or a trailing separator is an error. With --strict, input after
the list is an error too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			items, err := runSplit(chomp(in), sep, strict, flags.trace)
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sep, "sep", "s", ",", "item separator")
	cmd.Flags().BoolVar(&strict, "strict", false, "require the list to span the whole input")

	return cmd
}

// splitGrammar builds the list parser for sep. Items end at sep or a line feed.
func splitGrammar(sep string, tr bool) pcomb.Parser[[]string] {
	delim := traced(tr, "sep", pcomb.Literal(sep))
	anyRune := pcomb.Satisfy(func(rune) bool { return true })
	stop := pcomb.OneOf(pcomb.Literal(sep), pcomb.Literal("\r\n"), pcomb.NewLine)
	item := traced(tr, "item", pcomb.NotEmpty(pcomb.Recognize(pcomb.Repeated(pcomb.Preceded(pcomb.Not(stop), anyRune)))))
	return traced(tr, "list", pcomb.SepBy(item, delim))
}

func runSplit(in, sep string, strict, tr bool) ([]string, error) {
	if sep == "" {
		return nil, errors.New("separator must not be empty")
	}
	rest, items, ok := splitGrammar(sep, tr).Parse(in)
	if !ok {
		return nil, parseErr(ErrNoMatch, in, in)
	}
	if _, _, atEnd := pcomb.End(rest); strict && !atEnd {
		return nil, parseErr(ErrTrailing, in, rest)
	}
	splitLog.Infof("split %d items, %d bytes left", len(items), len(rest))
	return items, nil
}
