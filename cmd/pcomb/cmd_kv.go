// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"unicode"

	"code.hybscloud.com/pcomb"
	"github.com/spf13/cobra"
)

func newKVCmd(flags *globalFlags) *cobra.Command {
	var get string

	cmd := &cobra.Command{
		Use:   "kv <text|->",
		Short: "Parse key=value records separated by ';' or newlines",
		Long: `Kv parses key=value records separated by ';' or line feeds and prints
them as tab-separated lines. Values may be double-quoted to contain
separators. Input after a record that is not a separator is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			records, err := runKV(chomp(in), flags.trace)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if get != "" {
				for _, r := range records {
					if r.Fst == get {
						fmt.Fprintln(out, r.Snd)
						return nil
					}
				}
				return fmt.Errorf("key %q: %w", get, ErrNoMatch)
			}
			for _, r := range records {
				fmt.Fprintf(out, "%s\t%s\n", r.Fst, r.Snd)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&get, "get", "", "print only the value of the first record with this key")

	return cmd
}

func isKeyRune(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isValueRune(r rune) bool { return r != ';' && r != '\n' }

// kvGrammar builds the record list parser. Keys and values are copied out
// of the input, blanks around keys and values are dropped. A value in double
// quotes may contain ';' and line feeds.
func kvGrammar(tr bool) pcomb.Parser[[]pcomb.Pair[string, string]] {
	hspace := pcomb.Characters(isHSpace)
	key := traced(tr, "key", pcomb.Owned(pcomb.Between(hspace, pcomb.NotEmpty(pcomb.Characters(isKeyRune)), hspace)))
	quote := pcomb.Literal(`"`)
	quoted := pcomb.Between(hspace, pcomb.Between(quote, pcomb.ScanTo('"'), quote), hspace)
	bare := pcomb.Map(pcomb.Characters(isValueRune), strings.TrimSpace)
	value := traced(tr, "value", pcomb.Owned(pcomb.OneOf(quoted, bare)))
	record := pcomb.Map(pcomb.Seq3(key, pcomb.Literal("="), value), func(t pcomb.Triple[string, pcomb.Unit, string]) pcomb.Pair[string, string] {
		return pcomb.Pair[string, string]{Fst: t.Fst, Snd: t.Thd}
	})
	recSep := pcomb.OneOf(pcomb.Literal(";"), pcomb.NewLine)
	return traced(tr, "records", pcomb.SepBy(traced(tr, "record", record), recSep))
}

func runKV(in string, tr bool) ([]pcomb.Pair[string, string], error) {
	records := kvGrammar(tr)
	if _, v, ok := pcomb.Complete(records).Parse(in); ok {
		return v, nil
	}
	rest, _, ok := records.Parse(in)
	if !ok {
		return nil, parseErr(ErrNoMatch, in, in)
	}
	return nil, parseErr(ErrTrailing, in, rest)
}
