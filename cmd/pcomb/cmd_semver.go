// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"code.hybscloud.com/pcomb"
	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

// ErrMismatch reports that the combinator grammar and the semver library
// disagree about a version.
var ErrMismatch = errors.New("grammar and semver library disagree")

var semverLog = commonlog.GetLogger("pcomb.semver")

// version is a semantic version as recognized by versionGrammar.
type version struct {
	Major, Minor, Patch uint64
	Pre                 []string
	Build               []string
}

func newSemverCmd(flags *globalFlags) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "semver <version>...",
		Short: "Parse semantic versions and print them in precedence order",
		Long: `Semver parses each argument as MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]
with an optional leading 'v', following Semantic Versioning 2.0.0. Each
version is checked against github.com/Masterminds/semver, then all are
printed sorted by precedence.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sorted, err := runSemver(args, check, flags.trace)
			if err != nil {
				return err
			}
			for _, v := range sorted {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", true, "compare each parsed component with the semver library")

	return cmd
}

func isAlnumHyphen(r rune) bool {
	return r == '-' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func allDigits(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}

// versionGrammar builds a strict Semantic Versioning 2.0.0 parser.
func versionGrammar(tr bool) pcomb.Parser[version] {
	digits := pcomb.NotEmpty(pcomb.Characters(func(r rune) bool { return r >= '0' && r <= '9' }))

	// Numeric parts have no leading zeros and fit in uint64.
	numeric := pcomb.Bind(digits, func(s string) pcomb.Parser[uint64] {
		if len(s) > 1 && s[0] == '0' {
			return pcomb.Fail[uint64]()
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return pcomb.Fail[uint64]()
		}
		return pcomb.Return(n)
	})

	ident := pcomb.NotEmpty(pcomb.Characters(isAlnumHyphen))
	// Numeric pre-release identifiers have no leading zeros either.
	preIdent := pcomb.Bind(ident, func(s string) pcomb.Parser[string] {
		if len(s) > 1 && s[0] == '0' && allDigits(s) {
			return pcomb.Fail[string]()
		}
		return pcomb.Return(s)
	})

	dot := pcomb.Literal(".")
	core := traced(tr, "core", pcomb.Seq3(
		numeric,
		pcomb.Preceded(dot, numeric),
		pcomb.Preceded(dot, numeric),
	))
	pre := traced(tr, "pre", pcomb.Optional(pcomb.Preceded(pcomb.Literal("-"), pcomb.SepBy(preIdent, dot))))
	build := traced(tr, "build", pcomb.Optional(pcomb.Preceded(pcomb.Literal("+"), pcomb.SepBy(ident, dot))))

	full := pcomb.Seq4(pcomb.Optional(pcomb.Literal("v")), core, pre, build)
	return traced(tr, "version", pcomb.Map(pcomb.Complete(full), func(q pcomb.Quad[pcomb.Option[pcomb.Unit], pcomb.Triple[uint64, uint64, uint64], pcomb.Option[[]string], pcomb.Option[[]string]]) version {
		return version{
			Major: q.Snd.Fst,
			Minor: q.Snd.Snd,
			Patch: q.Snd.Thd,
			Pre:   q.Thd.GetOr(nil),
			Build: q.Fth.GetOr(nil),
		}
	}))
}

// checkVersion compares v with the semver library's reading of s.
func checkVersion(s string, v version, lib *semver.Version) error {
	switch {
	case lib.Major() != v.Major, lib.Minor() != v.Minor, lib.Patch() != v.Patch:
		return fmt.Errorf("%s: core %d.%d.%d vs %d.%d.%d: %w", s, v.Major, v.Minor, v.Patch, lib.Major(), lib.Minor(), lib.Patch(), ErrMismatch)
	case lib.Prerelease() != strings.Join(v.Pre, "."):
		return fmt.Errorf("%s: pre-release %q vs %q: %w", s, strings.Join(v.Pre, "."), lib.Prerelease(), ErrMismatch)
	case lib.Metadata() != strings.Join(v.Build, "."):
		return fmt.Errorf("%s: build %q vs %q: %w", s, strings.Join(v.Build, "."), lib.Metadata(), ErrMismatch)
	}
	return nil
}

// runSemver parses args and returns them sorted by precedence. Versions of
// equal precedence keep their argument order.
func runSemver(args []string, check, tr bool) ([]string, error) {
	type entry struct {
		arg string
		lib *semver.Version
	}

	grammar := versionGrammar(tr)
	entries := make([]entry, 0, len(args))
	for _, s := range args {
		_, v, ok := grammar.Parse(s)
		if !ok {
			return nil, fmt.Errorf("%s: %w", s, ErrNoMatch)
		}
		lib, err := semver.StrictNewVersion(strings.TrimPrefix(s, "v"))
		if err != nil {
			return nil, fmt.Errorf("%s: semver library rejects it (%v): %w", s, err, ErrMismatch)
		}
		if check {
			if err := checkVersion(s, v, lib); err != nil {
				return nil, err
			}
		}
		semverLog.Debugf("%s: major=%d minor=%d patch=%d pre=%q build=%q", s, v.Major, v.Minor, v.Patch, v.Pre, v.Build)
		entries = append(entries, entry{arg: s, lib: lib})
	}

	slices.SortStableFunc(entries, func(a, b entry) int { return a.lib.Compare(b.lib) })
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.arg
	}
	return out, nil
}
