// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"code.hybscloud.com/pcomb"
	"code.hybscloud.com/pcomb/trace"
	"github.com/spf13/cobra"
)

var (
	// ErrNoMatch reports that a grammar did not match its input.
	ErrNoMatch = errors.New("no match")
	// ErrTrailing reports input left over after a complete parse was required.
	ErrTrailing = errors.New("trailing input")
)

// readInput returns the text argument, or standard input when it is "-".
func readInput(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

// traced wraps p with trace logging when on is set.
func traced[A any](on bool, name string, p pcomb.Parser[A]) pcomb.Parser[A] {
	if !on {
		return p
	}
	return trace.Named(name, p)
}

// parseErr describes where in full a parse stopped.
func parseErr(err error, full, rest string) error {
	offset := pcomb.Consumed(full, rest)
	return fmt.Errorf("%w at offset %d: %s", err, offset, trace.Head(rest))
}

// isHSpace reports horizontal whitespace.
func isHSpace(r rune) bool { return r == ' ' || r == '\t' }

// chomp drops one final line ending, as left by shells and editors.
func chomp(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
