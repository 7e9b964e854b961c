// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package trace wraps parsers with debug logging of every application.
//
// A traced parser returns exactly what the wrapped parser returns; tracing
// only observes. Output goes through commonlog at debug level, so it costs
// a level check when debug logging is disabled.
package trace

import (
	"strconv"

	"code.hybscloud.com/pcomb"
	"github.com/tliron/commonlog"
)

// LoggerName is the commonlog logger used by [Named].
const LoggerName = "pcomb.trace"

// headLen bounds the quoted input shown per event.
const headLen = 24

// Logger is the subset of commonlog.Logger used for tracing.
type Logger interface {
	AllowLevel(level commonlog.Level) bool
	Debugf(format string, args ...any)
}

// Named traces p under name using the package logger.
func Named[A any](name string, p pcomb.Parser[A]) pcomb.Parser[A] {
	return WithLogger(commonlog.GetLogger(LoggerName), name, p)
}

// WithLogger traces p under name using log.
// log is only read, so the traced parser stays safe for concurrent use
// when log is.
func WithLogger[A any](log Logger, name string, p pcomb.Parser[A]) pcomb.Parser[A] {
	return func(in string) (string, A, bool) {
		rest, a, ok := p(in)
		if log.AllowLevel(commonlog.Debug) {
			if ok {
				log.Debugf("%s %s ok consumed=%d", name, Head(in), pcomb.Consumed(in, rest))
			} else {
				log.Debugf("%s %s fail", name, Head(in))
			}
		}
		return rest, a, ok
	}
}

// Head returns the start of in, quoted, for log lines.
func Head(in string) string {
	if len(in) <= headLen {
		return strconv.Quote(in)
	}
	cut := headLen
	// Back up to a rune boundary so the quote does not show a split rune.
	for cut > 0 && in[cut]&0xC0 == 0x80 {
		cut--
	}
	return strconv.Quote(in[:cut]) + "..."
}
