package matcher

import (
	"regexp"

	"github.com/corazawaf/libinjection-go"
)

// Engine is the heuristic pattern matcher behind the security detector.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	xss           []*regexp.Regexp
	sql           []Signature
	noSQL         []Signature
	libinjection  bool
	sqlLibinLevel int
}

type Option func(*Engine)

// WithoutLibinjection restricts the engine to the signature sets.
func WithoutLibinjection() Option {
	return func(e *Engine) {
		e.libinjection = false
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		xss:           xssPatterns,
		sql:           sqlSignatures,
		noSQL:         noSQLSignatures,
		libinjection:  true,
		sqlLibinLevel: libinjectionSQLLevel,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) DetectXSS(text string) bool {
	for _, p := range e.xss {
		if p.MatchString(text) {
			return true
		}
	}
	if e.libinjection {
		return libinjection.IsXSS(text)
	}
	return false
}

func (e *Engine) DetectSQLInjection(text string, sensitivity int) bool {
	level := ClampSensitivity(sensitivity)
	if _, ok := match(e.sql, text, level); ok {
		return true
	}
	if e.libinjection && level >= e.sqlLibinLevel {
		injection, _ := libinjection.IsSQLi(text)
		return injection
	}
	return false
}

func (e *Engine) DetectNoSQLInjection(text string, sensitivity int) bool {
	_, ok := match(e.noSQL, text, ClampSensitivity(sensitivity))
	return ok
}

func ClampSensitivity(sensitivity int) int {
	if sensitivity < MinSensitivity {
		return MinSensitivity
	}
	if sensitivity > MaxSensitivity {
		return MaxSensitivity
	}
	return sensitivity
}

func match(signatures []Signature, text string, level int) (string, bool) {
	for _, s := range signatures {
		if s.Level > level {
			continue
		}
		if s.Pattern.MatchString(text) {
			return s.Name, true
		}
	}
	return "", false
}
