package security

import (
	"context"
	"strings"

	"github.com/NeuralTrust/Marketplace/pkg/config"
	"github.com/NeuralTrust/Marketplace/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

// Matcher is the heuristic capability the detector delegates to.
type Matcher interface {
	DetectXSS(text string) bool
	DetectSQLInjection(text string, sensitivity int) bool
	DetectNoSQLInjection(text string, sensitivity int) bool
}

type check struct {
	name string
	run  func(ctx context.Context, value any) error
}

type Detector struct {
	cfg     config.SecurityConfig
	matcher Matcher
	logger  *logrus.Logger
	checks  []check
}

func NewDetector(cfg config.SecurityConfig, matcher Matcher, logger *logrus.Logger) *Detector {
	d := &Detector{
		cfg:     cfg,
		matcher: matcher,
		logger:  logger,
	}
	// Precedence is fixed: a value carrying both markup and SQL reports as XSS.
	d.checks = []check{
		{name: "xss", run: d.DetectXSS},
		{name: "sql", run: func(ctx context.Context, value any) error {
			return d.DetectSQLInjection(ctx, value)
		}},
		{name: "nosql", run: func(ctx context.Context, value any) error {
			return d.DetectNoSQLInjection(ctx, value)
		}},
	}
	return d
}

func (d *Detector) Clear(value any) any {
	return Clear(value, d.cfg)
}

func (d *Detector) ShouldSkipValidation(ctx context.Context, value any, check string) bool {
	skip, reason := ShouldSkipValidation(value)
	if skip {
		d.logger.WithContext(ctx).WithFields(logrus.Fields{
			"check":  check,
			"reason": reason,
		}).Info("skipping injection validation")
	}
	return skip
}

func (d *Detector) DetectXSS(ctx context.Context, value any) error {
	if d.ShouldSkipValidation(ctx, value, "xss") {
		return nil
	}
	text := renderText(d.Clear(value))
	if d.matcher.DetectXSS(text) {
		return d.reject(ctx, KindXSS)
	}
	return nil
}

// DetectSQLInjection uses the configured SQL sensitivity unless one is given.
func (d *Detector) DetectSQLInjection(ctx context.Context, value any, sensitivity ...int) error {
	level := d.cfg.SQLSensitivity
	if len(sensitivity) > 0 {
		level = sensitivity[0]
	}
	return d.detectWithFallback(ctx, value, level, KindSQL, d.matcher.DetectSQLInjection)
}

// DetectNoSQLInjection uses the configured NoSQL sensitivity unless one is given.
func (d *Detector) DetectNoSQLInjection(ctx context.Context, value any, sensitivity ...int) error {
	level := d.cfg.NoSQLSensitivity
	if len(sensitivity) > 0 {
		level = sensitivity[0]
	}
	return d.detectWithFallback(ctx, value, level, KindNoSQL, d.matcher.DetectNoSQLInjection)
}

// DetectInjections runs every check in order and stops at the first hit.
func (d *Detector) DetectInjections(ctx context.Context, value any) error {
	for _, c := range d.checks {
		if err := c.run(ctx, value); err != nil {
			return err
		}
	}
	return nil
}

func (d *Detector) detectWithFallback(
	ctx context.Context,
	value any,
	sensitivity int,
	kind Kind,
	detect func(text string, sensitivity int) bool,
) error {
	if d.ShouldSkipValidation(ctx, value, kind.String()) {
		return nil
	}
	text := renderText(d.Clear(value))
	if detect(text, sensitivity) {
		return d.reject(ctx, kind)
	}
	// Some signatures are case-sensitive.
	if detect(strings.ToLower(text), sensitivity) {
		return d.reject(ctx, kind)
	}
	return nil
}

func (d *Detector) reject(ctx context.Context, kind Kind) error {
	prometheus.SecurityDetections.WithLabelValues(kind.String()).Inc()
	d.logger.WithContext(ctx).WithField("kind", kind.String()).Warn("injection attempt rejected")
	return NewError(kind)
}
