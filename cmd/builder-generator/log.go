package main

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"

	"builder-generator/internal/diagnostic"
)

// logrusSink lets library code log through logr while the command owns a
// logrus logger. V(0) maps to Info and anything more verbose to Debug.
type logrusSink struct {
	entry *logrus.Entry
	name  string
}

func newLogger(l *logrus.Logger) logr.Logger {
	return logr.New(&logrusSink{entry: logrus.NewEntry(l)})
}

func (s *logrusSink) Init(logr.RuntimeInfo) {}

func (s *logrusSink) Enabled(level int) bool {
	if level > 0 {
		return s.entry.Logger.IsLevelEnabled(logrus.DebugLevel)
	}

	return s.entry.Logger.IsLevelEnabled(logrus.InfoLevel)
}

func (s *logrusSink) Info(level int, msg string, kv ...interface{}) {
	entry := s.with(kv)
	if level > 0 {
		entry.Debug(msg)
		return
	}

	entry.Info(msg)
}

func (s *logrusSink) Error(err error, msg string, kv ...interface{}) {
	s.with(kv).WithError(err).Error(msg)
}

func (s *logrusSink) WithValues(kv ...interface{}) logr.LogSink {
	return &logrusSink{entry: s.with(kv), name: s.name}
}

func (s *logrusSink) WithName(name string) logr.LogSink {
	if s.name != "" {
		name = s.name + "/" + name
	}

	return &logrusSink{entry: s.entry.WithField("logger", name), name: name}
}

func (s *logrusSink) with(kv []interface{}) *logrus.Entry {
	if len(kv) == 0 {
		return s.entry
	}

	fields := make(logrus.Fields, len(kv)/2)

	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}

		fields[key] = kv[i+1]
	}

	return s.entry.WithFields(fields)
}

// reporter logs diagnostics and counts errors.
type reporter struct {
	log    *logrus.Logger
	errors int
}

func (r *reporter) Report(d diagnostic.Diagnostic) {
	fields := logrus.Fields{}
	if d.Code != "" {
		fields["code"] = d.Code
	}

	if d.TypeName != "" {
		fields["type"] = d.TypeName
	}

	if d.Property != "" {
		fields["property"] = d.Property
	}

	msg := d.Message
	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	entry := r.log.WithFields(fields)

	switch d.Severity {
	case diagnostic.DiagnosticError:
		r.errors++
		entry.Error(msg)
	case diagnostic.DiagnosticWarning:
		entry.Warn(msg)
	default:
		entry.Debug(msg)
	}
}

func (r *reporter) report(diags *diagnostic.Diagnostics) {
	if diags != nil {
		diags.ReplayTo(r)
	}
}
