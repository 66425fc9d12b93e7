package build

import (
	"github.com/npillmayer/mathbox/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// Observer receives diagnostics from a Builder.
type Observer interface {
	MissingMetrics(value string, face font.Face)
}

// ObserverFunc is an adapter to use an ordinary function as an Observer.
type ObserverFunc func(value string, face font.Face)

// MissingMetrics is part of interface Observer.
func (f ObserverFunc) MissingMetrics(value string, face font.Face) {
	f(value, face)
}

// TraceObserver creates an observer logging diagnostics to a tracer.
func TraceObserver(t tracing.Trace) Observer {
	return traceObserver{t}
}

type traceObserver struct {
	t tracing.Trace
}

func (to traceObserver) MissingMetrics(value string, face font.Face) {
	if to.t == nil {
		return
	}
	to.t.Errorf("no character metrics for %q in font %s", value, face)
}

type nullObserver struct{}

func (nullObserver) MissingMetrics(string, font.Face) {}
