// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tracing wraps span creation so the hashing code can be traced
// without depending on OpenTelemetry. The default tracer is a no-op; build
// with -tags=otel and call InitFromEnv to export spans over OTLP.
package tracing

import (
	"context"
	"sync/atomic"
)

// Span is one timed operation.
type Span interface {
	// SetAttribute attaches key=value metadata to the span.
	SetAttribute(key string, value interface{})
	// RecordError marks the span as failed with err. nil is ignored.
	RecordError(err error)
	// End finishes the span.
	End()
}

// Tracer starts spans.
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}

type tracerHolder struct{ t Tracer }

var globalTracer atomic.Pointer[tracerHolder]

func init() {
	globalTracer.Store(&tracerHolder{t: NoopTracer{}})
}

// SetTracer replaces the global tracer. nil restores the no-op tracer.
func SetTracer(t Tracer) {
	if t == nil {
		t = NoopTracer{}
	}
	globalTracer.Store(&tracerHolder{t: t})
}

// GetTracer returns the current global tracer (never nil).
func GetTracer() Tracer {
	return globalTracer.Load().t
}

// Start starts a span on the global tracer.
func Start(ctx context.Context, name string) (context.Context, Span) {
	return GetTracer().Start(ctx, name)
}

// Enabled reports whether a real tracer is installed.
func Enabled() bool {
	_, noop := GetTracer().(NoopTracer)
	return !noop
}

// Run executes fn inside a span named name carrying attrs. The error
// returned by fn is recorded on the span and passed through. With the
// no-op tracer fn is called directly.
func Run(ctx context.Context, name string, attrs map[string]interface{}, fn func(context.Context) error) error {
	if !Enabled() {
		return fn(ctx)
	}
	ctx, span := Start(ctx, name)
	defer span.End()
	for k, v := range attrs {
		span.SetAttribute(k, v)
	}
	err := fn(ctx)
	span.RecordError(err)
	return err
}
