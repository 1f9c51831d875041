package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-schema/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
	msgs   []string
}

func (r *recordingLogger) Trace(msg string, _ ...any) { r.msgs = append(r.msgs, msg) }
func (r *recordingLogger) Debug(msg string, _ ...any) { r.msgs = append(r.msgs, msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.msgs = append(r.msgs, msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.msgs = append(r.msgs, msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.msgs = append(r.msgs, msg) }
func (r *recordingLogger) Fatal(msg string, _ ...any) { r.msgs = append(r.msgs, msg) }

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

type recordingProvider struct {
	requested []string
	logger    *recordingLogger
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return p.logger
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}
	logger := ModuleLogger(provider, "")
	if logger == nil {
		t.Fatalf("expected logger")
	}
	if len(provider.requested) != 1 || provider.requested[0] != "schema" {
		t.Fatalf("expected root module requested, got %v", provider.requested)
	}
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}
	logger := ModuleLogger(provider, "schema.validate")

	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected fields applied through FieldsLogger")
	}
	if rec.fields["module"] != "schema.validate" {
		t.Fatalf("expected module field, got %v", rec.fields)
	}
}

func TestModuleLoggerWithoutProviderIsNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "schema.check")
	if logger == nil {
		t.Fatalf("expected no-op logger, got nil")
	}
	// Must not panic.
	logger.Info("ignored")
	logger.WithContext(context.Background()).Error("also ignored")
}

func TestWithFieldsSkipsNonFieldsLoggers(t *testing.T) {
	base := NoOp()
	if got := WithFields(base, map[string]any{"a": 1}); got == nil {
		t.Fatalf("expected logger back")
	}
	if got := WithFields(nil, map[string]any{"a": 1}); got != nil {
		t.Fatalf("expected nil passthrough")
	}
}

func TestScopedHelpers(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}
	ValidateLogger(provider)
	InferLogger(provider)
	CheckLogger(provider)
	CLILogger(provider)

	want := []string{"schema.validate", "schema.infer", "schema.check", "schema.cli"}
	if len(provider.requested) != len(want) {
		t.Fatalf("expected %v, got %v", want, provider.requested)
	}
	for i := range want {
		if provider.requested[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, provider.requested)
		}
	}
}
