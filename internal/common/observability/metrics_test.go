package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoop_RecordAndSpan(t *testing.T) {
	o := NewNoop()
	defer o.Shutdown()

	ctx, span := o.StartSpan(context.Background(), "component.process", attribute.String("component", "a"))
	assert.NotNil(t, ctx)
	span.End()

	o.RecordComponent(ctx, "written", 5*time.Millisecond)
}

func TestZeroValue_IsSafe(t *testing.T) {
	var o Observability
	_, span := o.StartSpan(context.Background(), "registry.list")
	span.End()
	o.RecordComponent(context.Background(), "skipped", 0)
	o.Shutdown()
}
