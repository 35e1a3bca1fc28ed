package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopTracer_ReturnsUsableSpan(t *testing.T) {
	tr := NewNoop()
	ctx := context.Background()

	outCtx, span := tr.Start(ctx, "activities.signup", String("activity", "Chess Club"))
	require.NotNil(t, span)
	assert.Equal(t, ctx, outCtx)

	// All span operations are safe no-ops.
	span.SetAttributes(Bool("ok", true))
	span.AddEvent("roster_updated", Int("size", 3))
	span.End(errors.New("ignored"))
}

func TestOTelTracer_StartAndEnd(t *testing.T) {
	tr := NewOTel()

	ctx, span := tr.Start(context.Background(), "activities.list")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttributes(String("activity", "Chess Club"))
	span.AddEvent("snapshot_taken")
	span.End(nil)
}

func TestToOTelAttributes_Conversions(t *testing.T) {
	attrs := toOTelAttributes([]Attribute{
		String("name", "Chess Club"),
		Bool("seeded", true),
		Int("roster", 2),
		{Key: "weird", Value: struct{ X int }{1}},
	})

	require.Len(t, attrs, 4)
	assert.Equal(t, attribute.String("name", "Chess Club"), attrs[0])
	assert.Equal(t, attribute.Bool("seeded", true), attrs[1])
	assert.Equal(t, attribute.Int64("roster", 2), attrs[2])
	assert.Equal(t, attribute.STRING, attrs[3].Value.Type())
}
