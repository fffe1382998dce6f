package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTelemetry_Disabled(t *testing.T) {
	shutdown, err := InitTelemetry(context.Background(), false, "test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(context.Background()))
}

func TestTracer_NoopSpans(t *testing.T) {
	// Без провайдера спаны создаются, но никуда не экспортируются
	_, span := Tracer().Start(context.Background(), "test")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid())
}
