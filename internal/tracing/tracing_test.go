package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig bool

func (c testConfig) Enabled() bool       { return bool(c) }
func (c testConfig) ServiceName() string { return "expense-tracker-test" }

func Test_OnDisabled_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(testConfig(false))
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}
