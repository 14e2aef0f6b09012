package exercise

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestReporter(t *testing.T) (*Reporter, *bytes.Buffer, *observer.ObservedLogs) {
	t.Helper()
	var buf bytes.Buffer
	core, logs := observer.New(zapcore.DebugLevel)
	return NewReporter(NewPrinter(&buf, ColorNever), zap.New(core)), &buf, logs
}

func TestReporter_CheckPassed(t *testing.T) {
	r, buf, logs := newTestReporter(t)

	ok := r.Check("score is 10", true)

	assert.True(t, ok)
	assert.Equal(t, "Assertion passed\n", buf.String())
	assert.Equal(t, 1, r.Passed())
	assert.Equal(t, 0, r.Failed())
	assert.NoError(t, r.Err())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
}

func TestReporter_CheckFailedIsNotFatal(t *testing.T) {
	r, buf, logs := newTestReporter(t)

	assert.False(t, r.Check("first", false))
	assert.True(t, r.Check("second", true))

	assert.Equal(t, "Assertion failed\nAssertion passed\n", buf.String())
	assert.Equal(t, 1, r.Passed())
	assert.Equal(t, 1, r.Failed())

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "first", warnings[0].ContextMap()["check"])
}

func TestReporter_CheckAll(t *testing.T) {
	r, buf, _ := newTestReporter(t)

	assert.True(t, r.CheckAll("all true", true, true, true))
	assert.False(t, r.CheckAll("one false", true, false, true))
	assert.True(t, r.CheckAll("empty group"))

	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
	assert.Equal(t, 2, r.Passed())
	assert.Equal(t, 1, r.Failed())
}

func TestReporter_Err(t *testing.T) {
	r, _, _ := newTestReporter(t)
	r.Check("a", false)
	r.Check("b", true)
	r.Check("c", false)

	err := r.Err()
	require.Error(t, err)

	var assertionErr *AssertionError
	require.True(t, errors.As(err, &assertionErr))
	assert.Equal(t, []string{"a", "c"}, assertionErr.Failed)
	assert.Contains(t, err.Error(), "2 assertion(s) failed")
}

func TestReporter_NilLogger(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(NewPrinter(&buf, ColorNever), nil)

	r.Check("works without a logger", true)

	assert.NotNil(t, r.Logger())
	assert.Equal(t, "Assertion passed\n", buf.String())
}

func TestReporter_ColoredOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(NewPrinter(&buf, ColorAlways), zap.NewNop())

	r.Check("passes", true)
	r.Check("fails", false)

	assert.Equal(t, Green+"Assertion passed"+Reset+"\n"+Red+"Assertion failed"+Reset+"\n", buf.String())
}
