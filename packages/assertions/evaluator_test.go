package assertions

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "time/tzdata"

	hitassert "github.com/abdul-hamid-achik/hitassert/packages/assert"
	"github.com/abdul-hamid-achik/hitassert/packages/builtin"
	"github.com/abdul-hamid-achik/hitassert/packages/cases"
)

func newEvaluator(t *testing.T, opts ...EvaluatorOption) *Evaluator {
	t.Helper()
	dir := t.TempDir()
	payload := `{"order":{"createdAt":"2000-01-01T23:50:59.999999999Z","shippedAt":null}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "order.json"), []byte(payload), 0644))

	clock := func() time.Time { return time.Date(2000, 1, 1, 23, 51, 30, 0, time.UTC) }
	resolver := cases.NewResolver(dir, builtin.NewRegistry(builtin.WithClock(clock)))
	return NewEvaluator(resolver, opts...)
}

func literal(s string) cases.Value {
	return cases.Value{Literal: s}
}

func TestEvaluator_Checks(t *testing.T) {
	e := newEvaluator(t)

	tests := []struct {
		name      string
		subject   cases.Value
		reference cases.Value
		check     cases.Check
		passed    bool
	}{
		{"equal same instant other zone", literal("2000-01-02T00:51:00+01:00"), literal("2000-01-01T23:51:00Z"), cases.CheckEqual, true},
		{"equal differs", literal("2000-01-01T23:51:00Z"), literal("2000-01-01T23:51:01Z"), cases.CheckEqual, false},
		{"not equal", literal("2000-01-01T23:51:00Z"), literal("2000-01-01T23:51:01Z"), cases.CheckNotEqual, true},
		{"before", literal("2000-01-01T23:50:00Z"), literal("now()"), cases.CheckBefore, true},
		{"before equal instant", literal("2000-01-01T23:51:30Z"), literal("now()"), cases.CheckBefore, false},
		{"before or equal", literal("2000-01-01T23:51:30Z"), literal("now()"), cases.CheckBeforeOrEqual, true},
		{"after", literal("now(+1s)"), literal("now()"), cases.CheckAfter, true},
		{"after or equal", literal("now()"), literal("now()"), cases.CheckAfterOrEqual, true},
		{"ignoring nanos", literal("2000-01-01T23:51:00.456Z"), literal("2000-01-01T23:51:00.123Z"), cases.CheckEqualIgnoringNanos, true},
		{"ignoring nanos across second", literal("2000-01-01T00:00:01Z"), literal("2000-01-01T00:00:00.999999999Z"), cases.CheckEqualIgnoringNanos, false},
		{"ignoring seconds", literal("2000-01-01T23:51:00Z"), literal("2000-01-01T23:51:59Z"), cases.CheckEqualIgnoringSeconds, true},
		{"ignoring seconds across minute", literal("2000-01-01T23:51:00Z"), literal("2000-01-01T23:50:59.999999999Z"), cases.CheckEqualIgnoringSeconds, false},
		{"ignoring minutes", literal("2000-01-01T23:01:00Z"), literal("2000-01-01T23:59:00Z"), cases.CheckEqualIgnoringMinutes, true},
		{"ignoring hours", literal("2000-01-01T00:00:00Z"), literal("2000-01-01T23:59:59Z"), cases.CheckEqualIgnoringHours, true},
		{"payload", cases.Value{File: "order.json", Path: "order.createdAt"}, literal("2000-01-01T23:50:00Z"), cases.CheckEqualIgnoringSeconds, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Evaluate(&cases.Case{
				Name:      tt.name,
				Subject:   tt.subject,
				Reference: tt.reference,
				Check:     tt.check,
			})
			assert.Equal(t, tt.passed, result.Passed, result.Message)
			assert.Equal(t, string(tt.check), result.Operator)
			if tt.passed {
				assert.Empty(t, result.Kind)
				assert.Empty(t, result.Message)
			} else {
				assert.Equal(t, "failure", result.Kind)
				assert.NotEmpty(t, result.Message)
			}
		})
	}
}

func TestEvaluator_FailureMessage(t *testing.T) {
	e := newEvaluator(t)

	result := e.Evaluate(&cases.Case{
		Subject:   literal("2000-01-01T23:51:00Z"),
		Reference: literal("2000-01-01T23:50:59.999999999Z"),
		Check:     cases.CheckEqualIgnoringSeconds,
	})

	require.False(t, result.Passed)
	assert.Equal(t, "\nExpecting:\n  <2000-01-01T23:51Z>\nto have same year, month, day, hour and minute as:\n  <2000-01-01T23:50:59.999999999Z>\nbut had not.", result.Message)
	assert.Equal(t, time.Date(2000, 1, 1, 23, 51, 0, 0, time.UTC), result.Actual)
	assert.Equal(t, "2000-01-01T23:51:00Z", result.Subject)
}

func TestEvaluator_Description(t *testing.T) {
	e := newEvaluator(t)

	result := e.Evaluate(&cases.Case{
		Subject:     literal("2000-01-01T00:00:01Z"),
		Reference:   literal("2000-01-01T00:00:00.999999999Z"),
		Check:       cases.CheckEqualIgnoringNanos,
		Description: "order created",
	})

	require.False(t, result.Passed)
	assert.Contains(t, result.Message, "[order created] \nExpecting:")
	assert.Contains(t, result.Message, "year, month, day, hour, minute and second")
}

func TestEvaluator_NullSubject(t *testing.T) {
	e := newEvaluator(t)

	result := e.Evaluate(&cases.Case{
		Subject:   cases.Value{File: "order.json", Path: "order.shippedAt"},
		Reference: literal("now()"),
		Check:     cases.CheckEqualIgnoringSeconds,
	})

	assert.False(t, result.Passed)
	assert.Equal(t, "null-subject", result.Kind)
	assert.Equal(t, "\nExpecting actual not to be null", result.Message)
	assert.Nil(t, result.Actual)
}

func TestEvaluator_NullReference(t *testing.T) {
	e := newEvaluator(t)

	result := e.Evaluate(&cases.Case{
		Subject:   literal("now()"),
		Reference: cases.Value{},
		Check:     cases.CheckEqualIgnoringNanos,
	})

	assert.False(t, result.Passed)
	assert.Equal(t, KindInvalidArgument, result.Kind)
	assert.Equal(t, hitassert.NullTimeParameterMessage, result.Message)
}

func TestEvaluator_NullBoth(t *testing.T) {
	e := newEvaluator(t)

	result := e.Evaluate(&cases.Case{
		Check: cases.CheckEqualIgnoringNanos,
	})

	assert.Equal(t, "null-subject", result.Kind)
}

func TestEvaluator_ExpectFailure(t *testing.T) {
	e := newEvaluator(t)

	failing := e.Evaluate(&cases.Case{
		Subject:       literal("2000-01-01T23:51:00Z"),
		Reference:     literal("2000-01-01T23:50:59.999999999Z"),
		Check:         cases.CheckEqualIgnoringSeconds,
		ExpectFailure: true,
	})
	assert.True(t, failing.Passed)
	assert.Equal(t, "failure", failing.Kind)

	holding := e.Evaluate(&cases.Case{
		Subject:       literal("2000-01-01T23:51:00Z"),
		Reference:     literal("2000-01-01T23:51:59Z"),
		Check:         cases.CheckEqualIgnoringSeconds,
		ExpectFailure: true,
	})
	assert.False(t, holding.Passed)
	assert.Contains(t, holding.Message, "expected equalIgnoringSeconds to fail")
}

func TestEvaluator_Errors(t *testing.T) {
	e := newEvaluator(t)

	tests := []struct {
		name    string
		c       *cases.Case
		wantErr string
	}{
		{
			name:    "bad subject",
			c:       &cases.Case{Subject: literal("soon"), Reference: literal("now()"), Check: cases.CheckEqual},
			wantErr: "subject: invalid timestamp",
		},
		{
			name:    "bad reference",
			c:       &cases.Case{Subject: literal("now()"), Reference: cases.Value{File: "order.json", Path: "missing"}, Check: cases.CheckEqual},
			wantErr: "reference: path",
		},
		{
			name:    "unknown check",
			c:       &cases.Case{Subject: literal("now()"), Reference: literal("now()"), Check: "closeTo"},
			wantErr: "unknown check",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Evaluate(tt.c)
			assert.False(t, result.Passed)
			assert.Equal(t, KindError, result.Kind)
			assert.Contains(t, result.Message, tt.wantErr)
		})
	}
}

func TestEvaluator_CompareLocation(t *testing.T) {
	subject := cases.Case{
		Subject:   literal("2000-01-02T00:30:00+01:00"),
		Reference: literal("2000-01-01T23:30:00Z"),
		Check:     cases.CheckEqualIgnoringHours,
	}

	local := newEvaluator(t).Evaluate(&subject)
	assert.False(t, local.Passed, "local fields differ by day")

	normalized := newEvaluator(t, WithAssertOptions(hitassert.WithCompareLocation(time.UTC))).Evaluate(&subject)
	assert.True(t, normalized.Passed, normalized.Message)
}

func TestEvaluator_EvaluateAll(t *testing.T) {
	e := newEvaluator(t)

	results := e.EvaluateAll([]*cases.Case{
		{Subject: literal("now()"), Reference: literal("now()"), Check: cases.CheckEqual},
		{Subject: literal("now()"), Reference: literal("now(+1h)"), Check: cases.CheckEqualIgnoringMinutes},
	})

	require.Len(t, results, 2)
	assert.True(t, results[0].Passed)
	assert.False(t, results[1].Passed)
}
