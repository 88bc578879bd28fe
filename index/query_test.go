package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryConstructors(t *testing.T) {
	q := In("a", "b")
	assert.Equal(t, OpIn, q.Op())
	assert.Equal(t, []string{"a", "b"}, q.Values())

	q = NotIn("c")
	assert.Equal(t, OpNotIn, q.Op())
	assert.Equal(t, []string{"c"}, q.Values())

	q = GreaterThan("m")
	assert.Equal(t, OpGreaterThan, q.Op())
	assert.Equal(t, "m", q.Value())

	q = GreaterEqual("m")
	assert.Equal(t, OpGreaterEqual, q.Op())

	q = LessThan("m")
	assert.Equal(t, OpLessThan, q.Op())

	q = LessEqual("m")
	assert.Equal(t, OpLessEqual, q.Op())

	q = Between("a", true, "z", false)
	assert.Equal(t, OpRange, q.Op())
	lower, lowerInclusive, upper, upperInclusive := q.Bounds()
	assert.Equal(t, "a", lower)
	assert.True(t, lowerInclusive)
	assert.Equal(t, "z", upper)
	assert.False(t, upperInclusive)

	q = PrefixMatch("pre")
	assert.Equal(t, OpPrefixMatch, q.Op())
	assert.Equal(t, "pre", q.Value())
}

func TestZeroQueryHasNoOperator(t *testing.T) {
	var q Query
	assert.Equal(t, Operator(0), q.Op())
	assert.Equal(t, "Unknown", q.Op().String())
}

func TestOperatorString(t *testing.T) {
	tests := []struct {
		op       Operator
		expected string
	}{
		{OpIn, "In"},
		{OpNotIn, "NotIn"},
		{OpGreaterThan, "GreaterThan"},
		{OpGreaterEqual, "GreaterEqual"},
		{OpLessThan, "LessThan"},
		{OpLessEqual, "LessEqual"},
		{OpRange, "Range"},
		{OpPrefixMatch, "PrefixMatch"},
		{Operator(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.op.String())
	}
}
