package index

// Operator identifies a query operation.
type Operator uint8

const (
	// OpIn tests query values for exact membership in the corpus.
	OpIn Operator = iota + 1
	// OpNotIn is the complement of OpIn.
	OpNotIn
	// OpGreaterThan matches corpus strings strictly above a threshold.
	OpGreaterThan
	// OpGreaterEqual matches corpus strings at or above a threshold.
	OpGreaterEqual
	// OpLessThan matches corpus strings strictly below a threshold.
	OpLessThan
	// OpLessEqual matches corpus strings at or below a threshold.
	OpLessEqual
	// OpRange matches corpus strings inside a two-sided interval.
	OpRange
	// OpPrefixMatch matches corpus strings beginning with a prefix.
	OpPrefixMatch
)

// String returns a string representation of the Operator.
func (op Operator) String() string {
	switch op {
	case OpIn:
		return "In"
	case OpNotIn:
		return "NotIn"
	case OpGreaterThan:
		return "GreaterThan"
	case OpGreaterEqual:
		return "GreaterEqual"
	case OpLessThan:
		return "LessThan"
	case OpLessEqual:
		return "LessEqual"
	case OpRange:
		return "Range"
	case OpPrefixMatch:
		return "PrefixMatch"
	default:
		return "Unknown"
	}
}

// Query is a closed variant over the recognized operators. Each constructor
// carries exactly the operands its operator needs, so a well-typed Query
// can never lack an operand. The zero Query carries no operator and is
// rejected by dispatch.
type Query struct {
	op             Operator
	values         []string
	value          string
	lower, upper   string
	lowerInclusive bool
	upperInclusive bool
}

// In builds a membership query over values.
func In(values ...string) Query {
	return Query{op: OpIn, values: values}
}

// NotIn builds the complement membership query over values.
func NotIn(values ...string) Query {
	return Query{op: OpNotIn, values: values}
}

// GreaterThan builds a one-sided range query for strings above value.
func GreaterThan(value string) Query {
	return Query{op: OpGreaterThan, value: value}
}

// GreaterEqual builds a one-sided range query for strings at or above value.
func GreaterEqual(value string) Query {
	return Query{op: OpGreaterEqual, value: value}
}

// LessThan builds a one-sided range query for strings below value.
func LessThan(value string) Query {
	return Query{op: OpLessThan, value: value}
}

// LessEqual builds a one-sided range query for strings at or below value.
func LessEqual(value string) Query {
	return Query{op: OpLessEqual, value: value}
}

// Between builds a two-sided range query with independently inclusive bounds.
func Between(lower string, lowerInclusive bool, upper string, upperInclusive bool) Query {
	return Query{
		op:             OpRange,
		lower:          lower,
		upper:          upper,
		lowerInclusive: lowerInclusive,
		upperInclusive: upperInclusive,
	}
}

// PrefixMatch builds a prefix query.
func PrefixMatch(prefix string) Query {
	return Query{op: OpPrefixMatch, value: prefix}
}

// Op returns the query's operator, or 0 for the zero Query.
func (q Query) Op() Operator { return q.op }

// Values returns the membership operand of an In/NotIn query.
func (q Query) Values() []string { return q.values }

// Value returns the threshold of a one-sided range query, or the prefix of
// a prefix query.
func (q Query) Value() string { return q.value }

// Bounds returns the operands of a two-sided range query.
func (q Query) Bounds() (lower string, lowerInclusive bool, upper string, upperInclusive bool) {
	return q.lower, q.lowerInclusive, q.upper, q.upperInclusive
}
