package validation

import (
	"cmp"
	"fmt"
)

// InRange returns value when low <= value <= high. It covers every integer and
// floating point type as well as strings. NaN is never in range.
func InRange[T cmp.Ordered](argument string, value, low, high T) (T, error) {
	if err := checkArgument(argument); err != nil {
		return value, err
	}
	if value >= low && value <= high {
		return value, nil
	}
	return value, rangeError(argument, value, low, high)
}

// InRangeFunc is InRange for types ordered by a comparison function, such as
// time.Time.Compare. compare must return a negative number when a < b, zero
// when a == b and a positive number when a > b.
func InRangeFunc[T any](argument string, value, low, high T, compare func(a, b T) int) (T, error) {
	if err := checkArgument(argument); err != nil {
		return value, err
	}
	if compare == nil {
		return value, &ArgumentError{Argument: "compare", Constraint: "nil"}
	}
	if compare(value, low) >= 0 && compare(value, high) <= 0 {
		return value, nil
	}
	return value, rangeError(argument, value, low, high)
}

func rangeError(argument string, value, low, high any) error {
	return &ArgumentError{
		Argument:   argument,
		Value:      render(value),
		Constraint: fmt.Sprintf("not in range [%s, %s]", render(low), render(high)),
	}
}

// render quotes strings so that empty values stay visible in messages.
func render(v any) string {
	if s, ok := v.(string); ok {
		return quote(s)
	}
	return fmt.Sprint(v)
}
