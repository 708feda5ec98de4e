package validation

// NotNil returns value when it is non-nil.
func NotNil[T any](argument string, value *T) (*T, error) {
	if err := checkArgument(argument); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, &ArgumentError{Argument: argument, Constraint: "nil"}
	}
	return value, nil
}

// True returns value when it is true.
func True(argument string, value bool) (bool, error) {
	if err := checkArgument(argument); err != nil {
		return value, err
	}
	if !value {
		return value, &ArgumentError{Argument: argument, Constraint: "not true"}
	}
	return value, nil
}

// False returns value when it is false.
func False(argument string, value bool) (bool, error) {
	if err := checkArgument(argument); err != nil {
		return value, err
	}
	if value {
		return value, &ArgumentError{Argument: argument, Constraint: "not false"}
	}
	return value, nil
}
