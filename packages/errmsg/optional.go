package errmsg

// ShouldBePresent reports an empty optional where a value was expected.
func ShouldBePresent() Factory {
	return NewFactory("Expecting Optional to contain a value but was empty.")
}

// ShouldBeEmpty reports an optional holding value where none was expected.
func ShouldBeEmpty(value any) Factory {
	return NewFactory("Expecting an empty Optional but was containing value: <%s>.", value)
}

// ShouldContain reports an optional holding actual instead of expected.
func ShouldContain(actual, expected any) Factory {
	return NewFactory("\nExpecting Optional to contain:\n  <%s>\nbut contained:\n  <%s>", expected, actual)
}

// ShouldContainButWasEmpty reports an empty optional where expected was wanted.
func ShouldContainButWasEmpty(expected any) Factory {
	return NewFactory("\nExpecting Optional to contain:\n  <%s>\nbut was empty.", expected)
}
