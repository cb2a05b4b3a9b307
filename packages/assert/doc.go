// Package assert is a fluent extension of testify's assert package.
//
// It adds assertion chains for values testify has no dedicated support for:
//
//	assert.ThatTimeValue(t, created).IsEqualToIgnoringSeconds(&expected)
//	assert.ThatOptionalValue(t, token).IsPresent()
//
// Each chain is selected by the type of the value under test and configured
// explicitly with Options; there is no package-level state. Failures are
// recorded on the chain (Err, Failed) and reported to the test handle through
// testify's Fail, followed by FailNow when WithFailFast is set.
//
// New returns a facade that embeds *testify/assert.Assertions, so every host
// assertion stays reachable next to the chains defined here. NewSoft collects
// failures and reports them together from AssertAll.
package assert
