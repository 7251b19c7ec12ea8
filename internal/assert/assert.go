// Package assert provides the fail-fast invariant checks used across the
// toolchain. Violations panic with a *Failure; they are programmer-error
// guards and must propagate to the process boundary.
package assert

import (
	"cmp"
	"fmt"
	"strings"
)

// Assert fails when condition is false. The optional verbose thunk adds
// detail to the failure message; it is only evaluated on failure. The
// whole check is skipped below LevelNormal.
func Assert(condition bool, message string, verbose ...func() string) {
	assertCore(2, condition, message, firstThunk(verbose))
}

// assertCore is the shared gate for Assert and the node assertions.
// skip counts wrapper frames above the user's call site.
func assertCore(skip int, condition bool, message string, verbose func() string) {
	if !ShouldAssert(LevelNormal) {
		return
	}
	if condition {
		return
	}
	msg := "False expression."
	if message != "" {
		msg = "False expression: " + message
	}
	if verbose != nil {
		msg += "\nVerbose Debug Information: " + verbose()
	}
	failWith(skip, msg)
}

// AssertEqual fails when a != b. When two message parts are given they
// are concatenated with a space.
func AssertEqual[T comparable](a, b T, message ...string) {
	if !ShouldAssert(LevelNormal) {
		return
	}
	if a == b {
		return
	}
	msg := fmt.Sprintf("Expected %v == %v.", a, b)
	if detail := strings.TrimSpace(strings.Join(message, " ")); detail != "" {
		msg += " " + detail
	}
	failWith(1, msg)
}

// AssertLessThan fails unless a < b.
func AssertLessThan[T cmp.Ordered](a, b T, message ...string) {
	if !ShouldAssert(LevelNormal) || a < b {
		return
	}
	failWith(1, orderedMessage(a, "<", b, message))
}

// AssertLessThanOrEqual fails unless a <= b.
func AssertLessThanOrEqual[T cmp.Ordered](a, b T, message ...string) {
	if !ShouldAssert(LevelNormal) || a <= b {
		return
	}
	failWith(1, orderedMessage(a, "<=", b, message))
}

// AssertGreaterThanOrEqual fails unless a >= b.
func AssertGreaterThanOrEqual[T cmp.Ordered](a, b T, message ...string) {
	if !ShouldAssert(LevelNormal) || a >= b {
		return
	}
	failWith(1, orderedMessage(a, ">=", b, message))
}

func orderedMessage[T any](a T, op string, b T, message []string) string {
	msg := fmt.Sprintf("Expected %v %s %v.", a, op, b)
	if detail := first(message); detail != "" {
		msg += " " + detail
	}
	return msg
}

// Defined fails when value is nil, otherwise returns it unchanged so the
// check composes into expressions.
func Defined[T any](value *T, message ...string) *T {
	if value == nil {
		failWith(1, definedMessage(message))
	}
	return value
}

// EachDefined applies Defined elementwise and returns the sequence
// unchanged when every element passes.
func EachDefined[T any](values []*T, message ...string) []*T {
	for _, v := range values {
		if v == nil {
			failWith(1, definedMessage(message))
		}
	}
	return values
}

func definedMessage(message []string) string {
	if msg := first(message); msg != "" {
		return msg
	}
	return "Value is not defined."
}

// Never marks unreachable variants of a closed set. It always fails; the
// message names the value's categorical tag when a node descriptor is
// registered, falling back to a generic dump otherwise.
func Never(value any, message ...string) {
	msg := "Illegal value:"
	if m := first(message); m != "" {
		msg = m
	}
	failWith(1, msg+" "+describeValue(value))
}

func firstThunk(verbose []func() string) func() string {
	if len(verbose) > 0 {
		return verbose[0]
	}
	return nil
}
