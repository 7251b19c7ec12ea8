package assert

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"diagkit/internal/enumfmt"
)

// NodePredicate tests one domain node.
type NodePredicate func(node any) bool

// Host-registered descriptor for domain nodes: kindOf extracts the
// categorical discriminant, kindTable labels it. Both are optional.
var (
	kindOf    func(node any) (int64, bool)
	kindTable *enumfmt.Table
)

// SetNodeDescriptor registers the host's node discriminant accessor and
// the enumeration table naming its values. Used only to describe failing
// values in assertion messages.
func SetNodeDescriptor(kind func(node any) (int64, bool), table *enumfmt.Table) {
	kindOf = kind
	kindTable = table
}

// describeValue renders a failing value: its categorical tag when the
// descriptor recognizes it, a generic dump otherwise.
func describeValue(value any) string {
	if kindOf != nil && !isNilValue(value) {
		if k, ok := kindOf(value); ok {
			return formatKind(k)
		}
	}
	return fmt.Sprintf("%+v", value)
}

func formatKind(kind int64) string {
	if kindTable != nil {
		return kindTable.Format(kind)
	}
	return strconv.FormatInt(kind, 10)
}

// The node assertions are bound once per SetLevel: below LevelNormal they
// are no-ops that never evaluate their predicate.
var (
	assertNodeFn         func(skip int, node any, test NodePredicate, message string)
	assertOptionalNodeFn func(skip int, node any, test NodePredicate, message string)
	assertMissingNodeFn  func(skip int, node any, message string)
	assertOptionalTokFn  func(skip int, node any, kind int64, message string)
)

func init() { bindNodeAsserts() }

func bindNodeAsserts() {
	if ShouldAssert(LevelNormal) {
		assertNodeFn = assertNodeAlways
		assertOptionalNodeFn = assertOptionalNodeAlways
		assertMissingNodeFn = assertMissingNodeAlways
		assertOptionalTokFn = assertOptionalTokenAlways
		return
	}
	assertNodeFn = func(int, any, NodePredicate, string) {}
	assertOptionalNodeFn = func(int, any, NodePredicate, string) {}
	assertMissingNodeFn = func(int, any, string) {}
	assertOptionalTokFn = func(int, any, int64, string) {}
}

// AssertNode fails unless node is present and passes test.
func AssertNode(node any, test NodePredicate, message ...string) {
	assertNodeFn(3, node, test, first(message))
}

// AssertOptionalNode is AssertNode for nodes that may legitimately be
// absent: an absent node passes.
func AssertOptionalNode(node any, test NodePredicate, message ...string) {
	assertOptionalNodeFn(3, node, test, first(message))
}

// AssertMissingNode fails when node is present.
func AssertMissingNode(node any, message ...string) {
	assertMissingNodeFn(3, node, first(message))
}

// AssertOptionalToken fails when node is present and its discriminant is
// not kind. Requires a registered node descriptor to read discriminants;
// without one a present node always fails.
func AssertOptionalToken(node any, kind int64, message ...string) {
	assertOptionalTokFn(3, node, kind, first(message))
}

// AssertEachNode applies AssertNode over a sequence.
func AssertEachNode(nodes []any, test NodePredicate, message ...string) {
	msg := first(message)
	for _, n := range nodes {
		assertNodeFn(3, n, test, msg)
	}
}

func assertNodeAlways(skip int, node any, test NodePredicate, message string) {
	if message == "" {
		message = "Unexpected node."
	}
	ok := !isNilValue(node) && (test == nil || test(node))
	assertCore(skip, ok, message, func() string {
		return fmt.Sprintf("Node %s did not pass test '%s'.", describeValue(node), funcName(test))
	})
}

func assertOptionalNodeAlways(skip int, node any, test NodePredicate, message string) {
	if test == nil || isNilValue(node) {
		return
	}
	if message == "" {
		message = "Unexpected node."
	}
	assertCore(skip, test(node), message, func() string {
		return fmt.Sprintf("Node %s did not pass test '%s'.", describeValue(node), funcName(test))
	})
}

func assertMissingNodeAlways(skip int, node any, message string) {
	if isNilValue(node) {
		return
	}
	if message == "" {
		message = "Unexpected node."
	}
	assertCore(skip, false, message, func() string {
		return fmt.Sprintf("Node %s was unexpected.", describeValue(node))
	})
}

func assertOptionalTokenAlways(skip int, node any, kind int64, message string) {
	if isNilValue(node) {
		return
	}
	actual, ok := int64(0), false
	if kindOf != nil {
		actual, ok = kindOf(node)
	}
	if ok && actual == kind {
		return
	}
	if message == "" {
		message = "Unexpected node."
	}
	assertCore(skip, false, message, func() string {
		return fmt.Sprintf("Node %s was not a '%s' token.", describeValue(node), formatKind(kind))
	})
}

// isNilValue reports whether value is nil, including typed nils boxed in
// an interface.
func isNilValue(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// funcName introspects a predicate's name from its code pointer.
func funcName(fn any) string {
	if fn == nil || isNilValue(fn) {
		return "<none>"
	}
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "<unknown>"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
