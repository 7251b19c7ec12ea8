package enumfmt

import (
	"strconv"
	"strings"
)

// FormatEnum renders value using t's member names. With isFlags set the
// value is decomposed into its component flags.
func FormatEnum(value int64, t *Table, isFlags bool) string {
	if isFlags {
		return t.FormatFlags(value, nil)
	}
	return t.Format(value)
}

// Format renders a plain (non-flags) enumeration value: the first member
// whose value matches exactly, else the decimal string.
func (t *Table) Format(value int64) string {
	if value == 0 {
		return t.zeroName()
	}
	for _, m := range t.members {
		if m.Value == value {
			return m.Name
		}
	}
	return strconv.FormatInt(value, 10)
}

// FormatFlags greedily decomposes a bitmask into declared flag names,
// scanning members from the highest value to the lowest. A member is
// consumed when all of its bits are still present in the remaining mask;
// zero-valued members and members rejected by filter are skipped. The
// result joins the consumed names with "|", largest flag first. If any
// bits remain unaccounted for, the decomposition is discarded and the
// decimal string of the original value is returned instead.
func (t *Table) FormatFlags(value int64, filter func(Member) bool) string {
	if value == 0 {
		return t.zeroName()
	}
	var parts []string
	remaining := value
	for i := len(t.members) - 1; i >= 0 && remaining != 0; i-- {
		m := t.members[i]
		if m.Value == 0 {
			continue
		}
		if filter != nil && !filter(m) {
			continue
		}
		if remaining&m.Value == m.Value {
			remaining &^= m.Value
			parts = append(parts, m.Name)
		}
	}
	if remaining != 0 {
		return strconv.FormatInt(value, 10)
	}
	return strings.Join(parts, "|")
}

// zeroName returns the name declared for 0 when one exists, else "0".
func (t *Table) zeroName() string {
	if len(t.members) > 0 && t.members[0].Value == 0 {
		return t.members[0].Name
	}
	return "0"
}
