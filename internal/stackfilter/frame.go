package stackfilter

import "strconv"

// Frame is one structured entry of a call-stack trace. Line and Column
// are 0-based; -1 marks an absent field. A frame whose only populated
// field is EvalOrigin represents an indirection through dynamically
// evaluated code; EvalOrigin takes precedence over location fields.
type Frame struct {
	TypeName      string
	FunctionName  string
	MethodName    string
	FileName      string
	Line          int
	Column        int
	EvalOrigin    *Frame
	IsConstructor bool
	IsAsync       bool
}

// Location literals that are not real file paths.
const (
	locNative   = "native"
	locUnknown  = "unknown location"
	locAnonFile = "<anonymous>"
)

// isLocationLiteral reports whether file is one of the three location
// literals rather than a real path.
func isLocationLiteral(file string) bool {
	return file == locNative || file == locUnknown || file == locAnonFile
}

// String renders the frame in position form, the inverse of
// ParsePosition. Prepend framePrefix to obtain a full trace line.
func (f *Frame) String() string {
	if f.EvalOrigin != nil {
		return "eval at " + f.EvalOrigin.String()
	}
	if f.FunctionName == "" {
		return f.location()
	}
	var id string
	if f.IsAsync {
		id += "async "
	}
	if f.IsConstructor {
		id += "new "
	}
	if f.TypeName != "" {
		id += f.TypeName + "."
	}
	id += f.FunctionName
	if f.MethodName != "" {
		id += " [as " + f.MethodName + "]"
	}
	return id + " (" + f.location() + ")"
}

// location renders the file/line/column triple, converting the internal
// 0-based positions back to the 1-based source convention.
func (f *Frame) location() string {
	if f.FileName == "" {
		return locUnknown
	}
	if isLocationLiteral(f.FileName) {
		return f.FileName
	}
	loc := f.FileName
	if f.Line >= 0 {
		loc += ":" + strconv.Itoa(f.Line+1)
		if f.Column >= 0 {
			loc += ":" + strconv.Itoa(f.Column+1)
		}
	}
	return loc
}

// FormatLine renders the frame as a complete trace line.
func (f *Frame) FormatLine() string {
	return framePrefix + f.String()
}
