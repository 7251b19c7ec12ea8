package stackfilter

import (
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// framePrefix starts every frame line of the trace convention.
const framePrefix = "    at "

// ParseLine parses one trace line into a Frame. Lines that do not match
// the frame grammar (the error header, collapse summaries, arbitrary
// text) report ok=false and must be passed through verbatim.
func ParseLine(line string) (*Frame, bool) {
	pos, found := strings.CutPrefix(line, framePrefix)
	if !found || pos == "" {
		return nil, false
	}
	return ParsePosition(pos)
}

// ParsePosition parses the position part of a frame line:
//
//	position  = "eval at " position
//	          | [async ] [new ] [Type "."] function [" [as " method "]"] " (" location ")"
//	          | location
//	location  = fileName [":" line [":" column]]
//	          | "native" | "unknown location" | "<anonymous>"
//
// Line and column are 1-based in the text and 0-based in the Frame.
func ParsePosition(pos string) (*Frame, bool) {
	if nested, found := strings.CutPrefix(pos, "eval at "); found {
		origin, ok := ParsePosition(nested)
		if !ok {
			return nil, false
		}
		return &Frame{EvalOrigin: origin, Line: -1, Column: -1}, true
	}

	if strings.HasSuffix(pos, ")") {
		if sep := strings.LastIndex(pos, " ("); sep > 0 {
			identity := pos[:sep]
			loc := pos[sep+2 : len(pos)-1]
			frame, ok := parseIdentity(identity)
			if !ok {
				return nil, false
			}
			if !parseLocation(loc, frame) {
				return nil, false
			}
			return frame, true
		}
	}

	frame := &Frame{Line: -1, Column: -1}
	if !parseLocation(pos, frame) {
		return nil, false
	}
	return frame, true
}

// parseIdentity parses the function-identity prefix of a position.
func parseIdentity(id string) (*Frame, bool) {
	frame := &Frame{Line: -1, Column: -1}
	id, frame.IsAsync = strings.CutPrefix(id, "async ")
	id, frame.IsConstructor = strings.CutPrefix(id, "new ")
	if strings.HasSuffix(id, "]") {
		if i := strings.LastIndex(id, " [as "); i >= 0 {
			frame.MethodName = id[i+len(" [as ") : len(id)-1]
			id = id[:i]
		}
	}
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		frame.TypeName = id[:i]
		id = id[i+1:]
	}
	if id == "" || strings.ContainsAny(id, " ()") {
		return nil, false
	}
	frame.FunctionName = id
	return frame, true
}

// parseLocation fills the frame's location fields from text like
// "/a/b.js:10:5", "/a/b.js:10", "/a/b.js" or one of the literals.
func parseLocation(loc string, frame *Frame) bool {
	if isLocationLiteral(loc) {
		frame.FileName = loc
		return true
	}
	file := loc
	if i := strings.LastIndexByte(file, ':'); i >= 0 {
		if n, ok := parsePosNum(file[i+1:]); ok {
			file = file[:i]
			frame.Line = n - 1
			if j := strings.LastIndexByte(file, ':'); j >= 0 {
				// Two trailing numbers: line then column.
				if m, ok := parsePosNum(file[j+1:]); ok {
					file = file[:j]
					frame.Line = m - 1
					frame.Column = n - 1
				}
			}
		}
	}
	if file == "" || strings.ContainsAny(file, " ()") {
		return false
	}
	frame.FileName = file
	return true
}

// parsePosNum parses a 1-based position number.
func parsePosNum(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	u, err := strconv.ParseUint(s, 10, 32)
	if err != nil || u == 0 {
		return 0, false
	}
	n, err := safecast.Conv[int](u)
	if err != nil {
		return 0, false
	}
	return n, true
}
