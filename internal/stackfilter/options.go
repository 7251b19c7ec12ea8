package stackfilter

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Stock exclusion patterns. A nil pattern disables its category.
var (
	// DefaultRuntimePattern matches engine/runtime internal modules.
	DefaultRuntimePattern = regexp.MustCompile(`^(?:node:)?internal(?:[\\/]|$)`)
	// DefaultTestPattern matches common test-framework frames.
	DefaultTestPattern = regexp.MustCompile(`[\\/]node_modules[\\/](?:mocha|jest|jasmine|vitest)[\\/]`)
	// DefaultInternalPattern matches this toolchain's own modules.
	DefaultInternalPattern = regexp.MustCompile(`(?:^|[\\/])diagkit[\\/]internal[\\/]`)
)

// Options configures one filtering pass.
type Options struct {
	// MaxFrames excludes every frame at index >= MaxFrames; 0 disables
	// the limit.
	MaxFrames int

	// Path-category patterns. Each nil pattern disables that category.
	RuntimePattern  *regexp.Regexp
	TestPattern     *regexp.Regexp
	InternalPattern *regexp.Regexp

	// DropNativeAnonymous excludes named functions located at native or
	// <anonymous>.
	DropNativeAnonymous bool

	// Exclude is a caller-supplied predicate; a true result excludes
	// the frame.
	Exclude func(*Frame) bool

	// Rewrite may replace an entire frame, e.g. for source-map
	// remapping. Identity when nil.
	Rewrite func(*Frame) *Frame

	// ResolvePath normalizes file locations before Rewrite runs.
	// Identity when nil.
	ResolvePath func(string) string
}

// DefaultOptions returns the stock filtering configuration.
func DefaultOptions() Options {
	return Options{
		RuntimePattern:      DefaultRuntimePattern,
		TestPattern:         DefaultTestPattern,
		InternalPattern:     DefaultInternalPattern,
		DropNativeAnonymous: true,
		ResolvePath:         DefaultResolvePath,
	}
}

// DefaultResolvePath strips file:// URI wrapping, percent-decodes the
// path, and NFC-normalizes it so pattern matching sees canonical text.
func DefaultResolvePath(path string) string {
	if trimmed, found := strings.CutPrefix(path, "file://"); found {
		if decoded, err := url.PathUnescape(trimmed); err == nil {
			trimmed = decoded
		}
		path = trimmed
	}
	return norm.NFC.String(path)
}

// apply runs the resolve and rewrite hooks on a frame with a real file
// path; eval frames and location literals pass through untouched.
func (o *Options) apply(frame *Frame) *Frame {
	if frame.EvalOrigin != nil || frame.FileName == "" || isLocationLiteral(frame.FileName) {
		return frame
	}
	if o.ResolvePath != nil {
		frame.FileName = o.ResolvePath(frame.FileName)
	}
	if o.Rewrite != nil {
		frame = o.Rewrite(frame)
	}
	return frame
}

// excluded decides whether a frame at the given ordinal is dropped.
func (o *Options) excluded(frame *Frame, index int) bool {
	if o.MaxFrames > 0 && index >= o.MaxFrames {
		return true
	}
	if matches(o.RuntimePattern, frame.FileName) ||
		matches(o.TestPattern, frame.FileName) ||
		matches(o.InternalPattern, frame.FileName) {
		return true
	}
	if o.DropNativeAnonymous && frame.FunctionName != "" &&
		(frame.FileName == locNative || frame.FileName == locAnonFile) {
		return true
	}
	if o.Exclude != nil && o.Exclude(frame) {
		return true
	}
	return false
}

func matches(re *regexp.Regexp, file string) bool {
	return re != nil && file != "" && re.MatchString(file)
}
