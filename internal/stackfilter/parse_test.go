package stackfilter

import "testing"

func TestParseLineBasic(t *testing.T) {
	frame, ok := ParseLine("    at Object.foo (/a/b.js:10:5)")
	if !ok {
		t.Fatal("line did not parse")
	}
	if frame.TypeName != "Object" || frame.FunctionName != "foo" {
		t.Errorf("identity = %q.%q", frame.TypeName, frame.FunctionName)
	}
	if frame.FileName != "/a/b.js" || frame.Line != 9 || frame.Column != 4 {
		t.Errorf("location = %q:%d:%d, want /a/b.js:9:4", frame.FileName, frame.Line, frame.Column)
	}
	if got := frame.FormatLine(); got != "    at Object.foo (/a/b.js:10:5)" {
		t.Errorf("reserialized to %q", got)
	}
}

func TestParseLineVariants(t *testing.T) {
	cases := []struct {
		line  string
		check func(t *testing.T, f *Frame)
	}{
		{
			line: "    at foo (/a/b.js:3:1)",
			check: func(t *testing.T, f *Frame) {
				if f.TypeName != "" || f.FunctionName != "foo" {
					t.Errorf("identity = %q.%q", f.TypeName, f.FunctionName)
				}
			},
		},
		{
			line: "    at new Thing (/a/b.js:3:1)",
			check: func(t *testing.T, f *Frame) {
				if !f.IsConstructor || f.FunctionName != "Thing" {
					t.Errorf("constructor not recognized: %+v", f)
				}
			},
		},
		{
			line: "    at async run (/a/b.js:3:1)",
			check: func(t *testing.T, f *Frame) {
				if !f.IsAsync || f.FunctionName != "run" {
					t.Errorf("async not recognized: %+v", f)
				}
			},
		},
		{
			line: "    at async new Outer.Inner.make [as build] (/a/b.js:12:34)",
			check: func(t *testing.T, f *Frame) {
				if !f.IsAsync || !f.IsConstructor {
					t.Errorf("flags lost: %+v", f)
				}
				if f.TypeName != "Outer.Inner" || f.FunctionName != "make" || f.MethodName != "build" {
					t.Errorf("identity = %q %q %q", f.TypeName, f.FunctionName, f.MethodName)
				}
			},
		},
		{
			line: "    at /a/b.js:7:2",
			check: func(t *testing.T, f *Frame) {
				if f.FunctionName != "" || f.FileName != "/a/b.js" || f.Line != 6 || f.Column != 1 {
					t.Errorf("bare location mis-parsed: %+v", f)
				}
			},
		},
		{
			line: "    at foo (native)",
			check: func(t *testing.T, f *Frame) {
				if f.FileName != "native" || f.Line != -1 {
					t.Errorf("native literal mis-parsed: %+v", f)
				}
			},
		},
		{
			line: "    at unknown location",
			check: func(t *testing.T, f *Frame) {
				if f.FileName != "unknown location" {
					t.Errorf("literal mis-parsed: %+v", f)
				}
			},
		},
		{
			line: "    at Module._compile (/x/y.js:42)",
			check: func(t *testing.T, f *Frame) {
				if f.Line != 41 || f.Column != -1 {
					t.Errorf("line-only location mis-parsed: %+v", f)
				}
			},
		},
		{
			line: "    at eval at bar (/a/b.js:1:1)",
			check: func(t *testing.T, f *Frame) {
				if f.EvalOrigin == nil {
					t.Fatalf("eval origin missing: %+v", f)
				}
				if f.EvalOrigin.FunctionName != "bar" || f.EvalOrigin.FileName != "/a/b.js" {
					t.Errorf("eval origin mis-parsed: %+v", f.EvalOrigin)
				}
			},
		},
	}
	for _, tc := range cases {
		frame, ok := ParseLine(tc.line)
		if !ok {
			t.Errorf("%q did not parse", tc.line)
			continue
		}
		tc.check(t, frame)
		if got := frame.FormatLine(); got != tc.line {
			t.Errorf("round trip of %q produced %q", tc.line, got)
		}
	}
}

func TestParseLineRejectsNonFrames(t *testing.T) {
	lines := []string{
		"Error: something broke",
		"",
		"    ... skipping 2 frames ...",
		"    at ",
		"  at foo (/a/b.js:1:1)", // wrong indentation
		"    at some prose that is not a frame",
	}
	for _, line := range lines {
		if _, ok := ParseLine(line); ok {
			t.Errorf("%q parsed as a frame", line)
		}
	}
}

func TestParseWindowsPath(t *testing.T) {
	frame, ok := ParseLine(`    at run (C:\proj\main.js:8:3)`)
	if !ok {
		t.Fatal("windows path did not parse")
	}
	if frame.FileName != `C:\proj\main.js` || frame.Line != 7 || frame.Column != 2 {
		t.Errorf("windows location mis-parsed: %+v", frame)
	}
}

func TestFrameStringWithoutIdentity(t *testing.T) {
	f := &Frame{FileName: "/a/b.js", Line: 0, Column: 0}
	if got := f.String(); got != "/a/b.js:1:1" {
		t.Errorf("String() = %q", got)
	}
	empty := &Frame{Line: -1, Column: -1}
	if got := empty.String(); got != "unknown location" {
		t.Errorf("empty frame String() = %q", got)
	}
}
