package main

import (
	"strings"
	"testing"

	"diagkit/internal/stackfilter"
)

func TestCollectFrames(t *testing.T) {
	text := strings.Join([]string{
		"Error: nope",
		"    at Object.foo (/a/b.js:10:5)",
		"not a frame",
		"    at async run (/a/c.js:2:1)",
	}, "\n")
	records := collectFrames(text)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Type != "Object" || records[0].Function != "foo" {
		t.Errorf("first record = %+v", records[0])
	}
	if records[0].Line != 10 || records[0].Column != 5 {
		t.Errorf("export positions must be 1-based: %+v", records[0])
	}
	if !records[1].Async || records[1].Index != 1 {
		t.Errorf("second record = %+v", records[1])
	}
}

func TestIdentityOf(t *testing.T) {
	cases := []struct {
		rec  frameRecord
		want string
	}{
		{frameRecord{Function: "foo", Type: "Object"}, "Object.foo"},
		{frameRecord{Function: "make", Async: true, Constructor: true}, "async new make"},
		{frameRecord{Function: "f", Method: "g"}, "f [as g]"},
		{frameRecord{}, "<none>"},
		{frameRecord{EvalOrigin: "bar (/a/b.js:1:1)"}, "eval at bar (/a/b.js:1:1)"},
	}
	for _, tc := range cases {
		if got := identityOf(tc.rec); got != tc.want {
			t.Errorf("identityOf(%+v) = %q, want %q", tc.rec, got, tc.want)
		}
	}
}

func TestLocationOf(t *testing.T) {
	rec := frameRecord{File: "/a/b.js", Line: 10, Column: 5}
	if got := locationOf(rec); got != "/a/b.js:10:5" {
		t.Errorf("locationOf = %q", got)
	}
	if got := locationOf(frameRecord{File: "native"}); got != "native" {
		t.Errorf("locationOf(native) = %q", got)
	}
}

func TestOverridePattern(t *testing.T) {
	fallback := stackfilter.DefaultRuntimePattern
	got, err := overridePattern("", fallback)
	if err != nil || got != fallback {
		t.Error("empty override must keep the fallback")
	}
	got, err = overridePattern("off", fallback)
	if err != nil || got != nil {
		t.Error("\"off\" must disable the category")
	}
	if _, err = overridePattern("(", fallback); err == nil {
		t.Error("invalid pattern must error")
	}
}
