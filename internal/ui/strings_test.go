package ui

import (
	"reflect"
	"testing"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"unlimited", "abc", 0, "abc"},
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdef", 5, "abcd…"},
		{"tiny", "abc", 1, "a"},
		{"trims", "  abc  ", 5, "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPadToWidth(t *testing.T) {
	if got := padToWidth("ab", 5); got != "ab   " {
		t.Fatalf("padToWidth = %q", got)
	}
	if got := padToWidth("abcdef", 3); got != "abcdef" {
		t.Fatalf("padToWidth must not cut, got %q", got)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("a quick brown fox jumps", 11)
	want := []string{"a quick", "brown fox", "jumps"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrapText = %v, want %v", got, want)
	}

	if got := wrapText("   ", 10); got != nil {
		t.Fatalf("wrapText blank = %v, want nil", got)
	}

	// A word longer than the limit gets its own line rather than being cut.
	got = wrapText("hi extraordinarily so", 5)
	if got[1] != "extraordinarily" {
		t.Fatalf("wrapText long word = %v", got)
	}
}

func TestImageHost(t *testing.T) {
	if got := imageHost("https://fakestoreapi.com/img/1.jpg"); got != "fakestoreapi.com" {
		t.Fatalf("imageHost = %q", got)
	}
	if got := imageHost("not a url"); got != "" {
		t.Fatalf("imageHost junk = %q, want empty", got)
	}
	if got := imageHost(""); got != "" {
		t.Fatalf("imageHost empty = %q, want empty", got)
	}
}
