package search

import (
	"strings"
	"testing"
	"unsafe"

	tt "github.com/gnoswap-labs/minigrep/internal/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

const poem = "Rust:\nsafe, fast, productive.\npick three."

func TestSearchOneResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"safe, fast, productive."}, Search("duct", poem))
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		text     string
		expected []string
	}{
		{
			name:     "no match",
			query:    "monomorphization",
			text:     poem,
			expected: []string{},
		},
		{
			name:     "case sensitive",
			query:    "rust",
			text:     "Rust:\nTrust me.\nrusty",
			expected: []string{"Trust me.", "rusty"},
		},
		{
			name:     "several matches keep order",
			query:    "t",
			text:     poem,
			expected: []string{"Rust:", "safe, fast, productive.", "pick three."},
		},
		{
			name:     "empty query returns every line",
			query:    "",
			text:     "one\n\nthree\n",
			expected: []string{"one", "", "three"},
		},
		{
			name:     "empty text",
			query:    "",
			text:     "",
			expected: []string{},
		},
		{
			name:     "crlf line endings",
			query:    "b",
			text:     "a\r\nb\r\nab\r\n",
			expected: []string{"b", "ab"},
		},
		{
			name:     "query never spans lines",
			query:    "a\nb",
			text:     "a\nb",
			expected: []string{},
		},
		{
			name:     "line matched once despite repeated occurrences",
			query:    "na",
			text:     "banana\nnan",
			expected: []string{"banana", "nan"},
		},
		{
			name:     "no unicode normalisation",
			query:    "e\u0301",
			text:     "caf\u00e9\ncafe\u0301",
			expected: []string{"cafe\u0301"},
		},
		{
			name:     "whitespace is significant",
			query:    " three",
			text:     poem,
			expected: []string{"pick three."},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Search(tc.query, tc.text)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tc.query, diff)
			}
		})
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "empty", text: "", expected: nil},
		{name: "single newline", text: "\n", expected: []string{""}},
		{name: "no trailing newline", text: "a\nb", expected: []string{"a", "b"}},
		{name: "trailing newline", text: "a\nb\n", expected: []string{"a", "b"}},
		{name: "blank lines", text: "a\n\n\nb", expected: []string{"a", "", "", "b"}},
		{name: "crlf", text: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{name: "lone carriage return kept", text: "a\rb\nc\r", expected: []string{"a\rb", "c\r"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			want := 1
			for n, line := range Lines(tc.text) {
				assert.Equal(t, want, n)
				want++
				got = append(got, line)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCollectLineNumbers(t *testing.T) {
	t.Parallel()

	got := Collect("e", "one\ntwo\nthree\nfour\nfive")
	want := []tt.Match{
		{Line: 1, Text: "one"},
		{Line: 3, Text: "three"},
		{Line: 5, Text: "five"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchesSoundAndComplete(t *testing.T) {
	t.Parallel()

	text := "alpha\nbeta\ngamma\ndelta\nepsilon\nzeta\neta\ntheta"
	for _, query := range []string{"", "a", "eta", "ta", "x", "alpha\n"} {
		matched := make(map[int]bool)
		for m := range Matches(query, text) {
			assert.Contains(t, m.Text, query)
			matched[m.Line] = true
		}
		for n, line := range Lines(text) {
			assert.Equal(t, strings.Contains(line, query), matched[n], "query %q line %d", query, n)
		}
	}
}

func TestMatchesRestartable(t *testing.T) {
	t.Parallel()

	seq := Matches("a", "abc\nxyz\ncab")

	var first, second []tt.Match
	for m := range seq {
		first = append(first, m)
	}
	for m := range seq {
		second = append(second, m)
	}

	assert.Equal(t, first, second)
	assert.Equal(t, Collect("a", "abc\nxyz\ncab"), first)
}

func TestMatchesStopsEarly(t *testing.T) {
	t.Parallel()

	var got []tt.Match
	for m := range Matches("", "1\n2\n3\n4") {
		got = append(got, m)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []tt.Match{{Line: 1, Text: "1"}, {Line: 2, Text: "2"}}, got)
}

func TestMatchesAreViews(t *testing.T) {
	t.Parallel()

	text := "first line\nsecond line\n"
	start := uintptr(unsafe.Pointer(unsafe.StringData(text)))
	end := start + uintptr(len(text))

	for m := range Matches("second", text) {
		p := uintptr(unsafe.Pointer(unsafe.StringData(m.Text)))
		assert.True(t, p >= start && p < end, "match text should point into the document")
	}
}
