package trie

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFindLongestMatch(t *testing.T) {
	tr := New[int](false)
	tr.Insert("http:", 1)
	tr.Insert("https:", 2)

	length, value, ok := tr.Find("https://example.com")
	assert.True(t, ok)
	assert.Equal(t, 6, length)
	assert.Equal(t, 2, value)

	length, value, ok = tr.Find("http://example.com")
	assert.True(t, ok)
	assert.Equal(t, 5, length)
	assert.Equal(t, 1, value)
}

func TestFindMissReportsConsumed(t *testing.T) {
	tr := New[int](false)
	tr.Insert("https:", 2)

	// Walks "http" before the 'x' stops it; no terminal was passed.
	length, _, ok := tr.Find("httpx")
	assert.False(t, ok)
	assert.Equal(t, 4, length)
}

func TestFindEmptyText(t *testing.T) {
	tr := New[int](false)
	tr.Insert("a", 1)

	length, _, ok := tr.Find("")
	assert.False(t, ok)
	assert.Equal(t, 0, length)
}

func TestFoldCase(t *testing.T) {
	tr := New[string](true)
	tr.Insert("Category:", "category")

	length, value, ok := tr.Find("CATEGORY:Foo")
	assert.True(t, ok)
	assert.Equal(t, 9, length)
	assert.Equal(t, "category", value)

	_, _, ok = tr.Find("category:Foo")
	assert.True(t, ok)
}

func TestCaseSensitiveByDefault(t *testing.T) {
	tr := New[int](false)
	tr.Insert("REDIRECT", 1)

	_, _, ok := tr.Find("redirect")
	assert.False(t, ok)
}

func TestRuneSet(t *testing.T) {
	set := NewRuneSet("abcé")
	assert.True(t, set.Contains('a'))
	assert.True(t, set.Contains('é'))
	assert.False(t, set.Contains('z'))
	assert.Equal(t, 4, set.Len())
}

func TestRuneSetNil(t *testing.T) {
	var set *RuneSet
	assert.False(t, set.Contains('a'))
}
