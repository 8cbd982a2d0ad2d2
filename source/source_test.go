package source_test

import (
	"bytes"
	"testing"

	"github.com/kiln-build/kiln/source"
)

func TestRawSource_Views(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G'}
	s := source.NewRawSource(data)

	if !bytes.Equal(s.Bytes(), data) {
		t.Errorf("Bytes() = %v, want %v", s.Bytes(), data)
	}
	if s.Size() != 4 {
		t.Errorf("Size() = %d, want 4", s.Size())
	}
	if s.Text() != string(data) {
		t.Errorf("Text() = %q, want %q", s.Text(), string(data))
	}
}

func TestRawSource_Empty(t *testing.T) {
	s := source.NewRawSource(nil)
	if s.Size() != 0 {
		t.Errorf("Size() = %d, want 0", s.Size())
	}
	if s.Text() != "" {
		t.Errorf("Text() = %q, want empty", s.Text())
	}
}

func TestTextSource_Views(t *testing.T) {
	s := source.NewTextSource("hello")

	if s.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", s.Text(), "hello")
	}
	if !bytes.Equal(s.Bytes(), []byte("hello")) {
		t.Errorf("Bytes() = %v, want %v", s.Bytes(), []byte("hello"))
	}
	if s.Size() != 5 {
		t.Errorf("Size() = %d, want 5", s.Size())
	}
}

func TestTextSource_MultibyteSize(t *testing.T) {
	// Size is byte length of the UTF-8 encoding, not rune count.
	s := source.NewTextSource("héllo")
	if s.Size() != 6 {
		t.Errorf("Size() = %d, want 6", s.Size())
	}
}
