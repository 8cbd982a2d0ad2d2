// Package source provides read-only content containers for module sources.
//
// A Source exposes both the raw byte view and the text view of a module's
// original content, plus its exact size. Containers are immutable once
// created; callers must not mutate the byte slice returned by Bytes.
package source

// Source is a read-only view over a module's original content.
type Source interface {
	// Bytes returns the raw byte form of the content.
	Bytes() []byte
	// Text returns the textual form of the content. For byte-native
	// content this is the UTF-8 decoding of the raw bytes.
	Text() string
	// Size returns the exact content size in bytes.
	Size() int64
}

// RawSource wraps byte-native content.
type RawSource struct {
	data []byte
}

// NewRawSource creates a Source over raw bytes. The slice is not copied;
// the caller must not mutate it afterwards.
func NewRawSource(data []byte) *RawSource {
	return &RawSource{data: data}
}

// Bytes returns the raw bytes.
func (s *RawSource) Bytes() []byte { return s.data }

// Text returns the bytes decoded as UTF-8 text.
func (s *RawSource) Text() string { return string(s.data) }

// Size returns the exact byte length.
func (s *RawSource) Size() int64 { return int64(len(s.data)) }

// TextSource wraps text-native content.
type TextSource struct {
	text string
}

// NewTextSource creates a Source over text content.
func NewTextSource(text string) *TextSource {
	return &TextSource{text: text}
}

// Bytes returns the UTF-8 encoding of the text.
func (s *TextSource) Bytes() []byte { return []byte(s.text) }

// Text returns the text.
func (s *TextSource) Text() string { return s.text }

// Size returns the exact byte length of the UTF-8 encoding.
func (s *TextSource) Size() int64 { return int64(len(s.text)) }
