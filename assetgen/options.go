package assetgen

import (
	"github.com/kiln-build/kiln/graph"
	"github.com/kiln-build/kiln/source"
)

// Declarative data URL encoding values. The set is closed: anything else
// is a configuration error. There is no implicit default here; the config
// normalizer supplies EncodingBase64 when a rule leaves encoding unset.
const (
	// EncodingBase64 encodes the raw bytes with standard base64.
	EncodingBase64 = "base64"
	// EncodingNone disables transfer encoding; the payload is the
	// percent-encoded text content. Corresponds to `encoding: false`
	// in the config file.
	EncodingNone = "false"
)

// CustomEncoder produces a complete data URL for an inline asset. The
// returned string is trusted verbatim; no validation is performed.
type CustomEncoder func(content source.Source, filename string, module *graph.AssetModule) string

// DataURL selects how an inline asset is encoded: either a custom encoder
// function, or the declarative encoding/mimetype pair. A non-nil Custom
// takes precedence and the declarative fields are ignored.
type DataURL struct {
	Custom   CustomEncoder
	Encoding string
	// Mimetype overrides extension-based lookup when non-empty.
	Mimetype string
}

// Options is the build configuration for one generator: how resource
// filenames are derived and how inline assets are encoded.
type Options struct {
	// FilenameTemplate is the output filename pattern, expanded by
	// pathtpl with the short content hash and the build-root-relative
	// asset path.
	FilenameTemplate string
	// HashFunction identifies the content hash function (hashing package).
	HashFunction string
	// HashSalt, when non-empty, is mixed into the hash before the content.
	HashSalt string
	// HashDigest is the digest encoding (hashing package).
	HashDigest string
	// HashDigestLength truncates the digest for filename use. The full
	// digest is retained on build-info untruncated.
	HashDigestLength int
	// DataURL configures inline encoding.
	DataURL DataURL
}
