// Package pathtpl expands output filename templates.
//
// A template is a pattern string with bracket tokens, e.g.
// "static/[contenthash][ext]" or "[path][name].[contenthash:8][ext]".
// Expansion is pure: the same template, path, and hash always produce the
// same filename.
package pathtpl

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// tokenPattern matches any bracket sequence, well-formed or not, so
// unknown token shapes are rejected instead of leaking into filenames.
var tokenPattern = regexp.MustCompile(`\[[^\]]*\]`)

// Data carries the values a template can reference.
type Data struct {
	// ContentHash is the short (truncated) content hash.
	ContentHash string
	// Path is the asset's build-root-relative path, slash-separated,
	// without a leading "./".
	Path string
}

// Resolve expands the template. Supported tokens:
//
//	[contenthash]    short content hash
//	[contenthash:N]  content hash truncated to N characters
//	[hash]           alias for [contenthash], also accepts :N
//	[name]           file name without extension
//	[ext]            extension including the leading dot ("" if none)
//	[base]           file name including extension
//	[path]           directory part with trailing "/" ("" for root files)
//
// Any other bracket sequence is an error, including a :N modifier on a
// non-hash token.
func Resolve(template string, data Data) (string, error) {
	name := path.Base(data.Path)
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	dir := ""
	if d := path.Dir(data.Path); d != "." && d != "/" {
		dir = d + "/"
	}

	var badToken string
	badFound := false
	reject := func(token, match string) string {
		if !badFound {
			badToken = token
			badFound = true
		}
		return match
	}

	resolved := tokenPattern.ReplaceAllStringFunc(template, func(match string) string {
		token := match[1 : len(match)-1]
		tokenName, length := token, 0
		if i := strings.IndexByte(token, ':'); i >= 0 {
			n, err := strconv.Atoi(token[i+1:])
			if err != nil || n <= 0 {
				return reject(token, match)
			}
			tokenName, length = token[:i], n
		}

		switch tokenName {
		case "contenthash", "hash":
			if length > 0 && length < len(data.ContentHash) {
				return data.ContentHash[:length]
			}
			return data.ContentHash
		case "name", "ext", "base", "path":
			// The :N modifier only applies to hash tokens.
			if length > 0 {
				return reject(token, match)
			}
		default:
			return reject(token, match)
		}

		switch tokenName {
		case "name":
			return stem
		case "ext":
			return ext
		case "base":
			return name
		default:
			return dir
		}
	})
	if badFound {
		return "", fmt.Errorf("unknown filename template token [%s] in %q", badToken, template)
	}
	return resolved, nil
}
