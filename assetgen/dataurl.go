package assetgen

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"path"

	"github.com/kiln-build/kiln/graph"
	"github.com/kiln-build/kiln/mediatype"
)

// dataURL produces the inline literal for a module:
// data:<mimetype>[;base64],<payload>.
func (g *Generator) dataURL(module *graph.AssetModule) (string, error) {
	opts := g.opts.DataURL
	if opts.Custom != nil {
		return opts.Custom(module.Source, module.ResourcePath, module), nil
	}

	mimeType := opts.Mimetype
	if mimeType == "" {
		resolved, ok := mediatype.ForPath(module.ResourcePath)
		if !ok {
			return "", &ConfigError{
				Reason: fmt.Sprintf("cannot determine a mimetype for extension %q of %s",
					path.Ext(module.ResourcePath), module.ResourcePath),
				Hint: "set an explicit mimetype on the asset rule, or emit the asset as a resource file instead of inlining it",
			}
		}
		mimeType = resolved
	}

	switch opts.Encoding {
	case EncodingBase64:
		payload := base64.StdEncoding.EncodeToString(module.Source.Bytes())
		return "data:" + mimeType + ";base64," + payload, nil
	case EncodingNone:
		payload := url.PathEscape(module.Source.Text())
		return "data:" + mimeType + "," + payload, nil
	default:
		return "", &ConfigError{
			Reason: fmt.Sprintf("unsupported data URL encoding %q", opts.Encoding),
			Hint:   `use "base64" or disable encoding with false`,
		}
	}
}
