package invite

import (
	"embed"
	"encoding/base64"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Asset names used by the built-in templates.
const (
	AssetImenaLogo   = "imena.png"
	AssetKwibukaIcon = "kwibuka.png"
	AssetKwibukaBg   = "kwibuka-bg.jpeg"
	AssetBeigeBg     = "beige-bg.jpeg"
)

//go:embed assets/*
var embeddedAssets embed.FS

// AssetsFS exposes the embedded template art.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// This should never happen because the directory is embedded at build time.
		panic(fmt.Errorf("invite: failed to prepare embedded assets: %w", err))
	}
	return sub
}

// AssetResolver reads template-local art and inlines it into markup as
// base64 data URIs, so the rendering backend never touches the filesystem
// or network while capturing output.
type AssetResolver struct {
	fsys fs.FS
}

// NewAssetResolver creates a resolver over the given filesystem.
func NewAssetResolver(fsys fs.FS) *AssetResolver {
	return &AssetResolver{fsys: fsys}
}

// DefaultAssetResolver resolves against the art embedded in the binary.
func DefaultAssetResolver() *AssetResolver {
	return NewAssetResolver(AssetsFS())
}

// DirAssetResolver resolves against a directory on disk, for deployments
// that override the embedded art.
func DirAssetResolver(dir string) *AssetResolver {
	return NewAssetResolver(os.DirFS(dir))
}

// DataURI reads the named asset and returns it as a base64 data URI.
// A missing or unreadable asset is fatal; templates never substitute
// placeholder art.
func (r *AssetResolver) DataURI(name string) (string, error) {
	if r == nil || r.fsys == nil {
		return "", NewError(KindAsset, "asset resolver is not configured", nil)
	}
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return "", NewError(KindAsset, fmt.Sprintf("asset %q unavailable", name), err)
	}
	return EncodeDataURI(assetMIMEType(name), data), nil
}

// EncodeDataURI encodes bytes as an inline data URI.
func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func assetMIMEType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
