package tui

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrUnsupportedAsset is returned for references the resolver cannot draw.
var ErrUnsupportedAsset = errors.New("unsupported asset")

// Placeholder is drawn in place of an asset that failed to resolve.
const Placeholder = "▢"

// AssetResolver turns an asset reference into something drawable in a
// terminal cell grid.
type AssetResolver interface {
	Resolve(ref string) (string, error)
}

// AssetFunc adapts a function to AssetResolver.
type AssetFunc func(ref string) (string, error)

func (f AssetFunc) Resolve(ref string) (string, error) { return f(ref) }

// GlyphResolver draws raster images as a labelled block and vector logos
// as a single glyph.
var GlyphResolver AssetFunc = func(ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", fmt.Errorf("%w: empty reference", ErrUnsupportedAsset)
	}
	switch strings.ToLower(path.Ext(ref)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return "▦ " + path.Base(ref), nil
	case ".svg":
		return "◆", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAsset, ref)
	}
}
