// Package store compresses a finished texture set and persists it under a
// per-fabric identity. Encoding and writing are separate steps so the
// pipeline can guarantee no file hits disk until every map encoded cleanly.
package store

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/davesmith10/fabricpbr/internal/ir"
)

// JPEG quality levels. Full-size maps persist at 90; the thumbnail and the
// inline data-URL encodings trade a little fidelity for size at 85.
const (
	MapQuality   = 90
	ThumbQuality = 85
	EmbedQuality = 85
)

// Output filenames under <root>/<id>/.
const (
	DiffuseFile   = "diffuse.jpg"
	NormalFile    = "normal.jpg"
	RoughnessFile = "roughness.jpg"
	ThumbFile     = "thumb.jpg"
)

// EncodedTextures holds every output byte buffer of one run, produced
// before anything is written.
type EncodedTextures struct {
	Diffuse   []byte
	Normal    []byte
	Roughness []byte
	Thumb     []byte

	// Self-contained data:image/jpeg;base64 URLs for callers that cannot
	// fetch files.
	DiffuseURL   string
	NormalURL    string
	RoughnessURL string
}

// SavedTextures reports where one run's files landed.
type SavedTextures struct {
	DiffusePath   string
	NormalPath    string
	RoughnessPath string
	ThumbnailPath string
}

// Store writes texture sets under a root directory, one subdirectory per
// fabric identity.
type Store struct {
	Root string
}

// New returns a Store rooted at dir. The root itself is created lazily on
// the first write.
func New(dir string) *Store {
	return &Store{Root: dir}
}

// Encode compresses all four maps and builds the embeddable encodings.
// Nothing touches the filesystem here.
func Encode(set *ir.TextureSet) (*EncodedTextures, error) {
	enc := &EncodedTextures{}

	var err error
	if enc.Diffuse, err = encodeJPEG(set.Diffuse, MapQuality); err != nil {
		return nil, fmt.Errorf("diffuse: %w", err)
	}
	if enc.Normal, err = encodeJPEG(set.Normal, MapQuality); err != nil {
		return nil, fmt.Errorf("normal: %w", err)
	}
	if enc.Roughness, err = encodeJPEG(set.Roughness, MapQuality); err != nil {
		return nil, fmt.Errorf("roughness: %w", err)
	}
	if enc.Thumb, err = encodeJPEG(set.Thumbnail, ThumbQuality); err != nil {
		return nil, fmt.Errorf("thumbnail: %w", err)
	}

	if enc.DiffuseURL, err = dataURL(set.Diffuse); err != nil {
		return nil, fmt.Errorf("diffuse data URL: %w", err)
	}
	if enc.NormalURL, err = dataURL(set.Normal); err != nil {
		return nil, fmt.Errorf("normal data URL: %w", err)
	}
	if enc.RoughnessURL, err = dataURL(set.Roughness); err != nil {
		return nil, fmt.Errorf("roughness data URL: %w", err)
	}

	return enc, nil
}

// Write persists the encoded maps under <root>/<id>/. Directory creation is
// idempotent: a concurrent run racing on the same identity directory is not
// an error.
func (s *Store) Write(id string, enc *EncodedTextures) (*SavedTextures, error) {
	dir := filepath.Join(s.Root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	saved := &SavedTextures{
		DiffusePath:   filepath.Join(dir, DiffuseFile),
		NormalPath:    filepath.Join(dir, NormalFile),
		RoughnessPath: filepath.Join(dir, RoughnessFile),
		ThumbnailPath: filepath.Join(dir, ThumbFile),
	}

	files := []struct {
		path string
		data []byte
	}{
		{saved.DiffusePath, enc.Diffuse},
		{saved.NormalPath, enc.Normal},
		{saved.RoughnessPath, enc.Roughness},
		{saved.ThumbnailPath, enc.Thumb},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.path, err)
		}
	}
	return saved, nil
}

func encodeJPEG(img *ir.PixelImage, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img.ToNRGBA(), imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func dataURL(img *ir.PixelImage) (string, error) {
	data, err := encodeJPEG(img, EmbedQuality)
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}
