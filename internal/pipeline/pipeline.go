// Package pipeline turns one fabric photograph into a PBR texture set:
// tileable diffuse, tangent-space normal map, roughness map, scalar
// roughness estimate and thumbnail, persisted under a caller-minted
// fabric identity.
package pipeline

import (
	"fmt"
	"io"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/davesmith10/fabricpbr/internal/ir"
	"github.com/davesmith10/fabricpbr/internal/lighting"
	"github.com/davesmith10/fabricpbr/internal/store"
	"github.com/davesmith10/fabricpbr/internal/texture"
)

// GeometryCorrector rectifies perspective distortion in a fabric photo
// before any other stage runs. The pipeline ships with Identity only; a
// quadrilateral-detection implementation can be substituted here without
// touching the rest of the stages.
type GeometryCorrector interface {
	Correct(img *ir.PixelImage) (*ir.PixelImage, error)
}

// Identity is the placeholder geometry stage: it returns the photo
// unchanged and never fails.
type Identity struct{}

func (Identity) Correct(img *ir.PixelImage) (*ir.PixelImage, error) {
	return img, nil
}

// Config carries the immutable settings of a Processor. The zero value of
// any field falls back to the default below.
type Config struct {
	OutputRoot  string // texture files land under OutputRoot/<id>/
	TextureSize int    // working resolution, default 1024
	ThumbSize   int    // thumbnail resolution, default 256

	// NormalStrength and RoughnessScale are empirical tuning constants
	// (see texture.DefaultNormalStrength, texture.DefaultRoughnessScale).
	NormalStrength float64
	RoughnessScale float64

	Geometry GeometryCorrector // default Identity
}

func (c Config) withDefaults() Config {
	if c.OutputRoot == "" {
		c.OutputRoot = "data/fabrics"
	}
	if c.TextureSize == 0 {
		c.TextureSize = 1024
	}
	if c.ThumbSize == 0 {
		c.ThumbSize = 256
	}
	if c.NormalStrength == 0 {
		c.NormalStrength = texture.DefaultNormalStrength
	}
	if c.RoughnessScale == 0 {
		c.RoughnessScale = texture.DefaultRoughnessScale
	}
	if c.Geometry == nil {
		c.Geometry = Identity{}
	}
	return c
}

// Result is the metadata returned to the caller: filesystem paths, inline
// data-URL encodings, and the scalar material parameters.
type Result struct {
	DiffusePath   string
	NormalPath    string
	RoughnessPath string
	ThumbnailPath string

	DiffuseURL   string
	NormalURL    string
	RoughnessURL string

	Roughness float64 // [0, 1]
	Metalness float64 // always 0 for fabric
}

// Processor is an explicitly constructed pipeline instance. It holds no
// mutable state, so one Processor may serve concurrent runs for different
// identities.
type Processor struct {
	cfg   Config
	store *store.Store
}

// New builds a Processor from cfg, filling in defaults for zero fields.
func New(cfg Config) *Processor {
	cfg = cfg.withDefaults()
	return &Processor{
		cfg:   cfg,
		store: store.New(cfg.OutputRoot),
	}
}

// Decode reads one raster image (any format registered with the imaging
// decoder) into the working RGB representation.
func Decode(r io.Reader) (*ir.PixelImage, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, failf(KindDecode, "decoding input image: %w", err)
	}
	return ir.FromImage(img), nil
}

// Process runs the full pipeline on a decoded photo and persists the
// texture set under id. No file is written until every map has been
// computed and compressed, so a failed run leaves no partial set on disk.
func (p *Processor) Process(img *ir.PixelImage, id string) (*Result, error) {
	set, err := p.buildTextureSet(img)
	if err != nil {
		return nil, err
	}

	enc, err := store.Encode(set)
	if err != nil {
		return nil, &Error{Kind: KindEncode, Err: err}
	}
	saved, err := p.store.Write(id, enc)
	if err != nil {
		return nil, &Error{Kind: KindPersist, Err: err}
	}

	return &Result{
		DiffusePath:   saved.DiffusePath,
		NormalPath:    saved.NormalPath,
		RoughnessPath: saved.RoughnessPath,
		ThumbnailPath: saved.ThumbnailPath,
		DiffuseURL:    enc.DiffuseURL,
		NormalURL:     enc.NormalURL,
		RoughnessURL:  enc.RoughnessURL,
		Roughness:     set.RoughnessScalar,
		Metalness:     set.Metalness,
	}, nil
}

// buildTextureSet computes all in-memory maps for one run:
// geometry → lighting → framing → tiling, then the derived maps in
// parallel off the immutable tiled diffuse.
func (p *Processor) buildTextureSet(img *ir.PixelImage) (*ir.TextureSet, error) {
	if err := validateDims(img); err != nil {
		return nil, err
	}

	corrected, err := p.cfg.Geometry.Correct(img)
	if err != nil {
		return nil, fmt.Errorf("geometry correction: %w", err)
	}
	if err := validateDims(corrected); err != nil {
		return nil, err
	}

	normalized := lighting.Normalize(corrected)
	framed := texture.Frame(normalized, p.cfg.TextureSize)
	diffuse := texture.Tile(framed)

	// The three derived outputs only read the tiled diffuse; none of them
	// mutates shared state.
	var (
		wg        sync.WaitGroup
		normalMap *ir.PixelImage
		roughMap  *ir.PixelImage
		roughness float64
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		normalMap = texture.NormalMap(diffuse, p.cfg.NormalStrength)
	}()
	go func() {
		defer wg.Done()
		roughMap = texture.RoughnessMap(diffuse)
	}()
	go func() {
		defer wg.Done()
		roughness = texture.EstimateRoughness(diffuse, p.cfg.RoughnessScale)
	}()
	wg.Wait()

	return &ir.TextureSet{
		Diffuse:         diffuse,
		Normal:          normalMap,
		Roughness:       roughMap,
		Thumbnail:       texture.Thumbnail(diffuse, p.cfg.ThumbSize),
		RoughnessScalar: roughness,
		Metalness:       0,
	}, nil
}

func validateDims(img *ir.PixelImage) error {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return failf(KindInvalidDimensions, "image must have positive width and height")
	}
	if want := img.Width * img.Height * img.Channels; len(img.Pix) != want {
		return failf(KindInvalidDimensions, "pixel buffer is %d bytes, want %d", len(img.Pix), want)
	}
	return nil
}
