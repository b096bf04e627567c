package ir

// TextureSet is the product of one processing run: a tileable diffuse map,
// the maps derived from it, and the scalar material parameters. It is built
// atomically by the pipeline and never mutated afterwards.
type TextureSet struct {
	Diffuse   *PixelImage // 3-channel, working resolution
	Normal    *PixelImage // tangent-space normal map, R=X G=Y B=Z
	Roughness *PixelImage // gray PBR map replicated into 3 channels
	Thumbnail *PixelImage // area-averaged downsample of Diffuse

	RoughnessScalar float64 // [0, 1]
	Metalness       float64 // always 0 for fabric
}
