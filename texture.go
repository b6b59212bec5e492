package softpaint

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// TextureKind distinguishes textures allocated by the GUI engine from
// textures registered by the application.
type TextureKind uint8

const (
	// TextureManaged textures are created, patched and freed through
	// TexturesDelta (the font atlas, loaded images).
	TextureManaged TextureKind = iota
	// TextureUser textures are allocated by the application. They still
	// have to be delivered through a TexturesDelta to be drawable here.
	TextureUser
)

// TextureID identifies a texture. It is comparable and used as a map key.
type TextureID struct {
	Kind  TextureKind
	Value uint64
}

// ManagedTexture returns the ID of an engine-managed texture.
func ManagedTexture(n uint64) TextureID {
	return TextureID{Kind: TextureManaged, Value: n}
}

// UserTexture returns the ID of an application texture.
func UserTexture(n uint64) TextureID {
	return TextureID{Kind: TextureUser, Value: n}
}

// String returns a short form such as "managed#0" or "user#7".
func (id TextureID) String() string {
	if id.Kind == TextureUser {
		return fmt.Sprintf("user#%d", id.Value)
	}
	return fmt.Sprintf("managed#%d", id.Value)
}

// TextureOptions controls how a texture is sampled.
//
// The modes are the WebGPU sampler enums. Only Magnification decides the
// sampling strategy; Minification is carried for completeness.
// Undefined values behave like the defaults.
type TextureOptions struct {
	Magnification gputypes.FilterMode
	Minification  gputypes.FilterMode
	WrapMode      gputypes.AddressMode
}

// DefaultTextureOptions samples linearly and clamps to the edge.
var DefaultTextureOptions = TextureOptions{
	Magnification: gputypes.FilterModeLinear,
	Minification:  gputypes.FilterModeLinear,
	WrapMode:      gputypes.AddressModeClampToEdge,
}

// NearestTextureOptions samples the nearest texel and clamps to the edge.
var NearestTextureOptions = TextureOptions{
	Magnification: gputypes.FilterModeNearest,
	Minification:  gputypes.FilterModeNearest,
	WrapMode:      gputypes.AddressModeClampToEdge,
}

// normalized replaces unknown or undefined modes by the defaults.
func (o TextureOptions) normalized() TextureOptions {
	switch o.Magnification {
	case gputypes.FilterModeNearest, gputypes.FilterModeLinear:
	default:
		o.Magnification = DefaultTextureOptions.Magnification
	}
	switch o.Minification {
	case gputypes.FilterModeNearest, gputypes.FilterModeLinear:
	default:
		o.Minification = DefaultTextureOptions.Minification
	}
	switch o.WrapMode {
	case gputypes.AddressModeClampToEdge, gputypes.AddressModeRepeat, gputypes.AddressModeMirrorRepeat:
	default:
		o.WrapMode = DefaultTextureOptions.WrapMode
	}
	return o
}

// ImageDelta is one texture change: either a whole image (Pos == nil) or a
// patch written at Pos = [x, y] into an existing texture.
type ImageDelta struct {
	Image   ColorImage
	Options TextureOptions
	Pos     *[2]int
}

// FullDelta replaces or creates a texture with img.
func FullDelta(img ColorImage, opts TextureOptions) ImageDelta {
	return ImageDelta{Image: img, Options: opts}
}

// PartialDelta patches the region of an existing texture starting at
// (x, y) with img.
func PartialDelta(x, y int, img ColorImage, opts TextureOptions) ImageDelta {
	return ImageDelta{Image: img, Options: opts, Pos: &[2]int{x, y}}
}

// IsWhole reports whether the delta describes the whole texture.
func (d ImageDelta) IsWhole() bool {
	return d.Pos == nil
}

// TextureSet pairs a texture ID with its delta.
type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta lists the texture changes of one frame. Set entries are
// applied in order before drawing; Free entries after drawing.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureID
}

// IsEmpty reports whether the delta changes nothing.
func (d TexturesDelta) IsEmpty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}

// Append merges newer into d, preserving order. Use it to accumulate
// deltas across frames that were not painted.
func (d *TexturesDelta) Append(newer TexturesDelta) {
	d.Set = append(d.Set, newer.Set...)
	d.Free = append(d.Free, newer.Free...)
}

// Clear empties the delta, keeping allocated capacity.
func (d *TexturesDelta) Clear() {
	d.Set = d.Set[:0]
	d.Free = d.Free[:0]
}
