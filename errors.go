package softpaint

import "errors"

// Errors returned by Paint and TextureStore. They describe protocol
// violations by the caller: the texture deltas and meshes of a frame
// disagree with the textures the store holds.
var (
	// ErrPatchAbsentTexture is returned when a partial texture update names
	// a texture that was never created or has been freed.
	ErrPatchAbsentTexture = errors.New("softpaint: partial update on absent texture")

	// ErrPatchOutOfBounds is returned when a partial update does not fit
	// inside the stored texture. Textures are never resized by a patch.
	ErrPatchOutOfBounds = errors.New("softpaint: partial update exceeds texture bounds")

	// ErrInvalidImage is returned when an image's pixel count does not
	// match its dimensions, or a dimension is not positive.
	ErrInvalidImage = errors.New("softpaint: invalid image")

	// ErrAbsentTexture is returned when a mesh references a texture the
	// store does not hold at render time.
	ErrAbsentTexture = errors.New("softpaint: mesh referenced absent texture")

	// ErrInvalidScreenSize is returned for non-positive screen dimensions.
	ErrInvalidScreenSize = errors.New("softpaint: invalid screen size")

	// ErrInvalidPixelsPerPoint is returned for a non-positive or
	// non-finite device pixel ratio.
	ErrInvalidPixelsPerPoint = errors.New("softpaint: invalid pixels per point")

	// ErrInvalidMesh describes a mesh whose index list is malformed.
	// Paint skips such meshes rather than failing the frame.
	ErrInvalidMesh = errors.New("softpaint: invalid mesh")
)
