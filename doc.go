// Package softpaint renders the output of an immediate-mode GUI tessellator
// on the CPU.
//
// # Overview
//
// A GUI engine produces, every frame, a set of texture changes
// (TexturesDelta) and an ordered list of clipped triangle meshes
// (ClippedPrimitive). A Painter keeps the textures alive between frames and
// turns each frame into a Frame of packed RGBA pixels, without any graphics
// accelerator.
//
// # Quick Start
//
//	p := softpaint.NewPainter()
//	defer p.Close()
//
//	frame, err := p.Paint(delta, primitives, pixelsPerPoint, [2]int{800, 600})
//	if err != nil {
//	    return err
//	}
//	_ = frame.SavePNG("frame.png")
//
// # Frame Pipeline
//
// Paint applies texture creations and patches, draws every mesh in list
// order, then applies texture frees. For each mesh the clip rectangle is
// converted to a pixel scissor, the texture's filter and wrap mode are
// resolved to a sampler once, and the mesh is rasterized with per-vertex
// color and UV interpolation. Fragments are composited with the
// premultiplied-alpha "over" operator, in linear light.
//
// # Colors
//
// Color32 values (vertex colors and image pixels) are sRGB encoded with
// premultiplied alpha, the convention GUI tessellators emit. Frames hold
// sRGB with straight alpha, ready for display or image encoding.
//
// # Coordinate System
//
//   - Positions are in points; one point is pixelsPerPoint pixels
//   - Origin (0,0) at top-left, Y increases down
//   - UV (0,0) is the top-left texel corner, (1,1) the bottom-right
//
// # Logging
//
// softpaint is silent by default; see SetLogger.
package softpaint
