// Package raster is a small generic triangle rasterizer.
//
// A Pipeline maps input vertices to clip-space positions plus interpolable
// vertex data, shades fragments from interpolated data and blends them into
// a Target. Render scan-converts a triangle list using pixel-center
// sampling and the top-left fill rule, so triangles sharing an edge never
// both touch a pixel on it.
//
// Coordinates follow the usual convention: NDC x and y span [-1, 1] with
// +y pointing up; pixel (0, 0) is the top-left corner of the target.
package raster
