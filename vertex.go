package blitpass

// Vec2 represents a 2-component float32 vector (texture coordinates).
type Vec2 struct {
	X, Y float32
}

// Vec4 represents a 4-component float32 vector (clip-space position).
type Vec4 struct {
	X, Y, Z, W float32
}

// VertexOutput is the per-vertex output of the coverage-geometry stage:
// a clip-space position plus the texture-coordinate attribute interpolated
// by the rasterizer. It mirrors the VertexOutput struct in
// shaders/blit_gamma.wgsl.
type VertexOutput struct {
	Position  Vec4
	TexCoords Vec2
}

// fullscreenPositions is the fixed clip-space position table, indexed by
// vertex index. The triangle is oversized: two vertices lie outside the
// clip square so that the triangle's intersection with [-1,1]^2 is the
// full square. This covers the viewport with a single triangle and no
// vertex buffer, avoiding the diagonal seam of a two-triangle quad.
var fullscreenPositions = [3]Vec2{
	{-1.0, -1.0},
	{3.0, -1.0},
	{-1.0, 3.0},
}

// fullscreenTexCoords is the fixed texture-coordinate table, indexed by
// the same vertex index. Two entries lie outside [0,1]; only their affine
// interpolation inside the clip square is meaningful. The two tables are
// co-designed: interpolated coordinates reproduce exactly [0,1]^2 over
// the visible region, with y inverted to match the top-left texture
// origin. Changing one table without the other breaks that invariant.
var fullscreenTexCoords = [3]Vec2{
	{0.0, 1.0},
	{2.0, 1.0},
	{0.0, -1.0},
}

// FullscreenVertex is the coverage-geometry vertex stage: given a vertex
// index in {0,1,2} it returns the clip-space position (z=0, w=1) and
// texture coordinate for that vertex.
//
// The function is pure and total over its contract domain. The host's
// draw call supplies exactly 3 vertices and no instancing; indices
// outside {0,1,2} are out of contract and panic on the bounds check.
func FullscreenVertex(index uint32) VertexOutput {
	p := fullscreenPositions[index]
	return VertexOutput{
		Position:  Vec4{X: p.X, Y: p.Y, Z: 0.0, W: 1.0},
		TexCoords: fullscreenTexCoords[index],
	}
}
