// present_quad.go - Procedural fullscreen quad geometry for FamiPresent

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/FamiPresent
License: GPLv3 or later
*/

package main

// The presentation pass draws a single procedural quad: six vertex
// invocations, no vertex or index buffers. The six invocations trace two
// triangles over four fixed clip-space corners, covering the full [-1,1]²
// clip rectangle with no gap and no overlap beyond the shared diagonal.
// Because the quad always spans the whole surface, the fragment stage runs
// exactly once for every covered output pixel at any output resolution;
// stretching to the window's aspect ratio is implicit (no letterboxing).

// QuadVertexCount is the number of vertex invocations per presentation draw.
const QuadVertexCount = 6

// quadCorners are the four corners of the clip rectangle. Corner order is
// bottom-left, top-left, bottom-right, top-right.
var quadCorners = [4][2]float32{
	{-1, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
}

// quadIndices walks the corners as two triangles: {0,1,2} and {1,3,2}.
var quadIndices = [QuadVertexCount]int{0, 1, 2, 1, 3, 2}

// QuadVertex returns the clip-space position for vertex invocation i of the
// direct pipeline's quad. Valid invocations are 0..5; the host never issues
// an index outside that range.
func QuadVertex(i int) (x, y float32) {
	c := quadCorners[quadIndices[i]]
	return c[0], c[1]
}

// TexturedVertex pairs a clip-space corner with the texture coordinate the
// rasterizer interpolates across the quad for the texture pipeline.
type TexturedVertex struct {
	Position [2]float32
	UV       [2]float32
}

// texturedQuad lists the six corner/UV pairs explicitly. The V axis is
// flipped relative to the naive corner mapping: texture row 0 is the top of
// the console image while clip-space +1 is the top of the surface, so the
// top corners carry v=0 and the bottom corners v=1. The flip is applied
// here and nowhere else.
var texturedQuad = [QuadVertexCount]TexturedVertex{
	{Position: [2]float32{-1, -1}, UV: [2]float32{0, 1}},
	{Position: [2]float32{-1, 1}, UV: [2]float32{0, 0}},
	{Position: [2]float32{1, -1}, UV: [2]float32{1, 1}},
	{Position: [2]float32{-1, 1}, UV: [2]float32{0, 0}},
	{Position: [2]float32{1, 1}, UV: [2]float32{1, 0}},
	{Position: [2]float32{1, -1}, UV: [2]float32{1, 1}},
}

// TexturedQuadVertex returns the corner/UV pair for vertex invocation i of
// the texture pipeline's quad. Same invocation contract as QuadVertex.
func TexturedQuadVertex(i int) TexturedVertex {
	return texturedQuad[i]
}

// quadPixelBounds converts the quad's clip-space extent to pixel bounds on a
// surface of the given size. The software executor derives its fragment loop
// from the vertex stage output instead of assuming full coverage, so the two
// stages cannot drift apart.
func quadPixelBounds(width, height int) (x0, y0, x1, y1 int) {
	minX, minY := float32(1), float32(1)
	maxX, maxY := float32(-1), float32(-1)
	for i := 0; i < QuadVertexCount; i++ {
		x, y := QuadVertex(i)
		minX = minf(minX, x)
		minY = minf(minY, y)
		maxX = maxf(maxX, x)
		maxY = maxf(maxY, y)
	}
	x0 = int((minX + 1) * 0.5 * float32(width))
	y0 = int((minY + 1) * 0.5 * float32(height))
	x1 = int((maxX + 1) * 0.5 * float32(width))
	y1 = int((maxY + 1) * 0.5 * float32(height))
	return x0, y0, x1, y1
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
