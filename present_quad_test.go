// present_quad_test.go - Procedural quad geometry tests

package main

import "testing"

func TestQuadCoversClipRectangle(t *testing.T) {
	minX, minY := float32(1), float32(1)
	maxX, maxY := float32(-1), float32(-1)
	for i := 0; i < QuadVertexCount; i++ {
		x, y := QuadVertex(i)
		if x != -1 && x != 1 {
			t.Errorf("vertex %d: x = %v, want -1 or 1", i, x)
		}
		if y != -1 && y != 1 {
			t.Errorf("vertex %d: y = %v, want -1 or 1", i, y)
		}
		minX, minY = minf(minX, x), minf(minY, y)
		maxX, maxY = maxf(maxX, x), maxf(maxY, y)
	}
	if minX != -1 || minY != -1 || maxX != 1 || maxY != 1 {
		t.Errorf("quad extent [%v,%v]x[%v,%v], want [-1,1]x[-1,1]", minX, maxX, minY, maxY)
	}
}

func TestQuadTriangleOrder(t *testing.T) {
	// Two triangles over four corners, {0,1,2} then {1,3,2}.
	want := [QuadVertexCount][2]float32{
		{-1, -1},
		{-1, 1},
		{1, -1},
		{-1, 1},
		{1, 1},
		{1, -1},
	}
	for i, w := range want {
		x, y := QuadVertex(i)
		if x != w[0] || y != w[1] {
			t.Errorf("vertex %d: (%v,%v), want (%v,%v)", i, x, y, w[0], w[1])
		}
	}
}

func TestTexturedQuadMatchesPositions(t *testing.T) {
	for i := 0; i < QuadVertexCount; i++ {
		x, y := QuadVertex(i)
		tv := TexturedQuadVertex(i)
		if tv.Position[0] != x || tv.Position[1] != y {
			t.Errorf("vertex %d: textured position (%v,%v), direct position (%v,%v)",
				i, tv.Position[0], tv.Position[1], x, y)
		}
	}
}

// The V flip is applied in the vertex data and nowhere else: clip-space top
// (y=+1) must carry v=0 (texture top), clip-space bottom v=1.
func TestTexturedQuadVFlip(t *testing.T) {
	for i := 0; i < QuadVertexCount; i++ {
		tv := TexturedQuadVertex(i)
		wantU := float32(0)
		if tv.Position[0] == 1 {
			wantU = 1
		}
		wantV := float32(1)
		if tv.Position[1] == 1 {
			wantV = 0
		}
		if tv.UV[0] != wantU || tv.UV[1] != wantV {
			t.Errorf("vertex %d at (%v,%v): UV (%v,%v), want (%v,%v)",
				i, tv.Position[0], tv.Position[1], tv.UV[0], tv.UV[1], wantU, wantV)
		}
	}
}

func TestQuadPixelBoundsFullSurface(t *testing.T) {
	sizes := [][2]int{{256, 240}, {1920, 1080}, {100, 100}, {1, 1}}
	for _, s := range sizes {
		x0, y0, x1, y1 := quadPixelBounds(s[0], s[1])
		if x0 != 0 || y0 != 0 || x1 != s[0] || y1 != s[1] {
			t.Errorf("bounds on %dx%d: (%d,%d)-(%d,%d), want (0,0)-(%d,%d)",
				s[0], s[1], x0, y0, x1, y1, s[0], s[1])
		}
	}
}
