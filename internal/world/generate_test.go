package world

import "testing"

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(7, 20, 12, true)
	b := NewGenerator(7, 20, 12, true)
	for x := int64(-100); x <= 100; x += 17 {
		for z := int64(-100); z <= 100; z += 13 {
			if a.HeightAt(x, z) != b.HeightAt(x, z) {
				t.Fatalf("HeightAt(%d,%d) differs between identical generators", x, z)
			}
		}
	}
}

func TestGeneratorHeightBounds(t *testing.T) {
	g := NewGenerator(3, 20, 12, false)
	for x := int64(-500); x <= 500; x += 7 {
		h := g.HeightAt(x, -x)
		if h < 20-12 || h > 20+12 {
			t.Fatalf("HeightAt(%d,%d) = %d, outside base 20 +- 12", x, -x, h)
		}
	}
}

func TestGeneratorSurfaceLayers(t *testing.T) {
	g := NewGenerator(5, 20, 8, false)
	c := g.Populate([3]int32{0, 0, 0})
	if c == nil {
		t.Fatal("ground-level chunk generated empty")
	}
	for lx := 0; lx < ChunkSize; lx += 5 {
		for lz := 0; lz < ChunkSize; lz += 5 {
			h := int(g.HeightAt(int64(lx), int64(lz)))
			if h >= ChunkSize {
				continue
			}
			if got := c.Get(lx, h, lz); got != VoxelGrass {
				t.Fatalf("surface at (%d,%d,%d) = %v, want grass", lx, h, lz, got)
			}
			if h+1 < ChunkSize {
				if got := c.Get(lx, h+1, lz); !got.IsAir() {
					t.Fatalf("block above surface at (%d,%d,%d) = %v, want air", lx, h+1, lz, got)
				}
			}
			if h >= 5 {
				if got := c.Get(lx, h-1, lz); got != VoxelDirt {
					t.Fatalf("block under surface at (%d,%d,%d) = %v, want dirt", lx, h-1, lz, got)
				}
				if got := c.Get(lx, 0, lz); got == VoxelDirt || got == VoxelGrass {
					t.Fatalf("deep block at (%d,0,%d) = %v, want stone family", lx, lz, got)
				}
			}
		}
	}
}

func TestGeneratorSkyChunkIsNil(t *testing.T) {
	g := NewGenerator(5, 20, 8, false)
	if c := g.Populate([3]int32{0, 4, 0}); c != nil {
		t.Fatal("chunk far above the surface should generate nil")
	}
}

func TestGeneratorOresOnlyInStone(t *testing.T) {
	g := NewGenerator(11, 24, 4, true)
	c := g.Populate([3]int32{0, 0, 0})
	if c == nil {
		t.Fatal("ground-level chunk generated empty")
	}
	for lx := 0; lx < ChunkSize; lx++ {
		for lz := 0; lz < ChunkSize; lz++ {
			h := int(g.HeightAt(int64(lx), int64(lz)))
			for ly := 0; ly < ChunkSize && ly <= h; ly++ {
				v := c.Get(lx, ly, lz)
				isOre := v == VoxelCoal || v == VoxelIron || v == VoxelCopper
				if isOre && ly >= h-3 {
					t.Fatalf("ore %v at (%d,%d,%d) inside the dirt skin", v, lx, ly, lz)
				}
			}
		}
	}
}
