package world

import (
	"math"
)

// Generator produces the demo terrain: a value-noise heightfield with a
// grass skin, dirt beneath, stone below that, and optional ore pockets.
type Generator struct {
	seed       int64
	scale      float64
	baseHeight int
	amp        float64
	ores       bool
}

func NewGenerator(seed int64, baseHeight, amplitude int, ores bool) *Generator {
	return &Generator{
		seed:       seed,
		scale:      1.0 / 48.0,
		baseHeight: baseHeight,
		amp:        float64(amplitude),
		ores:       ores,
	}
}

// HeightAt computes the surface height (block Y) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int64) int64 {
	x := float64(worldX) * g.scale
	z := float64(worldZ) * g.scale
	n := valueNoise2D(x, z, g.seed) // [0,1]
	height := float64(g.baseHeight) + (n*2-1)*g.amp
	if height < 0 {
		height = 0
	}
	return int64(math.Floor(height))
}

// Populate fills the chunk at the given grid coordinate. Returns nil when
// the chunk lies entirely above the surface, so callers can skip empty air.
func (g *Generator) Populate(coord [3]int32) *Chunk {
	baseX := int64(coord[0]) * ChunkSize
	baseY := int64(coord[1]) * ChunkSize
	baseZ := int64(coord[2]) * ChunkSize

	var c *Chunk
	for lx := 0; lx < ChunkSize; lx++ {
		for lz := 0; lz < ChunkSize; lz++ {
			height := g.HeightAt(baseX+int64(lx), baseZ+int64(lz))
			top := height - baseY
			if top < 0 {
				continue
			}
			if c == nil {
				c = &Chunk{}
			}
			for ly := int64(0); ly < ChunkSize && ly <= top; ly++ {
				worldY := baseY + ly
				var v Voxel
				switch {
				case worldY == height:
					v = VoxelGrass
				case worldY >= height-3:
					v = VoxelDirt
				default:
					v = VoxelStone
					if g.ores {
						v = g.oreAt(baseX+int64(lx), worldY, baseZ+int64(lz))
					}
				}
				c.Set(lx, int(ly), lz, v)
			}
		}
	}
	return c
}

// oreAt sprinkles ore into stone from a per-block hash, denser with depth.
func (g *Generator) oreAt(x, y, z int64) Voxel {
	h := hash3(x, y, z, g.seed)
	switch {
	case h%97 == 0:
		return VoxelCoal
	case h%211 == 0:
		return VoxelIron
	case h%331 == 0 && y < 8:
		return VoxelCopper
	default:
		return VoxelStone
	}
}

// Deterministic 2D value noise over an integer lattice, SplitMix64-style
// hashing for the lattice values.

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func hash3(x, y, z, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0xBF58476D1CE4E5B9 + uint64(z) + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, z, seed int64) float64 {
	h := hash3(x, 0, z, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)

	fx := fade(x - x0)
	fz := fade(z - z0)

	ix, iz := int64(x0), int64(z0)
	v00 := latticeValue(ix, iz, seed)
	v10 := latticeValue(ix+1, iz, seed)
	v01 := latticeValue(ix, iz+1, seed)
	v11 := latticeValue(ix+1, iz+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz)
}
