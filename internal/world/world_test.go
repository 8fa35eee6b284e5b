package world

import "testing"

func TestChunkGetSet(t *testing.T) {
	c := &Chunk{}
	if !c.Empty() {
		t.Fatal("new chunk not empty")
	}
	c.Set(0, 0, 0, VoxelStone)
	c.Set(31, 31, 31, VoxelDirt)
	c.Set(5, 17, 9, VoxelGrass)

	if got := c.Get(0, 0, 0); got != VoxelStone {
		t.Errorf("corner = %v", got)
	}
	if got := c.Get(31, 31, 31); got != VoxelDirt {
		t.Errorf("far corner = %v", got)
	}
	if got := c.Get(5, 17, 9); got != VoxelGrass {
		t.Errorf("interior = %v", got)
	}
	if got := c.Get(5, 9, 17); got != VoxelAir {
		t.Errorf("transposed coordinates hit a block: %v", got)
	}
	if c.Empty() {
		t.Error("chunk with blocks reports empty")
	}
}

func TestNilChunkReadsAir(t *testing.T) {
	var c *Chunk
	if got := c.Get(3, 3, 3); got != VoxelAir {
		t.Fatalf("nil chunk = %v", got)
	}
	if !c.Empty() {
		t.Fatal("nil chunk not empty")
	}
	if c.ContentHash() != 0 {
		t.Fatal("nil chunk hash non-zero")
	}
}

func TestContentHashTracksEdits(t *testing.T) {
	a := &Chunk{}
	b := &Chunk{}
	if a.ContentHash() != b.ContentHash() {
		t.Fatal("identical chunks hash differently")
	}
	h0 := a.ContentHash()
	a.Set(1, 2, 3, VoxelIron)
	h1 := a.ContentHash()
	if h0 == h1 {
		t.Fatal("edit did not change hash")
	}
	a.Set(1, 2, 3, VoxelAir)
	if a.ContentHash() != h0 {
		t.Fatal("reverted chunk hash differs")
	}
}

func TestNeighborhoodCrossChunkReads(t *testing.T) {
	center := &Chunk{}
	center.Set(0, 0, 0, VoxelStone)

	// Chunk on the -X side of the center.
	west := &Chunk{}
	west.Set(ChunkSize-1, 0, 0, VoxelDirt)

	var chunks [27]*Chunk
	chunks[9+3+1] = center
	chunks[0*9+3+1] = west
	n := NewNeighborhood(chunks)

	if got := n.Get(0, 0, 0); got != VoxelStone {
		t.Errorf("center read = %v", got)
	}
	if got := n.Get(-1, 0, 0); got != VoxelDirt {
		t.Errorf("cross-boundary read = %v", got)
	}
	if got := n.Get(-2, 0, 0); got != VoxelAir {
		t.Errorf("west interior = %v", got)
	}
	// Missing neighbour chunk reads as air.
	if got := n.Get(ChunkSize, 5, 5); got != VoxelAir {
		t.Errorf("missing neighbour = %v", got)
	}
	if n.Center() != center {
		t.Error("Center() wrong chunk")
	}
}

func TestVoxelTiles(t *testing.T) {
	if got := VoxelGrass.Tile(1); got != 3 {
		t.Errorf("grass top tile = %d", got)
	}
	if got := VoxelGrass.Tile(4); got != 1 {
		t.Errorf("grass bottom tile = %d", got)
	}
	if got := VoxelStone.Tile(0); got != VoxelStone.Tile(5) {
		t.Error("stone tiles differ per face")
	}
}
