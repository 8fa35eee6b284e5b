package main

import (
	"log"

	"voxquad/internal/config"
	"voxquad/internal/face"
	"voxquad/internal/frame"
	"voxquad/internal/meshing"
	"voxquad/internal/render"
	"voxquad/internal/snapshot"
	"voxquad/internal/world"
)

// verticalChunks is how many chunk layers the demo terrain can reach.
const verticalChunks = 2

type chunkState int

const (
	stateUnloaded chunkState = iota
	statePending
	stateMeshed
)

// streamer keeps the set of resident chunks in sync with the camera: it
// generates terrain on demand, feeds the mesh pool, applies results to the
// renderer, and evicts chunks that fall out of range.
type streamer struct {
	gen      *world.Generator
	pool     *meshing.Pool
	table    *frame.Table
	renderer *render.Renderer

	chunks  map[[3]int32]*world.Chunk
	present map[[3]int32]bool
	states  map[[3]int32]chunkState
	offsets map[[3]int32][face.NormalCount]uint32
	meshes  map[[3]int32]*meshing.ChunkMesh

	framesDirty bool
}

func newStreamer(gen *world.Generator, pool *meshing.Pool, table *frame.Table, renderer *render.Renderer) *streamer {
	return &streamer{
		gen:      gen,
		pool:     pool,
		table:    table,
		renderer: renderer,
		chunks:   make(map[[3]int32]*world.Chunk),
		present:  make(map[[3]int32]bool),
		states:   make(map[[3]int32]chunkState),
		offsets:  make(map[[3]int32][face.NormalCount]uint32),
		meshes:   make(map[[3]int32]*meshing.ChunkMesh),
	}
}

// chunkAt returns the generated chunk for a coordinate, generating and
// memoizing it on first use. A nil chunk (pure air) is memoized too.
func (s *streamer) chunkAt(coord [3]int32) *world.Chunk {
	if s.present[coord] {
		return s.chunks[coord]
	}
	var c *world.Chunk
	if coord[1] >= 0 && coord[1] < verticalChunks {
		c = s.gen.Populate(coord)
	}
	s.chunks[coord] = c
	s.present[coord] = true
	return c
}

func (s *streamer) hoodAt(coord [3]int32) *world.Neighborhood {
	var window [27]*world.Chunk
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				i := (dx+1)*9 + (dy+1)*3 + (dz + 1)
				window[i] = s.chunkAt([3]int32{coord[0] + dx, coord[1] + dy, coord[2] + dz})
			}
		}
	}
	return world.NewNeighborhood(window)
}

// update submits mesh jobs for chunks entering range and evicts chunks that
// left it. Submission stops as soon as the pool queue fills; the remainder
// goes next frame.
func (s *streamer) update(camera *render.Camera) {
	dist := int32(config.GetRenderDistance())
	camX := int32(floorDiv(int64(camera.X), world.ChunkSize))
	camZ := int32(floorDiv(int64(camera.Z), world.ChunkSize))

	for dx := -dist; dx <= dist; dx++ {
		for dz := -dist; dz <= dist; dz++ {
			for y := int32(0); y < verticalChunks; y++ {
				coord := [3]int32{camX + dx, y, camZ + dz}
				if s.states[coord] != stateUnloaded {
					continue
				}
				if !s.submit(coord) {
					return
				}
			}
		}
	}

	s.evict(camX, camZ, dist+2)
}

func (s *streamer) submit(coord [3]int32) bool {
	hood := s.hoodAt(coord)

	offs, ok := s.offsets[coord]
	if !ok {
		for n := uint32(0); n < face.NormalCount; n++ {
			offs[n] = s.table.Insert(frame.Entry{Offset: coord, Normal: n})
		}
		s.offsets[coord] = offs
		s.framesDirty = true
	}

	if !s.pool.Submit(meshing.Job{Coord: coord, Hood: hood, Offsets: offs}) {
		return false
	}
	s.states[coord] = statePending
	return true
}

// drain applies finished mesh results without blocking the frame.
func (s *streamer) drain() {
	for {
		select {
		case r := <-s.pool.Results():
			if r.Err != nil {
				log.Printf("mesh %v: %v", r.Coord, r.Err)
				s.states[r.Coord] = stateUnloaded
				continue
			}
			s.states[r.Coord] = stateMeshed
			if r.Skipped {
				continue
			}
			s.meshes[r.Coord] = r.Mesh
			s.renderer.SetMesh(r.Coord, r.Mesh)
		default:
			return
		}
	}
}

// syncFrames re-uploads the frame table if it changed this frame.
func (s *streamer) syncFrames(renderer *render.Renderer) {
	if !s.framesDirty {
		return
	}
	renderer.SyncFrames(s.table)
	s.framesDirty = false
}

func (s *streamer) evict(camX, camZ, keep int32) {
	for coord, state := range s.states {
		if state != stateMeshed {
			continue
		}
		dx, dz := coord[0]-camX, coord[2]-camZ
		if dx >= -keep && dx <= keep && dz >= -keep && dz <= keep {
			continue
		}
		if offs, ok := s.offsets[coord]; ok {
			for _, idx := range offs {
				s.table.Remove(idx)
			}
			delete(s.offsets, coord)
		}
		s.renderer.DropMesh(coord)
		s.pool.Forget(coord)
		delete(s.meshes, coord)
		delete(s.states, coord)
		delete(s.chunks, coord)
		delete(s.present, coord)
	}
}

// snapshotGroups collects every resident face group for a world snapshot.
func (s *streamer) snapshotGroups() []snapshot.Group {
	var groups []snapshot.Group
	for coord, mesh := range s.meshes {
		offs := s.offsets[coord]
		for n, g := range mesh.Groups {
			if len(g.Faces) == 0 {
				continue
			}
			groups = append(groups, snapshot.Group{
				Entry: s.table.At(offs[n]),
				Faces: g.Faces,
			})
		}
	}
	return groups
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
