// vox2glb converts packed face snapshots to binary glTF and can generate
// demo snapshots without a GPU, so the codec and reconstruction paths are
// exercisable headless.
package main

import (
	"fmt"
	"os"
	"strconv"

	"voxquad/internal/export"
	"voxquad/internal/face"
	"voxquad/internal/frame"
	"voxquad/internal/meshing"
	"voxquad/internal/snapshot"
	"voxquad/internal/world"
)

func usage() {
	fmt.Println("Usage: vox2glb <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  export input.vqs output.glb     (reconstruct a snapshot into binary glTF)")
	fmt.Println("  gen seed radius output.vqs      (mesh demo terrain into a snapshot)")
	fmt.Println("  info input.vqs                  (print snapshot contents)")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "export":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		err = runExport(os.Args[2], os.Args[3])
	case "gen":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		err = runGen(os.Args[2], os.Args[3], os.Args[4])
	case "info":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		err = runInfo(os.Args[2])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func runExport(inPath, outPath string) error {
	groups, err := snapshot.ReadFile(inPath)
	if err != nil {
		return err
	}
	return export.WriteGLB(groups, outPath)
}

// runGen meshes a (2r+1)² column square of demo terrain synchronously and
// writes the packed result as a snapshot.
func runGen(seedArg, radiusArg, outPath string) error {
	seed, err := strconv.ParseInt(seedArg, 10, 64)
	if err != nil {
		return fmt.Errorf("bad seed %q: %w", seedArg, err)
	}
	radius, err := strconv.Atoi(radiusArg)
	if err != nil || radius < 0 {
		return fmt.Errorf("bad radius %q", radiusArg)
	}

	gen := world.NewGenerator(seed, 20, 12, true)
	chunkAt := func(coord [3]int32) *world.Chunk {
		if coord[1] < 0 || coord[1] > 1 {
			return nil
		}
		return gen.Populate(coord)
	}

	table := frame.NewTable()
	var groups []snapshot.Group
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			for cy := int32(0); cy < 2; cy++ {
				coord := [3]int32{int32(cx), cy, int32(cz)}

				var window [27]*world.Chunk
				for dx := int32(-1); dx <= 1; dx++ {
					for dy := int32(-1); dy <= 1; dy++ {
						for dz := int32(-1); dz <= 1; dz++ {
							i := (dx+1)*9 + (dy+1)*3 + (dz + 1)
							window[i] = chunkAt([3]int32{coord[0] + dx, coord[1] + dy, coord[2] + dz})
						}
					}
				}
				hood := world.NewNeighborhood(window)

				var offs [face.NormalCount]uint32
				var entries [face.NormalCount]frame.Entry
				for n := uint32(0); n < face.NormalCount; n++ {
					entries[n] = frame.Entry{Offset: coord, Normal: n}
					offs[n] = table.Insert(entries[n])
				}

				mesh, err := meshing.MeshChunk(hood, offs)
				if err != nil {
					return fmt.Errorf("mesh %v: %w", coord, err)
				}
				for n, g := range mesh.Groups {
					if len(g.Faces) == 0 {
						continue
					}
					groups = append(groups, snapshot.Group{Entry: entries[n], Faces: g.Faces})
				}
			}
		}
	}

	if err := snapshot.WriteFile(outPath, groups, snapshot.CompZstd); err != nil {
		return err
	}
	fmt.Printf("wrote %d groups to %s\n", len(groups), outPath)
	return nil
}

func runInfo(inPath string) error {
	groups, err := snapshot.ReadFile(inPath)
	if err != nil {
		return err
	}
	total := 0
	for _, g := range groups {
		total += len(g.Faces)
	}
	fmt.Printf("%s: %d groups, %d faces\n", inPath, len(groups), total)
	for i, g := range groups {
		fmt.Printf("  group %d: chunk (%d,%d,%d) normal %d, %d faces\n",
			i, g.Entry.Offset[0], g.Entry.Offset[1], g.Entry.Offset[2], g.Entry.Normal, len(g.Faces))
	}
	return nil
}
