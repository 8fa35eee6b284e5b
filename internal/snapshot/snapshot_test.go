package snapshot

import (
	"strings"
	"testing"

	"voxquad/internal/face"
	"voxquad/internal/frame"
)

func sampleGroups(t *testing.T) []Group {
	t.Helper()
	mk := func(in face.Instance) face.Packed {
		p, err := in.Encode(0)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		return p
	}
	return []Group{
		{
			Entry: frame.Entry{Offset: [3]int32{0, 0, 0}, Normal: face.NormalUp},
			Faces: []face.Packed{
				mk(face.Instance{X: 1, Y: 2, Z: 3, Width: 4, Height: 5, Tile: 7}),
				mk(face.Instance{X: 6, Y: 6, Z: 6, Width: 1, Height: 1, Tile: 9, AO: [4]uint8{1, 2, 3, 0}, DiagSwap: true}),
			},
		},
		{
			Entry: frame.Entry{Offset: [3]int32{-2, 0, 5}, Normal: face.NormalNegX},
			Faces: []face.Packed{
				mk(face.Instance{X: 0, Y: 31, Z: 31, Width: 32, Height: 32, Tile: 255}),
			},
		},
		{
			Entry: frame.Entry{Offset: [3]int32{1, 1, 1}, Normal: face.NormalPosZ},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	groups := sampleGroups(t)
	for _, comp := range []Compression{CompNone, CompZstd} {
		data, err := Save(groups, comp)
		if err != nil {
			t.Fatalf("save comp=%d: %v", comp, err)
		}
		got, err := Load(data)
		if err != nil {
			t.Fatalf("load comp=%d: %v", comp, err)
		}
		if len(got) != len(groups) {
			t.Fatalf("comp=%d: got %d groups, want %d", comp, len(got), len(groups))
		}
		for gi := range groups {
			if got[gi].Entry != groups[gi].Entry {
				t.Fatalf("comp=%d group %d: entry %+v, want %+v", comp, gi, got[gi].Entry, groups[gi].Entry)
			}
			if len(got[gi].Faces) != len(groups[gi].Faces) {
				t.Fatalf("comp=%d group %d: %d faces, want %d", comp, gi, len(got[gi].Faces), len(groups[gi].Faces))
			}
			for i, f := range got[gi].Faces {
				want := groups[gi].Faces[i]
				if f.P1 != want.P1 || f.ID != want.ID {
					t.Fatalf("comp=%d group %d face %d: words %08x/%08x, want %08x/%08x",
						comp, gi, i, f.P1, f.ID, want.P1, want.ID)
				}
				if f.Offset != uint32(gi) {
					t.Fatalf("comp=%d group %d face %d: offset %d, want group index", comp, gi, i, f.Offset)
				}
			}
		}
	}
}

func TestZstdShrinksRepetitiveData(t *testing.T) {
	var g Group
	g.Entry.Normal = face.NormalUp
	p, err := face.Instance{X: 3, Y: 3, Z: 3, Width: 1, Height: 1, Tile: 1}.Encode(0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for i := 0; i < 4096; i++ {
		g.Faces = append(g.Faces, p)
	}
	raw, err := Save([]Group{g}, CompNone)
	if err != nil {
		t.Fatalf("save raw: %v", err)
	}
	packed, err := Save([]Group{g}, CompZstd)
	if err != nil {
		t.Fatalf("save zstd: %v", err)
	}
	if len(packed) >= len(raw) {
		t.Fatalf("zstd image %d bytes, raw %d", len(packed), len(raw))
	}
}

func TestChecksumDetectsCorruption(t *testing.T) {
	data, err := Save(sampleGroups(t), CompNone)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	data[len(data)-1] ^= 0x01
	if _, err := Load(data); err == nil || !strings.Contains(err.Error(), "checksum") {
		t.Fatalf("corrupted load error = %v, want checksum mismatch", err)
	}
}

func TestRejectsBadHeader(t *testing.T) {
	data, err := Save(sampleGroups(t), CompNone)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	short := data[:4]
	if _, err := Load(short); err == nil {
		t.Fatal("short image accepted")
	}

	mangled := append([]byte(nil), data...)
	mangled[0] = 'X'
	if _, err := Load(mangled); err == nil {
		t.Fatal("bad magic accepted")
	}

	badVer := append([]byte(nil), data...)
	badVer[len(magic)] = 99
	if _, err := Load(badVer); err == nil {
		t.Fatal("unknown container version accepted")
	}

	badComp := append([]byte(nil), data...)
	badComp[len(magic)+1] = 7
	if _, err := Load(badComp); err == nil {
		t.Fatal("unknown compression accepted")
	}
}

func TestRejectsTrailingBytes(t *testing.T) {
	data, err := Save(sampleGroups(t), CompNone)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	data = append(data, 0xEE)
	if _, err := Load(data); err == nil {
		t.Fatal("trailing bytes accepted")
	}
}

func TestWriteReadFile(t *testing.T) {
	groups := sampleGroups(t)
	path := t.TempDir() + "/chunk.vqs"
	if err := WriteFile(path, groups, CompZstd); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(groups) {
		t.Fatalf("got %d groups, want %d", len(got), len(groups))
	}
}

func TestRebuildMatchesOffsets(t *testing.T) {
	groups := sampleGroups(t)
	table := Rebuild(groups)
	if table.Len() != len(groups) {
		t.Fatalf("table has %d entries, want %d", table.Len(), len(groups))
	}
	for gi, g := range groups {
		if got := table.At(uint32(gi)); got != g.Entry {
			t.Fatalf("entry %d = %+v, want %+v", gi, got, g.Entry)
		}
	}
}
