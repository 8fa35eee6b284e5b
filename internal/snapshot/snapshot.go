// Package snapshot serializes packed face buffers and their frame-table
// entries into a compact container, so meshed geometry can be cached on
// disk and reloaded without remeshing. The container is the one place the
// packed format's version tag is enforced: words from a different layout
// revision are rejected here instead of decoding into plausible garbage.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"

	"voxquad/internal/face"
	"voxquad/internal/frame"
)

// Compression selects the payload codec.
type Compression uint8

const (
	CompNone Compression = 0
	CompZstd Compression = 1
)

const (
	magic   = "VQSNAP"
	version = 1
)

// Group is one chunk-face-group: its frame-table entry and its packed
// instances. Instance offsets are positional: after Load, every face's
// Offset is its group's index in the returned slice.
type Group struct {
	Entry frame.Entry
	Faces []face.Packed
}

// Save encodes the groups into a snapshot file image.
//
// Layout: magic, container version, compression byte, xxhash64 of the
// uncompressed content, then the (possibly compressed) content. Content is
// the packed-format tag followed by the groups, little endian throughout.
func Save(groups []Group, comp Compression) ([]byte, error) {
	var content bytes.Buffer
	_ = binary.Write(&content, binary.LittleEndian, uint8(face.Format))
	_ = binary.Write(&content, binary.LittleEndian, uint32(len(groups)))
	for _, g := range groups {
		_ = binary.Write(&content, binary.LittleEndian, g.Entry.Offset)
		_ = binary.Write(&content, binary.LittleEndian, g.Entry.Normal)
		_ = binary.Write(&content, binary.LittleEndian, uint32(len(g.Faces)))
		for _, f := range g.Faces {
			_ = binary.Write(&content, binary.LittleEndian, f.P1)
			_ = binary.Write(&content, binary.LittleEndian, f.ID)
		}
	}

	sum := xxhash.Sum64(content.Bytes())

	var payload []byte
	switch comp {
	case CompNone:
		payload = content.Bytes()
	case CompZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		payload = enc.EncodeAll(content.Bytes(), nil)
		_ = enc.Close()
	default:
		return nil, fmt.Errorf("snapshot: unsupported compression %d", comp)
	}

	var out bytes.Buffer
	out.WriteString(magic)
	_ = binary.Write(&out, binary.LittleEndian, uint8(version))
	_ = binary.Write(&out, binary.LittleEndian, uint8(comp))
	_ = binary.Write(&out, binary.LittleEndian, sum)
	_, _ = out.Write(payload)
	return out.Bytes(), nil
}

// Load parses a snapshot image. The content checksum and both version tags
// are verified before any packed word is interpreted.
func Load(data []byte) ([]Group, error) {
	if len(data) < len(magic)+10 || string(data[:len(magic)]) != magic {
		return nil, fmt.Errorf("snapshot: bad magic")
	}
	ver := data[len(magic)]
	if ver != version {
		return nil, fmt.Errorf("snapshot: unsupported container version %d", ver)
	}
	comp := Compression(data[len(magic)+1])
	sum := binary.LittleEndian.Uint64(data[len(magic)+2:])
	payload := data[len(magic)+10:]

	var content []byte
	switch comp {
	case CompNone:
		content = payload
	case CompZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		content, err = dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: decompress: %w", err)
		}
	default:
		return nil, fmt.Errorf("snapshot: unsupported compression %d", comp)
	}

	if got := xxhash.Sum64(content); got != sum {
		return nil, fmt.Errorf("snapshot: checksum mismatch")
	}

	r := bytes.NewReader(content)
	var format uint8
	if err := binary.Read(r, binary.LittleEndian, &format); err != nil {
		return nil, err
	}
	if format != face.Format {
		return nil, fmt.Errorf("snapshot: packed format %d not supported", format)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	groups := make([]Group, 0, count)
	for gi := uint32(0); gi < count; gi++ {
		var g Group
		if err := binary.Read(r, binary.LittleEndian, &g.Entry.Offset); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &g.Entry.Normal); err != nil {
			return nil, err
		}
		if g.Entry.Normal >= face.NormalCount {
			return nil, fmt.Errorf("snapshot: group %d: normal index %d out of range", gi, g.Entry.Normal)
		}
		var faces uint32
		if err := binary.Read(r, binary.LittleEndian, &faces); err != nil {
			return nil, err
		}
		g.Faces = make([]face.Packed, faces)
		for i := range g.Faces {
			if err := binary.Read(r, binary.LittleEndian, &g.Faces[i].P1); err != nil {
				return nil, err
			}
			if err := binary.Read(r, binary.LittleEndian, &g.Faces[i].ID); err != nil {
				return nil, err
			}
			g.Faces[i].Offset = gi
		}
		groups = append(groups, g)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("snapshot: %d trailing bytes", r.Len())
	}
	return groups, nil
}

// WriteFile saves the groups to disk.
func WriteFile(path string, groups []Group, comp Compression) error {
	data, err := Save(groups, comp)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile loads a snapshot from disk.
func ReadFile(path string) ([]Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Rebuild inserts the groups' entries into a fresh frame table. Insertion
// order matches group order, so the table indices line up with the face
// offsets assigned by Load.
func Rebuild(groups []Group) *frame.Table {
	t := frame.NewTable()
	for _, g := range groups {
		t.Insert(g.Entry)
	}
	return t
}
