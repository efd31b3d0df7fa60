package ico

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Image is one frame read back out of a container: its declared dimensions
// and its raw payload bytes.
type Image struct {
	Width  int
	Height int
	Data   []byte
}

// DecodeAll parses a container's header and directory and extracts each
// frame's payload, in directory order. It expects the sequential layout
// Encode produces; overlapping or out-of-bounds offsets are rejected.
func DecodeAll(r io.Reader) ([]*Image, error) {
	var hdr ICONDIR
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	if hdr.Reserved != 0 || hdr.Type != 1 {
		return nil, errors.New("bad magic number")
	}

	entries := make([]ICONDIRENTRY, hdr.Count)
	for i := range entries {
		if err := binary.Read(r, binary.LittleEndian, &entries[i]); err != nil {
			return nil, errors.Wrapf(err, "reading directory entry %d", i)
		}
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading payloads")
	}

	base := int64(headerSize + entrySize*int(hdr.Count))
	out := make([]*Image, len(entries))
	for i, e := range entries {
		start := int64(e.ImageOffset) - base
		end := start + int64(e.BytesInRes)
		if start < 0 || end > int64(len(rest)) {
			return nil, errors.Errorf("entry %d payload [%d:%d) out of bounds", i, e.ImageOffset, e.ImageOffset+e.BytesInRes)
		}
		out[i] = &Image{
			Width:  edgeLen(e.Width),
			Height: edgeLen(e.Height),
			Data:   rest[start:end],
		}
	}
	return out, nil
}

// edgeLen decodes the one-byte entry field back into pixels.
func edgeLen(b byte) int {
	if b == 0 {
		return maxEdge
	}
	return int(b)
}
