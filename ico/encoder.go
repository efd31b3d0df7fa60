// Package ico serializes icon frames into the Windows ICO container format
// and reads the resulting directory back for verification.
package ico

// http://msdn.microsoft.com/en-us/library/ms997538.aspx

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-ico/images"
)

const (
	headerSize = 6
	entrySize  = 16
	// maxFrames is the capacity of the ICONDIR count field.
	maxFrames = 0xFFFF
	// maxEdge is the largest edge length a one-byte entry field can carry;
	// the value 0 encodes it.
	maxEdge = 256
)

type ICONDIR struct {
	Reserved uint16 // must be 0
	Type     uint16 // resource type, 1 for icons
	Count    uint16 // how many images
}

type ICONDIRENTRY struct {
	Width       byte   // width in pixels, 0 means 256
	Height      byte   // height in pixels, 0 means 256
	ColorCount  byte   // palette size, 0 for true color
	Reserved    byte   // must be 0
	Planes      uint16 // color planes, conventionally 1
	BitCount    uint16 // bits per pixel, 32 for RGBA
	BytesInRes  uint32 // payload size in bytes
	ImageOffset uint32 // payload offset from beginning of file
}

// Encode serializes the frames into a complete ICO byte stream: file header,
// one directory entry per frame, then PNG payloads in the same order. The
// layout is two-pass: every payload is materialized before any offset is
// written, since each entry's offset depends on the sizes of all preceding
// payloads. Frame order is preserved as given.
//
// Arguments:
// - frames: The frames to embed, each owning a Size*Size*4 byte buffer.
//
// Returns:
// - []byte: The assembled container.
// - error: *TooManyFramesError above 65535 frames, *InvalidFrameSizeError
//   for edge lengths outside 1..256, *DuplicateSizeError when two frames
//   claim the same dimensions, or a wrapped PNG encoding error.
func Encode(frames []*images.Frame) ([]byte, error) {
	if len(frames) > maxFrames {
		return nil, &TooManyFramesError{Count: len(frames)}
	}

	seen := make(map[int]bool, len(frames))
	payloads := make([][]byte, len(frames))
	for i, f := range frames {
		if f.Size < 1 || f.Size > maxEdge {
			return nil, &InvalidFrameSizeError{Size: f.Size}
		}
		if seen[f.Size] {
			return nil, &DuplicateSizeError{Size: f.Size}
		}
		seen[f.Size] = true
		if len(f.Pixels) != f.Size*f.Size*4 {
			return nil, errors.Errorf("frame %d: %dpx frame has a %d-byte buffer (want %d bytes)",
				i, f.Size, len(f.Pixels), f.Size*f.Size*4)
		}

		payload, err := encodePNG(f)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %dpx frame", f.Size)
		}
		payloads[i] = payload
	}

	buf := new(bytes.Buffer)
	hdr := ICONDIR{Type: 1, Count: uint16(len(frames))}
	if err := binary.Write(buf, binary.LittleEndian, hdr); err != nil {
		return nil, errors.Wrap(err, "writing header")
	}

	offset := uint32(headerSize + entrySize*len(frames))
	for i, f := range frames {
		entry := ICONDIRENTRY{
			Width:       edgeByte(f.Size),
			Height:      edgeByte(f.Size),
			Planes:      1,
			BitCount:    32,
			BytesInRes:  uint32(len(payloads[i])),
			ImageOffset: offset,
		}
		if err := binary.Write(buf, binary.LittleEndian, entry); err != nil {
			return nil, errors.Wrapf(err, "writing directory entry %d", i)
		}
		offset += entry.BytesInRes
	}

	for _, payload := range payloads {
		buf.Write(payload)
	}
	return buf.Bytes(), nil
}

// edgeByte encodes an edge length into the one-byte entry field.
func edgeByte(size int) byte {
	if size >= maxEdge {
		return 0
	}
	return byte(size)
}

func encodePNG(f *images.Frame) ([]byte, error) {
	img := &image.NRGBA{
		Pix:    f.Pixels,
		Stride: f.Size * 4,
		Rect:   image.Rect(0, 0, f.Size, f.Size),
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
