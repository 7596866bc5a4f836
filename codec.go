package effects

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/effects/blur"
)

// Encoded record sizes in bytes.
const (
	headerSize = 4  // u16 total size, u16 mask
	layerSize  = 5  // u32 color, u8 blend mode
	shadowSize = 10 // u32 color, u32 packed fields, u16 distance/knockout
	glowSize   = 8  // u32 color, u32 packed fields
)

// recordSize returns the encoded size of a record of kind k.
func recordSize(k Kind) int {
	switch k.Category() {
	case CategoryShadow:
		return shadowSize
	case CategoryGlow:
		return glowSize
	default:
		return layerSize
	}
}

// EncodedSize returns the number of bytes Encode writes for s.
func (s *Set) EncodedSize() int {
	n := headerSize
	for _, k := range s.mask.Kinds() {
		n += recordSize(k)
	}
	return n
}

// AppendBinary appends the encoding of s to b.
//
// The encoding is big-endian: a u16 total size, the u16 presence mask, then
// each present record in kind order. Records store every field bit-packed
// exactly as held in memory, so decoding and re-encoding reproduces the
// input byte for byte.
func (s *Set) AppendBinary(b []byte) ([]byte, error) {
	be := binary.BigEndian
	b = be.AppendUint16(b, uint16(s.EncodedSize()))
	b = be.AppendUint16(b, uint16(s.mask))

	for _, k := range s.mask.Kinds() {
		rec, _ := s.Effect(k)
		switch e := rec.(type) {
		case ShadowEffect:
			b = be.AppendUint32(b, uint32(e.Color))
			b = be.AppendUint32(b, packBlur(e.LayerEffect, e.BlurEffect)|uint32(e.Angle)&0x1FF)
			b = be.AppendUint16(b, e.Distance<<1|boolBit(e.Knockout))
		case GlowEffect:
			b = be.AppendUint32(b, uint32(e.Color))
			b = be.AppendUint32(b, packBlur(e.LayerEffect, e.BlurEffect)|uint32(e.Range)<<1|uint32(e.Source)&1)
		case LayerEffect:
			b = be.AppendUint32(b, uint32(e.Color))
			b = append(b, uint8(e.BlendMode)<<4)
		}
	}
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Set) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, s.EncodedSize()))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Bytes after the
// encoded set are ignored.
func (s *Set) UnmarshalBinary(data []byte) error {
	d, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*s = d
	return nil
}

// Encode writes the encoding of s to w.
func Encode(w io.Writer, s *Set) error {
	b, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Decode reads an encoded set from r.
//
// Bytes the header declares beyond the records named by the mask are read
// and discarded, so later versions may append fields. A declared size too
// small for the records is tolerated. A mask bit for a kind this package
// does not define is an ErrUnsupportedKind error, and a stream that ends
// early is an io.ErrUnexpectedEOF error.
func Decode(r io.Reader) (Set, error) {
	var hdr [headerSize]byte
	if err := readFull(r, hdr[:]); err != nil {
		return Set{}, fmt.Errorf("effects: decode header: %w", err)
	}
	declared := int(binary.BigEndian.Uint16(hdr[0:]))
	mask := Mask(binary.BigEndian.Uint16(hdr[2:]))
	if rest := mask &^ allKinds; rest != 0 {
		return Set{}, fmt.Errorf("%w: mask %#04x", ErrUnsupportedKind, uint16(mask))
	}

	var s Set
	remaining := declared - headerSize
	var buf [shadowSize]byte
	for _, k := range mask.Kinds() {
		n := recordSize(k)
		b := buf[:n]
		if err := readFull(r, b); err != nil {
			return Set{}, fmt.Errorf("effects: decode %v: %w", k, err)
		}
		remaining -= n
		if err := s.Put(k, decodeRecord(k, b)); err != nil {
			return Set{}, err
		}
	}

	if remaining > 0 {
		Logger().Warn("effects: skipping unknown trailing bytes",
			"mask", mask,
			"declared", declared,
			"skipped", remaining)
		if _, err := io.CopyN(io.Discard, r, int64(remaining)); err != nil {
			return Set{}, fmt.Errorf("effects: skip %d trailing bytes: %w", remaining, eofIsUnexpected(err))
		}
	}
	s.normalize()
	return s, nil
}

func decodeRecord(k Kind, b []byte) Effect {
	be := binary.BigEndian
	layer := LayerEffect{Color: Color(be.Uint32(b))}

	switch k.Category() {
	case CategoryShadow:
		v := be.Uint32(b[4:])
		w := be.Uint16(b[8:])
		layer.BlendMode = BlendMode(v >> 28 & 0x0F)
		return ShadowEffect{
			LayerEffect: layer,
			BlurEffect:  unpackBlur(v),
			Angle:       uint16(v & 0x1FF),
			Distance:    w >> 1 & 0x7FFF,
			Knockout:    w&1 != 0,
		}
	case CategoryGlow:
		v := be.Uint32(b[4:])
		layer.BlendMode = BlendMode(v >> 28 & 0x0F)
		return GlowEffect{
			LayerEffect: layer,
			BlurEffect:  unpackBlur(v),
			Range:       uint8(v >> 1),
			Source:      Source(v & 1),
		}
	default:
		layer.BlendMode = BlendMode(b[4] >> 4)
		return layer
	}
}

// packBlur packs the fields shared by shadow and glow records:
// blend mode in bits 28-31, filter in 25-27, size in 17-24, spread in 9-16.
func packBlur(l LayerEffect, bl BlurEffect) uint32 {
	return uint32(l.BlendMode&0x0F)<<28 |
		uint32(bl.Filter&0x07)<<25 |
		uint32(bl.Size)<<17 |
		uint32(bl.Spread)<<9
}

func unpackBlur(v uint32) BlurEffect {
	return BlurEffect{
		Filter: blur.Filter(v >> 25 & 0x07),
		Size:   uint8(v >> 17),
		Spread: uint8(v >> 9),
	}
}

func boolBit(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	return eofIsUnexpected(err)
}

func eofIsUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
