// Package rmf reads and writes the binary scene file format described in
// spec.md §6.1: a little-endian record format built on fixed and
// length-prefixed strings, 32-bit vectors/ints, and a recursive
// group/entity/solid discriminator scheme. Built on encoding/binary's
// Read/Write with binary.LittleEndian, mirroring
// g3n-engine/loader/gltf/loader.go's ParseBinReader/readChunk pattern: a
// fixed-size field decoded with binary.Read, followed by a length-prefixed
// payload.
package rmf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/brushfix/brushfix/geo"
)

const (
	magic      = "RMF"
	discWorld  = "CMapWorld"
	discSolid  = "CMapSolid"
	discEntity = "CMapEntity"
	discGroup  = "CMapGroup"

	visGroupNameLen = 128
	textureNameLen  = 64
)

func readString1(r io.Reader) (string, error) {
	var n uint8
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", ErrPrematureInput
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", ErrPrematureInput
	}
	return cstring(buf), nil
}

func writeString1(w io.Writer, s string) error {
	if len(s) > 254 {
		s = s[:254]
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	if err := binary.Write(w, binary.LittleEndian, uint8(len(buf))); err != nil {
		return err
	}
	_, err := w.Write(buf)
	return err
}

func readStringFixed(r io.Reader, n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", ErrPrematureInput
	}
	return cstring(buf), nil
}

func writeStringFixed(w io.Writer, s string, n int) error {
	buf := make([]byte, n)
	copy(buf, s)
	_, err := w.Write(buf)
	return err
}

func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func readVec3(r io.Reader) (geo.Vector, error) {
	var f [3]float32
	if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
		return geo.Vector{}, ErrPrematureInput
	}
	return geo.Vector{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}, nil
}

func writeVec3(w io.Writer, v geo.Vector) error {
	f := [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	return binary.Write(w, binary.LittleEndian, &f)
}

func readColor(r io.Reader) ([3]byte, error) {
	var c [3]byte
	if _, err := io.ReadFull(r, c[:]); err != nil {
		return c, ErrPrematureInput
	}
	return c, nil
}

func writeColor(w io.Writer, c [3]byte) error {
	_, err := w.Write(c[:])
	return err
}

func readInt32(r io.Reader) (int32, error) {
	var v int32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, ErrPrematureInput
	}
	return v, nil
}

func writeInt32(w io.Writer, v int32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readFloat32(r io.Reader) (float64, error) {
	var v float32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, ErrPrematureInput
	}
	return float64(v), nil
}

func writeFloat32(w io.Writer, v float64) error {
	return binary.Write(w, binary.LittleEndian, float32(v))
}

func skip(r io.Reader, n int) error {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return ErrPrematureInput
	}
	return nil
}

func padding(w io.Writer, n int) error {
	_, err := w.Write(make([]byte, n))
	return err
}

// parseOrigin parses an "x y z" key value into a vector, returning the
// zero vector if s is empty or malformed.
func parseOrigin(s string) geo.Vector {
	var v geo.Vector
	fmt.Sscanf(s, "%g %g %g", &v.X, &v.Y, &v.Z)
	return v
}
