package dds

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/woozymasta/dds/texture"
)

// readDWORD reads a 32-bit little-endian value.
func readDWORD(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// DecodeHeader reads the magic, the 124-byte header, and the DX10
// extension when present, and returns the normalized header. Read and
// validation failures surface as a *texture.HeaderError; a zero width,
// height, or depth surfaces as a *texture.DimensionsError.
func DecodeHeader(r io.Reader) (*Header, error) {
	rec, err := decodeRecord(r)
	if err != nil {
		return nil, &texture.HeaderError{Msg: "decoding DDS header", Err: err}
	}
	h, err := headerFromRecord(rec)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// decodeRecord reads the raw on-disk record, validating the magic, the
// size constants, and the known flag bits.
func decodeRecord(r io.Reader) (*headerRecord, error) {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if string(magic) != Magic {
		return nil, fmt.Errorf("invalid magic: expected %q, got %q", Magic, string(magic))
	}

	size, err := readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading header size: %w", err)
	}
	if size != HeaderSize {
		return nil, fmt.Errorf("invalid header size: expected %d, got %d", HeaderSize, size)
	}

	var rec headerRecord
	rec.Flags, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading flags: %w", err)
	}
	if rec.Flags&^uint32(knownHeaderFlags) != 0 {
		return nil, fmt.Errorf("invalid header flags: 0x%x", rec.Flags)
	}
	if rec.Flags&HeaderFlagsTexture != HeaderFlagsTexture {
		return nil, fmt.Errorf("invalid header flags: required fields not set (flags: 0x%x)", rec.Flags)
	}
	rec.Height, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading height: %w", err)
	}
	rec.Width, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading width: %w", err)
	}
	rec.PitchOrLinearSize, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading pitchOrLinearSize: %w", err)
	}
	rec.Depth, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading depth: %w", err)
	}
	rec.MipMapCount, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading mipMapCount: %w", err)
	}

	for i := range rec.Reserved1 {
		rec.Reserved1[i], err = readDWORD(r)
		if err != nil {
			return nil, fmt.Errorf("reading reserved1[%d]: %w", i, err)
		}
	}

	if err := readPixelFormatRecord(r, &rec.PixelFormat); err != nil {
		return nil, err
	}

	rec.Caps, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading caps: %w", err)
	}
	if rec.Caps&^uint32(knownCapsFlags) != 0 {
		return nil, fmt.Errorf("invalid caps flags: 0x%x", rec.Caps)
	}
	rec.Caps2, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading caps2: %w", err)
	}
	if rec.Caps2&^uint32(knownCaps2Flags) != 0 {
		return nil, fmt.Errorf("invalid caps2 flags: 0x%x", rec.Caps2)
	}
	rec.Caps3, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading caps3: %w", err)
	}
	rec.Caps4, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading caps4: %w", err)
	}
	rec.Reserved2, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading reserved2: %w", err)
	}

	if rec.PixelFormat.Flags&PFFourCC != 0 && rec.PixelFormat.FourCC == FourCCDX10 {
		rec.DX10, err = decodeDX10Record(r)
		if err != nil {
			return nil, err
		}
	}

	return &rec, nil
}

func readPixelFormatRecord(r io.Reader, pf *pixelFormatRecord) error {
	size, err := readDWORD(r)
	if err != nil {
		return fmt.Errorf("reading pixel format size: %w", err)
	}
	if size != PixelFormatSize {
		return fmt.Errorf("invalid pixel format size: expected %d, got %d", PixelFormatSize, size)
	}

	pf.Flags, err = readDWORD(r)
	if err != nil {
		return fmt.Errorf("reading pixel format flags: %w", err)
	}
	if pf.Flags&^uint32(knownPFFlags) != 0 {
		return fmt.Errorf("invalid pixel format flags: 0x%x", pf.Flags)
	}
	fourCC, err := readDWORD(r)
	if err != nil {
		return fmt.Errorf("reading pixel format fourCC: %w", err)
	}
	pf.FourCC = fourCCFromUint32(fourCC)
	pf.BitCount, err = readDWORD(r)
	if err != nil {
		return fmt.Errorf("reading pixel format bitCount: %w", err)
	}
	for i := range pf.Masks {
		pf.Masks[i], err = readDWORD(r)
		if err != nil {
			return fmt.Errorf("reading pixel format mask[%d]: %w", i, err)
		}
	}
	return nil
}

func decodeDX10Record(r io.Reader) (*dx10Record, error) {
	var dx10 dx10Record
	var err error

	dx10.DXGIFormat, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading dxgiFormat: %w", err)
	}
	dx10.ResourceDimension, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading resourceDimension: %w", err)
	}
	dx10.MiscFlag, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading miscFlag: %w", err)
	}
	dx10.ArraySize, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading arraySize: %w", err)
	}
	dx10.MiscFlags2, err = readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("reading miscFlags2: %w", err)
	}

	return &dx10, nil
}
