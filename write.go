package dds

import (
	"encoding/binary"
	"io"
)

// writeDWORD writes a 32-bit little-endian value.
func writeDWORD(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// EncodeHeader writes the magic, the 124-byte header, and the DX10
// extension when present.
func EncodeHeader(w io.Writer, h *Header) error {
	rec, err := h.record()
	if err != nil {
		return err
	}
	return encodeRecord(w, rec)
}

func encodeRecord(w io.Writer, rec *headerRecord) error {
	if _, err := w.Write([]byte(Magic)); err != nil {
		return err
	}
	if err := writeDWORD(w, HeaderSize); err != nil {
		return err
	}
	if err := writeDWORD(w, rec.Flags); err != nil {
		return err
	}
	if err := writeDWORD(w, rec.Height); err != nil {
		return err
	}
	if err := writeDWORD(w, rec.Width); err != nil {
		return err
	}
	if err := writeDWORD(w, rec.PitchOrLinearSize); err != nil {
		return err
	}
	if err := writeDWORD(w, rec.Depth); err != nil {
		return err
	}
	if err := writeDWORD(w, rec.MipMapCount); err != nil {
		return err
	}

	for i := range rec.Reserved1 {
		if err := writeDWORD(w, rec.Reserved1[i]); err != nil {
			return err
		}
	}

	if err := writePixelFormatRecord(w, &rec.PixelFormat); err != nil {
		return err
	}

	if err := writeDWORD(w, rec.Caps); err != nil {
		return err
	}
	if err := writeDWORD(w, rec.Caps2); err != nil {
		return err
	}
	if err := writeDWORD(w, rec.Caps3); err != nil {
		return err
	}
	if err := writeDWORD(w, rec.Caps4); err != nil {
		return err
	}
	if err := writeDWORD(w, rec.Reserved2); err != nil {
		return err
	}

	if rec.DX10 != nil {
		return encodeDX10Record(w, rec.DX10)
	}
	return nil
}

func writePixelFormatRecord(w io.Writer, pf *pixelFormatRecord) error {
	if err := writeDWORD(w, PixelFormatSize); err != nil {
		return err
	}
	if err := writeDWORD(w, pf.Flags); err != nil {
		return err
	}
	if err := writeDWORD(w, pf.FourCC.uint32()); err != nil {
		return err
	}
	if err := writeDWORD(w, pf.BitCount); err != nil {
		return err
	}
	for i := range pf.Masks {
		if err := writeDWORD(w, pf.Masks[i]); err != nil {
			return err
		}
	}
	return nil
}

func encodeDX10Record(w io.Writer, dx10 *dx10Record) error {
	if err := writeDWORD(w, dx10.DXGIFormat); err != nil {
		return err
	}
	if err := writeDWORD(w, dx10.ResourceDimension); err != nil {
		return err
	}
	if err := writeDWORD(w, dx10.MiscFlag); err != nil {
		return err
	}
	if err := writeDWORD(w, dx10.ArraySize); err != nil {
		return err
	}
	return writeDWORD(w, dx10.MiscFlags2)
}
