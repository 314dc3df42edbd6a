// Package encode writes a rendered image to disk as an uncompressed
// 32-bit BGRA bitmap.
package encode

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
)

// WriteBMP encodes pixels (row-major, width*height V4s in linear color
// space) as a BITMAPFILEHEADER + BITMAPINFOHEADER + BGRA pixel stream:
// gamma-2 correction (c -> sqrt(c)) per channel, 8-bit quantization,
// negative biHeight for top-down row order, BI_RGB (no compression).
func WriteBMP(w io.Writer, pixels []core.V4, width, height int) error {
	if len(pixels) != width*height {
		return errors.Errorf("encode: got %d pixels, want %d for %dx%d image", len(pixels), width*height, width, height)
	}

	bw := bufio.NewWriter(w)

	pixelBytes := uint32(4 * width * height)
	offBits := uint32(fileHeaderSize + infoHeaderSize)

	if err := writeFileHeader(bw, offBits, offBits+pixelBytes); err != nil {
		return errors.Wrap(err, "encode: writing BITMAPFILEHEADER")
	}
	if err := writeInfoHeader(bw, width, height); err != nil {
		return errors.Wrap(err, "encode: writing BITMAPINFOHEADER")
	}
	if err := writePixels(bw, pixels); err != nil {
		return errors.Wrap(err, "encode: writing pixel stream")
	}

	return bw.Flush()
}

func writeFileHeader(w io.Writer, offBits, fileSize uint32) error {
	var buf [fileHeaderSize]byte
	buf[0], buf[1] = 'B', 'M' // bfType
	binary.LittleEndian.PutUint32(buf[2:6], fileSize)
	// bytes 6:10 (bfReserved1, bfReserved2) are left zero.
	binary.LittleEndian.PutUint32(buf[10:14], offBits)
	_, err := w.Write(buf[:])
	return err
}

func writeInfoHeader(w io.Writer, width, height int) error {
	var buf [infoHeaderSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], infoHeaderSize)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(width))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(int32(-height))) // negative biHeight: top-down rows
	binary.LittleEndian.PutUint16(buf[12:14], 1)                    // biPlanes
	binary.LittleEndian.PutUint16(buf[14:16], 32)                   // biBitCount
	// buf[16:20] biCompression = BI_RGB = 0
	_, err := w.Write(buf[:])
	return err
}

func writePixels(w io.Writer, pixels []core.V4) error {
	row := make([]byte, 4)
	for _, p := range pixels {
		c := colorful.Color{R: math.Sqrt(clamp01(p.R)), G: math.Sqrt(clamp01(p.G)), B: math.Sqrt(clamp01(p.B))}.Clamped()
		r8, g8, b8 := c.RGB255()
		a8 := uint8(math.Round(255 * math.Sqrt(clamp01(p.A))))

		row[0], row[1], row[2], row[3] = b8, g8, r8, a8
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
