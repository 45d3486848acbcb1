package imagine

// decodePCX implements 1-plane 8-bit (VGA-palette, reduced to grayscale)
// and 3-plane 8-bit RGB PCX images, RLE-decoded.
func decodePCX(dst *Image, src []byte) error {
	const headerLen = 128
	if len(src) < headerLen || src[0] != 0x0A {
		return FormatError("missing PCX magic")
	}

	bpp := src[3]
	xmin := readU16LE(src[4:])
	ymin := readU16LE(src[6:])
	xmax := readU16LE(src[8:])
	ymax := readU16LE(src[10:])
	planes := src[65]
	bytesPerLine := uint32(readU16LE(src[66:]))

	width := uint32(xmax-xmin) + 1
	height := uint32(ymax-ymin) + 1
	if width == 0 || height == 0 {
		return FormatError("zero dimension")
	}

	switch {
	case planes == 1 && bpp == 8:
		dst.Stride = 1
		dst.Monochrome = true
	case planes == 3 && bpp == 8:
		dst.Stride = 3
		dst.Monochrome = false
	default:
		return UnsupportedError("unsupported plane/bpp combination")
	}

	dst.Width = width
	dst.Height = height
	size, err := pixelsSize(uint64(width)*uint64(height), dst.Stride)
	if err != nil {
		return err
	}
	dst.PixelsSize = size
	if uint64(len(dst.Pixels)) < uint64(dst.PixelsSize) {
		return capacityError{TruncatedError("destination buffer too small")}
	}
	pixels := dst.Pixels[:dst.PixelsSize]

	body := src[headerLen:]
	pos := 0
	stride := int(dst.Stride)

	for y := uint32(0); y < height; y++ {
		for p := 0; p < int(planes); p++ {
			filled := uint32(0)
			for filled < bytesPerLine {
				if pos >= len(body) {
					return TruncatedError("RLE run past end of input")
				}
				c := body[pos]
				pos++
				if c&0xC0 == 0xC0 {
					run := uint32(c & 0x3F)
					if pos >= len(body) {
						return TruncatedError("RLE run value past end of input")
					}
					val := body[pos]
					pos++
					for run > 0 && filled < bytesPerLine {
						if p < stride && filled < width {
							pixels[(uint64(y)*uint64(width)+uint64(filled))*uint64(stride)+uint64(p)] = val
						}
						filled++
						run--
					}
				} else {
					if p < stride && filled < width {
						pixels[(uint64(y)*uint64(width)+uint64(filled))*uint64(stride)+uint64(p)] = c
					}
					filled++
				}
			}
		}
	}

	if planes == 1 && bpp == 8 {
		const trailerLen = 769
		if len(src) < trailerLen {
			return FormatError("missing VGA palette trailer")
		}
		pal := src[len(src)-trailerLen:]
		if pal[0] != 0x0C {
			return FormatError("missing VGA palette marker")
		}
		pal = pal[1:]
		var lut [256]byte
		for i := 0; i < 256; i++ {
			r := uint32(pal[i*3+0])
			g := uint32(pal[i*3+1])
			b := uint32(pal[i*3+2])
			lut[i] = byte((r + g + b) / 3)
		}
		for i := range pixels {
			pixels[i] = lut[pixels[i]]
		}
	}
	return nil
}
