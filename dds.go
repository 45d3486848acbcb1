package imagine

// decodeDDS implements uncompressed, tightly packed DDS images: 24-bit
// BGR, 32-bit BGRA (alpha discarded) and 8-bit luminance.
func decodeDDS(dst *Image, src []byte) error {
	const headerLen = 128
	if len(src) < headerLen || src[0] != 'D' || src[1] != 'D' || src[2] != 'S' || src[3] != ' ' {
		return FormatError("missing DDS magic")
	}

	height := readU32LE(src[12:])
	width := readU32LE(src[16:])
	pfSize := readU32LE(src[76:])
	fourCC := readU32LE(src[84:])
	bpp := readU32LE(src[88:])

	if width == 0 || height == 0 {
		return FormatError("zero dimension")
	}
	if pfSize != 32 {
		return UnsupportedError("unsupported pixel format size")
	}
	if fourCC != 0 {
		return UnsupportedError("block-compressed (four-CC != 0) not supported")
	}

	switch bpp {
	case 24, 32:
		dst.Stride = 3
		dst.Monochrome = false
	case 8:
		dst.Stride = 1
		dst.Monochrome = true
	default:
		return UnsupportedError("unsupported bit count")
	}

	dst.Width = width
	dst.Height = height
	n := uint64(width) * uint64(height)
	size, err := pixelsSize(n, dst.Stride)
	if err != nil {
		return err
	}
	dst.PixelsSize = size
	if uint64(len(dst.Pixels)) < uint64(dst.PixelsSize) {
		return capacityError{TruncatedError("destination buffer too small")}
	}
	pixels := dst.Pixels[:dst.PixelsSize]

	body := src[headerLen:]
	srcBpp := uint64(bpp) / 8
	if uint64(len(body)) < n*srcBpp {
		return TruncatedError("short pixel data")
	}

	switch bpp {
	case 8:
		copy(pixels, body[:n])
	case 24:
		for i := uint64(0); i < n; i++ {
			s := body[i*3:]
			pixels[i*3+0] = s[2]
			pixels[i*3+1] = s[1]
			pixels[i*3+2] = s[0]
		}
	case 32:
		for i := uint64(0); i < n; i++ {
			s := body[i*4:]
			pixels[i*3+0] = s[2]
			pixels[i*3+1] = s[1]
			pixels[i*3+2] = s[0]
		}
	}
	return nil
}
