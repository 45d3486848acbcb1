package imagine

// decodeTGA implements uncompressed TGA: image type 2 (truecolor) and 3
// (grayscale), at 8/24/32 bits per pixel. RLE types and the origin/flip
// descriptor byte are unsupported — see SPEC_FULL.md Open Questions.
func decodeTGA(dst *Image, src []byte) error {
	if len(src) < 18 {
		return FormatError("header too short")
	}
	idLen := src[0]
	imageType := src[2]
	width := uint32(readU16LE(src[12:]))
	height := uint32(readU16LE(src[14:]))
	bpp := src[16]

	if width == 0 || height == 0 {
		return FormatError("zero dimension")
	}
	if imageType != 2 && imageType != 3 {
		return UnsupportedError("compressed or unrecognized image type")
	}

	switch bpp {
	case 8:
		dst.Stride = 1
		dst.Monochrome = true
	case 24, 32:
		dst.Stride = 3
		dst.Monochrome = false
	default:
		return UnsupportedError("unsupported bit depth")
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

	start := uint64(18) + uint64(idLen)
	if start > uint64(len(src)) {
		return TruncatedError("id field past end of input")
	}
	body := src[start:]
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
