package imagine

// decodeNetPBM implements the NetPBM family: P1/P4 (bitmap), P2/P5
// (grayscale), P3/P6 (RGB). P7 (PAM) is a recognized signature but is
// always rejected — see SPEC_FULL.md Open Questions.
func decodeNetPBM(dst *Image, src []byte) error {
	if len(src) < 2 || src[0] != 'P' {
		return FormatError("missing P magic")
	}
	format := src[1]
	if format == '7' {
		return UnsupportedError("PAM (P7) header parsing not implemented")
	}
	if format < '1' || format > '6' {
		return FormatError("unrecognized netpbm variant")
	}

	s := &scanner{buf: src, pos: 2}
	width := s.parseUint()
	height := s.parseUint()
	if width == 0 || height == 0 {
		return FormatError("zero dimension")
	}

	maxval := uint32(1)
	if format != '1' && format != '4' {
		maxval = s.parseUint()
		if maxval == 0 {
			return FormatError("zero maxval")
		}
	}

	dst.Width = width
	dst.Height = height
	dst.Monochrome = format == '1' || format == '4' || format == '2' || format == '5'
	if dst.Monochrome {
		dst.Stride = 1
	} else {
		dst.Stride = 3
	}
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

	switch format {
	case '1':
		for i := uint64(0); i < n; i++ {
			bit := s.parseUint()
			pixels[i] = grayFromBit(bit)
		}
	case '4':
		return decodeP4(pixels, s, width, height)
	case '2':
		for i := uint64(0); i < n; i++ {
			v := s.parseUint()
			pixels[i] = rescale8(v, maxval)
		}
	case '5':
		s.readByte() // exactly one whitespace byte precedes binary data
		for i := uint64(0); i < n; i++ {
			b, ok := s.readByte()
			if !ok {
				return TruncatedError("short P5 pixel data")
			}
			pixels[i] = rescale8(uint32(b), maxval)
		}
	case '3':
		for i := uint64(0); i < n; i++ {
			r := s.parseUint()
			g := s.parseUint()
			b := s.parseUint()
			pixels[i*3+0] = rescale8(r, maxval)
			pixels[i*3+1] = rescale8(g, maxval)
			pixels[i*3+2] = rescale8(b, maxval)
		}
	case '6':
		s.readByte() // exactly one whitespace byte precedes binary data
		for i := uint64(0); i < n; i++ {
			if s.pos+3 > len(s.buf) {
				return TruncatedError("short P6 pixel data")
			}
			pixels[i*3+0] = rescale8(uint32(s.buf[s.pos+0]), maxval)
			pixels[i*3+1] = rescale8(uint32(s.buf[s.pos+1]), maxval)
			pixels[i*3+2] = rescale8(uint32(s.buf[s.pos+2]), maxval)
			s.pos += 3
		}
	}
	return nil
}

// decodeP4 unpacks a big-endian bit-packed bitmap: MSB is the leftmost
// pixel of each byte, rows padded to a whole byte.
func decodeP4(pixels []byte, s *scanner, width, height uint32) error {
	s.readByte() // exactly one whitespace byte precedes binary data
	rowBytes := (width + 7) / 8
	need := uint64(rowBytes) * uint64(height)
	if uint64(len(s.buf)-s.pos) < need {
		return TruncatedError("short P4 pixel data")
	}
	row := s.buf[s.pos:]
	for y := uint32(0); y < height; y++ {
		line := row[uint64(y)*uint64(rowBytes):]
		for x := uint32(0); x < width; x++ {
			b := line[x>>3]
			bit := (b >> (7 - (x & 7))) & 1
			pixels[uint64(y)*uint64(width)+uint64(x)] = grayFromBit(uint32(bit))
		}
	}
	return nil
}

// grayFromBit applies the NetPBM bitmap convention: 1 means black.
func grayFromBit(bit uint32) byte {
	if bit != 0 {
		return 0
	}
	return 255
}

// rescale8 scales a sample of range [0,maxval] to [0,255] by integer
// division, matching the reference decoder exactly.
func rescale8(v, maxval uint32) byte {
	return byte((255 * uint64(v)) / uint64(maxval))
}
