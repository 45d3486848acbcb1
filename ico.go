package imagine

// decodeICO locates the first directory entry of an ICO file and
// delegates to decodeBMP on that sub-slice. Only the first entry is
// decoded; PNG-encoded entries are rejected. See SPEC_FULL.md Open
// Questions for the headerless-DIB limitation this inherits from the
// reference implementation.
func decodeICO(dst *Image, src []byte) error {
	if len(src) < 6 {
		return FormatError("header too short")
	}
	reserved := readU16LE(src)
	iconType := readU16LE(src[2:])
	count := readU16LE(src[4:])
	if reserved != 0 {
		return FormatError("reserved field not zero")
	}
	if iconType != 1 {
		return UnsupportedError("not an ICO (CUR or unknown type)")
	}
	if count < 1 {
		return FormatError("empty directory")
	}
	if len(src) < 22 {
		return FormatError("directory entry truncated")
	}

	offset := readU32LE(src[18:])
	if uint64(offset) >= uint64(len(src)) {
		return TruncatedError("entry offset past end of input")
	}
	payload := src[offset:]
	if len(payload) >= 2 && payload[0] == 0x89 && payload[1] == 'P' {
		return UnsupportedError("PNG-encoded icon entry")
	}
	return decodeBMP(dst, payload)
}
