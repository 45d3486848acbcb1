package imagine

// FormatError reports that the input does not contain a recognizable
// instance of the format it was routed to: a bad or missing magic
// signature, a header field outside its valid range, or a truncated
// header.
type FormatError string

func (e FormatError) Error() string { return "imagine: invalid format: " + string(e) }

// UnsupportedError reports that the input is a structurally valid
// instance of a supported format family but uses a variant this decoder
// does not implement: an unsupported bit depth, compression mode, plane
// count, or image type.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "imagine: unsupported feature: " + string(e) }

// TruncatedError reports that the declared pixel data extends past the
// end of the input, or that the destination buffer is too small to hold
// the decoded pixels.
type TruncatedError string

func (e TruncatedError) Error() string { return "imagine: truncated data: " + string(e) }
