package imagine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildICO wraps a BMP payload (full "BM"-prefixed file, per the
// reference decoder's headerless-DIB limitation) in a single-entry ICO
// directory.
func buildICO(bmp []byte) []byte {
	const dirLen = 6 + 16
	h := make([]byte, dirLen)
	copy(h[0:2], le16(0))
	copy(h[2:4], le16(1))
	copy(h[4:6], le16(1))
	copy(h[18:22], le32(dirLen))
	return append(h, bmp...)
}

func TestICO_DelegatesToBMP(t *testing.T) {
	pixels := []byte{
		0x00, 0x00, 0xFF, 0, // BGR red, padded
		0x00, 0xFF, 0x00, 0, // BGR green, padded
	}
	bmp := append(buildBMPHeader(1, -2, 24, len(pixels)), pixels...)
	src := buildICO(bmp)

	img, err := decodeBytes(t, src, 16)
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 0, 0, 0, 255, 0}, img.Pixels[:img.PixelsSize])
}

func TestICO_PNGEntry_Unsupported(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	src := buildICO(png)
	_, err := decodeBytes(t, src, 16)
	require.Error(t, err)
	var uerr UnsupportedError
	assert.ErrorAs(t, err, &uerr)
}

func TestICO_WrongType_Fails(t *testing.T) {
	// A type of 2 at byte 2 matches the dispatcher's weak TGA signature
	// first, so exercise decodeICO directly to reach its type check.
	h := make([]byte, 22)
	copy(h[2:4], le16(2)) // CUR, not ICO
	copy(h[4:6], le16(1))
	img := Image{Pixels: make([]byte, 16)}
	err := decodeICO(&img, h)
	require.Error(t, err)
}

func TestICO_ReservedNonZero_Fails(t *testing.T) {
	h := make([]byte, 22)
	copy(h[0:2], le16(1))
	copy(h[2:4], le16(1))
	copy(h[4:6], le16(1))
	_, err := decodeBytes(t, h, 16)
	require.Error(t, err)
}
