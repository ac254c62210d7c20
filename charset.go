package phishtriage

import (
	"io"
	"mime"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// wordDecoder decodes RFC 2047 encoded-words in any IANA registered
// charset, not just the UTF-8 / ISO-8859-1 / US-ASCII set the standard
// library knows about.
var wordDecoder = &mime.WordDecoder{CharsetReader: CharsetReader}

// CharsetReader returns a reader that converts input from charset to UTF-8.
// Unknown charsets are passed through unchanged.
func CharsetReader(charset string, input io.Reader) (io.Reader, error) {
	if charset == "" {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(strings.ToLower(charset))
	if err != nil || enc == nil {
		return input, nil
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// decodeHeader decodes encoded-words in a header value, falling back to the
// raw value when decoding fails.
func decodeHeader(value string) string {
	if value == "" {
		return ""
	}
	decoded, err := wordDecoder.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}
