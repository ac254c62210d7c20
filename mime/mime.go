// Package mime splits a message body into its MIME parts (RFC 2045,
// RFC 2046) and removes transfer encodings.
package mime

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"strings"
)

// ContentTransferEncoding is a Content-Transfer-Encoding value, lowercased.
type ContentTransferEncoding string

const (
	Encoding7Bit            ContentTransferEncoding = "7bit"
	Encoding8Bit            ContentTransferEncoding = "8bit"
	EncodingBinary          ContentTransferEncoding = "binary"
	EncodingQuotedPrintable ContentTransferEncoding = "quoted-printable"
	EncodingBase64          ContentTransferEncoding = "base64"
)

// MaxNesting is the deepest multipart level Parse accepts.
const MaxNesting = 16

var (
	ErrMissingBoundary = errors.New("mime: multipart without boundary parameter")
	ErrNoParts         = errors.New("mime: multipart without parts")
	ErrTooDeep         = errors.New("mime: multipart nested too deep")
)

// HeaderGetter returns the first value of a header field.
// textproto.MIMEHeader and phishtriage.Headers implement it.
type HeaderGetter interface {
	Get(name string) string
}

// Part is one node of a parsed MIME tree. Multipart nodes keep their raw
// body and list their children in Parts.
type Part struct {
	ContentType             string
	Charset                 string
	ContentTransferEncoding ContentTransferEncoding
	Disposition             string
	Filename                string
	ContentID               string
	Body                    []byte
	Parts                   []*Part
}

// Parse builds the MIME tree of body. A missing or unparsable Content-Type
// is treated as text/plain; charset=us-ascii (RFC 2045 section 5.2).
// Malformed multipart structure is an error.
func Parse(headers HeaderGetter, body []byte) (*Part, error) {
	return parsePart(headers, body, 0)
}

func parsePart(h HeaderGetter, body []byte, depth int) (*Part, error) {
	p := &Part{
		ContentType:             "text/plain",
		Charset:                 "us-ascii",
		ContentTransferEncoding: Encoding7Bit,
		Body:                    body,
	}

	mediaType, params, err := mime.ParseMediaType(h.Get("Content-Type"))
	if err == nil {
		p.ContentType = mediaType
		p.Charset = params["charset"]
	}
	if cte := strings.ToLower(strings.TrimSpace(h.Get("Content-Transfer-Encoding"))); cte != "" {
		p.ContentTransferEncoding = ContentTransferEncoding(cte)
	}
	p.ContentID = strings.Trim(strings.TrimSpace(h.Get("Content-ID")), "<>")

	if disp, dispParams, err := mime.ParseMediaType(h.Get("Content-Disposition")); err == nil {
		p.Disposition = disp
		p.Filename = dispParams["filename"]
	}
	if p.Filename == "" {
		p.Filename = params["name"]
	}

	if !strings.HasPrefix(p.ContentType, "multipart/") {
		return p, nil
	}
	if depth >= MaxNesting {
		return nil, ErrTooDeep
	}
	boundary := params["boundary"]
	if boundary == "" {
		return nil, ErrMissingBoundary
	}

	r := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		// NextPart decodes quoted-printable sections and drops their
		// Content-Transfer-Encoding header.
		section, err := r.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mime: %s section %d: %w", p.ContentType, len(p.Parts), err)
		}
		data, err := io.ReadAll(section)
		if err != nil {
			return nil, fmt.Errorf("mime: %s section %d body: %w", p.ContentType, len(p.Parts), err)
		}
		child, err := parsePart(section.Header, data, depth+1)
		if err != nil {
			return nil, err
		}
		p.Parts = append(p.Parts, child)
	}

	if len(p.Parts) == 0 {
		return nil, ErrNoParts
	}
	return p, nil
}

// IsMultipart reports whether p is a multipart node with children.
func (p *Part) IsMultipart() bool {
	return strings.HasPrefix(p.ContentType, "multipart/") && len(p.Parts) > 0
}

// IsMessage reports whether p is an attached message (message/rfc822).
func (p *Part) IsMessage() bool {
	return strings.EqualFold(p.ContentType, "message/rfc822")
}

// IsAttachment reports whether p is a leaf the sender attached as a file.
func (p *Part) IsAttachment() bool {
	if p.IsMultipart() {
		return false
	}
	return strings.EqualFold(p.Disposition, "attachment") || p.Filename != ""
}

// Decoded returns the body with its transfer encoding removed.
func (p *Part) Decoded() ([]byte, error) {
	switch p.ContentTransferEncoding {
	case EncodingBase64:
		clean := bytes.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '\r', '\n':
				return -1
			}
			return r
		}, p.Body)
		out := make([]byte, base64.StdEncoding.DecodedLen(len(clean)))
		n, err := base64.StdEncoding.Decode(out, clean)
		if err != nil {
			return nil, fmt.Errorf("mime: base64 body: %w", err)
		}
		return out[:n], nil
	case EncodingQuotedPrintable:
		out, err := io.ReadAll(quotedprintable.NewReader(bytes.NewReader(p.Body)))
		if err != nil {
			return nil, fmt.Errorf("mime: quoted-printable body: %w", err)
		}
		return out, nil
	default:
		return p.Body, nil
	}
}

// Leaves returns the leaf parts below p in depth-first document order,
// or p itself when it is not multipart.
func (p *Part) Leaves() []*Part {
	if !p.IsMultipart() {
		return []*Part{p}
	}
	var out []*Part
	for _, child := range p.Parts {
		out = append(out, child.Leaves()...)
	}
	return out
}
