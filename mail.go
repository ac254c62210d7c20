package phishtriage

import (
	"io"
	"net/mail"
	"strings"
	"time"

	"github.com/synqronlabs/phishtriage/mime"
	"github.com/synqronlabs/phishtriage/utils"
)

// MailboxAddress represents an email address as per RFC 5322 Section 3.4.
type MailboxAddress struct {
	// LocalPart is the portion before the @ sign.
	LocalPart string `json:"local_part"`

	// Domain is the portion after the @ sign, lower-cased.
	Domain string `json:"domain"`

	// DisplayName is the decoded human-readable name, if any.
	DisplayName string `json:"display_name,omitempty"`
}

// String returns the address in the standard "local-part@domain" format.
func (m MailboxAddress) String() string {
	if m.LocalPart == "" && m.Domain == "" {
		return ""
	}
	return m.LocalPart + "@" + m.Domain
}

// Header represents a single message header field as per RFC 5322.
type Header struct {
	// Name is the header field name (e.g., "From", "Subject").
	Name string `json:"name"`
	// Value is the unfolded header field value.
	Value string `json:"value"`
}

// Headers is a collection of message headers in document order.
type Headers []Header

// Get returns the first header value with the given name (case-insensitive).
func (h Headers) Get(name string) string {
	for _, hdr := range h {
		if utils.EqualFoldASCII(hdr.Name, name) {
			return hdr.Value
		}
	}
	return ""
}

// GetAll returns all header values with the given name (case-insensitive),
// in document order.
func (h Headers) GetAll(name string) []string {
	var values []string
	for _, hdr := range h {
		if utils.EqualFoldASCII(hdr.Name, name) {
			values = append(values, hdr.Value)
		}
	}
	return values
}

// Mail is a parsed RFC 5322 message.
type Mail struct {
	// ID is a unique identifier assigned when the message was parsed.
	ID string `json:"id"`

	// Headers contains all header fields in document order.
	Headers Headers `json:"headers"`

	// Body is the raw (still transfer-encoded) message body.
	Body []byte `json:"body,omitempty"`

	// Raw is the message exactly as it was parsed.
	Raw []byte `json:"-"`
}

// ParseMail parses a raw message. Both CRLF and bare LF line endings are
// accepted, since reports exported from mbox files use LF.
func ParseMail(raw []byte) (*Mail, error) {
	headers, body := parseMessageContent(raw)
	if len(headers) == 0 {
		return nil, ErrNoHeaders
	}

	return &Mail{
		ID:      utils.GenerateID(),
		Headers: headers,
		Body:    body,
		Raw:     raw,
	}, nil
}

// ReadMail reads r to the end and parses it as a message.
func ReadMail(r io.Reader) (*Mail, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseMail(raw)
}

// GetAll returns all values of the named header.
func (m *Mail) GetAll(name string) []string {
	if m == nil {
		return nil
	}
	return m.Headers.GetAll(name)
}

// From returns the single RFC5322.From address. Messages with no From,
// an unparsable From or several From addresses return an error.
func (m *Mail) From() (MailboxAddress, error) {
	fromHeader := m.Headers.Get("From")
	if fromHeader == "" {
		return MailboxAddress{}, ErrNoFromHeader
	}

	parser := mail.AddressParser{WordDecoder: wordDecoder}
	addrs, err := parser.ParseList(fromHeader)
	if err != nil {
		return MailboxAddress{}, ErrInvalidFromHeader
	}
	if len(addrs) == 0 {
		return MailboxAddress{}, ErrNoFromHeader
	}
	if len(addrs) > 1 {
		return MailboxAddress{}, ErrMultipleFromAddresses
	}

	return splitAddress(addrs[0])
}

// FromDomain returns the lower-cased domain of the From address, or an
// empty string if it cannot be determined.
func (m *Mail) FromDomain() string {
	addr, err := m.From()
	if err != nil {
		return ""
	}
	return addr.Domain
}

// Subject returns the decoded Subject header.
func (m *Mail) Subject() string {
	return decodeHeader(m.Headers.Get("Subject"))
}

// MessageID returns the Message-ID without angle brackets.
func (m *Mail) MessageID() string {
	return strings.Trim(strings.TrimSpace(m.Headers.Get("Message-ID")), "<>")
}

// Date returns the parsed Date header, or the zero time.
func (m *Mail) Date() time.Time {
	t, err := mail.ParseDate(m.Headers.Get("Date"))
	if err != nil {
		return time.Time{}
	}
	return t
}

// HeaderBytes renders the header section back into "Name: value" lines.
func (m *Mail) HeaderBytes() []byte {
	var b strings.Builder
	for _, h := range m.Headers {
		b.WriteString(h.Name)
		b.WriteString(": ")
		b.WriteString(h.Value)
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

// MIME parses the message body into a MIME tree.
func (m *Mail) MIME() (*mime.Part, error) {
	return mime.Parse(m.Headers, m.Body)
}

// ParseAddress parses an email address string into a MailboxAddress.
// Supports both simple "user@domain" and RFC 5322 formatted addresses,
// including RFC 2047 encoded display names.
func ParseAddress(addr string) (MailboxAddress, error) {
	parser := mail.AddressParser{WordDecoder: wordDecoder}
	parsed, err := parser.Parse(addr)
	if err != nil {
		return MailboxAddress{}, err
	}
	return splitAddress(parsed)
}

func splitAddress(parsed *mail.Address) (MailboxAddress, error) {
	address := parsed.Address
	at := strings.LastIndexByte(address, '@')
	if at <= 0 || at == len(address)-1 {
		return MailboxAddress{}, ErrInvalidFromHeader
	}

	return MailboxAddress{
		LocalPart:   address[:at],
		Domain:      strings.ToLower(address[at+1:]),
		DisplayName: parsed.Name,
	}, nil
}
