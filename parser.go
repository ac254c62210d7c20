package phishtriage

import (
	"bytes"
	"strings"
)

// parseMessageContent parses raw message data into headers and body per RFC 5322.
// The header section is separated from the body by an empty line. If no
// empty line is present the whole message is treated as header section.
func parseMessageContent(data []byte) (Headers, []byte) {
	headerSection, body := splitHeaderBody(data)

	// Estimate header count (average ~50 bytes per header)
	headers := make(Headers, 0, max(len(headerSection)/50, 8))

	var currentName, currentValue string

	for len(headerSection) > 0 {
		var line []byte
		if i := bytes.IndexByte(headerSection, '\n'); i >= 0 {
			line, headerSection = headerSection[:i], headerSection[i+1:]
		} else {
			line, headerSection = headerSection, nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})

		if len(line) == 0 {
			continue
		}

		// Continuation of previous header (folded header per RFC 5322)
		if line[0] == ' ' || line[0] == '\t' {
			if currentName != "" {
				currentValue += " " + strings.TrimSpace(string(line))
			}
			continue
		}

		if currentName != "" {
			headers = append(headers, Header{Name: currentName, Value: currentValue})
		}

		name, value, found := strings.Cut(string(line), ":")
		if found && validFieldName(name) {
			currentName = name
			currentValue = strings.TrimSpace(value)
		} else {
			// Malformed header line (or an mbox "From " separator), skip it
			currentName = ""
			currentValue = ""
		}
	}

	if currentName != "" {
		headers = append(headers, Header{Name: currentName, Value: currentValue})
	}

	return headers, body
}

// splitHeaderBody finds the first empty line, terminated by CRLF or LF.
func splitHeaderBody(data []byte) (header, body []byte) {
	for i := 0; i < len(data); i++ {
		if data[i] != '\n' {
			continue
		}
		j := i + 1
		if j < len(data) && data[j] == '\r' {
			j++
		}
		if j < len(data) && data[j] == '\n' {
			return data[:i+1], data[j+1:]
		}
	}
	return data, nil
}

// validFieldName reports whether name is an RFC 5322 field name:
// printable US-ASCII except colon, no whitespace.
func validFieldName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 33 || name[i] > 126 {
			return false
		}
	}
	return true
}
