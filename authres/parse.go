package authres

import (
	"fmt"
	"sort"
	"strings"

	msgauth "github.com/emersion/go-msgauth/authres"
)

// Parse parses an Authentication-Results header value (without the field
// name and colon).
//
// Format: authserv-id [version] ( "; none" / *( ";" method=result
// [reason=value] *(ptype.property=value) ) ).
//
// A value whose first clause is already a method=result pair, as Exchange
// Online writes it, parses with an empty AuthServID.
func Parse(value string) (*Result, error) {
	clean, err := stripComments(value)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(clean) == "" {
		return nil, ErrMissingAuthServID
	}

	var res *Result
	if strings.ContainsRune(clean, '"') {
		res, err = parseQuoted(clean)
	} else {
		res, err = parsePlain(clean)
	}
	if err != nil {
		return nil, err
	}
	res.Raw = value
	return res, nil
}

// headless reports whether the first segment of a header is a method
// clause rather than an authserv-id.
func headless(head string) bool {
	return strings.Contains(head, "=")
}

// parsePlain hands a comment-free, quote-free value to go-msgauth and
// converts its typed results.
func parsePlain(clean string) (*Result, error) {
	head, rest, _ := strings.Cut(clean, ";")
	if strings.TrimSpace(head) == "" {
		return nil, ErrMissingAuthServID
	}

	res := &Result{}
	input := head + ";" + tighten(rest)
	if headless(head) {
		input = ";" + tighten(head) + ";" + tighten(rest)
	} else if fields := strings.Fields(head); len(fields) == 2 {
		res.Version = fields[1]
	}

	id, results, err := msgauth.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	res.AuthServID = id

	for _, r := range results {
		m, err := fromLibrary(r)
		if err != nil {
			return nil, err
		}
		res.Methods = append(res.Methods, m)
	}
	return res, nil
}

// fromLibrary flattens a go-msgauth result into a MethodResult. Typed
// results keep only the properties go-msgauth extracts for their method.
func fromLibrary(r msgauth.Result) (MethodResult, error) {
	var m MethodResult

	switch r := r.(type) {
	case *msgauth.AuthResult:
		m = MethodResult{Method: "auth", Value: Value(r.Value), Reason: r.Reason}
		m.add("smtp", "auth", r.Auth)
	case *msgauth.DKIMResult:
		m = MethodResult{Method: MethodDKIM, Value: Value(r.Value), Reason: r.Reason}
		m.add("header", "d", r.Domain)
		m.add("header", "i", r.Identifier)
	case *msgauth.DomainKeysResult:
		m = MethodResult{Method: "domainkeys", Value: Value(r.Value), Reason: r.Reason}
		m.add("header", "d", r.Domain)
		m.add("header", "from", r.From)
		m.add("header", "sender", r.Sender)
	case *msgauth.IPRevResult:
		m = MethodResult{Method: "iprev", Value: Value(r.Value), Reason: r.Reason}
		m.add("policy", "iprev", r.IP)
	case *msgauth.SenderIDResult:
		m = MethodResult{Method: "sender-id", Value: Value(r.Value), Reason: r.Reason}
		m.add("header", strings.ToLower(r.HeaderKey), r.HeaderValue)
	case *msgauth.SPFResult:
		m = MethodResult{Method: MethodSPF, Value: Value(r.Value), Reason: r.Reason}
		m.add("smtp", "mailfrom", r.From)
		m.add("smtp", "helo", r.Helo)
	case *msgauth.DMARCResult:
		m = MethodResult{Method: MethodDMARC, Value: Value(r.Value), Reason: r.Reason}
		m.add("header", "from", r.From)
	case *msgauth.ARCResult:
		m = MethodResult{Method: MethodARC, Value: Value(r.Value)}
		m.add("smtp", "remote-ip", r.RemoteIP)
		if r.OldestPass > 0 {
			m.add("header", "oldest-pass", fmt.Sprint(r.OldestPass))
		}
	case *msgauth.GenericResult:
		// go-msgauth keeps "method/version" as the method name.
		method, version, _ := strings.Cut(r.Method, "/")
		m = MethodResult{Method: method, Version: version, Value: Value(r.Value)}

		keys := make([]string, 0, len(r.Params))
		for k := range r.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if k == "reason" {
				m.Reason = r.Params[k]
				continue
			}
			ptype, name, found := strings.Cut(k, ".")
			if !found {
				ptype, name = "", k
			}
			m.add(ptype, name, r.Params[k])
		}
	default:
		return MethodResult{}, fmt.Errorf("%w: unsupported result %T", ErrSyntax, r)
	}

	if m.Method == "" || m.Value == "" {
		return MethodResult{}, fmt.Errorf("%w: empty method or result", ErrSyntax)
	}
	return m, nil
}

func (m *MethodResult) add(ptype, name, value string) {
	if value == "" {
		return
	}
	m.Properties = append(m.Properties, Property{Type: ptype, Name: name, Value: value})
}

// tighten removes whitespace around the "=" of each pair and around the
// "/" and "." separators of a key, so every pair becomes one field.
func tighten(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inValue := false // current token is past its "="
	afterEq := false // nothing written since that "="

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isSpace(c) {
			if c == ';' {
				inValue = false
			} else if c == '=' && !inValue {
				inValue, afterEq = true, true
				b.WriteByte(c)
				continue
			}
			afterEq = false
			b.WriteByte(c)
			continue
		}

		j := i
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		var prev, next byte
		if b.Len() > 0 {
			prev = b.String()[b.Len()-1]
		}
		if j < len(s) {
			next = s[j]
		}

		join := afterEq || (!inValue && (next == '=' || next == '.' || next == '/' || prev == '.' || prev == '/'))
		if !join {
			b.WriteString(s[i:j])
			inValue = false
		}
		i = j - 1
	}

	return b.String()
}

// parseQuoted tokenizes values that carry quoted strings. go-msgauth
// splits on ";" and whitespace without honouring quotes.
func parseQuoted(clean string) (*Result, error) {
	segments, err := splitClauses(clean)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	clauses := segments[1:]

	switch {
	case strings.TrimSpace(segments[0]) == "":
		return nil, ErrMissingAuthServID
	case headless(segments[0]):
		clauses = segments
	default:
		// authserv-id [authres-version]
		head := &scanner{s: segments[0]}
		head.skipSpace()
		id, err := head.value()
		if err != nil {
			return nil, err
		}
		res.AuthServID = id

		if !head.done() {
			version, err := head.value()
			if err != nil {
				return nil, err
			}
			if !isDigits(version) || !head.done() {
				return nil, fmt.Errorf("%w: unexpected text after authserv-id %q", ErrSyntax, id)
			}
			res.Version = version
		}
	}

	for _, seg := range clauses {
		seg = strings.TrimSpace(seg)
		if seg == "" || strings.EqualFold(seg, string(ValueNone)) {
			continue
		}

		m, err := parseMethod(seg)
		if err != nil {
			return nil, err
		}
		res.Methods = append(res.Methods, m)
	}

	return res, nil
}

// parseMethod parses one resinfo clause.
func parseMethod(seg string) (MethodResult, error) {
	sc := &scanner{s: seg}

	key, val, err := sc.pair()
	if err != nil {
		return MethodResult{}, err
	}

	method, version, _ := strings.Cut(key, "/")
	m := MethodResult{
		Method:  strings.ToLower(method),
		Version: version,
		Value:   Value(strings.ToLower(val)),
	}
	if m.Method == "" || m.Value == "" {
		return MethodResult{}, fmt.Errorf("%w: empty method or result in %q", ErrSyntax, seg)
	}

	for !sc.done() {
		key, val, err := sc.pair()
		if err != nil {
			return MethodResult{}, err
		}

		if strings.EqualFold(key, "reason") {
			m.Reason = val
			continue
		}

		ptype, name, found := strings.Cut(key, ".")
		if !found {
			ptype, name = "", key
		}
		m.Properties = append(m.Properties, Property{
			Type:  strings.ToLower(ptype),
			Name:  strings.ToLower(name),
			Value: val,
		})
	}

	return m, nil
}

// stripComments replaces every RFC 5322 comment outside quoted strings
// with a single space. Comments may nest.
func stripComments(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	depth := 0
	inQuote := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case depth > 0:
			switch c {
			case '\\':
				i++
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					b.WriteByte(' ')
				}
			}

		case inQuote:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			} else if c == '"' {
				inQuote = false
			}

		default:
			switch c {
			case '(':
				depth = 1
			case ')':
				return "", fmt.Errorf("%w: unbalanced ')'", ErrSyntax)
			case '"':
				inQuote = true
				b.WriteByte(c)
			default:
				b.WriteByte(c)
			}
		}
	}

	if depth > 0 {
		return "", ErrUnterminatedComment
	}
	if inQuote {
		return "", ErrUnterminatedQuote
	}
	return b.String(), nil
}

// splitClauses splits on semicolons outside quoted strings.
func splitClauses(s string) ([]string, error) {
	var parts []string
	start := 0
	inQuote := false

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if inQuote {
				i++
			}
		case '"':
			inQuote = !inQuote
		case ';':
			if !inQuote {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if inQuote {
		return nil, ErrUnterminatedQuote
	}

	return append(parts, s[start:]), nil
}

// scanner walks a single comment-free clause.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

func (sc *scanner) done() bool {
	sc.skipSpace()
	return sc.pos >= len(sc.s)
}

// value reads a quoted string or a run of non-space characters.
func (sc *scanner) value() (string, error) {
	if sc.pos < len(sc.s) && sc.s[sc.pos] == '"' {
		return sc.quoted()
	}
	start := sc.pos
	for sc.pos < len(sc.s) && !isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
	return sc.s[start:sc.pos], nil
}

func (sc *scanner) quoted() (string, error) {
	var b strings.Builder
	sc.pos++ // opening quote

	for sc.pos < len(sc.s) {
		c := sc.s[sc.pos]
		switch c {
		case '\\':
			if sc.pos+1 >= len(sc.s) {
				return "", ErrUnterminatedQuote
			}
			b.WriteByte(sc.s[sc.pos+1])
			sc.pos += 2
			continue
		case '"':
			sc.pos++
			return b.String(), nil
		}
		b.WriteByte(c)
		sc.pos++
	}
	return "", ErrUnterminatedQuote
}

// pair reads "key = value". Whitespace is allowed around "=" and around
// the "/" and "." separators inside the key.
func (sc *scanner) pair() (key, val string, err error) {
	sc.skipSpace()

	var kb strings.Builder
	for {
		start := sc.pos
		for sc.pos < len(sc.s) && !isSpace(sc.s[sc.pos]) && sc.s[sc.pos] != '=' && sc.s[sc.pos] != '"' {
			sc.pos++
		}
		kb.WriteString(sc.s[start:sc.pos])

		sc.skipSpace()
		if sc.pos >= len(sc.s) {
			return "", "", fmt.Errorf("%w: expected '=' after %q", ErrSyntax, kb.String())
		}

		c := sc.s[sc.pos]
		if c == '=' {
			break
		}
		k := kb.String()
		if c != '"' && (strings.HasSuffix(k, "/") || strings.HasSuffix(k, ".") || c == '/' || c == '.') {
			continue
		}
		return "", "", fmt.Errorf("%w: expected '=' after %q", ErrSyntax, k)
	}
	sc.pos++ // '='

	key = kb.String()
	if key == "" {
		return "", "", fmt.Errorf("%w: missing key before '='", ErrSyntax)
	}

	sc.skipSpace()
	val, err = sc.value()
	if err != nil {
		return "", "", err
	}
	return key, val, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
