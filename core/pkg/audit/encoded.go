package audit

import (
	"bytes"
	"encoding/hex"
)

// decodeEncoded handles the forms the kernel and auditd use for
// untrusted strings:
//
//	"..."      double-quoted text, quotes stripped
//	2F746D70   bare hex pairs, decoded to bytes
//	(null), ?  empty
//
// Anything else is taken as text. Backslash escapes are expanded in
// quoted and bare text alike.
func decodeEncoded(raw []byte) Value {
	switch {
	case len(raw) == 0, string(raw) == "(null)", string(raw) == "?":
		return TextValue(nil)
	case len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"':
		return unescapeValue(raw, raw[1:len(raw)-1])
	case isHexBlob(raw):
		out := make([]byte, len(raw)/2)
		if _, err := hex.Decode(out, raw); err != nil {
			return FailedValue(raw, ErrEscape)
		}
		return TextValue(out)
	default:
		return unescapeValue(raw, raw)
	}
}

func unescapeValue(raw, body []byte) Value {
	out, err := unescape(body)
	if err != nil {
		return FailedValue(raw, err)
	}
	return TextValue(out)
}

func isHexBlob(b []byte) bool {
	return len(b)%2 == 0 && allDigits(b, 16)
}

// unescape expands \xHH, \ooo, \\, \", \', \n, \t, \r. The result never
// aliases b.
func unescape(b []byte) ([]byte, error) {
	if bytes.IndexByte(b, '\\') < 0 {
		return bytes.Clone(nonNil(b)), nil
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(b) {
			return nil, ErrEscape
		}
		switch e := b[i]; e {
		case '\\', '"', '\'':
			out = append(out, e)
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case 'x':
			if i+2 >= len(b) {
				return nil, ErrEscape
			}
			hi, lo := digitVal(b[i+1]), digitVal(b[i+2])
			if hi > 15 || lo > 15 {
				return nil, ErrEscape
			}
			out = append(out, byte(hi<<4|lo))
			i += 2
		case '0', '1', '2', '3', '4', '5', '6', '7':
			n, j := 0, i
			for ; j < len(b) && j < i+3 && '0' <= b[j] && b[j] <= '7'; j++ {
				n = n*8 + int(b[j]-'0')
			}
			if n > 0xff {
				return nil, ErrEscape
			}
			out = append(out, byte(n))
			i = j - 1
		default:
			return nil, ErrEscape
		}
	}
	return out, nil
}
