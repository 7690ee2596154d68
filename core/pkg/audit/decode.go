package audit

import (
	"errors"
	"strconv"
)

// DecodeField decodes raw according to ft. It never panics and never
// returns an error: values that do not fit their type come back as a
// KindFailed marker holding a copy of raw.
func DecodeField(ft FieldType, raw []byte) Value {
	switch ft {
	case Encoded:
		return decodeEncoded(raw)
	case Numeric, NumericDec:
		return decodeDec(raw)
	case NumericHex:
		return decodeUnsigned(raw, 16)
	case NumericOct:
		return decodeUnsigned(raw, 8)
	default:
		return FailedValue(raw, ErrInvalidType)
	}
}

func decodeDec(raw []byte) Value {
	digits := raw
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if !allDigits(digits, 10) {
		return FailedValue(raw, ErrSyntax)
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return FailedValue(raw, numError(err))
	}
	return DecValue(n)
}

func decodeUnsigned(raw []byte, base int) Value {
	if !allDigits(raw, base) {
		return FailedValue(raw, ErrSyntax)
	}
	n, err := strconv.ParseUint(string(raw), base, 64)
	if err != nil {
		return FailedValue(raw, numError(err))
	}
	if base == 16 {
		return HexValue(n)
	}
	return OctValue(n)
}

// allDigits reports whether b is non-empty and holds only digits valid
// in base. strconv would also take a leading '+', which audit never emits.
func allDigits(b []byte, base int) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if digitVal(c) >= base {
			return false
		}
	}
	return true
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	default:
		return 99
	}
}

func numError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrRange
	}
	return ErrSyntax
}
