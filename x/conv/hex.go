package conv

const hexd = "0123456789ABCDEF"

// U8Hex writes 2-digit uppercase hex without 0x, high nibble first.
func U8Hex(buf []byte, n uint8) []byte {
	if len(buf) < 2 {
		return buf[:0]
	}
	i := len(buf) - 2
	buf[i] = hexd[n>>4]
	buf[i+1] = hexd[n&0xF]
	return buf[i:]
}

// U8Bin writes n as 8 '0'/'1' digits, most significant bit first.
func U8Bin(buf []byte, n uint8) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	i := len(buf) - 8
	for j := 0; j < 8; j++ {
		if n&(0x80>>j) != 0 {
			buf[i+j] = '1'
		} else {
			buf[i+j] = '0'
		}
	}
	return buf[i:]
}

// ParseU8 accepts decimal, 0x-prefixed hex or 0b-prefixed binary.
func ParseU8(s string) (uint8, bool) {
	base := uint32(10)
	switch {
	case len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X"):
		base, s = 16, s[2:]
	case len(s) > 2 && (s[:2] == "0b" || s[:2] == "0B"):
		base, s = 2, s[2:]
	}
	if s == "" {
		return 0, false
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= base {
			return 0, false
		}
		v = v*base + d
		if v > 0xFF {
			return 0, false
		}
	}
	return uint8(v), true
}

func digitVal(c byte) uint32 {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0')
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10
	}
	return 255
}
