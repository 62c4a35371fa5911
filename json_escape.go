package kv

import "unicode/utf8"

var jsonNeedsEscape = func() [256]bool {
	var table [256]bool
	for i := 0; i < 32; i++ {
		table[i] = true
	}
	table['"'] = true
	table['\\'] = true
	table['<'] = true
	table['\''] = true
	return table
}()

func writeJSONString(vb *valueBuffer, s string) {
	vb.reserve(len(s) + 2)
	vb.buf = append(vb.buf, '"')
	appendEscapedStringContent(vb, s)
	vb.buf = append(vb.buf, '"')
}

func appendEscapedStringContent(vb *valueBuffer, s string) {
	const hex = "0123456789abcdef"
	for len(s) > 0 {
		idx := firstJSONUnsafeIndex(s)
		vb.buf = append(vb.buf, s[:idx]...)
		if idx == len(s) {
			break
		}
		switch c := s[idx]; c {
		case '\\', '"':
			vb.buf = append(vb.buf, '\\', c)
		case '\b':
			vb.buf = append(vb.buf, '\\', 'b')
		case '\f':
			vb.buf = append(vb.buf, '\\', 'f')
		case '\n':
			vb.buf = append(vb.buf, '\\', 'n')
		case '\r':
			vb.buf = append(vb.buf, '\\', 'r')
		case '\t':
			vb.buf = append(vb.buf, '\\', 't')
		default:
			if c >= utf8.RuneSelf {
				// invalid UTF-8 byte
				vb.buf = append(vb.buf, `\ufffd`...)
				break
			}
			vb.buf = append(vb.buf, '\\', 'u', '0', '0', hex[c>>4], hex[c&0x0f])
		}
		s = s[idx+1:]
	}
}

// firstJSONUnsafeIndex returns the index of the first byte that needs
// escaping, or len(s) when the whole string can be copied verbatim.
func firstJSONUnsafeIndex(s string) int {
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if jsonNeedsEscape[c] {
				return i
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(s)
}
