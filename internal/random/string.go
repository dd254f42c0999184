package random

import (
	"strings"
)

const letters = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFJHIJKLMNOPQRSTUVWXYZ"

// ASCIIString generates random ASCII string which never starts with a digit
func ASCIIString(minLen, maxLen int) string {
	slen := minLen
	if maxLen > minLen {
		slen += rnd.Intn(maxLen - minLen)
	}

	var sb strings.Builder
	sb.Grow(slen)
	for sb.Len() < slen {
		char := letters[rnd.Intn(len(letters))]
		if sb.Len() == 0 && '0' <= char && char <= '9' {
			continue
		}
		sb.WriteByte(char)
	}

	return sb.String()
}
