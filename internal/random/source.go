package random

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"time"
)

// rnd is seeded once per binary call; it is not safe for concurrent use
var rnd = mathrand.New(mathrand.NewSource(seed()))

func seed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
