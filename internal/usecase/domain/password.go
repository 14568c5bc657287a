package domain

import (
	"crypto/rand"
	"math/big"
)

// Password charset excludes ambiguous glyphs (i, l, o, I, L, O, 0, 6).
const passwordCharset = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ12345789"

const passwordLength = 11

// randomPassword returns an 11-character password with separators at
// positions 3 and 7, e.g. "abc-defg-hi".
func randomPassword() string {
	out := make([]byte, passwordLength)
	for i := range out {
		if i == 3 || i == 7 {
			out[i] = '-'
			continue
		}
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordCharset))))
		if err != nil {
			// crypto/rand only fails when the platform source is broken.
			panic(err)
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return string(out)
}
