package identicon

import "crypto/md5"

// Sum derives the 16-byte digest that seeds every later stage. MD5 keeps
// output parity with existing installations; here it is a deterministic
// pseudo-random byte source, not a security primitive.
func Sum(seed string) []byte {
	d := md5.Sum([]byte(seed))
	return d[:]
}
