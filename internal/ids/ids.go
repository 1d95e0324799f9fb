// Package ids derives short stable identifiers from strings.
package ids

import (
	"crypto/md5"
	"encoding/hex"
)

// Derive returns the lowercase hex MD5 digest of s.
func Derive(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
