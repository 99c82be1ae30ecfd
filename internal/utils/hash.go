package utils

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// hasherPool is a package-level pool of reusable unkeyed BLAKE2b-256 hash
// instances used for content fingerprints.
var hasherPool = sync.Pool{
	New: func() any {
		h, err := blake2b.New256(nil)
		if err != nil {
			// unkeyed construction cannot fail
			panic(err)
		}
		return h
	},
}

// HashReader streams r through BLAKE2b-256 and returns the hex-encoded digest.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, copies the whole reader into it, computes the sum
//   - Resets again and returns it to the pool
//
// Example usage:
//
//	f, _ := os.Open("photo.jpg")
//	fingerprint, err := utils.HashReader(f)
func HashReader(r io.Reader) (string, error) {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()
	defer func() {
		h.Reset()
		hasherPool.Put(h)
	}()

	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("error reading content for hashing: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
