package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores rendered audit results so batch runs can skip files whose
// contents have not changed
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ContentKey derives a cache key from the raw report bytes. Keying on
// content rather than path means a renamed-but-identical file still hits.
func ContentKey(content []byte) string {
	hash := sha256.Sum256(content)
	return "bureauscan:v1:" + hex.EncodeToString(hash[:])
}
