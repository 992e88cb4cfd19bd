package ability

import (
	"encoding/base64"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// DescriptorGenerator produces modifier descriptors for callers that do not
// name the modifier's source themselves.
type DescriptorGenerator interface {
	Generate() string
}

// RandomDescriptors generates URL-safe descriptors from 16 random bytes.
type RandomDescriptors struct{}

// Generate returns an unpadded URL-safe base64 encoding of a random UUID.
func (RandomDescriptors) Generate() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// SequentialDescriptors generates deterministic descriptors for tests.
type SequentialDescriptors struct {
	prefix  string
	counter uint64
}

// NewSequentialDescriptors returns a generator yielding "<prefix>_1", "<prefix>_2", ...
// or "1", "2", ... when prefix is empty.
func NewSequentialDescriptors(prefix string) *SequentialDescriptors {
	return &SequentialDescriptors{prefix: prefix}
}

// Generate returns the next sequential descriptor.
func (g *SequentialDescriptors) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}
