package commands

import (
	"bytes"
	"strings"
	"sync"

	"github.com/leapstack-labs/leapgrid/pkg/core"
)

// safeBuffer is a bytes.Buffer safe for concurrent writes and reads.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func containsLine(s, line string) bool {
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) == line {
			return true
		}
	}
	return false
}

func splitFields(line string) []string {
	return strings.Fields(line)
}

func eastLocators() []core.AttributeLocator {
	return []core.AttributeLocator{core.NewAttributeLocator("region", "/elements/region/east")}
}

func westLocators() []core.AttributeLocator {
	return []core.AttributeLocator{core.NewAttributeLocator("region", "/elements/region/west")}
}
