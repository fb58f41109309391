package snowflake

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

// Init sets up the process-wide generator. nodeID must be in [0, 1023].
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("init snowflake node %d: %w", nodeID, err)
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns the next numeric ID. Init must have been called.
func NextID() int64 {
	return generate().Int64()
}

// NewID returns a prefixed, base58-encoded ID such as "rlns_2Hc8XkPq".
func NewID(prefix string) string {
	return prefix + "_" + generate().Base58()
}

func generate() snowflake.ID {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n == nil {
		panic("snowflake: Init not called")
	}
	return n.Generate()
}
