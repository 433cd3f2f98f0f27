package idutil

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	mu   sync.Mutex
)

func init() {
	var err error
	node, err = snowflake.NewNode(0)
	if err != nil {
		panic(err)
	}
}

// SetNode changes the snowflake node of this process. Processes sharing a
// database must use different node ids.
func SetNode(id int64) error {
	n, err := snowflake.NewNode(id)
	if err != nil {
		return err
	}

	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NewID returns an id which is greater than every id generated before by this
// process.
func NewID() int64 {
	mu.Lock()
	n := node
	mu.Unlock()

	return n.Generate().Int64()
}

func TimeOf(id int64) time.Time {
	return time.UnixMilli(snowflake.ParseInt64(id).Time())
}
