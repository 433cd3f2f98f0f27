package idutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewID_Increasing(t *testing.T) {
	prev := NewID()
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestTimeOf(t *testing.T) {
	before := time.Now().Add(-time.Second)
	id := NewID()
	require.True(t, TimeOf(id).After(before))
}
