package history

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_AppendAndGet(t *testing.T) {
	s := NewInMemoryStore()

	_, ok := s.Get("run-1")
	assert.False(t, ok)

	rec := Record{
		RunID:      "run-1",
		Outputs:    map[string]any{"a": 1},
		FinishedAt: time.Now(),
	}
	s.Append(rec)

	got, ok := s.Get("run-1")
	require.True(t, ok)
	assert.Equal(t, rec.Outputs, got.Outputs)
	assert.NoError(t, got.Err)
}

func TestInMemoryStore_List(t *testing.T) {
	s := NewInMemoryStore()

	s.Append(Record{RunID: "run-1"})
	s.Append(Record{RunID: "run-2", Err: errors.New("failed")})

	records := s.List()
	require.Len(t, records, 2)
	assert.Equal(t, "run-1", records[0].RunID)
	assert.Equal(t, "run-2", records[1].RunID)
	assert.Error(t, records[1].Err)
}
