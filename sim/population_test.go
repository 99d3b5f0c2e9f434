package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkPerson(uid string) *Person {
	cfg := DefaultConfig()
	return NewPerson(&cfg, uid, 50, 0, false)
}

func mkPopulation(t *testing.T, n int) *Population {
	t.Helper()
	pop := NewPopulation()
	for i := 0; i < n; i++ {
		require.NoError(t, pop.Add(mkPerson(fmt.Sprintf("%09d", i))))
	}
	return pop
}

func TestPopulation_InsertionOrder(t *testing.T) {
	pop := mkPopulation(t, 5)
	assert.Equal(t, 5, pop.Len())
	for i := 0; i < 5; i++ {
		assert.Equal(t, fmt.Sprintf("%09d", i), pop.At(i).UID)
	}
}

func TestPopulation_DuplicateUIDRejected(t *testing.T) {
	pop := mkPopulation(t, 2)
	assert.Error(t, pop.Add(mkPerson("000000001")))
}

func TestPopulation_RemoveAllPreservesSurvivorOrder(t *testing.T) {
	pop := mkPopulation(t, 5)
	pop.RemoveAll([]string{"000000001", "000000003"})

	assert.Equal(t, 3, pop.Len())
	assert.Equal(t, 2, pop.RemovedLen())
	assert.Equal(t, "000000000", pop.At(0).UID)
	assert.Equal(t, "000000002", pop.At(1).UID)
	assert.Equal(t, "000000004", pop.At(2).UID)

	assert.False(t, pop.Has("000000001"))
	assert.Nil(t, pop.Get("000000001"))
	assert.NotNil(t, pop.Removed("000000001"))
}

func TestPopulation_RemovedUIDNeverReadded(t *testing.T) {
	pop := mkPopulation(t, 2)
	pop.RemoveAll([]string{"000000000"})
	assert.Error(t, pop.Add(mkPerson("000000000")))
}

func TestPopulation_Merge(t *testing.T) {
	a := mkPopulation(t, 2)
	b := NewPopulation()
	require.NoError(t, b.Add(mkPerson("000000100")))
	require.NoError(t, b.Add(mkPerson("000000101")))
	b.RemoveAll([]string{"000000101"})

	require.NoError(t, a.Merge(b))
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 1, a.RemovedLen())
	assert.Equal(t, "000000100", a.At(2).UID)
}

func TestPopulation_MergeCollision(t *testing.T) {
	a := mkPopulation(t, 2)
	b := mkPopulation(t, 2)
	assert.Error(t, a.Merge(b))
}
