package citation_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atomforge/atomforge/citation"
)

func aseRecord() citation.Record {
	return citation.Record{
		Key:   "ase-2017",
		Title: "The atomic simulation environment",
		Year:  2017,
	}
}

// TestRegistry_AddIdempotent: the first Record stored under a Key wins.
func TestRegistry_AddIdempotent(t *testing.T) {
	reg := citation.NewRegistry()
	reg.Add(aseRecord())
	reg.Add(aseRecord())

	changed := aseRecord()
	changed.Year = 1999
	reg.Add(changed)

	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, 2017, reg.All()[0].Year, "first registration wins")
}

// TestRegistry_HasAndLen on an empty and a populated registry.
func TestRegistry_HasAndLen(t *testing.T) {
	reg := citation.NewRegistry()
	assert.Equal(t, 0, reg.Len())
	assert.False(t, reg.Has("ase-2017"))

	reg.Add(aseRecord())
	assert.True(t, reg.Has("ase-2017"))
	assert.False(t, reg.Has("other"))
}

// TestRegistry_AllSorted returns records ordered by key.
func TestRegistry_AllSorted(t *testing.T) {
	reg := citation.NewRegistry()
	reg.Add(citation.Record{Key: "zzz"})
	reg.Add(citation.Record{Key: "aaa"})
	reg.Add(citation.Record{Key: "mmm"})

	all := reg.All()
	assert.Len(t, all, 3)
	assert.Equal(t, "aaa", all[0].Key)
	assert.Equal(t, "mmm", all[1].Key)
	assert.Equal(t, "zzz", all[2].Key)
}

// TestRegistry_ConcurrentAdd: concurrent registration of the same key
// never loses or duplicates the record.
func TestRegistry_ConcurrentAdd(t *testing.T) {
	reg := citation.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Add(aseRecord())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, reg.Len())
}

// TestDefault_Shared: Default returns the same registry across calls.
func TestDefault_Shared(t *testing.T) {
	assert.Same(t, citation.Default(), citation.Default())
}
