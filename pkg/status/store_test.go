package status_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/buildscripts/pkg/status"
	"github.com/arthur-debert/buildscripts/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRecordCreatesZeroRecord(t *testing.T) {
	store := status.NewStore()

	var seen types.BuildRecord
	called := false
	store.WithRecord("never-touched", func(rec *types.BuildRecord) {
		require.NotNil(t, rec)
		called = true
		seen = rec.Clone()
	})

	require.True(t, called)
	assert.Empty(t, seen.Version)
	assert.Empty(t, seen.SourceDirectory)
	assert.NotNil(t, seen.ExtraParameters)
	assert.Empty(t, seen.ExtraParameters)
	assert.Equal(t, 1, store.Len())
}

func TestReadAfterWrite(t *testing.T) {
	store := status.NewStore()

	store.WithRecord("test", func(rec *types.BuildRecord) {
		rec.Version = "1.2.3"
		rec.SourceDirectory = "sourcepackage/test_1.2.3_master"
		rec.MergeParameters(types.Params{"param1": "value1"})
	})

	rec, ok := store.ReadRecord("test")
	require.True(t, ok)
	assert.Equal(t, "1.2.3", rec.Version)
	assert.Equal(t, "sourcepackage/test_1.2.3_master", rec.SourceDirectory)
	assert.Equal(t, "value1", rec.ExtraParameters["param1"])
}

func TestReadRecordMissing(t *testing.T) {
	store := status.NewStore()

	_, ok := store.ReadRecord("ghost")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len(), "reading must not create records")
}

func TestReadRecordReturnsCopy(t *testing.T) {
	store := status.NewStore()
	store.WithRecord("test", func(rec *types.BuildRecord) {
		rec.ExtraParameters["k"] = "v"
	})

	rec, _ := store.ReadRecord("test")
	rec.ExtraParameters["k"] = "mutated"

	again, _ := store.ReadRecord("test")
	assert.Equal(t, "v", again.ExtraParameters["k"])
}

func TestRecordsAccumulate(t *testing.T) {
	store := status.NewStore()

	store.WithRecord("test", func(rec *types.BuildRecord) {
		rec.MergeParameters(types.Params{"param1": "value1"})
	})
	store.WithRecord("test", func(rec *types.BuildRecord) {
		rec.MergeParameters(types.Params{"param2": "value2"})
	})

	rec, _ := store.ReadRecord("test")
	assert.Equal(t, map[string]string{"param1": "value1", "param2": "value2"}, rec.ExtraParameters)
}

func TestNamesAndSnapshot(t *testing.T) {
	store := status.NewStore()
	for _, name := range []string{"test3", "test", "test2"} {
		n := name
		store.WithRecord(n, func(rec *types.BuildRecord) { rec.Version = n })
	}

	assert.Equal(t, []string{"test", "test2", "test3"}, store.Names())

	snap := store.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "test2", snap["test2"].Version)

	snap["test"].ExtraParameters["x"] = "y"
	rec, _ := store.ReadRecord("test")
	assert.Empty(t, rec.ExtraParameters)
}

func TestConcurrentAccessSerializes(t *testing.T) {
	store := status.NewStore()
	const workers = 16
	const perWorker = 100

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				store.WithRecord("shared", func(rec *types.BuildRecord) {
					rec.ExtraParameters[fmt.Sprintf("w%d_%d", id, i)] = "x"
				})
				_, _ = store.ReadRecord("shared")
			}
		}(w)
	}
	wg.Wait()

	rec, ok := store.ReadRecord("shared")
	require.True(t, ok)
	assert.Len(t, rec.ExtraParameters, workers*perWorker)
}
