package datadog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sizedPages serves pages of the given sizes, each record being "<page>-<index>"
func sizedPages(t *testing.T, sizes []int, calls *int) PageFetcher[string] {
	return func(ctx context.Context, cursor string) (*Page[string], error) {
		idx := *calls
		*calls++
		require.Less(t, idx, len(sizes), "fetched past the last page")

		if idx == 0 {
			assert.Empty(t, cursor, "first page must use an empty cursor")
		} else {
			assert.Equal(t, fmt.Sprintf("cursor-%d", idx), cursor)
		}

		records := make([]string, sizes[idx])
		for i := range records {
			records[i] = fmt.Sprintf("%d-%d", idx, i)
		}
		return &Page[string]{Records: records, Next: fmt.Sprintf("cursor-%d", idx+1), Size: sizes[idx]}, nil
	}
}

func TestCollectStopsOnUndersizedPage(t *testing.T) {
	calls := 0
	records, err := Collect(context.Background(), 1000, sizedPages(t, []int{1000, 1000, 437}, &calls))
	require.NoError(t, err)

	assert.Len(t, records, 2437)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "0-0", records[0])
	assert.Equal(t, "2-436", records[len(records)-1])
}

func TestCollectKeepsFetchingFullPages(t *testing.T) {
	calls := 0
	records, err := Collect(context.Background(), 1000, sizedPages(t, []int{1000, 1000, 1000, 0}, &calls))
	require.NoError(t, err)

	assert.Len(t, records, 3000)
	assert.Equal(t, 4, calls)
}

func TestCollectSinglePage(t *testing.T) {
	calls := 0
	records, err := Collect(context.Background(), 1000, sizedPages(t, []int{3}, &calls))
	require.NoError(t, err)

	assert.Len(t, records, 3)
	assert.Equal(t, 1, calls)
}

func TestCollectDefaultsLimit(t *testing.T) {
	calls := 0
	records, err := Collect(context.Background(), 0, sizedPages(t, []int{1000, 12}, &calls))
	require.NoError(t, err)

	assert.Len(t, records, 1012)
	assert.Equal(t, 2, calls)
}

func TestCollectAbortsOnFetchError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fetch := func(ctx context.Context, cursor string) (*Page[int], error) {
		calls++
		if calls == 2 {
			return nil, boom
		}
		return &Page[int]{Records: make([]int, 10), Next: "next", Size: 10}, nil
	}

	records, err := Collect(context.Background(), 10, fetch)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "page 2")
	assert.Equal(t, 2, calls)
}

func TestCollectHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	fetch := func(ctx context.Context, cursor string) (*Page[int], error) {
		calls++
		cancel()
		return &Page[int]{Records: make([]int, 5), Size: 5}, nil
	}

	_, err := Collect(ctx, 5, fetch)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
