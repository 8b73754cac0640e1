package datadog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

const DefaultPageLimit = 1000

// Page is one page of a cursor paginated listing. Size is the page size
// reported by the server, which drives termination.
type Page[T any] struct {
	Records []T
	Next    string
	Size    int
}

// PageFetcher fetches the page that starts at cursor. The first page uses an empty cursor.
type PageFetcher[T any] func(ctx context.Context, cursor string) (*Page[T], error)

// Collect follows the cursor until a page reports a size strictly below limit
// and returns the records of every page, the last one included. The first
// fetch error aborts collection.
//
// The loop relies on the server reporting page sizes truthfully: a finite
// listing always ends with an undersized or empty page.
func Collect[T any](ctx context.Context, limit int, fetch PageFetcher[T]) ([]T, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	var records []T
	cursor := ""
	for pageNum := 1; ; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNum, err)
		}

		records = append(records, page.Records...)
		logrus.Debugf("Fetched page %d: %d records (reported size %d, total %d)",
			pageNum, len(page.Records), page.Size, len(records))

		if page.Size < limit {
			return records, nil
		}
		cursor = page.Next
	}
}
