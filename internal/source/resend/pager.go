package resend

import "context"

// Page is one page of a before-cursor paginated collection. NextCursor
// is the id of the oldest item on the page and anchors the next call.
type Page[T any] struct {
	Items      []T
	HasMore    bool
	NextCursor string
}

type PageFunc[T any] func(ctx context.Context, before string) (Page[T], error)

// FetchAll drives fn with an advancing before-cursor until the provider
// reports no more pages or returns an empty page. Pages are concatenated
// in the order returned (reverse-chronological).
func FetchAll[T any](ctx context.Context, fn PageFunc[T]) ([]T, error) {
	var all []T
	cursor := ""

	for {
		page, err := fn(ctx, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Items...)

		if !page.HasMore || len(page.Items) == 0 {
			return all, nil
		}
		cursor = page.NextCursor
	}
}

// FetchSince issues exactly one call anchored at the stored cursor and
// stops. New items are assumed to fit in one page; a burst larger than
// the page size loses the overflow from the incremental path. This
// trades completeness for a single API call per run.
func FetchSince[T any](ctx context.Context, fn PageFunc[T], cursor string) ([]T, error) {
	page, err := fn(ctx, cursor)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
