package browser

import "context"

/*
Result is one ranked search hit. Both strategies emit the same shape so
callers stay agnostic to which one produced it.
*/
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

/*
Strategy resolves a text query to at most maxResults ranked results, in the
order the underlying source returned them. A strategy that cannot reach or
parse its source returns a non-nil error; it is the caller's decision
whether that degrades to an empty result set or aborts.
*/
type Strategy interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}
