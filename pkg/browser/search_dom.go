package browser

import (
	"context"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

// How long the DOM strategy waits for the first result node to render.
const resultsWaitTimeout = 10 * time.Second

/*
DOMStrategy scrapes a rendered DuckDuckGo results page through the session
browser. It is the fallback used when no structured search service is
configured.
*/
type DOMStrategy struct {
	Session *Session
}

/*
Search navigates the session page to the results page for query, waits for
at least one result node to render and parses up to maxResults of them.
Nodes missing their title or url sub-elements are skipped individually; a
render timeout yields an empty result set rather than an error.
*/
func (d *DOMStrategy) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if maxResults <= 0 {
		return nil, nil
	}

	if err := d.Session.EnsureReady(); err != nil {
		return nil, err
	}

	page := d.Session.page.Context(ctx)

	searchURL := "https://html.duckduckgo.com/html/?q=" + url.QueryEscape(query)
	if err := page.Timeout(navigateTimeout).Navigate(searchURL); err != nil {
		return nil, err
	}

	if _, err := page.Timeout(resultsWaitTimeout).Element(".result"); err != nil {
		log.Debug("no result nodes rendered", "query", query)
		return nil, nil
	}

	nodes, err := page.Elements(".result")
	if err != nil {
		return nil, nil
	}

	results := make([]Result, 0, maxResults)

	for _, node := range nodes {
		if len(results) >= maxResults {
			break
		}

		link, err := node.Timeout(time.Second).Element("h2 a")
		if err != nil {
			continue
		}

		title, err := link.Text()
		if err != nil {
			continue
		}

		href, err := link.Attribute("href")
		if err != nil || href == nil {
			continue
		}

		// Same filtering policy as the service strategy: a hit without
		// both a title and a url is not a hit.
		if title == "" || *href == "" {
			continue
		}

		snippet := ""
		if sn, err := node.Timeout(time.Second).Element(".result__snippet"); err == nil {
			snippet, _ = sn.Text()
		}

		results = append(results, Result{Title: title, URL: *href, Snippet: snippet})
	}

	return results, nil
}
