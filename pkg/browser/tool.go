package browser

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

/*
Config carries the two pieces of process-wide configuration the automation
core reads, resolved once at construction time.
*/
type Config struct {
	// SearchURL is the base address of the structured search service.
	// Empty selects the DOM-scrape fallback strategy.
	SearchURL string

	// Model names the local generation model used for summarization.
	// Empty disables summarization until configured.
	Model string
}

/*
Tool bundles one browser session with the search strategy and summarizer
for a single inbound operation. Construct one per request and Close it on
the way out, whatever the outcome; the browser itself only launches when an
operation first touches the page.
*/
type Tool struct {
	session    *Session
	strategy   Strategy
	summarizer *Summarizer
}

/*
New builds a request-scoped Tool from cfg. A configured search service
selects the structured strategy; otherwise searches scrape the rendered
results page through the session browser.
*/
func New(cfg Config) *Tool {
	tool := &Tool{
		session:    &Session{},
		summarizer: &Summarizer{Model: cfg.Model},
	}

	if cfg.SearchURL != "" {
		tool.strategy = &ServiceStrategy{BaseURL: cfg.SearchURL}
	} else {
		tool.strategy = &DOMStrategy{Session: tool.session}
	}

	return tool
}

/*
WebSearch resolves query to at most maxResults ranked results. A strategy
failure degrades to an empty result set; it is logged but never surfaced to
the caller.
*/
func (t *Tool) WebSearch(ctx context.Context, query string, maxResults int) []Result {
	results, err := t.strategy.Search(ctx, query, maxResults)
	if err != nil {
		log.Warn("search degraded to empty result set", "query", query, "error", err)
		return nil
	}

	return results
}

/*
Navigate loads url in the session page, optionally waiting for
waitForElement to appear within waitTime.
*/
func (t *Tool) Navigate(ctx context.Context, url, waitForElement string, waitTime time.Duration) error {
	return t.session.Navigate(ctx, url, waitForElement, waitTime)
}

/*
ExtractContent returns the normalized visible text of url, or of the
current page when url is empty.
*/
func (t *Tool) ExtractContent(ctx context.Context, url, waitForElement string) (string, error) {
	return t.session.ExtractContent(ctx, url, waitForElement)
}

/*
Summarize condenses text through the configured local model. It never
touches the browser session.
*/
func (t *Tool) Summarize(ctx context.Context, text string, maxTokens int) (string, error) {
	return t.summarizer.Summarize(ctx, text, maxTokens)
}

/*
Close releases the browser session. Safe whether or not any operation ever
launched it.
*/
func (t *Tool) Close() {
	t.session.Close()
}
