package browser

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/theapemachine/webtool/pkg/errors"
)

func TestCloseWithoutInit(t *testing.T) {
	session := &Session{}
	session.Close()
	session.Close() // idempotent
}

func TestToolCloseWithoutUse(t *testing.T) {
	tool := New(Config{})
	tool.Close()
	tool.Close()
}

// The tests below need a working browser install; they skip when the
// launcher cannot bring one up.

func TestNavigateAndExtractDataURL(t *testing.T) {
	session := &Session{}
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page := `<html><head><title>T</title><script>window.evil=1</script></head>` +
		`<body><p id="g">Hello   World</p></body></html>`

	if err := session.Navigate(ctx, "data:text/html,"+page, "#g", 5*time.Second); err != nil {
		t.Skipf("browser not available: %v", err)
	}

	content, err := session.ExtractContent(ctx, "", "")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.Contains(content, "Hello World") {
		t.Fatalf("unexpected content: %q", content)
	}
	if strings.Contains(content, "evil") {
		t.Fatalf("script text leaked into content: %q", content)
	}
}

func TestNavigateMissingSelector(t *testing.T) {
	session := &Session{}
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := session.EnsureReady(); err != nil {
		t.Skipf("browser not available: %v", err)
	}

	start := time.Now()
	err := session.Navigate(ctx, "data:text/html,<p>no match here</p>", "#missing", time.Second)
	elapsed := time.Since(start)

	var navErr *errors.NavigationError
	if !stderrors.As(err, &navErr) {
		t.Fatalf("expected NavigationError, got %v", err)
	}
	if navErr.Selector != "#missing" {
		t.Fatalf("error should name the selector, got %q", navErr.Selector)
	}
	if elapsed < time.Second || elapsed > 5*time.Second {
		t.Fatalf("wait window not honored, elapsed %s", elapsed)
	}
}

func TestNavigateCanceledContextIsNotSelectorFailure(t *testing.T) {
	session := &Session{}
	defer session.Close()

	if err := session.EnsureReady(); err != nil {
		t.Skipf("browser not available: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := session.Navigate(ctx, "data:text/html,<p>no match here</p>", "#missing", 10*time.Second)
	if err == nil {
		t.Fatal("expected an error from a canceled wait")
	}

	var navErr *errors.NavigationError
	if stderrors.As(err, &navErr) {
		t.Fatalf("caller cancellation mistaken for a missing element: %v", err)
	}
	if !stderrors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error should carry the context cause, got %v", err)
	}
}

func TestEnsureReadyIdempotent(t *testing.T) {
	session := &Session{}
	defer session.Close()

	if err := session.EnsureReady(); err != nil {
		t.Skipf("browser not available: %v", err)
	}

	page := session.page
	if err := session.EnsureReady(); err != nil {
		t.Fatalf("second EnsureReady failed: %v", err)
	}
	if session.page != page {
		t.Fatal("EnsureReady replaced the page of a ready session")
	}
}
