package browser

import (
	"context"
	"time"

	"github.com/theapemachine/webtool/pkg/errors"
)

const (
	// Upper bound on a bare page load. The driver default is unbounded,
	// which leaves a dead site hanging the whole request.
	navigateTimeout = 30 * time.Second

	// DefaultWaitTime bounds the optional wait for a selector to appear
	// after navigation.
	DefaultWaitTime = 10 * time.Second
)

/*
Navigate loads url in the session page, launching the browser first if
needed. When waitForElement is non-empty the call blocks until a matching
element appears or waitTime elapses; a timeout surfaces as a
NavigationError naming the selector.
*/
func (s *Session) Navigate(ctx context.Context, url, waitForElement string, waitTime time.Duration) error {
	if err := s.EnsureReady(); err != nil {
		return err
	}

	page := s.page.Context(ctx)

	if err := page.Timeout(navigateTimeout).Navigate(url); err != nil {
		return errors.Internal(err, "failed to navigate to "+url)
	}

	if err := page.Timeout(navigateTimeout).WaitLoad(); err != nil {
		return errors.Internal(err, "page load did not complete for "+url)
	}

	if waitForElement != "" {
		if waitTime <= 0 {
			waitTime = DefaultWaitTime
		}

		if _, err := page.Timeout(waitTime).Element(waitForElement); err != nil {
			// A canceled caller context aborts the wait too; only the
			// wait deadline itself means the element never showed up.
			if ctx.Err() != nil {
				return errors.Internal(ctx.Err(), "navigation canceled")
			}

			return &errors.NavigationError{Selector: waitForElement}
		}
	}

	return nil
}
