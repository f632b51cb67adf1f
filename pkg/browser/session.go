package browser

import (
	"github.com/charmbracelet/log"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/theapemachine/webtool/pkg/errors"
)

/*
Session owns one headless browser and the single page all operations run
against. The launcher, browser and page handles are either all unset or all
ready; initialization is lazy and triggered by the first operation that
needs the page, not by construction. A Session belongs to exactly one
request-scoped Tool and is never shared.
*/
type Session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

/*
EnsureReady launches the headless browser on first use and opens the
session page. Calling it on an already-ready session does nothing. On any
step failing, handles acquired so far are released and the session stays
uninitialized; browser launch failures are not retried.
*/
func (s *Session) EnsureReady() error {
	if s.page != nil {
		return nil
	}

	launch := launcher.New().Headless(true).Leakless(true)

	wsURL, err := launch.Launch()
	if err != nil {
		launch.Cleanup()
		return errors.Internal(err, "failed to launch headless browser")
	}

	browser := rod.New().ControlURL(wsURL)
	if err := browser.Connect(); err != nil {
		launch.Cleanup()
		return errors.Internal(err, "failed to connect to browser")
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		launch.Cleanup()
		return errors.Internal(err, "failed to open page")
	}

	s.launcher = launch
	s.browser = browser
	s.page = page

	log.Debug("browser session ready", "ws", wsURL)
	return nil
}

/*
Close releases the page, browser and launcher in reverse-acquisition order.
It is a no-op on a never-initialized session and safe to call more than
once.
*/
func (s *Session) Close() {
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}

	if s.browser != nil {
		_ = s.browser.Close()
		s.browser = nil
	}

	if s.launcher != nil {
		s.launcher.Cleanup()
		s.launcher = nil
	}
}
