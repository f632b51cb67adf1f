package browser

import (
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/theapemachine/webtool/pkg/errors"
)

/*
ExtractContent returns the visible text of a page as a single normalized
string. When url is non-empty the session navigates there first, honoring
waitForElement; otherwise it reads whatever page the session currently
holds.
*/
func (s *Session) ExtractContent(ctx context.Context, url, waitForElement string) (string, error) {
	if url != "" {
		if err := s.Navigate(ctx, url, waitForElement, DefaultWaitTime); err != nil {
			return "", err
		}
	}

	if err := s.EnsureReady(); err != nil {
		return "", err
	}

	raw, err := s.page.Context(ctx).HTML()
	if err != nil {
		return "", errors.Internal(err, "failed to read page content")
	}

	return ExtractText(raw), nil
}

/*
ExtractText strips script, style and noscript subtrees plus comments from
rawHTML and returns the remaining text with all whitespace runs collapsed
to single spaces. Applying it to its own output is a no-op.
*/
func ExtractText(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		// html.Parse recovers from almost anything; if it truly cannot,
		// normalize the input as-is.
		return CollapseWhitespace(rawHTML)
	}

	var builder strings.Builder
	textNodes(doc, &builder)

	return CollapseWhitespace(builder.String())
}

func textNodes(node *html.Node, builder *strings.Builder) {
	if node.Type == html.CommentNode {
		return
	}

	if node.Type == html.ElementNode {
		switch node.Data {
		case "script", "style", "noscript":
			return
		}
	}

	if node.Type == html.TextNode {
		builder.WriteString(node.Data)
		builder.WriteByte(' ')
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		textNodes(child, builder)
	}
}

/*
CollapseWhitespace reduces every run of whitespace in s to a single space
and trims the ends.
*/
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
