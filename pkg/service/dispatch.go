package service

import (
	"github.com/cohesivestack/valgo"
	"github.com/gofiber/fiber/v3"

	"github.com/theapemachine/webtool/pkg/browser"
	"github.com/theapemachine/webtool/pkg/errors"
)

/*
ToolAction is the tagged union accepted by the unified dispatcher. Which
fields are required depends on the action tag.
*/
type ToolAction struct {
	Action         string `json:"action"`
	Query          string `json:"query,omitempty"`
	MaxResults     int    `json:"max_results,omitempty"`
	URL            string `json:"url,omitempty"`
	WaitForElement string `json:"wait_for_element,omitempty"`
	Text           string `json:"text,omitempty"`
	MaxTokens      int    `json:"max_tokens,omitempty"`
}

/*
validateAction rejects unrecognized action tags and blank required fields.
It runs before any session exists, so a bad request never pays for a
browser launch.
*/
func validateAction(action ToolAction) error {
	var field, value string

	switch action.Action {
	case "search":
		field, value = "query", action.Query
	case "get_page":
		field, value = "url", action.URL
	case "summarize":
		field, value = "text", action.Text
	default:
		return &errors.UnknownActionError{Action: action.Action}
	}

	if !valgo.Is(valgo.String(value, field).Not().Blank()).Valid() {
		return &errors.ValidationError{Field: field, Action: action.Action}
	}

	return nil
}

/*
handleBrowserTool routes a tagged action to the matching operation on a
request-scoped Tool.
*/
func (srv *Server) handleBrowserTool(ctx fiber.Ctx) error {
	var action ToolAction
	if err := ctx.Bind().Body(&action); err != nil {
		return srv.badBody(ctx, err)
	}

	if err := validateAction(action); err != nil {
		return srv.fail(ctx, err)
	}

	tool := browser.New(srv.cfg)
	defer tool.Close()

	switch action.Action {
	case "search":
		maxResults := action.MaxResults
		if maxResults <= 0 {
			maxResults = defaultMaxResults
		}

		results := tool.WebSearch(ctx.Context(), action.Query, maxResults)
		if results == nil {
			results = []browser.Result{}
		}

		return ctx.JSON(fiber.Map{"action": "search", "results": results})

	case "get_page":
		content, err := tool.ExtractContent(ctx.Context(), action.URL, action.WaitForElement)
		if err != nil {
			return srv.fail(ctx, err)
		}

		return ctx.JSON(fiber.Map{"action": "get_page", "url": action.URL, "content": content})

	case "summarize":
		summary, err := tool.Summarize(ctx.Context(), action.Text, action.MaxTokens)
		if err != nil {
			return srv.fail(ctx, err)
		}

		return ctx.JSON(fiber.Map{"action": "summarize", "summary": summary})

	default: // unreachable, validateAction rejects unknown tags
		return srv.fail(ctx, &errors.UnknownActionError{Action: action.Action})
	}
}
