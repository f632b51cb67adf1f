package service

import (
	"github.com/gofiber/fiber/v3"
	"github.com/mark3labs/mcp-go/mcp"
)

/*
Function describes one callable operation for tool-calling integration:
name, human description and a JSON-schema parameter object.
*/
type Function struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Parameters  mcp.ToolInputSchema `json:"parameters"`
}

/*
functionList enumerates the five operations this service exposes. The
schemas are built from real tool definitions rather than a hand-maintained
JSON blob, so the listing cannot drift from what the handlers accept.
*/
func functionList() []Function {
	defs := []mcp.Tool{
		mcp.NewTool("web_search",
			mcp.WithDescription("Search the web and return ranked results with title, url and snippet."),
			mcp.WithString("query",
				mcp.Description("Search query"),
				mcp.Required(),
			),
			mcp.WithNumber("max_results",
				mcp.Description("Maximum number of results to return (default 10)"),
			),
		),
		mcp.NewTool("navigate",
			mcp.WithDescription("Load a URL in the headless browser, optionally waiting for an element to appear."),
			mcp.WithString("url",
				mcp.Description("Absolute URL to load"),
				mcp.Required(),
			),
			mcp.WithString("wait_for_element",
				mcp.Description("CSS selector to wait for after the page loads"),
			),
			mcp.WithNumber("wait_time",
				mcp.Description("Seconds to wait for the selector (default 10)"),
			),
		),
		mcp.NewTool("extract_content",
			mcp.WithDescription("Extract the visible text of a page, stripped of scripts and styling."),
			mcp.WithString("url",
				mcp.Description("URL to extract from; omit to read the current page"),
			),
			mcp.WithString("wait_for_element",
				mcp.Description("CSS selector to wait for before extracting"),
			),
		),
		mcp.NewTool("summarize",
			mcp.WithDescription("Summarize text with the locally served generation model."),
			mcp.WithString("text",
				mcp.Description("Text to summarize"),
				mcp.Required(),
			),
			mcp.WithNumber("max_tokens",
				mcp.Description("Output token cap (default 200)"),
			),
		),
		mcp.NewTool("crawl",
			mcp.WithDescription("Crawl a website with depth control. Not yet implemented; the service only acknowledges the request."),
			mcp.WithString("url",
				mcp.Description("Root URL to crawl"),
				mcp.Required(),
			),
			mcp.WithNumber("max_depth",
				mcp.Description("Maximum crawl depth (default 2)"),
			),
		),
	}

	functions := make([]Function, 0, len(defs))
	for _, def := range defs {
		functions = append(functions, Function{
			Name:        def.Name,
			Description: def.Description,
			Parameters:  def.InputSchema,
		})
	}

	return functions
}

func (srv *Server) handleFunctions(ctx fiber.Ctx) error {
	return ctx.JSON(functionList())
}
