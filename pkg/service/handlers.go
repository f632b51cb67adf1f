package service

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/theapemachine/webtool/pkg/browser"
	"github.com/theapemachine/webtool/pkg/errors"
)

type webSearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

func (srv *Server) handleWebSearch(ctx fiber.Ctx) error {
	var req webSearchRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return srv.badBody(ctx, err)
	}

	if req.Query == "" {
		return srv.fail(ctx, &errors.ValidationError{Field: "query"})
	}

	if req.MaxResults <= 0 {
		req.MaxResults = defaultMaxResults
	}

	tool := browser.New(srv.cfg)
	defer tool.Close()

	results := tool.WebSearch(ctx.Context(), req.Query, req.MaxResults)
	if results == nil {
		results = []browser.Result{}
	}

	return ctx.JSON(fiber.Map{"results": results})
}

type navigateRequest struct {
	URL            string `json:"url"`
	WaitForElement string `json:"wait_for_element"`
	WaitTime       int    `json:"wait_time"`
}

func (srv *Server) handleNavigate(ctx fiber.Ctx) error {
	var req navigateRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return srv.badBody(ctx, err)
	}

	if req.URL == "" {
		return srv.fail(ctx, &errors.ValidationError{Field: "url"})
	}

	if req.WaitTime <= 0 {
		req.WaitTime = 10
	}

	tool := browser.New(srv.cfg)
	defer tool.Close()

	waitTime := time.Duration(req.WaitTime) * time.Second
	if err := tool.Navigate(ctx.Context(), req.URL, req.WaitForElement, waitTime); err != nil {
		return srv.fail(ctx, err)
	}

	return ctx.JSON(fiber.Map{"status": "success", "message": "Navigation completed"})
}

type extractContentRequest struct {
	URL            string `json:"url"`
	WaitForElement string `json:"wait_for_element"`
}

func (srv *Server) handleExtractContent(ctx fiber.Ctx) error {
	var req extractContentRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return srv.badBody(ctx, err)
	}

	tool := browser.New(srv.cfg)
	defer tool.Close()

	content, err := tool.ExtractContent(ctx.Context(), req.URL, req.WaitForElement)
	if err != nil {
		return srv.fail(ctx, err)
	}

	return ctx.JSON(fiber.Map{"content": content})
}

type summarizeRequest struct {
	Text      string `json:"text"`
	MaxTokens int    `json:"max_tokens"`
}

func (srv *Server) handleSummarize(ctx fiber.Ctx) error {
	var req summarizeRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return srv.badBody(ctx, err)
	}

	if req.Text == "" {
		return srv.fail(ctx, &errors.ValidationError{Field: "text"})
	}

	tool := browser.New(srv.cfg)
	defer tool.Close()

	summary, err := tool.Summarize(ctx.Context(), req.Text, req.MaxTokens)
	if err != nil {
		return srv.fail(ctx, err)
	}

	return ctx.JSON(fiber.Map{"summary": summary})
}

type crawlRequest struct {
	URL      string `json:"url"`
	MaxDepth int    `json:"max_depth"`
}

/*
handleCrawl acknowledges the request without crawling anything. The
recursive crawl operation is an explicit not-yet-implemented stub.
*/
func (srv *Server) handleCrawl(ctx fiber.Ctx) error {
	var req crawlRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return srv.badBody(ctx, err)
	}

	if req.URL == "" {
		return srv.fail(ctx, &errors.ValidationError{Field: "url"})
	}

	return ctx.JSON(fiber.Map{"status": "crawling started"})
}

func (srv *Server) badBody(ctx fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request body: " + err.Error(),
	})
}
