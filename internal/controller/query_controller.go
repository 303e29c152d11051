package controller

import (
	"strconv"

	"translator-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	Recent(ctx *fiber.Ctx) error
}

type queryController struct {
	queryService service.IQueryService
}

func NewQueryController(queryService service.IQueryService) IQueryController {
	return &queryController{
		queryService: queryService,
	}
}

func (c *queryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/query/v1")
	h.Post("", c.Ask)
	h.Get("recent", c.Recent)
}

func (c *queryController) Ask(ctx *fiber.Ctx) error {
	// The pipeline validator parses the raw body itself so it can
	// distinguish a missing body from a missing or mistyped field.
	res, err := c.queryService.Query(ctx.Context(), ctx.Body())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *queryController) Recent(ctx *fiber.Ctx) error {
	limit, err := strconv.Atoi(ctx.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return ctx.JSON(c.queryService.Recent(limit))
}
