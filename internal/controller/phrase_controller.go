package controller

import (
	"translator-ai-be/internal/dto"
	"translator-ai-be/internal/pkg/serverutils"
	"translator-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPhraseController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
}

type phraseController struct {
	publisherService service.IPublisherService
}

func NewPhraseController(publisherService service.IPublisherService) IPhraseController {
	return &phraseController{
		publisherService: publisherService,
	}
}

func (c *phraseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/phrase/v1")
	h.Post("", c.Ingest)
}

func (c *phraseController) Ingest(ctx *fiber.Ctx) error {
	var req dto.IngestPhrasesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Add input to the request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.publisherService.PublishEmbedPhrases(ctx.Context(), req.Phrases); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse(
		"Phrases accepted for ingestion",
		dto.IngestPhrasesResponse{Accepted: len(req.Phrases)},
	))
}
