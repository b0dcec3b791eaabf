package controller

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"ai-hrchat-be/internal/pkg/serverutils"
	"ai-hrchat-be/internal/service"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	ExtractText(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type fileController struct {
	fileService service.IFileService
}

func NewFileController(fileService service.IFileService) IFileController {
	return &fileController{
		fileService: fileService,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	r.Post("/extract-text/:sessionId", serverutils.SessionIDMiddleware, c.ExtractText)
	// Alias kept for older clients; same ingestion path.
	r.Post("/upload-files/:sessionId", serverutils.SessionIDMiddleware, c.ExtractText)
	r.Get("/files/:sessionId", serverutils.SessionIDMiddleware, c.List)
	r.Get("/download-file/:sessionId", serverutils.SessionIDMiddleware, c.Download)
}

func (c *fileController) ExtractText(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid multipart form"))
	}

	files := form.File["files"]
	if len(files) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "No files provided"))
	}

	res, err := c.fileService.ExtractText(ctx.Context(), ctx.Params("sessionId"), files)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *fileController) List(ctx *fiber.Ctx) error {
	res, err := c.fileService.ListFiles(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *fileController) Download(ctx *fiber.Ctx) error {
	filename := ctx.Query("filename")
	if filename == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing filename"))
	}

	path := c.fileService.FilePath(ctx.Params("sessionId"), filename)
	if _, err := os.Stat(path); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "File not found"))
	}

	return ctx.Download(path)
}
