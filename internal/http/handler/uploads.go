package handler

import (
	"mime"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"founderhub/internal/importer"
	"founderhub/internal/service"
)

// UploadImage godoc
// @Summary  Upload a founder picture or startup logo
// @Tags     images
// @Accept   multipart/form-data
// @Param    file formData file true "jpeg, png, gif or webp"
// @Success  201 {object} model.Image
// @Failure  413 {object} errorPayload
// @Failure  415 {object} errorPayload
// @Security BearerAuth
// @Router   /api/v1/images [post]
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" || ct == "application/octet-stream" {
			if byExt := mime.TypeByExtension(filepath.Ext(fh.Filename)); byExt != "" {
				ct = byExt
			}
		}

		img, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(img)
	}
}

// ImportCSV godoc
// @Summary  Bulk import founders or startups from CSV
// @Tags     admin
// @Accept   multipart/form-data
// @Param    kind path string true "founders or startups"
// @Param    dry_run query bool false "report without writing"
// @Param    file formData file true "CSV with a header row"
// @Success  200 {object} importer.Summary
// @Security BearerAuth
// @Router   /api/v1/admin/import/{kind} [post]
func ImportCSV(svc service.ImportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind, err := importer.ParseKind(c.Params("kind"))
		if err != nil {
			return respondError(c, err)
		}
		dryRun, err := boolParam(c, "dry_run")
		if err != nil {
			return respondError(c, err)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		sum, err := svc.Import(c.UserContext(), kind, f, dryRun)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(sum)
	}
}

// AdminDashboard returns aggregate counts and the next upcoming events.
func AdminDashboard(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Summary(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(d)
	}
}
