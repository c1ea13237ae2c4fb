package handlers

import (
	"errors"
	"io"
	"log"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/NishantRathee12/resume-reviewer/internal/models"
	"github.com/NishantRathee12/resume-reviewer/internal/services"
)

type AnalyzeHandler struct {
	extractor services.TextExtractor
	analyzer  services.Analyzer
	validate  *validator.Validate
}

func NewAnalyzeHandler(extractor services.TextExtractor, analyzer services.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{
		extractor: extractor,
		analyzer:  analyzer,
		validate:  validator.New(),
	}
}

// HandleAnalyze handles POST /analyze: a multipart form with a "resume" file
// part (.pdf or .docx) and a "jobDescription" text field.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	req := models.AnalyzeRequest{
		JobDescription: c.FormValue("jobDescription"),
	}
	if err := h.validate.Struct(req); err != nil {
		return errorResponse(c, models.NewValidationError("jobDescription is required"))
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return errorResponse(c, models.NewValidationError("resume file is required"))
	}

	ext := filepath.Ext(fileHeader.Filename)
	if !h.extractor.Supports(ext) {
		return errorResponse(c, models.NewValidationError(
			"unsupported file extension: %s (expected .pdf or .docx)", ext))
	}

	log.Printf("📄 Received resume %q (%d bytes) for analysis\n", fileHeader.Filename, fileHeader.Size)

	file, err := fileHeader.Open()
	if err != nil {
		return errorResponse(c, models.NewValidationError("failed to open uploaded file"))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errorResponse(c, models.NewValidationError("failed to read uploaded file"))
	}
	if len(data) == 0 {
		return errorResponse(c, models.NewValidationError("uploaded file is empty"))
	}

	resumeText, err := h.extractor.ExtractText(data, ext)
	if err != nil {
		return errorResponse(c, err)
	}

	result, err := h.analyzer.Analyze(c.Context(), resumeText, req.JobDescription)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(result)
}

// errorResponse maps the error taxonomy onto HTTP statuses with the
// {"detail": ...} body shape the frontend expects. Validation and extraction
// failures carry their message to the client; anything else is logged and
// returned as a generic server error.
func errorResponse(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	var extractionErr *models.ExtractionError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": validationErr.Error(),
		})
	case errors.As(err, &extractionErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": extractionErr.Error(),
		})
	default:
		log.Printf("❌ Analysis failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "error analyzing resume",
		})
	}
}
