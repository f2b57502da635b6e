package uploads

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/extract"
	"careerpath-backend/internal/shared/telemetry"
	"careerpath-backend/internal/shared/util"
)

const defaultMaxUploadBytes = 5 << 20

// Handler serves the resume upload flow: receive a file, extract structured
// fields, return them directly. Nothing is persisted server-side.
type Handler struct {
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches the upload route.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/upload_resume", h.upload)
}

// The error bodies here are part of the public contract consumed by the
// frontend; they are flat {"error": ...} objects, not the API envelope.
func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	reader, err := c.Request.MultipartReader()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
		return
	}

	var (
		found    bool
		fileName string
		data     []byte
	)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
			return
		}
		if part.FormName() != "resume" {
			continue
		}
		found = true
		fileName = util.SanitizeFileName(part.FileName())
		data, err = io.ReadAll(part)
		if err != nil {
			telemetry.Error("upload.read_failed", map[string]any{
				"err":        err.Error(),
				"file_name":  fileName,
				"request_id": c.GetString("requestId"),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
			return
		}
		break
	}

	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
		return
	}
	if strings.TrimSpace(fileName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
		return
	}

	parsed, err := extract.Parse(data, fileName)
	if err != nil {
		telemetry.Error("upload.extract_failed", map[string]any{
			"err":        err.Error(),
			"file_name":  fileName,
			"request_id": c.GetString("requestId"),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": extractionMessage(err, fileName)})
		return
	}

	c.JSON(http.StatusOK, parsed)
}

func extractionMessage(err error, fileName string) string {
	var parseErr *extract.ParseError
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return "unsupported resume format: " + fileName
	case errors.As(err, &parseErr):
		return "could not read " + fileName + ": the file appears to be corrupt"
	default:
		return err.Error()
	}
}
