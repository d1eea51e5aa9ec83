package handler

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dromgooles/parser-files/internal/config"
	"github.com/Dromgooles/parser-files/internal/domain"
	"github.com/Dromgooles/parser-files/internal/export"
	"github.com/Dromgooles/parser-files/internal/parser"
	"github.com/Dromgooles/parser-files/internal/port"
)

// ParseHandler handles invoice extraction endpoints.
type ParseHandler struct {
	parser   *parser.Parser
	provider port.TokenProvider
	cfg      *config.Config
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(p *parser.Parser, provider port.TokenProvider, cfg *config.Config) *ParseHandler {
	return &ParseHandler{parser: p, provider: provider, cfg: cfg}
}

// Parse handles POST /api/v1/parse
//
// The invoice PDF goes in the multipart "file" field. Two query parameters
// tune the response: include_zero_quantity=true|false overrides the
// configured default, and format=json|csv|xlsx selects the output. JSON is
// the default and wraps the extraction result in the standard envelope; csv
// and xlsx stream a download with a Content-Disposition header.
func (h *ParseHandler) Parse(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > h.cfg.Server.MaxUploadMB*1024*1024 {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}

	doc, cleanup, err := h.openUpload(file)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer cleanup()

	opts := parser.Options{IncludeZeroQuantity: h.cfg.Parser.IncludeZeroQuantity}
	if v, ok := c.GetQuery("include_zero_quantity"); ok {
		opts.IncludeZeroQuantity = v == "true" || v == "1"
	}

	result := h.parser.Parse(doc, opts)
	base := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))

	switch c.DefaultQuery("format", "json") {
	case "json":
		RespondOK(c, export.NewResult(result.Vendor, result.Items))
	case "csv":
		h.writeCSV(c, base, result.Items)
	case "xlsx":
		h.writeXLSX(c, base, result.Items)
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be one of: json, csv, xlsx")
	}
}

// openUpload spools the multipart file to a temp path so the PDF reader can
// seek it, and returns the opened document with a cleanup func.
func (h *ParseHandler) openUpload(file io.Reader) (port.Document, func(), error) {
	tmp, err := os.CreateTemp("", "invoice-*.pdf")
	if err != nil {
		return nil, nil, err
	}
	path := tmp.Name()
	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		_ = os.Remove(path)
		return nil, nil, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(path)
		return nil, nil, err
	}

	doc, err := h.provider.Open(path)
	if err != nil {
		_ = os.Remove(path)
		return nil, nil, err
	}
	return doc, func() { _ = os.Remove(path) }, nil
}

func (h *ParseHandler) writeCSV(c *gin.Context, base string, items []domain.LineItem) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename(base, "csv")+`"`)
	c.Writer.WriteHeader(http.StatusOK)

	_, _ = c.Writer.Write(export.BOM)
	w := export.NewCSVWriter(c.Writer)
	_ = w.WriteHeader()
	_ = w.WriteItems(items)
	w.Flush()
}

func (h *ParseHandler) writeXLSX(c *gin.Context, base string, items []domain.LineItem) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename(base, "xlsx")+`"`)
	c.Writer.WriteHeader(http.StatusOK)

	if err := export.WriteXLSX(c.Writer, items); err != nil {
		// Headers are already out; all we can do is log.
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] xlsx write failed: %v", requestID, err)
	}
}
