package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Devendra616/collectEmpData-sub000/internal/service"
	"github.com/Devendra616/collectEmpData-sub000/pkg/response"
)

const (
	contentTypeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeIcs  = "text/calendar"
)

// ExportHandler serves the admin download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportEmployees downloads the submission roster as .xlsx.
// GET /api/v1/admin/export/employees
func (h *ExportHandler) ExportEmployees(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportEmployees(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoEmployees) {
			response.NotFound(c, 16101, "no employees to export")
			return
		}
		response.InternalError(c)
		return
	}

	writeDownload(c, contentTypeXlsx, filename, buf.Bytes())
}

// ExportBirthdays downloads the birthday calendar as .ics.
// GET /api/v1/admin/export/birthdays
func (h *ExportHandler) ExportBirthdays(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportBirthdays(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoBirthdays) {
			response.NotFound(c, 16102, "no personal details saved yet")
			return
		}
		response.InternalError(c)
		return
	}

	writeDownload(c, contentTypeIcs, filename, buf.Bytes())
}

func writeDownload(c *gin.Context, contentType, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}
