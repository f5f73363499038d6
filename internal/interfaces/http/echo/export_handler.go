package echo

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/rosterhub/excelsync/internal/application/roster"
	domain "github.com/rosterhub/excelsync/internal/domain/roster"
)

const (
	exportFileName = "myData.xlsx"

	mimeSpreadsheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeExcelLegacy = "application/vnd.ms-excel"
)

type workbookWriter interface {
	Write(wb domain.Workbook, w io.Writer) error
}

type ExportHandler struct {
	useCase app.ExportWorkbook
	codec   workbookWriter
}

func NewExportHandler(useCase app.ExportWorkbook, codec workbookWriter) *ExportHandler {
	return &ExportHandler{useCase: useCase, codec: codec}
}

// ExportUsers streams the full roster workbook. Any orchestration or
// codec failure aborts the request before a single byte of the file is
// written, so the client never receives a partial workbook.
func (h *ExportHandler) ExportUsers(c echo.Context) error {
	out, err := h.useCase.Execute(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "export_failed",
			Message: fmt.Sprintf("error exporting data to excel: %v", err),
		}})
	}

	var buf bytes.Buffer
	if err := h.codec.Write(out.Workbook, &buf); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "export_failed",
			Message: fmt.Sprintf("error exporting data to excel: %v", err),
		}})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportFileName))
	return c.Blob(http.StatusOK, mimeSpreadsheet, buf.Bytes())
}
