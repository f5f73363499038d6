package echo

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/rosterhub/excelsync/internal/application/roster"
)

type scratchStore interface {
	Save(ctx context.Context, r io.Reader, originalName string) (string, error)
	Remove(path string) error
}

type ImportHandler struct {
	useCase app.ImportWorkbook
	scratch scratchStore
}

type importUsersResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
}

func NewImportHandler(useCase app.ImportWorkbook, scratch scratchStore) *ImportHandler {
	return &ImportHandler{useCase: useCase, scratch: scratch}
}

// ImportUsers accepts a multipart upload in the "file" field, parks it
// in the scratch store, runs the import and removes the scratch file
// whether or not the import succeeded.
func (h *ImportHandler) ImportUsers(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil || header.Size == 0 {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "no_file",
			Message: "no file uploaded",
		}})
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType != mimeSpreadsheet && contentType != mimeExcelLegacy {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_format",
			Message: "invalid file format, only excel files are allowed",
		}})
	}

	src, err := header.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "import_failed",
			Message: fmt.Sprintf("error importing data from excel: %v", err),
		}})
	}
	defer src.Close()

	ctx := c.Request().Context()
	path, err := h.scratch.Save(ctx, src, header.Filename)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "import_failed",
			Message: fmt.Sprintf("error importing data from excel: %v", err),
		}})
	}
	defer h.scratch.Remove(path)

	out, err := h.useCase.Execute(ctx, app.ImportWorkbookInput{Path: path})
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "import_failed",
			Message: fmt.Sprintf("error importing data from excel: %v", err),
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: importUsersResponse{
		Message:  "data imported from excel successfully",
		Imported: out.ImportedCount,
		Updated:  out.UpdatedCount,
		Skipped:  out.SkippedCount,
	}})
}
