package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, exportHandler *ExportHandler, importHandler *ImportHandler) {
	server.GET("/api/export", exportHandler.ExportUsers)
	server.POST("/api/import", importHandler.ImportUsers)
}
