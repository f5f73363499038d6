package bootstrap

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	app "github.com/rosterhub/excelsync/internal/application/roster"
	"github.com/rosterhub/excelsync/internal/infrastructure/file"
	"github.com/rosterhub/excelsync/internal/infrastructure/repository"
	"github.com/rosterhub/excelsync/internal/infrastructure/spreadsheet"
	httpecho "github.com/rosterhub/excelsync/internal/interfaces/http/echo"
	"gorm.io/gorm"
)

type Config struct {
	ScratchDir   string
	BodyLimit    string
	UpdatePolicy app.UpdatePolicy
}

func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, cfg Config) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.JSONSerializer = goJSONSerializer{}

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	if cfg.BodyLimit == "" {
		cfg.BodyLimit = "10M"
	}
	server.Use(middleware.BodyLimit(cfg.BodyLimit))

	userQueryRepo := repository.NewUserQueryRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	batchRepo := repository.NewUserBatchRepository(pool)
	codec := spreadsheet.NewCodec()
	scratch := file.NewScratchStore(cfg.ScratchDir)

	exportWorkbook := app.NewExportWorkbook(userQueryRepo, groupRepo, time.Now)
	importWorkbook := app.NewImportWorkbook(codec, batchRepo, cfg.UpdatePolicy, time.Now)

	exportHandler := httpecho.NewExportHandler(exportWorkbook, codec)
	importHandler := httpecho.NewImportHandler(importWorkbook, scratch)

	httpecho.RegisterRoutes(server, exportHandler, importHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
