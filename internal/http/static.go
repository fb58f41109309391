package http

import (
	"io/fs"

	"github.com/labstack/echo/v4"
)

const assetsPrefix = "/assets/"

func registerAssets(e *echo.Echo, assets fs.FS) {
	if assets == nil {
		return
	}
	if _, err := fs.Stat(assets, "."); err != nil {
		e.Logger.Warnf("static assets unavailable: %v", err)
		return
	}
	e.StaticFS(assetsPrefix, assets)
}
