package controllers

import (
	"net/http"
	"strconv"

	"Gin_postgres_library_management/app"
	"Gin_postgres_library_management/db"
	"Gin_postgres_library_management/engine"
	"Gin_postgres_library_management/frappe"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Srv bundles what every controller needs.
type Srv struct {
	Repo     *db.Repo
	Engine   *engine.Engine
	Importer *frappe.Importer
	Log      *logrus.Logger
}

func GetSrv(a *app.App) *Srv {
	var cache *frappe.Cache
	if a.RDB != nil {
		cache = frappe.NewCache(a.RDB, a.Config.FrappeCacheTTL)
	}
	client := frappe.NewClient(a.Config.FrappeAPIURL, cache)
	repo := db.NewRepo(a.DB)
	return &Srv{
		Repo:     repo,
		Engine:   engine.New(a.DB),
		Importer: frappe.NewImporter(client, repo),
		Log:      a.Log,
	}
}

// --- helpers ---

func parseID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}

func queryID(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
