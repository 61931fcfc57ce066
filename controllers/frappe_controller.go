package controllers

import (
	"net/http"

	"Gin_postgres_library_management/app"
	"Gin_postgres_library_management/frappe"

	"github.com/gin-gonic/gin"
)

type FrappeController struct{ *Srv }

func NewFrappeController(s *Srv) *FrappeController { return &FrappeController{Srv: s} }

// POST /api/frappe/import: fetch one page from the frappe-library
// catalog with the given filters and import the new books.
func (fc *FrappeController) Import(c *gin.Context) {
	var params frappe.SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	res, err := fc.Importer.ImportFromCatalog(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}
	fc.Log.WithField("imported", res.Imported).WithField("skipped", res.Skipped).
		Info("frappe import finished")
	writeImportResult(c, res)
}
