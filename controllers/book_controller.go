package controllers

import (
	"encoding/json"
	"net/http"

	"Gin_postgres_library_management/app"
	"Gin_postgres_library_management/db"
	"Gin_postgres_library_management/frappe"
	"Gin_postgres_library_management/models"

	"github.com/gin-gonic/gin"
)

type BookController struct{ *Srv }

func NewBookController(s *Srv) *BookController { return &BookController{Srv: s} }

// GET /api/books?q=
func (bc *BookController) ListBooks(c *gin.Context) {
	books, err := bc.Repo.ListBooks(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// GET /api/books/:id
func (bc *BookController) GetBook(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	book, err := bc.Repo.FindBookByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// POST /api/books
func (bc *BookController) CreateBook(c *gin.Context) {
	var in struct {
		Title     string `json:"title" binding:"required"`
		Author    string `json:"author" binding:"required"`
		ISBN      string `json:"isbn" binding:"required"`
		Publisher string `json:"publisher"`
		Stock     int    `json:"stock"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !models.ValidISBN(in.ISBN) {
		c.JSON(http.StatusBadRequest, app.H{"error": "isbn must be 13 digits"})
		return
	}
	if in.Stock < 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "stock cannot be negative"})
		return
	}
	if !checkLen(c, "title", in.Title, maxTitleLen) ||
		!checkLen(c, "author", in.Author, maxAuthorLen) ||
		!checkLen(c, "publisher", in.Publisher, maxPublisherLen) {
		return
	}

	book := &models.Book{
		Title:     in.Title,
		Author:    in.Author,
		ISBN:      in.ISBN,
		Publisher: in.Publisher,
		Stock:     in.Stock,
	}
	if err := bc.Repo.CreateBook(c.Request.Context(), book); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Book created successfully", "book": book})
}

// PUT /api/books/:id
func (bc *BookController) UpdateBook(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var upd db.BookUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if upd.ISBN != nil && !models.ValidISBN(*upd.ISBN) {
		c.JSON(http.StatusBadRequest, app.H{"error": "isbn must be 13 digits"})
		return
	}
	if upd.Stock != nil && *upd.Stock < 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "stock cannot be negative"})
		return
	}
	if upd.Title != nil && !checkLen(c, "title", *upd.Title, maxTitleLen) {
		return
	}
	if upd.Author != nil && !checkLen(c, "author", *upd.Author, maxAuthorLen) {
		return
	}
	if upd.Publisher != nil && !checkLen(c, "publisher", *upd.Publisher, maxPublisherLen) {
		return
	}

	book, err := bc.Repo.UpdateBook(c.Request.Context(), id, upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Book updated successfully", "book": book})
}

// DELETE /api/books/:id: blocked while any copy is out on loan.
func (bc *BookController) DeleteBook(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := bc.Engine.DeleteBook(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Book deleted successfully"})
}

// POST /api/books/import: batch import of records supplied in the body;
// accepts either a single record or a list.
func (bc *BookController) ImportBooks(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	var recs []frappe.BookRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		var one frappe.BookRecord
		if err := json.Unmarshal(raw, &one); err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "expected a book record or a list of them"})
			return
		}
		recs = []frappe.BookRecord{one}
	}

	res, err := bc.Importer.ImportRecords(c.Request.Context(), recs)
	if err != nil {
		writeError(c, err)
		return
	}
	writeImportResult(c, res)
}

func writeImportResult(c *gin.Context, res frappe.Result) {
	status := http.StatusOK
	if res.Imported > 0 {
		status = http.StatusCreated
	}
	c.JSON(status, app.H{
		"message":  res.Message(),
		"imported": res.Imported,
		"skipped":  res.Skipped,
		"errors":   res.Errors,
	})
}
