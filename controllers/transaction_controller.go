package controllers

import (
	"net/http"

	"Gin_postgres_library_management/app"

	"github.com/gin-gonic/gin"
)

type TransactionController struct{ *Srv }

func NewTransactionController(s *Srv) *TransactionController {
	return &TransactionController{Srv: s}
}

// POST /api/transactions/issue
func (tc *TransactionController) Issue(c *gin.Context) {
	var in struct {
		BookID   uint `json:"book_id" binding:"required"`
		MemberID uint `json:"member_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	txn, err := tc.Engine.IssueBook(c.Request.Context(), in.BookID, in.MemberID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Book issued successfully", "transaction": txn})
}

// PUT /api/transactions/return/:id
func (tc *TransactionController) Return(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res, err := tc.Engine.ReturnBook(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{
		"message":    "Book returned successfully",
		"rent_fee":   res.RentFee,
		"total_debt": res.TotalDebt,
	})
}

// GET /api/transactions/active
func (tc *TransactionController) ListActive(c *gin.Context) {
	txns, err := tc.Engine.ListActiveTransactions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

// GET /api/transactions?book_id=&member_id=&status=active|returned
func (tc *TransactionController) ListTransactions(c *gin.Context) {
	txns, err := tc.Engine.ListTransactions(
		c.Request.Context(),
		queryID(c, "book_id"),
		queryID(c, "member_id"),
		c.Query("status"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}
