package routes

import (
	"Gin_postgres_library_management/app"
	"Gin_postgres_library_management/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	bookCtl := controllers.NewBookController(s)
	memberCtl := controllers.NewMemberController(s)
	txnCtl := controllers.NewTransactionController(s)
	frappeCtl := controllers.NewFrappeController(s)

	// ------------------------------
	// Books
	// ------------------------------
	books := r.Group("/api/books")
	{
		books.GET("", bookCtl.ListBooks) // ?q=
		books.POST("", bookCtl.CreateBook)
		books.GET("/:id", bookCtl.GetBook)
		books.PUT("/:id", bookCtl.UpdateBook)
		books.DELETE("/:id", bookCtl.DeleteBook)
		books.POST("/import", bookCtl.ImportBooks)
	}

	// ------------------------------
	// Members
	// ------------------------------
	members := r.Group("/api/members")
	{
		members.GET("", memberCtl.ListMembers) // ?q=
		members.POST("", memberCtl.CreateMember)
		members.GET("/:id", memberCtl.GetMember)
		members.PUT("/:id", memberCtl.UpdateMember)
		members.DELETE("/:id", memberCtl.DeleteMember)
	}

	// ------------------------------
	// Transactions (issue / return / listings)
	// ------------------------------
	txns := r.Group("/api/transactions")
	{
		txns.GET("", txnCtl.ListTransactions) // ?book_id=&member_id=&status=
		txns.POST("/issue", txnCtl.Issue)
		txns.PUT("/return/:id", txnCtl.Return)
		txns.GET("/active", txnCtl.ListActive)
	}

	// ------------------------------
	// External catalog import
	// ------------------------------
	fr := r.Group("/api/frappe")
	{
		fr.POST("/import", frappeCtl.Import)
	}
}
