package engine

import (
	"fmt"
	"time"

	"Gin_postgres_library_management/models"
)

const (
	// DebtLimit is the ceiling in Rs.; issuing fails once a member owes
	// this much or more.
	DebtLimit = 500.0
	// RentPerDay is the Rs. charge per elapsed whole day of a loan.
	RentPerDay = 10.0
)

func checkIssue(book *models.Book, member *models.Member) error {
	if book.Stock <= 0 {
		return E(KindStockUnavailable, "book not available")
	}
	if member.OutstandingDebt >= DebtLimit {
		return E(KindDebtLimitExceeded, fmt.Sprintf("member has outstanding debt over Rs. %.0f", DebtLimit))
	}
	return nil
}

// elapsedDays counts whole days between issue and return, truncating:
// a return 23 hours after issue is 0 days.
func elapsedDays(issued, returned time.Time) int {
	return int(returned.Sub(issued) / (24 * time.Hour))
}

func rentFee(issued, returned time.Time) float64 {
	fee := float64(elapsedDays(issued, returned)) * RentPerDay
	if fee < 0 {
		return 0
	}
	return fee
}
