package engine

import (
	"context"
	"errors"
	"time"

	"Gin_postgres_library_management/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Engine decides the legality of every loan state transition and applies
// it atomically. Each mutating operation runs as one store transaction
// with FOR UPDATE locks on the rows it reads, so the read-check-write
// sequence cannot race: two concurrent issues against a last copy see the
// lock, not each other's half-applied state. The engine itself holds no
// locks and is safe to call from any number of goroutines.
type Engine struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Engine { return &Engine{db: db} }

func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return E(KindNotFound, what+" not found")
	}
	return Storage(err)
}

// IssueBook lends one copy of the book to the member: stock goes down by
// one and an open transaction is created, all-or-nothing.
func (e *Engine) IssueBook(ctx context.Context, bookID, memberID uint) (*models.Transaction, error) {
	var txn *models.Transaction
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, bookID).Error; err != nil {
			return notFoundOr(err, "book")
		}
		var member models.Member
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&member, memberID).Error; err != nil {
			return notFoundOr(err, "member")
		}

		if err := checkIssue(&book, &member); err != nil {
			return err
		}

		if err := tx.Model(&models.Book{}).
			Where("id = ? AND stock > 0", book.ID).
			Update("stock", gorm.Expr("stock - 1")).Error; err != nil {
			return Storage(err)
		}

		t := &models.Transaction{
			BookID:    book.ID,
			MemberID:  member.ID,
			IssueDate: time.Now().UTC(),
		}
		if err := tx.Create(t).Error; err != nil {
			return Storage(err)
		}
		txn = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ReturnResult is what a successful return reports back.
type ReturnResult struct {
	RentFee   float64 `json:"rent_fee"`
	TotalDebt float64 `json:"total_debt"`
}

// ReturnBook closes an open loan: stamps the return date, charges
// Rs. RentPerDay per elapsed whole day, restores the book's stock and
// adds the fee to the member's debt. A second return of the same
// transaction is rejected, not ignored, so fees can never double-apply.
func (e *Engine) ReturnBook(ctx context.Context, transactionID uint) (ReturnResult, error) {
	var res ReturnResult
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txn models.Transaction
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&txn, transactionID).Error; err != nil {
			return notFoundOr(err, "transaction")
		}
		if txn.ReturnDate != nil {
			return E(KindAlreadyReturned, "book already returned")
		}

		// Same lock order as IssueBook, book before member, so a
		// contending issue/return pair waits instead of deadlocking.
		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, txn.BookID).Error; err != nil {
			return notFoundOr(err, "book")
		}
		var member models.Member
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&member, txn.MemberID).Error; err != nil {
			return notFoundOr(err, "member")
		}

		now := time.Now().UTC()
		fee := rentFee(txn.IssueDate, now)

		if err := tx.Model(&models.Transaction{}).
			Where("id = ?", txn.ID).
			Updates(map[string]interface{}{
				"return_date": now,
				"rent_fee":    fee,
			}).Error; err != nil {
			return Storage(err)
		}
		if err := tx.Model(&models.Book{}).
			Where("id = ?", txn.BookID).
			Update("stock", gorm.Expr("stock + 1")).Error; err != nil {
			return Storage(err)
		}
		if err := tx.Model(&models.Member{}).
			Where("id = ?", member.ID).
			Update("outstanding_debt", gorm.Expr("outstanding_debt + ?", fee)).Error; err != nil {
			return Storage(err)
		}

		res = ReturnResult{RentFee: fee, TotalDebt: member.OutstandingDebt + fee}
		return nil
	})
	if err != nil {
		return ReturnResult{}, err
	}
	return res, nil
}

func (e *Engine) openLoanCount(tx *gorm.DB, column string, id uint) (int64, error) {
	var n int64
	err := tx.Model(&models.Transaction{}).
		Where(column+" = ? AND return_date IS NULL", id).
		Count(&n).Error
	return n, err
}

// CanDeleteBook reports whether no open loan references the book.
// Returned (historical) transactions do not block deletion.
func (e *Engine) CanDeleteBook(ctx context.Context, bookID uint) (bool, error) {
	tx := e.db.WithContext(ctx)
	var book models.Book
	if err := tx.First(&book, bookID).Error; err != nil {
		return false, notFoundOr(err, "book")
	}
	n, err := e.openLoanCount(tx, "book_id", bookID)
	if err != nil {
		return false, Storage(err)
	}
	return n == 0, nil
}

// CanDeleteMember reports whether the member owes nothing and has no
// open loan.
func (e *Engine) CanDeleteMember(ctx context.Context, memberID uint) (bool, error) {
	tx := e.db.WithContext(ctx)
	var member models.Member
	if err := tx.First(&member, memberID).Error; err != nil {
		return false, notFoundOr(err, "member")
	}
	if member.OutstandingDebt > 0 {
		return false, nil
	}
	n, err := e.openLoanCount(tx, "member_id", memberID)
	if err != nil {
		return false, Storage(err)
	}
	return n == 0, nil
}

// DeleteBook removes the book unless a copy is still out on loan.
func (e *Engine) DeleteBook(ctx context.Context, bookID uint) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, bookID).Error; err != nil {
			return notFoundOr(err, "book")
		}
		n, err := e.openLoanCount(tx, "book_id", bookID)
		if err != nil {
			return Storage(err)
		}
		if n > 0 {
			return E(KindHasActiveLoan, "cannot delete book that is currently borrowed")
		}
		// Returned history would trip the RESTRICT constraint; remove it
		// explicitly before the book itself.
		if err := tx.Where("book_id = ?", bookID).
			Delete(&models.Transaction{}).Error; err != nil {
			return Storage(err)
		}
		if err := tx.Delete(&models.Book{}, bookID).Error; err != nil {
			return Storage(err)
		}
		return nil
	})
}

// DeleteMember removes the member unless they owe money or still hold a
// book.
func (e *Engine) DeleteMember(ctx context.Context, memberID uint) error {
	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&member, memberID).Error; err != nil {
			return notFoundOr(err, "member")
		}
		if member.OutstandingDebt > 0 {
			return E(KindHasOutstandingDebt, "cannot delete member with outstanding debt")
		}
		n, err := e.openLoanCount(tx, "member_id", memberID)
		if err != nil {
			return Storage(err)
		}
		if n > 0 {
			return E(KindHasActiveLoan, "cannot delete member with active book loans")
		}
		if err := tx.Where("member_id = ?", memberID).
			Delete(&models.Transaction{}).Error; err != nil {
			return Storage(err)
		}
		if err := tx.Delete(&models.Member{}, memberID).Error; err != nil {
			return Storage(err)
		}
		return nil
	})
}

// ActiveTransaction is the read-side join for the open-loans listing.
type ActiveTransaction struct {
	ID        uint      `json:"id"`
	Book      BookRef   `json:"book"`
	Member    MemberRef `json:"member"`
	IssueDate time.Time `json:"issue_date"`
}

type BookRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type MemberRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListActiveTransactions returns every open loan enriched with its book
// and member, in insertion order.
func (e *Engine) ListActiveTransactions(ctx context.Context) ([]ActiveTransaction, error) {
	var txns []models.Transaction
	if err := e.db.WithContext(ctx).
		Preload("Book").Preload("Member").
		Where("return_date IS NULL").
		Order("id").
		Find(&txns).Error; err != nil {
		return nil, Storage(err)
	}
	out := make([]ActiveTransaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, ActiveTransaction{
			ID:        t.ID,
			Book:      BookRef{ID: t.Book.ID, Title: t.Book.Title},
			Member:    MemberRef{ID: t.Member.ID, Name: t.Member.Name},
			IssueDate: t.IssueDate,
		})
	}
	return out, nil
}

// ListTransactions returns loan history, optionally filtered by book,
// member and status ("active" or "returned").
func (e *Engine) ListTransactions(ctx context.Context, bookID, memberID uint, status string) ([]models.Transaction, error) {
	q := e.db.WithContext(ctx).Model(&models.Transaction{}).Order("id")
	if bookID != 0 {
		q = q.Where("book_id = ?", bookID)
	}
	if memberID != 0 {
		q = q.Where("member_id = ?", memberID)
	}
	switch status {
	case "active":
		q = q.Where("return_date IS NULL")
	case "returned":
		q = q.Where("return_date IS NOT NULL")
	}
	var txns []models.Transaction
	if err := q.Find(&txns).Error; err != nil {
		return nil, Storage(err)
	}
	return txns, nil
}
