package models

import "time"

const TransactionTable = "lib_transactions"

// Transaction is a single loan of one book copy to one member.
// ReturnDate is NULL while the loan is open; once set it never changes,
// and RentFee is computed exactly once at that moment.
type Transaction struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	BookID     uint       `gorm:"index;not null" json:"book_id"`
	MemberID   uint       `gorm:"index;not null" json:"member_id"`
	IssueDate  time.Time  `gorm:"index;not null" json:"issue_date"`
	ReturnDate *time.Time `gorm:"index" json:"return_date,omitempty"`
	RentFee    float64    `gorm:"not null;default:0" json:"rent_fee"`

	// Deletion of a referenced book/member must be blocked, never cascaded.
	Book   Book   `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT" json:"-"`
	Member Member `gorm:"foreignKey:MemberID;constraint:OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Transaction) TableName() string { return TransactionTable }
