package models

import "time"

const MemberTable = "lib_members"

type Member struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Email           string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	OutstandingDebt float64   `gorm:"not null;default:0" json:"outstanding_debt"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Member) TableName() string { return MemberTable }
