package models

import "time"

const BookTable = "lib_books"

type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Author    string    `gorm:"size:500;not null" json:"author"`
	ISBN      string    `gorm:"size:13;uniqueIndex;not null" json:"isbn"`
	Publisher string    `gorm:"size:200" json:"publisher,omitempty"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Book) TableName() string { return BookTable }
