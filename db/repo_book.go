package db

import (
	"context"
	"strings"

	"Gin_postgres_library_management/models"
)

func (r *Repo) CreateBook(ctx context.Context, b *models.Book) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *Repo) FindBookByID(ctx context.Context, id uint) (*models.Book, error) {
	var b models.Book
	if err := r.DB.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBooks returns all books, optionally filtered by a keyword matched
// against title and author.
func (r *Repo) ListBooks(ctx context.Context, q string) ([]models.Book, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Book{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", like, like)
	}
	var books []models.Book
	err := tx.Order("id").Find(&books).Error
	return books, err
}

// BookUpdate carries the PUT payload; nil fields are left untouched.
type BookUpdate struct {
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	ISBN      *string `json:"isbn"`
	Publisher *string `json:"publisher"`
	Stock     *int    `json:"stock"`
}

func (r *Repo) UpdateBook(ctx context.Context, id uint, upd BookUpdate) (*models.Book, error) {
	var b models.Book
	if err := r.DB.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Author != nil {
		b.Author = *upd.Author
	}
	if upd.ISBN != nil {
		b.ISBN = *upd.ISBN
	}
	if upd.Publisher != nil {
		b.Publisher = *upd.Publisher
	}
	if upd.Stock != nil {
		b.Stock = *upd.Stock
	}
	if err := r.DB.WithContext(ctx).Save(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// ISBNExists reports whether any book already carries this ISBN.
func (r *Repo) ISBNExists(ctx context.Context, isbn string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Book{}).
		Where("isbn = ?", isbn).
		Count(&n).Error
	return n > 0, err
}

// CreateBooks inserts the whole batch in one transaction; either every
// book lands or none do.
func (r *Repo) CreateBooks(ctx context.Context, books []*models.Book) error {
	if len(books) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(books).Error
}
