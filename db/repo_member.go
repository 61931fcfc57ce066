package db

import (
	"context"
	"strings"

	"Gin_postgres_library_management/models"
)

func (r *Repo) CreateMember(ctx context.Context, m *models.Member) error {
	// Members always start debt-free regardless of what the caller set.
	m.OutstandingDebt = 0
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *Repo) FindMemberByID(ctx context.Context, id uint) (*models.Member, error) {
	var m models.Member
	if err := r.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) ListMembers(ctx context.Context, q string) ([]models.Member, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Member{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	var members []models.Member
	err := tx.Order("id").Find(&members).Error
	return members, err
}

// MemberUpdate carries the PUT payload; debt is never writable this way,
// it only moves through returns.
type MemberUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r *Repo) UpdateMember(ctx context.Context, id uint, upd MemberUpdate) (*models.Member, error) {
	var m models.Member
	if err := r.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Email != nil {
		m.Email = *upd.Email
	}
	if err := r.DB.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
