package db

import "gorm.io/gorm"

// Repo holds the plain CRUD side of the store. The rule-bearing mutations
// (issue, return, deletes) live in the engine package, which owns its own
// transaction boundaries.
type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }
