package frappe

import (
	"context"
	"fmt"

	"Gin_postgres_library_management/engine"
	"Gin_postgres_library_management/models"
)

const (
	maxTitleLen     = 200
	maxAuthorLen    = 500
	maxPublisherLen = 200

	// Imported catalog books start with one copy on the shelf.
	importDefaultStock = 1
)

// Catalog is the fetch side of an import.
type Catalog interface {
	Search(ctx context.Context, p SearchParams) ([]BookRecord, error)
}

// BookStore is the narrow slice of the store the importer needs;
// db.Repo satisfies it, tests use a double.
type BookStore interface {
	ISBNExists(ctx context.Context, isbn string) (bool, error)
	CreateBooks(ctx context.Context, books []*models.Book) error
}

type Importer struct {
	catalog Catalog
	store   BookStore
}

func NewImporter(catalog Catalog, store BookStore) *Importer {
	return &Importer{catalog: catalog, store: store}
}

// Result reports one import run.
type Result struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// Message renders the human-readable summary line.
func (r Result) Message() string {
	msg := fmt.Sprintf("Successfully imported %d books", r.Imported)
	if r.Skipped > 0 {
		msg += fmt.Sprintf(", skipped %d existing books", r.Skipped)
	}
	return msg
}

// ImportFromCatalog fetches one catalog page and imports it.
func (im *Importer) ImportFromCatalog(ctx context.Context, p SearchParams) (Result, error) {
	recs, err := im.catalog.Search(ctx, p)
	if err != nil {
		return Result{}, err
	}
	return im.ImportRecords(ctx, recs)
}

// ImportRecords maps catalog records to books and commits the new ones
// as one batch. Records whose ISBN already exists, in the store or
// earlier in the same batch, are skipped; malformed records are reported
// per record without aborting the rest.
func (im *Importer) ImportRecords(ctx context.Context, recs []BookRecord) (Result, error) {
	res := Result{Errors: []string{}}
	seen := make(map[string]bool, len(recs))
	batch := make([]*models.Book, 0, len(recs))

	for _, rec := range recs {
		if rec.Title == "" || rec.Authors == "" {
			res.Errors = append(res.Errors, importError(rec, "missing title or authors"))
			continue
		}
		if !models.ValidISBN(rec.ISBN) {
			res.Errors = append(res.Errors, importError(rec, "invalid isbn"))
			continue
		}
		if seen[rec.ISBN] {
			res.Skipped++
			continue
		}
		seen[rec.ISBN] = true

		exists, err := im.store.ISBNExists(ctx, rec.ISBN)
		if err != nil {
			return Result{}, engine.Storage(err)
		}
		if exists {
			res.Skipped++
			continue
		}

		batch = append(batch, &models.Book{
			Title:     truncateRunes(rec.Title, maxTitleLen),
			Author:    truncateRunes(rec.Authors, maxAuthorLen),
			ISBN:      rec.ISBN,
			Publisher: truncateRunes(rec.Publisher, maxPublisherLen),
			Stock:     importDefaultStock,
		})
	}

	if len(batch) > 0 {
		if err := im.store.CreateBooks(ctx, batch); err != nil {
			return Result{}, engine.Storage(err)
		}
	}
	res.Imported = len(batch)
	return res, nil
}

func importError(rec BookRecord, reason string) string {
	title := rec.Title
	if title == "" {
		title = "Unknown"
	}
	return fmt.Sprintf("Error importing book %s: %s", title, reason)
}

// truncateRunes cuts by code points, not bytes, so multi-byte titles
// stay valid UTF-8.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
