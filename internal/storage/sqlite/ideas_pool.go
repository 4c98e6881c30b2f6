// ABOUTME: Idea pool store over SQLite
// ABOUTME: Implements candidate pool fetches and embedding backfill writes
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adityamathur5836/ideavault/internal/models"
)

// IdeaPoolStore handles curated pool persistence. It satisfies both the
// search CandidatePool and PoolWriter interfaces.
type IdeaPoolStore struct {
	db *DB
}

// NewIdeaPoolStore creates a new IdeaPoolStore
func NewIdeaPoolStore(db *DB) *IdeaPoolStore {
	return &IdeaPoolStore{db: db}
}

const poolColumns = "id, title, description, category, tags, source, popularity_score, embedding, created_at"

// Insert adds a record to the pool. A missing id gets a generated UUID.
func (s *IdeaPoolStore) Insert(record *models.IdeaRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	tags, err := json.Marshal(record.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO ideas_pool (id, title, description, category, tags, source, popularity_score, embedding, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Title, record.Description, record.Category, string(tags),
		record.Source, record.PopularityScore, vectorToBlob(record.Embedding), record.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting pool idea: %w", err)
	}
	return nil
}

// FetchAll returns pool records, optionally filtered by exact category.
func (s *IdeaPoolStore) FetchAll(category string) ([]models.IdeaRecord, error) {
	query := "SELECT " + poolColumns + " FROM ideas_pool"
	var args []interface{}
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY created_at ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching pool: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanPoolRecords(rows)
}

// FetchByIDs returns the records matching the given ids. Order follows the
// store, not the input; missing ids are simply absent from the result.
func (s *IdeaPoolStore) FetchByIDs(ids []string) ([]models.IdeaRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.Query(
		"SELECT "+poolColumns+" FROM ideas_pool WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("fetching pool by ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanPoolRecords(rows)
}

// ListMissingEmbeddings returns pool records without a stored vector.
func (s *IdeaPoolStore) ListMissingEmbeddings() ([]models.IdeaRecord, error) {
	rows, err := s.db.Query(
		"SELECT " + poolColumns + " FROM ideas_pool WHERE embedding IS NULL ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("listing unembedded ideas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanPoolRecords(rows)
}

// UpdateEmbedding stores the vector for a pool record.
func (s *IdeaPoolStore) UpdateEmbedding(id string, vector []float64) error {
	result, err := s.db.Exec("UPDATE ideas_pool SET embedding = ? WHERE id = ?", vectorToBlob(vector), id)
	if err != nil {
		return fmt.Errorf("updating embedding: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("pool idea %s not found", id)
	}
	return nil
}

// Count returns the number of pool records.
func (s *IdeaPoolStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM ideas_pool").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting pool: %w", err)
	}
	return n, nil
}

func scanPoolRecords(rows *sql.Rows) ([]models.IdeaRecord, error) {
	var records []models.IdeaRecord

	for rows.Next() {
		var (
			record models.IdeaRecord
			tags   string
			blob   []byte
		)
		if err := rows.Scan(&record.ID, &record.Title, &record.Description, &record.Category,
			&tags, &record.Source, &record.PopularityScore, &blob, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning pool idea: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &record.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags for %s: %w", record.ID, err)
		}
		record.Embedding = blobToVector(blob)
		records = append(records, record)
	}

	return records, rows.Err()
}
