// ABOUTME: User idea store over SQLite
// ABOUTME: Persists draft ideas, lazy embeddings, and cached similar-idea id lists
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adityamathur5836/ideavault/internal/models"
)

// UserIdeaStore handles user idea persistence. It satisfies the search
// SourceIdeaStore interface.
type UserIdeaStore struct {
	db *DB
}

// NewUserIdeaStore creates a new UserIdeaStore
func NewUserIdeaStore(db *DB) *UserIdeaStore {
	return &UserIdeaStore{db: db}
}

const userIdeaColumns = "id, user_id, title, description, category, status, embedding, similar_ideas, created_at, updated_at"

// Insert adds a user idea. A missing id gets a generated UUID.
func (s *UserIdeaStore) Insert(idea *models.UserIdea) error {
	if idea.ID == "" {
		idea.ID = uuid.New().String()
	}
	now := time.Now()
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = now
	}
	idea.UpdatedAt = now
	if idea.Status == "" {
		idea.Status = "draft"
	}

	similar, err := json.Marshal(idea.SimilarIdeas)
	if err != nil {
		return fmt.Errorf("encoding similar ideas: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO user_ideas (id, user_id, title, description, category, status, embedding, similar_ideas, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, idea.ID, idea.UserID, idea.Title, idea.Description, idea.Category, idea.Status,
		vectorToBlob(idea.Embedding), string(similar), idea.CreatedAt, idea.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting user idea: %w", err)
	}
	return nil
}

// Get returns the idea or nil when no row exists.
func (s *UserIdeaStore) Get(id string) (*models.UserIdea, error) {
	row := s.db.QueryRow("SELECT "+userIdeaColumns+" FROM user_ideas WHERE id = ?", id)

	idea, err := scanUserIdea(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading user idea: %w", err)
	}
	return idea, nil
}

// ListByUser returns all ideas owned by a user, newest first.
func (s *UserIdeaStore) ListByUser(userID string) ([]models.UserIdea, error) {
	rows, err := s.db.Query(
		"SELECT "+userIdeaColumns+" FROM user_ideas WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("listing user ideas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ideas []models.UserIdea
	for rows.Next() {
		idea, err := scanUserIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user idea: %w", err)
		}
		ideas = append(ideas, *idea)
	}
	return ideas, rows.Err()
}

// SaveEmbedding stores the lazily computed embedding for an idea.
func (s *UserIdeaStore) SaveEmbedding(id string, vector []float64) error {
	result, err := s.db.Exec(
		"UPDATE user_ideas SET embedding = ?, updated_at = ? WHERE id = ?",
		vectorToBlob(vector), time.Now(), id)
	if err != nil {
		return fmt.Errorf("saving embedding: %w", err)
	}
	return requireRow(result, id)
}

// SaveSimilarIdeas overwrites the cached similar-idea id list.
func (s *UserIdeaStore) SaveSimilarIdeas(id string, similarIDs []string) error {
	if similarIDs == nil {
		similarIDs = []string{}
	}
	encoded, err := json.Marshal(similarIDs)
	if err != nil {
		return fmt.Errorf("encoding similar ideas: %w", err)
	}

	result, err := s.db.Exec(
		"UPDATE user_ideas SET similar_ideas = ?, updated_at = ? WHERE id = ?",
		string(encoded), time.Now(), id)
	if err != nil {
		return fmt.Errorf("saving similar ideas: %w", err)
	}
	return requireRow(result, id)
}

func requireRow(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("user idea %s not found", id)
	}
	return nil
}

// scanner matches both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUserIdea(row scanner) (*models.UserIdea, error) {
	var (
		idea    models.UserIdea
		blob    []byte
		similar string
	)
	if err := row.Scan(&idea.ID, &idea.UserID, &idea.Title, &idea.Description, &idea.Category,
		&idea.Status, &blob, &similar, &idea.CreatedAt, &idea.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(similar), &idea.SimilarIdeas); err != nil {
		return nil, fmt.Errorf("decoding similar ideas for %s: %w", idea.ID, err)
	}
	idea.Embedding = blobToVector(blob)
	return &idea, nil
}
