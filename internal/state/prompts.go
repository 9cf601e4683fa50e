package state

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ShayCichocki/songsmith/pkg/models"
)

// ErrNotFound is returned when updating or deleting a missing prompt.
var ErrNotFound = errors.New("prompt not found")

const promptColumns = `id, title, kind, style, lyrics, tags, created_at, updated_at`

// CreatePrompt inserts p, filling in ID, Kind and timestamps when unset.
func (db *DB) CreatePrompt(p *models.Prompt) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Kind == "" {
		p.Kind = models.KindFor(p.Style, p.Lyrics)
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}

	tags, err := encodeTags(p.Tags)
	if err != nil {
		return fmt.Errorf("create prompt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO prompts (`+promptColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Title, string(p.Kind), p.Style, p.Lyrics, tags, formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("create prompt: %w", err)
	}
	return nil
}

// GetPrompt retrieves a prompt by ID. A missing prompt returns nil, nil.
func (db *DB) GetPrompt(id string) (*models.Prompt, error) {
	row := db.QueryRow(`SELECT `+promptColumns+` FROM prompts WHERE id = ?`, id)

	p, err := scanPrompt(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get prompt: %w", err)
	}
	return p, nil
}

// FindPrompt resolves a full ID or a unique ID prefix, as shown by list.
func (db *DB) FindPrompt(idOrPrefix string) (*models.Prompt, error) {
	if p, err := db.GetPrompt(idOrPrefix); p != nil || err != nil {
		return p, err
	}

	rows, err := db.Query(`SELECT `+promptColumns+` FROM prompts WHERE id LIKE ? LIMIT 2`, idOrPrefix+"%")
	if err != nil {
		return nil, fmt.Errorf("find prompt: %w", err)
	}
	defer rows.Close()

	prompts, err := scanPrompts(rows)
	if err != nil {
		return nil, fmt.Errorf("find prompt: %w", err)
	}
	switch len(prompts) {
	case 0:
		return nil, nil
	case 1:
		return &prompts[0], nil
	default:
		return nil, fmt.Errorf("find prompt: prefix %q is ambiguous", idOrPrefix)
	}
}

// UpdatePrompt updates a prompt and bumps UpdatedAt.
func (db *DB) UpdatePrompt(p *models.Prompt) error {
	p.UpdatedAt = time.Now()
	p.Kind = models.KindFor(p.Style, p.Lyrics)

	tags, err := encodeTags(p.Tags)
	if err != nil {
		return fmt.Errorf("update prompt: %w", err)
	}

	result, err := db.Exec(`
		UPDATE prompts SET title = ?, kind = ?, style = ?, lyrics = ?, tags = ?, updated_at = ?
		WHERE id = ?
	`, p.Title, string(p.Kind), p.Style, p.Lyrics, tags, formatTime(p.UpdatedAt), p.ID)
	if err != nil {
		return fmt.Errorf("update prompt: %w", err)
	}
	return requireAffected(result, "update prompt")
}

// DeletePrompt removes a prompt.
func (db *DB) DeletePrompt(id string) error {
	result, err := db.Exec(`DELETE FROM prompts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	return requireAffected(result, "delete prompt")
}

// ListPrompts returns prompts, most recently updated first.
// A limit of zero or less returns all prompts.
func (db *DB) ListPrompts(limit int) ([]models.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts ORDER BY updated_at DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	prompts, err := scanPrompts(rows)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	return prompts, nil
}

// SearchPrompts matches query against title, style, lyrics and tags,
// case-insensitively.
func (db *DB) SearchPrompts(query string) ([]models.Prompt, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return db.ListPrompts(0)
	}
	pattern := "%" + strings.ToLower(q) + "%"

	rows, err := db.Query(`
		SELECT `+promptColumns+` FROM prompts
		WHERE lower(title) LIKE ? OR lower(style) LIKE ? OR lower(lyrics) LIKE ? OR lower(COALESCE(tags, '')) LIKE ?
		ORDER BY updated_at DESC
	`, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search prompts: %w", err)
	}
	defer rows.Close()

	prompts, err := scanPrompts(rows)
	if err != nil {
		return nil, fmt.Errorf("search prompts: %w", err)
	}
	return prompts, nil
}

// PurgeOldPrompts deletes prompts not updated within olderThan.
// Returns the number of prompts deleted.
func (db *DB) PurgeOldPrompts(olderThan time.Duration) (int64, error) {
	cutoff := formatTime(time.Now().Add(-olderThan))

	result, err := db.Exec(`DELETE FROM prompts WHERE updated_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge old prompts: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrompt(row rowScanner) (*models.Prompt, error) {
	var p models.Prompt
	var kind string
	var tags sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&p.ID, &p.Title, &kind, &p.Style, &p.Lyrics, &tags, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	p.Kind = models.PromptKind(kind)
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &p.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	}
	p.CreatedAt, _ = parseTime(createdAt)
	p.UpdatedAt, _ = parseTime(updatedAt)
	return &p, nil
}

func scanPrompts(rows *sql.Rows) ([]models.Prompt, error) {
	var prompts []models.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, *p)
	}
	return prompts, rows.Err()
}

func encodeTags(tags []string) (sql.NullString, error) {
	if len(tags) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode tags: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func requireAffected(result sql.Result, op string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
