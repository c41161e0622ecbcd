package repository

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"burpwatch/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

type Repository struct {
	db *sql.DB
}

func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_journal_mode=WAL&_timeout=5000&_cache_size=2000", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// :memory: databases are per connection
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
	}
	db.SetConnMaxLifetime(time.Hour)

	repo := &Repository{db: db}

	if err := repo.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	_, err = r.db.Exec(string(schemaSQL))
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	// Run migrations for existing databases
	if err := r.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

type columnMigration struct {
	table      string
	column     string
	definition string
}

// migrations add columns introduced after the first release
var migrations = []columnMigration{
	{table: "restores", column: "task_state", definition: "TEXT NOT NULL DEFAULT ''"},
	{table: "status_events", column: "clients", definition: "TEXT NOT NULL DEFAULT '[]'"},
}

// runMigrations applies database migrations for schema changes
func (r *Repository) runMigrations() error {
	for _, m := range migrations {
		var hasColumn bool
		row := r.db.QueryRow(
			fmt.Sprintf("SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name='%s'", m.table, m.column))
		if err := row.Scan(&hasColumn); err != nil {
			return fmt.Errorf("failed to check for %s column in %s: %w", m.column, m.table, err)
		}

		if hasColumn {
			continue
		}

		slog.Info("migrating database: adding column", "table", m.table, "column", m.column)
		_, err := r.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.table, m.column, m.definition))
		if err != nil {
			return fmt.Errorf("failed to add %s column to %s: %w", m.column, m.table, err)
		}
		slog.Info("migration complete", "table", m.table, "column", m.column)
	}

	return nil
}

// Status event operations
func (r *Repository) CreateStatusEvent(event *models.StatusEvent) error {
	if event.ObservedAt.IsZero() {
		event.ObservedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO status_events (scope, running, phase, percent, clients, observed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		event.Scope, event.Running, event.Phase, event.Percent, event.Clients, event.ObservedAt)
	if err != nil {
		return fmt.Errorf("failed to create status event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get status event ID: %w", err)
	}

	event.ID = id
	return nil
}

// GetStatusEvents returns events newest first.
func (r *Repository) GetStatusEvents(filter models.StatusEventFilter) ([]*models.StatusEvent, error) {
	query := `
		SELECT id, scope, running, phase, percent, clients, observed_at
		FROM status_events
	`

	var conditions []string
	var args []interface{}

	if filter.Scope != "" {
		conditions = append(conditions, "scope = ?")
		args = append(args, filter.Scope)
	}
	if filter.Since != nil {
		conditions = append(conditions, "observed_at >= ?")
		args = append(args, *filter.Since)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY observed_at DESC, id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query status events: %w", err)
	}
	defer rows.Close()

	var events []*models.StatusEvent
	for rows.Next() {
		var event models.StatusEvent
		err := rows.Scan(&event.ID, &event.Scope, &event.Running, &event.Phase,
			&event.Percent, &event.Clients, &event.ObservedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status event: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status events: %w", err)
	}

	return events, nil
}

// PruneStatusEvents keeps the newest keep events and deletes the rest.
func (r *Repository) PruneStatusEvents(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	query := `
		DELETE FROM status_events
		WHERE id NOT IN (
			SELECT id FROM status_events ORDER BY observed_at DESC, id DESC LIMIT ?
		)
	`

	result, err := r.db.Exec(query, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune status events: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rowsAffected > 0 {
		slog.Debug("pruned status events", "count", rowsAffected, "kept", keep)
	}
	return rowsAffected, nil
}

// Restore operations
func (r *Repository) CreateRestore(restore *models.Restore) error {
	now := time.Now()
	if restore.CreatedAt.IsZero() {
		restore.CreatedAt = now
	}
	restore.UpdatedAt = now

	query := `
		INSERT INTO restores (
			id, task_id, client, backup, server, status_url, status, task_state,
			location, local_path, bytes, error_message, request,
			created_at, updated_at, started_at, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		restore.ID, restore.TaskID, restore.Client, restore.Backup, restore.Server,
		restore.StatusURL, restore.Status, restore.TaskState, restore.Location,
		restore.LocalPath, restore.Bytes, nullString(restore.ErrorMessage), restore.Request,
		restore.CreatedAt, restore.UpdatedAt, restore.StartedAt, restore.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to create restore: %w", err)
	}

	return nil
}

const restoreColumns = `
	id, task_id, client, backup, server, status_url, status, task_state,
	location, local_path, bytes, error_message, request,
	created_at, updated_at, started_at, completed_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestore(row rowScanner) (*models.Restore, error) {
	var restore models.Restore
	var errorMessage sql.NullString
	var startedAt, completedAt sql.NullTime

	err := row.Scan(
		&restore.ID, &restore.TaskID, &restore.Client, &restore.Backup, &restore.Server,
		&restore.StatusURL, &restore.Status, &restore.TaskState, &restore.Location,
		&restore.LocalPath, &restore.Bytes, &errorMessage, &restore.Request,
		&restore.CreatedAt, &restore.UpdatedAt, &startedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	if errorMessage.Valid {
		restore.ErrorMessage = errorMessage.String
	}
	if startedAt.Valid {
		restore.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		restore.CompletedAt = &completedAt.Time
	}

	return &restore, nil
}

func (r *Repository) GetRestore(id string) (*models.Restore, error) {
	query := "SELECT " + restoreColumns + " FROM restores WHERE id = ?"

	restore, err := scanRestore(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("restore %s %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get restore: %w", err)
	}

	return restore, nil
}

// GetRestores returns restores newest first.
func (r *Repository) GetRestores(filter models.RestoreFilter) ([]*models.Restore, error) {
	query := "SELECT " + restoreColumns + " FROM restores"

	var conditions []string
	var args []interface{}

	if len(filter.Status) > 0 {
		placeholders := strings.Repeat("?,", len(filter.Status))
		placeholders = placeholders[:len(placeholders)-1] // Remove trailing comma
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", placeholders))
		for _, status := range filter.Status {
			args = append(args, status)
		}
	}

	if filter.Client != "" {
		conditions = append(conditions, "client = ?")
		args = append(args, filter.Client)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	// Pagination
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query restores: %w", err)
	}
	defer rows.Close()

	var restores []*models.Restore
	for rows.Next() {
		restore, err := scanRestore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restore: %w", err)
		}
		restores = append(restores, restore)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restores: %w", err)
	}

	return restores, nil
}

func (r *Repository) UpdateRestore(restore *models.Restore) error {
	query := `
		UPDATE restores SET
			task_id = ?, status_url = ?, status = ?, task_state = ?, location = ?,
			local_path = ?, bytes = ?, error_message = ?, started_at = ?, completed_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		restore.TaskID, restore.StatusURL, restore.Status, restore.TaskState, restore.Location,
		restore.LocalPath, restore.Bytes, nullString(restore.ErrorMessage),
		restore.StartedAt, restore.CompletedAt, restore.ID)
	if err != nil {
		return fmt.Errorf("failed to update restore: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("restore %s %w", restore.ID, models.ErrNotFound)
	}

	return nil
}

func (r *Repository) GetRestoreSummary() (*models.RestoreSummary, error) {
	query := `
		SELECT
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN status = 'queued' THEN 1 ELSE 0 END), 0) as queued,
			COALESCE(SUM(CASE WHEN status = 'running' THEN 1 ELSE 0 END), 0) as running,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) as completed,
			COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0) as failed,
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) as cancelled,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN bytes ELSE 0 END), 0) as bytes
		FROM restores
	`

	var summary models.RestoreSummary
	err := r.db.QueryRow(query).Scan(
		&summary.TotalRestores, &summary.QueuedRestores, &summary.RunningRestores,
		&summary.CompletedRestores, &summary.FailedRestores, &summary.CancelledRestores,
		&summary.BytesDownloaded)
	if err != nil {
		return nil, fmt.Errorf("failed to get restore summary: %w", err)
	}

	return &summary, nil
}

func (r *Repository) GetActiveRestoresCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM restores WHERE status IN ('queued', 'running')").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get active restores count: %w", err)
	}
	return count, nil
}

// Cleanup operations
func (r *Repository) CleanupOldRestores(finishedBefore time.Time) (int, error) {
	query := `
		DELETE FROM restores
		WHERE status IN ('completed', 'failed', 'cancelled') AND completed_at < ?
	`

	result, err := r.db.Exec(query, finishedBefore)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old restores: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	slog.Info("cleaned up old restores", "count", rowsAffected)
	return int(rowsAffected), nil
}

// System configuration operations
func (r *Repository) GetConfig(key string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM system_config WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("config key %s %w", key, models.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get config: %w", err)
	}
	return value, nil
}

func (r *Repository) SetConfig(key, value string) error {
	query := `
		INSERT INTO system_config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query, key, value, value)
	if err != nil {
		return fmt.Errorf("failed to set config: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
