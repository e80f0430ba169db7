// Package storage provides SQLite-based persistence for sketches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ravkin/tui-sketch/internal/canvas"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
)

// Store manages the SQLite database connection for sketch persistence.
type Store struct {
	db *sql.DB
}

// SketchInfo summarizes a stored sketch for listings.
type SketchInfo struct {
	ID        int64
	Name      string
	Strokes   int
	Shapes    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sketches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS strokes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sketch_id INTEGER NOT NULL REFERENCES sketches(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			origin_x REAL NOT NULL,
			origin_y REAL NOT NULL,
			points TEXT NOT NULL,
			color INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_strokes_sketch ON strokes(sketch_id, seq);

		CREATE TABLE IF NOT EXISTS shapes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sketch_id INTEGER NOT NULL REFERENCES sketches(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			kind INTEGER NOT NULL,
			x1 REAL NOT NULL,
			y1 REAL NOT NULL,
			x2 REAL NOT NULL,
			y2 REAL NOT NULL,
			color INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_shapes_sketch ON shapes(sketch_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSketch writes the document under its name, replacing any previous
// contents. Strokes are assumed to be already trimmed by the document's
// boundary policy. Returns the sketch row ID.
func (s *Store) SaveSketch(doc *canvas.Document) (int64, error) {
	if doc.Name == "" {
		return 0, fmt.Errorf("storage: sketch name must not be empty")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	_, err = tx.Exec(
		`INSERT INTO sketches (name) VALUES (?)
		 ON CONFLICT(name) DO UPDATE SET updated_at = CURRENT_TIMESTAMP`,
		doc.Name,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot upsert sketch: %w", err)
	}

	var id int64
	if err := tx.QueryRow("SELECT id FROM sketches WHERE name = ?", doc.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot read sketch id: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM strokes WHERE sketch_id = ?", id); err != nil {
		return 0, fmt.Errorf("storage: cannot clear strokes: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM shapes WHERE sketch_id = ?", id); err != nil {
		return 0, fmt.Errorf("storage: cannot clear shapes: %w", err)
	}

	for i, st := range doc.Strokes {
		points, err := json.Marshal(st.Path.Points)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot encode stroke points: %w", err)
		}
		_, err = tx.Exec(
			`INSERT INTO strokes (sketch_id, seq, origin_x, origin_y, points, color)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, i, st.Path.Origin.X, st.Path.Origin.Y, string(points), st.Color,
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save stroke: %w", err)
		}
	}

	for i, sh := range doc.Shapes {
		_, err = tx.Exec(
			`INSERT INTO shapes (sketch_id, seq, kind, x1, y1, x2, y2, color)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i, sh.Kind, sh.Start.X, sh.Start.Y, sh.End.X, sh.End.Y, sh.Color,
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save shape: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit sketch: %w", err)
	}

	return id, nil
}

// LoadSketch reads a sketch by name. Returns nil with no error if the
// sketch does not exist. The document's boundary is not stored; callers
// attach the configured region.
func (s *Store) LoadSketch(name string) (*canvas.Document, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM sketches WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sketch: %w", err)
	}

	doc := canvas.New(name)

	rows, err := s.db.Query(
		`SELECT origin_x, origin_y, points, color
		 FROM strokes WHERE sketch_id = ? ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query strokes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ox, oy float64
			raw    string
			color  int64
		)
		if err := rows.Scan(&ox, &oy, &raw, &color); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stroke: %w", err)
		}
		var points []geom.Point
		if err := json.Unmarshal([]byte(raw), &points); err != nil {
			return nil, fmt.Errorf("storage: cannot decode stroke points: %w", err)
		}
		doc.Strokes = append(doc.Strokes, canvas.Stroke{
			Path:  geom.Stroke{Origin: geom.Point{X: ox, Y: oy}, Points: points},
			Color: core.Color(color),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: stroke iteration error: %w", err)
	}

	shapeRows, err := s.db.Query(
		`SELECT kind, x1, y1, x2, y2, color
		 FROM shapes WHERE sketch_id = ? ORDER BY seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shapes: %w", err)
	}
	defer shapeRows.Close()

	for shapeRows.Next() {
		var (
			kind           int64
			x1, y1, x2, y2 float64
			color          int64
		)
		if err := shapeRows.Scan(&kind, &x1, &y1, &x2, &y2, &color); err != nil {
			return nil, fmt.Errorf("storage: cannot scan shape: %w", err)
		}
		doc.Shapes = append(doc.Shapes, canvas.Shape{
			Kind:  canvas.ShapeKind(kind),
			Start: geom.Point{X: x1, Y: y1},
			End:   geom.Point{X: x2, Y: y2},
			Color: core.Color(color),
		})
	}
	if err := shapeRows.Err(); err != nil {
		return nil, fmt.Errorf("storage: shape iteration error: %w", err)
	}

	return doc, nil
}

// ListSketches returns all stored sketches with element counts, most
// recently updated first.
func (s *Store) ListSketches() ([]SketchInfo, error) {
	rows, err := s.db.Query(
		`SELECT sk.id, sk.name,
		        (SELECT COUNT(*) FROM strokes st WHERE st.sketch_id = sk.id),
		        (SELECT COUNT(*) FROM shapes sh WHERE sh.sketch_id = sk.id),
		        sk.created_at, sk.updated_at
		 FROM sketches sk
		 ORDER BY sk.updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sketches: %w", err)
	}
	defer rows.Close()

	var infos []SketchInfo
	for rows.Next() {
		var (
			info       SketchInfo
			createdAt  any
			updatedAt  any
		)
		if err := rows.Scan(&info.ID, &info.Name, &info.Strokes, &info.Shapes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan sketch row: %w", err)
		}
		info.CreatedAt = scanTime(createdAt)
		info.UpdatedAt = scanTime(updatedAt)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// SketchInfoByName returns listing info for a single sketch, or nil if it
// does not exist.
func (s *Store) SketchInfoByName(name string) (*SketchInfo, error) {
	var (
		info      SketchInfo
		createdAt any
		updatedAt any
	)
	err := s.db.QueryRow(
		`SELECT sk.id, sk.name,
		        (SELECT COUNT(*) FROM strokes st WHERE st.sketch_id = sk.id),
		        (SELECT COUNT(*) FROM shapes sh WHERE sh.sketch_id = sk.id),
		        sk.created_at, sk.updated_at
		 FROM sketches sk WHERE sk.name = ?`,
		name,
	).Scan(&info.ID, &info.Name, &info.Strokes, &info.Shapes, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sketch info: %w", err)
	}

	info.CreatedAt = scanTime(createdAt)
	info.UpdatedAt = scanTime(updatedAt)
	return &info, nil
}

// DeleteSketch removes a sketch and its contents.
func (s *Store) DeleteSketch(name string) error {
	var id int64
	err := s.db.QueryRow("SELECT id FROM sketches WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return fmt.Errorf("storage: sketch %q not found", name)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot query sketch: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	for _, stmt := range []string{
		"DELETE FROM strokes WHERE sketch_id = ?",
		"DELETE FROM shapes WHERE sketch_id = ?",
		"DELETE FROM sketches WHERE id = ?",
	} {
		if _, err := tx.Exec(stmt, id); err != nil {
			return fmt.Errorf("storage: cannot delete sketch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// scanTime converts a scanned datetime column, which the driver may return
// as time.Time or string, into a time.Time.
func scanTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
