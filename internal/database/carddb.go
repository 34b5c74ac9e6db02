package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/uryuwr/cardgrab/internal/model"
)

// dbFileName is the SQLite database file name inside the database directory.
const dbFileName = "cardgrab.db"

// CardDB provides SQLite-based storage for canonical card records.
// It manages connection pooling and exposes upsert-by-card-number plus a
// few read operations for the operator commands and tests.
type CardDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures CardDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// read performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a CardDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned.
func Open(dbDir string, opts Options) (*CardDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; the crawl is sequential anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cdb := &CardDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (cdb *CardDB) Close() error {
	return cdb.db.Close()
}

// Path returns the path of the SQLite database file.
func (cdb *CardDB) Path() string {
	return cdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
// "trigger" is a reserved word in SQLite, hence the quoting.
func (cdb *CardDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		card_number TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		name_cn TEXT,
		card_type TEXT NOT NULL,
		color TEXT,
		cost INTEGER,
		power INTEGER,
		counter INTEGER,
		life INTEGER,
		attribute TEXT,
		effect TEXT,
		"trigger" TEXT,
		trait TEXT,
		rarity TEXT,
		set_code TEXT,
		image_url TEXT,
		image_local TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_cards_set_code ON cards(set_code);
	CREATE INDEX IF NOT EXISTS idx_cards_card_type ON cards(card_type);
	CREATE INDEX IF NOT EXISTS idx_cards_name_cn ON cards(name_cn);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// UpsertResult reports whether an upsert inserted a new record or updated
// an existing one.
type UpsertResult int

const (
	// ResultCreated means the card number was not stored before.
	ResultCreated UpsertResult = iota + 1
	// ResultUpdated means an existing record was refreshed in place.
	ResultUpdated
)

// String returns a human-readable representation of the result.
func (r UpsertResult) String() string {
	switch r {
	case ResultCreated:
		return "created"
	case ResultUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// UpsertCard inserts or updates a card record keyed by its card number.
//
// Update semantics follow the crawl contract: string fields overwrite
// unconditionally, optional numeric fields overwrite only when the
// incoming value is present (nil never clears stored data), and the local
// image path is only written after a successful download. Re-running an
// identical crawl converges to the same stored state.
func (cdb *CardDB) UpsertCard(ctx context.Context, card *model.Card) (UpsertResult, error) {
	if card.CardNumber == "" {
		return 0, fmt.Errorf("upsert card: empty card number")
	}

	var existingID int64
	err := cdb.db.QueryRowContext(ctx,
		`SELECT id FROM cards WHERE card_number = ?`, card.CardNumber,
	).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		return cdb.insertCard(ctx, card)
	case err != nil:
		return 0, fmt.Errorf("failed to look up card %s: %w", card.CardNumber, err)
	default:
		return cdb.updateCard(ctx, card)
	}
}

// insertCard inserts a fresh card record.
func (cdb *CardDB) insertCard(ctx context.Context, card *model.Card) (UpsertResult, error) {
	query := `
	INSERT INTO cards (
		card_number, name, name_cn, card_type, color,
		cost, power, counter, life,
		attribute, effect, "trigger", trait, rarity,
		set_code, image_url, image_local
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := cdb.db.ExecContext(ctx, query,
		card.CardNumber,
		card.Name,
		card.NameCN,
		card.Kind,
		card.Color,
		nullableInt(card.Cost),
		nullableInt(card.Power),
		nullableInt(card.Counter),
		nullableInt(card.Life),
		card.Attribute,
		card.Effect,
		card.Trigger,
		card.Trait,
		card.Rarity,
		card.SetCode,
		card.ImageURL,
		card.ImageLocal,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert card %s: %w", card.CardNumber, err)
	}

	return ResultCreated, nil
}

// updateCard refreshes an existing record in place. COALESCE keeps the
// stored value when the incoming numeric field is absent; the image path
// is kept when the incoming record has none.
func (cdb *CardDB) updateCard(ctx context.Context, card *model.Card) (UpsertResult, error) {
	query := `
	UPDATE cards SET
		name = ?,
		name_cn = ?,
		card_type = ?,
		color = ?,
		cost = COALESCE(?, cost),
		power = COALESCE(?, power),
		counter = COALESCE(?, counter),
		life = COALESCE(?, life),
		attribute = ?,
		effect = ?,
		"trigger" = ?,
		trait = ?,
		rarity = ?,
		set_code = ?,
		image_url = ?,
		image_local = CASE WHEN ? != '' THEN ? ELSE image_local END,
		updated_at = CURRENT_TIMESTAMP
	WHERE card_number = ?
	`

	_, err := cdb.db.ExecContext(ctx, query,
		card.Name,
		card.NameCN,
		card.Kind,
		card.Color,
		nullableInt(card.Cost),
		nullableInt(card.Power),
		nullableInt(card.Counter),
		nullableInt(card.Life),
		card.Attribute,
		card.Effect,
		card.Trigger,
		card.Trait,
		card.Rarity,
		card.SetCode,
		card.ImageURL,
		card.ImageLocal,
		card.ImageLocal,
		card.CardNumber,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update card %s: %w", card.CardNumber, err)
	}

	return ResultUpdated, nil
}

// GetCard retrieves a card by its card number.
// It returns (nil, nil) when the card is not stored.
func (cdb *CardDB) GetCard(ctx context.Context, cardNumber string) (*model.Card, error) {
	query := `
	SELECT card_number, name, name_cn, card_type, color,
		cost, power, counter, life,
		attribute, effect, "trigger", trait, rarity,
		set_code, image_url, image_local
	FROM cards
	WHERE card_number = ?
	`

	var (
		card                      model.Card
		nameCN, color, attribute  sql.NullString
		effect, trigger, trait    sql.NullString
		rarity, setCode, imageURL sql.NullString
		imageLocal                sql.NullString
		cost, power, counter      sql.NullInt64
		life                      sql.NullInt64
	)

	err := cdb.db.QueryRowContext(ctx, query, cardNumber).Scan(
		&card.CardNumber,
		&card.Name,
		&nameCN,
		&card.Kind,
		&color,
		&cost,
		&power,
		&counter,
		&life,
		&attribute,
		&effect,
		&trigger,
		&trait,
		&rarity,
		&setCode,
		&imageURL,
		&imageLocal,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card %s: %w", cardNumber, err)
	}

	card.NameCN = nameCN.String
	card.Color = color.String
	card.Cost = intFromNull(cost)
	card.Power = intFromNull(power)
	card.Counter = intFromNull(counter)
	card.Life = intFromNull(life)
	card.Attribute = attribute.String
	card.Effect = effect.String
	card.Trigger = trigger.String
	card.Trait = trait.String
	card.Rarity = rarity.String
	card.SetCode = setCode.String
	card.ImageURL = imageURL.String
	card.ImageLocal = imageLocal.String

	return &card, nil
}

// CountCards returns the number of stored cards.
func (cdb *CardDB) CountCards(ctx context.Context) (int, error) {
	var count int
	if err := cdb.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return count, nil
}

// SetCount is the number of stored cards for one set code.
type SetCount struct {
	// SetCode is the set code, e.g. "EB04".
	SetCode string
	// Count is the number of stored cards in the set.
	Count int
}

// ListSetCounts returns the stored card counts grouped by set code,
// ordered by set code. Useful for checking crawl completeness against the
// set catalog.
func (cdb *CardDB) ListSetCounts(ctx context.Context) ([]SetCount, error) {
	rows, err := cdb.db.QueryContext(ctx,
		`SELECT set_code, COUNT(*) FROM cards GROUP BY set_code ORDER BY set_code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list set counts: %w", err)
	}
	defer rows.Close()

	var results []SetCount
	for rows.Next() {
		var sc SetCount
		var setCode sql.NullString
		if err := rows.Scan(&setCode, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan set count: %w", err)
		}
		sc.SetCode = setCode.String
		results = append(results, sc)
	}

	return results, rows.Err()
}

// nullableInt converts an optional int into a driver-level value:
// nil stays NULL, everything else becomes the integer.
func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// intFromNull converts a scanned nullable integer back into an optional int.
func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
