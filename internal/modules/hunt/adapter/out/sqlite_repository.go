package out

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"huntlog/internal/modules/hunt/domain"
	apperrors "huntlog/internal/platform/errors"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// SQLiteRepository stores hunts, their kill lists and the character and
// location rosters in one SQLite file. A single connection serialises writes.
type SQLiteRepository struct {
	db  *sqlx.DB
	log logrus.FieldLogger
}

type huntRow struct {
	ID          int64          `db:"id"`
	Character   string         `db:"character_name"`
	Location    string         `db:"location_name"`
	Date        sql.NullString `db:"date"`
	StartTime   sql.NullString `db:"start_time"`
	EndTime     sql.NullString `db:"end_time"`
	DurationMin int            `db:"duration_min"`
	RawXP       int64          `db:"raw_xp"`
	XP          int64          `db:"xp"`
	Loot        int64          `db:"loot"`
	Supplies    int64          `db:"supplies"`
	Balance     int64          `db:"balance"`
	Payment     int64          `db:"payment"`
	Damage      int64          `db:"damage"`
	Healing     int64          `db:"healing"`
	RawText     string         `db:"raw_text"`
}

type monsterRow struct {
	HuntID   int64  `db:"hunt_id"`
	Position int    `db:"position"`
	Creature string `db:"creature"`
	Amount   int64  `db:"amount"`
}

type killRow struct {
	Creature string `db:"creature"`
	Total    int64  `db:"total"`
}

type characterRow struct {
	Name      string `db:"name"`
	IsDefault bool   `db:"is_default"`
}

const huntColumns = `h.id, h.character_name, h.location_name, h.date, h.start_time, h.end_time,
  h.duration_min, h.raw_xp, h.xp, h.loot, h.supplies, h.balance, h.payment, h.damage, h.healing, h.raw_text`

const huntOrder = `ORDER BY COALESCE(h.date, '9999-99-99') DESC, COALESCE(h.start_time, '00:00:00') DESC, h.id DESC`

// NewSQLiteRepository opens dbPath, applies the embedded migrations and
// makes sure the roster has a default character, seeding seedCharacter into
// an empty roster.
func NewSQLiteRepository(dbPath, seedCharacter string, log logrus.FieldLogger) (*SQLiteRepository, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dsn := "file:" + dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	repo := &SQLiteRepository{db: db, log: log}
	if err := repo.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := repo.seedRoster(context.Background(), seedCharacter); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) migrate() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(r.db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}
	migrator, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	// migrator.Close would close the shared *sql.DB.
	if version, dirty, err := migrator.Version(); err == nil {
		r.log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Debug("schema ready")
	}
	return nil
}

func (r *SQLiteRepository) seedRoster(ctx context.Context, seedCharacter string) error {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM characters`); err != nil {
		return fmt.Errorf("count characters: %w", err)
	}
	if count == 0 {
		seed := strings.TrimSpace(seedCharacter)
		if seed == "" {
			return nil
		}
		if _, err := r.db.ExecContext(ctx, `INSERT INTO characters (name, is_default) VALUES (?, 1)`, seed); err != nil {
			return fmt.Errorf("seed character: %w", err)
		}
		return nil
	}
	return r.ensureDefault(ctx, r.db)
}

// ensureDefault promotes the first roster row when no default is set.
func (r *SQLiteRepository) ensureDefault(ctx context.Context, exec sqlx.ExtContext) error {
	var defaults int
	if err := sqlx.GetContext(ctx, exec, &defaults, `SELECT COUNT(*) FROM characters WHERE is_default = 1`); err != nil {
		return fmt.Errorf("count default characters: %w", err)
	}
	if defaults > 0 {
		return nil
	}
	if _, err := exec.ExecContext(ctx, `UPDATE characters SET is_default = 1 WHERE id = (SELECT id FROM characters ORDER BY id LIMIT 1)`); err != nil {
		return fmt.Errorf("promote default character: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Save(ctx context.Context, hunt domain.Hunt) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := upsertNames(ctx, tx, hunt.Character, hunt.Location); err != nil {
		return 0, err
	}
	const stmt = `
INSERT INTO hunts (character_name, location_name, date, start_time, end_time, duration_min,
  raw_xp, xp, loot, supplies, balance, payment, damage, healing, raw_text)
VALUES (:character_name, :location_name, :date, :start_time, :end_time, :duration_min,
  :raw_xp, :xp, :loot, :supplies, :balance, :payment, :damage, :healing, :raw_text)`
	res, err := tx.NamedExecContext(ctx, stmt, toRow(hunt))
	if err != nil {
		return 0, fmt.Errorf("insert hunt: %w", err)
	}
	huntID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read hunt id: %w", err)
	}
	if err := insertMonsters(ctx, tx, huntID, hunt.Monsters); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save: %w", err)
	}
	return huntID, nil
}

func (r *SQLiteRepository) Query(ctx context.Context, filter domain.Filter) ([]domain.Hunt, error) {
	where, args := whereClause(filter)
	rows := []huntRow{}
	query := `SELECT ` + huntColumns + ` FROM hunts h` + where + ` ` + huntOrder
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query hunts: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Hunt{}, nil
	}

	monsters := []monsterRow{}
	mquery := `SELECT m.hunt_id, m.position, m.creature, m.amount
FROM hunt_monsters m JOIN hunts h ON h.id = m.hunt_id` + where + `
ORDER BY m.hunt_id, m.position`
	if err := r.db.SelectContext(ctx, &monsters, mquery, args...); err != nil {
		return nil, fmt.Errorf("query hunt monsters: %w", err)
	}
	byHunt := make(map[int64][]domain.Monster, len(rows))
	for _, m := range monsters {
		byHunt[m.HuntID] = append(byHunt[m.HuntID], domain.Monster{Name: m.Creature, Count: m.Amount})
	}

	out := make([]domain.Hunt, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row, byHunt[row.ID]))
	}
	return out, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, huntID int64) (domain.Hunt, error) {
	row := huntRow{}
	err := r.db.GetContext(ctx, &row, `SELECT `+huntColumns+` FROM hunts h WHERE h.id = ?`, huntID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Hunt{}, fmt.Errorf("hunt %d: %w", huntID, apperrors.ErrNotFound)
	}
	if err != nil {
		return domain.Hunt{}, fmt.Errorf("get hunt: %w", err)
	}
	monsters := []monsterRow{}
	if err := r.db.SelectContext(ctx, &monsters,
		`SELECT hunt_id, position, creature, amount FROM hunt_monsters WHERE hunt_id = ? ORDER BY position`, huntID); err != nil {
		return domain.Hunt{}, fmt.Errorf("get hunt monsters: %w", err)
	}
	list := make([]domain.Monster, 0, len(monsters))
	for _, m := range monsters {
		list = append(list, domain.Monster{Name: m.Creature, Count: m.Amount})
	}
	return fromRow(row, list), nil
}

func (r *SQLiteRepository) Update(ctx context.Context, hunt domain.Hunt) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := upsertNames(ctx, tx, hunt.Character, hunt.Location); err != nil {
		return err
	}
	const stmt = `
UPDATE hunts SET
  character_name=:character_name,
  location_name=:location_name,
  date=:date,
  start_time=:start_time,
  end_time=:end_time,
  duration_min=:duration_min,
  raw_xp=:raw_xp,
  xp=:xp,
  loot=:loot,
  supplies=:supplies,
  balance=:balance,
  payment=:payment,
  damage=:damage,
  healing=:healing
WHERE id=:id`
	res, err := tx.NamedExecContext(ctx, stmt, toRow(hunt))
	if err != nil {
		return fmt.Errorf("update hunt: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("hunt %d: %w", hunt.ID, apperrors.ErrNotFound)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM hunt_monsters WHERE hunt_id = ?`, hunt.ID); err != nil {
		return fmt.Errorf("clear hunt monsters: %w", err)
	}
	if err := insertMonsters(ctx, tx, hunt.ID, hunt.Monsters); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) BatchUpdate(ctx context.Context, ids []int64, character, location *string) (int, error) {
	if len(ids) == 0 || (character == nil && location == nil) {
		return 0, nil
	}
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if character != nil {
		sets = append(sets, "character_name = ?")
		args = append(args, *character)
	}
	if location != nil {
		sets = append(sets, "location_name = ?")
		args = append(args, *location)
	}
	args = append(args, ids)
	query, inArgs, err := sqlx.In(`UPDATE hunts SET `+strings.Join(sets, ", ")+` WHERE id IN (?)`, args...)
	if err != nil {
		return 0, fmt.Errorf("build batch update: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin batch update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if character != nil {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO characters (name) VALUES (?)`, *character); err != nil {
			return 0, fmt.Errorf("upsert character: %w", err)
		}
	}
	if location != nil {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO locations (name) VALUES (?)`, *location); err != nil {
			return 0, fmt.Errorf("upsert location: %w", err)
		}
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(query), inArgs...)
	if err != nil {
		return 0, fmt.Errorf("batch update hunts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count updated hunts: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit batch update: %w", err)
	}
	return int(n), nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	monstersQuery, monstersArgs, err := sqlx.In(`DELETE FROM hunt_monsters WHERE hunt_id IN (?)`, ids)
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}
	huntsQuery, huntsArgs, err := sqlx.In(`DELETE FROM hunts WHERE id IN (?)`, ids)
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin delete: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, tx.Rebind(monstersQuery), monstersArgs...); err != nil {
		return 0, fmt.Errorf("delete hunt monsters: %w", err)
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(huntsQuery), huntsArgs...)
	if err != nil {
		return 0, fmt.Errorf("delete hunts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted hunts: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit delete: %w", err)
	}
	return int(n), nil
}

// AggregateKills sums kills per creature over the filtered hunts, highest
// first. Ties keep the order creatures were first recorded.
func (r *SQLiteRepository) AggregateKills(ctx context.Context, filter domain.Filter) ([]domain.Kill, error) {
	where, args := whereClause(filter)
	query := `SELECT m.creature, SUM(m.amount) AS total
FROM hunt_monsters m JOIN hunts h ON h.id = m.hunt_id` + where + `
GROUP BY m.creature
ORDER BY total DESC, MIN(m.id) ASC`
	rows := []killRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("aggregate kills: %w", err)
	}
	out := make([]domain.Kill, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Kill{Name: row.Creature, Total: row.Total})
	}
	return out, nil
}

// ListCharacters returns the default character first, then the rest by name.
func (r *SQLiteRepository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	rows := []characterRow{}
	if err := r.db.SelectContext(ctx, &rows, `SELECT name, is_default FROM characters ORDER BY is_default DESC, name`); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	out := make([]domain.Character, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Character{Name: row.Name, IsDefault: row.IsDefault})
	}
	return out, nil
}

// DefaultCharacter returns "" when the roster is empty.
func (r *SQLiteRepository) DefaultCharacter(ctx context.Context) (string, error) {
	var name string
	err := r.db.GetContext(ctx, &name, `SELECT name FROM characters WHERE is_default = 1 LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get default character: %w", err)
	}
	return name, nil
}

func (r *SQLiteRepository) SetDefaultCharacter(ctx context.Context, name string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set default: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.GetContext(ctx, &exists, `SELECT COUNT(*) FROM characters WHERE name = ?`, name); err != nil {
		return fmt.Errorf("find character: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("character %q: %w", name, apperrors.ErrNotFound)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE characters SET is_default = CASE WHEN name = ? THEN 1 ELSE 0 END`, name); err != nil {
		return fmt.Errorf("set default character: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set default: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) AddCharacter(ctx context.Context, name string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin add character: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO characters (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("add character: %w", err)
	}
	if err := r.ensureDefault(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit add character: %w", err)
	}
	return nil
}

// DeleteCharacter removes a roster entry. Stored hunts keep the name; a
// deleted default hands the flag to the oldest remaining entry.
func (r *SQLiteRepository) DeleteCharacter(ctx context.Context, name string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete character: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM characters WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("character %q: %w", name, apperrors.ErrNotFound)
	}
	if err := r.ensureDefault(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete character: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListLocations(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := r.db.SelectContext(ctx, &names, `SELECT name FROM locations ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return names, nil
}

func (r *SQLiteRepository) AddLocation(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO locations (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("add location: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteLocation(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("location %q: %w", name, apperrors.ErrNotFound)
	}
	return nil
}

func upsertNames(ctx context.Context, tx *sqlx.Tx, character, location string) error {
	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO characters (name) VALUES (?)`, character); err != nil {
		return fmt.Errorf("upsert character: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO locations (name) VALUES (?)`, location); err != nil {
		return fmt.Errorf("upsert location: %w", err)
	}
	return nil
}

func insertMonsters(ctx context.Context, tx *sqlx.Tx, huntID int64, monsters []domain.Monster) error {
	if len(monsters) == 0 {
		return nil
	}
	rows := make([]monsterRow, 0, len(monsters))
	for i, m := range monsters {
		rows = append(rows, monsterRow{HuntID: huntID, Position: i, Creature: m.Name, Amount: m.Count})
	}
	const stmt = `INSERT INTO hunt_monsters (hunt_id, position, creature, amount)
VALUES (:hunt_id, :position, :creature, :amount)`
	for _, row := range rows {
		if _, err := tx.NamedExecContext(ctx, stmt, row); err != nil {
			return fmt.Errorf("insert hunt monster: %w", err)
		}
	}
	return nil
}

func whereClause(filter domain.Filter) (string, []any) {
	clauses := make([]string, 0, 6)
	args := make([]any, 0, 6)
	if filter.CharacterScoped() {
		clauses = append(clauses, "h.character_name = ?")
		args = append(args, strings.TrimSpace(filter.Character))
	}
	if filter.LocationLike != "" {
		clauses = append(clauses, "h.location_name LIKE ?")
		args = append(args, "%"+filter.LocationLike+"%")
	}
	if filter.DateStart != "" {
		clauses = append(clauses, "h.date >= ?")
		args = append(args, filter.DateStart)
	}
	if filter.DateEnd != "" {
		clauses = append(clauses, "h.date <= ?")
		args = append(args, filter.DateEnd)
	}
	if filter.ExactDate != "" {
		clauses = append(clauses, "h.date = ?")
		args = append(args, filter.ExactDate)
	}
	if filter.ExactStartTime != "" {
		clauses = append(clauses, "h.start_time = ?")
		args = append(args, filter.ExactStartTime)
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func toRow(h domain.Hunt) huntRow {
	return huntRow{
		ID:          h.ID,
		Character:   h.Character,
		Location:    h.Location,
		Date:        nullable(h.Date),
		StartTime:   nullable(h.StartTime),
		EndTime:     nullable(h.EndTime),
		DurationMin: h.DurationMin,
		RawXP:       h.RawXP,
		XP:          h.XP,
		Loot:        h.Loot,
		Supplies:    h.Supplies,
		Balance:     h.Balance,
		Payment:     h.Payment(),
		Damage:      h.Damage,
		Healing:     h.Healing,
		RawText:     h.RawText,
	}
}

func fromRow(row huntRow, monsters []domain.Monster) domain.Hunt {
	if monsters == nil {
		monsters = []domain.Monster{}
	}
	return domain.Hunt{
		ID:          row.ID,
		Character:   row.Character,
		Location:    row.Location,
		Date:        row.Date.String,
		StartTime:   row.StartTime.String,
		EndTime:     row.EndTime.String,
		DurationMin: row.DurationMin,
		RawXP:       row.RawXP,
		XP:          row.XP,
		Loot:        row.Loot,
		Supplies:    row.Supplies,
		Balance:     row.Balance,
		Damage:      row.Damage,
		Healing:     row.Healing,
		Monsters:    monsters,
		RawText:     row.RawText,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
