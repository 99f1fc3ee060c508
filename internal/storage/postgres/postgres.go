package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eventPlanner/internal/config"
	"eventPlanner/internal/models"
	"eventPlanner/internal/rules"
)

//go:embed schema.sql
var schema string

const uniqueViolation = pq.ErrorCode("23505")

type Storage struct {
	DB *sql.DB
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := New(db)

	if err = s.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func New(db *sql.DB) *Storage {
	return &Storage{DB: db}
}

// Migrate creates missing tables and unique constraints.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// inTx runs fn in one transaction, committing only if fn succeeds.
func (s *Storage) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// uniqueConstraint names the constraint behind a postgres unique violation, or "".
func uniqueConstraint(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return ""
	}
	return pqErr.Constraint
}

// translate maps constraint violations raised by postgres onto domain violations.
func translate(err error) error {
	switch uniqueConstraint(err) {
	case "uq_event_recipient_idx":
		return rules.ErrAlreadyInvited
	case "uq_author_event_idx":
		return rules.ErrAlreadyCommented
	default:
		return err
	}
}

func (s *Storage) GetEvent(ctx context.Context, id int64) (models.Event, error) {
	const op = "storage.postgres.GetEvent"

	event, err := getEvent(ctx, s.DB, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func getEvent(ctx context.Context, q querier, id int64) (models.Event, error) {
	query := `
		SELECT id, organizer_id, title, end_at
		FROM events
		WHERE id = $1`

	var event models.Event
	err := q.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.OrganizerID,
		&event.Title,
		&event.EndAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, rules.ErrEventNotFound
		}
		return models.Event{}, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// loadEvent returns the event with every invitation and comment attached to it,
// soft-deleted ones included.
func loadEvent(ctx context.Context, q querier, id int64) (models.Event, error) {
	event, err := getEvent(ctx, q, id)
	if err != nil {
		return models.Event{}, err
	}

	participantsQuery := `
		SELECT id, event_id, recipient_id, confirmed, expire_at, created_at, updated_at, deleted_at
		FROM invitations
		WHERE event_id = $1
		ORDER BY id`

	rows, err := q.QueryContext(ctx, participantsQuery, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var inv models.Invitation
		err = rows.Scan(
			&inv.ID,
			&inv.EventID,
			&inv.RecipientID,
			&inv.Confirmed,
			&inv.ExpireAt,
			&inv.CreatedAt,
			&inv.UpdatedAt,
			&inv.DeletedAt,
		)
		if err != nil {
			return models.Event{}, fmt.Errorf("failed to scan participant: %w", err)
		}
		inv.EventEndAt = event.EndAt
		event.Participants = append(event.Participants, inv)
	}

	if err = rows.Err(); err != nil {
		return models.Event{}, fmt.Errorf("error iterating participants: %w", err)
	}

	commentsQuery := `
		SELECT ` + commentColumns + `
		FROM comments c
		WHERE c.event_id = $1
		ORDER BY c.id`

	commentRows, err := q.QueryContext(ctx, commentsQuery, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to get comments: %w", err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		c, err := scanComment(commentRows)
		if err != nil {
			return models.Event{}, fmt.Errorf("failed to scan comment: %w", err)
		}
		event.Comments = append(event.Comments, c)
	}

	if err = commentRows.Err(); err != nil {
		return models.Event{}, fmt.Errorf("error iterating comments: %w", err)
	}

	return event, nil
}

// getUser returns the user or notFound when it does not exist.
func (s *Storage) GetUser(ctx context.Context, id int64) (models.User, error) {
	const op = "storage.postgres.GetUser"

	user, err := getUser(ctx, s.DB, id, rules.ErrUnknownUser)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func getUser(ctx context.Context, q querier, id int64, notFound error) (models.User, error) {
	query := `
		SELECT id, email, username
		FROM users
		WHERE id = $1`

	var user models.User
	err := q.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, notFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// where accumulates AND-ed conditions written with "?" placeholders.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, args ...any) {
	for _, arg := range args {
		w.args = append(w.args, arg)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

// addRange bounds a nullable column; rows holding NULL are excluded.
func (w *where) addRange(column string, r models.DateRange) {
	if r.IsZero() {
		return
	}

	w.add(column + " IS NOT NULL")
	if r.Before != nil {
		w.add(column+" <= ?", *r.Before)
	}
	if r.StrictlyBefore != nil {
		w.add(column+" < ?", *r.StrictlyBefore)
	}
	if r.After != nil {
		w.add(column+" >= ?", *r.After)
	}
	if r.StrictlyAfter != nil {
		w.add(column+" > ?", *r.StrictlyAfter)
	}
}

func (w *where) addPartial(column, value string) {
	if value == "" {
		return
	}
	w.add(column+" ILIKE ?", "%"+escapeLike(value)+"%")
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page appends LIMIT and OFFSET placeholders and returns the clause.
func (w *where) page(p models.Page) string {
	w.args = append(w.args, p.ItemsPerPage, p.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(w.args)-1, len(w.args))
}

// orderBy renders orders against the allowed API field -> column mapping.
// Unknown fields are skipped; fallback applies when nothing remains.
func orderBy(orders []models.Order, columns map[string]string, fallback string) string {
	var parts []string
	for _, o := range orders {
		column, ok := columns[o.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, column+" "+dir)
	}

	if len(parts) == 0 {
		return " ORDER BY " + fallback
	}

	return " ORDER BY " + strings.Join(parts, ", ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func countRows(ctx context.Context, q querier, query string, args []any) (int, error) {
	var total int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return total, nil
}
