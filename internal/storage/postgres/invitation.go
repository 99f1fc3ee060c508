package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventPlanner/internal/models"
	"eventPlanner/internal/rules"
)

const invitationColumns = `i.id, i.event_id, i.recipient_id, i.confirmed, i.expire_at,
		i.created_at, i.updated_at, i.deleted_at, e.end_at`

var invitationOrder = map[string]string{
	"id":        "i.id",
	"createdAt": "i.created_at",
	"expireAt":  "i.expire_at",
}

func scanInvitation(row scanner) (models.Invitation, error) {
	var inv models.Invitation
	err := row.Scan(
		&inv.ID,
		&inv.EventID,
		&inv.RecipientID,
		&inv.Confirmed,
		&inv.ExpireAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
		&inv.DeletedAt,
		&inv.EventEndAt,
	)
	return inv, err
}

// lockInvitation reads a live invitation and locks its row until the transaction ends.
func lockInvitation(ctx context.Context, tx *sql.Tx, id int64) (models.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations i
		JOIN events e ON e.id = i.event_id
		WHERE i.id = $1 AND i.deleted_at IS NULL
		FOR UPDATE OF i`

	inv, err := scanInvitation(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invitation{}, rules.ErrInvitationNotFound
		}
		return models.Invitation{}, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, eventID, recipientID int64, expireAt *time.Time, now time.Time) (models.Invitation, error) {
	const op = "storage.postgres.CreateInvitation"

	var inv models.Invitation

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		event, err := loadEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}

		recipient, err := getUser(ctx, tx, recipientID, rules.ErrUserNotFound)
		if err != nil {
			return err
		}

		inv, err = rules.NewInvitation(event, recipient, expireAt, now)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO invitations (event_id, recipient_id, confirmed, expire_at, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`

		err = tx.QueryRowContext(ctx, query, inv.EventID, inv.RecipientID, inv.Confirmed, inv.ExpireAt, inv.CreatedAt).
			Scan(&inv.ID)
		if err != nil {
			return fmt.Errorf("failed to create invitation: %w", translate(err))
		}

		return nil
	})
	if err != nil {
		return models.Invitation{}, fmt.Errorf("%s: %w", op, err)
	}

	return inv, nil
}

// GetInvitation returns a live invitation together with its event.
func (s *Storage) GetInvitation(ctx context.Context, id int64) (models.Invitation, models.Event, error) {
	const op = "storage.postgres.GetInvitation"

	query := `
		SELECT ` + invitationColumns + `, e.organizer_id, e.title
		FROM invitations i
		JOIN events e ON e.id = i.event_id
		WHERE i.id = $1 AND i.deleted_at IS NULL`

	var inv models.Invitation
	var event models.Event
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&inv.ID,
		&inv.EventID,
		&inv.RecipientID,
		&inv.Confirmed,
		&inv.ExpireAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
		&inv.DeletedAt,
		&inv.EventEndAt,
		&event.OrganizerID,
		&event.Title,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invitation{}, models.Event{}, fmt.Errorf("%s: %w", op, rules.ErrInvitationNotFound)
		}
		return models.Invitation{}, models.Event{}, fmt.Errorf("%s: failed to get invitation: %w", op, err)
	}

	event.ID = inv.EventID
	event.EndAt = inv.EventEndAt

	return inv, event, nil
}

func (s *Storage) UpdateInvitation(ctx context.Context, id, eventID, recipientID int64, expireAt *time.Time, now time.Time) (models.Invitation, error) {
	const op = "storage.postgres.UpdateInvitation"

	var revised models.Invitation

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := lockInvitation(ctx, tx, id)
		if err != nil {
			return err
		}

		event, err := loadEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}

		recipient, err := getUser(ctx, tx, recipientID, rules.ErrUserNotFound)
		if err != nil {
			return err
		}

		revised, err = rules.ReviseInvitation(current, event, recipient, expireAt, now)
		if err != nil {
			return err
		}

		query := `
			UPDATE invitations
			SET event_id = $1, recipient_id = $2, expire_at = $3, updated_at = $4
			WHERE id = $5`

		_, err = tx.ExecContext(ctx, query, revised.EventID, revised.RecipientID, revised.ExpireAt, now, id)
		if err != nil {
			return fmt.Errorf("failed to update invitation: %w", translate(err))
		}

		return nil
	})
	if err != nil {
		return models.Invitation{}, fmt.Errorf("%s: %w", op, err)
	}

	return revised, nil
}

// ConfirmInvitation accepts the invitation if it has not expired at now.
// Nothing is written when the check fails.
func (s *Storage) ConfirmInvitation(ctx context.Context, id int64, now time.Time) (models.Invitation, error) {
	const op = "storage.postgres.ConfirmInvitation"

	var confirmed models.Invitation

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := lockInvitation(ctx, tx, id)
		if err != nil {
			return err
		}

		confirmed, err = rules.Confirm(current, now)
		if err != nil {
			return err
		}

		query := `
			UPDATE invitations
			SET confirmed = true, updated_at = $1
			WHERE id = $2`

		if _, err = tx.ExecContext(ctx, query, now, id); err != nil {
			return fmt.Errorf("failed to confirm invitation: %w", err)
		}

		return nil
	})
	if err != nil {
		return models.Invitation{}, fmt.Errorf("%s: %w", op, err)
	}

	return confirmed, nil
}

// DeleteInvitation soft-deletes a live invitation.
func (s *Storage) DeleteInvitation(ctx context.Context, id int64, now time.Time) error {
	const op = "storage.postgres.DeleteInvitation"

	query := `
		UPDATE invitations
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL`

	return execOne(ctx, s.DB, op, query, rules.ErrInvitationNotFound, now, id)
}

// PurgeInvitation removes the invitation row, soft-deleted or not.
func (s *Storage) PurgeInvitation(ctx context.Context, id int64) error {
	const op = "storage.postgres.PurgeInvitation"

	return execOne(ctx, s.DB, op, `DELETE FROM invitations WHERE id = $1`, rules.ErrInvitationNotFound, id)
}

func (s *Storage) ListInvitations(ctx context.Context, q models.ListQuery[models.InvitationFilter], now time.Time) ([]models.Invitation, int, error) {
	const op = "storage.postgres.ListInvitations"

	w := &where{}
	w.add("i.deleted_at IS NULL")

	f := q.Filter
	if f.ID != nil {
		w.add("i.id = ?", *f.ID)
	}
	if f.EventID != nil {
		w.add("i.event_id = ?", *f.EventID)
	}
	if f.RecipientID != nil {
		w.add("i.recipient_id = ?", *f.RecipientID)
	}
	if f.Confirmed != nil {
		w.add("i.confirmed = ?", *f.Confirmed)
	}
	if f.Expired != nil {
		// same fallback as rules.IsExpired
		if *f.Expired {
			w.add("COALESCE(i.expire_at, e.end_at) < ?", now)
		} else {
			w.add("COALESCE(i.expire_at, e.end_at) >= ?", now)
		}
	}
	w.addRange("i.expire_at", f.ExpireAt)

	from := `
		FROM invitations i
		JOIN events e ON e.id = i.event_id` + w.String()

	total, err := countRows(ctx, s.DB, "SELECT COUNT(*)"+from, w.args)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query := "SELECT " + invitationColumns + from + orderBy(q.Order, invitationOrder, "i.id ASC") + w.page(q.Page)

	rows, err := s.DB.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: failed to get invitations: %w", op, err)
	}
	defer rows.Close()

	invitations := []models.Invitation{}
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: failed to scan invitation: %w", op, err)
		}
		inv.Expired = rules.IsExpired(inv, now)
		invitations = append(invitations, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: error iterating invitations: %w", op, err)
	}

	return invitations, total, nil
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, q querier, op, query string, notFound error, args ...any) error {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translate(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, notFound)
	}

	return nil
}
