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

const placeColumns = `p.id, p.name, p.street_number, p.street_name, p.city, p.postal_code, p.country,
		p.created_at, p.updated_at, p.deleted_at`

var placeOrder = map[string]string{
	"id":        "p.id",
	"name":      "p.name",
	"createdAt": "p.created_at",
}

func scanPlace(row scanner) (models.Place, error) {
	var p models.Place
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.StreetNumber,
		&p.StreetName,
		&p.City,
		&p.PostalCode,
		&p.Country,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	)
	return p, err
}

// placeNamed returns the place holding name, soft-deleted or not, or nil.
func placeNamed(ctx context.Context, q querier, name string) (*models.Place, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM places p
		WHERE p.name = $1`

	p, err := scanPlace(q.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get place by name: %w", err)
	}

	return &p, nil
}

// translatePlace reports a name clash caught by uq_name_idx the way rules.NewPlace does.
func translatePlace(err error, name string) error {
	if uniqueConstraint(err) == "uq_name_idx" {
		return rules.PlaceNameTaken(name)
	}
	return translate(err)
}

func (s *Storage) CreatePlace(ctx context.Context, place models.Place, now time.Time) (models.Place, error) {
	const op = "storage.postgres.CreatePlace"

	var created models.Place

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		holder, err := placeNamed(ctx, tx, place.Name)
		if err != nil {
			return err
		}

		created, err = rules.NewPlace(place, holder, now)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO places (name, street_number, street_name, city, postal_code, country, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`

		err = tx.QueryRowContext(ctx, query,
			created.Name,
			created.StreetNumber,
			created.StreetName,
			created.City,
			created.PostalCode,
			created.Country,
			created.CreatedAt,
		).Scan(&created.ID)
		if err != nil {
			return fmt.Errorf("failed to create place: %w", translatePlace(err, created.Name))
		}

		return nil
	})
	if err != nil {
		return models.Place{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Storage) GetPlace(ctx context.Context, id int64) (models.Place, error) {
	const op = "storage.postgres.GetPlace"

	query := `
		SELECT ` + placeColumns + `
		FROM places p
		WHERE p.id = $1 AND p.deleted_at IS NULL`

	p, err := scanPlace(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Place{}, fmt.Errorf("%s: %w", op, rules.ErrPlaceNotFound)
		}
		return models.Place{}, fmt.Errorf("%s: failed to get place: %w", op, err)
	}

	return p, nil
}

func (s *Storage) UpdatePlace(ctx context.Context, id int64, update models.Place, now time.Time) (models.Place, error) {
	const op = "storage.postgres.UpdatePlace"

	var revised models.Place

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		query := `
			SELECT ` + placeColumns + `
			FROM places p
			WHERE p.id = $1 AND p.deleted_at IS NULL
			FOR UPDATE`

		current, err := scanPlace(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return rules.ErrPlaceNotFound
			}
			return fmt.Errorf("failed to get place: %w", err)
		}

		holder, err := placeNamed(ctx, tx, update.Name)
		if err != nil {
			return err
		}

		revised, err = rules.RevisePlace(current, update, holder, now)
		if err != nil {
			return err
		}

		stmt := `
			UPDATE places
			SET name = $1, street_number = $2, street_name = $3, city = $4,
			    postal_code = $5, country = $6, updated_at = $7
			WHERE id = $8`

		_, err = tx.ExecContext(ctx, stmt,
			revised.Name,
			revised.StreetNumber,
			revised.StreetName,
			revised.City,
			revised.PostalCode,
			revised.Country,
			now,
			id,
		)
		if err != nil {
			return fmt.Errorf("failed to update place: %w", translatePlace(err, revised.Name))
		}

		return nil
	})
	if err != nil {
		return models.Place{}, fmt.Errorf("%s: %w", op, err)
	}

	return revised, nil
}

func (s *Storage) DeletePlace(ctx context.Context, id int64, now time.Time) error {
	const op = "storage.postgres.DeletePlace"

	query := `
		UPDATE places
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL`

	return execOne(ctx, s.DB, op, query, rules.ErrPlaceNotFound, now, id)
}

func (s *Storage) PurgePlace(ctx context.Context, id int64) error {
	const op = "storage.postgres.PurgePlace"

	return execOne(ctx, s.DB, op, `DELETE FROM places WHERE id = $1`, rules.ErrPlaceNotFound, id)
}

func (s *Storage) ListPlaces(ctx context.Context, q models.ListQuery[models.PlaceFilter]) ([]models.Place, int, error) {
	const op = "storage.postgres.ListPlaces"

	w := &where{}
	w.add("p.deleted_at IS NULL")

	f := q.Filter
	if f.ID != nil {
		w.add("p.id = ?", *f.ID)
	}
	w.addPartial("p.name", f.Name)
	w.addPartial("p.street_number", f.StreetNumber)
	w.addPartial("p.street_name", f.StreetName)
	w.addPartial("p.city", f.City)
	w.addPartial("p.postal_code", f.PostalCode)
	w.addPartial("p.country", f.Country)

	from := `
		FROM places p` + w.String()

	total, err := countRows(ctx, s.DB, "SELECT COUNT(*)"+from, w.args)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query := "SELECT " + placeColumns + from + orderBy(q.Order, placeOrder, "p.id ASC") + w.page(q.Page)

	rows, err := s.DB.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: failed to get places: %w", op, err)
	}
	defer rows.Close()

	places := []models.Place{}
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: failed to scan place: %w", op, err)
		}
		places = append(places, p)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: error iterating places: %w", op, err)
	}

	return places, total, nil
}
