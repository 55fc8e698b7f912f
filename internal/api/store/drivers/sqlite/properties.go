package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/wanderstay/wanderstay/internal/api/domain"
)

type propertiesRepo struct {
	db *sql.DB
}

const propertyColumns = `id, host_id, title, description, location, price_per_night,
	bedroom_count, bathroom_count, max_guest_count, rating, image_url, created_at, updated_at`

func (r *propertiesRepo) GetPropertyByID(ctx context.Context, id string) (domain.Property, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id)

	p, err := scanProperty(row.Scan)
	if err != nil {
		return domain.Property{}, mapNotFound(err)
	}
	return p, nil
}

func (r *propertiesRepo) ListProperties(ctx context.Context, location string, minGuests int) ([]domain.Property, error) {
	// LIKE on a substring keeps this index-unfriendly but the catalogue is
	// small; revisit with FTS if listings grow past a few thousand.
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties
		 WHERE (? = '' OR location LIKE '%' || ? || '%')
		   AND (? = 0 OR max_guest_count >= ?)
		 ORDER BY id`,
		location, location, minGuests, minGuests,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *propertiesRepo) CreateProperty(ctx context.Context, p domain.Property) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO properties (id, host_id, title, description, location, price_per_night,
		   bedroom_count, bathroom_count, max_guest_count, rating, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.HostID, p.Title, p.Description, p.Location, p.PricePerNight,
		p.BedroomCount, p.BathroomCount, p.MaxGuestCount, p.Rating,
		mapStringNull(p.ImageURL), now, now,
	)
	return err
}

func scanProperty(scan func(dest ...any) error) (domain.Property, error) {
	var (
		p        domain.Property
		imageURL sql.NullString
	)
	err := scan(
		&p.ID, &p.HostID, &p.Title, &p.Description, &p.Location, &p.PricePerNight,
		&p.BedroomCount, &p.BathroomCount, &p.MaxGuestCount, &p.Rating,
		&imageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}
	p.ImageURL = mapNullString(imageURL)
	return p, nil
}
