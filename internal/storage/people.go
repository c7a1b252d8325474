package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/ports"
)

var _ ports.PersonRepository = (*PersonRepository)(nil)

// PersonRepository implements ports.PersonRepository on the people table.
type PersonRepository struct {
	db *DB
}

// NewPersonRepository returns a Postgres-backed person repository.
func NewPersonRepository(db *DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Save inserts or overwrites p. A zero id is replaced with max(id)+1, never
// less than 1.
func (r *PersonRepository) Save(ctx context.Context, p domain.Person) (domain.Person, error) {
	if p.ID == 0 {
		var id int32

		err := r.db.Pool.QueryRow(ctx, `
			INSERT INTO people (id, first_name, last_name, birth_date)
			VALUES ((SELECT GREATEST(COALESCE(MAX(id), 0), 0) + 1 FROM people), $1, $2, $3)
			RETURNING id
		`, toText(p.First), toText(p.Last), toDate(p.BirthDate)).Scan(&id)
		if err != nil {
			return domain.Person{}, fmt.Errorf("insert person: %w", err)
		}

		p.ID = int(id)

		return p, nil
	}

	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO people (id, first_name, last_name, birth_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name  = EXCLUDED.last_name,
			birth_date = EXCLUDED.birth_date,
			updated_at = now()
	`, p.ID, toText(p.First), toText(p.Last), toDate(p.BirthDate))
	if err != nil {
		return domain.Person{}, fmt.Errorf("upsert person %d: %w", p.ID, err)
	}

	return p, nil
}

// FindByID returns the person with id, or ok == false when absent.
func (r *PersonRepository) FindByID(ctx context.Context, id int) (domain.Person, bool, error) {
	row := r.db.Pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, birth_date
		FROM people
		WHERE id = $1
	`, id)

	p, err := scanPerson(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Person{}, false, nil
	}

	if err != nil {
		return domain.Person{}, false, fmt.Errorf("find person %d: %w", id, err)
	}

	return p, true, nil
}

// FindAll returns all people ordered by id.
func (r *PersonRepository) FindAll(ctx context.Context) ([]domain.Person, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, first_name, last_name, birth_date
		FROM people
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	res := []domain.Person{}

	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person row: %w", err)
		}

		res = append(res, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate person rows: %w", err)
	}

	return res, nil
}

// Count returns the number of stored people.
func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM people`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count people: %w", err)
	}

	return int(n), nil
}

// Delete removes the person with p.ID. Deleting an absent person is a no-op.
func (r *PersonRepository) Delete(ctx context.Context, p domain.Person) error {
	if _, err := r.db.Pool.Exec(ctx, `DELETE FROM people WHERE id = $1`, p.ID); err != nil {
		return fmt.Errorf("delete person %d: %w", p.ID, err)
	}

	return nil
}

// Truncate removes every person. Used to reset integration fixtures.
func (r *PersonRepository) Truncate(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, `TRUNCATE people`); err != nil {
		return fmt.Errorf("truncate people: %w", err)
	}

	return nil
}

func scanPerson(row pgx.Row) (domain.Person, error) {
	var (
		id          int32
		first, last pgtype.Text
		birth       pgtype.Date
	)

	if err := row.Scan(&id, &first, &last, &birth); err != nil {
		return domain.Person{}, err //nolint:wrapcheck // callers wrap with the query context
	}

	return domain.Person{
		ID:        int(id),
		First:     fromText(first),
		Last:      fromText(last),
		BirthDate: fromDate(birth),
	}, nil
}
