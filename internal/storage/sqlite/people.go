package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lueurxax/greeter/internal/core/domain"
	"github.com/lueurxax/greeter/internal/core/ports"
)

var _ ports.PersonRepository = (*PersonRepository)(nil)

// PersonRepository implements ports.PersonRepository on a SQLite table.
type PersonRepository struct {
	db *DB
}

// NewPersonRepository returns a repository backed by db.
func NewPersonRepository(db *DB) *PersonRepository {
	return &PersonRepository{db: db}
}

const (
	queryInsertPerson = `
		INSERT INTO people (id, first_name, last_name, birth_date)
		VALUES ((SELECT MAX(COALESCE(MAX(id), 0), 0) + 1 FROM people), ?, ?, ?)
		RETURNING id`

	queryUpsertPerson = `
		INSERT INTO people (id, first_name, last_name, birth_date)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name  = excluded.last_name,
			birth_date = excluded.birth_date,
			updated_at = CURRENT_TIMESTAMP`

	queryFindPerson   = `SELECT id, first_name, last_name, birth_date FROM people WHERE id = ?`
	queryListPeople   = `SELECT id, first_name, last_name, birth_date FROM people ORDER BY id`
	queryCountPeople  = `SELECT COUNT(*) FROM people`
	queryDeletePerson = `DELETE FROM people WHERE id = ?`
)

// Save inserts or overwrites p. A zero id is replaced with max(id)+1, never
// less than 1.
func (r *PersonRepository) Save(ctx context.Context, p domain.Person) (domain.Person, error) {
	birth := p.BirthDate.Format(domain.DateLayout)

	if p.ID == 0 {
		if err := r.db.conn.QueryRowContext(ctx, queryInsertPerson, p.First, p.Last, birth).Scan(&p.ID); err != nil {
			return domain.Person{}, fmt.Errorf("insert person: %w", err)
		}

		return p, nil
	}

	if _, err := r.db.conn.ExecContext(ctx, queryUpsertPerson, p.ID, p.First, p.Last, birth); err != nil {
		return domain.Person{}, fmt.Errorf("upsert person %d: %w", p.ID, err)
	}

	return p, nil
}

// FindByID returns the person with id, or ok == false when absent.
func (r *PersonRepository) FindByID(ctx context.Context, id int) (domain.Person, bool, error) {
	p, err := scanPerson(r.db.conn.QueryRowContext(ctx, queryFindPerson, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Person{}, false, nil
	}

	if err != nil {
		return domain.Person{}, false, fmt.Errorf("find person %d: %w", id, err)
	}

	return p, true, nil
}

// FindAll returns all people ordered by id.
func (r *PersonRepository) FindAll(ctx context.Context) ([]domain.Person, error) {
	rows, err := r.db.conn.QueryContext(ctx, queryListPeople)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
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
	var n int
	if err := r.db.conn.QueryRowContext(ctx, queryCountPeople).Scan(&n); err != nil {
		return 0, fmt.Errorf("count people: %w", err)
	}

	return n, nil
}

// Delete removes the person with p.ID. Deleting an absent person is a no-op.
func (r *PersonRepository) Delete(ctx context.Context, p domain.Person) error {
	if _, err := r.db.conn.ExecContext(ctx, queryDeletePerson, p.ID); err != nil {
		return fmt.Errorf("delete person %d: %w", p.ID, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (domain.Person, error) {
	var (
		p     domain.Person
		birth string
	)

	if err := row.Scan(&p.ID, &p.First, &p.Last, &birth); err != nil {
		return domain.Person{}, err //nolint:wrapcheck // callers wrap with the query context
	}

	t, err := time.Parse(domain.DateLayout, birth)
	if err != nil {
		return domain.Person{}, fmt.Errorf("parse birth date %q: %w", birth, err)
	}

	p.BirthDate = t

	return p, nil
}
