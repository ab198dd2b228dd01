package contact

import (
	"database/sql"
)

// Postgres repository stores contacts in a single table keyed by id.
// Table layout expected:
//   id text primary key,
//   name text not null,
//   phone text not null,
//   email text not null,
//   address text not null

type PostgresRepository struct {
	db *sql.DB
}

const (
	createTableQuery = `
        CREATE TABLE IF NOT EXISTS contacts (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            phone TEXT NOT NULL,
            email TEXT NOT NULL,
            address TEXT NOT NULL
        )
    `
	insertContactQuery = `
        INSERT INTO contacts (id, name, phone, email, address)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, name, phone, email, address
    `
	updateContactQuery = `
        UPDATE contacts
        SET name=$2, phone=$3, email=$4, address=$5
        WHERE id=$1
        RETURNING id, name, phone, email, address
    `
	deleteContactQuery = `
        DELETE FROM contacts WHERE id=$1
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the contacts table when it does not exist yet. There is
// no migration story beyond this.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(createTableQuery)
	return err
}

func (r *PostgresRepository) List() ([]Contact, error) {
	rows, err := r.db.Query(`SELECT id, name, phone, email, address FROM contacts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Contact, 0)
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Contact, error) {
	var c Contact
	err := r.db.QueryRow(`SELECT id, name, phone, email, address FROM contacts WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address)
	if err != nil {
		if err == sql.ErrNoRows {
			return c, ErrNotFound
		}
		return c, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(c Contact) (Contact, error) {
	var created Contact
	if err := r.db.QueryRow(insertContactQuery, c.ID, c.Name, c.Phone, c.Email, c.Address).
		Scan(&created.ID, &created.Name, &created.Phone, &created.Email, &created.Address); err != nil {
		return created, err
	}
	return created, nil
}

func (r *PostgresRepository) Update(c Contact) (Contact, error) {
	var updated Contact
	if err := r.db.QueryRow(updateContactQuery, c.ID, c.Name, c.Phone, c.Email, c.Address).
		Scan(&updated.ID, &updated.Name, &updated.Phone, &updated.Email, &updated.Address); err != nil {
		if err == sql.ErrNoRows {
			return updated, ErrNotFound
		}
		return updated, err
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deleteContactQuery, id)
	if err != nil {
		return err
	}
	cnt, _ := res.RowsAffected()
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}
