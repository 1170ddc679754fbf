package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"animal-sounds/internal/domain/animals"
)

type AnimalsRepo struct {
	db *DB

	insertSQL   string
	listSQL     string
	findByIDSQL string
}

func NewAnimalsRepo(db *DB) *AnimalsRepo {
	b := db.dialect.bind
	return &AnimalsRepo{
		db: db,
		insertSQL: fmt.Sprintf(`
			INSERT INTO "Animal" ("Name", "AnimalType", "CatData")
			VALUES (%s, %s, %s)
			RETURNING "Id"
		`, b(1), b(2), b(3)),
		listSQL: fmt.Sprintf(`
			SELECT "Id", "Name", "AnimalType", "CatData"
			FROM "Animal"
			WHERE "AnimalType" = %s
			ORDER BY "Id" ASC
		`, b(1)),
		findByIDSQL: fmt.Sprintf(`
			SELECT "Id", "Name", "AnimalType", "CatData"
			FROM "Animal"
			WHERE "AnimalType" = %s AND "Id" = %s
		`, b(1), b(2)),
	}
}

// InsertAll inserta todo en una transacción. Los IDs se escriben en los
// items recién después del commit, así un rollback no deja IDs a medias.
func (r *AnimalsRepo) InsertAll(ctx context.Context, items []animals.Animal) error {
	if len(items) == 0 {
		return nil
	}

	// nada de re-insertar algo ya persistido: el ID no se vuelve a asignar
	for i, a := range items {
		if id := a.Entity().ID; id != 0 {
			return fmt.Errorf("insert item %d: %w: id %d", i, animals.ErrAlreadyPersisted, id)
		}
	}

	ids := make([]int, len(items))
	err := r.db.Transaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, r.insertSQL)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, a := range items {
			if !a.Kind().Valid() {
				return fmt.Errorf("insert item %d: %w: %q", i, animals.ErrUnknownKind, a.Kind())
			}
			if err := stmt.QueryRowContext(ctx,
				a.Entity().Name,
				string(a.Kind()),
				toNullString(animals.CatDataOf(a)),
			).Scan(&ids[i]); err != nil {
				return fmt.Errorf("insert item %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i, a := range items {
		a.Entity().ID = ids[i]
	}
	return nil
}

func (r *AnimalsRepo) ListByKind(ctx context.Context, kind animals.Kind) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, r.listSQL, string(kind))
	if err != nil {
		return nil, err
	}
	return scanAnimals(rows)
}

func (r *AnimalsRepo) FindByID(ctx context.Context, kind animals.Kind, id int) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, r.findByIDSQL, string(kind), id)
	if err != nil {
		return nil, err
	}
	return scanAnimals(rows)
}

func scanAnimals(rows *sql.Rows) ([]animals.Animal, error) {
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		var (
			id      int
			name    string
			typ     string
			catData sql.NullString
		)
		if err := rows.Scan(&id, &name, &typ, &catData); err != nil {
			return nil, err
		}

		kind, err := animals.ParseKind(typ)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", id, err)
		}

		a, err := animals.Materialize(kind, id, name, fromNullString(catData))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

// CatData es nullable: los perros se guardan con NULL.
func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	return &n.String
}
