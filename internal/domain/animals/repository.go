package animals

import "context"

// Repository es el acceso a la tabla Animal (una sola tabla, discriminada por AnimalType).
type Repository interface {
	// InsertAll persiste todo en una transacción y escribe el ID asignado en cada item.
	InsertAll(ctx context.Context, items []Animal) error
	ListByKind(ctx context.Context, kind Kind) ([]Animal, error)
	// FindByID devuelve todas las filas que coinciden; la cardinalidad la valida Context.
	FindByID(ctx context.Context, kind Kind, id int) ([]Animal, error)
}
