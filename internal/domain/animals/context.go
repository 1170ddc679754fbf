package animals

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrCardinality = errors.New("expected exactly one row")
	ErrNotFound    = fmt.Errorf("%w: not found", ErrCardinality)
	ErrNotUnique   = fmt.Errorf("%w: more than one match", ErrCardinality)

	// ErrAlreadyPersisted: el item ya tiene ID asignado por el store.
	ErrAlreadyPersisted = errors.New("animal already persisted")
)

// Context es el unit of work de un request: junta altas pendientes
// hasta SaveChanges y expone vistas tipadas (Cats / Dogs) sobre el repo.
// No es seguro para uso concurrente; se crea uno por request.
type Context struct {
	repo    Repository
	pending []Animal
}

func NewContext(repo Repository) *Context {
	return &Context{repo: repo}
}

func (c *Context) AddCat(cat *Cat) {
	if cat == nil {
		return
	}
	c.stage(cat)
}

func (c *Context) AddDog(dog *Dog) {
	if dog == nil {
		return
	}
	c.stage(dog)
}

// stage agrega una sola vez cada instancia (comparación por puntero).
func (c *Context) stage(a Animal) {
	for _, p := range c.pending {
		if p == a {
			return
		}
	}
	c.pending = append(c.pending, a)
}

func (c *Context) Pending() int {
	return len(c.pending)
}

// SaveChanges hace flush de todo lo pendiente en una sola transacción.
// Si falla, lo pendiente se conserva.
func (c *Context) SaveChanges(ctx context.Context) (int, error) {
	if len(c.pending) == 0 {
		return 0, nil
	}

	if err := c.repo.InsertAll(ctx, c.pending); err != nil {
		return 0, fmt.Errorf("save changes: %w", err)
	}

	n := len(c.pending)
	c.pending = nil
	return n, nil
}

// Discard descarta lo pendiente (fin del request).
func (c *Context) Discard() {
	c.pending = nil
}

func (c *Context) Cats(ctx context.Context) ([]*Cat, error) {
	items, err := c.repo.ListByKind(ctx, KindCat)
	if err != nil {
		return nil, err
	}
	return collect[*Cat](items)
}

func (c *Context) Dogs(ctx context.Context) ([]*Dog, error) {
	items, err := c.repo.ListByKind(ctx, KindDog)
	if err != nil {
		return nil, err
	}
	return collect[*Dog](items)
}

func (c *Context) SingleCat(ctx context.Context, id int) (*Cat, error) {
	return single[*Cat](ctx, c.repo, KindCat, id)
}

func (c *Context) SingleDog(ctx context.Context, id int) (*Dog, error) {
	return single[*Dog](ctx, c.repo, KindDog, id)
}

func single[T Animal](ctx context.Context, repo Repository, kind Kind, id int) (T, error) {
	var zero T

	items, err := repo.FindByID(ctx, kind, id)
	if err != nil {
		return zero, err
	}

	switch len(items) {
	case 0:
		return zero, fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	case 1:
	default:
		return zero, fmt.Errorf("%s %d: %w (%d rows)", kind, id, ErrNotUnique, len(items))
	}

	v, ok := items[0].(T)
	if !ok {
		return zero, fmt.Errorf("%s %d: %w: got %s", kind, id, ErrUnknownKind, items[0].Kind())
	}
	return v, nil
}

func collect[T Animal](items []Animal) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, a := range items {
		v, ok := a.(T)
		if !ok {
			return nil, fmt.Errorf("%w: got %s", ErrUnknownKind, a.Kind())
		}
		out = append(out, v)
	}
	return out, nil
}
