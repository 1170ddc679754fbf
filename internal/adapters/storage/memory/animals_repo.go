package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"animal-sounds/internal/domain/animals"
)

// row guarda una copia; el repo nunca comparte punteros con quien llama.
type row struct {
	kind    animals.Kind
	id      int
	name    string
	catData *string
}

type AnimalsRepo struct {
	mu     sync.RWMutex
	rows   []row
	nextID int
}

// NewAnimalsRepo crea un repo vacío (modo dev, sin DB).
func NewAnimalsRepo() *AnimalsRepo {
	return &AnimalsRepo{nextID: 1}
}

// Seed inserta filas con el ID ya fijado (fixtures / dev).
// El próximo ID generado queda por encima del mayor sembrado.
func (r *AnimalsRepo) Seed(items ...animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range items {
		if a == nil {
			continue
		}
		if !a.Kind().Valid() {
			return animals.ErrUnknownKind
		}
		rw := toRow(a)
		if rw.id <= 0 {
			return errors.New("seed requires an explicit id")
		}
		r.rows = append(r.rows, rw)
		if rw.id >= r.nextID {
			r.nextID = rw.id + 1
		}
	}
	return nil
}

func (r *AnimalsRepo) InsertAll(ctx context.Context, items []animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// validar todo antes de tocar nada => todo o nada
	for _, a := range items {
		if a == nil {
			return errors.New("nil animal")
		}
		if !a.Kind().Valid() {
			return animals.ErrUnknownKind
		}
		if a.Entity().ID != 0 {
			return fmt.Errorf("%w: id %d", animals.ErrAlreadyPersisted, a.Entity().ID)
		}
	}

	for _, a := range items {
		a.Entity().ID = r.nextID
		r.nextID++
		r.rows = append(r.rows, toRow(a))
	}
	return nil
}

func (r *AnimalsRepo) ListByKind(ctx context.Context, kind animals.Kind) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(rw row) bool { return rw.kind == kind })
}

func (r *AnimalsRepo) FindByID(ctx context.Context, kind animals.Kind, id int) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(rw row) bool { return rw.kind == kind && rw.id == id })
}

func (r *AnimalsRepo) filter(match func(row) bool) ([]animals.Animal, error) {
	picked := make([]row, 0)
	for _, rw := range r.rows {
		if match(rw) {
			picked = append(picked, rw)
		}
	}

	// mismo orden que ORDER BY "Id"
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].id < picked[j].id })

	out := make([]animals.Animal, 0, len(picked))
	for _, rw := range picked {
		a, err := animals.Materialize(rw.kind, rw.id, rw.name, rw.catData)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func toRow(a animals.Animal) row {
	b := a.Entity()
	return row{
		kind:    a.Kind(),
		id:      b.ID,
		name:    b.Name,
		catData: animals.CatDataOf(a),
	}
}
