package animals

import (
	"context"
	"errors"
	"sort"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	rows      []Animal
	nextID    int
	insertErr error
	inserts   int
}

func newTestRepo(seed ...Animal) *testRepo {
	r := &testRepo{nextID: 1}
	for _, a := range seed {
		r.rows = append(r.rows, a)
		if id := a.Entity().ID; id >= r.nextID {
			r.nextID = id + 1
		}
	}
	return r
}

func (r *testRepo) InsertAll(ctx context.Context, items []Animal) error {
	r.inserts++
	if r.insertErr != nil {
		return r.insertErr
	}
	for _, a := range items {
		a.Entity().ID = r.nextID
		r.nextID++
		r.rows = append(r.rows, a)
	}
	return nil
}

func (r *testRepo) ListByKind(ctx context.Context, kind Kind) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.rows {
		if a.Kind() == kind {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Entity().ID < out[j].Entity().ID })
	return out, nil
}

func (r *testRepo) FindByID(ctx context.Context, kind Kind, id int) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.rows {
		if a.Kind() == kind && a.Entity().ID == id {
			out = append(out, a)
		}
	}
	return out, nil
}

func cat(id int, name string) *Cat {
	return &Cat{Base: Base{ID: id, Name: name}}
}

func dog(id int, name string) *Dog {
	return &Dog{Base: Base{ID: id, Name: name}}
}

// -------------------------
// Tests
// -------------------------

func TestService_CreateSamples_OneCatOneDog(t *testing.T) {
	repo := newTestRepo(cat(1, "old"), dog(2, "old"))
	svc := NewService(NewContext(repo))

	if err := svc.CreateSamples(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.inserts != 1 {
		t.Fatalf("expected a single flush, got %d", repo.inserts)
	}

	cats, _ := repo.ListByKind(context.Background(), KindCat)
	dogs, _ := repo.ListByKind(context.Background(), KindDog)
	if len(cats) != 2 || len(dogs) != 2 {
		t.Fatalf("expected 2 cats and 2 dogs, got %d/%d", len(cats), len(dogs))
	}

	newCat := cats[1].(*Cat)
	newDog := dogs[1].(*Dog)
	if newCat.Name != "Cat2" || newCat.CatData != "cat data 1" {
		t.Fatalf("unexpected cat: %+v", newCat)
	}
	if newDog.Name != "Dog2" {
		t.Fatalf("unexpected dog: %+v", newDog)
	}
	if newCat.ID <= 2 || newDog.ID <= 2 || newCat.ID == newDog.ID {
		t.Fatalf("expected fresh distinct ids, got cat=%d dog=%d", newCat.ID, newDog.ID)
	}
}

func TestService_Sounds(t *testing.T) {
	repo := newTestRepo(cat(7, "Tom"), dog(8, "Rex"))
	svc := NewService(NewContext(repo))

	got, err := svc.Sounds(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Cat != "'7' 'Tom' Cat sound" {
		t.Fatalf("cat: got %q", got.Cat)
	}
	if got.Dog != "'8' 'Rex' Dog sound" {
		t.Fatalf("dog: got %q", got.Dog)
	}
}

func TestService_CatSound_Cardinality(t *testing.T) {
	tests := []struct {
		name string
		seed []Animal
		want error
	}{
		{name: "none", seed: nil, want: ErrNotFound},
		{name: "dog at 7 is not a cat", seed: []Animal{dog(7, "Rex")}, want: ErrNotFound},
		{name: "duplicated", seed: []Animal{cat(7, "A"), cat(7, "B")}, want: ErrNotUnique},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(NewContext(newTestRepo(tc.seed...)))

			_, err := svc.CatSound(context.Background())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, ErrCardinality) {
				t.Fatalf("expected ErrCardinality, got %v", err)
			}
		})
	}
}

func TestService_DogSound_NotFound(t *testing.T) {
	svc := NewService(NewContext(newTestRepo(cat(8, "Tom"))))

	if _, err := svc.DogSound(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Sounds_StopsOnCatFailure(t *testing.T) {
	svc := NewService(NewContext(newTestRepo(dog(8, "Rex"))))

	if _, err := svc.Sounds(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_List_CatsThenDogs(t *testing.T) {
	repo := newTestRepo(dog(1, "Rex"), cat(2, "Tom"), cat(3, "Felix"))
	svc := NewService(NewContext(repo))

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := []Kind{KindCat, KindCat, KindDog}
	for i, a := range items {
		if a.Kind() != want[i] {
			t.Fatalf("item %d: expected %s, got %s", i, want[i], a.Kind())
		}
	}
}
