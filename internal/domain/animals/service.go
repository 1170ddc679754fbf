package animals

import (
	"context"
)

// IDs fijos que consulta /get-sound.
const (
	CatSoundID = 7
	DogSoundID = 8
)

// Service orquesta los casos de uso sobre el Context del request.
type Service struct {
	db *Context
}

func NewService(db *Context) *Service {
	return &Service{db: db}
}

// Sounds es el payload de /get-sound.
type Sounds struct {
	Cat string
	Dog string
}

// CreateSamples crea un gato y un perro de ejemplo en un único flush.
func (s *Service) CreateSamples(ctx context.Context) error {
	cat := NewCat()
	cat.Name = "Cat2"
	cat.CatData = "cat data 1"

	dog := NewDog()
	dog.Name = "Dog2"

	s.db.AddCat(cat)
	s.db.AddDog(dog)

	_, err := s.db.SaveChanges(ctx)
	return err
}

func (s *Service) CatSound(ctx context.Context) (string, error) {
	cat, err := s.db.SingleCat(ctx, CatSoundID)
	if err != nil {
		return "", err
	}
	return Sound(cat), nil
}

func (s *Service) DogSound(ctx context.Context) (string, error) {
	dog, err := s.db.SingleDog(ctx, DogSoundID)
	if err != nil {
		return "", err
	}
	return Sound(dog), nil
}

func (s *Service) Sounds(ctx context.Context) (Sounds, error) {
	cat, err := s.CatSound(ctx)
	if err != nil {
		return Sounds{}, err
	}
	dog, err := s.DogSound(ctx)
	if err != nil {
		return Sounds{}, err
	}
	return Sounds{Cat: cat, Dog: dog}, nil
}

// List devuelve todos los gatos y luego todos los perros.
func (s *Service) List(ctx context.Context) ([]Animal, error) {
	cats, err := s.db.Cats(ctx)
	if err != nil {
		return nil, err
	}
	dogs, err := s.db.Dogs(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Animal, 0, len(cats)+len(dogs))
	for _, c := range cats {
		out = append(out, c)
	}
	for _, d := range dogs {
		out = append(out, d)
	}
	return out, nil
}
