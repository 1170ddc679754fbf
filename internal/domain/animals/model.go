package animals

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind = errors.New("unknown animal type")
)

// Kind es el valor del discriminador (columna AnimalType).
type Kind string

const (
	KindCat Kind = "Cat"
	KindDog Kind = "Dog"
)

func (k Kind) Valid() bool {
	return k == KindCat || k == KindDog
}

// ParseKind valida un discriminador leído del store.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Base son los campos comunes a todas las variantes.
// ID lo asigna el store al insertar; 0 = todavía no persistido.
type Base struct {
	ID   int
	Name string
}

// Entity da acceso a los campos base (los adapters lo usan para escribir el ID).
func (b *Base) Entity() *Base { return b }

// Animal es la entidad base; Cat y Dog son sus únicas variantes.
type Animal interface {
	Entity() *Base
	Kind() Kind
	Sound() string
}

// Cat representa un gato; CatData es nullable en la tabla pero nunca nil aquí.
type Cat struct {
	Base
	CatData string
}

// Dog no agrega atributos.
type Dog struct {
	Base
}

func NewCat() *Cat { return &Cat{} }
func NewDog() *Dog { return &Dog{} }

func (c *Cat) Kind() Kind    { return KindCat }
func (c *Cat) Sound() string { return formatSound(c.ID, c.Name, KindCat) }

func (d *Dog) Kind() Kind    { return KindDog }
func (d *Dog) Sound() string { return formatSound(d.ID, d.Name, KindDog) }

// Sound calcula el sonido de cualquier variante.
func Sound(a Animal) string {
	return a.Sound()
}

func formatSound(id int, name string, k Kind) string {
	return fmt.Sprintf("'%d' '%s' %s sound", id, name, k)
}

// Materialize arma la variante correcta a partir de una fila.
// catData nil (NULL) => "".
func Materialize(kind Kind, id int, name string, catData *string) (Animal, error) {
	switch kind {
	case KindCat:
		c := &Cat{Base: Base{ID: id, Name: name}}
		if catData != nil {
			c.CatData = *catData
		}
		return c, nil
	case KindDog:
		return &Dog{Base: Base{ID: id, Name: name}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// CatDataOf devuelve el valor de CatData a persistir (nil para perros).
func CatDataOf(a Animal) *string {
	if c, ok := a.(*Cat); ok {
		v := c.CatData
		return &v
	}
	return nil
}
