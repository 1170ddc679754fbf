package animals

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// RegisterRoutes monta las rutas del módulo. Cada request arma su propio
// Context (unit of work) sobre el repo compartido.
func RegisterRoutes(r chi.Router, repo Repository) {
	r.Get("/create", createHandler(repo))
	r.Get("/get-sound", getSoundHandler(repo))
	r.Get("/animals", listAnimalsHandler(repo))
}

type soundResponse struct {
	Cat string `json:"cat"`
	Dog string `json:"dog"`
}

type animalResponse struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Type    Kind    `json:"type"`
	CatData *string `json:"cat_data,omitempty"`
	Sound   string  `json:"sound"`
}

// createHandler godoc
// @Summary Crear animales de ejemplo
// @Description Inserta un gato ("Cat2") y un perro ("Dog2") en una sola transacción.
// @Tags animals
// @Success 200 "sin contenido"
// @Failure 500 {string} string "internal error"
// @Router /create [get]
func createHandler(repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db := NewContext(repo)
		defer db.Discard()

		if err := NewService(db).CreateSamples(r.Context()); err != nil {
			internalError(w, r, "create samples", err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// getSoundHandler godoc
// @Summary Sonido del gato 7 y del perro 8
// @Tags animals
// @Produce json
// @Success 200 {object} soundResponse
// @Failure 500 {string} string "internal error (no existe o no es único)"
// @Router /get-sound [get]
func getSoundHandler(repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db := NewContext(repo)
		defer db.Discard()

		// CatSound y luego DogSound; el primero que falle corta el request.
		sounds, err := NewService(db).Sounds(r.Context())
		if err != nil {
			internalError(w, r, "get sound", err)
			return
		}

		writeJSON(w, http.StatusOK, soundResponse{Cat: sounds.Cat, Dog: sounds.Dog})
	}
}

// listAnimalsHandler godoc
// @Summary Listar todos los animales con su sonido
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 500 {string} string "internal error"
// @Router /animals [get]
func listAnimalsHandler(repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db := NewContext(repo)
		defer db.Discard()

		items, err := NewService(db).List(r.Context())
		if err != nil {
			internalError(w, r, "list animals", err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	b := a.Entity()
	return animalResponse{
		ID:      b.ID,
		Name:    b.Name,
		Type:    a.Kind(),
		CatData: CatDataOf(a),
		Sound:   a.Sound(),
	}
}

// Los errores del store no se traducen: todo termina en 500, pero queda en el log.
func internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("op", op).Msg("request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
