package web

import (
	"encoding/json"
	"net/http"
)

// ViewHeader lleva el nombre de la vista resuelta; lo usan los tests y
// cualquier cliente que quiera saber qué formulario recibió.
const ViewHeader = "X-View-Name"

// View es una vista lógica (p.ej. "pets/createOrUpdatePetForm") con su modelo.
type View struct {
	Name   string
	Status int
	Model  map[string]any
}

// Renderer escribe una View en la respuesta.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, v View) error
}

// JSONRenderer serializa la vista como {"view": ..., "model": ...}.
// No hay templates: el cliente decide cómo presentar el modelo.
type JSONRenderer struct{}

type viewEnvelope struct {
	View  string         `json:"view"`
	Model map[string]any `json:"model"`
}

func (JSONRenderer) Render(w http.ResponseWriter, _ *http.Request, v View) error {
	status := v.Status
	if status == 0 {
		status = http.StatusOK
	}
	model := v.Model
	if model == nil {
		model = map[string]any{}
	}

	w.Header().Set(ViewHeader, v.Name)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(viewEnvelope{View: v.Name, Model: model})
}
