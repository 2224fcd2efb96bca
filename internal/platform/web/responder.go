package web

import (
	"encoding/json"
	"net/http"

	"petclinic/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MessageKey es la key del modelo donde las vistas reciben el flash.
const MessageKey = "message"

// Responder junta lo que necesitan los handlers de formularios para
// responder: render de vistas, redirects con flash y errores.
type Responder struct {
	Renderer Renderer
	Flash    *FlashStore
	Log      logger.Logger
}

func NewResponder(renderer Renderer, flash *FlashStore, log logger.Logger) *Responder {
	if renderer == nil {
		renderer = JSONRenderer{}
	}
	if flash == nil {
		flash = NewFlashStore(0)
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Responder{Renderer: renderer, Flash: flash, Log: log}
}

// View renderiza v. Si hay un flash pendiente se agrega como model.message.
func (rs *Responder) View(w http.ResponseWriter, r *http.Request, v View) {
	if msg, ok := rs.Flash.Pop(w, r); ok {
		if v.Model == nil {
			v.Model = map[string]any{}
		}
		v.Model[MessageKey] = msg
	}
	if err := rs.Renderer.Render(w, r, v); err != nil {
		rs.Log.Error("render view failed", map[string]any{
			"view":       v.Name,
			"err":        err,
			"request_id": chimw.GetReqID(r.Context()),
		})
	}
}

// Redirect responde 303 a location; flash vacío no genera cookie.
func (rs *Responder) Redirect(w http.ResponseWriter, r *http.Request, location, flash string) {
	if flash != "" {
		rs.Flash.Put(w, flash)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// Error loguea err y responde status con el texto estándar del código.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, status int, err error) {
	fields := map[string]any{
		"status":     status,
		"path":       r.URL.Path,
		"request_id": chimw.GetReqID(r.Context()),
	}
	if err != nil {
		fields["err"] = err
	}
	if status >= http.StatusInternalServerError {
		rs.Log.Error("request failed", fields)
	} else {
		rs.Log.Warn("request rejected", fields)
	}
	http.Error(w, http.StatusText(status), status)
}

// JSON escribe v como JSON. Para endpoints que no son vistas (p.ej. /pettypes).
func (rs *Responder) JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
