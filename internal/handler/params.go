package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/wanderwise/backend/internal/domain"
)

// pathString binds a required string path parameter.
func pathString(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return v, err
}

// pathUUID binds a required uuid path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var v uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return v, err
}

// queryMode binds the optional ?mode= parameter. Absent means
// domain.DefaultMode; unknown values are domain.ErrValidation.
func queryMode(r *http.Request) (domain.Mode, error) {
	var raw *string
	if err := runtime.BindQueryParameter("form", true, false, "mode", r.URL.Query(), &raw); err != nil {
		return "", err
	}
	if raw == nil || *raw == "" {
		return domain.DefaultMode, nil
	}
	return domain.ParseMode(*raw)
}

// queryPage binds the optional ?page= and ?limit= parameters.
func queryPage(r *http.Request) (domain.PageParams, error) {
	var page, limit *int
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &page); err != nil {
		return domain.PageParams{}, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		return domain.PageParams{}, err
	}
	return domain.NewPageParams(page, limit), nil
}

// writeParamError answers a request whose parameters failed to bind.
func (s *Server) writeParamError(w http.ResponseWriter, r *http.Request, err error) {
	if isDomainError(err) {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
}
