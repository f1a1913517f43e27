package companies

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/platform/httpx"
	"github.com/biztime/biztime/internal/shared"
)

// Handler exposes the /companies resource.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: httpx.NewValidator()}
}

// MountRoutes registers company routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", httpx.Handle(h.logger, h.list))
	r.Post("/", httpx.Handle(h.logger, h.create))
	r.Get("/{code}", httpx.Handle(h.logger, h.get))
	r.Put("/{code}", httpx.Handle(h.logger, h.update))
	r.Delete("/{code}", httpx.Handle(h.logger, h.delete))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	companies, err := h.service.List(r.Context())
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, listResponse{Companies: companies})
	return nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) error {
	detail, err := h.service.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, companyResponse{Company: detail})
	return nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	const missing = "Missing required information for company"
	var req CreateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return shared.BadRequestf(missing)
	}
	if err := httpx.Validate(h.validator, req, missing); err != nil {
		return err
	}
	company, err := h.service.Create(r.Context(), req)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusCreated, companyResponse{Company: company})
	return nil
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) error {
	const missing = "Missing required information to edit company"
	var req UpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return shared.BadRequestf(missing)
	}
	if err := httpx.Validate(h.validator, req, missing); err != nil {
		return err
	}
	company, err := h.service.Update(r.Context(), chi.URLParam(r, "code"), req)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, companyResponse{Company: company})
	return nil
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		return err
	}
	httpx.Deleted(w)
	return nil
}
