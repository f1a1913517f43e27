package invoices

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/platform/httpx"
	"github.com/biztime/biztime/internal/shared"
)

// Handler exposes the /invoices resource.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: httpx.NewValidator()}
}

// MountRoutes registers invoice routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", httpx.Handle(h.logger, h.list))
	r.Post("/", httpx.Handle(h.logger, h.create))
	r.Get("/{id}", httpx.Handle(h.logger, h.get))
	r.Put("/{id}", httpx.Handle(h.logger, h.update))
	r.Delete("/{id}", httpx.Handle(h.logger, h.delete))
}

func invoiceID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, shared.BadRequestf("Invoice id '%s' is not a number", raw)
	}
	return id, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	invoices, err := h.service.List(r.Context())
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, listResponse{Invoices: invoices})
	return nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) error {
	id, err := invoiceID(r)
	if err != nil {
		return err
	}
	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, invoiceResponse{Invoice: detail})
	return nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	const missing = "Missing required information for invoice"
	var req CreateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return shared.BadRequestf(missing)
	}
	if err := httpx.Validate(h.validator, req, missing); err != nil {
		return err
	}
	invoice, err := h.service.Create(r.Context(), req)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusCreated, invoiceResponse{Invoice: invoice})
	return nil
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) error {
	const missing = "Missing required information to edit invoice"
	id, err := invoiceID(r)
	if err != nil {
		return err
	}
	var req UpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return shared.BadRequestf(missing)
	}
	if err := httpx.Validate(h.validator, req, missing); err != nil {
		return err
	}
	invoice, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, invoiceResponse{Invoice: invoice})
	return nil
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) error {
	id, err := invoiceID(r)
	if err != nil {
		return err
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		return err
	}
	httpx.Deleted(w)
	return nil
}
