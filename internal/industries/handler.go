package industries

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/platform/httpx"
	"github.com/biztime/biztime/internal/shared"
)

// Handler exposes the /industries resource.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: httpx.NewValidator()}
}

// MountRoutes registers industry routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", httpx.Handle(h.logger, h.list))
	r.Post("/", httpx.Handle(h.logger, h.create))
	r.Post("/{indCode}/{compCode}", httpx.Handle(h.logger, h.associate))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) error {
	summaries, err := h.service.List(r.Context())
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, listResponse{Industries: summaries})
	return nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) error {
	const missing = "Missing required information for industry"
	var req CreateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return shared.BadRequestf(missing)
	}
	if err := httpx.Validate(h.validator, req, missing); err != nil {
		return err
	}
	industry, err := h.service.Create(r.Context(), req)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusCreated, industryResponse{Industry: industry})
	return nil
}

func (h *Handler) associate(w http.ResponseWriter, r *http.Request) error {
	assoc, err := h.service.Associate(r.Context(), chi.URLParam(r, "indCode"), chi.URLParam(r, "compCode"))
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusCreated, associationResponse{Association: assoc})
	return nil
}
