package rest

import (
	"errors"
	"log/slog"
	"net/http"

	smerrors "github.com/abgdnv/storemanager/internal/errors"
	"github.com/abgdnv/storemanager/internal/validation"
	"github.com/abgdnv/storemanager/pkg/web"
)

const productNotFoundMessage = "Product not found"

// respondServiceError maps service errors to HTTP responses: validation
// violations become 400 or 422 with their exact message, unknown products
// become 404, and everything else becomes 500 with a generic message.
func respondServiceError(w http.ResponseWriter, logger *slog.Logger, err error, fallback string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		status := http.StatusBadRequest
		if verr.Kind == validation.KindTooShort {
			status = http.StatusUnprocessableEntity
		}
		web.RespondError(w, logger, status, verr.Message)
	case errors.Is(err, smerrors.ErrProductNotFound):
		web.RespondError(w, logger, http.StatusNotFound, productNotFoundMessage)
	default:
		web.RespondError(w, logger, http.StatusInternalServerError, fallback)
	}
}
