package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/myazici/portfolio-site-backend/errs"
	"github.com/myazici/portfolio-site-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    services.Mailer
	toEmail   string
	validate  *validator.Validate
}

func newContactHandler(mailer services.Mailer, toEmail string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
		toEmail:   toEmail,
		validate:  validator.New(),
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// sendContactMessage relays a visitor message to the site owner. The visitor
// address goes into reply-to so answering works from any mail client.
func (h contactHandler) sendContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		req.Message = strings.TrimSpace(req.Message)

		if err := h.validate.Struct(req); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
				fieldError := validationErrors[0]
				field := strings.ToLower(fieldError.Field())
				if fieldError.Tag() == "required" {
					h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field))
				} else {
					h.responder.WriteError(w, errs.NewInvalidFieldError(field, "must be a valid "+fieldError.Tag()))
				}
				return
			}
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contact request"))
			return
		}

		if h.mailer == nil || h.toEmail == "" {
			h.responder.WriteError(w, errs.NewServiceUnconfiguredError("email service"))
			return
		}

		email := services.Email{
			To:      []string{h.toEmail},
			ReplyTo: req.Email,
			Subject: "New message from your portfolio site",
			Text:    fmt.Sprintf("From: %s\nEmail: %s\n\nMessage:\n%s", req.Name, req.Email, req.Message),
		}

		if err := h.mailer.Send(r.Context(), email); err != nil {
			h.responder.WriteError(w, errs.NewEmailDeliveryError(err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"ok": true})
	}
}
