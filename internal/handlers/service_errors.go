package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"ledger-copilot/internal/errors"
	"ledger-copilot/internal/llm"
	"ledger-copilot/internal/services"

	"github.com/labstack/echo/v4"
)

// sendServiceError maps an error returned by the services package onto the
// standard error body. Anything unrecognised is a system error.
func sendServiceError(c echo.Context, err error) error {
	var shapeErr *services.ShapeError
	var groundingErr *services.GroundingError
	var providerErr *llm.ProviderError
	var malformedErr *services.MalformedPayloadError
	var webhookWriteErr *services.WebhookWriteError

	switch {
	case stderrors.As(err, &shapeErr):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(shapeErr.Details...))

	case stderrors.As(err, &groundingErr):
		code := errors.GroundingUnknownTransaction
		if groundingErr.Rule == services.GroundingRuleCitationNotInTargets {
			code = errors.GroundingCitationNotInTargets
		}
		return SendError(c, code, errors.WithDetails(groundingErr.IDs...))

	case stderrors.Is(err, services.ErrUnknownCategory):
		return SendError(c, errors.GroundingUnknownCategory)

	case stderrors.Is(err, services.ErrProposalNotFound):
		return SendError(c, errors.ProposalNotFound)

	case stderrors.Is(err, services.ErrProposalNotPending):
		return SendError(c, errors.ProposalNotPending)

	case stderrors.Is(err, llm.ErrMissingCredential):
		return SendError(c, errors.ProviderMissingCredential, errors.WithDetails(err.Error()))

	case stderrors.Is(err, llm.ErrUnknownProvider):
		return SendError(c, errors.ProviderUnknown, errors.WithDetails(err.Error()))

	case stderrors.As(err, &providerErr):
		if providerErr.Timeout() {
			return SendError(c, errors.ProviderTimeout,
				errors.WithMessage(fmt.Sprintf("%s did not respond in time", providerErr.Provider)),
				errors.WithDetails(providerErr.Error()))
		}
		return SendError(c, errors.ProviderUpstreamError,
			errors.WithMessage(fmt.Sprintf("%s request failed", providerErr.Provider)),
			errors.WithDetails(providerErr.Error()))

	case stderrors.Is(err, services.ErrInvalidSignature):
		return SendError(c, errors.WebhookInvalidSignature)

	case stderrors.As(err, &malformedErr):
		return SendError(c, errors.WebhookMalformedPayload, errors.WithDetails(malformedErr.Details...))

	case stderrors.Is(err, services.ErrUnknownItem):
		return SendError(c, errors.WebhookUnknownItem)

	case stderrors.As(err, &webhookWriteErr):
		slog.ErrorContext(c.Request().Context(), "webhook event not recorded",
			"trace_id", getTraceID(c),
			"idempotency_key", webhookWriteErr.IdempotencyKey,
			"error", err)
		return SendError(c, errors.WebhookNotRecorded,
			errors.WithDetails("nothing written", "idempotency_key: "+webhookWriteErr.IdempotencyKey))

	case stderrors.Is(err, services.ErrPersistence):
		return SendDatabaseError(c, err)

	case stderrors.Is(err, services.ErrInvalidCredentials):
		return SendError(c, errors.AuthInvalidCredentials)

	case stderrors.Is(err, services.ErrInvalidDateRange):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	return SendSystemError(c, err)
}
