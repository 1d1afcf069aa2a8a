package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/dto"
	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeDomainError maps err onto the API error envelope. Validation failures
// carry the offending param alongside the reason; internal errors are never
// detailed to the client.
func writeDomainError(w http.ResponseWriter, err error) {
	status, resp := mapDomainError(err)
	writeJSON(w, status, resp)
}

// writeBadRequest reports a malformed payload before it reaches the domain.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Code:  domain.CodeInvalidParam,
		Name:  "InvalidParam",
		Error: message,
	})
}

// mapDomainError converts a domain error into an HTTP status and response
// body. Ownership failures surface as not-found, so the mapping never needs
// a forbidden branch.
func mapDomainError(err error) (int, dto.ErrorResponse) {
	var invalidParam *domain.InvalidParamError
	if errors.As(err, &invalidParam) {
		return http.StatusBadRequest, dto.ErrorResponse{
			Code:     invalidParam.Code(),
			Name:     invalidParam.Name(),
			Error:    invalidParam.Error(),
			Param:    invalidParam.ParamName,
			Reason:   string(invalidParam.Reason),
			Expected: invalidParam.Expected,
		}
	}

	var missingParam *domain.MissingParamError
	if errors.As(err, &missingParam) {
		return http.StatusBadRequest, dto.ErrorResponse{
			Code:  missingParam.Code(),
			Name:  missingParam.Name(),
			Error: missingParam.Error(),
			Param: missingParam.ParamName,
		}
	}

	var impossible *domain.ImpossibleCombinationError
	if errors.As(err, &impossible) {
		return http.StatusBadRequest, dto.ErrorResponse{
			Code:  impossible.Code(),
			Name:  impossible.Name(),
			Error: impossible.Error(),
		}
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, dto.ErrorResponse{
			Code:  notFound.Code(),
			Name:  notFound.Name(),
			Error: notFound.Error(),
			Param: notFound.Prop,
		}
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return http.StatusConflict, dto.ErrorResponse{
			Code:  conflict.Code(),
			Name:  conflict.Name(),
			Error: conflict.Error(),
			Param: conflict.Prop,
		}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized, dto.ErrorResponse{
			Name:  "Unauthorized",
			Error: err.Error(),
		}
	}

	return http.StatusInternalServerError, dto.ErrorResponse{
		Code:  domain.CodeInternal,
		Name:  "InternalError",
		Error: "internal server error",
	}
}

// decodeBody decodes a JSON request body into dst, rejecting unknown noise
// like a plain string where an object is expected.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
