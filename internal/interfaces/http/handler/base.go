package handler

import (
	"errors"
	"net/http"

	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/erp/mfgdesk/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// persistenceFailureMessage is shown whenever the store rejects an operation.
// The cause is logged, never returned.
const persistenceFailureMessage = "Could not save your changes. Please try again."

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessList sends a list with its total
func (h *BaseHandler) SuccessList(c *gin.Context, data any, total int, search string) {
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, search))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response, deriving the status from the code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// HandleError converts service errors to HTTP responses. Field failures are
// reported together, store failures as a generic message.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := middleware.GetRequestID(c)

	var fieldErrs shared.FieldErrors
	if errors.As(err, &fieldErrs) {
		details := make([]dto.ValidationDetail, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, dto.ValidationDetail{Field: fe.Field, Code: fe.Code, Message: fe.Message})
		}
		code := dto.NormalizeErrorCode(fieldErrs.Code())
		c.JSON(dto.GetHTTPStatus(code), dto.NewValidationErrorResponse(code, "Please correct the highlighted fields.", requestID, details))
		return
	}

	var fieldErr *shared.FieldError
	if errors.As(err, &fieldErr) {
		code := dto.NormalizeErrorCode(fieldErr.Code)
		c.JSON(dto.GetHTTPStatus(code), dto.NewValidationErrorResponse(code, fieldErr.Message, requestID,
			[]dto.ValidationDetail{{Field: fieldErr.Field, Code: fieldErr.Code, Message: fieldErr.Message}}))
		return
	}

	var dupErr *shared.DuplicateKeyError
	if errors.As(err, &dupErr) {
		c.JSON(http.StatusConflict, dto.NewValidationErrorResponse(dto.ErrCodeAlreadyExists, dupErr.Error(), requestID,
			[]dto.ValidationDetail{{Field: dupErr.Field, Code: shared.ErrAlreadyExists.Code, Message: dupErr.Error()}}))
		return
	}

	if shared.IsPersistenceFailure(err) {
		logger.L(c.Request.Context()).Error("Record store failure", zap.Error(err))
		h.Error(c, dto.ErrCodePersistence, persistenceFailureMessage)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, domainErr.Message, requestID))
		return
	}

	logger.L(c.Request.Context()).Error("Unhandled error", zap.Error(err))
	h.Error(c, dto.ErrCodeInternal, "An unexpected error occurred")
}
