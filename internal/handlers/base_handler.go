package handlers

import (
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/validator"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every handler needs; concrete handlers
// embed it.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{Validator: v}
}

// BindJSON decodes the body and runs struct validation. On failure it
// writes the 400 itself and returns false.
func (h BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

// BindQuery does the same for query strings.
func (h BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return h.validate(c, obj)
}

func (h BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	err := h.Validator.Validate(obj)
	if err == nil {
		return true
	}

	var validationErr *validator.ValidationError
	if apperrors.As(err, &validationErr) {
		apperrors.HandleError(c, apperrors.ValidationError(validationErr.Errors))
	} else {
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
	return false
}

// Identity returns the authenticated identity, or nil on anonymous
// requests (optional-auth routes).
func (h BaseHandler) Identity(c *gin.Context) *auth.Identity {
	return middleware.GetIdentity(c)
}

func (h BaseHandler) Error(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
