package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/erp/mfgdesk/internal/domain/validation"
	"github.com/erp/mfgdesk/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Binding tags backed by the record field rules
var customTags = map[string]validation.Field{
	"gstin":   validation.FieldGSTIN,
	"pan":     validation.FieldPAN,
	"cin":     validation.FieldCIN,
	"msme":    validation.FieldMSME,
	"phone10": validation.FieldContactNumber,
	"hsn":     validation.FieldHSNCode,
}

var (
	setupOnce sync.Once
	setupErr  error
)

// SetupValidator names fields after their json tags and registers the
// gstin, pan, cin, msme, phone10 and hsn tags on gin's validator.
func SetupValidator() error {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("gin validator is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		for tag, field := range customTags {
			if err := v.RegisterValidation(tag, matchField(field)); err != nil {
				setupErr = err
				return
			}
		}
	})
	return setupErr
}

func matchField(field validation.Field) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return validation.Matches(field, fl.Field().String())
	}
}

// HandleBindError answers a failed ShouldBind* call. Tag failures get 422
// with one detail per field; unreadable bodies get 400.
func HandleBindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]dto.ValidationDetail, 0, len(validationErrors))
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Code:    e.Tag(),
				Message: getValidationMessage(e),
			})
		}
		c.AbortWithStatusJSON(dto.GetHTTPStatus(dto.ErrCodeValidation),
			dto.NewValidationErrorResponse(dto.ErrCodeValidation, "Request validation failed", GetRequestID(c), details))
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		abortWithError(c, dto.ErrCodeInvalidJSON, "Request body is not valid JSON")
		return
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		abortWithError(c, dto.ErrCodeTooLarge, "Request body exceeds maximum allowed size")
		return
	}
	abortWithError(c, dto.ErrCodeBadRequest, err.Error())
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email address."
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "gstin":
		return "Invalid GSTIN."
	case "pan":
		return "Invalid PAN number."
	case "cin":
		return "Invalid CIN number."
	case "msme":
		return "Invalid MSME ID."
	case "phone10":
		return "Contact number must be 10 digits."
	case "hsn":
		return "HSN Code must be between 4 and 8 digits."
	default:
		return "Invalid value"
	}
}
