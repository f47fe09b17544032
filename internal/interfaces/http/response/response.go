package response

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	domainerrors "subversepay.backend/internal/domain/errors"
)

// Envelope is the body of every API response
type Envelope struct {
	Success bool          `json:"success"`
	Data    interface{}   `json:"data,omitempty"`
	Total   *int          `json:"total,omitempty"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Details []FieldDetail `json:"details,omitempty"`
}

// FieldDetail describes one failed validation rule
type FieldDetail struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// List sends a filtered collection with its size.
func List(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Total: &total})
}

// Message sends a success response carrying an acknowledgment and optional data.
func Message(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Error maps err onto the failure envelope. Validation failures become 400
// with per-field details, AppErrors keep their code, anything else is 500.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldDetail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldDetail(fe))
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{
			Error:   details[0].Message,
			Details: details,
		})
		return
	}

	appErr, ok := domainerrors.As(err)
	if !ok {
		appErr = domainerrors.InternalError(err)
	}
	c.AbortWithStatusJSON(appErr.Code, Envelope{Error: appErr.Error()})
}

func fieldDetail(fe validator.FieldError) FieldDetail {
	field := fe.Field()
	var msg string
	switch fe.Tag() {
	case "required":
		msg = field + " is required"
	case "oneof":
		msg = fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		msg = fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
	return FieldDetail{Field: field, Rule: fe.Tag(), Message: msg}
}

var registerTagNames sync.Once

// UseJSONFieldNames makes gin's validator report fields by their json key.
func UseJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}
