package httpapi

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// ErrMissingAuthHeader is returned when a protected route is called
// without an Authorization header.
var ErrMissingAuthHeader = errors.New("authorization header required", errors.CategoryAuth).
	WithTextCode("AUTH_HEADER_MISSING").
	WithCode(errors.CodeUnauthorized)

// ErrBadAuthHeader is returned when the Authorization header is not a
// bearer credential.
var ErrBadAuthHeader = errors.New("invalid authorization header format", errors.CategoryAuth).
	WithTextCode("AUTH_HEADER_INVALID").
	WithCode(errors.CodeUnauthorized)

type errorBody struct {
	Error    string `json:"error"`
	TextCode string `json:"text_code,omitempty"`
}

// newErrorHandler translates errors into HTTP responses. Structured
// errors carry their own status code; everything else is logged with
// full context and answered with a generic 500 body.
func newErrorHandler(logger Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var richErr *errors.Error
		if errors.As(err, &richErr) {
			status := richErr.Code
			if status == 0 {
				status = statusFromCategory(richErr.Category)
			}

			logger.Debug(
				"request failed",
				"path", c.Path(),
				"status", status,
				"error", richErr.Message,
				"text_code", richErr.TextCode,
				"details", print.MaybePrettyJSON(richErr.Metadata),
			)

			return c.Status(status).JSON(errorBody{
				Error:    richErr.Message,
				TextCode: richErr.TextCode,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(errorBody{Error: fiberErr.Message})
		}

		logger.Error("unhandled error", "path", c.Path(), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(errorBody{
			Error: "Internal Server Error",
		})
	}
}

func statusFromCategory(category errors.Category) int {
	switch category {
	case errors.CategoryNotFound:
		return http.StatusNotFound
	case errors.CategoryConflict:
		return http.StatusConflict
	case errors.CategoryAuth:
		return http.StatusUnauthorized
	case errors.CategoryAuthz:
		return http.StatusForbidden
	case errors.CategoryValidation, errors.CategoryBadInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func invalidPayload(err error) error {
	return errors.Wrap(err, errors.CategoryValidation, "invalid request payload").
		WithCode(errors.CodeBadRequest).
		WithMetadata(map[string]any{
			"validation": err.Error(),
		})
}

func badRequest(err error, msg string) error {
	return errors.Wrap(err, errors.CategoryBadInput, msg).
		WithCode(errors.CodeBadRequest)
}
