package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gettupp/backoffice/internal"
)

const internalErrorMessage = "Internal server error"

// Response is the envelope every business endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Respond wraps data in a success envelope and sends it with the given status code.
func Respond(ctx *gin.Context, data interface{}, statusCode int) error {
	return RespondWithMessage(ctx, data, "", statusCode)
}

// RespondWithMessage is Respond with a human readable message next to the data.
func RespondWithMessage(ctx *gin.Context, data interface{}, message string, statusCode int) error {
	internal.SetStatusCode(ctx, statusCode)

	if statusCode == http.StatusNoContent {
		ctx.Status(statusCode)
		return nil
	}

	ctx.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Message: message,
	})

	return nil
}

// RespondRaw sends data as is, without the envelope. Used for webhook acknowledgements.
func RespondRaw(ctx *gin.Context, data interface{}, statusCode int) error {
	internal.SetStatusCode(ctx, statusCode)

	if data == nil {
		ctx.Status(statusCode)
		return nil
	}

	ctx.JSON(statusCode, data)

	return nil
}

// RespondError sends an error envelope back to the client. Server side failures
// are reported with a generic message.
func RespondError(ctx *gin.Context, err error) error {
	status := http.StatusInternalServerError
	message := internalErrorMessage

	if webErr, ok := err.(*Error); ok && webErr.Status < http.StatusInternalServerError {
		status = webErr.Status
		message = webErr.Err.Error()
	}

	internal.SetStatusCode(ctx, status)

	ctx.JSON(status, Response{
		Success: false,
		Error:   message,
	})

	return nil
}
