package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond converts a Go value to JSON and sends it to the client with the corresponded status code.
func Respond(ctx *gin.Context, data interface{}, statusCode int) error {
	if v, ok := RequestDataFromContext(ctx); ok {
		v.StatusCode = statusCode
	}

	// If there is nothing to marshal then set status code and return.
	if data == nil || statusCode == http.StatusNoContent {
		ctx.Status(statusCode)
		return nil
	}

	ctx.JSON(statusCode, data)

	return nil
}

// RespondRedirect sends the client to location with a 302.
func RespondRedirect(ctx *gin.Context, location string) error {
	if v, ok := RequestDataFromContext(ctx); ok {
		v.StatusCode = http.StatusFound
	}

	ctx.Redirect(http.StatusFound, location)

	return nil
}

// RespondError sends an error response back to the client.
func RespondError(ctx *gin.Context, err error) error {
	var webErr *Error
	if errors.As(err, &webErr) {
		return Respond(ctx, ErrorResponse{Error: webErr.message()}, webErr.Status)
	}

	return Respond(ctx, ErrorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
	}, http.StatusInternalServerError)
}
