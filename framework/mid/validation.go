package mid

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goldleaf/storefront/invoices/framework/web"
)

// ValidatePathParamNotEmpty rejects the request when the path parameter is empty or blank.
func ValidatePathParamNotEmpty(paramName string) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if paramValue := ctx.Param(paramName); strings.TrimSpace(paramValue) == "" {
				return web.NewRequestError(errors.New("error: "+paramName+" cannot be empty"), http.StatusBadRequest)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}
