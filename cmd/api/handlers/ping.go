package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goldleaf/storefront/invoices/framework/web"
)

func Ping(ctx *gin.Context) error {
	return web.Respond(ctx, nil, http.StatusOK)
}
