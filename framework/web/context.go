package web

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CtxRequestDataKey is how request values are stored/retrieved.
const CtxRequestDataKey = "app-request-data"

// RequestData represent state for each request.
type RequestData struct {
	TraceID    string
	StatusCode int
	Now        time.Time
}

// ContextWithRequestData sets a gin.Context with request data.
func ContextWithRequestData(ctx *gin.Context, data *RequestData) {
	ctx.Set(CtxRequestDataKey, data)
}

// RequestDataFromContext retrieves request data from gin.Context.
func RequestDataFromContext(ctx *gin.Context) (*RequestData, bool) {
	v, ok := ctx.Value(CtxRequestDataKey).(*RequestData)
	return v, ok
}
