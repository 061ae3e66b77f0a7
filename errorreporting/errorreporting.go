package errorreporting

import (
	"context"
	"net/http"

	"cloud.google.com/go/errorreporting"
	"github.com/gin-gonic/gin"

	"github.com/goldleaf/storefront/invoices/common"
)

type reporter interface {
	Report(e errorreporting.Entry)
	Close() error
}

var erc reporter

type Metadata struct {
	Req   *http.Request
	User  string
	Stack []byte
}

// Init creates the Error Reporting client. Reports are dropped until Init succeeds,
// and always on localhost.
func Init(ctx context.Context) error {
	if common.IsLocalhost {
		return nil
	}

	client, err := errorreporting.NewClient(ctx, common.ProjectID, errorreporting.Config{
		ServiceName:    common.GAEService,
		ServiceVersion: common.GAEVersion,
	})
	if err != nil {
		return err
	}

	erc = client

	return nil
}

// Close flushes pending reports.
func Close() error {
	if erc == nil {
		return nil
	}

	return erc.Close()
}

func Report(err error, md *Metadata) {
	if err == nil || erc == nil || common.IsLocalhost {
		return
	}

	e := errorreporting.Entry{
		Error: err,
	}

	if md != nil {
		e.User = md.User
		e.Req = md.Req
		e.Stack = md.Stack
	}

	erc.Report(e)
}

func ReportRequestError(ctx *gin.Context, err error) {
	Report(err, &Metadata{
		Req: ctx.Request,
	})
}
