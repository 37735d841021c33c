package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelic names transactions after the matched route. It is a no-op without
// an application, which is the case whenever no licence key is configured.
func NewRelic(app *newrelic.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		if app == nil {
			c.Next()
			return
		}

		name := c.FullPath()
		if name == "" {
			name = "NotFound"
		}
		txn := app.StartTransaction(c.Request.Method + " " + name)
		defer txn.End()

		txn.SetWebRequestHTTP(c.Request)
		c.Request = newrelic.RequestWithTransactionContext(c.Request, txn)

		c.Next()

		txn.SetWebResponse(nil).WriteHeader(c.Writer.Status())
		if c.Writer.Status() >= http.StatusInternalServerError {
			for _, err := range c.Errors {
				txn.NoticeError(err.Err)
			}
		}
	}
}
