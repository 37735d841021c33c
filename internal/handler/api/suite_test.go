//go:build unit

package api_test

import (
	"net/http"

	"vehicle-rental/internal/domain/user"
	reqdto "vehicle-rental/internal/handler/dto/request"
	"vehicle-rental/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	customerToken = "customer-token"
	otherToken    = "other-customer-token"
	adminToken    = "admin-token"
)

type identities struct {
	customerID uuid.UUID
	otherID    uuid.UUID
	adminID    uuid.UUID
}

func newIdentities() identities {
	return identities{customerID: uuid.New(), otherID: uuid.New(), adminID: uuid.New()}
}

// fakeAuth stands in for RequireAuth; each fixed token maps to one identity.
func (ids identities) fakeAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.GetHeader("Authorization") {
		case "Bearer " + customerToken:
			middleware.SetIdentity(c, ids.customerID, user.RoleCustomer)
		case "Bearer " + otherToken:
			middleware.SetIdentity(c, ids.otherID, user.RoleCustomer)
		case "Bearer " + adminToken:
			middleware.SetIdentity(c, ids.adminID, user.RoleAdmin)
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := reqdto.RegisterValidations(); err != nil {
		panic(err)
	}
	return gin.New()
}
