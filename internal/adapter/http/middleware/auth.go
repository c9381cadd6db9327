package middleware

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContractorIDKey is the gin context key the auth middleware stores the
// authenticated tenant under.
const ContractorIDKey = "contractor_id"

var errMissingContractor = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// ContractorAuth scopes every request to a contractor (tenant).
//
// With JWT_SECRET set, a Bearer token signed with HS256 must carry a
// contractor_id claim. Without it the middleware falls back to the
// X-Contractor-Id header, which keeps local development and integration
// tests free of token plumbing.
func ContractorAuth() gin.HandlerFunc {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Printf("[auth][middleware] JWT_SECRET not set; trusting X-Contractor-Id header")
	}

	return func(c *gin.Context) {
		contractorID, err := resolveContractorID(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(errMissingContractor.HTTPStatus, errMissingContractor.ToHTTPError())
			return
		}
		c.Set(ContractorIDKey, contractorID)
		c.Next()
	}
}

func resolveContractorID(c *gin.Context, secret string) (string, error) {
	if secret == "" {
		header := strings.TrimSpace(c.GetHeader("X-Contractor-Id"))
		if header == "" {
			return "", errors.New("missing X-Contractor-Id header")
		}
		return header, nil
	}

	auth := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return "", errors.New("missing bearer token")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}

	contractorID, _ := claims[ContractorIDKey].(string)
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return "", errors.New("token has no contractor_id claim")
	}
	return contractorID, nil
}

// ContractorID reads the tenant the auth middleware resolved for this request.
func ContractorID(c *gin.Context) string {
	v, _ := c.Get(ContractorIDKey)
	s, _ := v.(string)
	return s
}
