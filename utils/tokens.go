package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// AccessToken is the claim set minted by the external identity provider.
// This server only verifies it (HS256, ACCESS_TOKEN_SECRET).
type AccessToken struct {
	ID   uint   `json:"id"`
	Role string `json:"role"` // client, employee, admin
}

// CurrentUserID extracts the authenticated user id from the verified token,
// or 0 when the request carries none.
func CurrentUserID(ctx iris.Context) uint {
	tok := jwt.Get(ctx)
	if tok == nil {
		return 0
	}
	claims, ok := tok.(*AccessToken)
	if !ok {
		return 0
	}
	return claims.ID
}
