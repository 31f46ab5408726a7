package utils

import (
	"github.com/kataras/iris/v12"
)

// JSONError writes the uniform error envelope. Operational handlers pass a
// fixed message; the underlying cause goes to the logger only.
func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

// JSONData wraps a payload in the standard data envelope.
func JSONData(ctx iris.Context, data interface{}) {
	ctx.JSON(iris.Map{"data": data})
}
