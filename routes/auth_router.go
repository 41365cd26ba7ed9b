// Package routes wires controllers onto the gin route groups, one file per
// surface.
package routes

import (
	"github.com/gin-gonic/gin"

	"socialnet/controllers"
)

func AuthRouter(api *gin.RouterGroup, ctl *controllers.AuthController) {
	api.POST("/register", ctl.Register)
	api.POST("/login", ctl.Login)
}
