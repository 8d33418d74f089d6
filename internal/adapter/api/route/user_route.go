package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/controller"
)

// RegisterUserRoutes registra as rotas do módulo de operadores
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	users := r.Group("/users")
	{
		users.POST("", userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.Get)
	}
}
