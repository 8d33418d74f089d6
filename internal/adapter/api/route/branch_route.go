package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/controller"
)

// RegisterBranchRoutes registra as rotas do módulo de filiais
func RegisterBranchRoutes(r *gin.RouterGroup, branchController *controller.BranchController) {
	branches := r.Group("/branches")
	{
		branches.POST("", branchController.Create)
		branches.GET("", branchController.List)
		branches.GET("/:id", branchController.Get)
	}
}
