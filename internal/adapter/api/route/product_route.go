package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/controller"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/low-stock", productController.LowStock)
		products.GET("/:id", productController.Get)
		products.PUT("/:id/cost", productController.UpdateCost)
	}
}
