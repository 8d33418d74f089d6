package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-livraria/internal/adapter/api/controller"
)

// RegisterCustomerRoutes registra as rotas do módulo de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := r.Group("/customers")
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/:id", customerController.Get)
		customers.POST("/:id/payments", customerController.ApplyPayment)
		customers.POST("/:id/charges", customerController.ApplyCharge)
		customers.GET("/:id/history", customerController.History)
	}
}
