package routes

import (
	"piscinas_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets = "/budgets"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.POST("/swap", budgetHandler.SwapFamilyItem)
		budgets.GET("/:id", budgetHandler.GetBudget)
	}
}
