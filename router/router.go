package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "farmdash/pkg/auth/controller"
	budgetCtrl "farmdash/pkg/budget/controller"
	cropCtrl "farmdash/pkg/crop/controller"
	farmCtrl "farmdash/pkg/farm/controller"
	laborCtrl "farmdash/pkg/labor/controller"
	livestockCtrl "farmdash/pkg/livestock/controller"
	taskCtrl "farmdash/pkg/task/controller"
	userCtrl "farmdash/pkg/user/controller"
)

func New(
	e *echo.Echo,
	auth authCtrl.AuthController,
	users userCtrl.UserController,
	farms farmCtrl.FarmController,
	crops cropCtrl.CropController,
	livestock livestockCtrl.LivestockController,
	tasks taskCtrl.TaskController,
	labor laborCtrl.LaborController,
	budgets budgetCtrl.BudgetController,
	txns interface {
		Create(echo.Context) error
		Get(echo.Context) error
		ListByFarm(echo.Context) error
		ListByOrganization(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
		AddItem(echo.Context) error
		ListItems(echo.Context) error
		DeleteItem(echo.Context) error
	},
	payroll interface {
		Create(echo.Context) error
		Get(echo.Context) error
		ListByLabor(echo.Context) error
		ListByOrganization(echo.Context) error
		Delete(echo.Context) error
	},
	metrics interface{ Get(echo.Context) error },
	webhooks interface{ Handle(echo.Context) error },
	reports interface{ TransactionsXLSX(echo.Context) error },
	health interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", health.Health)
	e.GET("/whoami", auth.WhoAmI)
	e.GET("/devlogin", auth.DevLogin)

	// Provisioning boundary; signature-checked, no session.
	e.POST("/webhooks/identity", webhooks.Handle)

	// Bootstrap path, server-to-server.
	e.POST("/users", users.Create)
	e.GET("/users/me", users.Me)
	e.GET("/users/by-auth/:authId", users.GetByAuthID)

	e.POST("/farms", farms.Create)
	e.GET("/farms", farms.ListAll)
	e.GET("/farms/mine", farms.ListMine)
	e.GET("/farms/:id", farms.Get)
	e.PATCH("/farms/:id", farms.Patch)
	e.DELETE("/farms/:id", farms.Delete)

	e.GET("/farms/:id/crops", crops.ListByFarm)
	e.GET("/farms/:id/livestock", livestock.ListByFarm)
	e.GET("/farms/:id/tasks", tasks.ListByFarm)
	e.GET("/farms/:id/transactions", txns.ListByFarm)

	e.POST("/crops", crops.Create)
	e.GET("/crops/:id", crops.Get)
	e.PATCH("/crops/:id", crops.Patch)
	e.DELETE("/crops/:id", crops.Delete)

	e.POST("/livestock", livestock.Create)
	e.GET("/livestock/:id", livestock.Get)
	e.PATCH("/livestock/:id", livestock.Patch)
	e.DELETE("/livestock/:id", livestock.Delete)

	e.POST("/tasks", tasks.Create)
	e.GET("/tasks/:id", tasks.Get)
	e.PATCH("/tasks/:id", tasks.Patch)
	e.PATCH("/tasks/:id/status", tasks.PatchStatus)
	e.PATCH("/tasks/:id/due-date", tasks.PatchDueDate)
	e.DELETE("/tasks/:id", tasks.Delete)

	e.POST("/labor", labor.Create)
	e.GET("/labor/:id", labor.Get)
	e.PATCH("/labor/:id", labor.Patch)
	e.DELETE("/labor/:id", labor.Delete)
	e.GET("/labor/:id/payroll", payroll.ListByLabor)

	e.POST("/budgets", budgets.Create)
	e.GET("/budgets/:id", budgets.Get)
	e.PATCH("/budgets/:id", budgets.Patch)
	e.DELETE("/budgets/:id", budgets.Delete)

	e.POST("/transactions", txns.Create)
	e.GET("/transactions/:id", txns.Get)
	e.PATCH("/transactions/:id", txns.Patch)
	e.DELETE("/transactions/:id", txns.Delete)
	e.POST("/transactions/:id/items", txns.AddItem)
	e.GET("/transactions/:id/items", txns.ListItems)
	e.DELETE("/transactions/:id/items/:itemId", txns.DeleteItem)

	e.POST("/payroll", payroll.Create)
	e.GET("/payroll/:id", payroll.Get)
	e.DELETE("/payroll/:id", payroll.Delete)

	g := e.Group("/organizations/:orgId")
	g.GET("/farms", farms.ListByOrganization)
	g.GET("/crops", crops.ListByOrganization)
	g.GET("/livestock", livestock.ListByOrganization)
	g.GET("/tasks", tasks.ListByOrganization)
	g.GET("/tasks/pending", tasks.ListPending)
	g.GET("/labor", labor.ListByOrganization)
	g.GET("/budgets", budgets.ListByOrganization)
	g.GET("/budgets/this-month", budgets.ListThisMonth)
	g.GET("/budgets/next-month", budgets.ListNextMonth)
	g.GET("/transactions", txns.ListByOrganization)
	g.GET("/payroll", payroll.ListByOrganization)
	g.GET("/metrics", metrics.Get)
	g.GET("/reports/transactions.xlsx", reports.TransactionsXLSX)

	return e
}
