package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmdash/config"
	"farmdash/database"
	"farmdash/router"

	authCtrlImp "farmdash/pkg/auth/controllerImp"

	userCtrlImp "farmdash/pkg/user/controllerImp"
	userRepoImp "farmdash/pkg/user/repositoryImp"

	farmCtrlImp "farmdash/pkg/farm/controllerImp"
	farmRepoImp "farmdash/pkg/farm/repositoryImp"
	farmSvcImp "farmdash/pkg/farm/serviceImp"

	cropCtrlImp "farmdash/pkg/crop/controllerImp"
	cropRepoImp "farmdash/pkg/crop/repositoryImp"

	livestockCtrlImp "farmdash/pkg/livestock/controllerImp"
	livestockRepoImp "farmdash/pkg/livestock/repositoryImp"

	taskCtrlImp "farmdash/pkg/task/controllerImp"
	taskRepoImp "farmdash/pkg/task/repositoryImp"

	laborCtrlImp "farmdash/pkg/labor/controllerImp"
	laborRepoImp "farmdash/pkg/labor/repositoryImp"

	budgetCtrlImp "farmdash/pkg/budget/controllerImp"
	budgetRepoImp "farmdash/pkg/budget/repositoryImp"
	budgetSvcImp "farmdash/pkg/budget/serviceImp"

	txnCtrlImp "farmdash/pkg/transaction/controllerImp"
	txnSvc "farmdash/pkg/transaction/service"

	payrollCtrlImp "farmdash/pkg/payroll/controllerImp"
	payrollRepoImp "farmdash/pkg/payroll/repositoryImp"

	metricsCtrlImp "farmdash/pkg/metrics/controllerImp"
	metricsSvc "farmdash/pkg/metrics/service"

	webhookCtrlImp "farmdash/pkg/webhook/controllerImp"

	reportCtrlImp "farmdash/pkg/report/controllerImp"

	healthCtrlImp "farmdash/pkg/health/controllerImp"

	"farmdash/pkg/middleware"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.Auth(cfg.AuthSecret))

	// 4) Repos / services
	uRepo := userRepoImp.New(db)
	fRepo := farmRepoImp.New(db)
	fSvc := farmSvcImp.New(db)
	cRepo := cropRepoImp.New(db)
	lRepo := livestockRepoImp.New(db)
	tRepo := taskRepoImp.New(db)
	labRepo := laborRepoImp.New(db)
	bRepo := budgetRepoImp.New(db)
	bSvc := budgetSvcImp.New(bRepo)
	txns := txnSvc.New(db)
	pRepo := payrollRepoImp.New(db)
	mSvc := metricsSvc.New(db)

	// 5) Controllers
	authCtrl := authCtrlImp.NewAuthController(cfg.AuthSecret, cfg.EnableDevLogin)
	uCtrl := userCtrlImp.New(uRepo)
	fCtrl := farmCtrlImp.New(fRepo, fSvc)
	cCtrl := cropCtrlImp.New(cRepo)
	lCtrl := livestockCtrlImp.New(lRepo)
	tCtrl := taskCtrlImp.New(tRepo)
	labCtrl := laborCtrlImp.New(labRepo)
	bCtrl := budgetCtrlImp.New(bRepo, bSvc)
	txCtrl := txnCtrlImp.New(txns)
	pCtrl := payrollCtrlImp.New(pRepo)
	mCtrl := metricsCtrlImp.New(mSvc)
	whCtrl := webhookCtrlImp.New(cfg.WebhookSecret, fSvc)
	rCtrl := reportCtrlImp.New(txns)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(e, authCtrl, uCtrl, fCtrl, cCtrl, lCtrl, tCtrl, labCtrl, bCtrl,
		txCtrl, pCtrl, mCtrl, whCtrl, rCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
