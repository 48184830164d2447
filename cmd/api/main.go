package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/pkg/logging"
	"app/internal/pkg/metrics"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Customer{},
		&model.CustomerLocation{},
		&model.Supplier{},
		&model.Product{},
		&model.Order{},
		&model.OrderLine{},
		&model.Payment{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	locationRepo := infraRepo.NewCustomerLocationGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	statsRepo := infraRepo.NewStatsGormRepository(gormDB)

	//メトリクス
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	lifecycleMetrics := metrics.New(promReg)

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(txManager, logger)
	customerUC := usecase.NewCustomerUsecase(txManager, customerRepo, locationRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	supplierUC := usecase.NewSupplierUsecase(supplierRepo)
	paymentUC := usecase.NewPaymentUsecase(paymentRepo, orderRepo)
	dashboardUC := usecase.NewDashboardUsecase(statsRepo, productRepo)

	//Handler生成
	orderH := handler.NewOrderHandler(orderUC, lifecycleMetrics)
	customerH := handler.NewCustomerHandler(customerUC)
	productH := handler.NewProductHandler(productUC)
	supplierH := handler.NewSupplierHandler(supplierUC)
	paymentH := handler.NewPaymentHandler(paymentUC)
	dashboardH := handler.NewDashboardHandler(dashboardUC)

	//Server起動
	e := server.New(cfg, logger, promReg,
		orderH, customerH, productH, supplierH, paymentH, dashboardH)

	if err := server.Start(e, cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
