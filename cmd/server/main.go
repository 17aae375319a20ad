package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"order_dash_v1/internal/config"
	"order_dash_v1/internal/controller"
	"order_dash_v1/internal/middleware"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
	"order_dash_v1/internal/router"
	"order_dash_v1/internal/service"
	"order_dash_v1/internal/task"
	"order_dash_v1/pkg/database"
	"order_dash_v1/pkg/kv"
	"order_dash_v1/pkg/logger"
)

// @title Order Dashboard API
// @version 1.0
// @description 多店铺订单管理后台
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", os.Getenv("OMS_CONFIG"), "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// 日志还没初始化
		println("加载配置失败:", err.Error())
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "order-dash")
	if err != nil {
		println("初始化日志失败:", err.Error())
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// 1. 初始化数据库
	db := initDatabase(cfg, log)

	// 2. 初始化依赖
	deps := initDependencies(cfg, db, log)

	// 3. 首个平台管理员
	bootstrapAdmin(cfg, deps, log)

	// 4. 启动定时任务
	tasks := initTasks(cfg, deps, log)

	// 5. 初始化路由
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log))
	router.InitRoutes(r, deps.Routes)

	// 6. 启动服务
	startServer(cfg, r, tasks, log)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB       *gorm.DB
	Scoped   *repository.ScopedQuery
	Stores   repository.StoreRepository
	KV       kv.KV
	Throttle *middleware.LoginThrottle
	Auth     *service.AuthService
	Routes   router.Deps
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase(cfg *config.Config, log *zap.Logger) *gorm.DB {
	var models []interface{}
	if cfg.Database.AutoMigrate {
		models = []interface{}{
			// Tenant
			&model.Store{}, &model.StoreSlugHistory{}, &model.StoreUser{}, &model.PlatformAdmin{},
			// Business
			&model.Customer{}, &model.Product{}, &model.Order{}, &model.OrderItem{},
			// Settings
			&model.OrderStatus{}, &model.StoreSetting{},
		}
	}

	db, err := database.InitDB(cfg.Database.DSN, database.Options{
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}, log, models...)
	if err != nil {
		log.Fatal("数据库初始化失败", zap.Error(err))
	}
	if err := middleware.RegisterAuditCallbacks(db); err != nil {
		log.Fatal("注册审计回调失败", zap.Error(err))
	}
	return db
}

// initKV Redis 可用时保存 token 注销表，否则退化为进程内存
func initKV(cfg *config.Config, log *zap.Logger) kv.KV {
	if !cfg.Redis.Enabled {
		log.Warn("Redis 未启用，token 注销记录只保存在内存中，多实例部署时不共享")
		return kv.NewMemoryKV()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := kv.NewRedisKV(client, cfg.Redis.Prefix)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.Fatal("Redis 连接失败", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	log.Info("Redis 连接成功", zap.String("addr", cfg.Redis.Addr))
	return store
}

// initStorage 存储初始化失败时只关闭发票归档，不影响其他功能
func initStorage(cfg *config.Config, log *zap.Logger) service.StorageProvider {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	storage, err := service.NewStorageProvider(ctx, service.StorageConfig{
		Provider:  cfg.Storage.Provider,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		CDNDomain: cfg.Storage.CDNDomain,
		BasePath:  cfg.Storage.BasePath,
		LocalDir:  cfg.Storage.LocalDir,
		LocalURL:  cfg.Storage.LocalURL,
	})
	if err != nil {
		log.Warn("存储服务初始化失败，发票归档不可用", zap.Error(err))
		return nil
	}
	return storage
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, db *gorm.DB, log *zap.Logger) *Dependencies {
	// -------- Repo 层 --------
	q, err := repository.NewScopedQuery(db, repository.DefaultScopedModels()...)
	if err != nil {
		log.Fatal("注册店铺数据表失败", zap.Error(err))
	}
	storeRepo := repository.NewStoreRepository(db)
	userRepo := repository.NewStoreUserRepository(q)
	adminRepo := repository.NewPlatformAdminRepository(db)

	// -------- 基础服务 --------
	store := initKV(cfg, log)
	jwt := middleware.NewJWTManager(middleware.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTTL,
		Issuer:          cfg.JWT.Issuer,
	}, store)
	throttle := middleware.NewLoginThrottle(cfg.Login.MaxFailures, cfg.Login.Window)
	storage := initStorage(cfg, log)

	// -------- 业务服务 --------
	resolver := service.NewSlugResolver(storeRepo)
	storeSvc := service.NewStoreService(db, q, storeRepo, log)
	userSvc := service.NewStoreUserService(userRepo, log)
	authSvc := service.NewAuthService(resolver, storeRepo, userRepo, adminRepo, jwt, log)

	// -------- Controller 层 --------
	routes := router.Deps{
		JWT:           jwt,
		StoreChecker:  storeSvc,
		MemberChecker: userSvc,
		Auth:          controller.NewAuthController(authSvc, resolver, throttle),
		Store:         controller.NewStoreController(storeSvc, userSvc),
		User:          controller.NewUserController(userSvc),
		Customer:      controller.NewCustomerController(service.NewCustomerService(repository.NewCustomerRepository(q))),
		Product:       controller.NewProductController(service.NewProductService(repository.NewProductRepository(q))),
		Order: controller.NewOrderController(
			service.NewOrderService(q, log),
			service.NewInvoiceService(q, storeRepo, storage, log),
			service.NewMessageService(q, storeRepo),
			service.NewExportService(q),
		),
		Setting: controller.NewSettingController(service.NewSettingService(q), service.NewDashboardService(q)),
	}
	if local, ok := storage.(*service.LocalStorage); ok && strings.HasPrefix(cfg.Storage.LocalURL, "/") {
		routes.UploadDir = local.Dir()
		routes.UploadURL = cfg.Storage.LocalURL
	}

	return &Dependencies{
		DB:       db,
		Scoped:   q,
		Stores:   storeRepo,
		KV:       store,
		Throttle: throttle,
		Auth:     authSvc,
		Routes:   routes,
	}
}

// bootstrapAdmin 管理员表为空时按配置创建第一个平台管理员
func bootstrapAdmin(cfg *config.Config, deps *Dependencies, log *zap.Logger) {
	if cfg.Admin.BootstrapUsername == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	created, err := deps.Auth.EnsurePlatformAdmin(ctx, cfg.Admin.BootstrapUsername, cfg.Admin.BootstrapPassword)
	if err != nil {
		log.Fatal("创建平台管理员失败", zap.Error(err))
	}
	if created {
		log.Info("已创建平台管理员", zap.String("username", cfg.Admin.BootstrapUsername))
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(cfg *config.Config, deps *Dependencies, log *zap.Logger) *task.TaskManager {
	sweepers := map[string]task.Sweeper{"login_throttle": deps.Throttle}
	if mem, ok := deps.KV.(*kv.MemoryKV); ok {
		sweepers["token_denylist"] = mem
	}

	tm := task.NewTaskManager(&task.TaskManagerDeps{
		Stores:   deps.Stores,
		Scoped:   deps.Scoped,
		Sweepers: sweepers,
		Logger:   log,
	}, &task.TaskManagerConfig{
		CleanupEnabled: true,
		Cleanup: task.CleanupConfig{
			Spec:          cfg.Task.CleanupSpec,
			RetentionDays: cfg.Task.RetentionDays,
			Concurrency:   cfg.Task.Concurrency,
		},
		SweepEnabled:  true,
		SweepInterval: 5 * time.Minute,
	})
	if err := tm.Start(); err != nil {
		log.Fatal("无法启动定时任务", zap.Error(err))
	}
	return tm
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(cfg *config.Config, r *gin.Engine, tasks *task.TaskManager, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 异步启动服务
	go func() {
		log.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("服务强制关闭", zap.Error(err))
	}
	tasks.Stop(ctx)

	log.Info("服务已退出")
}
