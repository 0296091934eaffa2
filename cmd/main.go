package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"backoffice/config"
	"backoffice/internal/pkg/cache"
	"backoffice/internal/pkg/database"
	"backoffice/internal/pkg/logger"
	"backoffice/internal/pkg/metrics"
	"backoffice/internal/pkg/middleware"
	"backoffice/internal/pkg/password"
	"backoffice/internal/pkg/storage"
	"backoffice/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"backoffice/internal/api/auth"
	"backoffice/internal/api/resource"
	"backoffice/internal/api/router"
	"backoffice/internal/api/stats"
	"backoffice/internal/api/upload"
	"backoffice/internal/repository/adminrepo"
	"backoffice/internal/repository/balancerepo"
	"backoffice/internal/repository/categoryrepo"
	"backoffice/internal/repository/deletionrepo"
	"backoffice/internal/repository/eventrepo"
	"backoffice/internal/repository/sellerrepo"
	"backoffice/internal/repository/statsrepo"
	"backoffice/internal/service/adminservice"
	"backoffice/internal/service/authservice"
	"backoffice/internal/service/balanceservice"
	"backoffice/internal/service/categoryservice"
	"backoffice/internal/service/deletionservice"
	"backoffice/internal/service/eventservice"
	"backoffice/internal/service/sellerservice"
	"backoffice/internal/service/statsservice"
	"backoffice/internal/service/uploadservice"
)

func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	log.Println("⚡ Inicializando o back-office...")
	if err := godotenv.Load(); err != nil {
		// As variáveis essenciais podem estar no ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Inicialização
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})
	metrics.Init()

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Interface nula quando desligado: um *RedisClient nulo
	// dentro da interface não seria == nil.
	var cacheClient cache.Client
	var limit func(http.Handler) http.Handler
	if cfg.RedisAddr != "" {
		redisClient := cache.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx); err != nil {
			log.Warn("Redis indisponível; o cache falhará aberto.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		} else {
			log.Info("Conexão Redis estabelecida.", nil)
		}
		cancel()

		cacheClient = redisClient
		limit = middleware.RateLimiter(redisClient, log, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)
	} else {
		log.Info("REDIS_ADDR vazio; usando rate limiter em memória.", nil)
		limit = middleware.NewLocalRateLimiter(cfg.RateLimitMaxRequests, cfg.RateLimitPeriod).Middleware
	}

	// C. Storage (upload). Sem endpoint, o upload responde 500.
	var objectStore storage.ObjectStore
	if cfg.StorageEndpoint != "" {
		s3, err := storage.NewS3Store(storage.Config{
			Endpoint:  cfg.StorageEndpoint,
			AccessKey: cfg.StorageAccessKey,
			SecretKey: cfg.StorageSecretKey,
			Region:    cfg.StorageRegion,
			UseSSL:    cfg.StorageUseSSL,
			PublicURL: cfg.StoragePublicURL,
		})
		if err != nil {
			log.Fatal("Falha ao configurar o storage.", err)
		}
		objectStore = s3
	} else {
		log.Warn("STORAGE_ENDPOINT vazio; uploads desabilitados.", nil)
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	tokenSvc := token.NewService(cfg.JWTSecretKey)
	hasher := password.NewHasher(password.DefaultCost)

	sellerRepo := sellerrepo.NewSellerRepository(db, cfg.DBTimeout, cacheClient, cfg.CacheTTL, log)
	categoryRepo := categoryrepo.NewCategoryRepository(db, cfg.DBTimeout, log)
	eventRepo := eventrepo.NewEventRepository(db, cfg.DBTimeout, log)
	adminRepo := adminrepo.NewAdminRepository(db, cfg.DBTimeout, log)
	deletionRepo := deletionrepo.NewDeletionRequestRepository(db, cfg.DBTimeout, log)
	balanceRepo := balancerepo.NewBalanceRepository(db, cfg.DBTimeout, log)
	statsRepo := statsrepo.NewStatsRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	authSvc := authservice.NewService(adminRepo, hasher, tokenSvc, log)
	balanceSvc := balanceservice.NewService(balanceRepo, sellerRepo, log)
	log.Debug("Serviços inicializados.", nil)

	// Bootstrap da conta padrão: falha aqui não impede o servidor de subir.
	bootCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if created, err := authSvc.EnsureBootstrapped(bootCtx); err != nil {
		log.Error("Bootstrap da conta padrão falhou.", err)
	} else if created {
		log.Warn("Conta padrão criada (admin/admin123). Troque a senha imediatamente.", nil)
	}
	cancel()

	handlers := router.Handlers{
		Sellers:          resource.NewHandler(sellerservice.NewService(sellerRepo, log), log),
		Categories:       resource.NewHandler(categoryservice.NewService(categoryRepo, log), log),
		Events:           resource.NewHandler(eventservice.NewService(eventRepo, log), log),
		Admins:           resource.NewHandler(adminservice.NewService(adminRepo, hasher, log), log),
		DeletionRequests: resource.NewHandler(deletionservice.NewService(deletionRepo, sellerRepo, log), log),
		Balances:         resource.ListFunc(balanceSvc.ListBalances, log),
		Transactions:     resource.ListFunc(balanceSvc.ListTransactions, log),
		Auth:             auth.NewHandler(authSvc, log),
		Stats:            stats.NewHandler(statsservice.NewService(statsRepo, log), log),
		Upload:           upload.NewHandler(uploadservice.NewService(objectStore, log), log, cfg.MaxUploadBytes),
	}
	log.Debug("Handlers inicializados.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	dispatcher := router.NewDispatcher(router.Table(handlers), middleware.NewAuthorizer(tokenSvc), log)
	r := router.NewRouter(middleware.MaxBodyBytes(dispatcher, cfg.MaxUploadBytes), limit)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Back-office ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
