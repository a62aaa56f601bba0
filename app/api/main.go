package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/base/database/mongoclient"
	"github.com/x-xyz/nftcard/base/database/redisclient"
	"github.com/x-xyz/nftcard/base/goroutine"
	"github.com/x-xyz/nftcard/base/log"
	"github.com/x-xyz/nftcard/base/metrics"
	bValidator "github.com/x-xyz/nftcard/base/validator"
	"github.com/x-xyz/nftcard/domain/keys"
	mmiddleware "github.com/x-xyz/nftcard/middleware"
	"github.com/x-xyz/nftcard/service/cache"
	"github.com/x-xyz/nftcard/service/cache/provider"
	"github.com/x-xyz/nftcard/service/cache/provider/compound"
	"github.com/x-xyz/nftcard/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/nftcard/service/cache/provider/redis"
	"github.com/x-xyz/nftcard/service/redis"
	card_delivery "github.com/x-xyz/nftcard/stores/card/delivery/http"
	card_repository "github.com/x-xyz/nftcard/stores/card/repository"
	card_usecase "github.com/x-xyz/nftcard/stores/card/usecase"
	card_view "github.com/x-xyz/nftcard/stores/card/view"
	hc_delivery "github.com/x-xyz/nftcard/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftcard/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftcard/stores/healthcheck/usecase"

	_ "github.com/x-xyz/nftcard/app/api/docs"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(configPath())
	viper.SetDefault("http.addr", ":8080")
	viper.SetDefault("http.shutdownTimeout", 10*time.Second)
	viper.SetDefault("card.cacheTtl", 5*time.Minute)
	viper.SetDefault("card.localCacheSizeMB", 64)
	viper.SetDefault("card.localCacheTtl", 30*time.Second)
	viper.SetDefault("mongo.poolMultiplier", 2)
	viper.SetDefault("redis_cache.poolMultiplier", 8)
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	log.SetDebug(viper.GetBool(`debug`))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return `infra/configs/config.yaml`
}

//	@title			NFT Card API
//	@version		1.0
//	@description	Renders NFT cards as html fragments.
func main() {
	defer log.Sync()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		EnableSSL:          viper.GetBool("mongo.enableSSL"),
		PoolSizeMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
	})

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(
		viper.GetString("redis_cache.uri"),
		viper.GetString("redis_cache.password"),
		redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		},
	)
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	cardCache := cache.New(cache.ServiceConfig{
		Ttl: viper.GetDuration("card.cacheTtl"),
		Pfx: keys.PfxCard,
		Cache: compound.NewCompound([]provider.Provider{
			primitive.NewPrimitive(
				keys.PfxCard,
				viper.GetInt("card.localCacheSizeMB"),
				primitive.WithMaxTtl(viper.GetDuration("card.localCacheTtl")),
			),
			redisProvider.NewRedis(redisCache),
		}),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	cardRepo := card_repository.NewTokenRecordRepo(mongoClient)

	hcUsecase := hc_usecase.New(hcRepo)
	cardUsecase := card_usecase.New(&card_usecase.CardUseCaseCfg{
		Repo:     cardRepo,
		Renderer: card_view.MustNew(),
		Cache:    cardCache,
	})

	hc_delivery.New(e, hcUsecase)
	card_delivery.New(e, cardUsecase)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	serverDone := goroutine.RecoverableGo(func() {
		addr := viper.GetString("http.addr")
		context.WithField("addr", addr).Info("server started")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			context.WithField("err", err).Panic("shutting down the server")
		}
	}, goroutine.WithName("http"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-serverDone:
	}

	shutdownCtx, cancel := ctx.WithTimeout(context, viper.GetDuration("http.shutdownTimeout"))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		context.WithField("err", err).Error("server shutdown failed")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		context.WithField("err", err).Error("mongo disconnect failed")
	}
	if err := redisCachePool.Close(); err != nil {
		context.WithField("err", err).Error("redis pool close failed")
	}
	context.Info("server stopped")
}
