package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/airdropper/base/ctx"
	"github.com/x-xyz/airdropper/base/log"
	"github.com/x-xyz/airdropper/base/metrics"
	bValidator "github.com/x-xyz/airdropper/base/validator"
	mmiddleware "github.com/x-xyz/airdropper/middleware"
	airdrop_delivery "github.com/x-xyz/airdropper/stores/airdrop/delivery/http"
	airdrop_repository "github.com/x-xyz/airdropper/stores/airdrop/repository"
	airdrop_usecase "github.com/x-xyz/airdropper/stores/airdrop/usecase"
	hc_delivery "github.com/x-xyz/airdropper/stores/healthcheck/delivery/http"
	hc_usecase "github.com/x-xyz/airdropper/stores/healthcheck/usecase"
)

var configFile = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")

func loadConfig() {
	pflag.Parse()
	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.shutdownTimeout", 10*time.Second)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	log.SetDebug(viper.GetBool("debug"))
	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	loadConfig()
	defer log.Sync()

	context := ctx.Background()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(metrics.New("http"))
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context.Info("init token registry")
	tokens, err := airdrop_repository.LoadTokens(viper.GetViper(), "tokens")
	if err != nil {
		context.WithField("err", err).Panic("LoadTokens failed")
	}
	tokenRepo, err := airdrop_repository.NewTokenRepo(tokens)
	if err != nil {
		context.WithField("err", err).Panic("NewTokenRepo failed")
	}
	context.WithField("tokens", len(tokens)).Info("token registry loaded")

	airdrop := airdrop_usecase.NewAirdropUseCase(tokenRepo, metrics.New("airdrop"))
	hc := hc_usecase.New(tokenRepo)

	hc_delivery.New(e, hc)
	airdrop_delivery.New(e, airdrop)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, viper.GetDuration("server.shutdownTimeout"))
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
