package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	pricefomatter "github.com/x-xyz/goauction/base/price_fomatter"
	bValidator "github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	mmiddleware "github.com/x-xyz/goauction/middleware"
	"github.com/x-xyz/goauction/service/assetregistry"
	"github.com/x-xyz/goauction/service/eventbus"
	"github.com/x-xyz/goauction/service/notifier/discord"
	"github.com/x-xyz/goauction/service/tokenledger"
	auction_delivery "github.com/x-xyz/goauction/stores/auction/delivery/http"
	auction_usecase "github.com/x-xyz/goauction/stores/auction/usecase"
	config_delivery "github.com/x-xyz/goauction/stores/auction_config/delivery/http"
	config_usecase "github.com/x-xyz/goauction/stores/auction_config/usecase"
	auth_delivery "github.com/x-xyz/goauction/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/goauction/stores/auth/usecase"
	hc_delivery "github.com/x-xyz/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/goauction/stores/healthcheck/usecase"
	ledger_delivery "github.com/x-xyz/goauction/stores/ledger/delivery/http"
	settlement_usecase "github.com/x-xyz/goauction/stores/settlement/usecase"
)

var configFile = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")

func init() {
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("storage.type", storageMemory)
	viper.SetDefault("cache.sizeMB", 16)
	viper.SetDefault("eventbus.workers", 4)
	viper.SetDefault("eventbus.queue_length", 256)
	viper.SetDefault("eventbus.schedule_timeout", time.Second)
	viper.SetDefault("eventbus.notify_timeout", 10*time.Second)
	viper.SetDefault("auth.tokenTtl", 24*time.Hour)
	viper.SetDefault("auth.nonceWindow", 10*time.Minute)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if err := log.Init(viper.GetString("log.level")); err != nil {
		panic(err)
	}
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Auction API
//	@version		1.0
//	@description	English auctions settled in a fungible token.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	store := mustInitStorage(context)
	redisCache := initRedis(context)
	locker := mustInitLocker(context, redisCache)

	initCfg := auction.Config{}
	if err := viper.UnmarshalKey("auction", &initCfg); err != nil {
		context.WithField("err", err).Panic("viper.UnmarshalKey auction failed")
	}
	initCfg.ToLower()

	tokens := tokenledger.New(tokenledger.Config{
		Address:  initCfg.TokenLedger,
		Symbol:   viper.GetString("ledger.token.symbol"),
		Decimals: viper.GetInt32("ledger.token.decimals"),
	})
	assets := assetregistry.New(assetregistry.Config{
		Address: initCfg.AssetRegistry,
		Name:    viper.GetString("ledger.asset.name"),
	})
	priceFormatter := pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{Decimals: tokens.Decimals()})

	observers := []auction.Observer{}
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		discordCfg := discord.Config{}
		if err := viper.UnmarshalKey("discord", &discordCfg); err != nil {
			context.WithField("err", err).Panic("viper.UnmarshalKey discord failed")
		}
		discordCfg.Symbol = tokens.Symbol()
		notifier, err := discord.New(discordCfg, priceFormatter)
		if err != nil {
			context.WithField("err", err).Panic("discord.New failed")
		}
		observers = append(observers, notifier)
	}
	busCfg := eventbus.Config{}
	if err := viper.UnmarshalKey("eventbus", &busCfg); err != nil {
		context.WithField("err", err).Panic("viper.UnmarshalKey eventbus failed")
	}
	bus := eventbus.New(busCfg, observers...)
	defer bus.Close()

	config := config_usecase.New(&config_usecase.ConfigUseCaseCfg{
		ConfigRepo: store.config,
		EventRepo:  store.events,
		Transactor: store.transactor,
		Locker:     locker,
		Publisher:  bus,
	})
	if _, err := config.Initialize(context, initCfg); errors.Is(err, domain.ErrAlreadyInitialized) {
		context.Info("auction config already initialized")
	} else if err != nil {
		context.WithField("err", err).Panic("config.Initialize failed")
	}

	settlement := settlement_usecase.New(&settlement_usecase.SettlementUseCaseCfg{
		TokenLedger:   tokens.Client(initCfg.Escrow),
		AssetRegistry: assets.Client(initCfg.Escrow),
		Escrow:        initCfg.Escrow,
		AuthorCache:   initAuthorCache(redisCache),
	})
	auctions := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Repo:           store.auctions,
		EventRepo:      store.events,
		ConfigRepo:     store.config,
		Settlement:     settlement,
		Registry:       assets.Client(initCfg.Escrow),
		Transactor:     store.transactor,
		Locker:         locker,
		Publisher:      bus,
		PriceFormatter: priceFormatter,
	})
	signingMsg := viper.GetString("auth.signingMsgTemplate")
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: signingMsg,
		TokenTtl:           viper.GetDuration("auth.tokenTtl"),
		NonceWindow:        viper.GetDuration("auth.nonceWindow"),
	})
	healthCheck := hc_usecase.New(hc_repo.New(store.mongo, redisCache))

	authMiddleware := auth_middleware.New(auth)

	auth_delivery.New(e, auth, signingMsg)
	auction_delivery.New(e, auctions, priceFormatter, authMiddleware)
	config_delivery.New(e, config, authMiddleware)
	if viper.GetBool("ledger.http") {
		ledger_delivery.New(e, tokens, assets, priceFormatter, authMiddleware)
	}
	hc_delivery.New(e, healthCheck)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	if !bus.Drain(5 * time.Second) {
		log.Log().Warn("observers still running at exit")
	}
}
