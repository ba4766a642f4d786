package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/restro-cart/cart"
	"github.com/ray-remotestate/restro-cart/config"
	"github.com/ray-remotestate/restro-cart/database"
	"github.com/ray-remotestate/restro-cart/database/cartstore"
	"github.com/ray-remotestate/restro-cart/database/dbhelper"
	"github.com/ray-remotestate/restro-cart/handlers"
	"github.com/ray-remotestate/restro-cart/server"
)

const shutdownTimeOut = 10 * time.Second

func main() {
	config.Init()

	var store cart.Store
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logrus.Panicf("failed to connect to redis, error: %v", err)
		}
		store = cartstore.NewRedis(client)
	} else {
		logrus.Println("REDIS_ADDR not set, carts will live in process memory")
		store = cartstore.NewMemory()
	}

	var validator cart.MenuValidator
	if config.StrictValidation {
		if err := database.ConnectAndMigrate(config.DatabaseURL); err != nil {
			logrus.Panicf("failed to initialize database, error: %v", err)
		}
		logrus.Println("migration is successful")
		validator = dbhelper.MenuLookup{}
	}

	handlers.InitCart(cart.NewService(store, validator, cart.Config{
		TTL:           config.CartTTL,
		Strict:        config.StrictValidation,
		LookupTimeout: config.MenuLookupTimeout,
	}))

	svr := server.SetupRoutes()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := svr.Run(config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Panicf("server stopped, error: %v", err)
		}
	}()
	logrus.Printf("cart service listening on %s", config.Port)

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeOut); err != nil {
		logrus.WithError(err).Error("failed to shut down the server cleanly")
	}
	if err := database.ShutdownDatabase(); err != nil {
		logrus.WithError(err).Error("failed to close database connection")
	}
}
