package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ray-remotestate/restro-cart/handlers"
	"github.com/ray-remotestate/restro-cart/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 1 * time.Minute
)

func SetupRoutes() *Server {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")
	router.HandleFunc("/session", handlers.CreateTableSession).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middlewares.TableSessionMiddleware)

	api.HandleFunc("/cart", handlers.GetCart).Methods("GET")
	api.HandleFunc("/cart", handlers.ClearCart).Methods("DELETE")
	api.HandleFunc("/cart/items", handlers.AddCartLine).Methods("POST")
	api.HandleFunc("/cart/items/{itemKey}", handlers.UpdateCartLineQuantity).Methods("PATCH")
	api.HandleFunc("/cart/items/{itemKey}", handlers.RemoveCartLine).Methods("DELETE")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
