package router

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/bookshelf-server/internal/api/grpc/handler"
	"github.com/dtroode/bookshelf-server/internal/api/grpc/middleware"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// Router assembles the gRPC server exposing operational services.
type Router struct {
	pinger model.Pinger
	logger *logger.Logger
}

// New creates new gRPC Router instance.
func New(pinger model.Pinger, logger *logger.Logger) *Router {
	return &Router{pinger: pinger, logger: logger}
}

// Register builds the gRPC server with logging and recovery interceptors.
func (r *Router) Register() *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.Logging(r.logger),
			middleware.Recovery(r.logger),
		),
	)

	healthpb.RegisterHealthServer(s, handler.NewHealth(r.pinger, r.logger))
	reflection.Register(s)

	return s
}
