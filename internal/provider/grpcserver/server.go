// Package grpcserver exposes a provider.Directory as the identity gRPC
// service consumed by the client gateway.
package grpcserver

import (
	"context"
	"net"

	"github.com/dmitrijs2005/clubauth/internal/logging"
	"github.com/dmitrijs2005/clubauth/internal/provider"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	address   string
	directory *provider.Directory
	logger    logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, d *provider.Directory) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		directory: d,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	srv.RegisterService(&identityServiceDesc, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
