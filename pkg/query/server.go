package query

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/edgeflare/stationd/proto/generated"
)

// Server owns the gRPC listener lifecycle for the query service.
type Server struct {
	addr   string
	grpc   *grpc.Server
	logger *zap.Logger
}

// NewServer registers the service on a fresh gRPC server.
func NewServer(addr string, svc *Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gs := grpc.NewServer()
	pb.RegisterStationServer(gs, svc)
	return &Server{addr: addr, grpc: gs, logger: logger}
}

// Run serves until ctx is canceled, then stops gracefully. It blocks.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("query server: listen %s: %w", s.addr, err)
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("query server listening", zap.String("addr", s.addr))
		errc <- s.grpc.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.grpc.GracefulStop()
		<-errc
		s.logger.Info("query server stopped")
		return nil
	case err := <-errc:
		return fmt.Errorf("query server: serve: %w", err)
	}
}
