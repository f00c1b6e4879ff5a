// Package grpc exposes the document service over gRPC: request handlers,
// access-token interceptors and the server loop.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/logging"
	pb "github.com/dmitrijs2005/duosync/internal/proto"
	"github.com/dmitrijs2005/duosync/internal/server/models"
	"github.com/dmitrijs2005/duosync/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, email string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, email string) ([]byte, error)
	Login(ctx context.Context, email string, verifierCandidate []byte) (*services.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type documentSvc interface {
	Get(ctx context.Context, id document.Identity) (*models.Document, error)
	Exists(ctx context.Context, id document.Identity) (bool, error)
	Update(ctx context.Context, caller, id document.Identity, patch document.Patch) (int64, error)
	Subscribe(ctx context.Context, id document.Identity, send func(*models.Document) error) error
}

type photoSvc interface {
	PresignUpload(ctx context.Context, owner document.Identity, filename string) (*services.PresignedURL, error)
	PresignDownload(ctx context.Context, caller document.Identity, key string) (*services.PresignedURL, error)
}

type GRPCServer struct {
	pb.UnimplementedDocumentServiceServer
	address   string
	users     userSvc
	documents documentSvc
	photos    photoSvc
	logger    logging.Logger
	jwtSecret []byte

	// base ends open streams when the server shuts down.
	base            context.Context
	shutdownTimeout time.Duration
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ds documentSvc, ps photoSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		users:           us,
		documents:       ds,
		photos:          ps,
		jwtSecret:       []byte(secretKey),
		base:            context.Background(),
		shutdownTimeout: 5 * time.Second,
	}
}

// NewServer builds the gpb.Server with the service and interceptors
// registered.
func (s *GRPCServer) NewServer() *gpb.Server {
	srv := gpb.NewServer(
		gpb.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
		gpb.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	pb.RegisterDocumentServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx ends, then stops gracefully.
// Streams still open after the shutdown timeout are cut.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	s.base = ctx
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		t := time.NewTimer(s.shutdownTimeout)
		defer t.Stop()
		select {
		case <-stopped:
		case <-t.C:
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
