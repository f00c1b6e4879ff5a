package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/logging"
	pb "github.com/dmitrijs2005/duosync/internal/proto"
	"github.com/dmitrijs2005/duosync/internal/remote"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const saltTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *gpb.ClientConn
	client      pb.DocumentServiceClient
	logger      logging.Logger
	newBackOff  func() backoff.BackOff

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	identity     document.Identity

	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *gpb.ClientConn,
	invoker gpb.UnaryInvoker,
	opts ...gpb.CallOption,
) error {
	if method == pb.DocumentService_RefreshToken_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, _ := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}

	if rerr := s.refresh(ctx, access); rerr != nil {
		return err
	}

	// tokens refreshed, retrying with the new access token
	access, _ = s.tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func (s *GRPCClient) streamAccessTokenInterceptor(
	ctx context.Context,
	desc *gpb.StreamDesc,
	cc *gpb.ClientConn,
	method string,
	streamer gpb.Streamer,
	opts ...gpb.CallOption,
) (gpb.ClientStream, error) {
	access, _ := s.tokens()
	return streamer(withAccessToken(ctx, access), desc, cc, method, opts...)
}

// refresh rotates the token pair unless another caller already replaced
// stale in the meantime.
func (s *GRPCClient) refresh(ctx context.Context, stale string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.tokens()
	if access != stale {
		return nil
	}
	if refresh == "" {
		return ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	s.logger.Debug(ctx, "access token refreshed")
	return nil
}

func NewGRPCClient(endpointURL string, l logging.Logger, opts ...gpb.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: endpointURL,
		logger:      l.With("module", "grpc_client"),
		newBackOff:  defaultBackOff,
	}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...gpb.DialOption) error {
	base := []gpb.DialOption{
		gpb.WithTransportCredentials(insecure.NewCredentials()),
		gpb.WithUnaryInterceptor(s.accessTokenInterceptor),
		gpb.WithStreamInterceptor(s.streamAccessTokenInterceptor),
	}
	conn, err := gpb.NewClient(s.endpointURL, append(base, opts...)...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewDocumentServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, email string, salt []byte, verifier []byte) (document.Identity, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Salt: salt, Verifier: verifier})
	if err != nil {
		return "", s.mapError(err)
	}
	return document.Identity(resp.Identity), nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, email string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, saltTimeout)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

// Login stores the issued token pair and returns the identity the server
// derived from email.
func (s *GRPCClient) Login(ctx context.Context, email string, verifier []byte) (document.Identity, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, VerifierCandidate: verifier})
	if err != nil {
		return "", s.mapError(err)
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.identity = document.Identity(resp.Identity)
	s.mu.Unlock()

	return document.Identity(resp.Identity), nil
}

// Logout forgets the token pair.
func (s *GRPCClient) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken, s.identity = "", "", ""
}

// CurrentIdentity implements remote.IdentityProvider.
func (s *GRPCClient) CurrentIdentity() (document.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.identity != ""
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Get(ctx context.Context, id document.Identity) (*document.Document, error) {
	resp, err := s.client.GetDocument(ctx, &pb.GetDocumentRequest{Identity: string(id)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return decodeDocument(resp.Document)
}

func (s *GRPCClient) Update(ctx context.Context, id document.Identity, patch document.Patch) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}
	_, err = s.client.UpdateDocument(ctx, &pb.UpdateDocumentRequest{Identity: string(id), Patch: body})
	return s.mapError(err)
}

func (s *GRPCClient) Exists(ctx context.Context, id document.Identity) (bool, error) {
	resp, err := s.client.DocumentExists(ctx, &pb.DocumentExistsRequest{Identity: string(id)})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Exists, nil
}

func (s *GRPCClient) PresignPhotoUpload(ctx context.Context, filename string) (string, string, error) {
	resp, err := s.client.PresignPhotoUpload(ctx, &pb.PresignPhotoUploadRequest{Filename: filename})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) PresignPhotoDownload(ctx context.Context, key string) (string, error) {
	resp, err := s.client.PresignPhotoDownload(ctx, &pb.PresignPhotoDownloadRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Url, nil
}

func decodeDocument(b []byte) (*document.Document, error) {
	r, err := document.ParseRaw(b)
	if err != nil {
		return nil, err
	}
	return r.Decode()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return remote.ErrNotFound
	case codes.Unauthenticated:
		if st.Message() == common.ErrTokenExpired.Error() {
			return common.ErrTokenExpired
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return common.ErrorForbidden
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorInvalidInput, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
