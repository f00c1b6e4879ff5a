package grpc

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/duosync/internal/document"
	pb "github.com/dmitrijs2005/duosync/internal/proto"
	"github.com/dmitrijs2005/duosync/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := s.users.Register(ctx, req.Email, req.Salt, req.Verifier)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RegisterResponse{Identity: string(u.Identity)}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	salt, err := s.users.GetSalt(ctx, req.Email)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetSaltResponse{Salt: salt}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	res, err := s.users.Login(ctx, req.Email, req.VerifierCandidate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		Identity:     string(res.Identity),
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	pair, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) GetDocument(ctx context.Context, req *pb.GetDocumentRequest) (*pb.DocumentResponse, error) {
	doc, err := s.documents.Get(ctx, document.Identity(req.Identity))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	body, err := json.Marshal(doc.Body)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DocumentResponse{Document: body, Version: doc.Version}, nil
}

func (s *GRPCServer) UpdateDocument(ctx context.Context, req *pb.UpdateDocumentRequest) (*pb.UpdateDocumentResponse, error) {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing claims")
	}

	patch, err := document.ParsePatch(req.Patch)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	version, err := s.documents.Update(ctx, claims.Identity, document.Identity(req.Identity), patch)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UpdateDocumentResponse{Version: version}, nil
}

func (s *GRPCServer) DocumentExists(ctx context.Context, req *pb.DocumentExistsRequest) (*pb.DocumentExistsResponse, error) {
	ok, err := s.documents.Exists(ctx, document.Identity(req.Identity))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DocumentExistsResponse{Exists: ok}, nil
}

func (s *GRPCServer) PresignPhotoUpload(ctx context.Context, req *pb.PresignPhotoUploadRequest) (*pb.PresignPhotoUploadResponse, error) {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing claims")
	}

	u, err := s.photos.PresignUpload(ctx, claims.Identity, req.Filename)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.PresignPhotoUploadResponse{Key: u.Key, Url: u.URL, ExpiresAt: u.ExpiresAt.Unix()}, nil
}

func (s *GRPCServer) PresignPhotoDownload(ctx context.Context, req *pb.PresignPhotoDownloadRequest) (*pb.PresignPhotoDownloadResponse, error) {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing claims")
	}

	u, err := s.photos.PresignDownload(ctx, claims.Identity, req.Key)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.PresignPhotoDownloadResponse{Url: u.URL, ExpiresAt: u.ExpiresAt.Unix()}, nil
}

// Subscribe streams the current document and every later version until the
// client goes away or the server shuts down.
func (s *GRPCServer) Subscribe(req *pb.SubscribeRequest, stream gpb.ServerStreamingServer[pb.DocumentEvent]) error {
	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()
	stop := context.AfterFunc(s.base, cancel)
	defer stop()

	err := s.documents.Subscribe(ctx, document.Identity(req.Identity), func(d *models.Document) error {
		body, err := json.Marshal(d.Body)
		if err != nil {
			return err
		}
		return stream.Send(&pb.DocumentEvent{Identity: string(d.Identity), Document: body, Version: d.Version})
	})
	if err != nil {
		return s.toStatus(ctx, err)
	}
	return nil
}
