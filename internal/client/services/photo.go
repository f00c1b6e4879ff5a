package services

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/duosync/internal/client/session"
	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/netx"
)

// MaxPhotoSize is the largest file UploadPhoto accepts.
const MaxPhotoSize = netx.MaxDownloadSize

// PhotoClient issues presigned URLs for photo blobs.
type PhotoClient interface {
	PresignPhotoUpload(ctx context.Context, filename string) (key string, url string, err error)
	PresignPhotoDownload(ctx context.Context, key string) (string, error)
}

// PhotoService moves photo blobs between local files and object storage.
// Photo metadata lives in the document and is written by the session.
type PhotoService interface {
	Upload(ctx context.Context, path string) (session.PhotoInput, error)
	Download(ctx context.Context, key string) ([]byte, error)
}

type photoService struct {
	client PhotoClient
}

func NewPhotoService(client PhotoClient) PhotoService {
	return &photoService{client: client}
}

var (
	readFile     = os.ReadFile
	uploadBlob   = netx.UploadToPresignedURL
	downloadBlob = netx.DownloadFromPresignedURL
)

// Upload sends the file at path to storage and returns the metadata to
// record with session.AddPhoto.
func (s *photoService) Upload(ctx context.Context, path string) (session.PhotoInput, error) {
	data, err := readFile(path)
	if err != nil {
		return session.PhotoInput{}, fmt.Errorf("read photo: %w", err)
	}
	if len(data) == 0 || len(data) > MaxPhotoSize {
		return session.PhotoInput{}, fmt.Errorf("%w: photo must be between 1 and %d bytes", common.ErrorInvalidInput, MaxPhotoSize)
	}

	name := filepath.Base(path)
	key, url, err := s.client.PresignPhotoUpload(ctx, name)
	if err != nil {
		return session.PhotoInput{}, fmt.Errorf("presign upload: %w", err)
	}

	if err := uploadBlob(ctx, url, mime.TypeByExtension(filepath.Ext(name)), data); err != nil {
		return session.PhotoInput{}, fmt.Errorf("upload photo: %w", err)
	}

	return session.PhotoInput{StorageKey: key, Filename: name, Size: int64(len(data))}, nil
}

func (s *photoService) Download(ctx context.Context, key string) ([]byte, error) {
	url, err := s.client.PresignPhotoDownload(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("presign download: %w", err)
	}
	return downloadBlob(ctx, url)
}
