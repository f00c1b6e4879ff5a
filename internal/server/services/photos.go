package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/logging"
	"github.com/dmitrijs2005/duosync/internal/server/config"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const photoKeyPrefix = "photos"

// PartnerLookup reports whom a document is linked to.
type PartnerLookup interface {
	PartnerOf(ctx context.Context, id document.Identity) (document.Identity, error)
}

// PresignedURL is a time-limited S3 URL.
type PresignedURL struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// PhotoService hands out presigned S3 URLs for photo blobs. Photo metadata
// lives in the owner's document; only the bytes go to object storage.
type PhotoService struct {
	config   *config.Config
	partners PartnerLookup
	logger   logging.Logger
	now      func() time.Time
}

func NewPhotoService(cfg *config.Config, partners PartnerLookup, l logging.Logger) *PhotoService {
	return &PhotoService{
		config:   cfg,
		partners: partners,
		logger:   l.With("module", "photos"),
		now:      time.Now,
	}
}

// StorageKey returns a fresh object key under owner's prefix, keeping the
// extension of filename.
func StorageKey(owner document.Identity, filename string, now time.Time) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if len(ext) > 8 || strings.ContainsAny(ext, "/\\ ") {
		ext = ""
	}
	return fmt.Sprintf("%s/%s/%04d/%02d/%s%s", photoKeyPrefix, owner, now.Year(), int(now.Month()), uuid.NewString(), ext)
}

// keyOwner extracts the owner identity from a key made by StorageKey.
func keyOwner(key string) (document.Identity, bool) {
	parts := strings.Split(key, "/")
	if len(parts) != 5 || parts[0] != photoKeyPrefix || parts[1] == "" || parts[4] == "" {
		return "", false
	}
	return document.Identity(parts[1]), true
}

func (s *PhotoService) expiry() time.Duration {
	if s.config.PresignExpiry > 0 {
		return s.config.PresignExpiry
	}
	return 15 * time.Minute
}

func (s *PhotoService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignUpload issues a PUT URL for a new photo owned by owner.
func (s *PhotoService) PresignUpload(ctx context.Context, owner document.Identity, filename string) (*PresignedURL, error) {
	if owner == "" {
		return nil, common.ErrorInvalidInput
	}

	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	now := s.now()
	bucket := s.config.S3Bucket
	key := StorageKey(owner, filename, now)

	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.expiry()))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	photoPresignsTotal.WithLabelValues("upload").Inc()
	return &PresignedURL{Key: key, URL: req.URL, ExpiresAt: now.Add(s.expiry())}, nil
}

// PresignDownload issues a GET URL for key. The caller must own the photo
// or have linked to its owner.
func (s *PhotoService) PresignDownload(ctx context.Context, caller document.Identity, key string) (*PresignedURL, error) {
	owner, ok := keyOwner(key)
	if !ok || caller == "" {
		return nil, common.ErrorInvalidInput
	}

	if owner != caller {
		partner, err := s.partners.PartnerOf(ctx, caller)
		if err != nil {
			return nil, err
		}
		if partner != owner {
			s.logger.Warn(ctx, "photo download rejected", "caller", caller, "owner", owner)
			return nil, common.ErrorForbidden
		}
	}

	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.expiry()))
	if err != nil {
		return nil, fmt.Errorf("presign get: %w", err)
	}

	photoPresignsTotal.WithLabelValues("download").Inc()
	return &PresignedURL{Key: key, URL: req.URL, ExpiresAt: s.now().Add(s.expiry())}, nil
}
