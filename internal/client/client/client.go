package client

import (
	"context"

	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/remote"
)

// Client is everything the CLI needs from the server: account calls, the
// document store and photo transfer URLs.
type Client interface {
	remote.Store

	Close() error
	Register(ctx context.Context, email string, salt []byte, verifier []byte) (document.Identity, error)
	GetSalt(ctx context.Context, email string) ([]byte, error)
	Login(ctx context.Context, email string, verifier []byte) (document.Identity, error)
	Logout()
	Ping(ctx context.Context) error
	PresignPhotoUpload(ctx context.Context, filename string) (key string, url string, err error)
	PresignPhotoDownload(ctx context.Context, key string) (string, error)
}

var _ Client = (*GRPCClient)(nil)
