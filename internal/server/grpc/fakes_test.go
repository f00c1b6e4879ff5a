package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/server/models"
	"github.com/dmitrijs2005/duosync/internal/server/services"
)

type fakeUsers struct {
	registerErr error
	saltErr     error
	loginErr    error
	refreshErr  error

	gotEmail string
}

func (f *fakeUsers) Register(_ context.Context, email string, salt, verifier []byte) (*models.User, error) {
	f.gotEmail = email
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	id, _ := document.IdentityFromEmail(email)
	return &models.User{ID: "u1", Email: email, Identity: id}, nil
}

func (f *fakeUsers) GetSalt(_ context.Context, email string) ([]byte, error) {
	if f.saltErr != nil {
		return nil, f.saltErr
	}
	return []byte("0123456789abcdef"), nil
}

func (f *fakeUsers) Login(_ context.Context, email string, verifier []byte) (*services.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	id, _ := document.IdentityFromEmail(email)
	return &services.LoginResult{
		TokenPair: services.TokenPair{AccessToken: "at", RefreshToken: "rt"},
		Identity:  id,
	}, nil
}

func (f *fakeUsers) RefreshToken(_ context.Context, token string) (*services.TokenPair, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return &services.TokenPair{AccessToken: "at2", RefreshToken: "rt2"}, nil
}

type updateCall struct {
	caller, id document.Identity
	patch      document.Patch
}

type fakeDocuments struct {
	mu      sync.Mutex
	docs    map[document.Identity]*models.Document
	updates []updateCall
	err     error

	// events are sent to subscribers after the current document.
	events chan *models.Document
}

func newFakeDocuments() *fakeDocuments {
	return &fakeDocuments{docs: map[document.Identity]*models.Document{}, events: make(chan *models.Document, 4)}
}

func (f *fakeDocuments) Get(_ context.Context, id document.Identity) (*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.docs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return d, nil
}

func (f *fakeDocuments) Exists(_ context.Context, id document.Identity) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.docs[id]
	return ok, nil
}

func (f *fakeDocuments) Update(_ context.Context, caller, id document.Identity, patch document.Patch) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updateCall{caller: caller, id: id, patch: patch})
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.updates)), nil
}

func (f *fakeDocuments) Subscribe(ctx context.Context, id document.Identity, send func(*models.Document) error) error {
	if d, err := f.Get(ctx, id); err == nil {
		if err := send(d); err != nil {
			return err
		}
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d := <-f.events:
			if err := send(d); err != nil {
				return err
			}
		}
	}
}

type fakePhotos struct {
	owner  document.Identity
	caller document.Identity
	err    error
}

func (f *fakePhotos) PresignUpload(_ context.Context, owner document.Identity, filename string) (*services.PresignedURL, error) {
	f.owner = owner
	if f.err != nil {
		return nil, f.err
	}
	return &services.PresignedURL{Key: "photos/" + string(owner) + "/" + filename, URL: "https://s3/put", ExpiresAt: time.Unix(100, 0).UTC()}, nil
}

func (f *fakePhotos) PresignDownload(_ context.Context, caller document.Identity, key string) (*services.PresignedURL, error) {
	f.caller = caller
	if f.err != nil {
		return nil, f.err
	}
	return &services.PresignedURL{Key: key, URL: "https://s3/get", ExpiresAt: time.Unix(200, 0).UTC()}, nil
}
