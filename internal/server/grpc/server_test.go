package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/logging"
	pb "github.com/dmitrijs2005/duosync/internal/proto"
	"github.com/dmitrijs2005/duosync/internal/server/auth"
	"github.com/dmitrijs2005/duosync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const testSecret = "test-secret"

type harness struct {
	users  *fakeUsers
	docs   *fakeDocuments
	photos *fakePhotos
	client pb.DocumentServiceClient
	stop   context.CancelFunc
	done   chan error
}

// startServer serves a GRPCServer over an in-memory listener and returns
// a client connected to it.
func startServer(t *testing.T) *harness {
	t.Helper()

	h := &harness{users: &fakeUsers{}, docs: newFakeDocuments(), photos: &fakePhotos{}, done: make(chan error, 1)}
	s := NewGRPCServer("bufnet", logging.Nop(), h.users, h.docs, h.photos, testSecret)
	s.shutdownTimeout = time.Second

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	h.stop = cancel
	go func() { h.done <- s.Serve(ctx, lis) }()

	conn, err := gpb.NewClient("passthrough:///bufnet",
		gpb.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		gpb.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	h.client = pb.NewDocumentServiceClient(conn)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case <-h.done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})
	return h
}

func withToken(t *testing.T, identity document.Identity, ttl time.Duration) context.Context {
	t.Helper()
	tok, err := auth.GenerateToken("u1", identity, []byte(testSecret), ttl)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, tok)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := NewGRPCServer("127.0.0.1:0", logging.Nop(), &fakeUsers{}, newFakeDocuments(), &fakePhotos{}, testSecret)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	s := NewGRPCServer("127.0.0.1:99999", logging.Nop(), &fakeUsers{}, newFakeDocuments(), &fakePhotos{}, testSecret)
	require.Error(t, s.Run(context.Background()))
}

func TestPublicMethods_NoToken(t *testing.T) {
	h := startServer(t)
	ctx := context.Background()

	ping, err := h.client.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)

	reg, err := h.client.Register(ctx, &pb.RegisterRequest{Email: "alice@example.org", Salt: []byte("s"), Verifier: []byte("v")})
	require.NoError(t, err)
	assert.Equal(t, "alice@example_org", reg.Identity)

	salt, err := h.client.GetSalt(ctx, &pb.GetSaltRequest{Email: "alice@example.org"})
	require.NoError(t, err)
	assert.Len(t, salt.Salt, 16)

	login, err := h.client.Login(ctx, &pb.LoginRequest{Email: "alice@example.org", VerifierCandidate: []byte("v")})
	require.NoError(t, err)
	assert.Equal(t, "at", login.AccessToken)
	assert.Equal(t, "rt", login.RefreshToken)
	assert.Equal(t, "alice@example_org", login.Identity)

	ref, err := h.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: "rt"})
	require.NoError(t, err)
	assert.Equal(t, "at2", ref.AccessToken)
}

func TestProtectedMethods_RequireToken(t *testing.T) {
	h := startServer(t)

	_, err := h.client.GetDocument(context.Background(), &pb.GetDocumentRequest{Identity: "alice@example_org"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	bad := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "garbage")
	_, err = h.client.DocumentExists(bad, &pb.DocumentExistsRequest{Identity: "alice@example_org"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, common.ErrInvalidToken.Error(), status.Convert(err).Message())

	expired := withToken(t, "alice@example_org", -time.Minute)
	_, err = h.client.DocumentExists(expired, &pb.DocumentExistsRequest{Identity: "alice@example_org"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "token expired", status.Convert(err).Message())

	stream, err := h.client.Subscribe(context.Background(), &pb.SubscribeRequest{Identity: "alice@example_org"})
	if err == nil {
		_, err = stream.Recv()
	}
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestDocuments_GetExistsUpdate(t *testing.T) {
	h := startServer(t)
	h.docs.docs["bob@example_org"] = &models.Document{
		Identity: "bob@example_org",
		Body:     document.Raw{"email": json.RawMessage(`"bob@example.org"`)},
		Version:  3,
	}
	ctx := withToken(t, "alice@example_org", time.Minute)

	got, err := h.client.GetDocument(ctx, &pb.GetDocumentRequest{Identity: "bob@example_org"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Version)
	assert.JSONEq(t, `{"email":"bob@example.org"}`, string(got.Document))

	_, err = h.client.GetDocument(ctx, &pb.GetDocumentRequest{Identity: "carol@example_org"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	ex, err := h.client.DocumentExists(ctx, &pb.DocumentExistsRequest{Identity: "bob@example_org"})
	require.NoError(t, err)
	assert.True(t, ex.Exists)

	upd, err := h.client.UpdateDocument(ctx, &pb.UpdateDocumentRequest{Identity: "bob@example_org", Patch: []byte(`{"sharedNotes":[]}`)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.Version)

	require.Len(t, h.docs.updates, 1)
	assert.Equal(t, document.Identity("alice@example_org"), h.docs.updates[0].caller, "caller comes from the token")
	assert.Equal(t, document.Identity("bob@example_org"), h.docs.updates[0].id)
	assert.Contains(t, h.docs.updates[0].patch, document.FieldSharedNotes)

	_, err = h.client.UpdateDocument(ctx, &pb.UpdateDocumentRequest{Identity: "bob@example_org", Patch: []byte(`["sharedNotes"]`)})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Len(t, h.docs.updates, 1, "malformed patch never reaches the service")
}

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{common.ErrorForbidden, codes.PermissionDenied, ""},
		{common.ErrorInvalidInput, codes.InvalidArgument, ""},
		{common.ErrorAlreadyExists, codes.AlreadyExists, ""},
		{common.ErrorNotFound, codes.NotFound, ""},
		{common.ErrorUnauthorized, codes.Unauthenticated, ""},
		{common.ErrRefreshTokenExpired, codes.Unauthenticated, ""},
		{common.ErrTokenExpired, codes.Unauthenticated, "token expired"},
		{errors.New("disk on fire"), codes.Internal, common.ErrorInternal.Error()},
	}

	s := NewGRPCServer("", logging.Nop(), nil, nil, nil, testSecret)
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			err := s.toStatus(context.Background(), tc.err)
			assert.Equal(t, tc.code, status.Code(err))
			if tc.msg != "" {
				assert.Equal(t, tc.msg, status.Convert(err).Message())
			}
		})
	}
	assert.NoError(t, s.toStatus(context.Background(), nil))
}

func TestUpdateDocument_ForbiddenOverWire(t *testing.T) {
	h := startServer(t)
	h.docs.err = common.ErrorForbidden
	ctx := withToken(t, "alice@example_org", time.Minute)

	_, err := h.client.UpdateDocument(ctx, &pb.UpdateDocumentRequest{
		Identity: "bob@example_org",
		Patch:    []byte(`{"moods":[]}`),
	})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestPresign(t *testing.T) {
	h := startServer(t)
	ctx := withToken(t, "alice@example_org", time.Minute)

	up, err := h.client.PresignPhotoUpload(ctx, &pb.PresignPhotoUploadRequest{Filename: "us.jpg"})
	require.NoError(t, err)
	assert.Equal(t, document.Identity("alice@example_org"), h.photos.owner)
	assert.Equal(t, "photos/alice@example_org/us.jpg", up.Key)
	assert.Equal(t, "https://s3/put", up.Url)
	assert.Equal(t, int64(100), up.ExpiresAt)

	down, err := h.client.PresignPhotoDownload(ctx, &pb.PresignPhotoDownloadRequest{Key: "photos/bob@example_org/x.jpg"})
	require.NoError(t, err)
	assert.Equal(t, document.Identity("alice@example_org"), h.photos.caller)
	assert.Equal(t, "https://s3/get", down.Url)

	h.photos.err = common.ErrorForbidden
	_, err = h.client.PresignPhotoDownload(ctx, &pb.PresignPhotoDownloadRequest{Key: "photos/carol@example_org/x.jpg"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestSubscribe_StreamsSnapshotAndChanges(t *testing.T) {
	h := startServer(t)
	h.docs.docs["bob@example_org"] = &models.Document{Identity: "bob@example_org", Body: document.Raw{}, Version: 1}
	ctx, cancel := context.WithCancel(withToken(t, "alice@example_org", time.Minute))
	defer cancel()

	stream, err := h.client.Subscribe(ctx, &pb.SubscribeRequest{Identity: "bob@example_org"})
	require.NoError(t, err)

	ev, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, int64(1), ev.Version)
	assert.Equal(t, "bob@example_org", ev.Identity)

	h.docs.events <- &models.Document{Identity: "bob@example_org", Body: document.Raw{"moods": json.RawMessage(`[]`)}, Version: 2}
	ev, err = stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, int64(2), ev.Version)
	assert.JSONEq(t, `{"moods":[]}`, string(ev.Document))
}

func TestSubscribe_EndsOnShutdown(t *testing.T) {
	h := startServer(t)
	h.docs.docs["bob@example_org"] = &models.Document{Identity: "bob@example_org", Body: document.Raw{}, Version: 1}
	ctx := withToken(t, "alice@example_org", time.Minute)

	stream, err := h.client.Subscribe(ctx, &pb.SubscribeRequest{Identity: "bob@example_org"})
	require.NoError(t, err)
	_, err = stream.Recv()
	require.NoError(t, err)

	h.stop()

	errc := make(chan error, 1)
	go func() {
		_, err := stream.Recv()
		errc <- err
	}()
	select {
	case err := <-errc:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stream stayed open after shutdown")
	}
}
