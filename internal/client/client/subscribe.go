package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/document"
	pb "github.com/dmitrijs2005/duosync/internal/proto"
	"github.com/dmitrijs2005/duosync/internal/remote"
)

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// Subscribe follows id's document on a background stream until the
// returned function is called or ctx ends. It never fails up front:
// connection problems are retried in the background.
func (s *GRPCClient) Subscribe(ctx context.Context, id document.Identity, fn func(*document.Document)) (remote.Unsubscribe, error) {
	ctx, cancel := context.WithCancel(ctx)

	go s.follow(ctx, id, fn)

	var once sync.Once
	return func() { once.Do(cancel) }, nil
}

func (s *GRPCClient) follow(ctx context.Context, id document.Identity, fn func(*document.Document)) {
	b := backoff.WithContext(s.newBackOff(), ctx)
	logger := s.logger.With("identity", string(id))

	for {
		err := s.stream(ctx, id, fn, b.Reset)
		if ctx.Err() != nil {
			return
		}

		if errors.Is(err, common.ErrTokenExpired) {
			access, _ := s.tokens()
			if rerr := s.refresh(ctx, access); rerr == nil {
				continue
			}
		}

		wait := b.NextBackOff()
		if wait == backoff.Stop {
			logger.Error(ctx, "subscription abandoned", "error", err)
			return
		}
		logger.Warn(ctx, "subscription interrupted, reconnecting", "error", err, "retry_in", wait.String())

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}

// stream delivers events of one server stream until it breaks.
func (s *GRPCClient) stream(ctx context.Context, id document.Identity, fn func(*document.Document), received func()) error {
	st, err := s.client.Subscribe(ctx, &pb.SubscribeRequest{Identity: string(id)})
	if err != nil {
		return s.mapError(err)
	}

	for {
		ev, err := st.Recv()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("stream closed by server")
		}
		if err != nil {
			return s.mapError(err)
		}
		received()

		doc, err := decodeDocument(ev.Document)
		if err != nil {
			s.logger.Warn(ctx, "undecodable document event", "identity", string(id), "error", err)
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fn(doc)
	}
}
