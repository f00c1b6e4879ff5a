package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/logging"
	"github.com/redis/go-redis/v9"
)

// ChannelPrefix starts the Redis channel of every identity.
const ChannelPrefix = "duosync:doc:"

func channelFor(id document.Identity) string {
	return ChannelPrefix + string(id)
}

// messageSource is the part of *redis.PubSub the broker reads from.
type messageSource interface {
	ReceiveMessage(ctx context.Context) (*redis.Message, error)
	Close() error
}

// RedisBroker publishes events to Redis and relays every event it hears on
// the shared pattern subscription to a local Hub, so streams on any instance
// see commits made on any other.
type RedisBroker struct {
	hub    *Hub
	logger logging.Logger

	publish    func(ctx context.Context, channel string, payload []byte) error
	subscribe  func(ctx context.Context) messageSource
	newBackOff func() backoff.BackOff
}

// NewRedisClient parses url and checks the server answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func NewRedisBroker(client *redis.Client, l logging.Logger) *RedisBroker {
	return &RedisBroker{
		hub:    NewHub(),
		logger: l.With("module", "broker"),
		publish: func(ctx context.Context, channel string, payload []byte) error {
			return client.Publish(ctx, channel, payload).Err()
		},
		subscribe: func(ctx context.Context) messageSource {
			return client.PSubscribe(ctx, ChannelPrefix+"*")
		},
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = time.Second
			b.MaxInterval = 30 * time.Second
			b.MaxElapsedTime = 0
			return b
		},
	}
}

// Publish sends ev to Redis. Local subscribers receive it when it comes
// back on the pattern subscription. If Redis rejects the publish the event
// is delivered locally only and the error is returned.
func (b *RedisBroker) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := b.publish(ctx, channelFor(ev.Identity), payload); err != nil {
		_ = b.hub.Publish(ctx, ev)
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

func (b *RedisBroker) Subscribe(id document.Identity) (<-chan Event, func()) {
	return b.hub.Subscribe(id)
}

// Run relays Redis messages to local subscribers until ctx ends,
// resubscribing with backoff when the connection breaks.
func (b *RedisBroker) Run(ctx context.Context) {
	bo := backoff.WithContext(b.newBackOff(), ctx)

	for {
		err := b.relay(ctx, bo.Reset)
		if ctx.Err() != nil {
			return
		}

		wait := bo.NextBackOff()
		if wait == backoff.Stop {
			b.logger.Error(ctx, "redis relay abandoned", "error", err)
			return
		}
		b.logger.Warn(ctx, "redis relay interrupted, resubscribing", "error", err, "retry_in", wait.String())

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}

func (b *RedisBroker) relay(ctx context.Context, received func()) error {
	src := b.subscribe(ctx)
	defer src.Close()

	for {
		msg, err := src.ReceiveMessage(ctx)
		if err != nil {
			return err
		}
		received()

		var ev Event
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			b.logger.Warn(ctx, "undecodable redis event", "channel", msg.Channel, "error", err)
			continue
		}
		if ev.Identity == "" {
			ev.Identity = document.Identity(strings.TrimPrefix(msg.Channel, ChannelPrefix))
		}
		_ = b.hub.Publish(ctx, ev)
	}
}
