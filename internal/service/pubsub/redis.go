package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/pkg/logger"
)

const (
	channelPrefix = "form_messages:"
)

// RedisPubSub fans new submissions out to dashboard websocket clients, one
// channel per website.
type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // website uuid -> subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func (ps *RedisPubSub) getChannelName(websiteUUID string) string {
	return channelPrefix + websiteUUID
}

// Publish publishes a message event to the website's Redis channel
func (ps *RedisPubSub) Publish(ctx context.Context, event *dto.MessageEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal message event: %w", err)
	}

	channel := ps.getChannelName(event.WebsiteUUID)
	if err := ps.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe subscribes to message events for a specific website
func (ps *RedisPubSub) Subscribe(ctx context.Context, websiteUUID string, callback func(*dto.MessageEvent)) error {
	channel := ps.getChannelName(websiteUUID)

	ps.subscriberMu.RLock()
	_, exists := ps.subscribers[websiteUUID]
	ps.subscriberMu.RUnlock()
	if exists {
		ps.logger.Infof("Already subscribed to website channel: %s", channel)
		return nil
	}

	pubsub := ps.client.Subscribe(ctx, channel)

	ps.subscriberMu.Lock()
	ps.subscribers[websiteUUID] = pubsub
	ps.subscriberMu.Unlock()

	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for website channel: %s", channel)
			pubsub.Close()
			ps.subscriberMu.Lock()
			delete(ps.subscribers, websiteUUID)
			ps.subscriberMu.Unlock()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case msg := <-ch:
				var event dto.MessageEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					ps.logger.Errorf("Failed to unmarshal message event from channel %s: %v", channel, err)
					continue
				}
				callback(&event)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to website channel: %s", channel)
	return nil
}

// Unsubscribe removes the subscription for a website
func (ps *RedisPubSub) Unsubscribe(websiteUUID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if pubsub, exists := ps.subscribers[websiteUUID]; exists {
		pubsub.Close()
		delete(ps.subscribers, websiteUUID)
		ps.logger.Infof("Unsubscribed from website channel: %s", ps.getChannelName(websiteUUID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for websiteUUID, pubsub := range ps.subscribers {
		pubsub.Close()
		delete(ps.subscribers, websiteUUID)
		ps.logger.Infof("Closed subscription for website channel: %s", ps.getChannelName(websiteUUID))
	}
}
