package container

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/shortlink/internal/analytics"
	analyticsstore "github.com/serroba/shortlink/internal/analytics/store"
	"github.com/serroba/shortlink/internal/messaging"
	"go.uber.org/zap"
)

const analyticsConsumerGroup = "shortlink-analytics"

// PublisherGroupPackage provides the watermill publisher over Redis streams.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		client := do.MustInvoke[*redis.Client](i)

		publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: client,
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})
}

// AnalyticsStorePackage provides the event store for the consumer binary.
// With a database pool available events are persisted; otherwise they are
// only logged.
func AnalyticsStorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (analytics.Store, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		pool, err := invokePostgresPool(i)
		if err != nil {
			logger.Warn("analytics events will not be persisted", zap.Error(err))

			return analyticsstore.NewNoop(logger), nil
		}

		return analyticsstore.NewPostgres(pool), nil
	})
}

// ConsumerGroupPackage provides the analytics consumer group subscribed to
// both shortener topics.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		client := do.MustInvoke[*redis.Client](i)
		eventStore := do.MustInvoke[analytics.Store](i)
		logger := do.MustInvoke[*zap.Logger](i)

		subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        client,
			ConsumerGroup: analyticsConsumerGroup,
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(messaging.NewConsumer(subscriber, analytics.TopicURLCreated, eventStore.SaveURLCreated, logger))
		group.Add(messaging.NewConsumer(subscriber, analytics.TopicURLAccessed, eventStore.SaveURLAccessed, logger))

		return group, nil
	})
}
