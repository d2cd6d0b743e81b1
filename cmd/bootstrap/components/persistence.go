package components

import (
	"context"
	"errors"
	"log/slog"

	"hotel-ops/internal/infra/blobstore"
	"hotel-ops/internal/infra/cache"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/infra/repository"
	"hotel-ops/internal/pkg/config"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			docstore.NewPostgresStore,
			fx.As(new(docstore.Store)),
		),
		fx.Annotate(
			blobstore.NewPostgresBlobStore,
			fx.As(new(commands.BlobStore)),
		),
		NewRoomViewCache,
		fx.Annotate(
			cache.NewRedisChangeNotifier,
			fx.As(new(commands.ChangeNotifier)),
		),
		cache.NewSubscriber,

		// Write side
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewTaskRepository,
			fx.As(new(commands.TaskRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewFoodRepository,
			fx.As(new(commands.FoodRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),

		// Read side: the same typed repositories back the query interfaces.
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(queries.RoomReadRepo)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(queries.BookingReadRepo)),
			fx.As(new(queries.ActiveBookingReadRepo)),
		),
		fx.Annotate(
			repository.NewTaskRepository,
			fx.As(new(queries.TaskReadRepo)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(queries.CustomerReadRepo)),
		),
		fx.Annotate(
			repository.NewFoodRepository,
			fx.As(new(queries.FoodReadRepo)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(queries.UserReadRepo)),
		),
	),
	fx.Invoke(StartCacheInvalidator),
)

// StartCacheInvalidator drops the cached room listing whenever a room or
// booking changes, in this process or any other publishing to the same
// redis.
func StartCacheInvalidator(lc fx.Lifecycle, sub *cache.Subscriber, viewCache queries.ViewCache) {
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				err := sub.Run(runCtx, func(event commands.ChangeEvent) {
					switch event.Collection {
					case docstore.CollectionRooms, docstore.CollectionBookings:
						if err := viewCache.Invalidate(runCtx); err != nil {
							slog.Warn("failed to invalidate room view cache", "error", err)
						}
					}
				})
				if err != nil && !errors.Is(err, context.Canceled) {
					slog.Error("change subscriber stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

func NewRoomViewCache(client *redis.Client, cfg config.Config) queries.ViewCache {
	return cache.NewRoomViewCache(client, cfg.Redis.ViewTTL)
}
