//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"logistics/internal/gateway/kafka/orderevents"
	"logistics/internal/gateway/notify"
	"logistics/internal/handlers/rest/cod_collect_post"
	"logistics/internal/handlers/rest/cod_payout_post"
	"logistics/internal/handlers/rest/cod_receive_post"
	"logistics/internal/handlers/rest/cod_submit_post"
	"logistics/internal/handlers/rest/driver_get"
	"logistics/internal/handlers/rest/driver_post"
	"logistics/internal/handlers/rest/order_assign_post"
	"logistics/internal/handlers/rest/order_get"
	"logistics/internal/handlers/rest/order_history_get"
	"logistics/internal/handlers/rest/order_post"
	"logistics/internal/handlers/rest/order_status_put"
	"logistics/internal/handlers/rest/orders_get"
	"logistics/internal/handlers/rest/partnership_post"
	"logistics/internal/handlers/rest/partnerships_get"
	"logistics/internal/handlers/rest/transfer_accept_post"
	"logistics/internal/handlers/rest/transfer_post"
	"logistics/internal/handlers/rest/transfer_reject_post"
	"logistics/internal/handlers/rest/vehicle_load_post"
	"logistics/internal/handlers/rest/vehicle_post"
	"logistics/internal/handlers/rest/vehicle_unload_post"
	"logistics/internal/handlers/tasks/transfer_expiry"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/factory/notify_handle"
	"logistics/internal/pkg/factory/transfer_deadline"

	codRepo "logistics/internal/repository/cod"
	driverRepo "logistics/internal/repository/driver"
	orderRepo "logistics/internal/repository/order"
	partnershipRepo "logistics/internal/repository/partnership"
	transferRepo "logistics/internal/repository/transfer"
	vehicleRepo "logistics/internal/repository/vehicle"
	codService "logistics/internal/service/cod"
	driverService "logistics/internal/service/driver"
	orderService "logistics/internal/service/order"
	partnershipService "logistics/internal/service/partnership"
	transferService "logistics/internal/service/transfer"
	vehicleService "logistics/internal/service/vehicle"

	"logistics/pkg/background"
	"logistics/pkg/kvstore/redis_adapter"
	"logistics/pkg/logger"
	"logistics/pkg/querier"
	"logistics/pkg/tx"
)

type (
	TransferExpiryInterval time.Duration
)

type Application struct {
	ServiceOrder       ServiceOrder
	ServiceCod         ServiceCod
	ServiceTransfer    ServiceTransfer
	ServicePartnership ServicePartnership
	ServiceVehicle     ServiceVehicle
	ServiceDriver      ServiceDriver
	BackgroundWorkers  *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_status_put.Service
	order_history_get.Service
	order_assign_post.Service
}

type ServiceCod interface {
	cod_collect_post.Service
	cod_submit_post.Service
	cod_receive_post.Service
	cod_payout_post.Service
}

type ServiceTransfer interface {
	transfer_post.Service
	transfer_accept_post.Service
	transfer_reject_post.Service
}

type ServicePartnership interface {
	partnership_post.Service
	partnerships_get.Service
}

type ServiceVehicle interface {
	vehicle_post.Service
	vehicle_load_post.Service
	vehicle_unload_post.Service
}

type ServiceDriver interface {
	driver_post.Service
	driver_get.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideKVStore,
		provideTransferExpiryInterval,

		provideOrderRepository,
		provideCodRepository,
		provideDriverRepository,
		provideVehicleRepository,
		providePartnershipRepository,
		provideTransferRepository,

		provideOrderEventsGateway,

		provideServiceDriver,
		provideServiceVehicle,
		provideServicePartnership,
		provideServiceOrder,
		provideServiceCod,
		provideServiceTransfer,
		transfer_deadline.New,

		provideTransferExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceCod), new(*codService.Cod)),
		wire.Bind(new(ServiceTransfer), new(*transferService.Transfer)),
		wire.Bind(new(ServicePartnership), new(*partnershipService.Partnership)),
		wire.Bind(new(ServiceVehicle), new(*vehicleService.Vehicle)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CodRepository), new(*codRepo.Repository)),
		wire.Bind(new(orderService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(orderService.VehicleService), new(*vehicleService.Vehicle)),
		wire.Bind(new(orderService.EventPublisher), new(*orderevents.Gateway)),
		wire.Bind(new(codService.Repository), new(*codRepo.Repository)),
		wire.Bind(new(codService.KVStore), new(*redis_adapter.Store)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(vehicleService.Repository), new(*vehicleRepo.Repository)),
		wire.Bind(new(partnershipService.Repository), new(*partnershipRepo.Repository)),
		wire.Bind(new(transferService.Repository), new(*transferRepo.Repository)),
		wire.Bind(new(transferService.PartnershipRepository), new(*partnershipRepo.Repository)),
		wire.Bind(new(transferService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(transferService.VehicleService), new(*vehicleService.Vehicle)),
		wire.Bind(new(transferService.DeadlineFactory), new(*transfer_deadline.TransferDeadlineFactory)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(codService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),
		wire.Bind(new(vehicleService.TxManager), new(*tx.Manager)),
		wire.Bind(new(partnershipService.TxManager), new(*tx.Manager)),
		wire.Bind(new(transferService.TxManager), new(*tx.Manager)),

		wire.Bind(new(transfer_expiry.Service), new(*transferService.Transfer)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService  *orderService.Order
	NotifyFactory *notify_handle.StatusHandlerFactory
}

// InitializeKafkaWorkerApp wires the notification worker
// (cmd/worker-order-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideCodRepository,
		provideDriverRepository,
		provideVehicleRepository,

		provideOrderEventsGateway,
		provideNotifyGateway,
		provideStatusHandlerFactory,

		provideServiceDriver,
		provideServiceVehicle,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CodRepository), new(*codRepo.Repository)),
		wire.Bind(new(orderService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(orderService.VehicleService), new(*vehicleService.Vehicle)),
		wire.Bind(new(orderService.EventPublisher), new(*orderevents.Gateway)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(vehicleService.Repository), new(*vehicleRepo.Repository)),
		wire.Bind(new(notify_handle.Notifier), new(*notify.Gateway)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),
		wire.Bind(new(vehicleService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideKVStore(redisClient *redis.Client) *redis_adapter.Store {
	return redis_adapter.New(redisClient)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCodRepository(querier *querier.Querier) *codRepo.Repository {
	return codRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideVehicleRepository(querier *querier.Querier) *vehicleRepo.Repository {
	return vehicleRepo.New(querier)
}

func providePartnershipRepository(querier *querier.Querier) *partnershipRepo.Repository {
	return partnershipRepo.New(querier)
}

func provideTransferRepository(querier *querier.Querier) *transferRepo.Repository {
	return transferRepo.New(querier)
}

func provideOrderEventsGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *orderevents.Gateway {
	return orderevents.New(log, producer, cfg.Kafka.Topic)
}

func provideNotifyGateway(cfg *config.Config) *notify.Gateway {
	return notify.New(&cfg.Notify)
}

func provideStatusHandlerFactory(notifier notify_handle.Notifier) *notify_handle.StatusHandlerFactory {
	return notify_handle.NewStatusHandlerFactory(notifier)
}

func provideServiceDriver(
	repository driverService.Repository,
	txManager driverService.TxManager,
) *driverService.Driver {
	return driverService.New(repository, txManager)
}

func provideServiceVehicle(
	repository vehicleService.Repository,
	txManager vehicleService.TxManager,
) *vehicleService.Vehicle {
	return vehicleService.New(repository, txManager)
}

func provideServicePartnership(
	repository partnershipService.Repository,
	txManager partnershipService.TxManager,
) *partnershipService.Partnership {
	return partnershipService.New(repository, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	codRepository orderService.CodRepository,
	drivers orderService.DriverService,
	vehicles orderService.VehicleService,
	events orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(
		repository,
		codRepository,
		drivers,
		vehicles,
		events,
		txManager,
	)
}

func provideServiceCod(
	repository codService.Repository,
	kv codService.KVStore,
	txManager codService.TxManager,
	cfg *config.Config,
) *codService.Cod {
	return codService.New(repository, kv, txManager, cfg.Redis.IdempotencyTTL)
}

func provideServiceTransfer(
	repository transferService.Repository,
	partnershipRepository transferService.PartnershipRepository,
	orderRepository transferService.OrderRepository,
	vehicles transferService.VehicleService,
	deadlineFactory transferService.DeadlineFactory,
	txManager transferService.TxManager,
) *transferService.Transfer {
	return transferService.New(
		repository,
		partnershipRepository,
		orderRepository,
		vehicles,
		deadlineFactory,
		txManager,
	)
}

func provideTransferExpiryInterval(cfg *config.Config) TransferExpiryInterval {
	return TransferExpiryInterval(cfg.Tasks.TransferExpiryInterval)
}

func provideTransferExpiryTask(
	log logger.Logger,
	service transfer_expiry.Service,
	interval TransferExpiryInterval,
) *transfer_expiry.TransferExpiry {
	return transfer_expiry.NewTransferExpiry(log, service, time.Duration(interval))
}

func provideTaskList(
	transferExpiryTask *transfer_expiry.TransferExpiry,
) []background.Task {
	return []background.Task{
		transferExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
