package cmd

import (
	"context"
	"log/slog"

	httpin "github.com/MianSuleman600/Colala-Store-Project-sub001/internal/adapters/in/http"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/adapters/out/deliverycode"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/adapters/out/postgres"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/application/usecases/commands"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/application/usecases/queries"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/ports"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	codes      DeliveryCodes
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, codes DeliveryCodes, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		codes:      codes,
		logger:     logger,
	}
}

// DeliveryCodes pairs the code store with the notifier that sends issued
// codes to buyers. Close releases their connections.
type DeliveryCodes struct {
	Store    ports.DeliveryCodeStore
	Notifier ports.DeliveryCodeNotifier
	Close    func() error
}

// NewDeliveryCodes builds the store and notifier selected by DeliveryCodeMode.
func NewDeliveryCodes(cfg Config) (DeliveryCodes, error) {
	if cfg.DeliveryCodeMode == DeliveryCodeModeRedis {
		client := deliverycode.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		return DeliveryCodes{
			Store:    deliverycode.NewRedisStore(client, cfg.DeliveryCodeTTL),
			Notifier: deliverycode.NewRedisNotifier(client, cfg.DeliveryCodeStream),
			Close:    client.Close,
		}, nil
	}

	store, err := deliverycode.NewStaticStore(cfg.StaticDeliveryCode)
	if err != nil {
		return DeliveryCodes{}, err
	}
	return DeliveryCodes{
		Store:    store,
		Notifier: deliverycode.SharedCodeNotifier{},
		Close:    func() error { return nil },
	}, nil
}

func (c *CompositionRoot) trackerUoWFactory() commands.TrackerUoWFactory {
	return FuncTrackerUoWFactory(func() commands.TrackerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateStartTrackingCommandHandler() commands.StartTrackingCommandHandler {
	return commands.NewStartTrackingCommandHandler(c.trackerUoWFactory())
}

func (c *CompositionRoot) CreateMarkOutForDeliveryCommandHandler() commands.MarkOutForDeliveryCommandHandler {
	return commands.NewMarkOutForDeliveryCommandHandler(c.trackerUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.trackerUoWFactory(), c.codes.Store, c.codes.Notifier, c.logger)
}

func (c *CompositionRoot) CreateSubmitDeliveryCodeCommandHandler() commands.SubmitDeliveryCodeCommandHandler {
	return commands.NewSubmitDeliveryCodeCommandHandler(c.trackerUoWFactory(), c.codes.Store, c.logger)
}

func (c *CompositionRoot) CreateResendDeliveryCodeCommandHandler() commands.ResendDeliveryCodeCommandHandler {
	return commands.NewResendDeliveryCodeCommandHandler(c.trackerUoWFactory(), c.codes.Store, c.codes.Notifier, c.logger)
}

func (c *CompositionRoot) CreateViewWalletCommandHandler() commands.ViewWalletCommandHandler {
	return commands.NewViewWalletCommandHandler(c.trackerUoWFactory())
}

func (c *CompositionRoot) CreateGetTrackerPanelQueryHandler() queries.GetTrackerPanelQueryHandler {
	return queries.NewGetTrackerPanelQueryHandler(c.uowFactory.Create().TrackerRepository(), nil)
}

func (c *CompositionRoot) CreateGetActiveTrackersQueryHandler() queries.GetActiveTrackersQueryHandler {
	return queries.NewGetActiveTrackersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStepSummaryQueryHandler() queries.GetStepSummaryQueryHandler {
	return queries.NewGetStepSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreProfileQueryHandler() (queries.GetStoreProfileQueryHandler, error) {
	return queries.NewGetStoreProfileQueryHandler(queries.StoreProfile{
		Name:     c.cfg.StoreName,
		Currency: c.cfg.StoreCurrency,
	})
}

func (c *CompositionRoot) CreateHTTPRouter(ctx context.Context) (*echo.Echo, error) {
	profiles, err := c.CreateGetStoreProfileQueryHandler()
	if err != nil {
		return nil, err
	}

	start := c.CreateStartTrackingCommandHandler()
	outForDelivery := c.CreateMarkOutForDeliveryCommandHandler()
	delivered := c.CreateMarkDeliveredCommandHandler()
	submitCode := c.CreateSubmitDeliveryCodeCommandHandler()
	resendCode := c.CreateResendDeliveryCodeCommandHandler()
	viewWallet := c.CreateViewWalletCommandHandler()

	server := httpin.NewServer(httpin.Handlers{
		StartTracking:      &start,
		MarkOutForDelivery: &outForDelivery,
		MarkDelivered:      &delivered,
		SubmitDeliveryCode: &submitCode,
		ResendDeliveryCode: &resendCode,
		ViewWallet:         &viewWallet,
		TrackerPanel:       c.CreateGetTrackerPanelQueryHandler(),
		ActiveTrackers:     c.CreateGetActiveTrackersQueryHandler(),
		StoreProfile:       profiles,
	}, c.logger)

	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	return httpin.NewRouter(server, doc, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStepSummaryQueryHandler(), c.cfg.SummaryJobSchedule, c.logger)
}

type FuncTrackerUoWFactory func() commands.TrackerUoW

func (f FuncTrackerUoWFactory) Create() commands.TrackerUoW {
	return f()
}
