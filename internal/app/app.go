package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/terranova/internal/cfg"
	v1Grpc "github.com/DRSN-tech/terranova/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/terranova/internal/delivery/v1/http"
	"github.com/DRSN-tech/terranova/internal/domain"
	"github.com/DRSN-tech/terranova/internal/infrastructure/catalog"
	"github.com/DRSN-tech/terranova/internal/repository/fs"
	"github.com/DRSN-tech/terranova/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/terranova/internal/repository/minio"
	"github.com/DRSN-tech/terranova/internal/repository/redis"
	redisConv "github.com/DRSN-tech/terranova/internal/repository/redis/converter"
	"github.com/DRSN-tech/terranova/internal/usecase"
	"github.com/DRSN-tech/terranova/pkg/clients"
	"github.com/DRSN-tech/terranova/pkg/closer"
	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App связывает конфигурацию, каталог, хранилище сессий и серверы.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(0),
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	source, err := a.initCatalogSource(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cat := catalog.NewLoader(source, log).Load(ctx)

	sessions, err := a.initSessionRepo(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalogUC := usecase.NewCatalogUC(cat, domain.DefaultOptionTables())
	cartUC := usecase.NewCartUC(cat, sessions, log)

	views, err := v1Http.NewViews(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	r := chi.NewRouter()
	v1Http.NewRouter(r, log).Init(v1Http.Deps{
		CatalogUC: catalogUC,
		CartUC:    cartUC,
		Sessions:  v1Http.NewSessionManager(cfg.Session, log),
		Views:     views,
		StaticDir: cfg.Http.StaticDir,
	})
	a.httpSrv = v1Http.NewServer(r, cfg.Http)

	if cfg.Grpc.Enabled {
		a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, log)
		a.grpcSrv.RegisterServices()
	}

	return a, nil
}

func (a *App) initCatalogSource(ctx context.Context) (usecase.CatalogSource, error) {
	if a.cfg.Catalog.Source != config.CatalogSourceMinio {
		return fs.NewCatalogSource(a.cfg.Catalog.Path), nil
	}

	mc, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// отсутствующий бакет не мешает старту: загрузчик подставит запасной каталог
	if err := clients.CheckBucket(ctx, mc, a.cfg.Catalog.Bucket); err != nil {
		a.logger.Warnf("catalog bucket check failed: %v", err)
	}

	return s3Repo.NewCatalogSource(mc, a.cfg.Catalog), nil
}

func (a *App) initSessionRepo(ctx context.Context) (usecase.SessionRepository, error) {
	s := a.cfg.Session

	if s.Backend != config.SessionBackendRedis {
		a.logger.Infof("using in-memory sessions (max %d, ttl %s)", s.MaxEntries, s.TTL)
		return memory.NewSessionRepo(s.MaxEntries, s.TTL), nil
	}

	client := clients.NewRedisClient(a.cfg.Redis)
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.AddSimple("redis", client.Close)

	a.logger.Infof("using redis sessions at %s", a.cfg.Redis.Addr)
	return redis.NewSessionRepo(client, redisConv.NewSessionConverterImpl(), s.TTL, s.MaxRetries, a.logger), nil
}

// Run запускает серверы и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 2)

	if a.grpcSrv != nil {
		a.closer.Add("grpc", a.grpcSrv.Stop)
		go func() {
			a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
			if err := a.grpcSrv.Start(); err != nil {
				errCh <- fmt.Errorf("grpc: %w", err)
			}
		}()
		a.grpcSrv.SetServing(true)
	}

	a.closer.Add("http", a.httpSrv.Stop)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}
