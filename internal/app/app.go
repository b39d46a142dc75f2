// Package app assembles the application: configuration, logging, database,
// migrations, repositories, handlers and the HTTP server.
package app

import (
	"github.com/code19m/errx"
	"github.com/marcosmapl/studium-backend-sub000/http/server"
	"github.com/marcosmapl/studium-backend-sub000/http/server/middleware"
	"github.com/marcosmapl/studium-backend-sub000/internal/config"
	"github.com/marcosmapl/studium-backend-sub000/internal/handler"
	"github.com/marcosmapl/studium-backend-sub000/internal/repository"
	"github.com/marcosmapl/studium-backend-sub000/internal/router"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/marcosmapl/studium-backend-sub000/migrations"
	"github.com/marcosmapl/studium-backend-sub000/pg"
	"github.com/marcosmapl/studium-backend-sub000/token"
	"github.com/uptrace/bun"
)

// App holds the running application.
type App struct {
	cfg    config.Config
	log    logger.Logger
	db     *bun.DB
	server *server.HTTPServer
}

// New builds the application from cfg. The database is pinged and migrated
// before the server is constructed.
func New(cfg config.Config, log logger.Logger) (*App, error) {
	db, err := pg.NewBunDB(cfg.PG, log)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	if err := pg.RunMigrations(db, migrations.FS); err != nil {
		return nil, errx.Wrap(err)
	}

	maker, err := token.NewJWTMaker(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	usuarios := repository.NewUsuario(db, log)

	deps := router.Deps{
		Auth:         handler.NewAuth(usuarios, maker, cfg.Auth.TokenTTL),
		Usuario:      handler.NewUsuario(usuarios),
		Escolaridade: handler.NewEscolaridade(repository.NewEscolaridade(db, log)),
		Prioridade:   handler.NewPrioridade(repository.NewPrioridade(db, log)),
		PlanoEstudo:  handler.NewPlanoEstudo(repository.NewPlanoEstudo(db, log)),
		Disciplina:   handler.NewDisciplina(repository.NewDisciplina(db, log)),
		Topico:       handler.NewTopico(repository.NewTopico(db, log)),
		BlocoEstudo:  handler.NewBlocoEstudo(repository.NewBlocoEstudo(db, log)),
		SessaoEstudo: handler.NewSessaoEstudo(repository.NewSessaoEstudo(db, log)),
		Revisao:      handler.NewRevisao(repository.NewRevisao(db, log)),
	}

	srv := server.NewHTTPServer(cfg.Server, []server.Middleware{
		middleware.NewRecoveryMW(log),
		middleware.NewLoggerMW(log),
		middleware.NewAuthMW(maker, router.IsPublic),
	})
	srv.RegisterRouter(router.Register(deps))

	return &App{cfg: cfg, log: log, db: db, server: srv}, nil
}

// Run starts the HTTP server and blocks until it stops.
func (a *App) Run() error {
	a.log.Infof("listening on %s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	return a.server.Start()
}

// Shutdown stops the server and closes the database.
func (a *App) Shutdown() {
	if err := a.server.Stop(); err != nil {
		a.log.Errorf("server shutdown: %v", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Errorf("db close: %v", err)
	}
	_ = a.log.Sync()
}
