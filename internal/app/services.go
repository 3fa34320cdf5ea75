package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/runehealth/rune_backend/config"
	"github.com/runehealth/rune_backend/internal/engine"
	"github.com/runehealth/rune_backend/internal/service/session"
	"github.com/runehealth/rune_backend/internal/store"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideEngine,
		ProvideSessionStore,
		ProvideSessionService,
	),
)

func ProvideEngine(cfg *config.Config) *engine.Engine {
	return engine.New(engine.Config{
		DateOrder:            engine.DateOrder(cfg.Intake.DateOrder),
		ExtraCities:          cfg.Intake.ExtraCities,
		ExtraSymptomKeywords: cfg.Intake.ExtraSymptomKeywords,
	})
}

func ProvideSessionStore(cfg *config.Config, rdb *redis.Client) store.SessionStore {
	ttl := store.TTLFromMinutes(cfg.Session.TTLMinutes)
	if rdb == nil {
		return store.NewMemoryStore(ttl)
	}
	return store.NewRedisStore(rdb, ttl)
}

func ProvideSessionService(st store.SessionStore, eng *engine.Engine, nc *nats.Conn, cfg *config.Config) session.Service {
	return session.New(st, eng, nc, cfg)
}
