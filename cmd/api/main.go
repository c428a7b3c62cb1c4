package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "affiliate-hub-backend/internal/adapter/http"
	appmw "affiliate-hub-backend/internal/adapter/middleware"
	repo "affiliate-hub-backend/internal/adapter/repository/sqlite"
	"affiliate-hub-backend/internal/config"
	"affiliate-hub-backend/internal/infrastructure/cache"
	"affiliate-hub-backend/internal/infrastructure/db"
	"affiliate-hub-backend/internal/store"
	affiliateUC "affiliate-hub-backend/internal/usecase/affiliate"
	saleUC "affiliate-hub-backend/internal/usecase/sale"
	settingsUC "affiliate-hub-backend/internal/usecase/settings"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	notifier := store.NewNotifier()
	for _, table := range []string{repo.AffiliatesTable, repo.SalesTable, repo.SettingsTable} {
		notifier.Subscribe(table, func(ev store.Event) {
			log.Printf("table %s changed: %s id=%d", ev.Table, ev.Op, ev.ID)
		})
	}
	affRepo := repo.NewAffiliateRepository(gdb, notifier)
	saleRepo := repo.NewSaleRepository(gdb, notifier)
	setRepo := repo.NewSettingsRepository(gdb, notifier)
	if err := setRepo.EnsureDefault(context.Background()); err != nil {
		log.Fatalf("seed settings: %v", err)
	}

	cv := httpadp.NewValidator()
	h := httpadp.NewHandler()
	ah := httpadp.NewAffiliateHandler(affiliateUC.NewUsecase(affRepo), cv)
	sh := httpadp.NewSaleHandler(saleUC.NewUsecase(saleRepo, affRepo), cv)
	th := httpadp.NewSettingsHandler(settingsUC.NewUsecase(setRepo), cv)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())

	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("open redis: %v", err)
		}
		e.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	httpadp.Register(e, h, ah, sh, th)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
