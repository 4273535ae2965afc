package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"employee-directory/internal/config"
	"employee-directory/internal/db"
	"employee-directory/internal/models"
	"employee-directory/internal/router"
	"employee-directory/internal/store"
)

func openMirror(ctx context.Context, cfg config.AppConfig) (store.Mirror, func()) {
	if cfg.StorageDriver == config.DriverPostgres {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		return store.NewPostgresMirror(pool), pool.Close
	}
	log.Printf("storing employees in %s", cfg.StoragePath())
	return store.NewFileMirror(cfg.StoragePath()), func() {}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := models.RegisterValidators(); err != nil {
		log.Fatalf("validators: %v", err)
	}

	ctx := context.Background()
	mirror, closeMirror := openMirror(ctx, cfg)
	defer closeMirror()

	s := store.New(ctx, mirror)

	r := gin.Default()
	router.Setup(r, s)

	log.Printf("listening on :%s ...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
