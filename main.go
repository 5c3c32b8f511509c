package main

import (
	"context"
	"fmt"
	"log"

	"github.com/NemesisID/PreviewOnly-Dash/configs"
	"github.com/NemesisID/PreviewOnly-Dash/routes"

	"github.com/gin-gonic/gin"

	_ "time/tzdata" // APP_TIMEZONE must resolve on slim images
)

func main() {
	cfg := configs.LoadConfig()
	ctx := context.Background()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("setup database failed: %v", err)
	}

	if err := configs.SeedAdmin(ctx, db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedStaff(ctx, db, cfg); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(ctx, db); err != nil {
			log.Fatalf("seed demo failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()

	// ✅ Register API routes (CORS + /uploads static included)
	if err := routes.RegisterRoutes(r, routes.DefaultDeps(db, cfg)); err != nil {
		log.Fatalf("register routes failed: %v", err)
	}

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
