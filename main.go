package main

import (
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/config"
	"github.com/satyarajasree/digital-marketing-backend/database"
	"github.com/satyarajasree/digital-marketing-backend/routes"
	"github.com/satyarajasree/digital-marketing-backend/services"
	"github.com/satyarajasree/digital-marketing-backend/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	utils.SetDB(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if err := database.Seed(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(utils.RedisCtx()).Err(); err != nil {
			log.Printf("Redis unavailable, submission throttling disabled: %v", err)
		} else {
			utils.SetRedis(rdb)
			log.Println("Connected to Redis")
		}
	}

	mailer := services.NewSMTPMailer(cfg)
	r := routes.SetupRouter(cfg, mailer)

	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
