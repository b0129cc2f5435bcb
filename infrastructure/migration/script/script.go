package main

import (
	"context"
	"log"
	"time"

	"github.com/vfg2006/social-metrics-api/infrastructure/database/mongodb"
	"github.com/vfg2006/social-metrics-api/infrastructure/repository"
	"github.com/vfg2006/social-metrics-api/internal/config"
	"github.com/vfg2006/social-metrics-api/internal/domain"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Printf("Conectando ao banco %s...", cfg.Database.Name)
	conn, err := mongodb.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao MongoDB: %v", err)
	}
	defer conn.Close(context.Background())

	if err := conn.Ping(ctx); err != nil {
		log.Fatalf("ERRO ao verificar conexão: %v", err)
	}

	startTime := time.Now()
	platforms := domain.Platforms()

	if err := repository.EnsureIndexes(ctx, conn.Database(), platforms); err != nil {
		log.Fatalf("ERRO ao criar índices: %v", err)
	}

	log.Printf("Migração concluída em %v para %d coleções", time.Since(startTime), len(platforms))
}
