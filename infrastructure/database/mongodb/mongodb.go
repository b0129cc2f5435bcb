package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Connection struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection abre o pool de conexões com o MongoDB
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongodb: URI de conexão vazia")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	clientOptions := options.Client().ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPool).
		SetMinPoolSize(cfg.MinPool).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(timeout)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb: falha ao conectar: %w", err)
	}

	return &Connection{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: falha no ping: %w", err)
	}
	return nil
}

func (c *Connection) Database() *mongo.Database {
	return c.db
}

func (c *Connection) Close(ctx context.Context) {
	if err := c.client.Disconnect(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao encerrar conexão com o MongoDB")
		return
	}
	logrus.Info("Conexão com o MongoDB encerrada")
}
