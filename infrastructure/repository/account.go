package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-metrics-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// limite de gravações simultâneas em SaveAll
const maxConcurrentWrites = 8

type AccountRepository interface {
	ListAccounts(ctx context.Context, platform domain.Platform) ([]*domain.Account, error)
	FindByExternalID(ctx context.Context, platform domain.Platform, externalID string) (*domain.Account, error)
	FindByExternalIDs(ctx context.Context, platform domain.Platform, externalIDs []string) ([]*domain.Account, error)
	FindAll(ctx context.Context, platform domain.Platform) ([]*domain.Account, error)
	DeleteAll(ctx context.Context, platform domain.Platform) error
	SaveAll(ctx context.Context, platform domain.Platform, accounts []*domain.Account) error
}

type accountRepository struct {
	db *mongo.Database
}

func NewAccountRepository(db *mongo.Database) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) collection(platform domain.Platform) *mongo.Collection {
	return a.db.Collection(platform.Collection)
}

// ListAccounts retorna as contas sem o histórico, ordenadas pelo nome
func (a *accountRepository) ListAccounts(ctx context.Context, platform domain.Platform) ([]*domain.Account, error) {
	opts := options.Find().
		SetProjection(bson.M{"name": 1, "external_id": 1, "link": 1, "category": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}})

	return a.find(ctx, platform, bson.M{}, opts)
}

// FindByExternalID retorna nil, nil quando a conta não existe
func (a *accountRepository) FindByExternalID(ctx context.Context, platform domain.Platform, externalID string) (*domain.Account, error) {
	acc := &domain.Account{}

	err := a.collection(platform).FindOne(ctx, bson.M{"external_id": externalID}).Decode(acc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar conta %s: %w", externalID, err)
	}

	return acc, nil
}

func (a *accountRepository) FindByExternalIDs(ctx context.Context, platform domain.Platform, externalIDs []string) ([]*domain.Account, error) {
	return a.find(ctx, platform, bson.M{"external_id": bson.M{"$in": externalIDs}}, options.Find())
}

func (a *accountRepository) FindAll(ctx context.Context, platform domain.Platform) ([]*domain.Account, error) {
	return a.find(ctx, platform, bson.M{}, options.Find())
}

func (a *accountRepository) find(ctx context.Context, platform domain.Platform, filter bson.M, opts *options.FindOptions) ([]*domain.Account, error) {
	cursor, err := a.collection(platform).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar %s: %w", platform.Collection, err)
	}
	defer cursor.Close(ctx)

	accounts := make([]*domain.Account, 0)
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("erro ao deserializar contas de %s: %w", platform.Collection, err)
	}

	return accounts, nil
}

func (a *accountRepository) DeleteAll(ctx context.Context, platform domain.Platform) error {
	result, err := a.collection(platform).DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("erro ao limpar %s: %w", platform.Collection, err)
	}

	logrus.WithFields(logrus.Fields{
		"platform": platform.Name,
		"deleted":  result.DeletedCount,
	}).Debug("Coleção limpa")

	return nil
}

// SaveAll grava cada conta separadamente e aguarda todas as gravações.
// Não há atomicidade: falhas são agregadas e as gravações concluídas permanecem.
func (a *accountRepository) SaveAll(ctx context.Context, platform domain.Platform, accounts []*domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	coll := a.collection(platform)
	semaphore := make(chan struct{}, maxConcurrentWrites)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, acc := range accounts {
		if acc.ID.IsZero() {
			acc.ID = primitive.NewObjectID()
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.Account) {
			defer wg.Done()
			defer func() { <-semaphore }()

			_, err := coll.ReplaceOne(ctx, bson.M{"_id": acc.ID}, acc, options.Replace().SetUpsert(true))
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("conta %q: %w", acc.Name, err))
				mu.Unlock()
			}
		}(acc)
	}

	wg.Wait()

	if len(errs) > 0 {
		logrus.WithFields(logrus.Fields{
			"platform": platform.Name,
			"failed":   len(errs),
			"total":    len(accounts),
		}).Error("Falha ao gravar parte das contas")
		return errors.Join(errs...)
	}

	return nil
}

// EnsureIndexes cria os índices de consulta por identificador e por nome em cada coleção
func EnsureIndexes(ctx context.Context, db *mongo.Database, platforms []domain.Platform) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "external_id", Value: 1}},
			Options: options.Index().SetName("external_id_1"),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name_1"),
		},
	}

	for _, platform := range platforms {
		names, err := db.Collection(platform.Collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("erro ao criar índices em %s: %w", platform.Collection, err)
		}

		logrus.WithFields(logrus.Fields{
			"platform": platform.Name,
			"indexes":  names,
		}).Info("Índices garantidos")
	}

	return nil
}
