package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"coinCache/internal/domain"
)

// entryDoc — документ в коллекции prices. Payload хранится как есть (bson.Raw недостаточно,
// источник отдаёт JSON — храним байты).
type entryDoc struct {
	AssetID   string    `bson:"assetId"`
	DataType  string    `bson:"dataType"`
	Data      []byte    `bson:"data"`
	FetchedAt time.Time `bson:"fetchedAt"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

// EntryRepo реализует ports.IEntryStore для MongoDB.
type EntryRepo struct {
	client *Client
	log    *slog.Logger
}

// NewEntryRepo возвращает хранилище записей кэша.
func NewEntryRepo(client *Client, log *slog.Logger) *EntryRepo {
	return &EntryRepo{client: client, log: log}
}

// keyFilter — фильтр по уникальному ключу записи.
func keyFilter(assetID string, kind domain.Kind) bson.M {
	return bson.M{"assetId": assetID, "dataType": string(kind)}
}

// EnsureIndexes создаёт уникальный составной индекс (assetId, dataType). Вызови один раз при старте.
// TTL-индекс по expiresAt не используем: протухшие записи должны жить до явной чистки,
// иначе нечего отдавать при деградации источника.
func (r *EntryRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.client.Coll().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "assetId", Value: 1}, {Key: "dataType", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Upsert вставляет или перезаписывает запись по ключу (assetId, dataType).
func (r *EntryRepo) Upsert(ctx context.Context, e domain.Entry) error {
	doc := entryDoc{
		AssetID:   e.AssetID,
		DataType:  string(e.Kind),
		Data:      e.Payload,
		FetchedAt: e.FetchedAt,
		ExpiresAt: e.ExpiresAt,
	}
	_, err := r.client.Coll().ReplaceOne(ctx, keyFilter(e.AssetID, e.Kind), doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		r.log.Debug("Upsert failed", "asset", e.AssetID, "kind", e.Kind, "error", err)
		return err
	}
	return nil
}

// Find возвращает запись по ключу или domain.ErrNotFound.
func (r *EntryRepo) Find(ctx context.Context, assetID string, kind domain.Kind) (*domain.Entry, error) {
	var doc entryDoc
	err := r.client.Coll().FindOne(ctx, keyFilter(assetID, kind)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		r.log.Debug("Find failed", "asset", assetID, "kind", kind, "error", err)
		return nil, err
	}
	return &domain.Entry{
		AssetID:   doc.AssetID,
		Kind:      domain.Kind(doc.DataType),
		Payload:   doc.Data,
		FetchedAt: doc.FetchedAt,
		ExpiresAt: doc.ExpiresAt,
	}, nil
}

// Delete удаляет запись по ключу. Отсутствие записи — не ошибка.
func (r *EntryRepo) Delete(ctx context.Context, assetID string, kind domain.Kind) error {
	_, err := r.client.Coll().DeleteOne(ctx, keyFilter(assetID, kind))
	if err != nil {
		r.log.Debug("Delete failed", "asset", assetID, "kind", kind, "error", err)
		return err
	}
	return nil
}

// DeleteExpired удаляет все записи с expiresAt < now, возвращает количество удалённых.
func (r *EntryRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.client.Coll().DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": now}})
	if err != nil {
		r.log.Debug("DeleteExpired failed", "error", err)
		return 0, err
	}
	return res.DeletedCount, nil
}

// Ping проверяет доступность БД.
func (r *EntryRepo) Ping(ctx context.Context) error {
	return r.client.Client.Ping(ctx, nil)
}
