package ports

//go:generate mockgen -source=store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"
	"time"

	"coinCache/internal/domain"
)

// IEntryStore — контракт хранилища записей кэша. Ключ — пара (assetID, kind).
// Upsert атомарен на уровне одной записи: при конкурентных refresh выигрывает последний писатель.
type IEntryStore interface {
	Upsert(ctx context.Context, e domain.Entry) error
	// Find возвращает запись по ключу или domain.ErrNotFound.
	Find(ctx context.Context, assetID string, kind domain.Kind) (*domain.Entry, error)
	// Delete удаляет запись. Отсутствие записи — не ошибка.
	Delete(ctx context.Context, assetID string, kind domain.Kind) error
	// DeleteExpired удаляет все записи с expiresAt < now и возвращает количество удалённых.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	Ping(ctx context.Context) error
}
