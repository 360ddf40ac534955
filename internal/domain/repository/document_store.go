package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField - поле идентичности, назначаемой хранилищем
const IDField = "_id"

// Filter - условие равенства по одному полю документа
type Filter struct {
	Field string
	Value interface{}
}

// ByField создает фильтр по полю
func ByField(field string, value interface{}) Filter {
	return Filter{Field: field, Value: value}
}

// ByObjectID создает фильтр по идентичности хранилища
func ByObjectID(id primitive.ObjectID) Filter {
	return Filter{Field: IDField, Value: id}
}

// FindOptions - параметры выборки всех документов.
// Пустой SortBy означает порядок хранения (порядок вставки);
// при равных значениях SortBy документы также идут в порядке вставки.
type FindOptions struct {
	SortBy string
}

// DocumentCollection - handle одной логической коллекции документного хранилища.
// Все операции затрагивают не более одного документа, кроме Find и Count.
type DocumentCollection interface {
	// Name возвращает имя коллекции
	Name() string

	// Find декодирует все документы в results (указатель на слайс)
	Find(ctx context.Context, opts FindOptions, results interface{}) error

	// FindOne декодирует первый документ по фильтру; domain.ErrNotFound если нет совпадений
	FindOne(ctx context.Context, filter Filter, result interface{}) error

	// InsertOne вставляет документ и возвращает назначенную идентичность
	InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error)

	// FindOneAndReplace полностью заменяет найденный документ, сохраняя его идентичность,
	// и декодирует новую версию в result
	FindOneAndReplace(ctx context.Context, filter Filter, doc interface{}, result interface{}) error

	// DeleteOne удаляет документ по фильтру; domain.ErrNotFound если нет совпадений
	DeleteOne(ctx context.Context, filter Filter) error

	// Count возвращает количество документов в коллекции
	Count(ctx context.Context) (int64, error)
}

// DocumentStore - единственное на процесс подключение к документному хранилищу
type DocumentStore interface {
	// Collection возвращает handle коллекции по имени
	Collection(name string) DocumentCollection

	// EnsureIndex создает индекс по полю (и саму коллекцию, если драйверу это нужно)
	EnsureIndex(ctx context.Context, collection, field string, unique bool) error

	// Health проверяет доступность хранилища
	Health(ctx context.Context) error

	// Close закрывает подключение
	Close(ctx context.Context) error
}
