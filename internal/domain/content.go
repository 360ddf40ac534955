package domain

import (
	"errors"
	"strconv"
)

// Имена коллекций в документном хранилище
const (
	CollectionMapPOIs       = "map_pois"
	CollectionTimelineItems = "timeline_items"
	CollectionCollections   = "collections"
)

// RecordKind - тип записи архива (map, timeline, collections)
type RecordKind string

const (
	KindMap         RecordKind = "map"
	KindTimeline    RecordKind = "timeline"
	KindCollections RecordKind = "collections"
)

// AllKinds возвращает все типы записей в порядке отображения в админке
func AllKinds() []RecordKind {
	return []RecordKind{KindMap, KindTimeline, KindCollections}
}

// CollectionName возвращает имя коллекции хранилища для типа записи
func (k RecordKind) CollectionName() string {
	switch k {
	case KindMap:
		return CollectionMapPOIs
	case KindTimeline:
		return CollectionTimelineItems
	case KindCollections:
		return CollectionCollections
	default:
		return ""
	}
}

// Valid проверяет, что тип записи известен
func (k RecordKind) Valid() bool {
	return k.CollectionName() != ""
}

// Ключи кеша
const (
	StatsCacheKey        = "stats:current"
	listCacheKeyPrefix   = "content:list:"
	listVersionKeyPrefix = "content:list-version:"
)

// ListCacheKey - ключ кеша полного списка записей данного типа в поколении version.
// Каждая запись увеличивает поколение, поэтому список, прочитанный до записи,
// попадает под старый ключ и новым читателям не виден.
func ListCacheKey(kind RecordKind, version int64) string {
	return listCacheKeyPrefix + string(kind) + ":v" + strconv.FormatInt(version, 10)
}

// ListVersionKey - ключ счётчика поколений списка данного типа
func ListVersionKey(kind RecordKind) string {
	return listVersionKeyPrefix + string(kind)
}

// Ошибки хранилища, не зависящие от драйвера
var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate logical key")
)

// LocalizedString - пара строк на иврите и английском, обе обязательны
type LocalizedString struct {
	He string `json:"he" bson:"he"`
	En string `json:"en" bson:"en"`
}

// Get возвращает текст для языка; неизвестный язык трактуется как английский
func (s LocalizedString) Get(lang string) string {
	if lang == "he" {
		return s.He
	}
	return s.En
}
