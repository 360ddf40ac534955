package domain

import "time"

// Statistics - агрегированная статистика по содержимому архива
type Statistics struct {
	MapPOIs       int64     `json:"map_pois"`
	TimelineItems int64     `json:"timeline_items"`
	Collections   int64     `json:"collections"`
	Total         int64     `json:"total"`
	LastUpdated   time.Time `json:"last_updated"`
}

// ByKind возвращает количество записей данного типа
func (s *Statistics) ByKind(kind RecordKind) int64 {
	switch kind {
	case KindMap:
		return s.MapPOIs
	case KindTimeline:
		return s.TimelineItems
	case KindCollections:
		return s.Collections
	default:
		return 0
	}
}
