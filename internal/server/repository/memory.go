// Package repository содержит in-memory хранилища ресурсов users и items.
//
// Состояние живёт только в памяти процесса и теряется при перезапуске.
package repository

import (
	"sync"
	"time"
)

// timeLayout ISO-8601 в UTC с миллисекундами: 2024-01-01T00:00:00.000Z
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// MemoryStore — map id -> запись плюс счётчик id для одного типа ресурса.
//
// Id выдаются последовательно начиная с 1 и никогда не переиспользуются.
// List отдаёт записи в порядке вставки, обновление позицию не меняет.
// Безопасен для конкурентного использования.
type MemoryStore[T any] struct {
	mu      sync.RWMutex
	nextID  int
	order   []int
	records map[int]T
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{
		nextID:  1,
		records: make(map[int]T),
	}
}

// Insert выдаёт следующий id, строит запись через build и сохраняет её.
func (s *MemoryStore[T]) Insert(build func(id int) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	rec := build(id)
	s.records[id] = rec
	s.order = append(s.order, id)
	return rec
}

// List возвращает записи, для которых match вернул true (nil — все).
// Результат никогда не nil, чтобы в JSON уходил [] а не null.
func (s *MemoryStore[T]) List(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		rec := s.records[id]
		if match == nil || match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *MemoryStore[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	return rec, ok
}

// Update применяет fn к существующей записи и сохраняет результат.
func (s *MemoryStore[T]) Update(id int, fn func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		var zero T
		return zero, false
	}
	rec = fn(rec)
	s.records[id] = rec
	return rec, true
}

func (s *MemoryStore[T]) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len количество записей.
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Option настройка репозиториев.
type Option func(*options)

type options struct {
	now             func() time.Time
	defaultCategory string
}

func defaultOptions() options {
	return options{
		now:             time.Now,
		defaultCategory: "uncategorized",
	}
}

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithDefaultCategory задаёт категорию для товаров, созданных без неё.
func WithDefaultCategory(category string) Option {
	return func(o *options) {
		if category != "" {
			o.defaultCategory = category
		}
	}
}

func (o options) timestamp() string {
	return o.now().UTC().Format(timeLayout)
}
