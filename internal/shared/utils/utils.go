// Package utils содержит помощники для необязательных полей запросов:
// в UpdateUserRequest/UpdateItemRequest nil значит "поле не передано".
package utils

// Ptr возвращает указатель на копию v.
func Ptr[T any](v T) *T {
	return &v
}

// IfSet возвращает &v только если значение задано явно, иначе nil.
// Так --price 0 отличается от отсутствующего флага.
func IfSet[T any](set bool, v T) *T {
	if !set {
		return nil
	}
	return &v
}
