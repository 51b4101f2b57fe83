package notification_sort

import (
	"slices"

	"dashboard/internal/entities"
)

// Sort возвращает новый срез, упорядоченный по CreatedAt.
// SortLatest - по убыванию, SortOldest - по возрастанию.
// Порядок равных элементов сохраняется, исходный срез не меняется.
// Неизвестный порядок трактуется как SortLatest.
func Sort(list []entities.Notification, order entities.SortOrder) []entities.Notification {
	sorted := slices.Clone(list)
	if sorted == nil {
		sorted = []entities.Notification{}
	}

	slices.SortStableFunc(sorted, func(a, b entities.Notification) int {
		if order == entities.SortOldest {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return sorted
}
