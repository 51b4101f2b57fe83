package entities

import "time"

type Notification struct {
	ID        int64
	UserID    int64
	Message   string
	Type      string
	IsRead    bool
	CreatedAt time.Time
}

type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
)

func (s SortOrder) IsValid() bool {
	return s == SortLatest || s == SortOldest
}
