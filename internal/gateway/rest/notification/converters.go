package notification

import (
	"dashboard/internal/entities"
	"dashboard/internal/gateway/rest/payload"
)

type notificationDTO struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"userId"`
	Message   string       `json:"message"`
	Type      string       `json:"type"`
	IsRead    bool         `json:"isRead"`
	Read      *bool        `json:"read,omitempty"`
	CreatedAt payload.Time `json:"createdAt"`
}

func toDomainList(dtos []notificationDTO) []entities.Notification {
	notifications := make([]entities.Notification, 0, len(dtos))
	for _, dto := range dtos {
		isRead := dto.IsRead
		// Jackson сериализует boolean isRead как "read"
		if dto.Read != nil {
			isRead = isRead || *dto.Read
		}

		notifications = append(notifications, entities.Notification{
			ID:        dto.ID,
			UserID:    dto.UserID,
			Message:   dto.Message,
			Type:      dto.Type,
			IsRead:    isRead,
			CreatedAt: dto.CreatedAt.Time,
		})
	}
	return notifications
}
