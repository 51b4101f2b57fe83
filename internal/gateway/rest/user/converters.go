package user

import "dashboard/internal/entities"

type userDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	UserType string `json:"userType"`
	Role     string `json:"role,omitempty"`
}

func toDomainList(dtos []userDTO) []entities.User {
	users := make([]entities.User, 0, len(dtos))
	for _, dto := range dtos {
		role := dto.UserType
		// старые версии user-service отдают роль как "role"
		if role == "" {
			role = dto.Role
		}
		users = append(users, entities.User{
			ID:    dto.ID,
			Name:  dto.Name,
			Email: dto.Email,
			Phone: dto.Phone,
			Role:  entities.Role(role),
		})
	}
	return users
}
