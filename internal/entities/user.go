package entities

type User struct {
	ID    int64
	Name  string
	Email string
	Phone string
	Role  Role
}

type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleCustomer       Role = "CUSTOMER"
	RoleDeliveryPerson Role = "DELIVERY_PERSON"
)

func (r Role) String() string {
	return string(r)
}
