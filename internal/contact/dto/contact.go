package dto

// AddContactRequest carries the client-supplied contact fields. A userId in
// the body is accepted but ignored; the stored value always comes from the
// verified token.
type AddContactRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,e164"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	UserID      string `json:"userId"`
}

type AddContactResponse struct {
	Message string `json:"message"`
}
