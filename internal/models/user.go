package models

type User struct {
	ID        string   `json:"_id"`
	FullName  string   `json:"fullName"`
	Email     string   `json:"email"`
	Addresses []string `json:"addresses"`
}

// for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// for registration
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// AuthResponse is what the backend answers to login and register.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

type SessionResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

type AddAddressRequest struct {
	Address string `json:"address"`
}

type AddressBookResponse struct {
	Addresses []string `json:"addresses"`
}
