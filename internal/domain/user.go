package domain

// User is the authenticated account summary mirrored into the session.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	UserImg   string `json:"userImg,omitempty"`
	IsVisitor bool   `json:"isVisitor,omitempty"`
}

// DisplayName returns the best available name to greet the user with.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return "User"
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Registration is the account-creation form payload.
type Registration struct {
	Name     string `json:"name" validate:"required,min=2,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ProfileUpdate carries editable account fields for PUT /user/:id.
type ProfileUpdate struct {
	Name  string `json:"name" validate:"required,min=2,max=80"`
	Email string `json:"email" validate:"required,email"`
}

// Stats is the aggregate profile summary shown on the user screen.
type Stats struct {
	AlbumCount         int    `json:"albumCount"`
	PhotoCount         int    `json:"photoCount"`
	FormattedTotalCost string `json:"formattedTotalCost"`
}
