package domain

// User is an account on the studio backend. Identity fields are assigned by
// the service; the client never invents or rewrites them.
type User struct {
	ID          int      `json:"id"`
	Email       string   `json:"email"`
	Username    string   `json:"username"`
	FullName    string   `json:"full_name"`
	Role        UserRole `json:"role"`
	IsActive    bool     `json:"is_active"`
	IsSuperuser bool     `json:"is_superuser"`
	AvatarURL   string   `json:"avatar_url"`
	Phone       string   `json:"phone"`
	CreatedAt   string   `json:"created_at"`
}

// DisplayName prefers the full name and falls back to the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
