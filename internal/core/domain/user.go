package domain

// Role is the authorization role carried inside a credential.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User models the identity derived from a decoded credential. It is never
// persisted directly; it is reconstructed from the token claims on every
// session restore.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Claims are the fields extracted from a decoded bearer credential.
type Claims struct {
	ID    int
	Email string
	Name  string
	Role  Role
}

// User maps the decoded claims onto the identity they represent.
func (c Claims) User() User {
	return User{ID: c.ID, Email: c.Email, Name: c.Name, Role: c.Role}
}

// SessionState is the lifecycle state of a client session.
type SessionState string

const (
	// SessionLoading means the persisted credential has not been restored yet.
	SessionLoading SessionState = "loading"
	// SessionAnonymous means no valid credential is held.
	SessionAnonymous SessionState = "anonymous"
	// SessionAuthenticated means a credential was decoded into a User.
	SessionAuthenticated SessionState = "authenticated"
)
