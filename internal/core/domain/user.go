package domain

// Roles a marketplace account can hold. The remote API issues exactly one
// role per account at registration time.
const (
	RoleWorker   = "worker"
	RoleEmployer = "employer"
)

// User models a marketplace account as returned by the remote API.
// Rating, Price, Skills and Certificates are populated for workers only.
type User struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Rating       *float64 `json:"rating,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Certificates []string `json:"certificates,omitempty"`
}

// IsWorker reports whether the user holds the worker role.
func (u *User) IsWorker() bool { return u != nil && u.Role == RoleWorker }

// IsEmployer reports whether the user holds the employer role.
func (u *User) IsEmployer() bool { return u != nil && u.Role == RoleEmployer }
