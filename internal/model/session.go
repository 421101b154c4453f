package model

// Role is the closed set of identities that can drive the dashboard.
type Role string

const (
	RoleManager    Role = "MANAGER"
	RoleTechnician Role = "TECHNICIAN"
)

// Session is the single active identity. Exactly one session exists at
// any time; switching replaces it wholesale.
type Session struct {
	Role Role   `json:"role"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ManagerSession returns the session for the single privileged manager
// identity.
func ManagerSession() Session {
	return Session{
		Role: RoleManager,
		ID:   RecipientManager,
		Name: "Manager",
	}
}

// TechnicianSession returns a session for the given roster entry.
func TechnicianSession(t Technician) Session {
	return Session{
		Role: RoleTechnician,
		ID:   t.ID,
		Name: t.Name,
	}
}
