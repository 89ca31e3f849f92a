package role

type RoleResponse struct {
	ID   string `json:"uid"`
	Name string `json:"name"`
}
