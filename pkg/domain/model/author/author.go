package author

import "github.com/secmon-lab/alertpost/pkg/domain/types"

// Author is a principal in the host that can own posts.
type Author struct {
	ID          types.AuthorID `json:"id"`
	DisplayName string         `json:"display_name"`
	Role        types.Role     `json:"role"`
}

// EligibleRoles are the roles that can be selected as author of alert posts.
func EligibleRoles() []types.Role {
	return []types.Role{types.RoleAdministrator, types.RoleEditor}
}
