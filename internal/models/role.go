package models

// Role is the closed set of user types the authorization layer understands.
// Comparing against TipoUsuario.Nome happens only in RoleFromTipoUsuario so a
// typo in a role name cannot slip past the compiler anywhere else.
type Role string

const (
	RoleAdministrador Role = "Administrador"
	RoleCliente       Role = "Cliente"
	RoleFuncionario   Role = "Funcionário"
	RoleEntregador    Role = "Entregador"
)

// RoleFromTipoUsuario maps a user type name onto a known role.
func RoleFromTipoUsuario(nome string) (Role, bool) {
	switch Role(nome) {
	case RoleAdministrador, RoleCliente, RoleFuncionario, RoleEntregador:
		return Role(nome), true
	}
	return "", false
}

// PodeRegistrarEntrega reports whether the role may act as courier.
func (r Role) PodeRegistrarEntrega() bool {
	return r == RoleEntregador || r == RoleAdministrador
}
