package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são os dados lidos do token emitido pelo serviço de login
type Claims struct {
	UserID     int     `json:"user_id"`
	UserName   string  `json:"user_name,omitempty"`
	UserRoleID int     `json:"user_role_id"`
	TenantID   string  `json:"tenant_id"`
	EmployeeID *string `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

// Filter monta o filtro de métricas a partir do token. Uma funcionária logada só vê os próprios dados.
func (c *Claims) Filter() MetricFilter {
	filter := MetricFilter{TenantID: c.TenantID}
	if c.EmployeeID != nil && *c.EmployeeID != "" {
		employeeID := *c.EmployeeID
		filter.EmployeeID = &employeeID
	}
	return filter
}
