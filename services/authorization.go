package services

import (
	"fmt"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// role-based model; "*" in a policy matches any resource or action
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// Resources and actions checked by the HTTP layer.
const (
	ResDashboard = "dashboard"
	ResProducts  = "products"
	ResOutlets   = "outlets"
	ResOrders    = "orders"

	ActRead       = "read"
	ActWrite      = "write"
	ActDelete     = "delete"
	ActTransition = "transition"
	ActExport     = "export"
)

var defaultPolicies = [][]string{
	{entity.RoleAdmin, "*", "*"},
	{entity.RoleStaff, ResDashboard, ActRead},
	{entity.RoleStaff, ResProducts, ActRead},
	{entity.RoleStaff, ResOutlets, ActRead},
	{entity.RoleStaff, ResOrders, ActRead},
	{entity.RoleStaff, ResOrders, ActWrite},
	{entity.RoleStaff, ResOrders, ActTransition},
	{entity.RoleStaff, ResOrders, ActExport},
}

type AuthorizationService struct {
	enforcer *casbin.Enforcer
}

func NewAuthorizationService() (*AuthorizationService, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RBAC model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize RBAC enforcer: %w", err)
	}
	if _, err := e.AddPolicies(defaultPolicies); err != nil {
		return nil, fmt.Errorf("failed to load RBAC policies: %w", err)
	}
	return &AuthorizationService{enforcer: e}, nil
}

// Can reports whether role may perform action on resource.
func (s *AuthorizationService) Can(role, resource, action string) (bool, error) {
	ok, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		return false, fmt.Errorf("RBAC permission check failed: %w", err)
	}
	return ok, nil
}
