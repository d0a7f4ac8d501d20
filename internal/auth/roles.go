package auth

import "github.com/spec-kit/careerhub/internal/domain"

// Action enumerates the privileged operations gated by the policy table.
type Action string

const (
	ActionManageOpportunity Action = "MANAGE_OPPORTUNITY"
	ActionDeleteCompany     Action = "DELETE_COMPANY"
	ActionManageRecruiters  Action = "MANAGE_RECRUITERS"
	ActionViewApplications  Action = "VIEW_APPLICATIONS"
	ActionApply             Action = "APPLY"
)

// policy is the static allow table. ActionApply is the inversion: only
// accounts with no relationship to the company may apply.
var policy = map[Action]map[domain.Role]bool{
	ActionManageOpportunity: {domain.RoleOwner: true, domain.RoleRecruiter: true},
	ActionDeleteCompany:     {domain.RoleOwner: true},
	ActionManageRecruiters:  {domain.RoleOwner: true},
	ActionViewApplications:  {domain.RoleOwner: true, domain.RoleRecruiter: true},
	ActionApply:             {domain.RoleNone: true},
}

// Authorize renders an allow/deny decision for an action given the actor's
// resolved role. Pure function; no I/O.
func Authorize(action Action, role domain.Role) bool {
	allowed, ok := policy[action]
	if !ok {
		return false
	}
	return allowed[role]
}
