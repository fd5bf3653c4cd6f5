package auth

import (
	"strings"

	"github.com/yigit/schoolhub/internal/app/models"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	ID        int64
	Email     string
	Authority models.Role
}

// Access is the requirement a rule places on the caller.
type Access int

const (
	// PermitAll lets anonymous callers through
	PermitAll Access = iota
	// Authenticated requires any resolved identity
	Authenticated
	// AnyAuthority requires an identity holding one of the rule's authorities
	AnyAuthority
)

// Rule matches requests by method and path pattern. An empty Method matches every
// method. A Pattern ending in "/**" matches the prefix and everything below it;
// any other pattern must match the path exactly.
type Rule struct {
	Method      string
	Pattern     string
	Access      Access
	Authorities []models.Role
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "" && !strings.EqualFold(r.Method, method) {
		return false
	}

	if prefix, ok := strings.CutSuffix(r.Pattern, "/**"); ok {
		return prefix == "" || path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.Pattern
}

func (r Rule) allows(id *Identity) bool {
	switch r.Access {
	case PermitAll:
		return true
	case Authenticated:
		return id != nil
	case AnyAuthority:
		if id == nil {
			return false
		}
		for _, role := range r.Authorities {
			if id.Authority == role {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Policy is an ordered rule table. The first matching rule decides; requests no
// rule matches require an authenticated identity.
type Policy struct {
	rules []Rule
}

// NewPolicy creates a policy from rules, evaluated in order.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// PolicyOption adjusts the default policy.
type PolicyOption func(*[]Rule)

// WithPublicPaths prepends PermitAll rules for the given patterns.
func WithPublicPaths(patterns ...string) PolicyOption {
	return func(rules *[]Rule) {
		public := make([]Rule, 0, len(patterns))
		for _, p := range patterns {
			public = append(public, Rule{Pattern: p, Access: PermitAll})
		}
		*rules = append(public, *rules...)
	}
}

// DefaultPolicy returns the route policy of the API.
func DefaultPolicy(opts ...PolicyOption) *Policy {
	staff := []models.Role{models.RoleAdmin, models.RoleTeacher}

	rules := []Rule{
		{Method: "OPTIONS", Pattern: "/**", Access: PermitAll},
		{Pattern: "/api/admins/login", Access: PermitAll},
		{Pattern: "/api/teachers/login", Access: PermitAll},
		{Pattern: "/api/admins/**", Access: AnyAuthority, Authorities: []models.Role{models.RoleAdmin}},
		{Pattern: "/api/teachers/**", Access: AnyAuthority, Authorities: staff},
		{Pattern: "/api/students/**", Access: AnyAuthority, Authorities: staff},
	}
	for _, opt := range opts {
		opt(&rules)
	}

	return NewPolicy(rules...)
}

// Allows reports whether id may perform method on path. id is nil for anonymous callers.
func (p *Policy) Allows(method, path string, id *Identity) bool {
	for _, rule := range p.rules {
		if rule.matches(method, path) {
			return rule.allows(id)
		}
	}
	return id != nil
}
