package authorizer

// Effect is the outcome of an access decision.
type Effect string

const (
	EffectAllow Effect = "Allow"
	EffectDeny  Effect = "Deny"
)

const (
	policyVersion = "2012-10-17"
	policyAction  = "execute-api:*"
	principalID   = "xomper"
)

// Statement grants or denies the invoke action on a resource pattern.
type Statement struct {
	Action   string `json:"Action"`
	Effect   Effect `json:"Effect"`
	Resource string `json:"Resource"`
}

// PolicyDocument is the IAM-style document the hosting platform consumes.
type PolicyDocument struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

// Response is the gate's output: exactly one decision per invocation.
type Response struct {
	PrincipalID    string         `json:"principalId"`
	PolicyDocument PolicyDocument `json:"policyDocument"`
}

// newPolicy builds a single-statement policy response for the given effect and
// resource pattern.
func newPolicy(effect Effect, resource string) Response {
	return Response{
		PrincipalID: principalID,
		PolicyDocument: PolicyDocument{
			Version: policyVersion,
			Statement: []Statement{
				{
					Action:   policyAction,
					Effect:   effect,
					Resource: resource,
				},
			},
		},
	}
}
