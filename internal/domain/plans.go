package domain

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// GivablesContract is the contract deployed by the built-in plans
	GivablesContract = "Givables"

	// DefaultPlanName is used when no plan is named on the command line
	DefaultPlanName = "givables"

	givablesAdmin = "0x5bfad8b41f8172375db73344b53318fa290b1030"
)

var builtinPlans = map[string]DeploymentPlan{
	"givables": {
		Name:        "givables",
		Description: "Deploy Givables with IPFS metadata, mint token 0 and read its URI",
		Contract:    GivablesContract,
		ConstructorArgs: []string{
			"https://gateway.pinata.cloud/ipfs/QmfWjdKg52pzfUw4pkDjx5AzBUfvAUk3bopSnsY4cBEjk8",
		},
		Mint: CallStep{Method: "adminIssueToken", Args: []string{givablesAdmin}},
		Read: CallStep{Method: "tokenURI", Args: []string{"0"}},
	},
	"givables-update": {
		Name:        "givables-update",
		Description: "Deploy Givables, mint token 0, then update its URI and description",
		Contract:    GivablesContract,
		ConstructorArgs: []string{
			"https://www.givables.xyz/assets/token_art.jpg",
			"Access to the Givables community of Undergraduate Artists",
		},
		Mint: CallStep{Method: "adminIssueToken", Args: []string{givablesAdmin}},
		Read: CallStep{Method: "tokenURI", Args: []string{"0"}},
		Updates: []CallStep{
			{Method: "updateURI", Args: []string{"we changed bby"}},
			{Method: "updateDescription", Args: []string{"we changed bby"}},
		},
	},
}

// BuiltinPlan returns a copy of the named built-in plan
func BuiltinPlan(name string) (DeploymentPlan, error) {
	plan, ok := builtinPlans[name]
	if !ok {
		return DeploymentPlan{}, fmt.Errorf("%w: %q (available: %s)", ErrPlanNotFound, name, strings.Join(BuiltinPlanNames(), ", "))
	}
	return plan.Clone(), nil
}

// BuiltinPlanNames returns the names of all built-in plans, sorted
func BuiltinPlanNames() []string {
	names := make([]string, 0, len(builtinPlans))
	for name := range builtinPlans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy so callers cannot mutate shared plan slices
func (p DeploymentPlan) Clone() DeploymentPlan {
	out := p
	out.ConstructorArgs = append([]string(nil), p.ConstructorArgs...)
	out.Mint = p.Mint.clone()
	out.Read = p.Read.clone()
	if p.Updates != nil {
		out.Updates = make([]CallStep, len(p.Updates))
		for i, step := range p.Updates {
			out.Updates[i] = step.clone()
		}
	}
	return out
}

func (s CallStep) clone() CallStep {
	return CallStep{Method: s.Method, Args: append([]string(nil), s.Args...)}
}

// Validate checks the plan can be executed
func (p DeploymentPlan) Validate() error {
	if strings.TrimSpace(p.Contract) == "" {
		return fmt.Errorf("%w: contract name is required", ErrInvalidPlan)
	}
	if strings.TrimSpace(p.Mint.Method) == "" {
		return fmt.Errorf("%w: mint method is required", ErrInvalidPlan)
	}
	if strings.TrimSpace(p.Read.Method) == "" {
		return fmt.Errorf("%w: read method is required", ErrInvalidPlan)
	}
	for i, step := range p.Updates {
		if strings.TrimSpace(step.Method) == "" {
			return fmt.Errorf("%w: update %d has no method", ErrInvalidPlan, i)
		}
	}
	return nil
}
