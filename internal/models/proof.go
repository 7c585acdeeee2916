package models

// ForbiddenProof pairs a banned proof method with the justification shown to
// businesses when they pick it anyway. The text is display metadata, not
// decision input.
type ForbiddenProof struct {
	Method ProofMethod `json:"method"`
	Reason string      `json:"reason"`
}

// ProofMethodConfig is the matrix entry for one (mission, business type) pair.
type ProofMethodConfig struct {
	PrimaryProofMethod           ProofMethod      `json:"primary_proof_method"`
	FallbackProofMethod          *ProofMethod     `json:"fallback_proof_method,omitempty"`
	ForbiddenProofMethods        []ForbiddenProof `json:"forbidden_proof_methods,omitempty"`
	RequiresBusinessConfirmation bool             `json:"requires_business_confirmation"`
	// VerificationRequirements lists extra checks layered on by the
	// availability map (e.g. "staff_code_rotation").
	VerificationRequirements []string `json:"verification_requirements,omitempty"`
}

func (c *ProofMethodConfig) IsForbidden(method ProofMethod) bool {
	for _, f := range c.ForbiddenProofMethods {
		if f.Method == method {
			return true
		}
	}
	return false
}

func (c *ProofMethodConfig) ForbiddenReason(method ProofMethod) string {
	for _, f := range c.ForbiddenProofMethods {
		if f.Method == method {
			return f.Reason
		}
	}
	return ""
}

// AcceptedMethods returns primary then fallback, skipping anything that also
// appears in the forbidden set. Forbidden always wins over an inconsistent
// config.
func (c *ProofMethodConfig) AcceptedMethods() []ProofMethod {
	methods := make([]ProofMethod, 0, 2)
	if !c.IsForbidden(c.PrimaryProofMethod) {
		methods = append(methods, c.PrimaryProofMethod)
	}
	if c.FallbackProofMethod != nil && !c.IsForbidden(*c.FallbackProofMethod) {
		methods = append(methods, *c.FallbackProofMethod)
	}
	return methods
}
