package selector

import "fargate-cost/core/catalog"

// Selection pairs a chosen tier with its surplus relative to the request
type Selection struct {
	// Tier is the chosen tier
	Tier catalog.Tier `json:"tier"`

	// CPUSurplus is tier CPU minus requested CPU
	CPUSurplus float64 `json:"cpu_surplus"`

	// MemorySurplus is tier memory minus requested memory
	MemorySurplus float64 `json:"memory_surplus"`

	// UnderProvisioned reports whether the tier is smaller than the request
	// in either dimension. Only alternate selections can set this; a minimal
	// selection always covers the request.
	UnderProvisioned bool `json:"under_provisioned"`
}

// Exact reports whether the tier matches the request with zero surplus
func (s Selection) Exact() bool {
	return s.CPUSurplus == 0 && s.MemorySurplus == 0
}

func newSelection(tier catalog.Tier, cpuReq, memReq float64) Selection {
	cpuSurplus := tier.CPU - cpuReq
	memSurplus := tier.Memory - memReq
	return Selection{
		Tier:             tier,
		CPUSurplus:       cpuSurplus,
		MemorySurplus:    memSurplus,
		UnderProvisioned: cpuSurplus < 0 || memSurplus < 0,
	}
}

// Provision is the full selection result for one request: the minimal
// covering tier plus the cost-lowering alternate
type Provision struct {
	// CPURequested is the requested CPU
	CPURequested float64 `json:"cpu_requested"`

	// MemoryRequested is the requested memory in GB
	MemoryRequested float64 `json:"memory_requested"`

	// Primary is the minimal covering selection
	Primary Selection `json:"primary"`

	// Alternate is the cost-lowering selection. It equals Primary when no
	// cheaper tier was available.
	Alternate Selection `json:"alternate"`
}

// Evaluate runs both selections for a request and computes surpluses
func (s *Selector) Evaluate(cpuReq, memReq float64) (*Provision, error) {
	primary, err := s.SelectMinimal(cpuReq, memReq)
	if err != nil {
		return nil, err
	}

	alternate := s.SelectAlternate(primary, cpuReq, memReq)

	return &Provision{
		CPURequested:    cpuReq,
		MemoryRequested: memReq,
		Primary:         newSelection(primary, cpuReq, memReq),
		Alternate:       newSelection(alternate, cpuReq, memReq),
	}, nil
}
