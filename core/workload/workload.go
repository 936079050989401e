// Package workload models the resource requests that are aggregated before
// tier selection: the service itself, an optional sidecar, and the memory the
// Kubernetes components reserve on every Fargate pod.
package workload

import (
	"fargate-cost/internal/errors"
)

// DefaultReservedMemory is the memory in GB the Kubernetes components reserve
// on a Fargate pod
const DefaultReservedMemory = 0.25

// Requests is a (CPU, memory) resource request
type Requests struct {
	// CPU is the requested vCPU
	CPU float64 `json:"cpu"`

	// Memory is the requested memory in GB
	Memory float64 `json:"memory"`
}

// Add returns the element-wise sum of two requests
func (r Requests) Add(other Requests) Requests {
	return Requests{CPU: r.CPU + other.CPU, Memory: r.Memory + other.Memory}
}

// Workload is one deployable unit to size against the tier catalog
type Workload struct {
	// Name identifies the workload
	Name string `json:"name"`

	// Service is the main container's request
	Service Requests `json:"service"`

	// Sidecar is the optional sidecar container's request
	Sidecar Requests `json:"sidecar"`

	// Reserved is the per-pod overhead reserved by Kubernetes components
	Reserved Requests `json:"reserved"`
}

// New creates a workload with the default Kubernetes reserved memory
func New(name string, service Requests) Workload {
	return Workload{
		Name:     name,
		Service:  service,
		Reserved: Requests{Memory: DefaultReservedMemory},
	}
}

// Total returns the aggregated request the tier must cover
func (w Workload) Total() Requests {
	return w.Service.Add(w.Sidecar).Add(w.Reserved)
}

// Validate checks the workload before it reaches the selector, which performs
// no range checks of its own
func (w Workload) Validate() error {
	if w.Service.CPU <= 0 {
		return errors.Inputf("workload %q: service CPU must be positive, got %g", w.Name, w.Service.CPU)
	}
	if w.Service.Memory <= 0 {
		return errors.Inputf("workload %q: service memory must be positive, got %g", w.Name, w.Service.Memory)
	}
	if w.Sidecar.CPU < 0 || w.Sidecar.Memory < 0 {
		return errors.Inputf("workload %q: sidecar requests must not be negative", w.Name)
	}
	if w.Reserved.CPU < 0 || w.Reserved.Memory < 0 {
		return errors.Inputf("workload %q: reserved requests must not be negative", w.Name)
	}
	return nil
}
