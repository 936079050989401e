package api

import (
	"fargate-cost/core/output"
	"fargate-cost/core/workload"
	"fargate-cost/internal/errors"
)

// RequestsSpec is a (CPU, memory) request in the API payload
type RequestsSpec struct {
	// CPU is the requested vCPU
	CPU float64 `json:"cpu"`

	// Memory is the requested memory in GB
	Memory float64 `json:"memory"`
}

// WorkloadSpec is one workload to size
type WorkloadSpec struct {
	// Name identifies the workload in the response
	Name string `json:"name"`

	// Service is the main container's request
	Service RequestsSpec `json:"service"`

	// Sidecar is the optional sidecar request
	Sidecar *RequestsSpec `json:"sidecar,omitempty"`

	// Reserved overrides the default Kubernetes reserved overhead
	Reserved *RequestsSpec `json:"reserved,omitempty"`
}

// workload converts the request payload into the domain type
func (s WorkloadSpec) workload() workload.Workload {
	w := workload.New(s.Name, workload.Requests{CPU: s.Service.CPU, Memory: s.Service.Memory})
	if s.Sidecar != nil {
		w.Sidecar = workload.Requests{CPU: s.Sidecar.CPU, Memory: s.Sidecar.Memory}
	}
	if s.Reserved != nil {
		w.Reserved = workload.Requests{CPU: s.Reserved.CPU, Memory: s.Reserved.Memory}
	}
	return w
}

// EstimateRequest is the POST /estimate payload
type EstimateRequest struct {
	// Workloads are the workloads to size
	Workloads []WorkloadSpec `json:"workloads"`
}

// EstimateResponse is the POST /estimate result
type EstimateResponse struct {
	// Results holds one report per workload, in request order
	Results []*output.Report `json:"results"`

	// Metadata contains execution context
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata contains execution context
type ResponseMetadata struct {
	// EngineVersion is the server version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the processing time in milliseconds
	DurationMs int64 `json:"duration_ms"`
}

// TierInfo is one catalog entry with its daily cost
type TierInfo struct {
	// Label is the tier label
	Label string `json:"label"`

	// CPU is the tier's vCPU allocation
	CPU float64 `json:"cpu"`

	// Memory is the tier's memory in GB
	Memory float64 `json:"memory"`

	// CostPerDay is the tier's daily cost as a decimal string
	CostPerDay string `json:"cost_per_day"`
}

// TiersResponse is the GET /tiers result
type TiersResponse struct {
	// Tiers lists the catalog in selection order
	Tiers []TierInfo `json:"tiers"`

	// Currency is the cost currency
	Currency string `json:"currency"`
}

// PricingResponse is the GET /pricing result
type PricingResponse struct {
	// PerVCPUHour is the price per vCPU per hour
	PerVCPUHour string `json:"per_vcpu_hour"`

	// PerGBHour is the price per GB of memory per hour
	PerGBHour string `json:"per_gb_hour"`

	// Currency is the price currency
	Currency string `json:"currency"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes an error
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`
}

// validateEstimateRequest checks the payload before it reaches the engine
func validateEstimateRequest(req *EstimateRequest) error {
	if len(req.Workloads) == 0 {
		return errors.Input("at least one workload is required")
	}
	for _, spec := range req.Workloads {
		if err := spec.workload().Validate(); err != nil {
			return err
		}
	}
	return nil
}
