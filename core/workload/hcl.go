package workload

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"fargate-cost/internal/errors"
)

// HCL file schema:
//
//	workload "checkout" {
//	  service {
//	    cpu    = 2.0
//	    memory = 3.75
//	  }
//	  sidecar {
//	    cpu    = 0.5
//	    memory = 0.5
//	  }
//	  reserved {
//	    memory = 0.25
//	  }
//	}
//
// sidecar and reserved blocks are optional; a missing reserved block gets the
// default Kubernetes reserved memory.
type hclRoot struct {
	Workloads []hclWorkload `hcl:"workload,block"`
}

type hclWorkload struct {
	Name     string       `hcl:"name,label"`
	Service  hclRequests  `hcl:"service,block"`
	Sidecar  *hclRequests `hcl:"sidecar,block"`
	Reserved *hclRequests `hcl:"reserved,block"`
}

type hclRequests struct {
	CPU    float64 `hcl:"cpu,optional"`
	Memory float64 `hcl:"memory,optional"`
}

func (r hclRequests) requests() Requests {
	return Requests{CPU: r.CPU, Memory: r.Memory}
}

// LoadFile reads workload definitions from an HCL file
func LoadFile(path string) ([]Workload, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to read workload file", err)
	}
	return Load(src, path)
}

// Load parses workload definitions from HCL source
func Load(src []byte, filename string) ([]Workload, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse workload file "+filename, diags)
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, errors.Parsing("failed to decode workload file "+filename, diags)
	}

	if len(root.Workloads) == 0 {
		return nil, errors.Input("workload file " + filename + " defines no workloads")
	}

	workloads := make([]Workload, 0, len(root.Workloads))
	for _, raw := range root.Workloads {
		w := Workload{
			Name:     raw.Name,
			Service:  raw.Service.requests(),
			Reserved: Requests{Memory: DefaultReservedMemory},
		}
		if raw.Sidecar != nil {
			w.Sidecar = raw.Sidecar.requests()
		}
		if raw.Reserved != nil {
			w.Reserved = raw.Reserved.requests()
		}
		if err := w.Validate(); err != nil {
			return nil, err
		}
		workloads = append(workloads, w)
	}

	return workloads, nil
}
