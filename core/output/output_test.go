package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fargate-cost/core/advisor"
	"fargate-cost/core/catalog"
	"fargate-cost/core/pricing"
	"fargate-cost/core/selector"
	"fargate-cost/core/workload"
)

func testReport(t *testing.T) *Report {
	t.Helper()

	w := workload.New("checkout", workload.Requests{CPU: 1.5, Memory: 4.75})
	total := w.Total()

	sel := selector.New(catalog.Default())
	prov, err := sel.Evaluate(total.CPU, total.Memory)
	if err != nil {
		t.Fatal(err)
	}

	model := pricing.Default()
	return &Report{
		Workload:   w,
		Total:      total,
		Provision:  prov,
		Evaluation: advisor.New(model).Evaluate(w.Service, prov),
		Currency:   model.Currency,
		Metadata:   ReportMetadata{Timestamp: "2024-01-01T00:00:00Z", Version: "test"},
	}
}

func TestCLIFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CLIFormatter{}).Render(&buf, testReport(t)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"Workload: checkout",
		"Total resources required",
		"1.50 vCPU, 5.00 GB",
		"Fargate resource tier provisioned",
		"2.00 vCPU, 5.00 GB",
		"not optimal",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("CLI output missing %q\n%s", want, out)
		}
	}
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Render(&buf, testReport(t)); err != nil {
		t.Fatal(err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Workload.Name != "checkout" {
		t.Errorf("workload name = %q", decoded.Workload.Name)
	}
	if decoded.Provision.Primary.Tier.CPU != 2 {
		t.Errorf("primary tier CPU = %g", decoded.Provision.Primary.Tier.CPU)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownFormatter{}).Render(&buf, testReport(t)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "## checkout") {
		t.Errorf("markdown output missing heading\n%s", out)
	}
	if !strings.Contains(out, "| Total resources required |") {
		t.Errorf("markdown output missing table row\n%s", out)
	}
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []Format{FormatCLI, FormatJSON, FormatMarkdown} {
		f, err := NewFormatter(format)
		if err != nil {
			t.Fatalf("NewFormatter(%s): %v", format, err)
		}
		if f.Format() != format {
			t.Errorf("Format() = %s, expected %s", f.Format(), format)
		}
	}

	if _, err := NewFormatter("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
