package scenario

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// LoadFile reads scenarios from a .yaml, .yml or .hcl file.
func LoadFile(path string) ([]Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var scenarios []Scenario
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		scenarios, err = ParseYAML(src)
	case ".hcl":
		scenarios, err = ParseHCL(src, path)
	default:
		return nil, fmt.Errorf("unsupported scenario file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario file %s: %w", path, err)
	}
	return scenarios, nil
}

type yamlFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// ParseYAML decodes a scenarios document. Data keeps its YAML type.
func ParseYAML(src []byte) ([]Scenario, error) {
	var f yamlFile
	if err := yaml.Unmarshal(src, &f); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return validated(f.Scenarios)
}

// hclFile represents the top-level structure of a scenario file for decoding.
type hclFile struct {
	Scenarios []*hclScenario `hcl:"scenario,block"`
}

type hclScenario struct {
	Title  string         `hcl:"title,label"`
	Name   *string        `hcl:"name,optional"`
	Data   hcl.Expression `hcl:"data,optional"`
	Expect *string        `hcl:"expect,optional"`
}

// ParseHCL decodes scenario blocks. A missing data attribute is absent data.
func ParseHCL(src []byte, filename string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %w", diags)
	}

	scenarios := make([]Scenario, 0, len(parsed.Scenarios))
	for _, block := range parsed.Scenarios {
		val, diags := block.Data.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("scenario %q: failed to evaluate data: %w", block.Title, diags)
		}
		data, err := scenarioData(val)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", block.Title, err)
		}

		sc := Scenario{Title: block.Title, Name: block.Name, Data: data}
		if block.Expect != nil {
			sc.Expect = *block.Expect
		}
		scenarios = append(scenarios, sc)
	}
	return validated(scenarios)
}

func validated(scenarios []Scenario) ([]Scenario, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios defined")
	}
	for _, sc := range scenarios {
		if err := sc.Validate(); err != nil {
			return nil, err
		}
	}
	return scenarios, nil
}

// scenarioData turns an evaluated data attribute into the value handed to the
// simulator. Numbers follow the YAML loader: whole numbers become int, the
// rest float64, so `data = 42` means the same thing in both file formats.
func scenarioData(val cty.Value) (any, error) {
	ty := val.Type()
	switch {
	case val.IsNull():
		return nil, nil
	case !val.IsWhollyKnown():
		return nil, fmt.Errorf("data must be a literal value")
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		n := val.AsBigFloat()
		if i, acc := n.Int64(); acc == big.Exact {
			return int(i), nil
		}
		f, _ := n.Float64()
		return f, nil
	case ty.IsObjectType() || ty.IsMapType():
		fields := make(map[string]any, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			elem, err := scenarioData(v)
			if err != nil {
				return nil, fmt.Errorf("data.%s: %w", k.AsString(), err)
			}
			fields[k.AsString()] = elem
		}
		return fields, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		items := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			elem, err := scenarioData(v)
			if err != nil {
				return nil, fmt.Errorf("data[%d]: %w", len(items), err)
			}
			items = append(items, elem)
		}
		return items, nil
	}
	return nil, fmt.Errorf("unsupported data type %s", ty.FriendlyName())
}
