package fill

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/clearform/sf86gen/pkg/field"
)

// PDFCPUFiller drives pdfcpu's form fill and export. The engine works on
// files, so plans are staged as form JSON in a temp directory.
type PDFCPUFiller struct{}

// NewPDFCPUFiller returns the production filler.
func NewPDFCPUFiller() *PDFCPUFiller {
	return &PDFCPUFiller{}
}

// pdfcpu form JSON shapes. Only the widget families the SF-86 uses are
// declared.
type formFile struct {
	Forms []formBlock `json:"forms"`
}

type formBlock struct {
	TextFields  []namedText `json:"textfield,omitempty"`
	CheckBoxes  []namedBool `json:"checkbox,omitempty"`
	RadioGroups []namedText `json:"radiobuttongroup,omitempty"`
	ComboBoxes  []namedText `json:"combobox,omitempty"`
}

type namedText struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type namedBool struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// Fill stages the plan as pdfcpu form JSON and runs the fill.
func (f *PDFCPUFiller) Fill(ctx context.Context, templatePath, outputPath string, plan *Plan) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if plan == nil || len(plan.Fields) == 0 {
		return fmt.Errorf("fill: empty plan")
	}

	stage, err := stagePlan(plan)
	if err != nil {
		return err
	}
	defer os.Remove(stage)

	if err := api.FillFormFile(templatePath, stage, outputPath, nil); err != nil {
		return fmt.Errorf("fill: pdfcpu fill %s: %w", filepath.Base(templatePath), err)
	}
	return nil
}

// Export reads the filled values back out of a PDF.
func (f *PDFCPUFiller) Export(ctx context.Context, pdfPath string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}

	dir, err := os.MkdirTemp("", "sf86gen-export-*")
	if err != nil {
		return nil, fmt.Errorf("fill: stage export: %w", err)
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "form.json")
	if err := api.ExportFormFile(pdfPath, out, nil); err != nil {
		return nil, fmt.Errorf("fill: pdfcpu export %s: %w", filepath.Base(pdfPath), err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("fill: read export: %w", err)
	}
	var file formFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("fill: decode export: %w", err)
	}

	values := make(map[string]string)
	for _, block := range file.Forms {
		for _, tf := range block.TextFields {
			values[tf.Name] = tf.Value
		}
		for _, rg := range block.RadioGroups {
			values[rg.Name] = rg.Value
		}
		for _, cb := range block.ComboBoxes {
			values[cb.Name] = cb.Value
		}
		for _, box := range block.CheckBoxes {
			values[box.Name] = fmt.Sprintf("%t", box.Value)
		}
	}
	return values, nil
}

// stagePlan writes the plan as a pdfcpu form JSON file and returns its path.
func stagePlan(plan *Plan) (string, error) {
	var block formBlock
	for _, fv := range plan.Fields {
		switch fv.Kind {
		case field.KindRadio:
			block.RadioGroups = append(block.RadioGroups, namedText{Name: fv.Name, Value: fv.Value})
		case field.KindCheckbox:
			block.CheckBoxes = append(block.CheckBoxes, namedBool{Name: fv.Name, Value: fv.Value == "true"})
		case field.KindDropdown, field.KindCountry, field.KindState:
			block.ComboBoxes = append(block.ComboBoxes, namedText{Name: fv.Name, Value: fv.Value})
		default:
			block.TextFields = append(block.TextFields, namedText{Name: fv.Name, Value: fv.Value})
		}
	}

	raw, err := json.MarshalIndent(formFile{Forms: []formBlock{block}}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("fill: encode plan: %w", err)
	}

	tmp, err := os.CreateTemp("", "sf86gen-plan-*.json")
	if err != nil {
		return "", fmt.Errorf("fill: stage plan: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("fill: stage plan: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("fill: stage plan: %w", err)
	}
	return tmp.Name(), nil
}
