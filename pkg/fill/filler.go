package fill

import "context"

// Filler applies a plan to a template PDF and reads values back out. The
// pdfcpu implementation is the only production filler; tests substitute a
// recording fake.
type Filler interface {
	// Fill writes the plan's field values into templatePath and saves the
	// result at outputPath.
	Fill(ctx context.Context, templatePath, outputPath string, plan *Plan) error

	// Export reads the current field values out of a filled PDF, keyed by
	// AcroForm field name.
	Export(ctx context.Context, pdfPath string) (map[string]string, error)
}
