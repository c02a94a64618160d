// Package docgen generates printable administrative documents for schools:
// certificates, enrollment forms, payment attestations, class rosters,
// attendance sheets and notices.
//
// Generation is a pure computation producing a doc.Document display list; it
// never performs I/O and is total over its inputs (unknown document types and
// missing fields degrade to placeholders instead of failing). The export
// operations ToBytes, PNG, Preview and Download are the impure half: they may
// fail, and failures surface as *ExportError without touching the document.
//
// A Generator holds only immutable configuration, so one instance may be
// shared across goroutines without locking.
package docgen

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/errors"

	"github.com/edutrack/docgen/doc"
	"github.com/edutrack/docgen/format"
	"github.com/edutrack/docgen/render"
	"github.com/edutrack/docgen/template"
)

// DefaultFilename is used by Download when no filename is given.
const DefaultFilename = "document.pdf"

// Generator is the document generation facade.
type Generator struct {
	ctx template.Context
}

// New creates a Generator. It fails only on invalid page geometry, since
// every layout computation assumes a positive content area.
func New(opts ...Option) (*Generator, error) {
	cfg := &generatorConfig{
		geometry: doc.DefaultGeometry(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.geometry.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		ctx: template.Context{
			Geometry:  cfg.geometry,
			Now:       cfg.now,
			Watermark: cfg.watermark,
		},
	}, nil
}

// Generate produces the document for docType from the given data bag. It is
// defined for every string and every data value, returns at least one page,
// and never panics.
func (g *Generator) Generate(docType string, data map[string]any) *doc.Document {
	return template.Generate(g.ctx, docType, format.Record(data))
}

// Types lists the supported document types.
func (g *Generator) Types() []string {
	return template.Types()
}

// ToBytes serializes the document to PDF bytes.
func (g *Generator) ToBytes(d *doc.Document) ([]byte, error) {
	if err := checkDocument(d); err != nil {
		return nil, newExportError("ToBytes", err)
	}
	b, err := render.PDF(d)
	if err != nil {
		return nil, newExportError("ToBytes", err)
	}
	return b, nil
}

// PNG rasterizes one page of the document to PNG bytes for preview
// thumbnails.
func (g *Generator) PNG(d *doc.Document, page int) ([]byte, error) {
	if err := checkDocument(d); err != nil {
		return nil, newExportError("PNG", err)
	}
	b, err := render.PNG(d, page, render.DefaultScale)
	if err != nil {
		return nil, newExportError("PNG", err)
	}
	return b, nil
}

// Download persists the document as a PDF file. An empty filename defaults
// to DefaultFilename.
func (g *Generator) Download(d *doc.Document, filename string) error {
	if filename == "" {
		filename = DefaultFilename
	}
	b, err := g.ToBytes(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return newExportError("Download", errors.Wrap(err, "writing file"))
	}
	return nil
}

// Preview writes the document to a temporary PDF and opens it in the
// platform viewer. The temp file is left for the viewer to read.
func (g *Generator) Preview(d *doc.Document) error {
	b, err := g.ToBytes(d)
	if err != nil {
		return err
	}
	dir, err := os.MkdirTemp("", "docgen-preview-")
	if err != nil {
		return newExportError("Preview", errors.Wrap(err, "creating temp dir"))
	}
	path := filepath.Join(dir, DefaultFilename)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return newExportError("Preview", errors.Wrap(err, "writing temp file"))
	}
	if err := openViewer(path); err != nil {
		return newExportError("Preview", err)
	}
	return nil
}

// openViewer launches the platform document viewer on path.
func openViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return ErrNoViewer
	}
	return errors.Wrap(cmd.Start(), "launching viewer")
}

func checkDocument(d *doc.Document) error {
	if d == nil {
		return ErrNilDocument
	}
	if len(d.Pages) == 0 {
		return ErrNoPage
	}
	return nil
}
