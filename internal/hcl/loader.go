package hcl

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/specialistvlad/kuilang/internal/ctxlog"
)

// FileExtension is the extension of KuiLang source files.
const FileExtension = ".kui"

// Loader is the HCL implementation of ast.Loader. It remembers every file it
// parsed so diagnostics can be rendered with source snippets. A Loader is
// safe for concurrent use.
type Loader struct {
	mu    sync.Mutex
	files map[string]*hcl.File
}

var _ ast.Loader = (*Loader)(nil)

// NewLoader creates a new HCL source loader.
func NewLoader() *Loader {
	return &Loader{files: make(map[string]*hcl.File)}
}

// Load reads and translates the file at path.
func (l *Loader) Load(ctx context.Context, path string) (*ast.Program, hcl.Diagnostics) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Failed to read file",
			Detail:   fmt.Sprintf("The file %q could not be read: %s.", path, err),
		}}
	}
	return l.LoadSource(ctx, path, src)
}

// LoadSource translates src as if it had been read from filename.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*ast.Program, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx).With("file", filename)
	logger.Debug("Parsing source file.", "bytes", len(src))

	// hclparse.Parser is not safe for concurrent use; use one per file.
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if file != nil {
		l.mu.Lock()
		l.files[filename] = file
		l.mu.Unlock()
	}
	if diags.HasErrors() {
		logger.Debug("Source file has syntax errors.", "count", len(diags))
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported file format",
			Detail:   "KuiLang sources must use HCL native syntax.",
		})
	}

	p := &fileParser{}
	program := p.program(filename, body)
	diags = append(diags, p.diags...)
	if diags.HasErrors() {
		logger.Debug("Source file rejected.", "diagnostics", len(diags))
		return nil, diags
	}

	logger.Debug("Source file translated.", "nodes", ast.Count(program))
	return program, diags
}

// Files returns the parsed files keyed by filename, for use with
// hcl.NewDiagnosticTextWriter.
func (l *Loader) Files() map[string]*hcl.File {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]*hcl.File, len(l.files))
	for k, v := range l.files {
		out[k] = v
	}
	return out
}
