// Package taxonomy serves the externally-managed category taxonomy file.
package taxonomy

import (
	"context"
	"fmt"
	"os"

	"github.com/carson-networks/expense-server/internal/service"
)

// Provider reads the taxonomy document from disk on every request. Contents
// pass through verbatim: no parsing, no caching, no validation against
// stored expenses.
type Provider struct {
	path string
}

// NewProvider creates a Provider for the given file path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Read returns the raw taxonomy bytes. A missing or unreadable file fails
// the read with a resource_unavailable error rather than masking the fault
// as fabricated content.
func (p *Provider) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, service.NewResourceUnavailableError(
			fmt.Sprintf("taxonomy file %s is unavailable", p.path), err)
	}
	return data, nil
}
