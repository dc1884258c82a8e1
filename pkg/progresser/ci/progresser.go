package ci

import (
	"context"
	"fmt"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/progresser"
)

var _ progresser.Interface = (*Progresser)(nil)

// Progresser implements progresser.Interface
type Progresser struct{}

// WithContext sets ctx of a progresser.Interface implementation
func (p *Progresser) WithContext(ctx context.Context) {}

// Terminate cleans up after a progresser.Interface implementation instance
func (p *Progresser) Terminate() error { return nil }

// Line echoes the engine's output verbatim
func (p *Progresser) Line(s string) { fmt.Println(s) }

// Printf formats informational data
func (p *Progresser) Printf(format string, s ...interface{}) { fmt.Printf(format+"\n", s...) }

// Errorf formats error messages
func (p *Progresser) Errorf(format string, s ...interface{}) { as.ColorERR.Printf(format+"\n", s...) }
