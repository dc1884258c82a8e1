package dots

import (
	"context"
	"fmt"
	"log"

	"github.com/FuzzyMonkeyCo/verdict/pkg/as"
	"github.com/FuzzyMonkeyCo/verdict/pkg/progresser"
	"github.com/FuzzyMonkeyCo/verdict/pkg/report"
)

var _ progresser.Interface = (*Progresser)(nil)

// Progresser implements progresser.Interface
type Progresser struct {
	printed bool
}

// WithContext sets ctx of a progresser.Interface implementation
func (p *Progresser) WithContext(ctx context.Context) {}

// Terminate cleans up after a progresser.Interface implementation instance
func (p *Progresser) Terminate() error {
	if p.printed {
		fmt.Println()
	}
	return nil
}

// Line prints a dot per line, a bang per falsified property
func (p *Progresser) Line(s string) {
	log.Println("[NFO] engine:", s)
	p.printed = true
	results, _ := report.Parse(s)
	if len(results) == 1 && results[0].Outcome == report.Failed {
		as.ColorERR.Printf("!")
		return
	}
	fmt.Printf(".")
}

// Printf only logs informational data
func (p *Progresser) Printf(format string, s ...interface{}) {
	log.Printf("[NFO] "+format, s...)
}

// Errorf logs error messages and shows them on their own line
func (p *Progresser) Errorf(format string, s ...interface{}) {
	log.Printf("[ERR] "+format, s...)
	if p.printed {
		fmt.Println()
		p.printed = false
	}
	as.ColorERR.Printf(format+"\n", s...)
}
