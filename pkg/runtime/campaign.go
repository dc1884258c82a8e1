package runtime

import (
	"context"
	"errors"
	"log"

	"github.com/FuzzyMonkeyCo/verdict/pkg/engine"
	"github.com/FuzzyMonkeyCo/verdict/pkg/oracle"
	"github.com/FuzzyMonkeyCo/verdict/pkg/report"
)

// Campaign is a judged engine report
type Campaign struct {
	Text    string
	Results []report.PropertyResult
	Stats   report.CampaignStats
	Verdict *oracle.Verdict

	// EngineErr is the engine's own failure, when it still produced results
	EngineErr error
}

// Source picks how to collect the engine's output.
// echo is only shown lines when streaming.
func (rt *Runtime) Source(stream bool, echo engine.Echoer) engine.Source {
	if stream {
		return &engine.Streaming{Engine: rt.engine, Echo: echo}
	}
	return &engine.Buffered{Engine: rt.engine}
}

// Campaign drains src then parses and judges what it produced.
//
// The engine exits non-zero whenever it falsifies a property, which
// properties expected to fail do on purpose. So an engine failure is only
// returned when its output holds no property result at all.
// A missing engine is always returned.
func (rt *Runtime) Campaign(ctx context.Context, src engine.Source) (c *Campaign, err error) {
	var text string
	text, err = src.Drain(ctx)
	if errors.Is(err, engine.ErrNotFound) {
		return
	}

	c = Judge(rt.oracle, text)
	if err != nil {
		if len(c.Results) == 0 {
			log.Println("[ERR] no property result in engine output:", err)
			return
		}
		log.Println("[NFO] judging engine output despite:", err)
		c.EngineErr, err = err, nil
	}
	return
}

// Judge parses a report and evaluates it with o
func Judge(o *oracle.Oracle, text string) *Campaign {
	results, stats := report.Parse(text)
	log.Printf("[NFO] parsed %d property results and %d stats", len(results), len(stats))
	v := o.Evaluate(results)
	log.Printf("[NFO] %d correct behaviors, %d violations", len(v.Correct), len(v.Violations))
	return &Campaign{
		Text:    text,
		Results: results,
		Stats:   stats,
		Verdict: v,
	}
}
