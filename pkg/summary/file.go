package summary

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/FuzzyMonkeyCo/verdict/pkg/oracle"
	"github.com/FuzzyMonkeyCo/verdict/pkg/report"
	"github.com/FuzzyMonkeyCo/verdict/pkg/tags"
)

// File is the machine-readable account of a campaign, kept as a CI artifact.
type File struct {
	Campaign   string           `yaml:"campaign"`
	Engine     string           `yaml:"engine,omitempty"`
	Passed     bool             `yaml:"passed"`
	Counts     Counts           `yaml:"counts"`
	Properties []Property       `yaml:"properties"`
	Correct    []string         `yaml:"correct"`
	Violations []string         `yaml:"violations"`
	Stats      map[string]int64 `yaml:"stats,omitempty"`
	Labels     tags.Labels      `yaml:"labels,omitempty"`
}

// Counts tallies properties per actual outcome.
type Counts struct {
	Passing int `yaml:"passing"`
	Failed  int `yaml:"failed"`
}

// Property is one judged property.
type Property struct {
	Name     string `yaml:"name"`
	Outcome  string `yaml:"outcome"`
	Expected string `yaml:"expected"`
	Correct  bool   `yaml:"correct"`
}

// NewFile summarizes a judged campaign under a fresh campaign identifier.
func NewFile(engine string, stats report.CampaignStats, v *oracle.Verdict) *File {
	f := &File{
		Campaign:   uuid.NewString(),
		Engine:     engine,
		Passed:     v.SuitePassed(),
		Properties: make([]Property, 0, len(v.Judgements)),
		Correct:    v.Correct,
		Violations: v.Violations,
	}
	f.Counts.Passing, f.Counts.Failed = v.Counts()
	for _, j := range v.Judgements {
		f.Properties = append(f.Properties, Property{
			Name:     j.Result.Name,
			Outcome:  j.Result.Outcome.String(),
			Expected: j.Expected.String(),
			Correct:  j.Correct,
		})
	}
	if len(stats) != 0 {
		f.Stats = make(map[string]int64, len(stats))
		for s, value := range stats {
			f.Stats[s.Key()] = value
		}
	}
	return f
}

// WriteFile serializes f as YAML to path.
func WriteFile(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
