// Package pipeline runs the full plate generation flow for every packing
// strategy: layout, normalization, hole derivation and validation, solid
// assembly, and export.
package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/battkit/cellplate/internal/assembly"
	"github.com/battkit/cellplate/internal/export"
	"github.com/battkit/cellplate/internal/holes"
	"github.com/battkit/cellplate/internal/layout"
	"github.com/battkit/cellplate/internal/model"
	"github.com/battkit/cellplate/internal/step"
)

// Result records the outcome of one strategy's run.
type Result struct {
	Strategy  model.Strategy
	CellCount int
	Skipped   bool
	Path      string
}

// Run generates and exports one plate solid per strategy. Strategies are
// independent and processed sequentially; a strategy with no fitting
// cells is skipped with an informational message, never an error. Kernel
// and I/O failures are fatal.
func Run(logger *log.Logger, cfg model.PlateConfig, app model.AppConfig) ([]Result, error) {
	outDir := app.OutputDir
	if outDir == "" {
		outDir = "."
	}

	var results []Result
	var jobs []model.PlateJob

	for _, strategy := range model.Strategies {
		result, job, err := runStrategy(logger, cfg, strategy, outDir)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
		if job != nil {
			jobs = append(jobs, *job)
		}
	}

	if err := writeArtifacts(logger, app, outDir, jobs); err != nil {
		return nil, err
	}
	return results, nil
}

// runStrategy executes the pipeline for a single strategy.
func runStrategy(logger *log.Logger, cfg model.PlateConfig, strategy model.Strategy, outDir string) (Result, *model.PlateJob, error) {
	positions, err := layout.Generate(strategy, cfg.XDim, cfg.YDim, cfg.Spacing, cfg.CellSize)
	if err != nil {
		return Result{}, nil, err
	}
	if len(positions) == 0 {
		logger.Infof("No cells in %s, skipping export", strategy.DisplayName())
		return Result{Strategy: strategy, Skipped: true}, nil, nil
	}

	centered, bounds, ok := layout.Normalize(positions, cfg.CellRadius(), cfg.Spacing)
	if !ok {
		logger.Infof("No cells in %s, skipping export", strategy.DisplayName())
		return Result{Strategy: strategy, Skipped: true}, nil, nil
	}

	assembler := assembly.New(cfg, strategy)

	var validated []model.Point2D
	if cfg.BMSHoles {
		footprint, err := assembler.Footprint(bounds)
		if err != nil {
			return Result{}, nil, fmt.Errorf("%s: %w", strategy.DisplayName(), err)
		}
		candidates := holes.Candidates(centered, cfg.CellSize, cfg.Spacing, strategy)
		validated = holes.NewValidator(footprint, cfg.HoleDiameter).Validate(candidates)
		logger.Debugf("%s: %d hole candidates, %d validated", strategy.DisplayName(), len(candidates), len(validated))
	}

	solid, err := assembler.Build(centered, bounds, validated)
	if err != nil {
		return Result{}, nil, fmt.Errorf("%s: %w", strategy.DisplayName(), err)
	}

	path := filepath.Join(outDir, strategy.FileName())
	if err := step.WriteFile(path, solid, strategy.FileName()); err != nil {
		return Result{}, nil, fmt.Errorf("%s: %w", strategy.DisplayName(), err)
	}
	logger.Infof("Saved %s to %s with %d cells", strategy.DisplayName(), path, len(centered))

	job := model.NewPlateJob(strategy, cfg, bounds, centered, validated)
	return Result{Strategy: strategy, CellCount: len(centered), Path: path}, &job, nil
}

// writeArtifacts produces the optional shop-floor outputs enabled in the
// application config.
func writeArtifacts(logger *log.Logger, app model.AppConfig, outDir string, jobs []model.PlateJob) error {
	if len(jobs) == 0 {
		return nil
	}

	if app.ExportDatasheet {
		path := filepath.Join(outDir, "cellplate_datasheet.pdf")
		if err := export.Datasheet(path, jobs); err != nil {
			return fmt.Errorf("datasheet export: %w", err)
		}
		logger.Infof("Saved datasheet to %s", path)
	}

	if app.ExportDXF {
		for _, job := range jobs {
			path := filepath.Join(outDir, export.DXFFileName(job.Strategy))
			if err := export.DXF(path, job); err != nil {
				return fmt.Errorf("dxf export: %w", err)
			}
			logger.Infof("Saved %s drawing to %s", job.Strategy.DisplayName(), path)
		}
	}

	if app.ExportBOM {
		path := filepath.Join(outDir, "cellplate_bom.xlsx")
		if err := export.BOM(path, jobs); err != nil {
			return fmt.Errorf("bom export: %w", err)
		}
		logger.Infof("Saved BOM to %s", path)
	}

	if app.ExportLabels {
		path := filepath.Join(outDir, "cellplate_labels.pdf")
		if err := export.Labels(path, jobs); err != nil {
			return fmt.Errorf("label export: %w", err)
		}
		logger.Infof("Saved labels to %s", path)
	}

	return nil
}
