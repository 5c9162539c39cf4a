package main

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/comps-cli/internal/analyze"
	"github.com/sells-group/comps-cli/internal/headermap"
	"github.com/sells-group/comps-cli/internal/ingest"
	"github.com/sells-group/comps-cli/internal/model"
	"github.com/sells-group/comps-cli/internal/report"
	"github.com/sells-group/comps-cli/internal/validate"
)

// pipelineRequest carries everything one full pipeline run needs. Each
// run computes into fresh structures; nothing is shared between runs.
type pipelineRequest struct {
	Path           string
	Subject        *model.SubjectProperty
	MaxPrice       model.Number
	IncludeRecords bool
	Sheet          string
}

// analysisOptions builds analyzer tuning from config plus the per-run cap.
func analysisOptions(maxPrice model.Number) (analyze.Options, error) {
	mode, err := analyze.ParseAggregate(cfg.Analysis.Aggregate)
	if err != nil {
		return analyze.Options{}, err
	}
	opts := analyze.DefaultOptions()
	opts.Aggregate = mode
	opts.PriceFloor = cfg.Analysis.PriceFloor
	opts.SqftTolerance = cfg.Analysis.SqftTolerance
	opts.MaxPrice = maxPrice
	return opts, nil
}

// loadSynonyms returns the header synonym table, honoring a configured
// override file.
func loadSynonyms() (headermap.Synonyms, error) {
	if cfg.Ingest.SynonymsFile == "" {
		return headermap.Defaults(), nil
	}
	syn, err := headermap.LoadSynonyms(cfg.Ingest.SynonymsFile)
	if err != nil {
		return nil, err
	}
	zap.L().Info("loaded synonym overrides", zap.String("path", cfg.Ingest.SynonymsFile))
	return syn, nil
}

// readDataset ingests one file from disk into a dataset.
func readDataset(path, sheet string) (model.Dataset, model.FormatKind, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return model.Dataset{}, "", eris.Wrap(err, "read input file")
	}
	doc := model.RawDocument{Content: content, Filename: filepath.Base(path)}
	return ingest.Read(doc, ingest.XLSXOptions{SheetName: sheet})
}

// runPipeline executes the full pipeline for one file: ingest, header
// mapping, validation gate, then the analyzers. Validation failure and
// ingestion errors are fatal for the run; mapping gaps only produce
// warnings and absent statistics.
func runPipeline(req pipelineRequest) (report.Analysis, error) {
	ds, kind, err := readDataset(req.Path, req.Sheet)
	if err != nil {
		return report.Analysis{}, err
	}

	syn, err := loadSynonyms()
	if err != nil {
		return report.Analysis{}, err
	}
	fields := headermap.Map(ds.Columns, syn)

	var warnings []string
	for _, missing := range headermap.MissingOptional(fields) {
		warnings = append(warnings, "unmapped optional field: "+string(missing))
	}
	if len(warnings) > 0 {
		zap.L().Warn("optional canonical fields unmapped",
			zap.String("file", req.Path),
			zap.Strings("warnings", warnings),
		)
	}

	if ok, msg := validate.Dataset(ds, fields, cfg.Analysis.PriceFloor); !ok {
		return report.Analysis{}, eris.Errorf("validate %s: %s", req.Path, msg)
	}

	opts, err := analysisOptions(req.MaxPrice)
	if err != nil {
		return report.Analysis{}, err
	}

	records := analyze.Clean(ds, fields)

	a := report.Analysis{
		RunID:    uuid.NewString(),
		File:     req.Path,
		Format:   kind,
		County:   ingest.DetectCounty(filepath.Base(req.Path)),
		Fields:   fields,
		Warnings: warnings,
		Stats:    analyze.Neighborhood(records, opts),
		Units:    analyze.Units(records, opts),
	}
	if req.IncludeRecords {
		a.Records = records
	}
	if _, ok := fields[model.FieldDate]; ok {
		a.Trend = analyze.Trend(records, opts)
	}
	if req.Subject != nil {
		a.Subject = req.Subject
		comparison := analyze.Compare(records, *req.Subject, opts)
		a.Comparison = &comparison
	}

	zap.L().Info("pipeline complete",
		zap.String("run_id", a.RunID),
		zap.String("file", req.Path),
		zap.String("format", string(kind)),
		zap.Int("records", len(records)),
		zap.Int("priced", a.Stats.Count),
		zap.Int("unit_cohorts", len(a.Units)),
	)

	return a, nil
}

// writeAnalysis renders an analysis to the output path or stdout.
func writeAnalysis(a report.Analysis, format, outPath string) error {
	var w *os.File
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return eris.Wrap(err, "create output file")
		}
		defer f.Close() //nolint:errcheck
		w = f
	} else {
		w = os.Stdout
	}

	if format == "json" {
		return report.WriteJSON(w, a)
	}
	_, err := w.WriteString(report.Text(a))
	return err
}
