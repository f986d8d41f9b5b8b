package pipeline

import (
	"time"

	"ipjournal/internal/aggregate"
	"ipjournal/internal/config"
	"ipjournal/internal/filter"
	"ipjournal/internal/journal"
	"ipjournal/internal/output"
	"ipjournal/pkg/models"
	"ipjournal/pkg/utils"
)

// Logger receives progress and success messages
type Logger interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
}

// Result summarizes one batch run
type Result struct {
	Parsed   int
	Rejected int
	Kept     int
	Counts   *models.EntryCounts
	Output   string
}

// Run loads the journal, filters it, counts entries per address and writes the result.
// Any error aborts the run.
func Run(cfg config.Config, log Logger) (*Result, error) {
	chain, err := filter.NewChain(filter.Options{
		TimeStart:    cfg.TimeStart,
		TimeEnd:      cfg.TimeEnd,
		AddressStart: cfg.AddressStart,
		AddressMask:  cfg.AddressMask,
	})
	if err != nil {
		return nil, err
	}

	entries, rejected, err := journal.NewParser(time.Local).Load(cfg.FileLog)
	if err != nil {
		return nil, err
	}
	log.Info("Opened journal successfully (%d entries, %d malformed lines skipped)", len(entries), rejected)

	res := &Result{Parsed: len(entries), Rejected: rejected}

	entries, err = chain.Apply(entries, log)
	if err != nil {
		return nil, err
	}
	res.Kept = len(entries)

	res.Counts = aggregate.Count(entries)

	res.Output, err = output.Write(cfg.FileOutput, res.Counts)
	if err != nil {
		return nil, utils.WrapError(err, "save result")
	}
	log.Success("File successfully saved to %s (%d addresses)", res.Output, res.Counts.Len())

	return res, nil
}
