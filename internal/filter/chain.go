package filter

import (
	"time"

	"ipjournal/pkg/models"
)

// Logger receives a progress line after each applied filter
type Logger interface {
	Info(format string, args ...any)
}

// Options holds the raw filter arguments; empty address values disable their filter
type Options struct {
	TimeStart    string
	TimeEnd      string
	AddressStart string
	AddressMask  string
}

// Chain applies the date filter, then the optional address filters
type Chain struct {
	from, to time.Time

	lower    models.Address
	hasLower bool

	mask    string
	hasMask bool
}

// NewChain parses the date bounds and the lower address bound up front.
// The mask is checked only when its filter runs.
func NewChain(opts Options) (*Chain, error) {
	from, to, err := parseDateBounds(opts.TimeStart, opts.TimeEnd)
	if err != nil {
		return nil, err
	}

	c := &Chain{from: from, to: to}

	if opts.AddressStart != "" {
		c.lower, err = parseLowerBound(opts.AddressStart)
		if err != nil {
			return nil, err
		}
		c.hasLower = true

		// the mask refines the range filter and is never applied alone
		if opts.AddressMask != "" {
			c.mask, c.hasMask = opts.AddressMask, true
		}
	}

	return c, nil
}

// Apply runs every configured filter over entries and returns the survivors in order
func (c *Chain) Apply(entries []models.JournalEntry, log Logger) ([]models.JournalEntry, error) {
	entries = Between(c.from, c.to, entries)
	log.Info("Filtered entries by date range successfully (%d left)", len(entries))

	if !c.hasLower {
		return entries, nil
	}

	entries = AtLeast(c.lower, entries)
	log.Info("Filtered entries by address start successfully (%d left)", len(entries))

	if !c.hasMask {
		return entries, nil
	}

	entries, err := ByAddressMask(c.mask, entries)
	if err != nil {
		return nil, err
	}
	log.Info("Filtered entries by address mask successfully (%d left)", len(entries))

	return entries, nil
}
