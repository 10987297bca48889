package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/ogscrape"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := ogscrape.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogscrape.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, records)
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved scrapes. Use 'ogscrape scrape --save' to save one.")
		return nil
	}

	for _, rec := range records {
		title, _ := rec.Result.String(ogscrape.FieldOGTitle)
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", rec.ID, rec.ScrapedAt.Format(time.RFC3339), rec.URL, title)
	}
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		if ogscrape.ErrorCode(err) == ogscrape.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'ogscrape history' to see saved scrapes.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ogscrape.ErrorMessage(err))
		}
		return err
	}
	return writeJSON(deps.Stdout, rec)
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogscrape.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Deleted record %s\n", c.ID)
	return nil
}
