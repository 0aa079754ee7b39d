package main

import (
	"file-exchange/repositories"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	dbPath := flag.String("db", "", "Path to the journal directory (JOURNAL_PATH)")
	limit := flag.Int("limit", 50, "Number of entries to print, 0 for all")
	outcome := flag.String("outcome", "", "Only print entries with this outcome")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("-db is required: an in-memory journal cannot be inspected")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	journal := repositories.NewJournalRepository(db, slog.Default())
	entries, err := journal.Recent(*limit)
	if err != nil {
		log.Fatal(err)
	}
	if *outcome != "" {
		entries = lo.Filter(entries, func(e repositories.JournalEntry, _ int) bool {
			return e.Outcome == *outcome
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "Outcome", "Filename", "Size", "Detail", "Sha256", "Upload ID"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, e := range entries {
		detail := e.MimeType
		if detail == "" {
			detail = e.Reason
		}
		sum := e.Sha256
		if len(sum) > 12 {
			sum = sum[:12]
		}
		uploadID := e.UploadID
		if len(uploadID) > 8 {
			uploadID = uploadID[:8]
		}
		table.Append([]string{
			e.At.Local().Format("2006-01-02 15:04:05"),
			e.Outcome,
			e.Filename,
			humanize.IBytes(uint64(e.Size)),
			detail,
			sum,
			uploadID,
		})
	}
	table.Render()
	fmt.Printf("\n%d entries\n", len(entries))
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
