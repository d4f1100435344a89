package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show current stock and low-stock alerts" }
func (*statusCmd) Usage() string {
	return `status

  Prints one line per uniform variant with the current quantity and a
  LOW marker for anything under its minimum-stock threshold.
`
}
func (*statusCmd) SetFlags(*flag.FlagSet) {}

func (c *statusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	report, err := a.Query.StatusReport(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if len(report) == 0 {
		fmt.Println("no items yet")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tCATEGORY\tQTY\tMIN\tALERT")
	for _, row := range report {
		alert := ""
		if row.Below {
			alert = "LOW"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			row.Item.Name, row.Item.Size, row.Item.Category,
			row.Quantity, row.Item.MinStock, alert)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type historyCmd struct {
	name     string
	employee string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list recorded movements, newest first" }
func (*historyCmd) Usage() string {
	return `history [-name <substring>] [-employee <substring>]

  Lists movements newest first, optionally filtered by item name or
  employee name substring.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "filter by item name substring")
	f.StringVar(&c.employee, "employee", "", "filter by employee name substring")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	rows, err := a.Query.History(ctx, c.name, c.employee)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if len(rows) == 0 {
		fmt.Println("no movements recorded")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tITEM\tSIZE\tEMPLOYEE\tQTY\tNOTE")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%+d\t%s\n",
			row.CreatedAt.Format("2006-01-02 15:04:05"), row.TypeLabel,
			row.ItemName, row.Size, row.Employee, row.Quantity, row.Note)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
