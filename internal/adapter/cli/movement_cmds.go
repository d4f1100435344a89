package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/guardwear/inventory/internal/core/domain"
)

// movementCmd backs the four movement subcommands. They share the same
// shape: an item key, a quantity, an optional note, and for issue and
// return an employee. The sign convention is applied here, not in the
// ledger: issue stores a negative delta, stock-in and return positive,
// adjust passes the caller's sign through.
type movementCmd struct {
	kind     domain.Kind
	name     string
	synopsis string
	empFlag  string // employee flag name, empty for kinds without one

	size     string
	category string
	note     string
	employee string
	quantity int
}

func newMovementCmd(kind domain.Kind) *movementCmd {
	c := &movementCmd{kind: kind}
	switch kind {
	case domain.KindStockIn:
		c.name, c.synopsis = "stock-in", "receive stock into the warehouse"
	case domain.KindIssue:
		c.name, c.synopsis, c.empFlag = "issue", "issue uniforms to an employee", "to"
	case domain.KindReturn:
		c.name, c.synopsis, c.empFlag = "return", "receive uniforms back from an employee", "from"
	case domain.KindAdjust:
		c.name, c.synopsis = "adjust", "correct the count after a physical audit"
	}
	return c
}

func (c *movementCmd) Name() string     { return c.name }
func (c *movementCmd) Synopsis() string { return c.synopsis }
func (c *movementCmd) Usage() string {
	emp := ""
	if c.empFlag != "" {
		emp = fmt.Sprintf(" -%s <employee>", c.empFlag)
	}
	return fmt.Sprintf(`%s <name> [-size <size>] [-category <category>]%s -quantity <n> [-note <note>]

  %s. The item must already exist; use add-item first.
`, c.name, emp, c.synopsis)
}

func (c *movementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.size, "size", "", "item size")
	f.StringVar(&c.category, "category", "", "item category")
	f.StringVar(&c.note, "note", "", "free-text note")
	f.IntVar(&c.quantity, "quantity", 0, "quantity moved")
	if c.empFlag != "" {
		f.StringVar(&c.employee, c.empFlag, "", "employee name")
	}
}

func (c *movementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := f.Arg(0)
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: item name is required")
		return subcommands.ExitUsageError
	}
	if c.empFlag != "" && c.employee == "" {
		fmt.Fprintf(os.Stderr, "Error: -%s <employee> is required\n", c.empFlag)
		return subcommands.ExitUsageError
	}

	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	item, err := a.Catalog.ResolveItem(ctx, name, c.size, c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var employeeID *int64
	if c.employee != "" {
		emp, err := a.Catalog.ResolveEmployee(ctx, c.employee)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		employeeID = &emp.ID
	}

	m, err := a.Ledger.RecordMovement(ctx, item.ID, employeeID, c.kind,
		domain.SignedQuantity(c.kind, c.quantity), c.note)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	switch c.kind {
	case domain.KindIssue:
		fmt.Printf("issued %d x %s %s to %s\n", -m.Quantity, item.Name, item.Size, c.employee)
	case domain.KindReturn:
		fmt.Printf("received %d x %s %s back from %s\n", m.Quantity, item.Name, item.Size, c.employee)
	case domain.KindAdjust:
		fmt.Printf("adjusted %s %s by %+d\n", item.Name, item.Size, m.Quantity)
	default:
		fmt.Printf("stocked in %d x %s %s\n", m.Quantity, item.Name, item.Size)
	}
	return subcommands.ExitSuccess
}
