package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the database schema" }
func (*initCmd) Usage() string {
	return `init

  Creates the inventory schema if it does not exist. The store location
  is taken from STORE_DRIVER and STORE_DSN (default: ./inventory.db).
`
}
func (*initCmd) SetFlags(*flag.FlagSet) {}

func (c *initCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer a.Close()
	fmt.Println("database ready")
	return subcommands.ExitSuccess
}

type addItemCmd struct {
	size     string
	category string
	minStock int
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "register a uniform variant" }
func (*addItemCmd) Usage() string {
	return `add-item <name> [-size <size>] [-category <category>] [-min-stock <n>]

  Registers a uniform variant keyed by (name, size, category). Running
  it again for an existing variant only updates the minimum-stock
  threshold; the id and current quantity are preserved.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.size, "size", "", "item size")
	f.StringVar(&c.category, "category", "", "item category")
	f.IntVar(&c.minStock, "min-stock", 0, "minimum-stock threshold")
}

func (c *addItemCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := f.Arg(0)
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: item name is required")
		return subcommands.ExitUsageError
	}

	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	item, err := a.Catalog.UpsertItem(ctx, name, c.size, c.category, c.minStock)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("item #%d: %s %s %s (min stock %d)\n",
		item.ID, item.Name, item.Size, item.Category, item.MinStock)
	return subcommands.ExitSuccess
}

type addEmployeeCmd struct {
	role  string
	badge string
}

func (*addEmployeeCmd) Name() string     { return "add-employee" }
func (*addEmployeeCmd) Synopsis() string { return "register an employee" }
func (*addEmployeeCmd) Usage() string {
	return `add-employee <name> [-role <role>] [-badge <badge>]

  Registers an employee. When the badge is already known, the existing
  record's name and role are updated instead of creating a duplicate.
`
}

func (c *addEmployeeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.role, "role", "", "employee role")
	f.StringVar(&c.badge, "badge", "", "badge number, globally unique")
}

func (c *addEmployeeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := f.Arg(0)
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: employee name is required")
		return subcommands.ExitUsageError
	}

	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	emp, err := a.Catalog.UpsertEmployee(ctx, name, c.role, c.badge)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("employee #%d: %s (%s)\n", emp.ID, emp.Name, emp.Role)
	return subcommands.ExitSuccess
}
