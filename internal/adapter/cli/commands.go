package cli

import (
	"github.com/google/subcommands"

	"github.com/guardwear/inventory/internal/core/domain"
)

// All returns every subcommand for registration.
func All() []subcommands.Command {
	return []subcommands.Command{
		&initCmd{},
		&addItemCmd{},
		&addEmployeeCmd{},
		newMovementCmd(domain.KindStockIn),
		newMovementCmd(domain.KindIssue),
		newMovementCmd(domain.KindReturn),
		newMovementCmd(domain.KindAdjust),
		&statusCmd{},
		&historyCmd{},
	}
}
