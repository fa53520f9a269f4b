package postgres

import (
	"laundry/internal/adapters/out/postgres/employeerepo"
	"laundry/internal/adapters/out/postgres/financerepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/tariffrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&employeerepo.EmployeeDTO{},
		&financerepo.ExpenseDTO{},
		&financerepo.SalaryPaymentDTO{},
		&tariffrepo.TariffDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
