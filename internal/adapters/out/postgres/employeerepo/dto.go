// Package employeerepo persists shop employees with gorm.
package employeerepo

import (
	"laundry/internal/core/domain/model/employee"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmployeeDTO is the employees table row.
type EmployeeDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null;index"`
	Phone  string    `gorm:"type:varchar(64);not null"`
	Active bool      `gorm:"not null"`
}

func (EmployeeDTO) TableName() string {
	return "employees"
}

func fromDomain(e *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:     e.ID().Bytes(),
		Name:   e.Name(),
		Phone:  e.Phone(),
		Active: e.IsActive(),
	}
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return employee.RestoreEmployee(id, dto.Name, dto.Phone, dto.Active)
}
