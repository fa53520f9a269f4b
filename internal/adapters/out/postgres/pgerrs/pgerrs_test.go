package pgerrs_test

import (
	"errors"
	"fmt"
	"testing"

	"laundry/internal/adapters/out/postgres/pgerrs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"wrapped pg unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"other pg error", &pgconn.PgError{Code: "23503"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgerrs.IsUniqueViolation(tt.err))
		})
	}
}

func TestConstraintName(t *testing.T) {
	assert.Equal(t, "idx_orders_code", pgerrs.ConstraintName(&pgconn.PgError{Code: "23505", ConstraintName: "idx_orders_code"}))
	assert.Empty(t, pgerrs.ConstraintName(errors.New("boom")))
}
