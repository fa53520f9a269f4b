package financerepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/financerepo"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/domain/model/finance"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type FinanceRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *financerepo.GormFinanceRepository
}

func (suite *FinanceRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *FinanceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = financerepo.NewGormFinanceRepository(suite.database.DB)
}

func (suite *FinanceRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *FinanceRepositoryIntegrationTestSuite) TestExpensesBetween_HalfOpenRange() {
	ctx := context.Background()
	for _, d := range []int{9, 10, 11, 12} {
		suite.Require().NoError(suite.repository.AddExpense(ctx, suite.expense(d)))
	}

	got, err := suite.repository.GetExpensesBetween(ctx, date(10), date(12))

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(date(10), got[0].SpentOn())
	suite.Equal(date(11), got[1].SpentOn())
	suite.Equal("detergent", got[0].Category())
	suite.True(got[0].Amount().Equal(decimal.RequireFromString("125.50")))
	suite.Equal("refill", got[0].Note())
}

func (suite *FinanceRepositoryIntegrationTestSuite) TestAddExpense_Duplicate() {
	ctx := context.Background()
	e := suite.expense(10)
	suite.Require().NoError(suite.repository.AddExpense(ctx, e))

	err := suite.repository.AddExpense(ctx, e)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *FinanceRepositoryIntegrationTestSuite) TestSalaryPaymentsBetween() {
	ctx := context.Background()
	employeeID := kernel.NewUUID()
	for _, d := range []int{1, 15, 31} {
		p, err := finance.NewSalaryPayment(kernel.NewUUID(), employeeID, decimal.NewFromInt(300), date(d))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.AddSalaryPayment(ctx, p))
	}

	got, err := suite.repository.GetSalaryPaymentsBetween(ctx, date(1), date(31))

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].EmployeeID().IsEqual(employeeID))
	suite.Equal(date(15), got[1].PaidOn())
}

func (suite *FinanceRepositoryIntegrationTestSuite) expense(d int) *finance.Expense {
	e, err := finance.NewExpense(kernel.NewUUID(), "Detergent", decimal.RequireFromString("125.50"), date(d), "refill")
	suite.Require().NoError(err)
	return e
}

func date(d int) time.Time {
	return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestFinanceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceRepositoryIntegrationTestSuite))
}
