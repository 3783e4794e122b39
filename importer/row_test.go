package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jadwal/payroll-processor/models"
)

func rowMapping() map[int]string {
	return map[int]string{
		0: KeyEmployeeNo,
		1: KeyFullName,
		2: KeyLevel,
		3: KeyBasePay,
		4: KeyExperienceYears,
		5: KeyHousingAllowance,
		6: KeyOvertimeHours,
		7: KeyDeductions,
		8: KeyHireDate,
	}
}

func rowScale() models.SalaryScale {
	return models.SalaryScale{
		"01": {BasePay: 1000, AdminAllowance: 150, EducationAllowance: 100, ExperienceRate: 50},
	}
}

func TestParseRowDerivation(t *testing.T) {
	values := []interface{}{"7", "أحمد خالد", "1", nil, float64(2), float64(300), float64(4), float64(120), "05/03/2020"}

	emp, err := ParseRow(values, rowMapping(), rowScale(), 9)
	require.NoError(t, err)
	require.NotNil(t, emp)

	assert.Equal(t, "07", emp.EmployeeNo)
	assert.Equal(t, "أحمد خالد", emp.FullName)
	assert.Equal(t, "01", emp.Level)
	assert.Equal(t, "2020-03-05", emp.HireDate)
	assert.Equal(t, 9, emp.RowNumber)

	// scale defaults fill the blanks
	assert.Equal(t, float64(1000), emp.BasePay)
	assert.Equal(t, float64(150), emp.AdminAllowance)
	assert.Equal(t, float64(100), emp.EducationAllowance)
	assert.Equal(t, float64(100), emp.ExperienceAllowance) // 2 years x 50

	assert.Equal(t, 150+100+100+300.0, emp.TotalAllowances)
	assert.Equal(t, emp.BasePay+emp.TotalAllowances, emp.Gross)
	assert.Equal(t, emp.BasePay/30, emp.DailyRate)
	assert.Equal(t, emp.DailyRate/8, emp.HourlyRate)
	assert.Equal(t, 4*emp.HourlyRate*1.25, emp.OvertimeValue)
	assert.Equal(t, emp.Gross+emp.OvertimeValue-120, emp.Net)
}

func TestParseRowExplicitOverridesScale(t *testing.T) {
	values := []interface{}{"7", "أحمد", "1", float64(2000), nil, nil, nil, nil, nil}

	emp, err := ParseRow(values, rowMapping(), rowScale(), 5)
	require.NoError(t, err)

	assert.Equal(t, float64(2000), emp.BasePay)
}

func TestParseRowWithoutScale(t *testing.T) {
	values := []interface{}{"7", "أحمد", "1", nil, float64(2), nil, nil, nil, nil}

	emp, err := ParseRow(values, rowMapping(), nil, 5)
	require.NoError(t, err)

	assert.Zero(t, emp.BasePay)
	assert.Zero(t, emp.ExperienceAllowance)
}

func TestParseRowEmptyName(t *testing.T) {
	values := []interface{}{nil, nil, nil, nil, nil, nil, nil, nil, nil}

	emp, err := ParseRow(values, rowMapping(), rowScale(), 5)
	assert.NoError(t, err)
	assert.Nil(t, emp)
}

func TestParseRowMissingEmployeeNumber(t *testing.T) {
	values := []interface{}{nil, "أحمد خالد", nil, nil, nil, nil, nil, nil, nil}

	emp, err := ParseRow(values, rowMapping(), rowScale(), 12)
	require.Error(t, err)
	assert.Nil(t, emp)
	assert.Contains(t, err.Error(), "row 12")
}

func TestParseRowNetInvariant(t *testing.T) {
	rows := [][]interface{}{
		{"1", "موظف أول", "1", nil, float64(3), float64(250), float64(10), float64(75), nil},
		{"2", "موظف ثان", nil, float64(1800), nil, nil, nil, float64(300), nil},
		{"3", "موظف ثالث", "1", "١٬٢٠٠", float64(1), nil, float64(2.5), nil, nil},
	}

	for _, values := range rows {
		emp, err := ParseRow(values, rowMapping(), rowScale(), 2)
		require.NoError(t, err)

		assert.Equal(t, emp.BasePay+emp.TotalAllowances+emp.OvertimeValue-emp.Deductions, emp.Net)
	}
}

func TestParseRowUnparseableHireDate(t *testing.T) {
	values := []interface{}{"7", "أحمد", "1", nil, nil, nil, nil, nil, "غير معروف"}

	emp, err := ParseRow(values, rowMapping(), rowScale(), 6)
	require.NoError(t, err)
	require.NotNil(t, emp)

	assert.Empty(t, emp.HireDate)
	require.Len(t, emp.Errors, 1)
	assert.Contains(t, emp.Errors[0], "hire date")
}

func TestParseRowUnknownLevel(t *testing.T) {
	values := []interface{}{"7", "أحمد", "9", nil, nil, nil, nil, nil, nil}

	emp, err := ParseRow(values, rowMapping(), rowScale(), 6)
	require.NoError(t, err)

	require.Len(t, emp.Errors, 1)
	assert.Contains(t, emp.Errors[0], "level 09")
}

func TestParseRowUnknownLevelWithoutScale(t *testing.T) {
	values := []interface{}{"7", "أحمد", "9", nil, nil, nil, nil, nil, nil}

	emp, err := ParseRow(values, rowMapping(), nil, 6)
	require.NoError(t, err)

	// no scale means no levels to validate against
	assert.Empty(t, emp.Errors)
}

func TestParseCurrency(t *testing.T) {
	assert.Equal(t, models.CurrencyUSD, parseCurrency("دولار"))
	assert.Equal(t, models.CurrencyUSD, parseCurrency("USD"))
	assert.Equal(t, models.CurrencyLocal, parseCurrency("ليرة"))
	assert.Equal(t, models.CurrencyLocal, parseCurrency(""))
}
