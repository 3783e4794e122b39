package importer

import (
	"strings"

	"jadwal/payroll-processor/service/arabic"
)

// Canonical field keys every recognized column maps onto. Columns that
// resolve to none of these are dropped.
const (
	KeyEmployeeNo          = "employee_no"
	KeyFullName            = "full_name"
	KeyHireDate            = "hire_date"
	KeyJobTitle            = "job_title"
	KeyLevel               = "level"
	KeyCurrency            = "currency"
	KeyBasePay             = "base_pay"
	KeyAdminAllowance      = "admin_allowance"
	KeyEducationAllowance  = "education_allowance"
	KeyExperienceAllowance = "experience_allowance"
	KeyHousingAllowance    = "housing_allowance"
	KeyTransportAllowance  = "transport_allowance"
	KeyCostOfLiving        = "cost_of_living"
	KeyChildrenAllowance   = "children_allowance"
	KeySpecialAllowance    = "special_allowance"
	KeyFuelAllowance       = "fuel_allowance"
	KeyExperienceYears     = "experience_years"
	KeyExperienceRate      = "experience_rate"
	KeyOvertimeHours       = "overtime_hours"
	KeyDeductions          = "deductions"
)

// anchorFullName locates the employee header row; valid input always
// carries it.
const anchorFullName = "الاسم الكامل"

// Salary-scale grid anchors.
const anchorScaleBasePay = "الراتب الأساسي"

var anchorScaleLevels = []string{"الدرجة", "المستوى"}

type headerLabel struct {
	label string
	key   string
}

// headerLabels is the static label dictionary, ordered most specific
// first so the substring pass stays deterministic. Labels are written
// pre-normalized (no diacritics, single spaces, ASCII digits).
var headerLabels = []headerLabel{
	{"الاسم الكامل", KeyFullName},
	{"اسم الموظف", KeyFullName},
	{"الاسم", KeyFullName},
	{"رقم الموظف", KeyEmployeeNo},
	{"الرقم الوظيفي", KeyEmployeeNo},
	{"الرقم الذاتي", KeyEmployeeNo},
	{"تاريخ التعيين", KeyHireDate},
	{"تاريخ المباشرة", KeyHireDate},
	{"المسمى الوظيفي", KeyJobTitle},
	{"الوظيفة", KeyJobTitle},
	{"الدرجة الوظيفية", KeyLevel},
	{"المستوى", KeyLevel},
	{"الدرجة", KeyLevel},
	{"الفئة", KeyLevel},
	{"العملة", KeyCurrency},
	{"الراتب الأساسي", KeyBasePay},
	{"الراتب الاساسي", KeyBasePay},
	{"الأساسي", KeyBasePay},
	{"بدل إداري", KeyAdminAllowance},
	{"البدل الإداري", KeyAdminAllowance},
	{"بدل اداري", KeyAdminAllowance},
	{"بدل تعليم", KeyEducationAllowance},
	{"بدل التعليم", KeyEducationAllowance},
	{"بدل خبرة", KeyExperienceAllowance},
	{"بدل الخبرة", KeyExperienceAllowance},
	{"بدل سكن", KeyHousingAllowance},
	{"بدل السكن", KeyHousingAllowance},
	{"بدل نقل", KeyTransportAllowance},
	{"بدل النقل", KeyTransportAllowance},
	{"بدل مواصلات", KeyTransportAllowance},
	{"غلاء معيشة", KeyCostOfLiving},
	{"غلاء المعيشة", KeyCostOfLiving},
	{"بدل أولاد", KeyChildrenAllowance},
	{"بدل الأولاد", KeyChildrenAllowance},
	{"بدل اولاد", KeyChildrenAllowance},
	{"بدل خاص", KeySpecialAllowance},
	{"البدل الخاص", KeySpecialAllowance},
	{"بدل وقود", KeyFuelAllowance},
	{"بدل محروقات", KeyFuelAllowance},
	{"سنوات الخبرة", KeyExperienceYears},
	{"عدد سنوات الخبرة", KeyExperienceYears},
	{"قيمة سنة الخبرة", KeyExperienceRate},
	{"معدل سنة الخبرة", KeyExperienceRate},
	{"ساعات إضافية", KeyOvertimeHours},
	{"الساعات الإضافية", KeyOvertimeHours},
	{"الإضافي", KeyOvertimeHours},
	{"الحسميات", KeyDeductions},
	{"حسميات", KeyDeductions},
	{"الخصومات", KeyDeductions},
	{"خصومات", KeyDeductions},
}

// MapHeader resolves a header label to its canonical key: an exact
// normalized-string match first, then a substring match in either
// direction. Unmatched labels report false.
func MapHeader(label string) (string, bool) {
	normalized := arabic.Normalize(label)
	if normalized == "" {
		return "", false
	}

	for _, entry := range headerLabels {
		if entry.label == normalized {
			return entry.key, true
		}
	}

	for _, entry := range headerLabels {
		if strings.Contains(normalized, entry.label) || strings.Contains(entry.label, normalized) {
			return entry.key, true
		}
	}

	return "", false
}
