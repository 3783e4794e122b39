package models

// ScaleDefaults are the per-level amounts a salary-scale grid provides.
// They fill in whatever the employee row leaves blank.
type ScaleDefaults struct {
	BasePay            float64
	AdminAllowance     float64
	EducationAllowance float64
	ExperienceRate     float64
}

// SalaryScale maps a level identifier to its defaults. Built once per
// import and read-only afterwards.
type SalaryScale map[string]ScaleDefaults

func (s SalaryScale) Lookup(level string) ScaleDefaults {
	if s == nil {
		return ScaleDefaults{}
	}
	return s[level]
}
