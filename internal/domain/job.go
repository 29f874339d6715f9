package domain

// SalaryRange describes the advertised pay band of a job.
type SalaryRange struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// Job is a posting owned by the recruiter identified by HREmail.
type Job struct {
	ID                  string      `json:"_id"`
	Title               string      `json:"title"`
	Location            string      `json:"location"`
	Type                string      `json:"type,omitempty"`
	Field               string      `json:"field,omitempty"`
	ApplicationDeadline string      `json:"applicationDeadline,omitempty"`
	SalaryRange         SalaryRange `json:"salaryRange"`
	Description         string      `json:"description,omitempty"`
	Company             string      `json:"company,omitempty"`
	CompanyLogo         string      `json:"company_logo,omitempty"`
	Requirements        []string    `json:"requirements"`
	Responsibilities    []string    `json:"responsibilities"`
	Status              string      `json:"status,omitempty"`
	HRName              string      `json:"hr_name,omitempty"`
	HREmail             string      `json:"hr_email"`
	ApplicationCount    int64       `json:"applicationCount"`
}

// JobFilter narrows job listings.
type JobFilter struct {
	HREmail          *string
	LocationSearch   string
	MinSalary        *int64
	MaxSalary        *int64
	SortBySalaryDesc bool
}
