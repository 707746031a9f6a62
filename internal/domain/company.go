package domain

// Company is the single company record the directory classifies users
// against. DomainName is immutable after creation; NumberOfEmployees must
// never go negative.
type Company struct {
	DomainName        string
	NumberOfEmployees int
}

// ChangeNumberOfEmployees adjusts the employee counter by delta. Driving the
// counter below zero is a contract violation and leaves the company
// unmutated.
func (c *Company) ChangeNumberOfEmployees(delta int) {
	precondition(c.NumberOfEmployees+delta >= 0, "employee count cannot go negative")
	c.NumberOfEmployees += delta
}

// IsEmailCorporate reports whether the address belongs to the company domain.
// The comparison is exact: case-sensitive, no normalization.
func (c *Company) IsEmailCorporate(email string) bool {
	return emailDomain(email) == c.DomainName
}
