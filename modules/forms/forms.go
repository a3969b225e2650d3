package forms

import (
	"regexp"

	"github.com/t4thdd/aid-efrh/pkg/formvalidation"
)

var (
	OrganizationTypes = []string{"charity", "international", "local", "governmental", "community"}
	PackageTypes      = []string{"food", "medical", "clothing", "hygiene", "emergency"}
	TaskPriorities    = []string{"low", "medium", "high", "urgent"}
	AlertSeverities   = []string{"info", "warning", "error", "critical"}
)

var vehicleNumberPattern = regexp.MustCompile(`^[0-9-]+$`)

var (
	num = formvalidation.Int
	flt = formvalidation.Float
)

func (c *Catalogue) Beneficiary() formvalidation.RuleSet {
	return formvalidation.RuleSet{
		"name":             {Required: true, MinLength: num(2), MaxLength: num(100)},
		"nationalId":       {Required: true, NationalID: true},
		"phone":            {Required: true, Phone: true},
		"alternativePhone": {Phone: true},
		"email":            {Email: true},
		"birthDate":        {Custom: c.birthDate("birthDate", 0, 120)},
		"familySize":       {Required: true, Min: flt(1), Max: flt(50)},

		"detailedAddress.governorate": {Required: true},
		"detailedAddress.city":        {Required: true, Dependencies: []string{"detailedAddress.governorate"}},
		"detailedAddress.district":    {Dependencies: []string{"detailedAddress.city"}},

		"notes": {MaxLength: num(500)},
	}
}

func (c *Catalogue) Organization() formvalidation.RuleSet {
	return formvalidation.RuleSet{
		"name":               {Required: true, MinLength: num(3), MaxLength: num(150)},
		"type":               {Required: true, Custom: c.oneOf("type", OrganizationTypes)},
		"email":              {Required: true, Email: true},
		"phone":              {Required: true, Phone: true},
		"contactPerson":      {Required: true, MinLength: num(3)},
		"beneficiariesCount": {Min: flt(0)},
	}
}

func (c *Catalogue) PackageTemplate() formvalidation.RuleSet {
	return formvalidation.RuleSet{
		"name":          {Required: true, MinLength: num(3), MaxLength: num(100)},
		"type":          {Required: true, Custom: c.oneOf("type", PackageTypes)},
		"contents":      {Required: true, MinLength: num(5)},
		"estimatedCost": {Required: true, Min: flt(0), Max: flt(100000)},
		"weight":        {Min: flt(0), Max: flt(1000)},
	}
}

func (c *Catalogue) Courier() formvalidation.RuleSet {
	return formvalidation.RuleSet{
		"name":          {Required: true, MinLength: num(3)},
		"phone":         {Required: true, Phone: true},
		"nationalId":    {Required: true, NationalID: true},
		"vehicleType":   {Required: true},
		"vehicleNumber": {Pattern: vehicleNumberPattern},
		"email":         {Email: true},
	}
}

func (c *Catalogue) DeliveryTask() formvalidation.RuleSet {
	return formvalidation.RuleSet{
		"beneficiaryId": {Required: true},
		"packageId":     {Required: true},
		"courierId":     {Required: true},
		"scheduledDate": {Required: true, Custom: c.upcomingDate("scheduledDate")},
		"priority":      {Custom: c.oneOf("priority", TaskPriorities)},
		"notes":         {MaxLength: num(300)},
	}
}

func (c *Catalogue) Alert() formvalidation.RuleSet {
	return formvalidation.RuleSet{
		"title":    {Required: true, MinLength: num(5), MaxLength: num(120)},
		"message":  {Required: true, MinLength: num(10), MaxLength: num(1000)},
		"severity": {Required: true, Custom: c.oneOf("severity", AlertSeverities)},
	}
}

// User is the account form. confirmPassword warns until password is filled
// and then must match it.
func (c *Catalogue) User() formvalidation.RuleSet {
	return formvalidation.RuleSet{
		"name":     {Required: true, MinLength: num(3), MaxLength: num(100)},
		"email":    {Required: true, Email: true},
		"phone":    {Phone: true},
		"role":     {Required: true},
		"password": {Required: true, MinLength: num(8), Custom: c.password("password")},

		"confirmPassword": {Required: true, Dependencies: []string{"password"}, Custom: c.matches("password")},
	}
}
