package score

// DefaultCategories is the fixed category table with default weights. The
// weights happen to sum to 100 today, but the engine normalizes by the actual
// sum, so reweighting a single category never silently skews the result.
var DefaultCategories = []CategoryDef{
	{
		ID:          CategoryGovernance,
		Name:        "Governance",
		Description: "Trustee oversight, filings, and governing document hygiene",
		Weight:      20,
		Items: []ItemDef{
			{ID: "trustee_details", Name: "Trustee details up to date", Description: "All trustee records match the regulator's register", Points: 25},
			{ID: "annual_return_filed", Name: "Annual return filed on time", Description: "Previous annual return submitted before the deadline", Points: 25},
			{ID: "governing_document", Name: "Governing document reviewed", Description: "Governing document reviewed within the last three years", Points: 25},
			{ID: "conflict_register", Name: "Conflict of interest register maintained", Description: "Register reviewed at every board meeting", Points: 25},
		},
	},
	{
		ID:          CategoryFinancial,
		Name:        "Financial Management",
		Description: "Accounts, reserves, and financial controls",
		Weight:      20,
		Items: []ItemDef{
			{ID: "accounts_filed", Name: "Accounts filed", Description: "Latest accounts filed with the regulator", Points: 30},
			{ID: "reserves_policy", Name: "Reserves policy in place", Description: "Board-approved reserves policy reviewed annually", Points: 25},
			{ID: "dual_authorisation", Name: "Dual authorisation on payments", Description: "Two signatories required above the payment threshold", Points: 25},
			{ID: "budget_monitoring", Name: "Quarterly budget monitoring", Description: "Management accounts reviewed by trustees each quarter", Points: 20},
		},
	},
	{
		ID:          CategoryRegulatory,
		Name:        "Regulatory Compliance",
		Description: "Serious incident reporting and regulator correspondence",
		Weight:      15,
		Items: []ItemDef{
			{ID: "serious_incidents", Name: "Serious incident procedure", Description: "Documented procedure for reporting serious incidents", Points: 40},
			{ID: "registered_details", Name: "Registered details current", Description: "Contact and activity details current with the regulator", Points: 30},
			{ID: "licence_returns", Name: "Licences and permits current", Description: "All operational licences renewed before expiry", Points: 30},
		},
	},
	{
		ID:          CategorySafeguarding,
		Name:        "Safeguarding",
		Description: "Vetting checks and training for everyone working with at-risk groups",
		Weight:      20,
		Items: []ItemDef{
			{ID: "valid_checks", Name: "All checks current", Description: "Every tracked person holds an unexpired vetting check", Points: 30},
			{ID: "no_expired_checks", Name: "No expired checks", Description: "No person is working on a lapsed check", Points: 30},
			{ID: "training_complete", Name: "Safeguarding training complete", Description: "Everyone in a regulated role has completed training", Points: 20},
			{ID: "safeguarding_policy", Name: "Safeguarding policy reviewed", Description: "Policy reviewed and re-adopted in the last 12 months", Points: 20},
		},
	},
	{
		ID:          CategoryFundraising,
		Name:        "Fundraising Standards",
		Description: "Donation handling, high-value review, and related-party disclosure",
		Weight:      15,
		Items: []ItemDef{
			{ID: "income_recorded", Name: "Income records maintained", Description: "All income recorded for the current financial year", Points: 25},
			{ID: "review_complete", Name: "High-value and corporate review complete", Description: "Every flagged donation has a completed compliance review", Points: 35},
			{ID: "related_party_tracked", Name: "Related-party transactions disclosed", Description: "Related-party income identified and disclosed to trustees", Points: 20},
			{ID: "fundraising_code", Name: "Fundraising code adopted", Description: "Registered with the fundraising regulator and code adopted", Points: 20},
		},
	},
	{
		ID:          CategoryDataProtection,
		Name:        "Data Protection",
		Description: "Donor and beneficiary data handling",
		Weight:      10,
		Items: []ItemDef{
			{ID: "privacy_notice", Name: "Privacy notice published", Description: "Current privacy notice covers all processing purposes", Points: 35},
			{ID: "data_register", Name: "Processing register maintained", Description: "Record of processing activities kept up to date", Points: 35},
			{ID: "retention_policy", Name: "Retention policy applied", Description: "Personal data deleted per the retention schedule", Points: 30},
		},
	},
}
