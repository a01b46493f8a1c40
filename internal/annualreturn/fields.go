package annualreturn

import (
	"fmt"
	"strconv"
	"strings"

	"veritas/internal/aggregate"
	"veritas/internal/records"
)

// MapFields projects a snapshot into the ordered field list. The projection
// is pure and total: it is never hand-edited or partially regenerated, and
// conditional fields are omitted entirely (not left empty) when their
// section's preconditions do not hold, so output length depends on the
// snapshot.
//
// Field ids, question numbers, ordering, and value formatting are part of
// the export contract.
func MapFields(s *Snapshot) []FieldMapping {
	b := newFieldBuilder()

	b.add(SectionCharity, "A1", "Charity name", s.OrgName, s.OrgName, true)
	b.add(SectionCharity, "A2", "Registration number", s.RegistrationNo, s.RegistrationNo, true)
	b.add(SectionCharity, "A3", "Financial year end", s.FinancialYearEnd,
		s.FinancialYearEnd.Format("2 January 2006"), true,
		withCopy(s.FinancialYearEnd.Format("2006-01-02")))

	sg := s.Safeguarding
	b.addCount(SectionSafeguarding, "B1", "People in regulated roles", sg.TotalPeople, true)
	b.addBool(SectionSafeguarding, "B2", "Works with children", sg.WorkingWithChildren > 0, true)
	b.addBool(SectionSafeguarding, "B3", "Works with vulnerable adults", sg.WorkingWithVulnerableAdults > 0, true)
	b.addCount(SectionSafeguarding, "B4", "People with a current vetting check", sg.ValidChecks, true)
	b.addCount(SectionSafeguarding, "B5", "People with an expired check", sg.ExpiredChecks, false)
	b.addCount(SectionSafeguarding, "B6", "People with completed training", sg.TrainingComplete, false)

	o := s.Overseas
	b.addBool(SectionOverseas, "C1", "Operates outside the country", o.HasOperations, true)
	if o.HasOperations {
		b.addCurrency(SectionOverseas, "C2", "Total overseas expenditure", o.TotalSpend, true)
		b.add(SectionOverseas, "C3", "Countries of operation", countryNames(o.Countries),
			strings.Join(countryNames(o.Countries), ", "), true,
			withCopy(strings.Join(countryNames(o.Countries), ", ")))
		b.addCount(SectionOverseas, "C4", "Number of countries", len(o.Countries), true)
		b.add(SectionOverseas, "C5", "Transfer methods used", methodNames(o.Methods),
			strings.Join(methodNames(o.Methods), ", "), true,
			withCopy(strings.Join(methodNames(o.Methods), ", ")))
		b.addBool(SectionOverseas, "C6", "Transfers requiring explanation", anyMethodNeedsExplanation(o.Methods), true)
		partners := fmt.Sprintf("%d/%d", o.PartnersVerified, o.PartnersTotal)
		b.add(SectionOverseas, "C7", "Verified delivery partners", partners,
			fmt.Sprintf("%d of %d", o.PartnersVerified, o.PartnersTotal), false,
			withCopy(partners))
	}

	f := s.Fundraising
	b.addCurrency(SectionFundraising, "D1", "Total gross income", f.TotalIncome, true)
	for _, src := range f.Sources {
		b.addListItem(SectionFundraising, "D2", fmt.Sprintf("Income from %s", sourceLabel(src.Source)),
			src.Amount, currencyDisplay(src.Amount), false, withCopy(plainAmount(src.Amount)))
	}
	if f.HighestCorporateDonation != nil {
		b.addCurrency(SectionFundraising, "D3", "Highest corporate donation", f.HighestCorporateDonation.Amount, false)
	}
	if f.HighestIndividualDonation != nil {
		b.addCurrency(SectionFundraising, "D4", "Highest individual donation", f.HighestIndividualDonation.Amount, false)
	}
	b.addBool(SectionFundraising, "D5", "Related-party income received", f.HasRelatedParty, true)
	if f.HasRelatedParty {
		b.addCurrency(SectionFundraising, "D6", "Related-party income total", f.RelatedPartyTotal, true)
	}

	return b.fields
}

// FilterBySection returns only the fields belonging to the section. It is a
// pure prefix filter over an already generated list: idempotent,
// order-preserving, and never regenerating.
//
// Errors: CodeValidation for an unknown section id.
func FilterBySection(fields []FieldMapping, section string) ([]FieldMapping, error) {
	sec, err := ParseSectionID(section)
	if err != nil {
		return nil, err
	}
	prefix := sec.Prefix()

	out := make([]FieldMapping, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f.FieldID, prefix) {
			out = append(out, f)
		}
	}
	return out, nil
}

// GroupBySection splits a field list by section for presentation, preserving
// generation order within each group.
func GroupBySection(fields []FieldMapping) map[SectionID][]FieldMapping {
	out := make(map[SectionID][]FieldMapping)
	for _, f := range fields {
		out[f.SectionID] = append(out[f.SectionID], f)
	}
	return out
}

// fieldBuilder appends fields in generation order. Field ids are derived
// from the fixed question numbers, never from position, so omitting a
// conditional field never renumbers the ones after it.
type fieldBuilder struct {
	fields  []FieldMapping
	listIdx map[string]int
}

func newFieldBuilder() *fieldBuilder {
	return &fieldBuilder{listIdx: make(map[string]int)}
}

type fieldOpt func(*FieldMapping)

// withCopy overrides the copy value when it differs from the display value.
func withCopy(copyValue string) fieldOpt {
	return func(f *FieldMapping) {
		f.CopyValue = copyValue
	}
}

func (b *fieldBuilder) add(section SectionID, question, label string, raw any, display string, required bool, opts ...fieldOpt) {
	f := FieldMapping{
		FieldID:      strings.ToLower(question),
		SectionID:    section,
		Question:     question,
		Label:        label,
		RawValue:     raw,
		DisplayValue: display,
		CopyValue:    display,
		Required:     required,
	}
	for _, opt := range opts {
		opt(&f)
	}
	b.fields = append(b.fields, f)
}

// addListItem emits one entry of a list-derived field. Every entry shares
// the question's id with a dotted suffix index (d2.1, d2.2, ...), so list
// growth never renumbers later fields.
func (b *fieldBuilder) addListItem(section SectionID, question, label string, raw any, display string, required bool, opts ...fieldOpt) {
	b.listIdx[question]++
	f := FieldMapping{
		FieldID:      fmt.Sprintf("%s.%d", strings.ToLower(question), b.listIdx[question]),
		SectionID:    section,
		Question:     question,
		Label:        label,
		RawValue:     raw,
		DisplayValue: display,
		CopyValue:    display,
		Required:     required,
	}
	for _, opt := range opts {
		opt(&f)
	}
	b.fields = append(b.fields, f)
}

func (b *fieldBuilder) addBool(section SectionID, question, label string, v bool, required bool) {
	b.add(section, question, label, v, boolDisplay(v), required)
}

func (b *fieldBuilder) addCount(section SectionID, question, label string, v int, required bool) {
	b.add(section, question, label, v, strconv.Itoa(v), required)
}

func (b *fieldBuilder) addCurrency(section SectionID, question, label string, v float64, required bool) {
	// Copy value stays the unformatted number: "1234.56", never "£1,234.56".
	b.add(section, question, label, v, currencyDisplay(v), required, withCopy(plainAmount(v)))
}

func boolDisplay(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// currencyDisplay renders a base-currency amount with the fixed symbol,
// thousands separators, and two decimals.
func currencyDisplay(v float64) string {
	plain := plainAmount(v)
	sign := ""
	if strings.HasPrefix(plain, "-") {
		sign = "-"
		plain = plain[1:]
	}
	whole, frac, _ := strings.Cut(plain, ".")

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}
	return fmt.Sprintf("%s£%s.%s", sign, grouped.String(), frac)
}

func plainAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func countryNames(countries []aggregate.CountrySpend) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		out = append(out, c.Name)
	}
	return out
}

func methodNames(methods []aggregate.MethodSpend) []string {
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		out = append(out, m.Method.String())
	}
	return out
}

func anyMethodNeedsExplanation(methods []aggregate.MethodSpend) bool {
	for _, m := range methods {
		if m.RequiresExplanation {
			return true
		}
	}
	return false
}

// sourceLabels maps income sources to the regulator's wording.
var sourceLabels = map[records.IncomeSource]string{
	records.SourceDonationsLegacies:    "donations and legacies",
	records.SourceCharitableActivities: "charitable activities",
	records.SourceOtherTrading:         "other trading activities",
	records.SourceInvestments:          "investments",
	records.SourceOther:                "other sources",
}

func sourceLabel(s records.IncomeSource) string {
	if label, ok := sourceLabels[s]; ok {
		return label
	}
	return s.String()
}
