package aggregate

import (
	"sort"
	"time"

	"veritas/internal/records"
)

// SummarizeSafeguarding reduces safeguarding records to counts. Validity is
// judged against now, not the financial year: vetting reflects current state.
func SummarizeSafeguarding(recs []records.SafeguardingRecord, now time.Time) SafeguardingSummary {
	var s SafeguardingSummary
	s.TotalPeople = len(recs)
	for _, r := range recs {
		if r.WorksWithChildren {
			s.WorkingWithChildren++
		}
		if r.WorksWithVulnerableAdults {
			s.WorkingWithVulnerableAdults++
		}
		if r.HasValidCheck(now) {
			s.ValidChecks++
		}
		if r.HasExpiredCheck(now) {
			s.ExpiredChecks++
		}
		if r.TrainingCompleted {
			s.TrainingComplete++
		}
	}
	return s
}

// SummarizeOverseas reduces overseas activities into per-country and
// per-method breakdowns, joining risk flags from the country reference table.
// Countries sort descending by spend, methods descending by amount; ties keep
// input order so repeated runs over the same records agree.
func SummarizeOverseas(acts []records.OverseasActivity, countries map[string]records.Country) OverseasSummary {
	s := OverseasSummary{HasOperations: len(acts) > 0}
	if len(acts) == 0 {
		return s
	}

	type countryAcc struct {
		spend float64
		count int
	}
	byCountry := make(map[string]*countryAcc)
	byMethod := make(map[records.TransferMethod]float64)
	var countryOrder []string
	var methodOrder []records.TransferMethod
	partners := make(map[string]bool)

	for _, a := range acts {
		s.TotalSpend += a.Amount

		acc, ok := byCountry[a.CountryCode]
		if !ok {
			acc = &countryAcc{}
			byCountry[a.CountryCode] = acc
			countryOrder = append(countryOrder, a.CountryCode)
		}
		acc.spend += a.Amount
		acc.count++

		if _, ok := byMethod[a.TransferMethod]; !ok {
			methodOrder = append(methodOrder, a.TransferMethod)
		}
		byMethod[a.TransferMethod] += a.Amount

		if a.PartnerName != "" && !partners[a.PartnerName] {
			partners[a.PartnerName] = true
			s.PartnersTotal++
			if a.PartnerVerified {
				s.PartnersVerified++
			}
		}
	}

	for _, code := range countryOrder {
		acc := byCountry[code]
		row := CountrySpend{
			Code:          code,
			Name:          code,
			TotalSpend:    acc.spend,
			ActivityCount: acc.count,
		}
		if c, ok := countries[code]; ok {
			row.Name = c.Name
			row.HighRisk = IsHighRisk(c)
		}
		s.Countries = append(s.Countries, row)
	}
	sort.SliceStable(s.Countries, func(i, j int) bool {
		return s.Countries[i].TotalSpend > s.Countries[j].TotalSpend
	})

	for _, m := range methodOrder {
		amount := byMethod[m]
		s.Methods = append(s.Methods, MethodSpend{
			Method:              m,
			Amount:              amount,
			PercentOfTotal:      percentOf(amount, s.TotalSpend),
			RequiresExplanation: RequiresExplanation(m),
		})
	}
	sort.SliceStable(s.Methods, func(i, j int) bool {
		return s.Methods[i].Amount > s.Methods[j].Amount
	})

	return s
}

// SummarizeFundraising reduces income records into the per-source breakdown
// and donation highlights. Sources sort descending by amount.
func SummarizeFundraising(recs []records.IncomeRecord) FundraisingSummary {
	var s FundraisingSummary
	s.RecordCount = len(recs)

	bySource := make(map[records.IncomeSource]float64)
	var sourceOrder []records.IncomeSource

	for _, r := range recs {
		s.TotalIncome += r.Amount

		if _, ok := bySource[r.Source]; !ok {
			sourceOrder = append(sourceOrder, r.Source)
		}
		bySource[r.Source] += r.Amount

		switch r.DonorType {
		case records.DonorCorporate:
			if s.HighestCorporateDonation == nil || r.Amount > s.HighestCorporateDonation.Amount {
				s.HighestCorporateDonation = &DonationDetail{DonorName: r.DonorName, Amount: r.Amount}
			}
		case records.DonorIndividual:
			if s.HighestIndividualDonation == nil || r.Amount > s.HighestIndividualDonation.Amount {
				s.HighestIndividualDonation = &DonationDetail{DonorName: r.DonorName, Amount: r.Amount}
			}
		}

		if r.IsRelatedParty {
			s.RelatedPartyTotal += r.Amount
			s.HasRelatedParty = true
		}
		if RequiresComplianceReview(r) {
			s.RecordsNeedingReview++
		}
	}

	for _, src := range sourceOrder {
		amount := bySource[src]
		s.Sources = append(s.Sources, SourceAmount{
			Source:         src,
			Amount:         amount,
			PercentOfTotal: percentOf(amount, s.TotalIncome),
		})
	}
	sort.SliceStable(s.Sources, func(i, j int) bool {
		return s.Sources[i].Amount > s.Sources[j].Amount
	})

	return s
}
