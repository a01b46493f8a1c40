// Package records defines the raw compliance record types and the Store port
// the engine reads them through. Records are plain data; all derivation lives
// in the aggregate package.
package records

import (
	"time"

	id "veritas/pkg/domain"
	dErrors "veritas/pkg/domain-errors"
)

// DonorType classifies the counterparty of an income record.
type DonorType string

const (
	DonorIndividual DonorType = "individual"
	DonorCorporate  DonorType = "corporate"
	DonorTrust      DonorType = "trust"
	DonorGovernment DonorType = "government"
	DonorOther      DonorType = "other"
)

var validDonorTypes = map[DonorType]bool{
	DonorIndividual: true,
	DonorCorporate:  true,
	DonorTrust:      true,
	DonorGovernment: true,
	DonorOther:      true,
}

// ParseDonorType constructs a DonorType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseDonorType(s string) (DonorType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "donor type cannot be empty")
	}
	d := DonorType(s)
	if !d.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid donor type %q", s)
	}
	return d, nil
}

// IsValid checks if the donor type is one of the supported enum values.
func (d DonorType) IsValid() bool {
	return validDonorTypes[d]
}

func (d DonorType) String() string {
	return string(d)
}

// IncomeSource is the regulator's income classification.
type IncomeSource string

const (
	SourceDonationsLegacies    IncomeSource = "donations_legacies"
	SourceCharitableActivities IncomeSource = "charitable_activities"
	SourceOtherTrading         IncomeSource = "other_trading"
	SourceInvestments          IncomeSource = "investments"
	SourceOther                IncomeSource = "other"
)

var validIncomeSources = map[IncomeSource]bool{
	SourceDonationsLegacies:    true,
	SourceCharitableActivities: true,
	SourceOtherTrading:         true,
	SourceInvestments:          true,
	SourceOther:                true,
}

// ParseIncomeSource constructs an IncomeSource from external input.
func ParseIncomeSource(s string) (IncomeSource, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "income source cannot be empty")
	}
	src := IncomeSource(s)
	if !src.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid income source %q", s)
	}
	return src, nil
}

// IsValid checks if the income source is one of the supported enum values.
func (s IncomeSource) IsValid() bool {
	return validIncomeSources[s]
}

func (s IncomeSource) String() string {
	return string(s)
}

// TransferMethod is how funds were moved overseas.
type TransferMethod string

const (
	MethodBankTransfer         TransferMethod = "bank_transfer"
	MethodWireTransfer         TransferMethod = "wire_transfer"
	MethodCashCourier          TransferMethod = "cash_courier"
	MethodMoneyServiceBusiness TransferMethod = "money_service_business"
	MethodCryptocurrency       TransferMethod = "cryptocurrency"
	MethodOther                TransferMethod = "other"
)

var validTransferMethods = map[TransferMethod]bool{
	MethodBankTransfer:         true,
	MethodWireTransfer:         true,
	MethodCashCourier:          true,
	MethodMoneyServiceBusiness: true,
	MethodCryptocurrency:       true,
	MethodOther:                true,
}

// ParseTransferMethod constructs a TransferMethod from external input.
func ParseTransferMethod(s string) (TransferMethod, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "transfer method cannot be empty")
	}
	m := TransferMethod(s)
	if !m.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid transfer method %q", s)
	}
	return m, nil
}

// IsValid checks if the transfer method is one of the supported enum values.
func (m TransferMethod) IsValid() bool {
	return validTransferMethods[m]
}

func (m TransferMethod) String() string {
	return string(m)
}

// Organization is the minimal identity the engine needs for reporting.
type Organization struct {
	ID               id.OrgID
	Name             string
	RegistrationNo   string
	FinancialYearEnd time.Time
}

// SafeguardingRecord tracks one person's vetting state. Safeguarding always
// reflects current state, so records carry no financial year.
type SafeguardingRecord struct {
	ID                        string
	OrgID                     id.OrgID
	PersonName                string
	Role                      string
	WorksWithChildren         bool
	WorksWithVulnerableAdults bool
	CheckType                 string
	CheckIssuedAt             *time.Time
	CheckExpiresAt            *time.Time
	TrainingCompleted         bool
}

// HasValidCheck reports whether the person holds a check that has not expired
// relative to now. A record with no expiry date has no valid check.
func (r SafeguardingRecord) HasValidCheck(now time.Time) bool {
	return r.CheckExpiresAt != nil && r.CheckExpiresAt.After(now)
}

// HasExpiredCheck reports whether the person's check has lapsed.
func (r SafeguardingRecord) HasExpiredCheck(now time.Time) bool {
	return r.CheckExpiresAt != nil && !r.CheckExpiresAt.After(now)
}

// IncomeRecord is one received donation or income item, already normalized
// into the base reporting currency.
type IncomeRecord struct {
	ID             string
	OrgID          id.OrgID
	Amount         float64
	Source         IncomeSource
	DonorType      DonorType
	DonorName      string
	IsRelatedParty bool
	FinancialYear  id.FinancialYear
	ReceivedAt     time.Time
}

// OverseasActivity is one overseas spend event in the base currency.
type OverseasActivity struct {
	ID              string
	OrgID           id.OrgID
	CountryCode     string
	Amount          float64
	TransferMethod  TransferMethod
	ActivityType    string
	PartnerName     string
	PartnerVerified bool
	FinancialYear   id.FinancialYear
}

// Country is static reference data joined by code.
type Country struct {
	Code             string
	Name             string
	HighRisk         bool
	SanctionsConcern bool
}
