package completeness

import (
	"math"

	"leasehub-backend/internal/domain"
)

// Section ids are stable identifiers the frontend keys off.
const (
	SectionPersonal  = "personal"
	SectionResidency = "residency"
	SectionIncome    = "income"
	SectionDocuments = "documents"
	SectionRental    = "rental"
)

type Section struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Required   bool   `json:"required"`
	Percentage int    `json:"percentage"`
	Completed  bool   `json:"completed"`
}

type Report struct {
	Sections   []Section `json:"sections"`
	Overall    int       `json:"overall"`
	IsComplete bool      `json:"is_complete"`
	Badges     []string  `json:"badges"`
}

// Badge names. Threshold badges are cumulative on the overall score; the
// section badges mark each fully answered required section. Badges are
// derived on every call and never stored.
const (
	BadgeStarter        = "starter"
	BadgeHalfway        = "halfway"
	BadgeNearlyThere    = "nearly_there"
	BadgeComplete       = "profile_complete"
	BadgePersonalDone   = "personal_complete"
	BadgeResidencyDone  = "residency_complete"
	BadgeIncomeDone     = "income_complete"
	BadgeRentalDone     = "rental_complete"
)

// Score computes per-section and overall completion from the profile, its
// intent sub-record and the document registry. It is a pure function: a nil
// profile or intent yields an all-zero report, never an error.
func Score(profile *domain.Applicant, intent *domain.ApplicationIntent, docs map[string]domain.DocumentRef) Report {
	personal := percentage(personalChecks(profile))
	residency := percentage(residencyChecks(intent, docs))
	income := percentage(incomeChecks(intent, docs))
	documents := percentage(optionalDocumentChecks(docs))
	rental := percentage(rentalChecks(intent))

	sections := []Section{
		{ID: SectionPersonal, Title: "Personal Details", Required: true, Percentage: personal, Completed: personal == 100},
		{ID: SectionResidency, Title: "Residency & Identity", Required: true, Percentage: residency, Completed: residency == 100},
		{ID: SectionIncome, Title: "Income & Employment", Required: true, Percentage: income, Completed: income == 100},
		{ID: SectionDocuments, Title: "Additional Documents", Required: false, Percentage: documents, Completed: documents == 100},
		{ID: SectionRental, Title: "Rental Preferences", Required: true, Percentage: rental, Completed: rental == 100},
	}

	// Overall is the unweighted mean of the required sections only; the
	// optional documents section never moves the needle.
	overall := int(math.Round(float64(personal+residency+income+rental) / 4.0))
	complete := personal == 100 && residency == 100 && income == 100 && rental == 100

	return Report{
		Sections:   sections,
		Overall:    overall,
		IsComplete: complete,
		Badges:     badges(overall, sections),
	}
}

func percentage(checks []bool) int {
	if len(checks) == 0 {
		return 0
	}
	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}
	return int(math.Round(100 * float64(filled) / float64(len(checks))))
}

// personalChecks is the fixed 9-item checklist over scalar profile fields.
func personalChecks(p *domain.Applicant) []bool {
	if p == nil {
		return make([]bool, 9)
	}
	return []bool{
		p.FirstName != "" && p.LastName != "",
		p.Username != "",
		p.PhoneNumber != "",
		p.DateOfBirth != "",
		p.Gender != "",
		p.Occupation != "",
		p.Bio != "",
		p.PreferredLanguage != "",
		p.ContactMethod != "",
	}
}

// residencyChecks: the citizenship question counts as answered either way.
// Citizens settle the visa check by being citizens; non-citizens must name a
// visa type and also show a visa document, so their checklist is one longer
// (3 vs 4).
func residencyChecks(intent *domain.ApplicationIntent, docs map[string]domain.DocumentRef) []bool {
	if intent == nil {
		return make([]bool, 3)
	}
	nonCitizen := intent.CitizenshipAnswered && !intent.IsCitizen
	checks := []bool{
		intent.CitizenshipAnswered,
		hasDoc(docs, domain.DocTypePassport),
		intent.CitizenshipAnswered && (intent.IsCitizen || intent.VisaType != ""),
	}
	if nonCitizen {
		checks = append(checks, hasDoc(docs, domain.DocTypeVisa))
	}
	return checks
}

// incomeChecks: the employment-status discriminant selects its own
// checklist, and the student flag extends the not-working one.
func incomeChecks(intent *domain.ApplicationIntent, docs map[string]domain.DocumentRef) []bool {
	if intent == nil {
		return make([]bool, 1)
	}
	checks := []bool{intent.EmploymentStatus.Valid()}
	switch intent.EmploymentStatus {
	case domain.EmploymentStatusWorking:
		checks = append(checks,
			intent.EmploymentType != "",
			intent.IncomeSource != "",
			intent.IncomeFrequency != "",
			incomeAmountFilled(intent.IncomeAmount),
			hasDoc(docs, domain.DocTypePayslips),
		)
	case domain.EmploymentStatusNotWorking:
		checks = append(checks,
			intent.StudentStatus.Valid(),
			intent.FinanceSupportType != "",
			intent.FinanceSupportDetails != "",
			hasDoc(docs, domain.DocTypeProofOfFunds),
		)
		if intent.StudentStatus == domain.StudentStatusStudent {
			checks = append(checks,
				hasDoc(docs, domain.DocTypeStudentID),
				hasDoc(docs, domain.DocTypeCOE),
			)
		}
	}
	return checks
}

func optionalDocumentChecks(docs map[string]domain.DocumentRef) []bool {
	checks := make([]bool, 0, len(domain.OptionalDocumentTypes))
	for _, t := range domain.OptionalDocumentTypes {
		checks = append(checks, hasDoc(docs, t))
	}
	return checks
}

func rentalChecks(intent *domain.ApplicationIntent) []bool {
	if intent == nil {
		return make([]bool, 2)
	}
	return []bool{
		intent.WeeklyBudget > 0,
		intent.PreferredLocality != "",
	}
}

func hasDoc(docs map[string]domain.DocumentRef, docType string) bool {
	_, ok := docs[docType]
	return ok
}

// A NaN amount can leak in from a cleared numeric input; it counts as
// unfilled, not as an answer.
func incomeAmountFilled(amount *float64) bool {
	return amount != nil && !math.IsNaN(*amount)
}

func badges(overall int, sections []Section) []string {
	var out []string
	if overall >= 25 {
		out = append(out, BadgeStarter)
	}
	if overall >= 50 {
		out = append(out, BadgeHalfway)
	}
	if overall >= 75 {
		out = append(out, BadgeNearlyThere)
	}
	if overall >= 100 {
		out = append(out, BadgeComplete)
	}
	sectionBadges := map[string]string{
		SectionPersonal:  BadgePersonalDone,
		SectionResidency: BadgeResidencyDone,
		SectionIncome:    BadgeIncomeDone,
		SectionRental:    BadgeRentalDone,
	}
	for _, s := range sections {
		if s.Required && s.Completed {
			out = append(out, sectionBadges[s.ID])
		}
	}
	return out
}
