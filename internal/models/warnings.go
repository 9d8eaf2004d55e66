package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = allocation, W2xxx = selection/filters, W3xxx = navigation, W4xxx = input validation.
type WarningCode string

const (
	WarnAllocationLocked     WarningCode = "W1001" // write to a locked allocation ignored
	WarnAllocationUnselected WarningCode = "W1002" // allocation write for a company that is not selected
	WarnNothingToRebalance   WarningCode = "W1003" // no unlocked companies or no remainder left
	WarnNothingToDistribute  WarningCode = "W1004" // distribute requested with an empty selection
	WarnSelectionFull        WarningCode = "W2001" // selection already holds the maximum number of companies
	WarnUnknownCompany       WarningCode = "W2002" // company id not in the catalog
	WarnSectorExcluded       WarningCode = "W2003" // company belongs to an excluded sector
	WarnInvalidFilter        WarningCode = "W2004" // market cap range with min > max, or negative bounds
	WarnStepGateClosed       WarningCode = "W3001" // advance refused because the step is incomplete
	WarnStepClamped          WarningCode = "W3002" // requested step beyond the visited high-water mark
	WarnAtFirstStep          WarningCode = "W3003" // retreat requested on the first step
	WarnAtLastStep           WarningCode = "W3004" // advance requested on the terminal step
	WarnInvalidInput         WarningCode = "W4001" // non-finite, negative or out-of-range number
	WarnUnknownQuestion      WarningCode = "W4002" // risk answer for a question not in the questionnaire
	WarnStateRestored        WarningCode = "W4003" // stored snapshot needed normalization on load
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
