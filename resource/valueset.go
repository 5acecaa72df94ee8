package resource

import "github.com/gofhir/model/datatype"

// EventStatus codes, used by Communication.status.
const (
	EventStatusPreparation    = "preparation"
	EventStatusInProgress     = "in-progress"
	EventStatusNotDone        = "not-done"
	EventStatusOnHold         = "on-hold"
	EventStatusStopped        = "stopped"
	EventStatusCompleted      = "completed"
	EventStatusEnteredInError = "entered-in-error"
	EventStatusUnknown        = "unknown"
)

var EventStatusValues = datatype.ValueSet{
	Name: "EventStatus",
	URL:  "http://hl7.org/fhir/ValueSet/event-status",
	Codes: []string{
		EventStatusPreparation, EventStatusInProgress, EventStatusNotDone,
		EventStatusOnHold, EventStatusStopped, EventStatusCompleted,
		EventStatusEnteredInError, EventStatusUnknown,
	},
}

// RequestPriority codes, used by Communication.priority.
const (
	RequestPriorityRoutine = "routine"
	RequestPriorityUrgent  = "urgent"
	RequestPriorityASAP    = "asap"
	RequestPriorityStat    = "stat"
)

var RequestPriorityValues = datatype.ValueSet{
	Name: "RequestPriority",
	URL:  "http://hl7.org/fhir/ValueSet/request-priority",
	Codes: []string{
		RequestPriorityRoutine, RequestPriorityUrgent,
		RequestPriorityASAP, RequestPriorityStat,
	},
}

// Coverage status codes.
const (
	CoverageStatusActive         = "active"
	CoverageStatusCancelled      = "cancelled"
	CoverageStatusDraft          = "draft"
	CoverageStatusEnteredInError = "entered-in-error"
)

var FinancialResourceStatusValues = datatype.ValueSet{
	Name: "FinancialResourceStatusCodes",
	URL:  "http://hl7.org/fhir/ValueSet/fm-status",
	Codes: []string{
		CoverageStatusActive, CoverageStatusCancelled,
		CoverageStatusDraft, CoverageStatusEnteredInError,
	},
}

// PublicationStatus codes, used by Library.status.
const (
	PublicationStatusDraft   = "draft"
	PublicationStatusActive  = "active"
	PublicationStatusRetired = "retired"
	PublicationStatusUnknown = "unknown"
)

var PublicationStatusValues = datatype.ValueSet{
	Name: "PublicationStatus",
	URL:  "http://hl7.org/fhir/ValueSet/publication-status",
	Codes: []string{
		PublicationStatusDraft, PublicationStatusActive,
		PublicationStatusRetired, PublicationStatusUnknown,
	},
}

// MedicationAdministration status codes.
const (
	MedicationAdministrationStatusInProgress     = "in-progress"
	MedicationAdministrationStatusNotDone        = "not-done"
	MedicationAdministrationStatusOnHold         = "on-hold"
	MedicationAdministrationStatusCompleted      = "completed"
	MedicationAdministrationStatusEnteredInError = "entered-in-error"
	MedicationAdministrationStatusStopped        = "stopped"
	MedicationAdministrationStatusUnknown        = "unknown"
)

var MedicationAdministrationStatusValues = datatype.ValueSet{
	Name: "MedicationAdministrationStatusCodes",
	URL:  "http://hl7.org/fhir/ValueSet/medication-admin-status",
	Codes: []string{
		MedicationAdministrationStatusInProgress, MedicationAdministrationStatusNotDone,
		MedicationAdministrationStatusOnHold, MedicationAdministrationStatusCompleted,
		MedicationAdministrationStatusEnteredInError, MedicationAdministrationStatusStopped,
		MedicationAdministrationStatusUnknown,
	},
}

// DaysOfWeek codes, used by PractitionerRole.availableTime.daysOfWeek.
const (
	DayMonday    = "mon"
	DayTuesday   = "tue"
	DayWednesday = "wed"
	DayThursday  = "thu"
	DayFriday    = "fri"
	DaySaturday  = "sat"
	DaySunday    = "sun"
)

var DaysOfWeekValues = datatype.ValueSet{
	Name: "DaysOfWeek",
	URL:  "http://hl7.org/fhir/ValueSet/days-of-week",
	Codes: []string{
		DayMonday, DayTuesday, DayWednesday, DayThursday,
		DayFriday, DaySaturday, DaySunday,
	},
}

// Substance status codes.
const (
	SubstanceStatusActive         = "active"
	SubstanceStatusInactive       = "inactive"
	SubstanceStatusEnteredInError = "entered-in-error"
)

var FHIRSubstanceStatusValues = datatype.ValueSet{
	Name: "FHIRSubstanceStatus",
	URL:  "http://hl7.org/fhir/ValueSet/substance-status",
	Codes: []string{
		SubstanceStatusActive, SubstanceStatusInactive, SubstanceStatusEnteredInError,
	},
}
