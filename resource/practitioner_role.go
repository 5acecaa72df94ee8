package resource

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// PractitionerRole is a set of roles a practitioner may perform at an organization for a period of time.
type PractitionerRole struct {
	DomainResourceBase
	identifier             []*datatype.Identifier
	active                 *datatype.Boolean
	period                 *datatype.Period
	practitioner           *datatype.Reference
	organization           *datatype.Reference
	code                   []*datatype.CodeableConcept
	specialty              []*datatype.CodeableConcept
	location               []*datatype.Reference
	healthcareService      []*datatype.Reference
	telecom                []*datatype.ContactPoint
	availableTime          []*PractitionerRoleAvailableTime
	notAvailable           []*PractitionerRoleNotAvailable
	availabilityExceptions *datatype.String
	endpoint               []*datatype.Reference
	opts                   *fhirmodel.Options
	memo                   hashcode.Cell
}

// ResourceType returns "PractitionerRole".
func (x *PractitionerRole) ResourceType() string { return "PractitionerRole" }

// TypeName returns "PractitionerRole".
func (x *PractitionerRole) TypeName() string { return "PractitionerRole" }

// Identifier returns a copy of the identifier list.
func (x *PractitionerRole) Identifier() []*datatype.Identifier { return slices.Clone(x.identifier) }

// Active returns the active, or nil when absent.
func (x *PractitionerRole) Active() *datatype.Boolean { return x.active }

// Period returns the period, or nil when absent.
func (x *PractitionerRole) Period() *datatype.Period { return x.period }

// Practitioner returns the practitioner reference to Practitioner.
func (x *PractitionerRole) Practitioner() *datatype.Reference { return x.practitioner }

// Organization returns the organization reference to Organization.
func (x *PractitionerRole) Organization() *datatype.Reference { return x.organization }

// Code returns a copy of the code list.
func (x *PractitionerRole) Code() []*datatype.CodeableConcept { return slices.Clone(x.code) }

// Specialty returns a copy of the specialty list.
func (x *PractitionerRole) Specialty() []*datatype.CodeableConcept { return slices.Clone(x.specialty) }

// Location returns a copy of the location references to Location.
func (x *PractitionerRole) Location() []*datatype.Reference { return slices.Clone(x.location) }

// HealthcareService returns a copy of the healthcare service references to HealthcareService.
func (x *PractitionerRole) HealthcareService() []*datatype.Reference {
	return slices.Clone(x.healthcareService)
}

// Telecom returns a copy of the telecom list.
func (x *PractitionerRole) Telecom() []*datatype.ContactPoint { return slices.Clone(x.telecom) }

// AvailableTime returns a copy of the available time list.
func (x *PractitionerRole) AvailableTime() []*PractitionerRoleAvailableTime {
	return slices.Clone(x.availableTime)
}

// NotAvailable returns a copy of the not available list.
func (x *PractitionerRole) NotAvailable() []*PractitionerRoleNotAvailable {
	return slices.Clone(x.notAvailable)
}

// AvailabilityExceptions returns the availability exceptions, or nil when absent.
func (x *PractitionerRole) AvailabilityExceptions() *datatype.String { return x.availabilityExceptions }

// Endpoint returns a copy of the endpoint references to Endpoint.
func (x *PractitionerRole) Endpoint() []*datatype.Reference { return slices.Clone(x.endpoint) }

// Accept visits x and then its fields in declaration order.
func (x *PractitionerRole) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "identifier", x.identifier)
		visit.Child(v, "active", x.active)
		visit.Child(v, "period", x.period)
		visit.Child(v, "practitioner", x.practitioner)
		visit.Child(v, "organization", x.organization)
		visit.List(v, "code", x.code)
		visit.List(v, "specialty", x.specialty)
		visit.List(v, "location", x.location)
		visit.List(v, "healthcareService", x.healthcareService)
		visit.List(v, "telecom", x.telecom)
		visit.List(v, "availableTime", x.availableTime)
		visit.List(v, "notAvailable", x.notAvailable)
		visit.Child(v, "availabilityExceptions", x.availabilityExceptions)
		visit.List(v, "endpoint", x.endpoint)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *PractitionerRole) Equal(other *PractitionerRole) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.DomainResourceBase) &&
		slices.EqualFunc(x.identifier, other.identifier, (*datatype.Identifier).Equal) &&
		x.active.Equal(other.active) &&
		x.period.Equal(other.period) &&
		x.practitioner.Equal(other.practitioner) &&
		x.organization.Equal(other.organization) &&
		slices.EqualFunc(x.code, other.code, (*datatype.CodeableConcept).Equal) &&
		slices.EqualFunc(x.specialty, other.specialty, (*datatype.CodeableConcept).Equal) &&
		slices.EqualFunc(x.location, other.location, (*datatype.Reference).Equal) &&
		slices.EqualFunc(x.healthcareService, other.healthcareService, (*datatype.Reference).Equal) &&
		slices.EqualFunc(x.telecom, other.telecom, (*datatype.ContactPoint).Equal) &&
		slices.EqualFunc(x.availableTime, other.availableTime, (*PractitionerRoleAvailableTime).Equal) &&
		slices.EqualFunc(x.notAvailable, other.notAvailable, (*PractitionerRoleNotAvailable).Equal) &&
		x.availabilityExceptions.Equal(other.availabilityExceptions) &&
		slices.EqualFunc(x.endpoint, other.endpoint, (*datatype.Reference).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *PractitionerRole) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("PractitionerRole")
		x.HashBase(h)
		hashcode.List(h, x.identifier)
		hashcode.Field(h, x.active)
		hashcode.Field(h, x.period)
		hashcode.Field(h, x.practitioner)
		hashcode.Field(h, x.organization)
		hashcode.List(h, x.code)
		hashcode.List(h, x.specialty)
		hashcode.List(h, x.location)
		hashcode.List(h, x.healthcareService)
		hashcode.List(h, x.telecom)
		hashcode.List(h, x.availableTime)
		hashcode.List(h, x.notAvailable)
		hashcode.Field(h, x.availabilityExceptions)
		hashcode.List(h, x.endpoint)
		return h.Sum64()
	})
}

func (x *PractitionerRole) equalResource(o Resource) bool {
	other, ok := o.(*PractitionerRole)
	return ok && x.Equal(other)
}

func (x *PractitionerRole) isNil() bool { return x == nil }

func (x *PractitionerRole) checks() []error {
	return []error{
		x.ValidateBase("PractitionerRole"),
		validate.Elements("PractitionerRole", "identifier", x.identifier),
		datatype.CheckReference("PractitionerRole", "practitioner", x.practitioner, "Practitioner"),
		datatype.CheckReference("PractitionerRole", "organization", x.organization, "Organization"),
		validate.Elements("PractitionerRole", "code", x.code),
		validate.Elements("PractitionerRole", "specialty", x.specialty),
		validate.Elements("PractitionerRole", "location", x.location),
		datatype.CheckReferences("PractitionerRole", "location", x.location, "Location"),
		validate.Elements("PractitionerRole", "healthcareService", x.healthcareService),
		datatype.CheckReferences("PractitionerRole", "healthcareService", x.healthcareService, "HealthcareService"),
		validate.Elements("PractitionerRole", "telecom", x.telecom),
		validate.Elements("PractitionerRole", "availableTime", x.availableTime),
		validate.Elements("PractitionerRole", "notAvailable", x.notAvailable),
		validate.Elements("PractitionerRole", "endpoint", x.endpoint),
		datatype.CheckReferences("PractitionerRole", "endpoint", x.endpoint, "Endpoint"),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *PractitionerRole) ToBuilder() *PractitionerRoleBuilder {
	return &PractitionerRoleBuilder{
		id:                     x.ID(),
		meta:                   x.Meta(),
		implicitRules:          x.ImplicitRules(),
		language:               x.Language(),
		text:                   x.Text(),
		contained:              x.Contained(),
		extension:              x.Extension(),
		modifierExtension:      x.ModifierExtension(),
		identifier:             slices.Clone(x.identifier),
		active:                 x.active,
		period:                 x.period,
		practitioner:           x.practitioner,
		organization:           x.organization,
		code:                   slices.Clone(x.code),
		specialty:              slices.Clone(x.specialty),
		location:               slices.Clone(x.location),
		healthcareService:      slices.Clone(x.healthcareService),
		telecom:                slices.Clone(x.telecom),
		availableTime:          slices.Clone(x.availableTime),
		notAvailable:           slices.Clone(x.notAvailable),
		availabilityExceptions: x.availabilityExceptions,
		endpoint:               slices.Clone(x.endpoint),
		opts:                   x.opts,
	}
}

// PractitionerRoleBuilder builds PractitionerRole values.
type PractitionerRoleBuilder struct {
	id                     string
	meta                   *datatype.Meta
	implicitRules          *datatype.URI
	language               *datatype.Code
	text                   *datatype.Narrative
	contained              []Resource
	extension              []*datatype.Extension
	modifierExtension      []*datatype.Extension
	identifier             []*datatype.Identifier
	active                 *datatype.Boolean
	period                 *datatype.Period
	practitioner           *datatype.Reference
	organization           *datatype.Reference
	code                   []*datatype.CodeableConcept
	specialty              []*datatype.CodeableConcept
	location               []*datatype.Reference
	healthcareService      []*datatype.Reference
	telecom                []*datatype.ContactPoint
	availableTime          []*PractitionerRoleAvailableTime
	notAvailable           []*PractitionerRoleNotAvailable
	availabilityExceptions *datatype.String
	endpoint               []*datatype.Reference
	opts                   *fhirmodel.Options
}

// NewPractitionerRoleBuilder returns an empty builder.
func NewPractitionerRoleBuilder() *PractitionerRoleBuilder {
	return &PractitionerRoleBuilder{}
}

// ID sets the id.
func (b *PractitionerRoleBuilder) ID(v string) *PractitionerRoleBuilder {
	b.id = v
	return b
}

// Meta sets the meta.
func (b *PractitionerRoleBuilder) Meta(v *datatype.Meta) *PractitionerRoleBuilder {
	b.meta = v
	return b
}

// ImplicitRules sets the implicit rules.
func (b *PractitionerRoleBuilder) ImplicitRules(v *datatype.URI) *PractitionerRoleBuilder {
	b.implicitRules = v
	return b
}

// Language sets the language.
func (b *PractitionerRoleBuilder) Language(v *datatype.Code) *PractitionerRoleBuilder {
	b.language = v
	return b
}

// Text sets the text.
func (b *PractitionerRoleBuilder) Text(v *datatype.Narrative) *PractitionerRoleBuilder {
	b.text = v
	return b
}

// Contained appends values to contained.
func (b *PractitionerRoleBuilder) Contained(values ...Resource) *PractitionerRoleBuilder {
	for _, v := range values {
		b.contained = append(b.contained, orNil(v))
	}
	return b
}

// SetContained replaces contained with a copy of values.
func (b *PractitionerRoleBuilder) SetContained(values []Resource) *PractitionerRoleBuilder {
	b.contained = nil
	return b.Contained(values...)
}

// Extension appends values to extension.
func (b *PractitionerRoleBuilder) Extension(values ...*datatype.Extension) *PractitionerRoleBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *PractitionerRoleBuilder) SetExtension(values []*datatype.Extension) *PractitionerRoleBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *PractitionerRoleBuilder) ModifierExtension(values ...*datatype.Extension) *PractitionerRoleBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *PractitionerRoleBuilder) SetModifierExtension(values []*datatype.Extension) *PractitionerRoleBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Identifier appends values to identifier.
func (b *PractitionerRoleBuilder) Identifier(values ...*datatype.Identifier) *PractitionerRoleBuilder {
	b.identifier = append(b.identifier, values...)
	return b
}

// SetIdentifier replaces identifier with a copy of values.
func (b *PractitionerRoleBuilder) SetIdentifier(values []*datatype.Identifier) *PractitionerRoleBuilder {
	b.identifier = slices.Clone(values)
	return b
}

// Active sets the active.
func (b *PractitionerRoleBuilder) Active(v *datatype.Boolean) *PractitionerRoleBuilder {
	b.active = v
	return b
}

// Period sets the period.
func (b *PractitionerRoleBuilder) Period(v *datatype.Period) *PractitionerRoleBuilder {
	b.period = v
	return b
}

// Practitioner sets the practitioner.
func (b *PractitionerRoleBuilder) Practitioner(v *datatype.Reference) *PractitionerRoleBuilder {
	b.practitioner = v
	return b
}

// Organization sets the organization.
func (b *PractitionerRoleBuilder) Organization(v *datatype.Reference) *PractitionerRoleBuilder {
	b.organization = v
	return b
}

// Code appends values to code.
func (b *PractitionerRoleBuilder) Code(values ...*datatype.CodeableConcept) *PractitionerRoleBuilder {
	b.code = append(b.code, values...)
	return b
}

// SetCode replaces code with a copy of values.
func (b *PractitionerRoleBuilder) SetCode(values []*datatype.CodeableConcept) *PractitionerRoleBuilder {
	b.code = slices.Clone(values)
	return b
}

// Specialty appends values to specialty.
func (b *PractitionerRoleBuilder) Specialty(values ...*datatype.CodeableConcept) *PractitionerRoleBuilder {
	b.specialty = append(b.specialty, values...)
	return b
}

// SetSpecialty replaces specialty with a copy of values.
func (b *PractitionerRoleBuilder) SetSpecialty(values []*datatype.CodeableConcept) *PractitionerRoleBuilder {
	b.specialty = slices.Clone(values)
	return b
}

// Location appends values to location.
func (b *PractitionerRoleBuilder) Location(values ...*datatype.Reference) *PractitionerRoleBuilder {
	b.location = append(b.location, values...)
	return b
}

// SetLocation replaces location with a copy of values.
func (b *PractitionerRoleBuilder) SetLocation(values []*datatype.Reference) *PractitionerRoleBuilder {
	b.location = slices.Clone(values)
	return b
}

// HealthcareService appends values to healthcare service.
func (b *PractitionerRoleBuilder) HealthcareService(values ...*datatype.Reference) *PractitionerRoleBuilder {
	b.healthcareService = append(b.healthcareService, values...)
	return b
}

// SetHealthcareService replaces healthcare service with a copy of values.
func (b *PractitionerRoleBuilder) SetHealthcareService(values []*datatype.Reference) *PractitionerRoleBuilder {
	b.healthcareService = slices.Clone(values)
	return b
}

// Telecom appends values to telecom.
func (b *PractitionerRoleBuilder) Telecom(values ...*datatype.ContactPoint) *PractitionerRoleBuilder {
	b.telecom = append(b.telecom, values...)
	return b
}

// SetTelecom replaces telecom with a copy of values.
func (b *PractitionerRoleBuilder) SetTelecom(values []*datatype.ContactPoint) *PractitionerRoleBuilder {
	b.telecom = slices.Clone(values)
	return b
}

// AvailableTime appends values to available time.
func (b *PractitionerRoleBuilder) AvailableTime(values ...*PractitionerRoleAvailableTime) *PractitionerRoleBuilder {
	b.availableTime = append(b.availableTime, values...)
	return b
}

// SetAvailableTime replaces available time with a copy of values.
func (b *PractitionerRoleBuilder) SetAvailableTime(values []*PractitionerRoleAvailableTime) *PractitionerRoleBuilder {
	b.availableTime = slices.Clone(values)
	return b
}

// NotAvailable appends values to not available.
func (b *PractitionerRoleBuilder) NotAvailable(values ...*PractitionerRoleNotAvailable) *PractitionerRoleBuilder {
	b.notAvailable = append(b.notAvailable, values...)
	return b
}

// SetNotAvailable replaces not available with a copy of values.
func (b *PractitionerRoleBuilder) SetNotAvailable(values []*PractitionerRoleNotAvailable) *PractitionerRoleBuilder {
	b.notAvailable = slices.Clone(values)
	return b
}

// AvailabilityExceptions sets the availability exceptions.
func (b *PractitionerRoleBuilder) AvailabilityExceptions(v *datatype.String) *PractitionerRoleBuilder {
	b.availabilityExceptions = v
	return b
}

// Endpoint appends values to endpoint.
func (b *PractitionerRoleBuilder) Endpoint(values ...*datatype.Reference) *PractitionerRoleBuilder {
	b.endpoint = append(b.endpoint, values...)
	return b
}

// SetEndpoint replaces endpoint with a copy of values.
func (b *PractitionerRoleBuilder) SetEndpoint(values []*datatype.Reference) *PractitionerRoleBuilder {
	b.endpoint = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable PractitionerRole. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *PractitionerRoleBuilder) Build() (*PractitionerRole, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *PractitionerRoleBuilder) BuildWith(opts ...fhirmodel.Option) (*PractitionerRole, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *PractitionerRoleBuilder) build(o *fhirmodel.Options) (*PractitionerRole, error) {
	x := &PractitionerRole{
		DomainResourceBase:     newDomainResourceBase(b.id, b.meta, b.implicitRules, b.language, b.text, b.contained, b.extension, b.modifierExtension),
		identifier:             slices.Clone(b.identifier),
		active:                 b.active,
		period:                 b.period,
		practitioner:           b.practitioner,
		organization:           b.organization,
		code:                   slices.Clone(b.code),
		specialty:              slices.Clone(b.specialty),
		location:               slices.Clone(b.location),
		healthcareService:      slices.Clone(b.healthcareService),
		telecom:                slices.Clone(b.telecom),
		availableTime:          slices.Clone(b.availableTime),
		notAvailable:           slices.Clone(b.notAvailable),
		availabilityExceptions: b.availabilityExceptions,
		endpoint:               slices.Clone(b.endpoint),
		opts:                   o,
	}
	if err := validate.Run("PractitionerRole", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// PractitionerRoleAvailableTime is a time period when the practitioner is available.
type PractitionerRoleAvailableTime struct {
	datatype.BackboneElementBase
	daysOfWeek         []*datatype.Code
	allDay             *datatype.Boolean
	availableStartTime *datatype.Time
	availableEndTime   *datatype.Time
	opts               *fhirmodel.Options
	memo               hashcode.Cell
}

// TypeName returns "PractitionerRole.AvailableTime".
func (x *PractitionerRoleAvailableTime) TypeName() string { return "PractitionerRole.AvailableTime" }

// DaysOfWeek returns a copy of the days of week codes, drawn from DaysOfWeek.
func (x *PractitionerRoleAvailableTime) DaysOfWeek() []*datatype.Code {
	return slices.Clone(x.daysOfWeek)
}

// AllDay returns the all day, or nil when absent.
func (x *PractitionerRoleAvailableTime) AllDay() *datatype.Boolean { return x.allDay }

// AvailableStartTime returns the available start time, or nil when absent.
func (x *PractitionerRoleAvailableTime) AvailableStartTime() *datatype.Time {
	return x.availableStartTime
}

// AvailableEndTime returns the available end time, or nil when absent.
func (x *PractitionerRoleAvailableTime) AvailableEndTime() *datatype.Time { return x.availableEndTime }

// Accept visits x and then its fields in declaration order.
func (x *PractitionerRoleAvailableTime) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "daysOfWeek", x.daysOfWeek)
		visit.Child(v, "allDay", x.allDay)
		visit.Child(v, "availableStartTime", x.availableStartTime)
		visit.Child(v, "availableEndTime", x.availableEndTime)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *PractitionerRoleAvailableTime) Equal(other *PractitionerRoleAvailableTime) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		slices.EqualFunc(x.daysOfWeek, other.daysOfWeek, (*datatype.Code).Equal) &&
		x.allDay.Equal(other.allDay) &&
		x.availableStartTime.Equal(other.availableStartTime) &&
		x.availableEndTime.Equal(other.availableEndTime)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *PractitionerRoleAvailableTime) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("PractitionerRole.AvailableTime")
		x.HashBase(h)
		hashcode.List(h, x.daysOfWeek)
		hashcode.Field(h, x.allDay)
		hashcode.Field(h, x.availableStartTime)
		hashcode.Field(h, x.availableEndTime)
		return h.Sum64()
	})
}

func (x *PractitionerRoleAvailableTime) checks() []error {
	return []error{
		x.ValidateBase("PractitionerRole.AvailableTime"),
		validate.Elements("PractitionerRole.AvailableTime", "daysOfWeek", x.daysOfWeek),
		datatype.CheckCodes("PractitionerRole.AvailableTime", "daysOfWeek", x.daysOfWeek, DaysOfWeekValues),
		validate.HasChildren("PractitionerRole.AvailableTime", x.HasContentBase() ||
			len(x.daysOfWeek) > 0 ||
			x.allDay != nil ||
			x.availableStartTime != nil ||
			x.availableEndTime != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *PractitionerRoleAvailableTime) ToBuilder() *PractitionerRoleAvailableTimeBuilder {
	return &PractitionerRoleAvailableTimeBuilder{
		id:                 x.ID(),
		extension:          x.Extension(),
		modifierExtension:  x.ModifierExtension(),
		daysOfWeek:         slices.Clone(x.daysOfWeek),
		allDay:             x.allDay,
		availableStartTime: x.availableStartTime,
		availableEndTime:   x.availableEndTime,
		opts:               x.opts,
	}
}

// PractitionerRoleAvailableTimeBuilder builds PractitionerRoleAvailableTime values.
type PractitionerRoleAvailableTimeBuilder struct {
	id                 string
	extension          []*datatype.Extension
	modifierExtension  []*datatype.Extension
	daysOfWeek         []*datatype.Code
	allDay             *datatype.Boolean
	availableStartTime *datatype.Time
	availableEndTime   *datatype.Time
	opts               *fhirmodel.Options
}

// NewPractitionerRoleAvailableTimeBuilder returns an empty builder.
func NewPractitionerRoleAvailableTimeBuilder() *PractitionerRoleAvailableTimeBuilder {
	return &PractitionerRoleAvailableTimeBuilder{}
}

// ID sets the id.
func (b *PractitionerRoleAvailableTimeBuilder) ID(v string) *PractitionerRoleAvailableTimeBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *PractitionerRoleAvailableTimeBuilder) Extension(values ...*datatype.Extension) *PractitionerRoleAvailableTimeBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *PractitionerRoleAvailableTimeBuilder) SetExtension(values []*datatype.Extension) *PractitionerRoleAvailableTimeBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *PractitionerRoleAvailableTimeBuilder) ModifierExtension(values ...*datatype.Extension) *PractitionerRoleAvailableTimeBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *PractitionerRoleAvailableTimeBuilder) SetModifierExtension(values []*datatype.Extension) *PractitionerRoleAvailableTimeBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// DaysOfWeek appends values to days of week.
func (b *PractitionerRoleAvailableTimeBuilder) DaysOfWeek(values ...*datatype.Code) *PractitionerRoleAvailableTimeBuilder {
	b.daysOfWeek = append(b.daysOfWeek, values...)
	return b
}

// SetDaysOfWeek replaces days of week with a copy of values.
func (b *PractitionerRoleAvailableTimeBuilder) SetDaysOfWeek(values []*datatype.Code) *PractitionerRoleAvailableTimeBuilder {
	b.daysOfWeek = slices.Clone(values)
	return b
}

// AllDay sets the all day.
func (b *PractitionerRoleAvailableTimeBuilder) AllDay(v *datatype.Boolean) *PractitionerRoleAvailableTimeBuilder {
	b.allDay = v
	return b
}

// AvailableStartTime sets the available start time.
func (b *PractitionerRoleAvailableTimeBuilder) AvailableStartTime(v *datatype.Time) *PractitionerRoleAvailableTimeBuilder {
	b.availableStartTime = v
	return b
}

// AvailableEndTime sets the available end time.
func (b *PractitionerRoleAvailableTimeBuilder) AvailableEndTime(v *datatype.Time) *PractitionerRoleAvailableTimeBuilder {
	b.availableEndTime = v
	return b
}

// Build validates the fields and returns an immutable PractitionerRoleAvailableTime. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *PractitionerRoleAvailableTimeBuilder) Build() (*PractitionerRoleAvailableTime, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *PractitionerRoleAvailableTimeBuilder) BuildWith(opts ...fhirmodel.Option) (*PractitionerRoleAvailableTime, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *PractitionerRoleAvailableTimeBuilder) build(o *fhirmodel.Options) (*PractitionerRoleAvailableTime, error) {
	x := &PractitionerRoleAvailableTime{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		daysOfWeek:          slices.Clone(b.daysOfWeek),
		allDay:              b.allDay,
		availableStartTime:  b.availableStartTime,
		availableEndTime:    b.availableEndTime,
		opts:                o,
	}
	if err := validate.Run("PractitionerRole.AvailableTime", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// PractitionerRoleNotAvailable is a period when the practitioner is not available.
type PractitionerRoleNotAvailable struct {
	datatype.BackboneElementBase
	description *datatype.String
	during      *datatype.Period
	opts        *fhirmodel.Options
	memo        hashcode.Cell
}

// TypeName returns "PractitionerRole.NotAvailable".
func (x *PractitionerRoleNotAvailable) TypeName() string { return "PractitionerRole.NotAvailable" }

// Description returns the description. It is never nil on a built value.
func (x *PractitionerRoleNotAvailable) Description() *datatype.String { return x.description }

// During returns the during, or nil when absent.
func (x *PractitionerRoleNotAvailable) During() *datatype.Period { return x.during }

// Accept visits x and then its fields in declaration order.
func (x *PractitionerRoleNotAvailable) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "description", x.description)
		visit.Child(v, "during", x.during)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *PractitionerRoleNotAvailable) Equal(other *PractitionerRoleNotAvailable) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		x.description.Equal(other.description) &&
		x.during.Equal(other.during)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *PractitionerRoleNotAvailable) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("PractitionerRole.NotAvailable")
		x.HashBase(h)
		hashcode.Field(h, x.description)
		hashcode.Field(h, x.during)
		return h.Sum64()
	})
}

func (x *PractitionerRoleNotAvailable) checks() []error {
	return []error{
		x.ValidateBase("PractitionerRole.NotAvailable"),
		validate.Required("PractitionerRole.NotAvailable", "description", x.description),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *PractitionerRoleNotAvailable) ToBuilder() *PractitionerRoleNotAvailableBuilder {
	return &PractitionerRoleNotAvailableBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		description:       x.description,
		during:            x.during,
		opts:              x.opts,
	}
}

// PractitionerRoleNotAvailableBuilder builds PractitionerRoleNotAvailable values.
type PractitionerRoleNotAvailableBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	description       *datatype.String
	during            *datatype.Period
	opts              *fhirmodel.Options
}

// NewPractitionerRoleNotAvailableBuilder returns an empty builder.
func NewPractitionerRoleNotAvailableBuilder() *PractitionerRoleNotAvailableBuilder {
	return &PractitionerRoleNotAvailableBuilder{}
}

// ID sets the id.
func (b *PractitionerRoleNotAvailableBuilder) ID(v string) *PractitionerRoleNotAvailableBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *PractitionerRoleNotAvailableBuilder) Extension(values ...*datatype.Extension) *PractitionerRoleNotAvailableBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *PractitionerRoleNotAvailableBuilder) SetExtension(values []*datatype.Extension) *PractitionerRoleNotAvailableBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *PractitionerRoleNotAvailableBuilder) ModifierExtension(values ...*datatype.Extension) *PractitionerRoleNotAvailableBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *PractitionerRoleNotAvailableBuilder) SetModifierExtension(values []*datatype.Extension) *PractitionerRoleNotAvailableBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Description sets the description.
func (b *PractitionerRoleNotAvailableBuilder) Description(v *datatype.String) *PractitionerRoleNotAvailableBuilder {
	b.description = v
	return b
}

// During sets the during.
func (b *PractitionerRoleNotAvailableBuilder) During(v *datatype.Period) *PractitionerRoleNotAvailableBuilder {
	b.during = v
	return b
}

// Build validates the fields and returns an immutable PractitionerRoleNotAvailable. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *PractitionerRoleNotAvailableBuilder) Build() (*PractitionerRoleNotAvailable, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *PractitionerRoleNotAvailableBuilder) BuildWith(opts ...fhirmodel.Option) (*PractitionerRoleNotAvailable, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *PractitionerRoleNotAvailableBuilder) build(o *fhirmodel.Options) (*PractitionerRoleNotAvailable, error) {
	x := &PractitionerRoleNotAvailable{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		description:         b.description,
		during:              b.during,
		opts:                o,
	}
	if err := validate.Run("PractitionerRole.NotAvailable", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
