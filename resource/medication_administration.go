package resource

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// MedicationAdministration records a patient consuming or being given a medication.
type MedicationAdministration struct {
	DomainResourceBase
	identifier            []*datatype.Identifier
	instantiates          []*datatype.URI
	partOf                []*datatype.Reference
	status                *datatype.Code
	statusReason          []*datatype.CodeableConcept
	category              *datatype.CodeableConcept
	medication            datatype.Element
	subject               *datatype.Reference
	context               *datatype.Reference
	supportingInformation []*datatype.Reference
	effective             datatype.Element
	performer             []*MedicationAdministrationPerformer
	reasonCode            []*datatype.CodeableConcept
	reasonReference       []*datatype.Reference
	request               *datatype.Reference
	device                []*datatype.Reference
	note                  []*datatype.Annotation
	dosage                *MedicationAdministrationDosage
	eventHistory          []*datatype.Reference
	opts                  *fhirmodel.Options
	memo                  hashcode.Cell
}

// ResourceType returns "MedicationAdministration".
func (x *MedicationAdministration) ResourceType() string { return "MedicationAdministration" }

// TypeName returns "MedicationAdministration".
func (x *MedicationAdministration) TypeName() string { return "MedicationAdministration" }

// Identifier returns a copy of the identifier list.
func (x *MedicationAdministration) Identifier() []*datatype.Identifier {
	return slices.Clone(x.identifier)
}

// Instantiates returns a copy of the instantiates list.
func (x *MedicationAdministration) Instantiates() []*datatype.URI {
	return slices.Clone(x.instantiates)
}

// PartOf returns a copy of the part of references to MedicationAdministration or Procedure.
func (x *MedicationAdministration) PartOf() []*datatype.Reference { return slices.Clone(x.partOf) }

// Status returns the status code, drawn from MedicationAdministrationStatusCodes.
func (x *MedicationAdministration) Status() *datatype.Code { return x.status }

// StatusReason returns a copy of the status reason list.
func (x *MedicationAdministration) StatusReason() []*datatype.CodeableConcept {
	return slices.Clone(x.statusReason)
}

// Category returns the category, or nil when absent.
func (x *MedicationAdministration) Category() *datatype.CodeableConcept { return x.category }

// Medication returns medication[x]: CodeableConcept or Reference.
func (x *MedicationAdministration) Medication() datatype.Element { return x.medication }

// Subject returns the subject reference to Patient or Group.
func (x *MedicationAdministration) Subject() *datatype.Reference { return x.subject }

// Context returns the context reference to Encounter or EpisodeOfCare.
func (x *MedicationAdministration) Context() *datatype.Reference { return x.context }

// SupportingInformation returns a copy of the supporting information list.
func (x *MedicationAdministration) SupportingInformation() []*datatype.Reference {
	return slices.Clone(x.supportingInformation)
}

// Effective returns effective[x]: dateTime or Period.
func (x *MedicationAdministration) Effective() datatype.Element { return x.effective }

// Performer returns a copy of the performer list.
func (x *MedicationAdministration) Performer() []*MedicationAdministrationPerformer {
	return slices.Clone(x.performer)
}

// ReasonCode returns a copy of the reason code list.
func (x *MedicationAdministration) ReasonCode() []*datatype.CodeableConcept {
	return slices.Clone(x.reasonCode)
}

// ReasonReference returns a copy of the reason reference references to Condition, Observation or DiagnosticReport.
func (x *MedicationAdministration) ReasonReference() []*datatype.Reference {
	return slices.Clone(x.reasonReference)
}

// Request returns the request reference to MedicationRequest.
func (x *MedicationAdministration) Request() *datatype.Reference { return x.request }

// Device returns a copy of the device references to Device.
func (x *MedicationAdministration) Device() []*datatype.Reference { return slices.Clone(x.device) }

// Note returns a copy of the note list.
func (x *MedicationAdministration) Note() []*datatype.Annotation { return slices.Clone(x.note) }

// Dosage returns the dosage, or nil when absent.
func (x *MedicationAdministration) Dosage() *MedicationAdministrationDosage { return x.dosage }

// EventHistory returns a copy of the event history references to Provenance.
func (x *MedicationAdministration) EventHistory() []*datatype.Reference {
	return slices.Clone(x.eventHistory)
}

// Accept visits x and then its fields in declaration order.
func (x *MedicationAdministration) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.List(v, "identifier", x.identifier)
		visit.List(v, "instantiates", x.instantiates)
		visit.List(v, "partOf", x.partOf)
		visit.Child(v, "status", x.status)
		visit.List(v, "statusReason", x.statusReason)
		visit.Child(v, "category", x.category)
		visit.Child(v, "medication", x.medication)
		visit.Child(v, "subject", x.subject)
		visit.Child(v, "context", x.context)
		visit.List(v, "supportingInformation", x.supportingInformation)
		visit.Child(v, "effective", x.effective)
		visit.List(v, "performer", x.performer)
		visit.List(v, "reasonCode", x.reasonCode)
		visit.List(v, "reasonReference", x.reasonReference)
		visit.Child(v, "request", x.request)
		visit.List(v, "device", x.device)
		visit.List(v, "note", x.note)
		visit.Child(v, "dosage", x.dosage)
		visit.List(v, "eventHistory", x.eventHistory)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *MedicationAdministration) Equal(other *MedicationAdministration) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.DomainResourceBase) &&
		slices.EqualFunc(x.identifier, other.identifier, (*datatype.Identifier).Equal) &&
		slices.EqualFunc(x.instantiates, other.instantiates, (*datatype.URI).Equal) &&
		slices.EqualFunc(x.partOf, other.partOf, (*datatype.Reference).Equal) &&
		x.status.Equal(other.status) &&
		slices.EqualFunc(x.statusReason, other.statusReason, (*datatype.CodeableConcept).Equal) &&
		x.category.Equal(other.category) &&
		datatype.EqualElements(x.medication, other.medication) &&
		x.subject.Equal(other.subject) &&
		x.context.Equal(other.context) &&
		slices.EqualFunc(x.supportingInformation, other.supportingInformation, (*datatype.Reference).Equal) &&
		datatype.EqualElements(x.effective, other.effective) &&
		slices.EqualFunc(x.performer, other.performer, (*MedicationAdministrationPerformer).Equal) &&
		slices.EqualFunc(x.reasonCode, other.reasonCode, (*datatype.CodeableConcept).Equal) &&
		slices.EqualFunc(x.reasonReference, other.reasonReference, (*datatype.Reference).Equal) &&
		x.request.Equal(other.request) &&
		slices.EqualFunc(x.device, other.device, (*datatype.Reference).Equal) &&
		slices.EqualFunc(x.note, other.note, (*datatype.Annotation).Equal) &&
		x.dosage.Equal(other.dosage) &&
		slices.EqualFunc(x.eventHistory, other.eventHistory, (*datatype.Reference).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *MedicationAdministration) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("MedicationAdministration")
		x.HashBase(h)
		hashcode.List(h, x.identifier)
		hashcode.List(h, x.instantiates)
		hashcode.List(h, x.partOf)
		hashcode.Field(h, x.status)
		hashcode.List(h, x.statusReason)
		hashcode.Field(h, x.category)
		hashcode.Field(h, x.medication)
		hashcode.Field(h, x.subject)
		hashcode.Field(h, x.context)
		hashcode.List(h, x.supportingInformation)
		hashcode.Field(h, x.effective)
		hashcode.List(h, x.performer)
		hashcode.List(h, x.reasonCode)
		hashcode.List(h, x.reasonReference)
		hashcode.Field(h, x.request)
		hashcode.List(h, x.device)
		hashcode.List(h, x.note)
		hashcode.Field(h, x.dosage)
		hashcode.List(h, x.eventHistory)
		return h.Sum64()
	})
}

func (x *MedicationAdministration) equalResource(o Resource) bool {
	other, ok := o.(*MedicationAdministration)
	return ok && x.Equal(other)
}

func (x *MedicationAdministration) isNil() bool { return x == nil }

func (x *MedicationAdministration) checks() []error {
	return []error{
		x.ValidateBase("MedicationAdministration"),
		validate.Elements("MedicationAdministration", "identifier", x.identifier),
		validate.Elements("MedicationAdministration", "instantiates", x.instantiates),
		validate.Elements("MedicationAdministration", "partOf", x.partOf),
		datatype.CheckReferences("MedicationAdministration", "partOf", x.partOf, "MedicationAdministration", "Procedure"),
		validate.Required("MedicationAdministration", "status", x.status),
		datatype.CheckCode("MedicationAdministration", "status", x.status, MedicationAdministrationStatusValues),
		validate.Elements("MedicationAdministration", "statusReason", x.statusReason),
		validate.Required("MedicationAdministration", "medication", x.medication),
		validate.Choice("MedicationAdministration", "medication", x.medication, "CodeableConcept", "Reference"),
		datatype.CheckReferenceChoice("MedicationAdministration", "medication", x.medication, "Medication"),
		validate.Required("MedicationAdministration", "subject", x.subject),
		datatype.CheckReference("MedicationAdministration", "subject", x.subject, "Patient", "Group"),
		datatype.CheckReference("MedicationAdministration", "context", x.context, "Encounter", "EpisodeOfCare"),
		validate.Elements("MedicationAdministration", "supportingInformation", x.supportingInformation),
		validate.Required("MedicationAdministration", "effective", x.effective),
		validate.Choice("MedicationAdministration", "effective", x.effective, "dateTime", "Period"),
		validate.Elements("MedicationAdministration", "performer", x.performer),
		validate.Elements("MedicationAdministration", "reasonCode", x.reasonCode),
		validate.Elements("MedicationAdministration", "reasonReference", x.reasonReference),
		datatype.CheckReferences("MedicationAdministration", "reasonReference", x.reasonReference, "Condition", "Observation", "DiagnosticReport"),
		datatype.CheckReference("MedicationAdministration", "request", x.request, "MedicationRequest"),
		validate.Elements("MedicationAdministration", "device", x.device),
		datatype.CheckReferences("MedicationAdministration", "device", x.device, "Device"),
		validate.Elements("MedicationAdministration", "note", x.note),
		validate.Elements("MedicationAdministration", "eventHistory", x.eventHistory),
		datatype.CheckReferences("MedicationAdministration", "eventHistory", x.eventHistory, "Provenance"),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *MedicationAdministration) ToBuilder() *MedicationAdministrationBuilder {
	return &MedicationAdministrationBuilder{
		id:                    x.ID(),
		meta:                  x.Meta(),
		implicitRules:         x.ImplicitRules(),
		language:              x.Language(),
		text:                  x.Text(),
		contained:             x.Contained(),
		extension:             x.Extension(),
		modifierExtension:     x.ModifierExtension(),
		identifier:            slices.Clone(x.identifier),
		instantiates:          slices.Clone(x.instantiates),
		partOf:                slices.Clone(x.partOf),
		status:                x.status,
		statusReason:          slices.Clone(x.statusReason),
		category:              x.category,
		medication:            x.medication,
		subject:               x.subject,
		context:               x.context,
		supportingInformation: slices.Clone(x.supportingInformation),
		effective:             x.effective,
		performer:             slices.Clone(x.performer),
		reasonCode:            slices.Clone(x.reasonCode),
		reasonReference:       slices.Clone(x.reasonReference),
		request:               x.request,
		device:                slices.Clone(x.device),
		note:                  slices.Clone(x.note),
		dosage:                x.dosage,
		eventHistory:          slices.Clone(x.eventHistory),
		opts:                  x.opts,
	}
}

// MedicationAdministrationBuilder builds MedicationAdministration values.
type MedicationAdministrationBuilder struct {
	id                    string
	meta                  *datatype.Meta
	implicitRules         *datatype.URI
	language              *datatype.Code
	text                  *datatype.Narrative
	contained             []Resource
	extension             []*datatype.Extension
	modifierExtension     []*datatype.Extension
	identifier            []*datatype.Identifier
	instantiates          []*datatype.URI
	partOf                []*datatype.Reference
	status                *datatype.Code
	statusReason          []*datatype.CodeableConcept
	category              *datatype.CodeableConcept
	medication            datatype.Element
	subject               *datatype.Reference
	context               *datatype.Reference
	supportingInformation []*datatype.Reference
	effective             datatype.Element
	performer             []*MedicationAdministrationPerformer
	reasonCode            []*datatype.CodeableConcept
	reasonReference       []*datatype.Reference
	request               *datatype.Reference
	device                []*datatype.Reference
	note                  []*datatype.Annotation
	dosage                *MedicationAdministrationDosage
	eventHistory          []*datatype.Reference
	opts                  *fhirmodel.Options
}

// NewMedicationAdministrationBuilder returns an empty builder.
func NewMedicationAdministrationBuilder() *MedicationAdministrationBuilder {
	return &MedicationAdministrationBuilder{}
}

// ID sets the id.
func (b *MedicationAdministrationBuilder) ID(v string) *MedicationAdministrationBuilder {
	b.id = v
	return b
}

// Meta sets the meta.
func (b *MedicationAdministrationBuilder) Meta(v *datatype.Meta) *MedicationAdministrationBuilder {
	b.meta = v
	return b
}

// ImplicitRules sets the implicit rules.
func (b *MedicationAdministrationBuilder) ImplicitRules(v *datatype.URI) *MedicationAdministrationBuilder {
	b.implicitRules = v
	return b
}

// Language sets the language.
func (b *MedicationAdministrationBuilder) Language(v *datatype.Code) *MedicationAdministrationBuilder {
	b.language = v
	return b
}

// Text sets the text.
func (b *MedicationAdministrationBuilder) Text(v *datatype.Narrative) *MedicationAdministrationBuilder {
	b.text = v
	return b
}

// Contained appends values to contained.
func (b *MedicationAdministrationBuilder) Contained(values ...Resource) *MedicationAdministrationBuilder {
	for _, v := range values {
		b.contained = append(b.contained, orNil(v))
	}
	return b
}

// SetContained replaces contained with a copy of values.
func (b *MedicationAdministrationBuilder) SetContained(values []Resource) *MedicationAdministrationBuilder {
	b.contained = nil
	return b.Contained(values...)
}

// Extension appends values to extension.
func (b *MedicationAdministrationBuilder) Extension(values ...*datatype.Extension) *MedicationAdministrationBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *MedicationAdministrationBuilder) SetExtension(values []*datatype.Extension) *MedicationAdministrationBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *MedicationAdministrationBuilder) ModifierExtension(values ...*datatype.Extension) *MedicationAdministrationBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *MedicationAdministrationBuilder) SetModifierExtension(values []*datatype.Extension) *MedicationAdministrationBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Identifier appends values to identifier.
func (b *MedicationAdministrationBuilder) Identifier(values ...*datatype.Identifier) *MedicationAdministrationBuilder {
	b.identifier = append(b.identifier, values...)
	return b
}

// SetIdentifier replaces identifier with a copy of values.
func (b *MedicationAdministrationBuilder) SetIdentifier(values []*datatype.Identifier) *MedicationAdministrationBuilder {
	b.identifier = slices.Clone(values)
	return b
}

// Instantiates appends values to instantiates.
func (b *MedicationAdministrationBuilder) Instantiates(values ...*datatype.URI) *MedicationAdministrationBuilder {
	b.instantiates = append(b.instantiates, values...)
	return b
}

// SetInstantiates replaces instantiates with a copy of values.
func (b *MedicationAdministrationBuilder) SetInstantiates(values []*datatype.URI) *MedicationAdministrationBuilder {
	b.instantiates = slices.Clone(values)
	return b
}

// PartOf appends values to part of.
func (b *MedicationAdministrationBuilder) PartOf(values ...*datatype.Reference) *MedicationAdministrationBuilder {
	b.partOf = append(b.partOf, values...)
	return b
}

// SetPartOf replaces part of with a copy of values.
func (b *MedicationAdministrationBuilder) SetPartOf(values []*datatype.Reference) *MedicationAdministrationBuilder {
	b.partOf = slices.Clone(values)
	return b
}

// Status sets the status.
func (b *MedicationAdministrationBuilder) Status(v *datatype.Code) *MedicationAdministrationBuilder {
	b.status = v
	return b
}

// StatusReason appends values to status reason.
func (b *MedicationAdministrationBuilder) StatusReason(values ...*datatype.CodeableConcept) *MedicationAdministrationBuilder {
	b.statusReason = append(b.statusReason, values...)
	return b
}

// SetStatusReason replaces status reason with a copy of values.
func (b *MedicationAdministrationBuilder) SetStatusReason(values []*datatype.CodeableConcept) *MedicationAdministrationBuilder {
	b.statusReason = slices.Clone(values)
	return b
}

// Category sets the category.
func (b *MedicationAdministrationBuilder) Category(v *datatype.CodeableConcept) *MedicationAdministrationBuilder {
	b.category = v
	return b
}

// Medication sets medication[x]. A typed nil clears it.
func (b *MedicationAdministrationBuilder) Medication(v datatype.Element) *MedicationAdministrationBuilder {
	b.medication = datatype.OrNil(v)
	return b
}

// Subject sets the subject.
func (b *MedicationAdministrationBuilder) Subject(v *datatype.Reference) *MedicationAdministrationBuilder {
	b.subject = v
	return b
}

// Context sets the context.
func (b *MedicationAdministrationBuilder) Context(v *datatype.Reference) *MedicationAdministrationBuilder {
	b.context = v
	return b
}

// SupportingInformation appends values to supporting information.
func (b *MedicationAdministrationBuilder) SupportingInformation(values ...*datatype.Reference) *MedicationAdministrationBuilder {
	b.supportingInformation = append(b.supportingInformation, values...)
	return b
}

// SetSupportingInformation replaces supporting information with a copy of values.
func (b *MedicationAdministrationBuilder) SetSupportingInformation(values []*datatype.Reference) *MedicationAdministrationBuilder {
	b.supportingInformation = slices.Clone(values)
	return b
}

// Effective sets effective[x]. A typed nil clears it.
func (b *MedicationAdministrationBuilder) Effective(v datatype.Element) *MedicationAdministrationBuilder {
	b.effective = datatype.OrNil(v)
	return b
}

// Performer appends values to performer.
func (b *MedicationAdministrationBuilder) Performer(values ...*MedicationAdministrationPerformer) *MedicationAdministrationBuilder {
	b.performer = append(b.performer, values...)
	return b
}

// SetPerformer replaces performer with a copy of values.
func (b *MedicationAdministrationBuilder) SetPerformer(values []*MedicationAdministrationPerformer) *MedicationAdministrationBuilder {
	b.performer = slices.Clone(values)
	return b
}

// ReasonCode appends values to reason code.
func (b *MedicationAdministrationBuilder) ReasonCode(values ...*datatype.CodeableConcept) *MedicationAdministrationBuilder {
	b.reasonCode = append(b.reasonCode, values...)
	return b
}

// SetReasonCode replaces reason code with a copy of values.
func (b *MedicationAdministrationBuilder) SetReasonCode(values []*datatype.CodeableConcept) *MedicationAdministrationBuilder {
	b.reasonCode = slices.Clone(values)
	return b
}

// ReasonReference appends values to reason reference.
func (b *MedicationAdministrationBuilder) ReasonReference(values ...*datatype.Reference) *MedicationAdministrationBuilder {
	b.reasonReference = append(b.reasonReference, values...)
	return b
}

// SetReasonReference replaces reason reference with a copy of values.
func (b *MedicationAdministrationBuilder) SetReasonReference(values []*datatype.Reference) *MedicationAdministrationBuilder {
	b.reasonReference = slices.Clone(values)
	return b
}

// Request sets the request.
func (b *MedicationAdministrationBuilder) Request(v *datatype.Reference) *MedicationAdministrationBuilder {
	b.request = v
	return b
}

// Device appends values to device.
func (b *MedicationAdministrationBuilder) Device(values ...*datatype.Reference) *MedicationAdministrationBuilder {
	b.device = append(b.device, values...)
	return b
}

// SetDevice replaces device with a copy of values.
func (b *MedicationAdministrationBuilder) SetDevice(values []*datatype.Reference) *MedicationAdministrationBuilder {
	b.device = slices.Clone(values)
	return b
}

// Note appends values to note.
func (b *MedicationAdministrationBuilder) Note(values ...*datatype.Annotation) *MedicationAdministrationBuilder {
	b.note = append(b.note, values...)
	return b
}

// SetNote replaces note with a copy of values.
func (b *MedicationAdministrationBuilder) SetNote(values []*datatype.Annotation) *MedicationAdministrationBuilder {
	b.note = slices.Clone(values)
	return b
}

// Dosage sets the dosage.
func (b *MedicationAdministrationBuilder) Dosage(v *MedicationAdministrationDosage) *MedicationAdministrationBuilder {
	b.dosage = v
	return b
}

// EventHistory appends values to event history.
func (b *MedicationAdministrationBuilder) EventHistory(values ...*datatype.Reference) *MedicationAdministrationBuilder {
	b.eventHistory = append(b.eventHistory, values...)
	return b
}

// SetEventHistory replaces event history with a copy of values.
func (b *MedicationAdministrationBuilder) SetEventHistory(values []*datatype.Reference) *MedicationAdministrationBuilder {
	b.eventHistory = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable MedicationAdministration. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *MedicationAdministrationBuilder) Build() (*MedicationAdministration, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *MedicationAdministrationBuilder) BuildWith(opts ...fhirmodel.Option) (*MedicationAdministration, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *MedicationAdministrationBuilder) build(o *fhirmodel.Options) (*MedicationAdministration, error) {
	x := &MedicationAdministration{
		DomainResourceBase:    newDomainResourceBase(b.id, b.meta, b.implicitRules, b.language, b.text, b.contained, b.extension, b.modifierExtension),
		identifier:            slices.Clone(b.identifier),
		instantiates:          slices.Clone(b.instantiates),
		partOf:                slices.Clone(b.partOf),
		status:                b.status,
		statusReason:          slices.Clone(b.statusReason),
		category:              b.category,
		medication:            b.medication,
		subject:               b.subject,
		context:               b.context,
		supportingInformation: slices.Clone(b.supportingInformation),
		effective:             b.effective,
		performer:             slices.Clone(b.performer),
		reasonCode:            slices.Clone(b.reasonCode),
		reasonReference:       slices.Clone(b.reasonReference),
		request:               b.request,
		device:                slices.Clone(b.device),
		note:                  slices.Clone(b.note),
		dosage:                b.dosage,
		eventHistory:          slices.Clone(b.eventHistory),
		opts:                  o,
	}
	if err := validate.Run("MedicationAdministration", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// MedicationAdministrationPerformer is who performed the administration and how.
type MedicationAdministrationPerformer struct {
	datatype.BackboneElementBase
	function *datatype.CodeableConcept
	actor    *datatype.Reference
	opts     *fhirmodel.Options
	memo     hashcode.Cell
}

// TypeName returns "MedicationAdministration.Performer".
func (x *MedicationAdministrationPerformer) TypeName() string {
	return "MedicationAdministration.Performer"
}

// Function returns the function, or nil when absent.
func (x *MedicationAdministrationPerformer) Function() *datatype.CodeableConcept { return x.function }

// Actor returns the actor reference to Practitioner, PractitionerRole, Patient, RelatedPerson or Device.
func (x *MedicationAdministrationPerformer) Actor() *datatype.Reference { return x.actor }

// Accept visits x and then its fields in declaration order.
func (x *MedicationAdministrationPerformer) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "function", x.function)
		visit.Child(v, "actor", x.actor)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *MedicationAdministrationPerformer) Equal(other *MedicationAdministrationPerformer) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		x.function.Equal(other.function) &&
		x.actor.Equal(other.actor)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *MedicationAdministrationPerformer) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("MedicationAdministration.Performer")
		x.HashBase(h)
		hashcode.Field(h, x.function)
		hashcode.Field(h, x.actor)
		return h.Sum64()
	})
}

func (x *MedicationAdministrationPerformer) checks() []error {
	return []error{
		x.ValidateBase("MedicationAdministration.Performer"),
		validate.Required("MedicationAdministration.Performer", "actor", x.actor),
		datatype.CheckReference("MedicationAdministration.Performer", "actor", x.actor, "Practitioner", "PractitionerRole", "Patient", "RelatedPerson", "Device"),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *MedicationAdministrationPerformer) ToBuilder() *MedicationAdministrationPerformerBuilder {
	return &MedicationAdministrationPerformerBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		function:          x.function,
		actor:             x.actor,
		opts:              x.opts,
	}
}

// MedicationAdministrationPerformerBuilder builds MedicationAdministrationPerformer values.
type MedicationAdministrationPerformerBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	function          *datatype.CodeableConcept
	actor             *datatype.Reference
	opts              *fhirmodel.Options
}

// NewMedicationAdministrationPerformerBuilder returns an empty builder.
func NewMedicationAdministrationPerformerBuilder() *MedicationAdministrationPerformerBuilder {
	return &MedicationAdministrationPerformerBuilder{}
}

// ID sets the id.
func (b *MedicationAdministrationPerformerBuilder) ID(v string) *MedicationAdministrationPerformerBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *MedicationAdministrationPerformerBuilder) Extension(values ...*datatype.Extension) *MedicationAdministrationPerformerBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *MedicationAdministrationPerformerBuilder) SetExtension(values []*datatype.Extension) *MedicationAdministrationPerformerBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *MedicationAdministrationPerformerBuilder) ModifierExtension(values ...*datatype.Extension) *MedicationAdministrationPerformerBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *MedicationAdministrationPerformerBuilder) SetModifierExtension(values []*datatype.Extension) *MedicationAdministrationPerformerBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Function sets the function.
func (b *MedicationAdministrationPerformerBuilder) Function(v *datatype.CodeableConcept) *MedicationAdministrationPerformerBuilder {
	b.function = v
	return b
}

// Actor sets the actor.
func (b *MedicationAdministrationPerformerBuilder) Actor(v *datatype.Reference) *MedicationAdministrationPerformerBuilder {
	b.actor = v
	return b
}

// Build validates the fields and returns an immutable MedicationAdministrationPerformer. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *MedicationAdministrationPerformerBuilder) Build() (*MedicationAdministrationPerformer, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *MedicationAdministrationPerformerBuilder) BuildWith(opts ...fhirmodel.Option) (*MedicationAdministrationPerformer, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *MedicationAdministrationPerformerBuilder) build(o *fhirmodel.Options) (*MedicationAdministrationPerformer, error) {
	x := &MedicationAdministrationPerformer{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		function:            b.function,
		actor:               b.actor,
		opts:                o,
	}
	if err := validate.Run("MedicationAdministration.Performer", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// MedicationAdministrationDosage describes how the medication was given.
type MedicationAdministrationDosage struct {
	datatype.BackboneElementBase
	text   *datatype.String
	site   *datatype.CodeableConcept
	route  *datatype.CodeableConcept
	method *datatype.CodeableConcept
	dose   *datatype.SimpleQuantity
	rate   datatype.Element
	opts   *fhirmodel.Options
	memo   hashcode.Cell
}

// TypeName returns "MedicationAdministration.Dosage".
func (x *MedicationAdministrationDosage) TypeName() string { return "MedicationAdministration.Dosage" }

// Text returns the text, or nil when absent.
func (x *MedicationAdministrationDosage) Text() *datatype.String { return x.text }

// Site returns the site, or nil when absent.
func (x *MedicationAdministrationDosage) Site() *datatype.CodeableConcept { return x.site }

// Route returns the route, or nil when absent.
func (x *MedicationAdministrationDosage) Route() *datatype.CodeableConcept { return x.route }

// Method returns the method, or nil when absent.
func (x *MedicationAdministrationDosage) Method() *datatype.CodeableConcept { return x.method }

// Dose returns the dose, or nil when absent.
func (x *MedicationAdministrationDosage) Dose() *datatype.SimpleQuantity { return x.dose }

// Rate returns rate[x]: Ratio or SimpleQuantity.
func (x *MedicationAdministrationDosage) Rate() datatype.Element { return x.rate }

// Accept visits x and then its fields in declaration order.
func (x *MedicationAdministrationDosage) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "text", x.text)
		visit.Child(v, "site", x.site)
		visit.Child(v, "route", x.route)
		visit.Child(v, "method", x.method)
		visit.Child(v, "dose", x.dose)
		visit.Child(v, "rate", x.rate)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *MedicationAdministrationDosage) Equal(other *MedicationAdministrationDosage) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.BackboneElementBase) &&
		x.text.Equal(other.text) &&
		x.site.Equal(other.site) &&
		x.route.Equal(other.route) &&
		x.method.Equal(other.method) &&
		x.dose.Equal(other.dose) &&
		datatype.EqualElements(x.rate, other.rate)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *MedicationAdministrationDosage) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("MedicationAdministration.Dosage")
		x.HashBase(h)
		hashcode.Field(h, x.text)
		hashcode.Field(h, x.site)
		hashcode.Field(h, x.route)
		hashcode.Field(h, x.method)
		hashcode.Field(h, x.dose)
		hashcode.Field(h, x.rate)
		return h.Sum64()
	})
}

func (x *MedicationAdministrationDosage) checks() []error {
	return []error{
		x.ValidateBase("MedicationAdministration.Dosage"),
		validate.Choice("MedicationAdministration.Dosage", "rate", x.rate, "Ratio", "SimpleQuantity"),
		validate.HasChildren("MedicationAdministration.Dosage", x.HasContentBase() ||
			x.text != nil ||
			x.site != nil ||
			x.route != nil ||
			x.method != nil ||
			x.dose != nil ||
			x.rate != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *MedicationAdministrationDosage) ToBuilder() *MedicationAdministrationDosageBuilder {
	return &MedicationAdministrationDosageBuilder{
		id:                x.ID(),
		extension:         x.Extension(),
		modifierExtension: x.ModifierExtension(),
		text:              x.text,
		site:              x.site,
		route:             x.route,
		method:            x.method,
		dose:              x.dose,
		rate:              x.rate,
		opts:              x.opts,
	}
}

// MedicationAdministrationDosageBuilder builds MedicationAdministrationDosage values.
type MedicationAdministrationDosageBuilder struct {
	id                string
	extension         []*datatype.Extension
	modifierExtension []*datatype.Extension
	text              *datatype.String
	site              *datatype.CodeableConcept
	route             *datatype.CodeableConcept
	method            *datatype.CodeableConcept
	dose              *datatype.SimpleQuantity
	rate              datatype.Element
	opts              *fhirmodel.Options
}

// NewMedicationAdministrationDosageBuilder returns an empty builder.
func NewMedicationAdministrationDosageBuilder() *MedicationAdministrationDosageBuilder {
	return &MedicationAdministrationDosageBuilder{}
}

// ID sets the id.
func (b *MedicationAdministrationDosageBuilder) ID(v string) *MedicationAdministrationDosageBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *MedicationAdministrationDosageBuilder) Extension(values ...*datatype.Extension) *MedicationAdministrationDosageBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *MedicationAdministrationDosageBuilder) SetExtension(values []*datatype.Extension) *MedicationAdministrationDosageBuilder {
	b.extension = slices.Clone(values)
	return b
}

// ModifierExtension appends values to modifier extension.
func (b *MedicationAdministrationDosageBuilder) ModifierExtension(values ...*datatype.Extension) *MedicationAdministrationDosageBuilder {
	b.modifierExtension = append(b.modifierExtension, values...)
	return b
}

// SetModifierExtension replaces modifier extension with a copy of values.
func (b *MedicationAdministrationDosageBuilder) SetModifierExtension(values []*datatype.Extension) *MedicationAdministrationDosageBuilder {
	b.modifierExtension = slices.Clone(values)
	return b
}

// Text sets the text.
func (b *MedicationAdministrationDosageBuilder) Text(v *datatype.String) *MedicationAdministrationDosageBuilder {
	b.text = v
	return b
}

// Site sets the site.
func (b *MedicationAdministrationDosageBuilder) Site(v *datatype.CodeableConcept) *MedicationAdministrationDosageBuilder {
	b.site = v
	return b
}

// Route sets the route.
func (b *MedicationAdministrationDosageBuilder) Route(v *datatype.CodeableConcept) *MedicationAdministrationDosageBuilder {
	b.route = v
	return b
}

// Method sets the method.
func (b *MedicationAdministrationDosageBuilder) Method(v *datatype.CodeableConcept) *MedicationAdministrationDosageBuilder {
	b.method = v
	return b
}

// Dose sets the dose.
func (b *MedicationAdministrationDosageBuilder) Dose(v *datatype.SimpleQuantity) *MedicationAdministrationDosageBuilder {
	b.dose = v
	return b
}

// Rate sets rate[x]. A typed nil clears it.
func (b *MedicationAdministrationDosageBuilder) Rate(v datatype.Element) *MedicationAdministrationDosageBuilder {
	b.rate = datatype.OrNil(v)
	return b
}

// Build validates the fields and returns an immutable MedicationAdministrationDosage. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *MedicationAdministrationDosageBuilder) Build() (*MedicationAdministrationDosage, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *MedicationAdministrationDosageBuilder) BuildWith(opts ...fhirmodel.Option) (*MedicationAdministrationDosage, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *MedicationAdministrationDosageBuilder) build(o *fhirmodel.Options) (*MedicationAdministrationDosage, error) {
	x := &MedicationAdministrationDosage{
		BackboneElementBase: datatype.NewBackboneElementBase(b.id, b.extension, b.modifierExtension),
		text:                b.text,
		site:                b.site,
		route:               b.route,
		method:              b.method,
		dose:                b.dose,
		rate:                b.rate,
		opts:                o,
	}
	if err := validate.Run("MedicationAdministration.Dosage", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
