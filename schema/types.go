package schema

// registry holds the element definitions of every modelled type, keyed by
// type name.
var registry = map[string]*Type{
	"Element": {
		Name: "Element",
		Path: "Element",
		Kind: KindAbstract,
		Fields: []Field{
			{Name: "id", Types: []string{"string"}, Max: "1"},
			{Name: "extension", Types: []string{"Extension"}, Max: "*"},
		},
	},
	"BackboneElement": {
		Name: "BackboneElement",
		Path: "BackboneElement",
		Kind: KindAbstract,
		Base: "Element",
		Fields: []Field{
			{Name: "modifierExtension", Types: []string{"Extension"}, Max: "*"},
		},
	},
	"Resource": {
		Name: "Resource",
		Path: "Resource",
		Kind: KindAbstract,
		Fields: []Field{
			{Name: "id", Types: []string{"id"}, Max: "1"},
			{Name: "meta", Types: []string{"Meta"}, Max: "1"},
			{Name: "implicitRules", Types: []string{"uri"}, Max: "1"},
			{Name: "language", Types: []string{"code"}, Max: "1"},
		},
	},
	"DomainResource": {
		Name: "DomainResource",
		Path: "DomainResource",
		Kind: KindAbstract,
		Base: "Resource",
		Fields: []Field{
			{Name: "text", Types: []string{"Narrative"}, Max: "1"},
			{Name: "contained", Types: []string{"Resource"}, Max: "*"},
			{Name: "extension", Types: []string{"Extension"}, Max: "*"},
			{Name: "modifierExtension", Types: []string{"Extension"}, Max: "*"},
		},
	},
	"boolean": {
		Name: "boolean",
		Path: "boolean",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"boolean"}, Max: "1"},
		},
	},
	"integer": {
		Name: "integer",
		Path: "integer",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"integer"}, Max: "1"},
		},
	},
	"positiveInt": {
		Name: "positiveInt",
		Path: "positiveInt",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"positiveInt"}, Max: "1"},
		},
	},
	"unsignedInt": {
		Name: "unsignedInt",
		Path: "unsignedInt",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"unsignedInt"}, Max: "1"},
		},
	},
	"decimal": {
		Name: "decimal",
		Path: "decimal",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"decimal"}, Max: "1"},
		},
	},
	"string": {
		Name: "string",
		Path: "string",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"string"}, Max: "1"},
		},
	},
	"code": {
		Name: "code",
		Path: "code",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"code"}, Max: "1"},
		},
	},
	"id": {
		Name: "id",
		Path: "id",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"id"}, Max: "1"},
		},
	},
	"uri": {
		Name: "uri",
		Path: "uri",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"uri"}, Max: "1"},
		},
	},
	"url": {
		Name: "url",
		Path: "url",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"url"}, Max: "1"},
		},
	},
	"canonical": {
		Name: "canonical",
		Path: "canonical",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"canonical"}, Max: "1"},
		},
	},
	"uuid": {
		Name: "uuid",
		Path: "uuid",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"uuid"}, Max: "1"},
		},
	},
	"markdown": {
		Name: "markdown",
		Path: "markdown",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"markdown"}, Max: "1"},
		},
	},
	"base64Binary": {
		Name: "base64Binary",
		Path: "base64Binary",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"base64Binary"}, Max: "1"},
		},
	},
	"date": {
		Name: "date",
		Path: "date",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"date"}, Max: "1"},
		},
	},
	"dateTime": {
		Name: "dateTime",
		Path: "dateTime",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"dateTime"}, Max: "1"},
		},
	},
	"time": {
		Name: "time",
		Path: "time",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"time"}, Max: "1"},
		},
	},
	"instant": {
		Name: "instant",
		Path: "instant",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"instant"}, Max: "1"},
		},
	},
	"xhtml": {
		Name: "xhtml",
		Path: "xhtml",
		Kind: KindPrimitive,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"xhtml"}, Max: "1"},
		},
	},
	"Extension": {
		Name: "Extension",
		Path: "Extension",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "url", Types: []string{"uri"}, Min: 1, Max: "1"},
			{Name: "value", Types: []string{"boolean", "integer", "positiveInt", "unsignedInt", "decimal", "string", "code", "id", "uri", "url", "canonical", "uuid", "markdown", "base64Binary", "date", "dateTime", "time", "instant", "Meta", "Coding", "CodeableConcept", "Identifier", "Reference", "Period", "Quantity", "Money", "Duration", "Range", "Ratio", "Attachment", "Annotation", "ContactPoint", "ContactDetail", "UsageContext", "RelatedArtifact", "ParameterDefinition", "DataRequirement"}, Max: "1", Choice: true},
		},
	},
	"Narrative": {
		Name: "Narrative",
		Path: "Narrative",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "status", Types: []string{"code"}, Min: 1, Max: "1", Binding: "NarrativeStatus"},
			{Name: "div", Types: []string{"xhtml"}, Min: 1, Max: "1"},
		},
	},
	"Meta": {
		Name: "Meta",
		Path: "Meta",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "versionId", Types: []string{"id"}, Max: "1"},
			{Name: "lastUpdated", Types: []string{"instant"}, Max: "1"},
			{Name: "source", Types: []string{"uri"}, Max: "1"},
			{Name: "profile", Types: []string{"canonical"}, Max: "*"},
			{Name: "security", Types: []string{"Coding"}, Max: "*"},
			{Name: "tag", Types: []string{"Coding"}, Max: "*"},
		},
	},
	"Coding": {
		Name: "Coding",
		Path: "Coding",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "system", Types: []string{"uri"}, Max: "1"},
			{Name: "version", Types: []string{"string"}, Max: "1"},
			{Name: "code", Types: []string{"code"}, Max: "1"},
			{Name: "display", Types: []string{"string"}, Max: "1"},
			{Name: "userSelected", Types: []string{"boolean"}, Max: "1"},
		},
	},
	"CodeableConcept": {
		Name: "CodeableConcept",
		Path: "CodeableConcept",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "coding", Types: []string{"Coding"}, Max: "*"},
			{Name: "text", Types: []string{"string"}, Max: "1"},
		},
	},
	"Identifier": {
		Name: "Identifier",
		Path: "Identifier",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "use", Types: []string{"code"}, Max: "1", Binding: "IdentifierUse"},
			{Name: "type", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "system", Types: []string{"uri"}, Max: "1"},
			{Name: "value", Types: []string{"string"}, Max: "1"},
			{Name: "period", Types: []string{"Period"}, Max: "1"},
			{Name: "assigner", Types: []string{"Reference"}, Max: "1", Targets: []string{"Organization"}},
		},
	},
	"Reference": {
		Name: "Reference",
		Path: "Reference",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "reference", Types: []string{"string"}, Max: "1"},
			{Name: "type", Types: []string{"uri"}, Max: "1"},
			{Name: "identifier", Types: []string{"Identifier"}, Max: "1"},
			{Name: "display", Types: []string{"string"}, Max: "1"},
		},
	},
	"Period": {
		Name: "Period",
		Path: "Period",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "start", Types: []string{"dateTime"}, Max: "1"},
			{Name: "end", Types: []string{"dateTime"}, Max: "1"},
		},
	},
	"Quantity": {
		Name: "Quantity",
		Path: "Quantity",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"decimal"}, Max: "1"},
			{Name: "comparator", Types: []string{"code"}, Max: "1", Binding: "QuantityComparator"},
			{Name: "unit", Types: []string{"string"}, Max: "1"},
			{Name: "system", Types: []string{"uri"}, Max: "1"},
			{Name: "code", Types: []string{"code"}, Max: "1"},
		},
	},
	"SimpleQuantity": {
		Name: "SimpleQuantity",
		Path: "SimpleQuantity",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"decimal"}, Max: "1"},
			{Name: "unit", Types: []string{"string"}, Max: "1"},
			{Name: "system", Types: []string{"uri"}, Max: "1"},
			{Name: "code", Types: []string{"code"}, Max: "1"},
		},
	},
	"Money": {
		Name: "Money",
		Path: "Money",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"decimal"}, Max: "1"},
			{Name: "currency", Types: []string{"code"}, Max: "1"},
		},
	},
	"Duration": {
		Name: "Duration",
		Path: "Duration",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "value", Types: []string{"decimal"}, Max: "1"},
			{Name: "comparator", Types: []string{"code"}, Max: "1", Binding: "QuantityComparator"},
			{Name: "unit", Types: []string{"string"}, Max: "1"},
			{Name: "system", Types: []string{"uri"}, Max: "1"},
			{Name: "code", Types: []string{"code"}, Max: "1"},
		},
	},
	"Range": {
		Name: "Range",
		Path: "Range",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "low", Types: []string{"SimpleQuantity"}, Max: "1"},
			{Name: "high", Types: []string{"SimpleQuantity"}, Max: "1"},
		},
	},
	"Ratio": {
		Name: "Ratio",
		Path: "Ratio",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "numerator", Types: []string{"Quantity"}, Max: "1"},
			{Name: "denominator", Types: []string{"Quantity"}, Max: "1"},
		},
	},
	"Attachment": {
		Name: "Attachment",
		Path: "Attachment",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "contentType", Types: []string{"code"}, Max: "1"},
			{Name: "language", Types: []string{"code"}, Max: "1"},
			{Name: "data", Types: []string{"base64Binary"}, Max: "1"},
			{Name: "url", Types: []string{"url"}, Max: "1"},
			{Name: "size", Types: []string{"unsignedInt"}, Max: "1"},
			{Name: "hash", Types: []string{"base64Binary"}, Max: "1"},
			{Name: "title", Types: []string{"string"}, Max: "1"},
			{Name: "creation", Types: []string{"dateTime"}, Max: "1"},
		},
	},
	"Annotation": {
		Name: "Annotation",
		Path: "Annotation",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "author", Types: []string{"Reference", "string"}, Max: "1", Choice: true, Targets: []string{"Practitioner", "Patient", "RelatedPerson", "Organization"}},
			{Name: "time", Types: []string{"dateTime"}, Max: "1"},
			{Name: "text", Types: []string{"markdown"}, Min: 1, Max: "1"},
		},
	},
	"ContactPoint": {
		Name: "ContactPoint",
		Path: "ContactPoint",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "system", Types: []string{"code"}, Max: "1", Binding: "ContactPointSystem"},
			{Name: "value", Types: []string{"string"}, Max: "1"},
			{Name: "use", Types: []string{"code"}, Max: "1", Binding: "ContactPointUse"},
			{Name: "rank", Types: []string{"positiveInt"}, Max: "1"},
			{Name: "period", Types: []string{"Period"}, Max: "1"},
		},
	},
	"ContactDetail": {
		Name: "ContactDetail",
		Path: "ContactDetail",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "name", Types: []string{"string"}, Max: "1"},
			{Name: "telecom", Types: []string{"ContactPoint"}, Max: "*"},
		},
	},
	"UsageContext": {
		Name: "UsageContext",
		Path: "UsageContext",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "code", Types: []string{"Coding"}, Min: 1, Max: "1"},
			{Name: "value", Types: []string{"CodeableConcept", "Quantity", "Range", "Reference"}, Min: 1, Max: "1", Choice: true, Targets: []string{"PlanDefinition", "ResearchStudy", "InsurancePlan", "HealthcareService", "Group", "Location", "Organization"}},
		},
	},
	"RelatedArtifact": {
		Name: "RelatedArtifact",
		Path: "RelatedArtifact",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "type", Types: []string{"code"}, Min: 1, Max: "1", Binding: "RelatedArtifactType"},
			{Name: "label", Types: []string{"string"}, Max: "1"},
			{Name: "display", Types: []string{"string"}, Max: "1"},
			{Name: "citation", Types: []string{"markdown"}, Max: "1"},
			{Name: "url", Types: []string{"url"}, Max: "1"},
			{Name: "document", Types: []string{"Attachment"}, Max: "1"},
			{Name: "resource", Types: []string{"canonical"}, Max: "1"},
		},
	},
	"ParameterDefinition": {
		Name: "ParameterDefinition",
		Path: "ParameterDefinition",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "name", Types: []string{"code"}, Max: "1"},
			{Name: "use", Types: []string{"code"}, Min: 1, Max: "1", Binding: "OperationParameterUse"},
			{Name: "min", Types: []string{"integer"}, Max: "1"},
			{Name: "max", Types: []string{"string"}, Max: "1"},
			{Name: "documentation", Types: []string{"string"}, Max: "1"},
			{Name: "type", Types: []string{"code"}, Min: 1, Max: "1"},
			{Name: "profile", Types: []string{"canonical"}, Max: "1"},
		},
	},
	"DataRequirement": {
		Name: "DataRequirement",
		Path: "DataRequirement",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "type", Types: []string{"code"}, Min: 1, Max: "1"},
			{Name: "profile", Types: []string{"canonical"}, Max: "*"},
			{Name: "subject", Types: []string{"CodeableConcept", "Reference"}, Max: "1", Choice: true, Targets: []string{"Group"}},
			{Name: "mustSupport", Types: []string{"string"}, Max: "*"},
			{Name: "codeFilter", Types: []string{"DataRequirement.CodeFilter"}, Max: "*"},
			{Name: "dateFilter", Types: []string{"DataRequirement.DateFilter"}, Max: "*"},
			{Name: "limit", Types: []string{"positiveInt"}, Max: "1"},
			{Name: "sort", Types: []string{"DataRequirement.Sort"}, Max: "*"},
		},
	},
	"DataRequirement.CodeFilter": {
		Name: "DataRequirement.CodeFilter",
		Path: "DataRequirement.codeFilter",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "path", Types: []string{"string"}, Max: "1"},
			{Name: "searchParam", Types: []string{"string"}, Max: "1"},
			{Name: "valueSet", Types: []string{"canonical"}, Max: "1"},
			{Name: "code", Types: []string{"Coding"}, Max: "*"},
		},
	},
	"DataRequirement.DateFilter": {
		Name: "DataRequirement.DateFilter",
		Path: "DataRequirement.dateFilter",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "path", Types: []string{"string"}, Max: "1"},
			{Name: "searchParam", Types: []string{"string"}, Max: "1"},
			{Name: "value", Types: []string{"dateTime", "Period", "Duration"}, Max: "1", Choice: true},
		},
	},
	"DataRequirement.Sort": {
		Name: "DataRequirement.Sort",
		Path: "DataRequirement.sort",
		Kind: KindComplex,
		Base: "Element",
		Fields: []Field{
			{Name: "path", Types: []string{"string"}, Min: 1, Max: "1"},
			{Name: "direction", Types: []string{"code"}, Min: 1, Max: "1", Binding: "SortDirection"},
		},
	},
	"Communication": {
		Name: "Communication",
		Path: "Communication",
		Kind: KindResource,
		Base: "DomainResource",
		Fields: []Field{
			{Name: "identifier", Types: []string{"Identifier"}, Max: "*"},
			{Name: "instantiatesCanonical", Types: []string{"canonical"}, Max: "*"},
			{Name: "instantiatesUri", Types: []string{"uri"}, Max: "*"},
			{Name: "basedOn", Types: []string{"Reference"}, Max: "*", Targets: []string{"Resource"}},
			{Name: "partOf", Types: []string{"Reference"}, Max: "*", Targets: []string{"Resource"}},
			{Name: "inResponseTo", Types: []string{"Reference"}, Max: "*", Targets: []string{"Communication"}},
			{Name: "status", Types: []string{"code"}, Min: 1, Max: "1", Binding: "EventStatus"},
			{Name: "statusReason", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "category", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "priority", Types: []string{"code"}, Max: "1", Binding: "RequestPriority"},
			{Name: "medium", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "subject", Types: []string{"Reference"}, Max: "1", Targets: []string{"Patient", "Group"}},
			{Name: "topic", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "about", Types: []string{"Reference"}, Max: "*", Targets: []string{"Resource"}},
			{Name: "encounter", Types: []string{"Reference"}, Max: "1", Targets: []string{"Encounter"}},
			{Name: "sent", Types: []string{"dateTime"}, Max: "1"},
			{Name: "received", Types: []string{"dateTime"}, Max: "1"},
			{Name: "recipient", Types: []string{"Reference"}, Max: "*", Targets: []string{"Device", "Organization", "Patient", "Practitioner", "PractitionerRole", "RelatedPerson", "Group", "CareTeam", "HealthcareService"}},
			{Name: "sender", Types: []string{"Reference"}, Max: "1", Targets: []string{"Device", "Organization", "Patient", "Practitioner", "PractitionerRole", "RelatedPerson", "HealthcareService"}},
			{Name: "reasonCode", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "reasonReference", Types: []string{"Reference"}, Max: "*", Targets: []string{"Condition", "Observation", "DiagnosticReport", "DocumentReference"}},
			{Name: "payload", Types: []string{"Communication.Payload"}, Max: "*"},
			{Name: "note", Types: []string{"Annotation"}, Max: "*"},
		},
	},
	"Communication.Payload": {
		Name: "Communication.Payload",
		Path: "Communication.payload",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "content", Types: []string{"string", "Attachment", "Reference"}, Min: 1, Max: "1", Choice: true, Targets: []string{"Resource"}},
		},
	},
	"Coverage": {
		Name: "Coverage",
		Path: "Coverage",
		Kind: KindResource,
		Base: "DomainResource",
		Fields: []Field{
			{Name: "identifier", Types: []string{"Identifier"}, Max: "*"},
			{Name: "status", Types: []string{"code"}, Min: 1, Max: "1", Binding: "FinancialResourceStatusCodes"},
			{Name: "type", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "policyHolder", Types: []string{"Reference"}, Max: "1", Targets: []string{"Patient", "RelatedPerson", "Organization"}},
			{Name: "subscriber", Types: []string{"Reference"}, Max: "1", Targets: []string{"Patient", "RelatedPerson"}},
			{Name: "subscriberId", Types: []string{"string"}, Max: "1"},
			{Name: "beneficiary", Types: []string{"Reference"}, Min: 1, Max: "1", Targets: []string{"Patient"}},
			{Name: "dependent", Types: []string{"string"}, Max: "1"},
			{Name: "relationship", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "period", Types: []string{"Period"}, Max: "1"},
			{Name: "payor", Types: []string{"Reference"}, Min: 1, Max: "*", Targets: []string{"Organization", "Patient", "RelatedPerson"}},
			{Name: "class", Types: []string{"Coverage.Class"}, Max: "*"},
			{Name: "order", Types: []string{"positiveInt"}, Max: "1"},
			{Name: "network", Types: []string{"string"}, Max: "1"},
			{Name: "costToBeneficiary", Types: []string{"Coverage.CostToBeneficiary"}, Max: "*"},
			{Name: "subrogation", Types: []string{"boolean"}, Max: "1"},
			{Name: "contract", Types: []string{"Reference"}, Max: "*", Targets: []string{"Contract"}},
		},
	},
	"Coverage.Class": {
		Name: "Coverage.Class",
		Path: "Coverage.class",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "type", Types: []string{"CodeableConcept"}, Min: 1, Max: "1"},
			{Name: "value", Types: []string{"string"}, Min: 1, Max: "1"},
			{Name: "name", Types: []string{"string"}, Max: "1"},
		},
	},
	"Coverage.CostToBeneficiary": {
		Name: "Coverage.CostToBeneficiary",
		Path: "Coverage.costToBeneficiary",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "type", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "value", Types: []string{"SimpleQuantity", "Money"}, Min: 1, Max: "1", Choice: true},
			{Name: "exception", Types: []string{"Coverage.CostToBeneficiary.Exception"}, Max: "*"},
		},
	},
	"Coverage.CostToBeneficiary.Exception": {
		Name: "Coverage.CostToBeneficiary.Exception",
		Path: "Coverage.costToBeneficiary.exception",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "type", Types: []string{"CodeableConcept"}, Min: 1, Max: "1"},
			{Name: "period", Types: []string{"Period"}, Max: "1"},
		},
	},
	"ImmunizationRecommendation": {
		Name: "ImmunizationRecommendation",
		Path: "ImmunizationRecommendation",
		Kind: KindResource,
		Base: "DomainResource",
		Fields: []Field{
			{Name: "identifier", Types: []string{"Identifier"}, Max: "*"},
			{Name: "patient", Types: []string{"Reference"}, Min: 1, Max: "1", Targets: []string{"Patient"}},
			{Name: "date", Types: []string{"dateTime"}, Min: 1, Max: "1"},
			{Name: "authority", Types: []string{"Reference"}, Max: "1", Targets: []string{"Organization"}},
			{Name: "recommendation", Types: []string{"ImmunizationRecommendation.Recommendation"}, Min: 1, Max: "*"},
		},
	},
	"ImmunizationRecommendation.Recommendation": {
		Name: "ImmunizationRecommendation.Recommendation",
		Path: "ImmunizationRecommendation.recommendation",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "vaccineCode", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "targetDisease", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "contraindicatedVaccineCode", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "forecastStatus", Types: []string{"CodeableConcept"}, Min: 1, Max: "1"},
			{Name: "forecastReason", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "dateCriterion", Types: []string{"ImmunizationRecommendation.Recommendation.DateCriterion"}, Max: "*"},
			{Name: "description", Types: []string{"string"}, Max: "1"},
			{Name: "series", Types: []string{"string"}, Max: "1"},
			{Name: "doseNumber", Types: []string{"positiveInt", "string"}, Max: "1", Choice: true},
			{Name: "seriesDoses", Types: []string{"positiveInt", "string"}, Max: "1", Choice: true},
			{Name: "supportingImmunization", Types: []string{"Reference"}, Max: "*", Targets: []string{"Immunization", "ImmunizationEvaluation"}},
			{Name: "supportingPatientInformation", Types: []string{"Reference"}, Max: "*", Targets: []string{"Resource"}},
		},
	},
	"ImmunizationRecommendation.Recommendation.DateCriterion": {
		Name: "ImmunizationRecommendation.Recommendation.DateCriterion",
		Path: "ImmunizationRecommendation.recommendation.dateCriterion",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "code", Types: []string{"CodeableConcept"}, Min: 1, Max: "1"},
			{Name: "value", Types: []string{"dateTime"}, Min: 1, Max: "1"},
		},
	},
	"Library": {
		Name: "Library",
		Path: "Library",
		Kind: KindResource,
		Base: "DomainResource",
		Fields: []Field{
			{Name: "url", Types: []string{"uri"}, Max: "1"},
			{Name: "identifier", Types: []string{"Identifier"}, Max: "*"},
			{Name: "version", Types: []string{"string"}, Max: "1"},
			{Name: "name", Types: []string{"string"}, Max: "1"},
			{Name: "title", Types: []string{"string"}, Max: "1"},
			{Name: "subtitle", Types: []string{"string"}, Max: "1"},
			{Name: "status", Types: []string{"code"}, Min: 1, Max: "1", Binding: "PublicationStatus"},
			{Name: "experimental", Types: []string{"boolean"}, Max: "1"},
			{Name: "type", Types: []string{"CodeableConcept"}, Min: 1, Max: "1"},
			{Name: "subject", Types: []string{"CodeableConcept", "Reference"}, Max: "1", Choice: true, Targets: []string{"Group"}},
			{Name: "date", Types: []string{"dateTime"}, Max: "1"},
			{Name: "publisher", Types: []string{"string"}, Max: "1"},
			{Name: "contact", Types: []string{"ContactDetail"}, Max: "*"},
			{Name: "description", Types: []string{"markdown"}, Max: "1"},
			{Name: "useContext", Types: []string{"UsageContext"}, Max: "*"},
			{Name: "jurisdiction", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "purpose", Types: []string{"markdown"}, Max: "1"},
			{Name: "usage", Types: []string{"string"}, Max: "1"},
			{Name: "copyright", Types: []string{"markdown"}, Max: "1"},
			{Name: "approvalDate", Types: []string{"date"}, Max: "1"},
			{Name: "lastReviewDate", Types: []string{"date"}, Max: "1"},
			{Name: "effectivePeriod", Types: []string{"Period"}, Max: "1"},
			{Name: "topic", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "author", Types: []string{"ContactDetail"}, Max: "*"},
			{Name: "editor", Types: []string{"ContactDetail"}, Max: "*"},
			{Name: "reviewer", Types: []string{"ContactDetail"}, Max: "*"},
			{Name: "endorser", Types: []string{"ContactDetail"}, Max: "*"},
			{Name: "relatedArtifact", Types: []string{"RelatedArtifact"}, Max: "*"},
			{Name: "parameter", Types: []string{"ParameterDefinition"}, Max: "*"},
			{Name: "dataRequirement", Types: []string{"DataRequirement"}, Max: "*"},
			{Name: "content", Types: []string{"Attachment"}, Max: "*"},
		},
	},
	"MedicationAdministration": {
		Name: "MedicationAdministration",
		Path: "MedicationAdministration",
		Kind: KindResource,
		Base: "DomainResource",
		Fields: []Field{
			{Name: "identifier", Types: []string{"Identifier"}, Max: "*"},
			{Name: "instantiates", Types: []string{"uri"}, Max: "*"},
			{Name: "partOf", Types: []string{"Reference"}, Max: "*", Targets: []string{"MedicationAdministration", "Procedure"}},
			{Name: "status", Types: []string{"code"}, Min: 1, Max: "1", Binding: "MedicationAdministrationStatusCodes"},
			{Name: "statusReason", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "category", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "medication", Types: []string{"CodeableConcept", "Reference"}, Min: 1, Max: "1", Choice: true, Targets: []string{"Medication"}},
			{Name: "subject", Types: []string{"Reference"}, Min: 1, Max: "1", Targets: []string{"Patient", "Group"}},
			{Name: "context", Types: []string{"Reference"}, Max: "1", Targets: []string{"Encounter", "EpisodeOfCare"}},
			{Name: "supportingInformation", Types: []string{"Reference"}, Max: "*", Targets: []string{"Resource"}},
			{Name: "effective", Types: []string{"dateTime", "Period"}, Min: 1, Max: "1", Choice: true},
			{Name: "performer", Types: []string{"MedicationAdministration.Performer"}, Max: "*"},
			{Name: "reasonCode", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "reasonReference", Types: []string{"Reference"}, Max: "*", Targets: []string{"Condition", "Observation", "DiagnosticReport"}},
			{Name: "request", Types: []string{"Reference"}, Max: "1", Targets: []string{"MedicationRequest"}},
			{Name: "device", Types: []string{"Reference"}, Max: "*", Targets: []string{"Device"}},
			{Name: "note", Types: []string{"Annotation"}, Max: "*"},
			{Name: "dosage", Types: []string{"MedicationAdministration.Dosage"}, Max: "1"},
			{Name: "eventHistory", Types: []string{"Reference"}, Max: "*", Targets: []string{"Provenance"}},
		},
	},
	"MedicationAdministration.Performer": {
		Name: "MedicationAdministration.Performer",
		Path: "MedicationAdministration.performer",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "function", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "actor", Types: []string{"Reference"}, Min: 1, Max: "1", Targets: []string{"Practitioner", "PractitionerRole", "Patient", "RelatedPerson", "Device"}},
		},
	},
	"MedicationAdministration.Dosage": {
		Name: "MedicationAdministration.Dosage",
		Path: "MedicationAdministration.dosage",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "text", Types: []string{"string"}, Max: "1"},
			{Name: "site", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "route", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "method", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "dose", Types: []string{"SimpleQuantity"}, Max: "1"},
			{Name: "rate", Types: []string{"Ratio", "SimpleQuantity"}, Max: "1", Choice: true},
		},
	},
	"MedicinalProductAuthorization": {
		Name: "MedicinalProductAuthorization",
		Path: "MedicinalProductAuthorization",
		Kind: KindResource,
		Base: "DomainResource",
		Fields: []Field{
			{Name: "identifier", Types: []string{"Identifier"}, Max: "*"},
			{Name: "subject", Types: []string{"Reference"}, Max: "1", Targets: []string{"MedicinalProduct", "MedicinalProductPackaged"}},
			{Name: "country", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "jurisdiction", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "status", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "statusDate", Types: []string{"dateTime"}, Max: "1"},
			{Name: "restoreDate", Types: []string{"dateTime"}, Max: "1"},
			{Name: "validityPeriod", Types: []string{"Period"}, Max: "1"},
			{Name: "dataExclusivityPeriod", Types: []string{"Period"}, Max: "1"},
			{Name: "dateOfFirstAuthorization", Types: []string{"dateTime"}, Max: "1"},
			{Name: "internationalBirthDate", Types: []string{"dateTime"}, Max: "1"},
			{Name: "legalBasis", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "jurisdictionalAuthorization", Types: []string{"MedicinalProductAuthorization.JurisdictionalAuthorization"}, Max: "*"},
			{Name: "holder", Types: []string{"Reference"}, Max: "1", Targets: []string{"Organization"}},
			{Name: "regulator", Types: []string{"Reference"}, Max: "1", Targets: []string{"Organization"}},
			{Name: "procedure", Types: []string{"MedicinalProductAuthorization.Procedure"}, Max: "1"},
		},
	},
	"MedicinalProductAuthorization.JurisdictionalAuthorization": {
		Name: "MedicinalProductAuthorization.JurisdictionalAuthorization",
		Path: "MedicinalProductAuthorization.jurisdictionalAuthorization",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "identifier", Types: []string{"Identifier"}, Max: "*"},
			{Name: "country", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "jurisdiction", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "legalStatusOfSupply", Types: []string{"CodeableConcept"}, Max: "1"},
			{Name: "validityPeriod", Types: []string{"Period"}, Max: "1"},
		},
	},
	"MedicinalProductAuthorization.Procedure": {
		Name: "MedicinalProductAuthorization.Procedure",
		Path: "MedicinalProductAuthorization.procedure",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "identifier", Types: []string{"Identifier"}, Max: "1"},
			{Name: "type", Types: []string{"CodeableConcept"}, Min: 1, Max: "1"},
			{Name: "date", Types: []string{"Period", "dateTime"}, Max: "1", Choice: true},
			{Name: "application", Types: []string{"MedicinalProductAuthorization.Procedure"}, Max: "*"},
		},
	},
	"PractitionerRole": {
		Name: "PractitionerRole",
		Path: "PractitionerRole",
		Kind: KindResource,
		Base: "DomainResource",
		Fields: []Field{
			{Name: "identifier", Types: []string{"Identifier"}, Max: "*"},
			{Name: "active", Types: []string{"boolean"}, Max: "1"},
			{Name: "period", Types: []string{"Period"}, Max: "1"},
			{Name: "practitioner", Types: []string{"Reference"}, Max: "1", Targets: []string{"Practitioner"}},
			{Name: "organization", Types: []string{"Reference"}, Max: "1", Targets: []string{"Organization"}},
			{Name: "code", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "specialty", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "location", Types: []string{"Reference"}, Max: "*", Targets: []string{"Location"}},
			{Name: "healthcareService", Types: []string{"Reference"}, Max: "*", Targets: []string{"HealthcareService"}},
			{Name: "telecom", Types: []string{"ContactPoint"}, Max: "*"},
			{Name: "availableTime", Types: []string{"PractitionerRole.AvailableTime"}, Max: "*"},
			{Name: "notAvailable", Types: []string{"PractitionerRole.NotAvailable"}, Max: "*"},
			{Name: "availabilityExceptions", Types: []string{"string"}, Max: "1"},
			{Name: "endpoint", Types: []string{"Reference"}, Max: "*", Targets: []string{"Endpoint"}},
		},
	},
	"PractitionerRole.AvailableTime": {
		Name: "PractitionerRole.AvailableTime",
		Path: "PractitionerRole.availableTime",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "daysOfWeek", Types: []string{"code"}, Max: "*", Binding: "DaysOfWeek"},
			{Name: "allDay", Types: []string{"boolean"}, Max: "1"},
			{Name: "availableStartTime", Types: []string{"time"}, Max: "1"},
			{Name: "availableEndTime", Types: []string{"time"}, Max: "1"},
		},
	},
	"PractitionerRole.NotAvailable": {
		Name: "PractitionerRole.NotAvailable",
		Path: "PractitionerRole.notAvailable",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "description", Types: []string{"string"}, Min: 1, Max: "1"},
			{Name: "during", Types: []string{"Period"}, Max: "1"},
		},
	},
	"Substance": {
		Name: "Substance",
		Path: "Substance",
		Kind: KindResource,
		Base: "DomainResource",
		Fields: []Field{
			{Name: "identifier", Types: []string{"Identifier"}, Max: "*"},
			{Name: "status", Types: []string{"code"}, Max: "1", Binding: "FHIRSubstanceStatus"},
			{Name: "category", Types: []string{"CodeableConcept"}, Max: "*"},
			{Name: "code", Types: []string{"CodeableConcept"}, Min: 1, Max: "1"},
			{Name: "description", Types: []string{"string"}, Max: "1"},
			{Name: "instance", Types: []string{"Substance.Instance"}, Max: "*"},
			{Name: "ingredient", Types: []string{"Substance.Ingredient"}, Max: "*"},
		},
	},
	"Substance.Instance": {
		Name: "Substance.Instance",
		Path: "Substance.instance",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "identifier", Types: []string{"Identifier"}, Max: "1"},
			{Name: "expiry", Types: []string{"dateTime"}, Max: "1"},
			{Name: "quantity", Types: []string{"SimpleQuantity"}, Max: "1"},
		},
	},
	"Substance.Ingredient": {
		Name: "Substance.Ingredient",
		Path: "Substance.ingredient",
		Kind: KindBackbone,
		Base: "BackboneElement",
		Fields: []Field{
			{Name: "quantity", Types: []string{"Ratio"}, Max: "1"},
			{Name: "substance", Types: []string{"CodeableConcept", "Reference"}, Min: 1, Max: "1", Choice: true, Targets: []string{"Substance"}},
		},
	},
}
