package convert

import (
	"encoding/base64"
	"fmt"
	"math"

	"github.com/gofhir/fhir/r4"
	"github.com/shopspring/decimal"

	"github.com/gofhir/model/datatype"
)

// ExtensionFromR4 converts e with its nested extensions and value. A nil e
// yields nil. Values of a type the model does not hold in extensions, such
// as oid or Address, are reported as errors rather than dropped.
func ExtensionFromR4(e *r4.Extension) (*datatype.Extension, error) {
	if e == nil {
		return nil, nil
	}
	ext, err := extensionsFromR4(e.Extension)
	if err != nil {
		return nil, err
	}
	value, err := extensionValueFromR4(e)
	if err != nil {
		return nil, fmt.Errorf("extension %s: %w", e.Url, err)
	}
	return datatype.NewExtensionBuilder().
		ID(deref(e.Id)).
		SetExtension(ext).
		URL(e.Url).
		Value(value).
		Build()
}

// ExtensionToR4 converts e. A nil e yields nil.
func ExtensionToR4(e *datatype.Extension) (*r4.Extension, error) {
	if e == nil {
		return nil, nil
	}
	ext, err := extensionsToR4(e.Extension())
	if err != nil {
		return nil, err
	}
	out := &r4.Extension{Id: optional(e.ID()), Extension: ext, Url: e.URL()}
	if err := extensionValueToR4(e.Value(), out); err != nil {
		return nil, fmt.Errorf("extension %s: %w", e.URL(), err)
	}
	return out, nil
}

func present[V any](v *V, elem *r4.Element) bool { return v != nil || elem != nil }

// element widens a typed primitive or complex result to datatype.Element.
func element[P datatype.Element](p P, err error) (datatype.Element, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

func extensionValueFromR4(e *r4.Extension) (datatype.Element, error) {
	switch {
	case present(e.ValueBase64Binary, e.ValueBase64BinaryExt):
		var raw *[]byte
		if e.ValueBase64Binary != nil {
			b, err := base64.StdEncoding.DecodeString(*e.ValueBase64Binary)
			if err != nil {
				return nil, fmt.Errorf("valueBase64Binary: %w", err)
			}
			raw = &b
		}
		return element(primitiveFromR4[*datatype.Base64Binary](datatype.NewBase64BinaryBuilder(), raw, e.ValueBase64BinaryExt))
	case present(e.ValueBoolean, e.ValueBooleanExt):
		return element(primitiveFromR4[*datatype.Boolean](datatype.NewBooleanBuilder(), e.ValueBoolean, e.ValueBooleanExt))
	case present(e.ValueCanonical, e.ValueCanonicalExt):
		return element(primitiveFromR4[*datatype.Canonical](datatype.NewCanonicalBuilder(), e.ValueCanonical, e.ValueCanonicalExt))
	case present(e.ValueCode, e.ValueCodeExt):
		return element(primitiveFromR4[*datatype.Code](datatype.NewCodeBuilder(), e.ValueCode, e.ValueCodeExt))
	case present(e.ValueDate, e.ValueDateExt):
		return element(primitiveFromR4[*datatype.Date](datatype.NewDateBuilder(), e.ValueDate, e.ValueDateExt))
	case present(e.ValueDateTime, e.ValueDateTimeExt):
		return element(primitiveFromR4[*datatype.DateTime](datatype.NewDateTimeBuilder(), e.ValueDateTime, e.ValueDateTimeExt))
	case present(e.ValueDecimal, e.ValueDecimalExt):
		var d *decimal.Decimal
		if e.ValueDecimal != nil {
			d = ptr(decimal.NewFromFloat(*e.ValueDecimal))
		}
		return element(primitiveFromR4[*datatype.Decimal](datatype.NewDecimalBuilder(), d, e.ValueDecimalExt))
	case present(e.ValueId, e.ValueIdExt):
		return element(primitiveFromR4[*datatype.ID](datatype.NewIDBuilder(), e.ValueId, e.ValueIdExt))
	case present(e.ValueInstant, e.ValueInstantExt):
		return element(primitiveFromR4[*datatype.Instant](datatype.NewInstantBuilder(), e.ValueInstant, e.ValueInstantExt))
	case present(e.ValueInteger, e.ValueIntegerExt):
		var n *int32
		if e.ValueInteger != nil {
			if *e.ValueInteger < math.MinInt32 || *e.ValueInteger > math.MaxInt32 {
				return nil, fmt.Errorf("valueInteger %d is out of range", *e.ValueInteger)
			}
			n = ptr(int32(*e.ValueInteger))
		}
		return element(primitiveFromR4[*datatype.Integer](datatype.NewIntegerBuilder(), n, e.ValueIntegerExt))
	case present(e.ValueMarkdown, e.ValueMarkdownExt):
		return element(primitiveFromR4[*datatype.Markdown](datatype.NewMarkdownBuilder(), e.ValueMarkdown, e.ValueMarkdownExt))
	case present(e.ValuePositiveInt, e.ValuePositiveIntExt):
		n, err := int32FromUint32(e.ValuePositiveInt)
		if err != nil {
			return nil, fmt.Errorf("valuePositiveInt: %w", err)
		}
		return element(primitiveFromR4[*datatype.PositiveInt](datatype.NewPositiveIntBuilder(), n, e.ValuePositiveIntExt))
	case present(e.ValueString, e.ValueStringExt):
		return element(primitiveFromR4[*datatype.String](datatype.NewStringBuilder(), e.ValueString, e.ValueStringExt))
	case present(e.ValueTime, e.ValueTimeExt):
		return element(primitiveFromR4[*datatype.Time](datatype.NewTimeBuilder(), e.ValueTime, e.ValueTimeExt))
	case present(e.ValueUnsignedInt, e.ValueUnsignedIntExt):
		n, err := int32FromUint32(e.ValueUnsignedInt)
		if err != nil {
			return nil, fmt.Errorf("valueUnsignedInt: %w", err)
		}
		return element(primitiveFromR4[*datatype.UnsignedInt](datatype.NewUnsignedIntBuilder(), n, e.ValueUnsignedIntExt))
	case present(e.ValueUri, e.ValueUriExt):
		return element(primitiveFromR4[*datatype.URI](datatype.NewURIBuilder(), e.ValueUri, e.ValueUriExt))
	case present(e.ValueUrl, e.ValueUrlExt):
		return element(primitiveFromR4[*datatype.URL](datatype.NewURLBuilder(), e.ValueUrl, e.ValueUrlExt))
	case present(e.ValueUuid, e.ValueUuidExt):
		return element(primitiveFromR4[*datatype.UUID](datatype.NewUUIDBuilder(), e.ValueUuid, e.ValueUuidExt))
	case e.ValueCodeableConcept != nil:
		return element(CodeableConceptFromR4(e.ValueCodeableConcept))
	case e.ValueCoding != nil:
		return element(CodingFromR4(e.ValueCoding))
	case e.ValueIdentifier != nil:
		return element(IdentifierFromR4(e.ValueIdentifier))
	case e.ValuePeriod != nil:
		return element(PeriodFromR4(e.ValuePeriod))
	case e.ValueReference != nil:
		return element(ReferenceFromR4(e.ValueReference))
	case present(e.ValueOid, e.ValueOidExt),
		e.ValueAddress != nil, e.ValueAge != nil, e.ValueAnnotation != nil,
		e.ValueAttachment != nil, e.ValueContactPoint != nil, e.ValueCount != nil,
		e.ValueDistance != nil, e.ValueDuration != nil, e.ValueHumanName != nil,
		e.ValueMoney != nil, e.ValueQuantity != nil, e.ValueRange != nil,
		e.ValueRatio != nil, e.ValueSampledData != nil, e.ValueSignature != nil,
		e.ValueTiming != nil, e.ValueContactDetail != nil, e.ValueContributor != nil,
		e.ValueDataRequirement != nil, e.ValueExpression != nil, e.ValueParameterDefinition != nil,
		e.ValueRelatedArtifact != nil, e.ValueTriggerDefinition != nil, e.ValueUsageContext != nil,
		e.ValueDosage != nil, e.ValueMeta != nil:
		return nil, fmt.Errorf("value type is not supported")
	}
	return nil, nil
}

func extensionValueToR4(v datatype.Element, out *r4.Extension) error {
	var err error
	switch v := v.(type) {
	case nil:
	case *datatype.Base64Binary:
		var raw *[]byte
		raw, out.ValueBase64BinaryExt, err = primitiveToR4[[]byte](v)
		if raw != nil {
			out.ValueBase64Binary = ptr(base64.StdEncoding.EncodeToString(*raw))
		}
	case *datatype.Boolean:
		out.ValueBoolean, out.ValueBooleanExt, err = primitiveToR4[bool](v)
	case *datatype.Canonical:
		out.ValueCanonical, out.ValueCanonicalExt, err = primitiveToR4[string](v)
	case *datatype.Code:
		out.ValueCode, out.ValueCodeExt, err = primitiveToR4[string](v)
	case *datatype.Date:
		out.ValueDate, out.ValueDateExt, err = primitiveToR4[string](v)
	case *datatype.DateTime:
		out.ValueDateTime, out.ValueDateTimeExt, err = primitiveToR4[string](v)
	case *datatype.Decimal:
		var d *decimal.Decimal
		d, out.ValueDecimalExt, err = primitiveToR4[decimal.Decimal](v)
		if d != nil {
			f, _ := d.Float64()
			out.ValueDecimal = &f
		}
	case *datatype.ID:
		out.ValueId, out.ValueIdExt, err = primitiveToR4[string](v)
	case *datatype.Instant:
		out.ValueInstant, out.ValueInstantExt, err = primitiveToR4[string](v)
	case *datatype.Integer:
		var n *int32
		n, out.ValueIntegerExt, err = primitiveToR4[int32](v)
		if n != nil {
			out.ValueInteger = ptr(int(*n))
		}
	case *datatype.Markdown:
		out.ValueMarkdown, out.ValueMarkdownExt, err = primitiveToR4[string](v)
	case *datatype.PositiveInt:
		var n *int32
		n, out.ValuePositiveIntExt, err = primitiveToR4[int32](v)
		out.ValuePositiveInt = uint32FromInt32(n)
	case *datatype.String:
		out.ValueString, out.ValueStringExt, err = primitiveToR4[string](v)
	case *datatype.Time:
		out.ValueTime, out.ValueTimeExt, err = primitiveToR4[string](v)
	case *datatype.UnsignedInt:
		var n *int32
		n, out.ValueUnsignedIntExt, err = primitiveToR4[int32](v)
		out.ValueUnsignedInt = uint32FromInt32(n)
	case *datatype.URI:
		out.ValueUri, out.ValueUriExt, err = primitiveToR4[string](v)
	case *datatype.URL:
		out.ValueUrl, out.ValueUrlExt, err = primitiveToR4[string](v)
	case *datatype.UUID:
		out.ValueUuid, out.ValueUuidExt, err = primitiveToR4[string](v)
	case *datatype.CodeableConcept:
		out.ValueCodeableConcept, err = CodeableConceptToR4(v)
	case *datatype.Coding:
		out.ValueCoding, err = CodingToR4(v)
	case *datatype.Identifier:
		out.ValueIdentifier, err = IdentifierToR4(v)
	case *datatype.Period:
		out.ValuePeriod, err = PeriodToR4(v)
	case *datatype.Reference:
		out.ValueReference, err = ReferenceToR4(v)
	default:
		return fmt.Errorf("value type %s is not supported", v.TypeName())
	}
	return err
}

func int32FromUint32(v *uint32) (*int32, error) {
	if v == nil {
		return nil, nil
	}
	if *v > math.MaxInt32 {
		return nil, fmt.Errorf("%d is out of range", *v)
	}
	return ptr(int32(*v)), nil
}

func uint32FromInt32(v *int32) *uint32 {
	if v == nil || *v < 0 {
		return nil
	}
	return ptr(uint32(*v))
}
