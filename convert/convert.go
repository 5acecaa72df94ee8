// Package convert moves values between this model and the generated structs
// of github.com/gofhir/fhir/r4. It covers Coding, CodeableConcept,
// Identifier, Period, Reference, Extension and the codes of a ValueSet.
//
// Every element the model holds is carried in both directions, including
// element ids, extensions and the id and extensions r4 keeps on primitive
// values in its _field companions. Conversions into the model run the same
// validation as the builders, so a malformed code or uri in the source is
// reported as a *validate.Error.
package convert

import (
	"fmt"

	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/model/datatype"
)

// CodingFromR4 converts c. A nil c yields nil.
func CodingFromR4(c *r4.Coding) (*datatype.Coding, error) {
	if c == nil {
		return nil, nil
	}
	ext, err := extensionsFromR4(c.Extension)
	if err != nil {
		return nil, err
	}
	system, err := primitiveFromR4[*datatype.URI](datatype.NewURIBuilder(), c.System, c.SystemExt)
	if err != nil {
		return nil, fmt.Errorf("system: %w", err)
	}
	version, err := primitiveFromR4[*datatype.String](datatype.NewStringBuilder(), c.Version, c.VersionExt)
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	code, err := primitiveFromR4[*datatype.Code](datatype.NewCodeBuilder(), c.Code, c.CodeExt)
	if err != nil {
		return nil, fmt.Errorf("code: %w", err)
	}
	display, err := primitiveFromR4[*datatype.String](datatype.NewStringBuilder(), c.Display, c.DisplayExt)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	userSelected, err := primitiveFromR4[*datatype.Boolean](datatype.NewBooleanBuilder(), c.UserSelected, c.UserSelectedExt)
	if err != nil {
		return nil, fmt.Errorf("userSelected: %w", err)
	}
	return datatype.NewCodingBuilder().
		ID(deref(c.Id)).
		SetExtension(ext).
		System(system).
		Version(version).
		Code(code).
		Display(display).
		UserSelected(userSelected).
		Build()
}

// CodingToR4 converts c. A nil c yields nil.
func CodingToR4(c *datatype.Coding) (*r4.Coding, error) {
	if c == nil {
		return nil, nil
	}
	ext, err := extensionsToR4(c.Extension())
	if err != nil {
		return nil, err
	}
	out := &r4.Coding{Id: optional(c.ID()), Extension: ext}
	if out.System, out.SystemExt, err = primitiveToR4[string](c.System()); err != nil {
		return nil, err
	}
	if out.Version, out.VersionExt, err = primitiveToR4[string](c.Version()); err != nil {
		return nil, err
	}
	if out.Code, out.CodeExt, err = primitiveToR4[string](c.Code()); err != nil {
		return nil, err
	}
	if out.Display, out.DisplayExt, err = primitiveToR4[string](c.Display()); err != nil {
		return nil, err
	}
	if out.UserSelected, out.UserSelectedExt, err = primitiveToR4[bool](c.UserSelected()); err != nil {
		return nil, err
	}
	return out, nil
}

// CodeableConceptFromR4 converts cc. A nil cc yields nil.
func CodeableConceptFromR4(cc *r4.CodeableConcept) (*datatype.CodeableConcept, error) {
	if cc == nil {
		return nil, nil
	}
	ext, err := extensionsFromR4(cc.Extension)
	if err != nil {
		return nil, err
	}
	b := datatype.NewCodeableConceptBuilder().ID(deref(cc.Id)).SetExtension(ext)
	for i := range cc.Coding {
		coding, err := CodingFromR4(&cc.Coding[i])
		if err != nil {
			return nil, fmt.Errorf("coding[%d]: %w", i, err)
		}
		b.Coding(coding)
	}
	text, err := primitiveFromR4[*datatype.String](datatype.NewStringBuilder(), cc.Text, cc.TextExt)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	return b.Text(text).Build()
}

// CodeableConceptToR4 converts cc. A nil cc yields nil.
func CodeableConceptToR4(cc *datatype.CodeableConcept) (*r4.CodeableConcept, error) {
	if cc == nil {
		return nil, nil
	}
	ext, err := extensionsToR4(cc.Extension())
	if err != nil {
		return nil, err
	}
	out := &r4.CodeableConcept{Id: optional(cc.ID()), Extension: ext}
	for i, c := range cc.Coding() {
		coding, err := CodingToR4(c)
		if err != nil {
			return nil, fmt.Errorf("coding[%d]: %w", i, err)
		}
		out.Coding = append(out.Coding, *coding)
	}
	if out.Text, out.TextExt, err = primitiveToR4[string](cc.Text()); err != nil {
		return nil, err
	}
	return out, nil
}

// IdentifierFromR4 converts id. A nil id yields nil.
func IdentifierFromR4(id *r4.Identifier) (*datatype.Identifier, error) {
	if id == nil {
		return nil, nil
	}
	ext, err := extensionsFromR4(id.Extension)
	if err != nil {
		return nil, err
	}
	use, err := codeFromR4(id.Use, id.UseExt)
	if err != nil {
		return nil, fmt.Errorf("use: %w", err)
	}
	typ, err := CodeableConceptFromR4(id.Type)
	if err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}
	system, err := primitiveFromR4[*datatype.URI](datatype.NewURIBuilder(), id.System, id.SystemExt)
	if err != nil {
		return nil, fmt.Errorf("system: %w", err)
	}
	value, err := primitiveFromR4[*datatype.String](datatype.NewStringBuilder(), id.Value, id.ValueExt)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	period, err := PeriodFromR4(id.Period)
	if err != nil {
		return nil, fmt.Errorf("period: %w", err)
	}
	assigner, err := ReferenceFromR4(id.Assigner)
	if err != nil {
		return nil, fmt.Errorf("assigner: %w", err)
	}
	return datatype.NewIdentifierBuilder().
		ID(deref(id.Id)).
		SetExtension(ext).
		Use(use).
		Type(typ).
		System(system).
		Value(value).
		Period(period).
		Assigner(assigner).
		Build()
}

// IdentifierToR4 converts id. A nil id yields nil.
func IdentifierToR4(id *datatype.Identifier) (*r4.Identifier, error) {
	if id == nil {
		return nil, nil
	}
	ext, err := extensionsToR4(id.Extension())
	if err != nil {
		return nil, err
	}
	out := &r4.Identifier{Id: optional(id.ID()), Extension: ext}
	if out.Use, out.UseExt, err = codeToR4[r4.IdentifierUse](id.Use()); err != nil {
		return nil, err
	}
	if out.Type, err = CodeableConceptToR4(id.Type()); err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}
	if out.System, out.SystemExt, err = primitiveToR4[string](id.System()); err != nil {
		return nil, err
	}
	if out.Value, out.ValueExt, err = primitiveToR4[string](id.Value()); err != nil {
		return nil, err
	}
	if out.Period, err = PeriodToR4(id.Period()); err != nil {
		return nil, fmt.Errorf("period: %w", err)
	}
	if out.Assigner, err = ReferenceToR4(id.Assigner()); err != nil {
		return nil, fmt.Errorf("assigner: %w", err)
	}
	return out, nil
}

// PeriodFromR4 converts p. A nil p yields nil.
func PeriodFromR4(p *r4.Period) (*datatype.Period, error) {
	if p == nil {
		return nil, nil
	}
	ext, err := extensionsFromR4(p.Extension)
	if err != nil {
		return nil, err
	}
	start, err := primitiveFromR4[*datatype.DateTime](datatype.NewDateTimeBuilder(), p.Start, p.StartExt)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := primitiveFromR4[*datatype.DateTime](datatype.NewDateTimeBuilder(), p.End, p.EndExt)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	return datatype.NewPeriodBuilder().
		ID(deref(p.Id)).
		SetExtension(ext).
		Start(start).
		End(end).
		Build()
}

// PeriodToR4 converts p. A nil p yields nil.
func PeriodToR4(p *datatype.Period) (*r4.Period, error) {
	if p == nil {
		return nil, nil
	}
	ext, err := extensionsToR4(p.Extension())
	if err != nil {
		return nil, err
	}
	out := &r4.Period{Id: optional(p.ID()), Extension: ext}
	if out.Start, out.StartExt, err = primitiveToR4[string](p.Start()); err != nil {
		return nil, err
	}
	if out.End, out.EndExt, err = primitiveToR4[string](p.End()); err != nil {
		return nil, err
	}
	return out, nil
}

// ReferenceFromR4 converts r. A nil r yields nil.
func ReferenceFromR4(r *r4.Reference) (*datatype.Reference, error) {
	if r == nil {
		return nil, nil
	}
	ext, err := extensionsFromR4(r.Extension)
	if err != nil {
		return nil, err
	}
	ref, err := primitiveFromR4[*datatype.String](datatype.NewStringBuilder(), r.Reference, r.ReferenceExt)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	typ, err := primitiveFromR4[*datatype.URI](datatype.NewURIBuilder(), r.Type, r.TypeExt)
	if err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}
	identifier, err := IdentifierFromR4(r.Identifier)
	if err != nil {
		return nil, fmt.Errorf("identifier: %w", err)
	}
	display, err := primitiveFromR4[*datatype.String](datatype.NewStringBuilder(), r.Display, r.DisplayExt)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	return datatype.NewReferenceBuilder().
		ID(deref(r.Id)).
		SetExtension(ext).
		Reference(ref).
		Type(typ).
		Identifier(identifier).
		Display(display).
		Build()
}

// ReferenceToR4 converts r. A nil r yields nil.
func ReferenceToR4(r *datatype.Reference) (*r4.Reference, error) {
	if r == nil {
		return nil, nil
	}
	ext, err := extensionsToR4(r.Extension())
	if err != nil {
		return nil, err
	}
	out := &r4.Reference{Id: optional(r.ID()), Extension: ext}
	if out.Reference, out.ReferenceExt, err = primitiveToR4[string](r.Reference()); err != nil {
		return nil, err
	}
	if out.Type, out.TypeExt, err = primitiveToR4[string](r.Type()); err != nil {
		return nil, err
	}
	if out.Identifier, err = IdentifierToR4(r.Identifier()); err != nil {
		return nil, fmt.Errorf("identifier: %w", err)
	}
	if out.Display, out.DisplayExt, err = primitiveToR4[string](r.Display()); err != nil {
		return nil, err
	}
	return out, nil
}
