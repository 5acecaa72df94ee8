package datatype

import (
	"bytes"
	"slices"

	"github.com/shopspring/decimal"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// Boolean is the FHIR boolean primitive.
type Boolean struct {
	ElementBase
	value    bool
	hasValue bool
	memo     hashcode.Cell
}

// BooleanOf returns a boolean holding v. It panics if v is invalid.
func BooleanOf(v bool) *Boolean {
	return Must(NewBooleanBuilder().Value(v).Build())
}

// TypeName returns "boolean".
func (x *Boolean) TypeName() string { return "boolean" }

// Value returns the value, or the zero value when absent.
func (x *Boolean) Value() bool {
	if x == nil {
		return false
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *Boolean) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *Boolean) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return formatBool(x.value)
}

// String implements fmt.Stringer.
func (x *Boolean) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *Boolean) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *Boolean) Equal(other *Boolean) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *Boolean) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("boolean")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.Bool(x.value)
		return h.Sum64()
	})
}

func (x *Boolean) equalElement(o Element) bool {
	other, ok := o.(*Boolean)
	return ok && x.Equal(other)
}

func (x *Boolean) isNil() bool { return x == nil }

func (x *Boolean) checks() []error {
	return []error{x.ValidateBase("boolean"), x.checkValue()}
}

func (x *Boolean) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("boolean", x.HasContentBase())
	}
	if reason := checkBoolean(x.value); reason != "" {
		return validate.InvalidValue("boolean", truncateValue(formatBool(x.value)), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *Boolean) ToBuilder() *BooleanBuilder {
	return &BooleanBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// BooleanBuilder builds boolean values.
type BooleanBuilder struct {
	id        string
	extension []*Extension
	value     bool
	hasValue  bool
}

// NewBooleanBuilder returns a builder with no value.
func NewBooleanBuilder() *BooleanBuilder {
	return &BooleanBuilder{}
}

// ID sets the element id.
func (b *BooleanBuilder) ID(v string) *BooleanBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *BooleanBuilder) Extension(values ...*Extension) *BooleanBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *BooleanBuilder) SetExtension(values []*Extension) *BooleanBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *BooleanBuilder) Value(v bool) *BooleanBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *BooleanBuilder) ClearValue() *BooleanBuilder {
	b.value = false
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable Boolean.
func (b *BooleanBuilder) Build() (*Boolean, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *BooleanBuilder) BuildWith(opts ...fhirmodel.Option) (*Boolean, error) {
	x := &Boolean{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("boolean", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// Integer is the FHIR integer primitive.
type Integer struct {
	ElementBase
	value    int32
	hasValue bool
	memo     hashcode.Cell
}

// IntegerOf returns an integer holding v. It panics if v is invalid.
func IntegerOf(v int32) *Integer {
	return Must(NewIntegerBuilder().Value(v).Build())
}

// TypeName returns "integer".
func (x *Integer) TypeName() string { return "integer" }

// Value returns the value, or the zero value when absent.
func (x *Integer) Value() int32 {
	if x == nil {
		return 0
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *Integer) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *Integer) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return formatInt(x.value)
}

// String implements fmt.Stringer.
func (x *Integer) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *Integer) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *Integer) Equal(other *Integer) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *Integer) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("integer")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.Int64(int64(x.value))
		return h.Sum64()
	})
}

func (x *Integer) equalElement(o Element) bool {
	other, ok := o.(*Integer)
	return ok && x.Equal(other)
}

func (x *Integer) isNil() bool { return x == nil }

func (x *Integer) checks() []error {
	return []error{x.ValidateBase("integer"), x.checkValue()}
}

func (x *Integer) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("integer", x.HasContentBase())
	}
	if reason := checkInteger(x.value); reason != "" {
		return validate.InvalidValue("integer", truncateValue(formatInt(x.value)), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *Integer) ToBuilder() *IntegerBuilder {
	return &IntegerBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// IntegerBuilder builds integer values.
type IntegerBuilder struct {
	id        string
	extension []*Extension
	value     int32
	hasValue  bool
}

// NewIntegerBuilder returns a builder with no value.
func NewIntegerBuilder() *IntegerBuilder {
	return &IntegerBuilder{}
}

// ID sets the element id.
func (b *IntegerBuilder) ID(v string) *IntegerBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *IntegerBuilder) Extension(values ...*Extension) *IntegerBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *IntegerBuilder) SetExtension(values []*Extension) *IntegerBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *IntegerBuilder) Value(v int32) *IntegerBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *IntegerBuilder) ClearValue() *IntegerBuilder {
	b.value = 0
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable Integer.
func (b *IntegerBuilder) Build() (*Integer, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *IntegerBuilder) BuildWith(opts ...fhirmodel.Option) (*Integer, error) {
	x := &Integer{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("integer", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// PositiveInt is the FHIR positiveInt primitive.
type PositiveInt struct {
	ElementBase
	value    int32
	hasValue bool
	memo     hashcode.Cell
}

// PositiveIntOf returns a positiveInt holding v. It panics if v is invalid.
func PositiveIntOf(v int32) *PositiveInt {
	return Must(NewPositiveIntBuilder().Value(v).Build())
}

// TypeName returns "positiveInt".
func (x *PositiveInt) TypeName() string { return "positiveInt" }

// Value returns the value, or the zero value when absent.
func (x *PositiveInt) Value() int32 {
	if x == nil {
		return 0
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *PositiveInt) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *PositiveInt) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return formatInt(x.value)
}

// String implements fmt.Stringer.
func (x *PositiveInt) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *PositiveInt) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *PositiveInt) Equal(other *PositiveInt) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *PositiveInt) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("positiveInt")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.Int64(int64(x.value))
		return h.Sum64()
	})
}

func (x *PositiveInt) equalElement(o Element) bool {
	other, ok := o.(*PositiveInt)
	return ok && x.Equal(other)
}

func (x *PositiveInt) isNil() bool { return x == nil }

func (x *PositiveInt) checks() []error {
	return []error{x.ValidateBase("positiveInt"), x.checkValue()}
}

func (x *PositiveInt) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("positiveInt", x.HasContentBase())
	}
	if reason := checkPositiveInt(x.value); reason != "" {
		return validate.InvalidValue("positiveInt", truncateValue(formatInt(x.value)), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *PositiveInt) ToBuilder() *PositiveIntBuilder {
	return &PositiveIntBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// PositiveIntBuilder builds positiveInt values.
type PositiveIntBuilder struct {
	id        string
	extension []*Extension
	value     int32
	hasValue  bool
}

// NewPositiveIntBuilder returns a builder with no value.
func NewPositiveIntBuilder() *PositiveIntBuilder {
	return &PositiveIntBuilder{}
}

// ID sets the element id.
func (b *PositiveIntBuilder) ID(v string) *PositiveIntBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *PositiveIntBuilder) Extension(values ...*Extension) *PositiveIntBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *PositiveIntBuilder) SetExtension(values []*Extension) *PositiveIntBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *PositiveIntBuilder) Value(v int32) *PositiveIntBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *PositiveIntBuilder) ClearValue() *PositiveIntBuilder {
	b.value = 0
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable PositiveInt.
func (b *PositiveIntBuilder) Build() (*PositiveInt, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *PositiveIntBuilder) BuildWith(opts ...fhirmodel.Option) (*PositiveInt, error) {
	x := &PositiveInt{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("positiveInt", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// UnsignedInt is the FHIR unsignedInt primitive.
type UnsignedInt struct {
	ElementBase
	value    int32
	hasValue bool
	memo     hashcode.Cell
}

// UnsignedIntOf returns an unsignedInt holding v. It panics if v is invalid.
func UnsignedIntOf(v int32) *UnsignedInt {
	return Must(NewUnsignedIntBuilder().Value(v).Build())
}

// TypeName returns "unsignedInt".
func (x *UnsignedInt) TypeName() string { return "unsignedInt" }

// Value returns the value, or the zero value when absent.
func (x *UnsignedInt) Value() int32 {
	if x == nil {
		return 0
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *UnsignedInt) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *UnsignedInt) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return formatInt(x.value)
}

// String implements fmt.Stringer.
func (x *UnsignedInt) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *UnsignedInt) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *UnsignedInt) Equal(other *UnsignedInt) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *UnsignedInt) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("unsignedInt")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.Int64(int64(x.value))
		return h.Sum64()
	})
}

func (x *UnsignedInt) equalElement(o Element) bool {
	other, ok := o.(*UnsignedInt)
	return ok && x.Equal(other)
}

func (x *UnsignedInt) isNil() bool { return x == nil }

func (x *UnsignedInt) checks() []error {
	return []error{x.ValidateBase("unsignedInt"), x.checkValue()}
}

func (x *UnsignedInt) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("unsignedInt", x.HasContentBase())
	}
	if reason := checkUnsignedInt(x.value); reason != "" {
		return validate.InvalidValue("unsignedInt", truncateValue(formatInt(x.value)), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *UnsignedInt) ToBuilder() *UnsignedIntBuilder {
	return &UnsignedIntBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// UnsignedIntBuilder builds unsignedInt values.
type UnsignedIntBuilder struct {
	id        string
	extension []*Extension
	value     int32
	hasValue  bool
}

// NewUnsignedIntBuilder returns a builder with no value.
func NewUnsignedIntBuilder() *UnsignedIntBuilder {
	return &UnsignedIntBuilder{}
}

// ID sets the element id.
func (b *UnsignedIntBuilder) ID(v string) *UnsignedIntBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *UnsignedIntBuilder) Extension(values ...*Extension) *UnsignedIntBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *UnsignedIntBuilder) SetExtension(values []*Extension) *UnsignedIntBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *UnsignedIntBuilder) Value(v int32) *UnsignedIntBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *UnsignedIntBuilder) ClearValue() *UnsignedIntBuilder {
	b.value = 0
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable UnsignedInt.
func (b *UnsignedIntBuilder) Build() (*UnsignedInt, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *UnsignedIntBuilder) BuildWith(opts ...fhirmodel.Option) (*UnsignedInt, error) {
	x := &UnsignedInt{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("unsignedInt", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// Decimal is the FHIR decimal primitive.
type Decimal struct {
	ElementBase
	value    decimal.Decimal
	hasValue bool
	memo     hashcode.Cell
}

// TypeName returns "decimal".
func (x *Decimal) TypeName() string { return "decimal" }

// Value returns the value, or the zero value when absent.
func (x *Decimal) Value() decimal.Decimal {
	if x == nil {
		return decimal.Decimal{}
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *Decimal) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *Decimal) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return formatDecimal(x.value)
}

// String implements fmt.Stringer.
func (x *Decimal) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *Decimal) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *Decimal) Equal(other *Decimal) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		equalDecimal(x.value, other.value)
}

// Hash returns a hash consistent with Equal.
func (x *Decimal) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("decimal")
		x.HashBase(h)
		h.Bool(x.hasValue)
		hashDecimal(h, x.value)
		return h.Sum64()
	})
}

func (x *Decimal) equalElement(o Element) bool {
	other, ok := o.(*Decimal)
	return ok && x.Equal(other)
}

func (x *Decimal) isNil() bool { return x == nil }

func (x *Decimal) checks() []error {
	return []error{x.ValidateBase("decimal"), x.checkValue()}
}

func (x *Decimal) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("decimal", x.HasContentBase())
	}
	if reason := checkDecimal(x.value); reason != "" {
		return validate.InvalidValue("decimal", truncateValue(formatDecimal(x.value)), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *Decimal) ToBuilder() *DecimalBuilder {
	return &DecimalBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// DecimalBuilder builds decimal values.
type DecimalBuilder struct {
	id        string
	extension []*Extension
	value     decimal.Decimal
	hasValue  bool
}

// NewDecimalBuilder returns a builder with no value.
func NewDecimalBuilder() *DecimalBuilder {
	return &DecimalBuilder{}
}

// ID sets the element id.
func (b *DecimalBuilder) ID(v string) *DecimalBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *DecimalBuilder) Extension(values ...*Extension) *DecimalBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *DecimalBuilder) SetExtension(values []*Extension) *DecimalBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *DecimalBuilder) Value(v decimal.Decimal) *DecimalBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *DecimalBuilder) ClearValue() *DecimalBuilder {
	b.value = decimal.Decimal{}
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable Decimal.
func (b *DecimalBuilder) Build() (*Decimal, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *DecimalBuilder) BuildWith(opts ...fhirmodel.Option) (*Decimal, error) {
	x := &Decimal{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("decimal", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// DecimalOf parses s as a decimal, keeping its precision. It panics if s
// is not a decimal number.
func DecimalOf(s string) *Decimal {
	return Must(ParseDecimal(s))
}

// ParseDecimal parses s as a decimal, keeping its precision: "1.50" and
// "1.5" are distinct values.
func ParseDecimal(s string) (*Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, validate.InvalidValue("decimal", truncateValue(s), "is not a decimal number")
	}
	return NewDecimalBuilder().Value(d).Build()
}

// String is the FHIR string primitive.
type String struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// StringOf returns a string holding v. It panics if v is invalid.
func StringOf(v string) *String {
	return Must(NewStringBuilder().Value(v).Build())
}

// TypeName returns "string".
func (x *String) TypeName() string { return "string" }

// Value returns the value, or the zero value when absent.
func (x *String) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *String) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *String) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *String) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *String) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *String) Equal(other *String) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *String) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("string")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *String) equalElement(o Element) bool {
	other, ok := o.(*String)
	return ok && x.Equal(other)
}

func (x *String) isNil() bool { return x == nil }

func (x *String) checks() []error {
	return []error{x.ValidateBase("string"), x.checkValue()}
}

func (x *String) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("string", x.HasContentBase())
	}
	if reason := checkString(x.value); reason != "" {
		return validate.InvalidValue("string", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *String) ToBuilder() *StringBuilder {
	return &StringBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// StringBuilder builds string values.
type StringBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewStringBuilder returns a builder with no value.
func NewStringBuilder() *StringBuilder {
	return &StringBuilder{}
}

// ID sets the element id.
func (b *StringBuilder) ID(v string) *StringBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *StringBuilder) Extension(values ...*Extension) *StringBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *StringBuilder) SetExtension(values []*Extension) *StringBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *StringBuilder) Value(v string) *StringBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *StringBuilder) ClearValue() *StringBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable String.
func (b *StringBuilder) Build() (*String, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *StringBuilder) BuildWith(opts ...fhirmodel.Option) (*String, error) {
	x := &String{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("string", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// Code is the FHIR code primitive.
type Code struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// CodeOf returns a code holding v. It panics if v is invalid.
func CodeOf(v string) *Code {
	return Must(NewCodeBuilder().Value(v).Build())
}

// TypeName returns "code".
func (x *Code) TypeName() string { return "code" }

// Value returns the value, or the zero value when absent.
func (x *Code) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *Code) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *Code) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *Code) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *Code) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *Code) Equal(other *Code) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *Code) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("code")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *Code) equalElement(o Element) bool {
	other, ok := o.(*Code)
	return ok && x.Equal(other)
}

func (x *Code) isNil() bool { return x == nil }

func (x *Code) checks() []error {
	return []error{x.ValidateBase("code"), x.checkValue()}
}

func (x *Code) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("code", x.HasContentBase())
	}
	if reason := checkCode(x.value); reason != "" {
		return validate.InvalidValue("code", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *Code) ToBuilder() *CodeBuilder {
	return &CodeBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// CodeBuilder builds code values.
type CodeBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewCodeBuilder returns a builder with no value.
func NewCodeBuilder() *CodeBuilder {
	return &CodeBuilder{}
}

// ID sets the element id.
func (b *CodeBuilder) ID(v string) *CodeBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *CodeBuilder) Extension(values ...*Extension) *CodeBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *CodeBuilder) SetExtension(values []*Extension) *CodeBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *CodeBuilder) Value(v string) *CodeBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *CodeBuilder) ClearValue() *CodeBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable Code.
func (b *CodeBuilder) Build() (*Code, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *CodeBuilder) BuildWith(opts ...fhirmodel.Option) (*Code, error) {
	x := &Code{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("code", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// ID is the FHIR id primitive.
type ID struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// IDOf returns an id holding v. It panics if v is invalid.
func IDOf(v string) *ID {
	return Must(NewIDBuilder().Value(v).Build())
}

// TypeName returns "id".
func (x *ID) TypeName() string { return "id" }

// Value returns the value, or the zero value when absent.
func (x *ID) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *ID) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *ID) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *ID) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *ID) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *ID) Equal(other *ID) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *ID) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("id")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *ID) equalElement(o Element) bool {
	other, ok := o.(*ID)
	return ok && x.Equal(other)
}

func (x *ID) isNil() bool { return x == nil }

func (x *ID) checks() []error {
	return []error{x.ValidateBase("id"), x.checkValue()}
}

func (x *ID) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("id", x.HasContentBase())
	}
	if reason := checkID(x.value); reason != "" {
		return validate.InvalidValue("id", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *ID) ToBuilder() *IDBuilder {
	return &IDBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// IDBuilder builds id values.
type IDBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewIDBuilder returns a builder with no value.
func NewIDBuilder() *IDBuilder {
	return &IDBuilder{}
}

// ID sets the element id.
func (b *IDBuilder) ID(v string) *IDBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *IDBuilder) Extension(values ...*Extension) *IDBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *IDBuilder) SetExtension(values []*Extension) *IDBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *IDBuilder) Value(v string) *IDBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *IDBuilder) ClearValue() *IDBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable ID.
func (b *IDBuilder) Build() (*ID, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *IDBuilder) BuildWith(opts ...fhirmodel.Option) (*ID, error) {
	x := &ID{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("id", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// URI is the FHIR uri primitive.
type URI struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// URIOf returns an uri holding v. It panics if v is invalid.
func URIOf(v string) *URI {
	return Must(NewURIBuilder().Value(v).Build())
}

// TypeName returns "uri".
func (x *URI) TypeName() string { return "uri" }

// Value returns the value, or the zero value when absent.
func (x *URI) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *URI) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *URI) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *URI) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *URI) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *URI) Equal(other *URI) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *URI) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("uri")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *URI) equalElement(o Element) bool {
	other, ok := o.(*URI)
	return ok && x.Equal(other)
}

func (x *URI) isNil() bool { return x == nil }

func (x *URI) checks() []error {
	return []error{x.ValidateBase("uri"), x.checkValue()}
}

func (x *URI) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("uri", x.HasContentBase())
	}
	if reason := checkURI(x.value); reason != "" {
		return validate.InvalidValue("uri", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *URI) ToBuilder() *URIBuilder {
	return &URIBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// URIBuilder builds uri values.
type URIBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewURIBuilder returns a builder with no value.
func NewURIBuilder() *URIBuilder {
	return &URIBuilder{}
}

// ID sets the element id.
func (b *URIBuilder) ID(v string) *URIBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *URIBuilder) Extension(values ...*Extension) *URIBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *URIBuilder) SetExtension(values []*Extension) *URIBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *URIBuilder) Value(v string) *URIBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *URIBuilder) ClearValue() *URIBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable URI.
func (b *URIBuilder) Build() (*URI, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *URIBuilder) BuildWith(opts ...fhirmodel.Option) (*URI, error) {
	x := &URI{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("uri", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// URL is the FHIR url primitive.
type URL struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// URLOf returns an url holding v. It panics if v is invalid.
func URLOf(v string) *URL {
	return Must(NewURLBuilder().Value(v).Build())
}

// TypeName returns "url".
func (x *URL) TypeName() string { return "url" }

// Value returns the value, or the zero value when absent.
func (x *URL) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *URL) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *URL) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *URL) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *URL) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *URL) Equal(other *URL) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *URL) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("url")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *URL) equalElement(o Element) bool {
	other, ok := o.(*URL)
	return ok && x.Equal(other)
}

func (x *URL) isNil() bool { return x == nil }

func (x *URL) checks() []error {
	return []error{x.ValidateBase("url"), x.checkValue()}
}

func (x *URL) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("url", x.HasContentBase())
	}
	if reason := checkURL(x.value); reason != "" {
		return validate.InvalidValue("url", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *URL) ToBuilder() *URLBuilder {
	return &URLBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// URLBuilder builds url values.
type URLBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewURLBuilder returns a builder with no value.
func NewURLBuilder() *URLBuilder {
	return &URLBuilder{}
}

// ID sets the element id.
func (b *URLBuilder) ID(v string) *URLBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *URLBuilder) Extension(values ...*Extension) *URLBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *URLBuilder) SetExtension(values []*Extension) *URLBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *URLBuilder) Value(v string) *URLBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *URLBuilder) ClearValue() *URLBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable URL.
func (b *URLBuilder) Build() (*URL, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *URLBuilder) BuildWith(opts ...fhirmodel.Option) (*URL, error) {
	x := &URL{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("url", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// Canonical is the FHIR canonical primitive.
type Canonical struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// CanonicalOf returns a canonical holding v. It panics if v is invalid.
func CanonicalOf(v string) *Canonical {
	return Must(NewCanonicalBuilder().Value(v).Build())
}

// TypeName returns "canonical".
func (x *Canonical) TypeName() string { return "canonical" }

// Value returns the value, or the zero value when absent.
func (x *Canonical) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *Canonical) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *Canonical) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *Canonical) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *Canonical) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *Canonical) Equal(other *Canonical) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *Canonical) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("canonical")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *Canonical) equalElement(o Element) bool {
	other, ok := o.(*Canonical)
	return ok && x.Equal(other)
}

func (x *Canonical) isNil() bool { return x == nil }

func (x *Canonical) checks() []error {
	return []error{x.ValidateBase("canonical"), x.checkValue()}
}

func (x *Canonical) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("canonical", x.HasContentBase())
	}
	if reason := checkCanonical(x.value); reason != "" {
		return validate.InvalidValue("canonical", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *Canonical) ToBuilder() *CanonicalBuilder {
	return &CanonicalBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// CanonicalBuilder builds canonical values.
type CanonicalBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewCanonicalBuilder returns a builder with no value.
func NewCanonicalBuilder() *CanonicalBuilder {
	return &CanonicalBuilder{}
}

// ID sets the element id.
func (b *CanonicalBuilder) ID(v string) *CanonicalBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *CanonicalBuilder) Extension(values ...*Extension) *CanonicalBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *CanonicalBuilder) SetExtension(values []*Extension) *CanonicalBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *CanonicalBuilder) Value(v string) *CanonicalBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *CanonicalBuilder) ClearValue() *CanonicalBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable Canonical.
func (b *CanonicalBuilder) Build() (*Canonical, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *CanonicalBuilder) BuildWith(opts ...fhirmodel.Option) (*Canonical, error) {
	x := &Canonical{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("canonical", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// UUID is the FHIR uuid primitive.
type UUID struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// UUIDOf returns an uuid holding v. It panics if v is invalid.
func UUIDOf(v string) *UUID {
	return Must(NewUUIDBuilder().Value(v).Build())
}

// TypeName returns "uuid".
func (x *UUID) TypeName() string { return "uuid" }

// Value returns the value, or the zero value when absent.
func (x *UUID) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *UUID) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *UUID) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *UUID) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *UUID) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *UUID) Equal(other *UUID) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *UUID) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("uuid")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *UUID) equalElement(o Element) bool {
	other, ok := o.(*UUID)
	return ok && x.Equal(other)
}

func (x *UUID) isNil() bool { return x == nil }

func (x *UUID) checks() []error {
	return []error{x.ValidateBase("uuid"), x.checkValue()}
}

func (x *UUID) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("uuid", x.HasContentBase())
	}
	if reason := checkUUID(x.value); reason != "" {
		return validate.InvalidValue("uuid", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *UUID) ToBuilder() *UUIDBuilder {
	return &UUIDBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// UUIDBuilder builds uuid values.
type UUIDBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewUUIDBuilder returns a builder with no value.
func NewUUIDBuilder() *UUIDBuilder {
	return &UUIDBuilder{}
}

// ID sets the element id.
func (b *UUIDBuilder) ID(v string) *UUIDBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *UUIDBuilder) Extension(values ...*Extension) *UUIDBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *UUIDBuilder) SetExtension(values []*Extension) *UUIDBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *UUIDBuilder) Value(v string) *UUIDBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *UUIDBuilder) ClearValue() *UUIDBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable UUID.
func (b *UUIDBuilder) Build() (*UUID, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *UUIDBuilder) BuildWith(opts ...fhirmodel.Option) (*UUID, error) {
	x := &UUID{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("uuid", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// Markdown is the FHIR markdown primitive.
type Markdown struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// MarkdownOf returns a markdown holding v. It panics if v is invalid.
func MarkdownOf(v string) *Markdown {
	return Must(NewMarkdownBuilder().Value(v).Build())
}

// TypeName returns "markdown".
func (x *Markdown) TypeName() string { return "markdown" }

// Value returns the value, or the zero value when absent.
func (x *Markdown) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *Markdown) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *Markdown) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *Markdown) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *Markdown) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *Markdown) Equal(other *Markdown) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *Markdown) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("markdown")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *Markdown) equalElement(o Element) bool {
	other, ok := o.(*Markdown)
	return ok && x.Equal(other)
}

func (x *Markdown) isNil() bool { return x == nil }

func (x *Markdown) checks() []error {
	return []error{x.ValidateBase("markdown"), x.checkValue()}
}

func (x *Markdown) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("markdown", x.HasContentBase())
	}
	if reason := checkMarkdown(x.value); reason != "" {
		return validate.InvalidValue("markdown", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *Markdown) ToBuilder() *MarkdownBuilder {
	return &MarkdownBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// MarkdownBuilder builds markdown values.
type MarkdownBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewMarkdownBuilder returns a builder with no value.
func NewMarkdownBuilder() *MarkdownBuilder {
	return &MarkdownBuilder{}
}

// ID sets the element id.
func (b *MarkdownBuilder) ID(v string) *MarkdownBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *MarkdownBuilder) Extension(values ...*Extension) *MarkdownBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *MarkdownBuilder) SetExtension(values []*Extension) *MarkdownBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *MarkdownBuilder) Value(v string) *MarkdownBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *MarkdownBuilder) ClearValue() *MarkdownBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable Markdown.
func (b *MarkdownBuilder) Build() (*Markdown, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *MarkdownBuilder) BuildWith(opts ...fhirmodel.Option) (*Markdown, error) {
	x := &Markdown{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("markdown", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// Base64Binary is the FHIR base64Binary primitive.
type Base64Binary struct {
	ElementBase
	value    []byte
	hasValue bool
	memo     hashcode.Cell
}

// Base64BinaryOf returns a base64Binary holding v. It panics if v is invalid.
func Base64BinaryOf(v []byte) *Base64Binary {
	return Must(NewBase64BinaryBuilder().Value(v).Build())
}

// TypeName returns "base64Binary".
func (x *Base64Binary) TypeName() string { return "base64Binary" }

// Value returns the value, or the zero value when absent.
func (x *Base64Binary) Value() []byte {
	if x == nil {
		return nil
	}
	return bytes.Clone(x.value)
}

// HasValue reports whether x holds a value.
func (x *Base64Binary) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *Base64Binary) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return formatBytes(x.value)
}

// String implements fmt.Stringer.
func (x *Base64Binary) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *Base64Binary) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *Base64Binary) Equal(other *Base64Binary) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		equalBytes(x.value, other.value)
}

// Hash returns a hash consistent with Equal.
func (x *Base64Binary) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("base64Binary")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.Bytes(x.value)
		return h.Sum64()
	})
}

func (x *Base64Binary) equalElement(o Element) bool {
	other, ok := o.(*Base64Binary)
	return ok && x.Equal(other)
}

func (x *Base64Binary) isNil() bool { return x == nil }

func (x *Base64Binary) checks() []error {
	return []error{x.ValidateBase("base64Binary"), x.checkValue()}
}

func (x *Base64Binary) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("base64Binary", x.HasContentBase())
	}
	if reason := checkBase64Binary(x.value); reason != "" {
		return validate.InvalidValue("base64Binary", truncateValue(formatBytes(x.value)), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *Base64Binary) ToBuilder() *Base64BinaryBuilder {
	return &Base64BinaryBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     bytes.Clone(x.value),
		hasValue:  x.hasValue,
	}
}

// Base64BinaryBuilder builds base64Binary values.
type Base64BinaryBuilder struct {
	id        string
	extension []*Extension
	value     []byte
	hasValue  bool
}

// NewBase64BinaryBuilder returns a builder with no value.
func NewBase64BinaryBuilder() *Base64BinaryBuilder {
	return &Base64BinaryBuilder{}
}

// ID sets the element id.
func (b *Base64BinaryBuilder) ID(v string) *Base64BinaryBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *Base64BinaryBuilder) Extension(values ...*Extension) *Base64BinaryBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *Base64BinaryBuilder) SetExtension(values []*Extension) *Base64BinaryBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *Base64BinaryBuilder) Value(v []byte) *Base64BinaryBuilder {
	b.value = bytes.Clone(v)
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *Base64BinaryBuilder) ClearValue() *Base64BinaryBuilder {
	b.value = nil
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable Base64Binary.
func (b *Base64BinaryBuilder) Build() (*Base64Binary, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *Base64BinaryBuilder) BuildWith(opts ...fhirmodel.Option) (*Base64Binary, error) {
	x := &Base64Binary{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       bytes.Clone(b.value),
		hasValue:    b.hasValue,
	}
	if err := validate.Run("base64Binary", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// Date is the FHIR date primitive.
type Date struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// DateOf returns a date holding v. It panics if v is invalid.
func DateOf(v string) *Date {
	return Must(NewDateBuilder().Value(v).Build())
}

// TypeName returns "date".
func (x *Date) TypeName() string { return "date" }

// Value returns the value, or the zero value when absent.
func (x *Date) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *Date) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *Date) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *Date) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *Date) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *Date) Equal(other *Date) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *Date) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("date")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *Date) equalElement(o Element) bool {
	other, ok := o.(*Date)
	return ok && x.Equal(other)
}

func (x *Date) isNil() bool { return x == nil }

func (x *Date) checks() []error {
	return []error{x.ValidateBase("date"), x.checkValue()}
}

func (x *Date) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("date", x.HasContentBase())
	}
	if reason := checkDate(x.value); reason != "" {
		return validate.InvalidValue("date", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *Date) ToBuilder() *DateBuilder {
	return &DateBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// DateBuilder builds date values.
type DateBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewDateBuilder returns a builder with no value.
func NewDateBuilder() *DateBuilder {
	return &DateBuilder{}
}

// ID sets the element id.
func (b *DateBuilder) ID(v string) *DateBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *DateBuilder) Extension(values ...*Extension) *DateBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *DateBuilder) SetExtension(values []*Extension) *DateBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *DateBuilder) Value(v string) *DateBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *DateBuilder) ClearValue() *DateBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable Date.
func (b *DateBuilder) Build() (*Date, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *DateBuilder) BuildWith(opts ...fhirmodel.Option) (*Date, error) {
	x := &Date{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("date", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// DateTime is the FHIR dateTime primitive.
type DateTime struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// DateTimeOf returns a dateTime holding v. It panics if v is invalid.
func DateTimeOf(v string) *DateTime {
	return Must(NewDateTimeBuilder().Value(v).Build())
}

// TypeName returns "dateTime".
func (x *DateTime) TypeName() string { return "dateTime" }

// Value returns the value, or the zero value when absent.
func (x *DateTime) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *DateTime) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *DateTime) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *DateTime) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *DateTime) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *DateTime) Equal(other *DateTime) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *DateTime) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("dateTime")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *DateTime) equalElement(o Element) bool {
	other, ok := o.(*DateTime)
	return ok && x.Equal(other)
}

func (x *DateTime) isNil() bool { return x == nil }

func (x *DateTime) checks() []error {
	return []error{x.ValidateBase("dateTime"), x.checkValue()}
}

func (x *DateTime) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("dateTime", x.HasContentBase())
	}
	if reason := checkDateTime(x.value); reason != "" {
		return validate.InvalidValue("dateTime", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *DateTime) ToBuilder() *DateTimeBuilder {
	return &DateTimeBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// DateTimeBuilder builds dateTime values.
type DateTimeBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewDateTimeBuilder returns a builder with no value.
func NewDateTimeBuilder() *DateTimeBuilder {
	return &DateTimeBuilder{}
}

// ID sets the element id.
func (b *DateTimeBuilder) ID(v string) *DateTimeBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *DateTimeBuilder) Extension(values ...*Extension) *DateTimeBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *DateTimeBuilder) SetExtension(values []*Extension) *DateTimeBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *DateTimeBuilder) Value(v string) *DateTimeBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *DateTimeBuilder) ClearValue() *DateTimeBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable DateTime.
func (b *DateTimeBuilder) Build() (*DateTime, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *DateTimeBuilder) BuildWith(opts ...fhirmodel.Option) (*DateTime, error) {
	x := &DateTime{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("dateTime", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// Time is the FHIR time primitive.
type Time struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// TimeOf returns a time holding v. It panics if v is invalid.
func TimeOf(v string) *Time {
	return Must(NewTimeBuilder().Value(v).Build())
}

// TypeName returns "time".
func (x *Time) TypeName() string { return "time" }

// Value returns the value, or the zero value when absent.
func (x *Time) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *Time) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *Time) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *Time) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *Time) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *Time) Equal(other *Time) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *Time) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("time")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *Time) equalElement(o Element) bool {
	other, ok := o.(*Time)
	return ok && x.Equal(other)
}

func (x *Time) isNil() bool { return x == nil }

func (x *Time) checks() []error {
	return []error{x.ValidateBase("time"), x.checkValue()}
}

func (x *Time) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("time", x.HasContentBase())
	}
	if reason := checkTime(x.value); reason != "" {
		return validate.InvalidValue("time", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *Time) ToBuilder() *TimeBuilder {
	return &TimeBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// TimeBuilder builds time values.
type TimeBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewTimeBuilder returns a builder with no value.
func NewTimeBuilder() *TimeBuilder {
	return &TimeBuilder{}
}

// ID sets the element id.
func (b *TimeBuilder) ID(v string) *TimeBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *TimeBuilder) Extension(values ...*Extension) *TimeBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *TimeBuilder) SetExtension(values []*Extension) *TimeBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *TimeBuilder) Value(v string) *TimeBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *TimeBuilder) ClearValue() *TimeBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable Time.
func (b *TimeBuilder) Build() (*Time, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *TimeBuilder) BuildWith(opts ...fhirmodel.Option) (*Time, error) {
	x := &Time{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("time", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// Instant is the FHIR instant primitive.
type Instant struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// InstantOf returns an instant holding v. It panics if v is invalid.
func InstantOf(v string) *Instant {
	return Must(NewInstantBuilder().Value(v).Build())
}

// TypeName returns "instant".
func (x *Instant) TypeName() string { return "instant" }

// Value returns the value, or the zero value when absent.
func (x *Instant) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *Instant) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *Instant) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *Instant) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *Instant) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *Instant) Equal(other *Instant) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *Instant) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("instant")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *Instant) equalElement(o Element) bool {
	other, ok := o.(*Instant)
	return ok && x.Equal(other)
}

func (x *Instant) isNil() bool { return x == nil }

func (x *Instant) checks() []error {
	return []error{x.ValidateBase("instant"), x.checkValue()}
}

func (x *Instant) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("instant", x.HasContentBase())
	}
	if reason := checkInstant(x.value); reason != "" {
		return validate.InvalidValue("instant", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *Instant) ToBuilder() *InstantBuilder {
	return &InstantBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// InstantBuilder builds instant values.
type InstantBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewInstantBuilder returns a builder with no value.
func NewInstantBuilder() *InstantBuilder {
	return &InstantBuilder{}
}

// ID sets the element id.
func (b *InstantBuilder) ID(v string) *InstantBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *InstantBuilder) Extension(values ...*Extension) *InstantBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *InstantBuilder) SetExtension(values []*Extension) *InstantBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *InstantBuilder) Value(v string) *InstantBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *InstantBuilder) ClearValue() *InstantBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable Instant.
func (b *InstantBuilder) Build() (*Instant, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *InstantBuilder) BuildWith(opts ...fhirmodel.Option) (*Instant, error) {
	x := &Instant{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("instant", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// XHTML is the FHIR xhtml primitive.
type XHTML struct {
	ElementBase
	value    string
	hasValue bool
	memo     hashcode.Cell
}

// XHTMLOf returns a xhtml holding v. It panics if v is invalid.
func XHTMLOf(v string) *XHTML {
	return Must(NewXHTMLBuilder().Value(v).Build())
}

// TypeName returns "xhtml".
func (x *XHTML) TypeName() string { return "xhtml" }

// Value returns the value, or the zero value when absent.
func (x *XHTML) Value() string {
	if x == nil {
		return ""
	}
	return x.value
}

// HasValue reports whether x holds a value.
func (x *XHTML) HasValue() bool { return x != nil && x.hasValue }

// ValueString returns the value in FHIR string form, or "" when absent.
func (x *XHTML) ValueString() string {
	if !x.HasValue() {
		return ""
	}
	return x.value
}

// String implements fmt.Stringer.
func (x *XHTML) String() string { return x.ValueString() }

// Accept visits x, its extensions and its value.
func (x *XHTML) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		if x.hasValue {
			v.VisitValue("value", x.value)
		}
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other hold the same value, id and extensions.
func (x *XHTML) Equal(other *XHTML) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.hasValue == other.hasValue &&
		x.value == other.value
}

// Hash returns a hash consistent with Equal.
func (x *XHTML) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("xhtml")
		x.HashBase(h)
		h.Bool(x.hasValue)
		h.String(x.value)
		return h.Sum64()
	})
}

func (x *XHTML) equalElement(o Element) bool {
	other, ok := o.(*XHTML)
	return ok && x.Equal(other)
}

func (x *XHTML) isNil() bool { return x == nil }

func (x *XHTML) checks() []error {
	return []error{x.ValidateBase("xhtml"), x.checkValue()}
}

func (x *XHTML) checkValue() error {
	if !x.hasValue {
		return validate.HasChildren("xhtml", x.HasContentBase())
	}
	if reason := checkXHTML(x.value); reason != "" {
		return validate.InvalidValue("xhtml", truncateValue(x.value), reason)
	}
	return nil
}

// ToBuilder returns a builder seeded with x.
func (x *XHTML) ToBuilder() *XHTMLBuilder {
	return &XHTMLBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		value:     x.value,
		hasValue:  x.hasValue,
	}
}

// XHTMLBuilder builds xhtml values.
type XHTMLBuilder struct {
	id        string
	extension []*Extension
	value     string
	hasValue  bool
}

// NewXHTMLBuilder returns a builder with no value.
func NewXHTMLBuilder() *XHTMLBuilder {
	return &XHTMLBuilder{}
}

// ID sets the element id.
func (b *XHTMLBuilder) ID(v string) *XHTMLBuilder {
	b.id = v
	return b
}

// Extension appends values to the extensions.
func (b *XHTMLBuilder) Extension(values ...*Extension) *XHTMLBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces the extensions with a copy of values.
func (b *XHTMLBuilder) SetExtension(values []*Extension) *XHTMLBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Value sets the value.
func (b *XHTMLBuilder) Value(v string) *XHTMLBuilder {
	b.value = v
	b.hasValue = true
	return b
}

// ClearValue removes the value, leaving only id and extensions.
func (b *XHTMLBuilder) ClearValue() *XHTMLBuilder {
	b.value = ""
	b.hasValue = false
	return b
}

// Build validates the value and returns an immutable XHTML.
func (b *XHTMLBuilder) Build() (*XHTML, error) {
	return b.BuildWith()
}

// BuildWith is Build with opts applied to tracing and metrics.
func (b *XHTMLBuilder) BuildWith(opts ...fhirmodel.Option) (*XHTML, error) {
	x := &XHTML{
		ElementBase: NewElementBase(b.id, b.extension),
		value:       b.value,
		hasValue:    b.hasValue,
	}
	if err := validate.Run("xhtml", fhirmodel.Apply(opts...), x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
