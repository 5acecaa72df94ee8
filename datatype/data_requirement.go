package datatype

import (
	"slices"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/hashcode"
	"github.com/gofhir/model/pkg/validate"
	"github.com/gofhir/model/visit"
)

// DataRequirement describes a required data item for evaluation.
type DataRequirement struct {
	ElementBase
	typ         *Code
	profile     []*Canonical
	subject     Element
	mustSupport []*String
	codeFilter  []*DataRequirementCodeFilter
	dateFilter  []*DataRequirementDateFilter
	limit       *PositiveInt
	sort        []*DataRequirementSort
	opts        *fhirmodel.Options
	memo        hashcode.Cell
}

// TypeName returns "DataRequirement".
func (x *DataRequirement) TypeName() string { return "DataRequirement" }

// Type returns the type. It is never nil on a built value.
func (x *DataRequirement) Type() *Code { return x.typ }

// Profile returns a copy of the profile list.
func (x *DataRequirement) Profile() []*Canonical { return slices.Clone(x.profile) }

// Subject returns subject[x]: CodeableConcept or Reference.
func (x *DataRequirement) Subject() Element { return x.subject }

// MustSupport returns a copy of the must support list.
func (x *DataRequirement) MustSupport() []*String { return slices.Clone(x.mustSupport) }

// CodeFilter returns a copy of the code filter list.
func (x *DataRequirement) CodeFilter() []*DataRequirementCodeFilter {
	return slices.Clone(x.codeFilter)
}

// DateFilter returns a copy of the date filter list.
func (x *DataRequirement) DateFilter() []*DataRequirementDateFilter {
	return slices.Clone(x.dateFilter)
}

// Limit returns the limit, or nil when absent.
func (x *DataRequirement) Limit() *PositiveInt { return x.limit }

// Sort returns a copy of the sort list.
func (x *DataRequirement) Sort() []*DataRequirementSort { return slices.Clone(x.sort) }

// Accept visits x and then its fields in declaration order.
func (x *DataRequirement) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "type", x.typ)
		visit.List(v, "profile", x.profile)
		visit.Child(v, "subject", x.subject)
		visit.List(v, "mustSupport", x.mustSupport)
		visit.List(v, "codeFilter", x.codeFilter)
		visit.List(v, "dateFilter", x.dateFilter)
		visit.Child(v, "limit", x.limit)
		visit.List(v, "sort", x.sort)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *DataRequirement) Equal(other *DataRequirement) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.typ.Equal(other.typ) &&
		slices.EqualFunc(x.profile, other.profile, (*Canonical).Equal) &&
		EqualElements(x.subject, other.subject) &&
		slices.EqualFunc(x.mustSupport, other.mustSupport, (*String).Equal) &&
		slices.EqualFunc(x.codeFilter, other.codeFilter, (*DataRequirementCodeFilter).Equal) &&
		slices.EqualFunc(x.dateFilter, other.dateFilter, (*DataRequirementDateFilter).Equal) &&
		x.limit.Equal(other.limit) &&
		slices.EqualFunc(x.sort, other.sort, (*DataRequirementSort).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *DataRequirement) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("DataRequirement")
		x.HashBase(h)
		hashcode.Field(h, x.typ)
		hashcode.List(h, x.profile)
		hashcode.Field(h, x.subject)
		hashcode.List(h, x.mustSupport)
		hashcode.List(h, x.codeFilter)
		hashcode.List(h, x.dateFilter)
		hashcode.Field(h, x.limit)
		hashcode.List(h, x.sort)
		return h.Sum64()
	})
}

func (x *DataRequirement) equalElement(o Element) bool {
	other, ok := o.(*DataRequirement)
	return ok && x.Equal(other)
}

func (x *DataRequirement) isNil() bool { return x == nil }

func (x *DataRequirement) checks() []error {
	return []error{
		x.ValidateBase("DataRequirement"),
		validate.Required("DataRequirement", "type", x.typ),
		validate.Elements("DataRequirement", "profile", x.profile),
		validate.Choice("DataRequirement", "subject", x.subject, "CodeableConcept", "Reference"),
		CheckReferenceChoice("DataRequirement", "subject", x.subject, "Group"),
		validate.Elements("DataRequirement", "mustSupport", x.mustSupport),
		validate.Elements("DataRequirement", "codeFilter", x.codeFilter),
		validate.Elements("DataRequirement", "dateFilter", x.dateFilter),
		validate.Elements("DataRequirement", "sort", x.sort),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *DataRequirement) ToBuilder() *DataRequirementBuilder {
	return &DataRequirementBuilder{
		id:          x.id,
		extension:   slices.Clone(x.extension),
		typ:         x.typ,
		profile:     slices.Clone(x.profile),
		subject:     x.subject,
		mustSupport: slices.Clone(x.mustSupport),
		codeFilter:  slices.Clone(x.codeFilter),
		dateFilter:  slices.Clone(x.dateFilter),
		limit:       x.limit,
		sort:        slices.Clone(x.sort),
		opts:        x.opts,
	}
}

// DataRequirementBuilder builds DataRequirement values.
type DataRequirementBuilder struct {
	id          string
	extension   []*Extension
	typ         *Code
	profile     []*Canonical
	subject     Element
	mustSupport []*String
	codeFilter  []*DataRequirementCodeFilter
	dateFilter  []*DataRequirementDateFilter
	limit       *PositiveInt
	sort        []*DataRequirementSort
	opts        *fhirmodel.Options
}

// NewDataRequirementBuilder returns an empty builder.
func NewDataRequirementBuilder() *DataRequirementBuilder {
	return &DataRequirementBuilder{}
}

// ID sets the id.
func (b *DataRequirementBuilder) ID(v string) *DataRequirementBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *DataRequirementBuilder) Extension(values ...*Extension) *DataRequirementBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *DataRequirementBuilder) SetExtension(values []*Extension) *DataRequirementBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Type sets the type.
func (b *DataRequirementBuilder) Type(v *Code) *DataRequirementBuilder {
	b.typ = v
	return b
}

// Profile appends values to profile.
func (b *DataRequirementBuilder) Profile(values ...*Canonical) *DataRequirementBuilder {
	b.profile = append(b.profile, values...)
	return b
}

// SetProfile replaces profile with a copy of values.
func (b *DataRequirementBuilder) SetProfile(values []*Canonical) *DataRequirementBuilder {
	b.profile = slices.Clone(values)
	return b
}

// Subject sets subject[x]. A typed nil clears it.
func (b *DataRequirementBuilder) Subject(v Element) *DataRequirementBuilder {
	b.subject = OrNil(v)
	return b
}

// MustSupport appends values to must support.
func (b *DataRequirementBuilder) MustSupport(values ...*String) *DataRequirementBuilder {
	b.mustSupport = append(b.mustSupport, values...)
	return b
}

// SetMustSupport replaces must support with a copy of values.
func (b *DataRequirementBuilder) SetMustSupport(values []*String) *DataRequirementBuilder {
	b.mustSupport = slices.Clone(values)
	return b
}

// CodeFilter appends values to code filter.
func (b *DataRequirementBuilder) CodeFilter(values ...*DataRequirementCodeFilter) *DataRequirementBuilder {
	b.codeFilter = append(b.codeFilter, values...)
	return b
}

// SetCodeFilter replaces code filter with a copy of values.
func (b *DataRequirementBuilder) SetCodeFilter(values []*DataRequirementCodeFilter) *DataRequirementBuilder {
	b.codeFilter = slices.Clone(values)
	return b
}

// DateFilter appends values to date filter.
func (b *DataRequirementBuilder) DateFilter(values ...*DataRequirementDateFilter) *DataRequirementBuilder {
	b.dateFilter = append(b.dateFilter, values...)
	return b
}

// SetDateFilter replaces date filter with a copy of values.
func (b *DataRequirementBuilder) SetDateFilter(values []*DataRequirementDateFilter) *DataRequirementBuilder {
	b.dateFilter = slices.Clone(values)
	return b
}

// Limit sets the limit.
func (b *DataRequirementBuilder) Limit(v *PositiveInt) *DataRequirementBuilder {
	b.limit = v
	return b
}

// Sort appends values to sort.
func (b *DataRequirementBuilder) Sort(values ...*DataRequirementSort) *DataRequirementBuilder {
	b.sort = append(b.sort, values...)
	return b
}

// SetSort replaces sort with a copy of values.
func (b *DataRequirementBuilder) SetSort(values []*DataRequirementSort) *DataRequirementBuilder {
	b.sort = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable DataRequirement. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *DataRequirementBuilder) Build() (*DataRequirement, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *DataRequirementBuilder) BuildWith(opts ...fhirmodel.Option) (*DataRequirement, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *DataRequirementBuilder) build(o *fhirmodel.Options) (*DataRequirement, error) {
	x := &DataRequirement{
		ElementBase: NewElementBase(b.id, b.extension),
		typ:         b.typ,
		profile:     slices.Clone(b.profile),
		subject:     b.subject,
		mustSupport: slices.Clone(b.mustSupport),
		codeFilter:  slices.Clone(b.codeFilter),
		dateFilter:  slices.Clone(b.dateFilter),
		limit:       b.limit,
		sort:        slices.Clone(b.sort),
		opts:        o,
	}
	if err := validate.Run("DataRequirement", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// DataRequirementCodeFilter filters data by code.
type DataRequirementCodeFilter struct {
	ElementBase
	path        *String
	searchParam *String
	valueSet    *Canonical
	code        []*Coding
	opts        *fhirmodel.Options
	memo        hashcode.Cell
}

// TypeName returns "DataRequirement.CodeFilter".
func (x *DataRequirementCodeFilter) TypeName() string { return "DataRequirement.CodeFilter" }

// Path returns the path, or nil when absent.
func (x *DataRequirementCodeFilter) Path() *String { return x.path }

// SearchParam returns the search param, or nil when absent.
func (x *DataRequirementCodeFilter) SearchParam() *String { return x.searchParam }

// ValueSet returns the value set, or nil when absent.
func (x *DataRequirementCodeFilter) ValueSet() *Canonical { return x.valueSet }

// Code returns a copy of the code list.
func (x *DataRequirementCodeFilter) Code() []*Coding { return slices.Clone(x.code) }

// Accept visits x and then its fields in declaration order.
func (x *DataRequirementCodeFilter) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "path", x.path)
		visit.Child(v, "searchParam", x.searchParam)
		visit.Child(v, "valueSet", x.valueSet)
		visit.List(v, "code", x.code)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *DataRequirementCodeFilter) Equal(other *DataRequirementCodeFilter) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.path.Equal(other.path) &&
		x.searchParam.Equal(other.searchParam) &&
		x.valueSet.Equal(other.valueSet) &&
		slices.EqualFunc(x.code, other.code, (*Coding).Equal)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *DataRequirementCodeFilter) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("DataRequirement.CodeFilter")
		x.HashBase(h)
		hashcode.Field(h, x.path)
		hashcode.Field(h, x.searchParam)
		hashcode.Field(h, x.valueSet)
		hashcode.List(h, x.code)
		return h.Sum64()
	})
}

func (x *DataRequirementCodeFilter) checks() []error {
	return []error{
		x.ValidateBase("DataRequirement.CodeFilter"),
		validate.Elements("DataRequirement.CodeFilter", "code", x.code),
		validate.HasChildren("DataRequirement.CodeFilter", x.HasContentBase() ||
			x.path != nil ||
			x.searchParam != nil ||
			x.valueSet != nil ||
			len(x.code) > 0),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *DataRequirementCodeFilter) ToBuilder() *DataRequirementCodeFilterBuilder {
	return &DataRequirementCodeFilterBuilder{
		id:          x.id,
		extension:   slices.Clone(x.extension),
		path:        x.path,
		searchParam: x.searchParam,
		valueSet:    x.valueSet,
		code:        slices.Clone(x.code),
		opts:        x.opts,
	}
}

// DataRequirementCodeFilterBuilder builds DataRequirementCodeFilter values.
type DataRequirementCodeFilterBuilder struct {
	id          string
	extension   []*Extension
	path        *String
	searchParam *String
	valueSet    *Canonical
	code        []*Coding
	opts        *fhirmodel.Options
}

// NewDataRequirementCodeFilterBuilder returns an empty builder.
func NewDataRequirementCodeFilterBuilder() *DataRequirementCodeFilterBuilder {
	return &DataRequirementCodeFilterBuilder{}
}

// ID sets the id.
func (b *DataRequirementCodeFilterBuilder) ID(v string) *DataRequirementCodeFilterBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *DataRequirementCodeFilterBuilder) Extension(values ...*Extension) *DataRequirementCodeFilterBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *DataRequirementCodeFilterBuilder) SetExtension(values []*Extension) *DataRequirementCodeFilterBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Path sets the path.
func (b *DataRequirementCodeFilterBuilder) Path(v *String) *DataRequirementCodeFilterBuilder {
	b.path = v
	return b
}

// SearchParam sets the search param.
func (b *DataRequirementCodeFilterBuilder) SearchParam(v *String) *DataRequirementCodeFilterBuilder {
	b.searchParam = v
	return b
}

// ValueSet sets the value set.
func (b *DataRequirementCodeFilterBuilder) ValueSet(v *Canonical) *DataRequirementCodeFilterBuilder {
	b.valueSet = v
	return b
}

// Code appends values to code.
func (b *DataRequirementCodeFilterBuilder) Code(values ...*Coding) *DataRequirementCodeFilterBuilder {
	b.code = append(b.code, values...)
	return b
}

// SetCode replaces code with a copy of values.
func (b *DataRequirementCodeFilterBuilder) SetCode(values []*Coding) *DataRequirementCodeFilterBuilder {
	b.code = slices.Clone(values)
	return b
}

// Build validates the fields and returns an immutable DataRequirementCodeFilter. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *DataRequirementCodeFilterBuilder) Build() (*DataRequirementCodeFilter, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *DataRequirementCodeFilterBuilder) BuildWith(opts ...fhirmodel.Option) (*DataRequirementCodeFilter, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *DataRequirementCodeFilterBuilder) build(o *fhirmodel.Options) (*DataRequirementCodeFilter, error) {
	x := &DataRequirementCodeFilter{
		ElementBase: NewElementBase(b.id, b.extension),
		path:        b.path,
		searchParam: b.searchParam,
		valueSet:    b.valueSet,
		code:        slices.Clone(b.code),
		opts:        o,
	}
	if err := validate.Run("DataRequirement.CodeFilter", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// DataRequirementDateFilter filters data by date.
type DataRequirementDateFilter struct {
	ElementBase
	path        *String
	searchParam *String
	value       Element
	opts        *fhirmodel.Options
	memo        hashcode.Cell
}

// TypeName returns "DataRequirement.DateFilter".
func (x *DataRequirementDateFilter) TypeName() string { return "DataRequirement.DateFilter" }

// Path returns the path, or nil when absent.
func (x *DataRequirementDateFilter) Path() *String { return x.path }

// SearchParam returns the search param, or nil when absent.
func (x *DataRequirementDateFilter) SearchParam() *String { return x.searchParam }

// Value returns value[x]: dateTime, Period or Duration.
func (x *DataRequirementDateFilter) Value() Element { return x.value }

// Accept visits x and then its fields in declaration order.
func (x *DataRequirementDateFilter) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "path", x.path)
		visit.Child(v, "searchParam", x.searchParam)
		visit.Child(v, "value", x.value)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *DataRequirementDateFilter) Equal(other *DataRequirementDateFilter) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.path.Equal(other.path) &&
		x.searchParam.Equal(other.searchParam) &&
		EqualElements(x.value, other.value)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *DataRequirementDateFilter) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("DataRequirement.DateFilter")
		x.HashBase(h)
		hashcode.Field(h, x.path)
		hashcode.Field(h, x.searchParam)
		hashcode.Field(h, x.value)
		return h.Sum64()
	})
}

func (x *DataRequirementDateFilter) checks() []error {
	return []error{
		x.ValidateBase("DataRequirement.DateFilter"),
		validate.Choice("DataRequirement.DateFilter", "value", x.value, "dateTime", "Period", "Duration"),
		validate.HasChildren("DataRequirement.DateFilter", x.HasContentBase() ||
			x.path != nil ||
			x.searchParam != nil ||
			x.value != nil),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *DataRequirementDateFilter) ToBuilder() *DataRequirementDateFilterBuilder {
	return &DataRequirementDateFilterBuilder{
		id:          x.id,
		extension:   slices.Clone(x.extension),
		path:        x.path,
		searchParam: x.searchParam,
		value:       x.value,
		opts:        x.opts,
	}
}

// DataRequirementDateFilterBuilder builds DataRequirementDateFilter values.
type DataRequirementDateFilterBuilder struct {
	id          string
	extension   []*Extension
	path        *String
	searchParam *String
	value       Element
	opts        *fhirmodel.Options
}

// NewDataRequirementDateFilterBuilder returns an empty builder.
func NewDataRequirementDateFilterBuilder() *DataRequirementDateFilterBuilder {
	return &DataRequirementDateFilterBuilder{}
}

// ID sets the id.
func (b *DataRequirementDateFilterBuilder) ID(v string) *DataRequirementDateFilterBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *DataRequirementDateFilterBuilder) Extension(values ...*Extension) *DataRequirementDateFilterBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *DataRequirementDateFilterBuilder) SetExtension(values []*Extension) *DataRequirementDateFilterBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Path sets the path.
func (b *DataRequirementDateFilterBuilder) Path(v *String) *DataRequirementDateFilterBuilder {
	b.path = v
	return b
}

// SearchParam sets the search param.
func (b *DataRequirementDateFilterBuilder) SearchParam(v *String) *DataRequirementDateFilterBuilder {
	b.searchParam = v
	return b
}

// Value sets value[x]. A typed nil clears it.
func (b *DataRequirementDateFilterBuilder) Value(v Element) *DataRequirementDateFilterBuilder {
	b.value = OrNil(v)
	return b
}

// Build validates the fields and returns an immutable DataRequirementDateFilter. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *DataRequirementDateFilterBuilder) Build() (*DataRequirementDateFilter, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *DataRequirementDateFilterBuilder) BuildWith(opts ...fhirmodel.Option) (*DataRequirementDateFilter, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *DataRequirementDateFilterBuilder) build(o *fhirmodel.Options) (*DataRequirementDateFilter, error) {
	x := &DataRequirementDateFilter{
		ElementBase: NewElementBase(b.id, b.extension),
		path:        b.path,
		searchParam: b.searchParam,
		value:       b.value,
		opts:        o,
	}
	if err := validate.Run("DataRequirement.DateFilter", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}

// DataRequirementSort orders the results.
type DataRequirementSort struct {
	ElementBase
	path      *String
	direction *Code
	opts      *fhirmodel.Options
	memo      hashcode.Cell
}

// TypeName returns "DataRequirement.Sort".
func (x *DataRequirementSort) TypeName() string { return "DataRequirement.Sort" }

// Path returns the path. It is never nil on a built value.
func (x *DataRequirementSort) Path() *String { return x.path }

// Direction returns the direction code, drawn from SortDirection.
func (x *DataRequirementSort) Direction() *Code { return x.direction }

// Accept visits x and then its fields in declaration order.
func (x *DataRequirementSort) Accept(name string, index int, v visit.Visitor) {
	if !v.PreVisit(x) {
		return
	}
	v.VisitStart(name, index, x)
	if v.Visit(name, index, x) {
		x.AcceptBase(v)
		visit.Child(v, "path", x.path)
		visit.Child(v, "direction", x.direction)
	}
	v.VisitEnd(name, index, x)
	v.PostVisit(x)
}

// Equal reports whether x and other have equal fields.
func (x *DataRequirementSort) Equal(other *DataRequirementSort) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.EqualBase(&other.ElementBase) &&
		x.path.Equal(other.path) &&
		x.direction.Equal(other.direction)
}

// Hash returns a hash consistent with Equal. It is computed once per value.
func (x *DataRequirementSort) Hash() uint64 {
	if x == nil {
		return 0
	}
	return x.memo.Get(func() uint64 {
		h := hashcode.New("DataRequirement.Sort")
		x.HashBase(h)
		hashcode.Field(h, x.path)
		hashcode.Field(h, x.direction)
		return h.Sum64()
	})
}

func (x *DataRequirementSort) checks() []error {
	return []error{
		x.ValidateBase("DataRequirement.Sort"),
		validate.Required("DataRequirement.Sort", "path", x.path),
		validate.Required("DataRequirement.Sort", "direction", x.direction),
		CheckCode("DataRequirement.Sort", "direction", x.direction, SortDirectionValues),
	}
}

// ToBuilder returns a builder seeded with x.
func (x *DataRequirementSort) ToBuilder() *DataRequirementSortBuilder {
	return &DataRequirementSortBuilder{
		id:        x.id,
		extension: slices.Clone(x.extension),
		path:      x.path,
		direction: x.direction,
		opts:      x.opts,
	}
}

// DataRequirementSortBuilder builds DataRequirementSort values.
type DataRequirementSortBuilder struct {
	id        string
	extension []*Extension
	path      *String
	direction *Code
	opts      *fhirmodel.Options
}

// NewDataRequirementSortBuilder returns an empty builder.
func NewDataRequirementSortBuilder() *DataRequirementSortBuilder {
	return &DataRequirementSortBuilder{}
}

// ID sets the id.
func (b *DataRequirementSortBuilder) ID(v string) *DataRequirementSortBuilder {
	b.id = v
	return b
}

// Extension appends values to extension.
func (b *DataRequirementSortBuilder) Extension(values ...*Extension) *DataRequirementSortBuilder {
	b.extension = append(b.extension, values...)
	return b
}

// SetExtension replaces extension with a copy of values.
func (b *DataRequirementSortBuilder) SetExtension(values []*Extension) *DataRequirementSortBuilder {
	b.extension = slices.Clone(values)
	return b
}

// Path sets the path.
func (b *DataRequirementSortBuilder) Path(v *String) *DataRequirementSortBuilder {
	b.path = v
	return b
}

// Direction sets the direction.
func (b *DataRequirementSortBuilder) Direction(v *Code) *DataRequirementSortBuilder {
	b.direction = v
	return b
}

// Build validates the fields and returns an immutable DataRequirementSort. A builder
// returned by ToBuilder keeps the options of the value it came from.
func (b *DataRequirementSortBuilder) Build() (*DataRequirementSort, error) {
	return b.build(b.opts)
}

// BuildWith is Build with opts switching the optional checks.
func (b *DataRequirementSortBuilder) BuildWith(opts ...fhirmodel.Option) (*DataRequirementSort, error) {
	return b.build(fhirmodel.Apply(opts...))
}

func (b *DataRequirementSortBuilder) build(o *fhirmodel.Options) (*DataRequirementSort, error) {
	x := &DataRequirementSort{
		ElementBase: NewElementBase(b.id, b.extension),
		path:        b.path,
		direction:   b.direction,
		opts:        o,
	}
	if err := validate.Run("DataRequirement.Sort", o, x.checks); err != nil {
		return nil, err
	}
	return x, nil
}
