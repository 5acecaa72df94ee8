// Package datatype implements the FHIR R4 data types used by the resources
// of this module: the primitives, the general purpose complex types and the
// metadata types.
//
// Every type is immutable once built. Values are created with a builder:
//
//	coding, err := datatype.NewCodingBuilder().
//	    System(datatype.URIOf("http://loinc.org")).
//	    Code(datatype.CodeOf("8867-4")).
//	    Build()
//
// and changed by copying them into a new builder with ToBuilder. Build
// returns a *validate.Error naming the first field that is missing, empty,
// of the wrong choice type or outside its required value set.
//
// Choice elements (value[x]) are typed as Element. Narrow them with As:
//
//	if q, ok := datatype.As[*datatype.Quantity](ctx.Value()); ok { ... }
package datatype
