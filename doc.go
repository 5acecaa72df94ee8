// Package fhirmodel is an immutable object model for FHIR R4 resources.
//
// Every resource, backbone element and data type is a frozen value assembled
// by a fluent builder. Builders validate required elements, required
// repeating elements, choice[x] types and reference targets when Build is
// called; instances cannot be modified afterwards, only copied into a new
// builder with ToBuilder.
//
// # Quick Start
//
//	import (
//	    "github.com/gofhir/model/datatype"
//	    "github.com/gofhir/model/resource"
//	)
//
//	coverage, err := resource.NewCoverageBuilder().
//	    Status(datatype.CodeOf(resource.CoverageStatusActive)).
//	    Beneficiary(datatype.ReferenceTo("Patient/123")).
//	    Payor(datatype.ReferenceTo("Organization/456")).
//	    Build()
//	if err != nil {
//	    log.Fatal(err) // e.g. "Coverage.payor: 'payor' requires at least one element"
//	}
//
//	updated, err := coverage.ToBuilder().
//	    Network(datatype.StringOf("north")).
//	    Build()
//
// # Traversal
//
// Every node implements visit.Node. A visit.Visitor is offered a pre-visit
// gate, start/end notifications and a descend decision for each node, and the
// children are walked in FHIR element order:
//
//	visit.Walk(coverage, func(path string, n visit.Node) bool {
//	    fmt.Println(path) // Coverage, Coverage.status, Coverage.beneficiary, ...
//	    return true
//	})
//
// # Packages
//
//   - datatype: primitive and complex data types, Element and Extension
//   - resource: the resources and their backbone elements
//   - visit: visitor interfaces, path tracking and function-based walking
//   - schema: field order, cardinality, choice types and reference targets per type
//   - convert: conversion to and from the github.com/gofhir/fhir/r4 structs
//   - pkg/validate: the construction error taxonomy
//
// # Options
//
// Required elements, list items, choice types and element content are
// always checked. Code and reference target checks are on by default and can
// be switched per build with functional options:
//
//	cov, err := resource.NewCoverageBuilder().
//	    // ...
//	    BuildWith(fhirmodel.LenientOptions()...)
//
// A builder returned by ToBuilder keeps the options of its source value, so
// a value built leniently can be copied and rebuilt under the same rules.
package fhirmodel
