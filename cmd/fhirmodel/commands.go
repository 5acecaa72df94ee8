package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/internal/sample"
	"github.com/gofhir/model/schema"
	"github.com/gofhir/model/visit"
)

var kinds = map[string]schema.Kind{
	"primitive": schema.KindPrimitive,
	"complex":   schema.KindComplex,
	"backbone":  schema.KindBackbone,
	"resource":  schema.KindResource,
}

func (a *app) typesCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the types of the model",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			names := schema.Types()
			if kind != "" {
				k, ok := kinds[kind]
				if !ok {
					return fmt.Errorf("unknown kind %q", kind)
				}
				names = schema.OfKind(k)
			}
			return a.render(names, func(w io.Writer) error {
				for _, n := range names {
					if _, err := fmt.Fprintln(w, n); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only list types of this kind: primitive, complex, backbone, resource")
	return cmd
}

type fieldInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Cardinality string   `json:"cardinality" yaml:"cardinality"`
	Types       []string `json:"types" yaml:"types"`
	Targets     []string `json:"targets,omitempty" yaml:"targets,omitempty"`
	Binding     string   `json:"binding,omitempty" yaml:"binding,omitempty"`
}

type typeInfo struct {
	Name   string      `json:"name" yaml:"name"`
	Path   string      `json:"path" yaml:"path"`
	Kind   string      `json:"kind" yaml:"kind"`
	Base   string      `json:"base,omitempty" yaml:"base,omitempty"`
	URL    string      `json:"url,omitempty" yaml:"url,omitempty"`
	Fields []fieldInfo `json:"fields" yaml:"fields"`
}

func describe(name string) (typeInfo, error) {
	t, ok := schema.Lookup(name)
	if !ok {
		return typeInfo{}, fmt.Errorf("unknown type %q", name)
	}
	info := typeInfo{Name: t.Name, Path: t.Path, Kind: string(t.Kind), Base: t.Base}
	if t.Kind != schema.KindBackbone {
		info.URL = fhirmodel.Version.StructureDefinitionURL(t.Name)
	}
	for _, f := range schema.AllFields(name) {
		info.Fields = append(info.Fields, fieldInfo{
			Name:        f.ElementName(),
			Cardinality: f.Cardinality(),
			Types:       f.Types,
			Targets:     f.Targets,
			Binding:     f.Binding,
		})
	}
	return info, nil
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <type>",
		Short: "Show the elements of a type in declaration order",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			info, err := describe(args[0])
			if err != nil {
				return err
			}
			return a.render(info, func(w io.Writer) error {
				fmt.Fprintf(w, "%s (%s", info.Name, info.Kind)
				if info.Base != "" {
					fmt.Fprintf(w, ", %s", info.Base)
				}
				fmt.Fprintln(w, ")")

				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, f := range info.Fields {
					types := strings.Join(f.Types, " | ")
					if len(f.Targets) > 0 {
						types += " (" + strings.Join(f.Targets, " | ") + ")"
					}
					if f.Binding != "" {
						types += " {" + f.Binding + "}"
					}
					fmt.Fprintf(tw, "  %s\t%s\t%s\n", info.Path+"."+f.Name, f.Cardinality, types)
				}
				return tw.Flush()
			})
		},
	}
}

type pathValue struct {
	Path  string `json:"path" yaml:"path"`
	Value string `json:"value" yaml:"value"`
}

// valueCollector records the raw values of a tree with their paths.
type valueCollector struct {
	visit.DefaultVisitor
	pv     *visit.PathVisitor
	nodes  []visit.Node
	values []pathValue
}

func (c *valueCollector) VisitStart(_ string, _ int, n visit.Node) {
	c.nodes = append(c.nodes, n)
}

func (c *valueCollector) VisitEnd(string, int, visit.Node) {
	c.nodes = c.nodes[:len(c.nodes)-1]
}

func (c *valueCollector) VisitValue(name string, value any) {
	s := fmt.Sprint(value)
	if p, ok := c.nodes[len(c.nodes)-1].(datatype.Primitive); ok && name == "value" {
		s = p.ValueString()
	} else if b, ok := value.([]byte); ok {
		s = base64.StdEncoding.EncodeToString(b)
	}
	c.values = append(c.values, pathValue{Path: c.pv.ValuePath(name), Value: s})
}

func collectValues(n visit.Node) []pathValue {
	c := &valueCollector{}
	c.pv = visit.NewPathVisitor(c)
	defer c.pv.Release()
	visit.Traverse(n, c.pv)
	return c.values
}

func exampleOf(name string, opts ...fhirmodel.Option) (visit.Node, error) {
	samples := slices.Concat(sample.DatatypeSamples(), sample.ResourceSamples())
	i := slices.IndexFunc(samples, func(s sample.Sample) bool { return s.Type == name })
	if i < 0 {
		return nil, fmt.Errorf("unknown type %q", name)
	}
	return samples[i].Build(opts...)
}

func (a *app) exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example <type>",
		Short: "Print every value of a fully populated instance with its path",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := exampleOf(args[0], a.cfg.Options()...)
			if err != nil {
				return err
			}
			values := collectValues(n)
			return a.render(values, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, v := range values {
					fmt.Fprintf(tw, "%s\t%s\n", v.Path, v.Value)
				}
				return tw.Flush()
			})
		},
	}
}
