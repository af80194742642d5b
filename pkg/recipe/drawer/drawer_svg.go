// Package drawer renders a recipe as a graph: the template data, the ordered
// step chain and the resulting columns, with variable nodes colored by role.
package drawer

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-recipe/pkg/recipe"
	"github.com/askiada/go-recipe/pkg/recipe/measure"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

const (
	dataNode   = "data"
	outputNode = "output"
)

// SVGDrawer is a drawer that creates an SVG-ready DOT file with the recipe
// graph.
type SVGDrawer struct {
	graph       graph.Graph[string, string]
	steps       map[string]struct{}
	svgFileName string
}

// NewSVGDrawer creates a new SVG drawer.
func NewSVGDrawer(svgFileName string) *SVGDrawer {
	return &SVGDrawer{
		svgFileName: svgFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
		steps:       make(map[string]struct{}),
	}
}

// DrawRecipe renders the whole recipe: the original variables hang off the
// data node, the steps form a chain, and every derived variable hangs off the
// output node.
func (d *SVGDrawer) DrawRecipe(rec *recipe.Recipe) error {
	err := d.AddStep(dataNode)
	if err != nil {
		return err
	}

	for _, variable := range rec.VarInfo() {
		err = d.AddVariable(dataNode, variable.Name, variable.Role)
		if err != nil {
			return err
		}
	}

	parent := dataNode
	for i, step := range rec.Steps() {
		name := recipe.StepName(i, step)

		err = d.AddStep(name)
		if err != nil {
			return err
		}
		err = d.AddLink(parent, name)
		if err != nil {
			return err
		}
		parent = name
	}

	err = d.AddStep(outputNode)
	if err != nil {
		return err
	}
	err = d.AddLink(parent, outputNode)
	if err != nil {
		return err
	}

	for _, variable := range rec.TermInfo() {
		if variable.Source != model.SourceDerived {
			continue
		}
		err = d.AddVariable(outputNode, variable.Name, variable.Role)
		if err != nil {
			return err
		}
	}

	return d.Draw()
}

// AddStep adds a step node to the recipe graph.
func (d *SVGDrawer) AddStep(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrap(err, "unable to add vertex")
	}

	d.steps[name] = struct{}{}

	return nil
}

// AddLink adds a link between parent and child steps.
func (d *SVGDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// AddVariable attaches a variable node to a step node. The node is filled with
// a color derived from the variable's role, so variables sharing a role share
// a color.
func (d *SVGDrawer) AddVariable(stepName, varName, role string) error {
	hex, err := roleColor(role)
	if err != nil {
		return err
	}

	err = d.graph.AddVertex(varName,
		graph.VertexAttribute("shape", "box"),
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("fillcolor", hex),
	)
	// A variable can legitimately appear twice, e.g. re-derived under the same
	// name with a different type.
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrapf(err, "unable to add variable %s", varName)
	}

	err = d.graph.AddEdge(stepName, varName, graph.EdgeAttribute("style", "dashed"))
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to link variable %s to %s", varName, stepName)
	}

	return nil
}

const maxRGB = 240

// roleColor maps a role tag to a stable pastel color. The unset role stays
// white.
func roleColor(role string) (string, error) {
	if role == "" {
		whiteColor, err := colors.RGB(255, 255, 255) //nolint
		if err != nil {
			return "", errors.Wrap(err, "unable to get colour")
		}

		return whiteColor.ToHEX().String(), nil
	}

	hash := fnv.New32a()
	_, _ = hash.Write([]byte(role))
	sum := hash.Sum32()

	red := uint8(sum % maxRGB)
	green := uint8((sum >> 8) % maxRGB)
	blue := uint8((sum >> 16) % maxRGB)

	roleColor, err := colors.RGB(red, green, blue) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return roleColor.ToHEX().String(), nil
}

// AddMeasure annotates every step node with its recorded training duration,
// colored from blue (fastest) to red (slowest).
func (d *SVGDrawer) AddMeasure(msr measure.Measure) error {
	all := msr.AllMetrics()

	sortedElapsed := make([]time.Duration, 0, len(all))
	for _, mt := range all {
		if mt.TotalDuration() == 0 {
			continue
		}
		sortedElapsed = append(sortedElapsed, mt.TotalDuration())
	}

	if len(sortedElapsed) == 0 {
		return nil
	}

	sort.Slice(sortedElapsed, func(i, j int) bool {
		return sortedElapsed[i] > sortedElapsed[j]
	})

	maxValue := sortedElapsed[0]
	minValue := sortedElapsed[len(sortedElapsed)-1]

	for name, mt := range all {
		if _, ok := d.steps[name]; !ok {
			continue
		}

		_, properties, err := d.graph.VertexWithProperties(name)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		properties.Attributes["xlabel"] = mt.AVGDuration().String()

		fraction := time.Duration(1)
		if maxValue > minValue {
			fraction = (mt.TotalDuration() - minValue) / (maxValue - minValue)
		}

		red := maxRGB * fraction
		blue := -maxRGB*fraction + maxRGB

		stepColor, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		properties.Attributes["color"] = stepColor.ToHEX().String()
	}

	return nil
}

// Draw creates a file with the recipe graph.
func (d *SVGDrawer) Draw() error {
	file, err := os.Create(d.svgFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.svgFileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.svgFileName)
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceWeight     int
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeWeight       int
	EdgeAttributes   map[string]string
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer) error {
	desc, err := generateDOT(g)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

func generateDOT[K comparable, T any](g graph.Graph[K, T]) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if g.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := g.AdjacencyMap()
	if err != nil {
		return desc, err
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := g.VertexWithProperties(vertex)
		if err != nil {
			return desc, err
		}

		htmlAttributes := make(map[string]string)

		if xlabel, ok := sourceProperties.Attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceProperties.Attributes, "xlabel")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency, edge := range adjacencies {
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*SVGDrawer)(nil)
