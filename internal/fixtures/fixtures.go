// Package fixtures decodes YAML documents shaped like the typed
// program representation into *typedast.Program values, for use by
// tests and the demo CLI. It is not a front end: no lexing or parsing
// of real ZoKrates surface syntax happens here, only a direct encoding
// of the already-typed, already-unrolled tree the propagation pass
// consumes.
package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"zokrates/internal/field"
	"zokrates/internal/typedast"
)

// document is the root shape of a fixture file.
type document struct {
	Functions []functionDoc `yaml:"functions"`
}

type functionDoc struct {
	Name       string        `yaml:"name"`
	Params     []variableDoc `yaml:"params"`
	Returns    []string      `yaml:"returns"`
	Statements []yaml.Node   `yaml:"statements"`
}

type variableDoc struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// Load reads and decodes a fixture file at path.
func Load(path string) (*typedast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a fixture document into a typed program.
func Decode(data []byte) (*typedast.Program, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}

	functions := make([]*typedast.Function, 0, len(doc.Functions))
	for _, fd := range doc.Functions {
		fn, err := decodeFunction(fd)
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", fd.Name, err)
		}
		functions = append(functions, fn)
	}
	return &typedast.Program{Functions: functions}, nil
}

func decodeFunction(fd functionDoc) (*typedast.Function, error) {
	params := make([]typedast.Variable, len(fd.Params))
	for i, p := range fd.Params {
		v, err := decodeVariable(p)
		if err != nil {
			return nil, err
		}
		params[i] = v
	}

	returnKinds := make([]typedast.VariableKind, len(fd.Returns))
	for i, r := range fd.Returns {
		k, err := decodeKind(r)
		if err != nil {
			return nil, err
		}
		returnKinds[i] = k
	}

	statements := make([]typedast.Stmt, len(fd.Statements))
	for i := range fd.Statements {
		s, err := decodeStmt(&fd.Statements[i])
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		statements[i] = s
	}

	return &typedast.Function{
		Name:        fd.Name,
		Params:      params,
		ReturnKinds: returnKinds,
		Statements:  statements,
	}, nil
}

func decodeKind(s string) (typedast.VariableKind, error) {
	switch s {
	case "field":
		return typedast.FieldKind, nil
	case "bool":
		return typedast.BoolKind, nil
	case "array":
		return typedast.ArrayKind, nil
	default:
		return 0, fmt.Errorf("unrecognized kind %q", s)
	}
}

func decodeVariable(v variableDoc) (typedast.Variable, error) {
	switch v.Kind {
	case "field":
		return typedast.FieldVariable(v.Name), nil
	case "bool":
		return typedast.BoolVariable(v.Name), nil
	case "array":
		return typedast.ArrayVariable(v.Name, v.Size), nil
	default:
		return typedast.Variable{}, fmt.Errorf("unrecognized variable kind %q", v.Kind)
	}
}

// soleKey returns the single mapping key of node along with its value,
// erroring if node is not a one-entry mapping. Every expression,
// statement and assignee node in a fixture is a tagged one-key mapping,
// e.g. `binary: {...}` or `number: 5`.
func soleKey(node *yaml.Node) (string, *yaml.Node, error) {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return "", nil, fmt.Errorf("expected a single-key mapping, got %v", node.Tag)
	}
	return node.Content[0].Value, node.Content[1], nil
}
