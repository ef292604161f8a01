package fixtures

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"zokrates/internal/field"
	"zokrates/internal/typedast"
)

func decodeExpr(node *yaml.Node) (typedast.Expr, error) {
	key, value, err := soleKey(node)
	if err != nil {
		return nil, err
	}

	switch key {
	case "number":
		el, err := decodeFieldLiteral(value)
		if err != nil {
			return nil, err
		}
		return &typedast.FieldNumber{Value: el}, nil

	case "bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return nil, err
		}
		return &typedast.BoolValue{Value: b}, nil

	case "ident":
		var raw struct {
			Kind string `yaml:"kind"`
			Name string `yaml:"name"`
			Size int    `yaml:"size"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		switch raw.Kind {
		case "field":
			return &typedast.FieldIdentifier{Name: raw.Name}, nil
		case "bool":
			return &typedast.BoolIdentifier{Name: raw.Name}, nil
		case "array":
			return &typedast.ArrayIdentifier{Name: raw.Name, Size: raw.Size}, nil
		default:
			return nil, fmt.Errorf("unrecognized identifier kind %q", raw.Kind)
		}

	case "binary":
		var raw struct {
			Op    string    `yaml:"op"`
			Left  yaml.Node `yaml:"left"`
			Right yaml.Node `yaml:"right"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		op, err := decodeBinOp(raw.Op)
		if err != nil {
			return nil, err
		}
		left, err := decodeFieldExpr(&raw.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeFieldExpr(&raw.Right)
		if err != nil {
			return nil, err
		}
		return &typedast.FieldBinary{Op: op, Left: left, Right: right}, nil

	case "compare":
		var raw struct {
			Op    string    `yaml:"op"`
			Left  yaml.Node `yaml:"left"`
			Right yaml.Node `yaml:"right"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		op, err := decodeCompareOp(raw.Op)
		if err != nil {
			return nil, err
		}
		left, err := decodeFieldExpr(&raw.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeFieldExpr(&raw.Right)
		if err != nil {
			return nil, err
		}
		return &typedast.BoolCompare{Op: op, Left: left, Right: right}, nil

	case "ifelse":
		var raw struct {
			Cond yaml.Node `yaml:"cond"`
			Then yaml.Node `yaml:"then"`
			Else yaml.Node `yaml:"else"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		cond, err := decodeBoolExpr(&raw.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeFieldExpr(&raw.Then)
		if err != nil {
			return nil, err
		}
		elseExpr, err := decodeFieldExpr(&raw.Else)
		if err != nil {
			return nil, err
		}
		return &typedast.FieldIfElse{Cond: cond, Then: then, Else: elseExpr}, nil

	case "call":
		var raw struct {
			Func string      `yaml:"func"`
			Args []yaml.Node `yaml:"args"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		args := make([]typedast.Expr, len(raw.Args))
		for i := range raw.Args {
			a, err := decodeExpr(&raw.Args[i])
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return &typedast.FieldCall{FuncID: raw.Func, Args: args}, nil

	case "select":
		var raw struct {
			Array yaml.Node `yaml:"array"`
			Index yaml.Node `yaml:"index"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		arr, err := decodeArrayExpr(&raw.Array)
		if err != nil {
			return nil, err
		}
		idx, err := decodeFieldExpr(&raw.Index)
		if err != nil {
			return nil, err
		}
		return &typedast.FieldSelect{Array: arr, Index: idx}, nil

	case "array":
		var raw struct {
			Size     int         `yaml:"size"`
			Elements []yaml.Node `yaml:"elements"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		elements := make([]typedast.FieldExpr, len(raw.Elements))
		for i := range raw.Elements {
			e, err := decodeFieldExpr(&raw.Elements[i])
			if err != nil {
				return nil, err
			}
			elements[i] = e
		}
		return &typedast.ArrayValue{Size: raw.Size, Elements: elements}, nil

	default:
		return nil, fmt.Errorf("unrecognized expression tag %q", key)
	}
}

func decodeFieldExpr(node *yaml.Node) (typedast.FieldExpr, error) {
	e, err := decodeExpr(node)
	if err != nil {
		return nil, err
	}
	fe, ok := e.(typedast.FieldExpr)
	if !ok {
		return nil, fmt.Errorf("expected a field-valued expression, got %T", e)
	}
	return fe, nil
}

func decodeBoolExpr(node *yaml.Node) (typedast.BoolExpr, error) {
	e, err := decodeExpr(node)
	if err != nil {
		return nil, err
	}
	be, ok := e.(typedast.BoolExpr)
	if !ok {
		return nil, fmt.Errorf("expected a boolean-valued expression, got %T", e)
	}
	return be, nil
}

func decodeArrayExpr(node *yaml.Node) (typedast.ArrayExpr, error) {
	e, err := decodeExpr(node)
	if err != nil {
		return nil, err
	}
	ae, ok := e.(typedast.ArrayExpr)
	if !ok {
		return nil, fmt.Errorf("expected an array-valued expression, got %T", e)
	}
	return ae, nil
}

// decodeFieldLiteral accepts either a YAML integer or a quoted decimal
// string, so fixtures can express field values too large for an int64.
func decodeFieldLiteral(node *yaml.Node) (field.Element, error) {
	switch node.Tag {
	case "!!int":
		n, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil {
			return field.Element{}, fmt.Errorf("field literal %q: %w", node.Value, err)
		}
		return field.FromInt64(n), nil
	default:
		return field.FromDecimalString(node.Value)
	}
}

func decodeBinOp(s string) (typedast.BinOp, error) {
	switch s {
	case "add":
		return typedast.OpAdd, nil
	case "sub":
		return typedast.OpSub, nil
	case "mul":
		return typedast.OpMul, nil
	case "div":
		return typedast.OpDiv, nil
	case "pow":
		return typedast.OpPow, nil
	default:
		return 0, fmt.Errorf("unrecognized binary operator %q", s)
	}
}

func decodeCompareOp(s string) (typedast.CompareOp, error) {
	switch s {
	case "eq":
		return typedast.OpEq, nil
	case "lt":
		return typedast.OpLt, nil
	case "le":
		return typedast.OpLe, nil
	case "gt":
		return typedast.OpGt, nil
	case "ge":
		return typedast.OpGe, nil
	default:
		return 0, fmt.Errorf("unrecognized comparison operator %q", s)
	}
}
