package fixtures

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"zokrates/internal/typedast"
)

func decodeStmt(node *yaml.Node) (typedast.Stmt, error) {
	key, value, err := soleKey(node)
	if err != nil {
		return nil, err
	}

	switch key {
	case "decl":
		var v variableDoc
		if err := value.Decode(&v); err != nil {
			return nil, err
		}
		variable, err := decodeVariable(v)
		if err != nil {
			return nil, err
		}
		return &typedast.DeclStmt{Var: variable}, nil

	case "def":
		var raw struct {
			Assignee yaml.Node `yaml:"assignee"`
			Expr     yaml.Node `yaml:"expr"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		assignee, err := decodeAssignee(&raw.Assignee)
		if err != nil {
			return nil, fmt.Errorf("assignee: %w", err)
		}
		expr, err := decodeExpr(&raw.Expr)
		if err != nil {
			return nil, fmt.Errorf("expr: %w", err)
		}
		return &typedast.DefStmt{Assignee: assignee, Expr: expr}, nil

	case "assert":
		var raw struct {
			Left  yaml.Node `yaml:"left"`
			Right yaml.Node `yaml:"right"`
		}
		if err := value.Decode(&raw); err != nil {
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
		return &typedast.CondStmt{Left: left, Right: right}, nil

	case "return":
		var raw struct {
			Values []yaml.Node `yaml:"values"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		values := make([]typedast.Expr, len(raw.Values))
		for i := range raw.Values {
			e, err := decodeExpr(&raw.Values[i])
			if err != nil {
				return nil, err
			}
			values[i] = e
		}
		return &typedast.ReturnStmt{Values: values}, nil

	case "multidef":
		var raw struct {
			Vars []variableDoc `yaml:"vars"`
			Call struct {
				Func        string   `yaml:"func"`
				Args        []yaml.Node `yaml:"args"`
				ResultKinds []string `yaml:"resultKinds"`
			} `yaml:"call"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		vars := make([]typedast.Variable, len(raw.Vars))
		for i, v := range raw.Vars {
			variable, err := decodeVariable(v)
			if err != nil {
				return nil, err
			}
			vars[i] = variable
		}
		args := make([]typedast.Expr, len(raw.Call.Args))
		for i := range raw.Call.Args {
			a, err := decodeExpr(&raw.Call.Args[i])
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		resultKinds := make([]typedast.VariableKind, len(raw.Call.ResultKinds))
		for i, k := range raw.Call.ResultKinds {
			dk, err := decodeKind(k)
			if err != nil {
				return nil, err
			}
			resultKinds[i] = dk
		}
		return &typedast.MultiDefStmt{
			Vars: vars,
			List: &typedast.CallList{FuncID: raw.Call.Func, Args: args, ResultKinds: resultKinds},
		}, nil

	case "for":
		var raw struct {
			Var   variableDoc `yaml:"var"`
			Start yaml.Node   `yaml:"start"`
			End   yaml.Node   `yaml:"end"`
			Body  []yaml.Node `yaml:"body"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		variable, err := decodeVariable(raw.Var)
		if err != nil {
			return nil, err
		}
		start, err := decodeFieldExpr(&raw.Start)
		if err != nil {
			return nil, err
		}
		end, err := decodeFieldExpr(&raw.End)
		if err != nil {
			return nil, err
		}
		body := make([]typedast.Stmt, len(raw.Body))
		for i := range raw.Body {
			s, err := decodeStmt(&raw.Body[i])
			if err != nil {
				return nil, err
			}
			body[i] = s
		}
		return &typedast.ForStmt{Var: variable, Start: start, End: end, Body: body}, nil

	default:
		return nil, fmt.Errorf("unrecognized statement tag %q", key)
	}
}

func decodeAssignee(node *yaml.Node) (typedast.Assignee, error) {
	key, value, err := soleKey(node)
	if err != nil {
		return nil, err
	}

	switch key {
	case "var":
		var v variableDoc
		if err := value.Decode(&v); err != nil {
			return nil, err
		}
		variable, err := decodeVariable(v)
		if err != nil {
			return nil, err
		}
		return &typedast.IdentAssignee{Var: variable}, nil

	case "elem":
		var raw struct {
			Base  yaml.Node `yaml:"base"`
			Index yaml.Node `yaml:"index"`
		}
		if err := value.Decode(&raw); err != nil {
			return nil, err
		}
		base, err := decodeAssignee(&raw.Base)
		if err != nil {
			return nil, err
		}
		index, err := decodeFieldExpr(&raw.Index)
		if err != nil {
			return nil, err
		}
		return &typedast.ElemAssignee{Base: base, Index: index}, nil

	default:
		return nil, fmt.Errorf("unrecognized assignee tag %q", key)
	}
}
