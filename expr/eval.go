package expr

import (
	"fmt"
	"reflect"
	"time"

	"golang.org/x/exp/constraints"
)

// evalNode interprets the tree with arg bound to param. Every failure mode
// here is an authoring defect in the tree, not a data condition, so errors
// surface unwrapped and evaluation is never retried.
func evalNode(node Node, param *ParameterNode, arg any) (any, error) {
	switch n := node.(type) {
	case *ParameterNode:
		if n != param {
			return nil, fmt.Errorf("expr: %w: %s", ErrUnboundParameter, n)
		}
		return arg, nil
	case *ConstantNode:
		return n.value, nil
	case *MemberNode:
		target, err := evalNode(n.target, param, arg)
		if err != nil {
			return nil, err
		}
		return member(target, n.name)
	case *UnaryNode:
		operand, err := evalNode(n.operand, param, arg)
		if err != nil {
			return nil, err
		}
		b, ok := operand.(bool)
		if !ok {
			return nil, &TypeError{Op: n.op.String(), Operands: []any{operand}}
		}
		if n.op != Not {
			return nil, fmt.Errorf("expr: unknown unary operator %s", n.op)
		}
		return !b, nil
	case *BinaryNode:
		return evalBinary(n, param, arg)
	default:
		return nil, fmt.Errorf("expr: unknown node %T", node)
	}
}

func evalBinary(node *BinaryNode, param *ParameterNode, arg any) (any, error) {
	left, err := evalNode(node.left, param, arg)
	if err != nil {
		return nil, err
	}

	if node.op == And || node.op == Or {
		lb, ok := left.(bool)
		if !ok {
			return nil, &TypeError{Op: node.op.String(), Operands: []any{left}}
		}
		// short circuit without touching the right subtree
		if node.op == And && !lb {
			return false, nil
		}
		if node.op == Or && lb {
			return true, nil
		}
		right, err := evalNode(node.right, param, arg)
		if err != nil {
			return nil, err
		}
		rb, ok := right.(bool)
		if !ok {
			return nil, &TypeError{Op: node.op.String(), Operands: []any{right}}
		}
		return rb, nil
	}

	right, err := evalNode(node.right, param, arg)
	if err != nil {
		return nil, err
	}

	switch node.op {
	case Equal:
		return equalValues(left, right), nil
	case NotEqual:
		return !equalValues(left, right), nil
	case GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual:
		c, ok := compareValues(left, right)
		if !ok {
			return nil, &TypeError{Op: node.op.String(), Operands: []any{left, right}}
		}
		switch node.op {
		case GreaterThan:
			return c > 0, nil
		case GreaterThanOrEqual:
			return c >= 0, nil
		case LessThan:
			return c < 0, nil
		default:
			return c <= 0, nil
		}
	default:
		return nil, fmt.Errorf("expr: unknown binary operator %s", node.op)
	}
}

// member resolves a field read against the concrete target value. Pointers
// and interfaces are dereferenced first; a nil on the way, a non struct
// target and an unknown or unexported field all fail the access.
func member(target any, name string) (any, error) {
	v := reflect.ValueOf(target)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, &MemberError{Member: name, Target: target}
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, &MemberError{Member: name, Target: target}
	}
	field := v.FieldByName(name)
	if !field.IsValid() || !field.CanInterface() {
		return nil, &MemberError{Member: name, Target: target}
	}
	return field.Interface(), nil
}

// equalValues reports value equality: orderable values are equal when they
// order the same, everything else falls back to deep equality.
func equalValues(left, right any) bool {
	if c, ok := compareValues(left, right); ok {
		return c == 0
	}
	return reflect.DeepEqual(left, right)
}

// compareValues orders two scalar values, reporting their order and whether
// the pair is orderable at all. Numeric kinds order across the int, uint and
// float families, strings order lexicographically and time.Time orders
// chronologically.
func compareValues(left, right any) (int, bool) {
	if lt, ok := left.(time.Time); ok {
		rt, ok := right.(time.Time)
		if !ok {
			return 0, false
		}
		switch {
		case lt.Before(rt):
			return -1, true
		case lt.After(rt):
			return 1, true
		default:
			return 0, true
		}
	}

	lv := reflect.ValueOf(left)
	rv := reflect.ValueOf(right)
	switch {
	case isInt(lv) && isInt(rv):
		return compareOrdered(lv.Int(), rv.Int()), true
	case isInt(lv) && isUint(rv):
		if lv.Int() < 0 {
			return -1, true
		}
		return compareOrdered(uint64(lv.Int()), rv.Uint()), true
	case isUint(lv) && isInt(rv):
		if rv.Int() < 0 {
			return 1, true
		}
		return compareOrdered(lv.Uint(), uint64(rv.Int())), true
	case isUint(lv) && isUint(rv):
		return compareOrdered(lv.Uint(), rv.Uint()), true
	case isNumeric(lv) && isNumeric(rv):
		return compareOrdered(toFloat64(lv), toFloat64(rv)), true
	case lv.Kind() == reflect.String && rv.Kind() == reflect.String:
		return compareOrdered(lv.String(), rv.String()), true
	default:
		return 0, false
	}
}

func compareOrdered[N constraints.Ordered](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloat(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isNumeric(v reflect.Value) bool {
	return isInt(v) || isUint(v) || isFloat(v)
}

func toFloat64(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
