package templates

import (
	"fmt"
	"strings"
)

// CombineGen renders the Combine2..Combine{count} family for package glue,
// followed by Tuple3..Tuple{count} and their CombineUpdatables3..N.
// The output is meant to be passed through go/format before it is written.
func CombineGen(count int) string {
	var sb strings.Builder
	sb.WriteString("// Code generated by cmd/codegen. DO NOT EDIT.\n\n")
	sb.WriteString("package glue\n")
	for n := 2; n <= count; n++ {
		sb.WriteString("\n")
		writeCombine(&sb, n)
	}
	for n := 3; n <= count; n++ {
		sb.WriteString("\n")
		writeTuple(&sb, n)
		sb.WriteString("\n")
		writeCombineUpdatables(&sb, n)
	}
	return sb.String()
}

func writeCombine(sb *strings.Builder, n int) {
	fmt.Fprintf(sb, "// Combine%d returns an observable whose value is fn applied to the values of\n", n)
	fmt.Fprintf(sb, "// arg0 through arg%d. It recomputes whenever any of them changes.\n", n-1)
	fmt.Fprintf(sb, "func Combine%d[%s, O any](\n", n, prefixedStrings("T", n))
	for i := 0; i < n; i++ {
		fmt.Fprintf(sb, "\targ%d ObservableValue[T%d],\n", i, i)
	}
	fmt.Fprintf(sb, "\tfn func(%s) O,\n", prefixedStrings("T", n))
	sb.WriteString(") ObservableValue[O] {\n")
	sb.WriteString("\tanyFn := func(args ...any) O {\n")
	sb.WriteString("\t\treturn fn(\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(sb, "\t\t\tas[T%d](args[%d]),\n", i, i)
	}
	sb.WriteString("\t\t)\n")
	sb.WriteString("\t}\n")
	sb.WriteString("\treturn newComposite(anyFn,\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(sb, "\t\terase(arg%d),\n", i)
	}
	sb.WriteString("\t)\n")
	sb.WriteString("}\n")
}

func writeTuple(sb *strings.Builder, n int) {
	fmt.Fprintf(sb, "// Tuple%d is the value of an updatable composite of %d sources.\n", n, n)
	fmt.Fprintf(sb, "type Tuple%d[%s any] struct {\n", n, prefixedStrings("T", n))
	for i := 0; i < n; i++ {
		fmt.Fprintf(sb, "\tV%d T%d\n", i, i)
	}
	sb.WriteString("}\n")
}

// nestedPair spells out the right-nested Pair type over T{from}..T{n-1}.
func nestedPair(from, n int) string {
	if from == n-1 {
		return fmt.Sprintf("T%d", from)
	}
	return fmt.Sprintf("Pair[T%d, %s]", from, nestedPair(from+1, n))
}

// nestedCall spells out fn applied right-nested over prefix{from}..prefix{n-1}.
func nestedCall(fn, prefix string, from, n int) string {
	if from == n-1 {
		return fmt.Sprintf("%s%d", prefix, from)
	}
	return fmt.Sprintf("%s(%s%d, %s)", fn, prefix, from, nestedCall(fn, prefix, from+1, n))
}

// pairPath selects component i of a right-nested pair of n components.
func pairPath(i, n int) string {
	path := "p" + strings.Repeat(".Second", i)
	if i < n-1 {
		path += ".First"
	}
	return path
}

func writeCombineUpdatables(sb *strings.Builder, n int) {
	tuple := fmt.Sprintf("Tuple%d[%s]", n, prefixedStrings("T", n))
	nested := nestedPair(0, n)

	fmt.Fprintf(sb, "// CombineUpdatables%d returns an updatable tuple of arg0 through arg%d.\n", n, n-1)
	sb.WriteString("// Setting the tuple writes every source inside one combined transaction.\n")
	fmt.Fprintf(sb, "func CombineUpdatables%d[%s any](\n", n, prefixedStrings("T", n))
	for i := 0; i < n; i++ {
		fmt.Fprintf(sb, "\targ%d UpdatableValue[T%d],\n", i, i)
	}
	fmt.Fprintf(sb, ") UpdatableValue[%s] {\n", tuple)
	fmt.Fprintf(sb, "\tnested := %s\n", nestedCall("CombineUpdatables", "arg", 0, n))
	sb.WriteString("\treturn MapUpdatable(nested,\n")
	fmt.Fprintf(sb, "\t\tfunc(p %s) %s {\n", nested, tuple)
	fmt.Fprintf(sb, "\t\t\treturn %s{\n", tuple)
	for i := 0; i < n; i++ {
		fmt.Fprintf(sb, "\t\t\t\tV%d: %s,\n", i, pairPath(i, n))
	}
	sb.WriteString("\t\t\t}\n")
	sb.WriteString("\t\t},\n")
	fmt.Fprintf(sb, "\t\tfunc(t %s) %s {\n", tuple, nested)
	fmt.Fprintf(sb, "\t\t\treturn %s\n", nestedCall("pairOf", "t.V", 0, n))
	sb.WriteString("\t\t},\n")
	sb.WriteString("\t)\n")
	sb.WriteString("}\n")
}
