package value

import "strings"

// Pr renders v to text (spec §4.2). When readable is true, strings are
// quoted and escaped so the output can be read back by the reader;
// when false, strings are emitted raw (the "display" form used by
// `println`/`str`).
func Pr(v Value, readable bool) string {
	var sb strings.Builder
	pr(&sb, v, readable)
	return sb.String()
}

func pr(sb *strings.Builder, v Value, readable bool) {
	switch v := v.(type) {
	case Nil:
		sb.WriteString("nil")
	case Bool:
		sb.WriteString(v.String())
	case Int:
		sb.WriteString(v.String())
	case Symbol:
		sb.WriteString(string(v))
	case Keyword:
		sb.WriteByte(':')
		sb.WriteString(string(v))
	case String:
		if readable {
			prString(sb, string(v))
		} else {
			sb.WriteString(string(v))
		}
	case *List:
		sb.WriteByte('(')
		prItems(sb, v.Items, readable)
		sb.WriteByte(')')
	case *Vector:
		sb.WriteByte('[')
		prItems(sb, v.Items, readable)
		sb.WriteByte(']')
	case *HashMap:
		sb.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			pr(sb, k, readable)
			sb.WriteByte(' ')
			val, _ := v.Get(k)
			pr(sb, val, readable)
		}
		sb.WriteByte('}')
	case *Atom:
		sb.WriteString("(atom ")
		pr(sb, v.Val, readable)
		sb.WriteByte(')')
	case *Builtin:
		sb.WriteString("#<function>")
	case *Closure:
		sb.WriteString("#<function>")
	default:
		sb.WriteString("#<unknown>")
	}
}

func prItems(sb *strings.Builder, items []Value, readable bool) {
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		pr(sb, it, readable)
	}
}

// prString writes s double-quoted with `"`, `\n`, and `\` escaped
// (spec §4.2).
func prString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}
