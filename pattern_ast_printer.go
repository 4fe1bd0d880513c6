package rematch

import (
	"strconv"
	"strings"
)

type PatternFormatToken int

const (
	PatternFormatToken_None PatternFormatToken = iota
	PatternFormatToken_Range
	PatternFormatToken_Operator
	PatternFormatToken_Operand
)

// patternPrinterTheme is a map from the tokens available for pretty
// printing a pattern to an ASCII color.  These colors are supposed to
// fair well on both dark and light terminal settings
var patternPrinterTheme = map[PatternFormatToken]string{
	PatternFormatToken_None:     "\033[0m",          // reset
	PatternFormatToken_Range:    "\033[1;31;5;228m", // orange
	PatternFormatToken_Operator: "\033[1;38;5;99m",  // purple
	PatternFormatToken_Operand:  "\033[1;38;5;127m", // pink
}

// PrettyString returns the box-drawing representation of a pattern
// tree, one node per line
func PrettyString(p Pattern) string {
	return ppPattern(p, func(input string, _ PatternFormatToken) string {
		return input
	})
}

// ColorString is PrettyString with ANSI colors applied to each token
func ColorString(p Pattern) string {
	return ppPattern(p, func(input string, token PatternFormatToken) string {
		return patternPrinterTheme[token] + input + patternPrinterTheme[PatternFormatToken_None]
	})
}

func ppPattern(p Pattern, format FormatFunc[PatternFormatToken]) string {
	pp := &patternPrinter{newTreePrinter(format)}
	pp.visit(p)
	return pp.output.String()
}

type patternPrinter struct {
	*treePrinter[PatternFormatToken]
}

func (pp *patternPrinter) visit(n Pattern) {
	switch n := n.(type) {
	case *SequenceNode:
		pp.writeOperator("Sequence", "")
		pp.writeRange(n, len(n.Items) > 0)
		pp.writeChildren(n.Items)
	case *ChoiceNode:
		pp.writeOperator("Choice", "")
		pp.writeRange(n, len(n.Items) > 0)
		pp.writeChildren(n.Items)
	case *RepeatNode:
		pp.writeOperator("Repeat", n.bounds())
		pp.writeRange(n, true)
		pp.writeChildren([]Pattern{n.Expr})
	case *GroupNode:
		pp.writeOperator("Group", strconv.Itoa(n.Index))
		pp.writeRange(n, true)
		pp.writeChildren([]Pattern{n.Expr})
	case *LiteralNode:
		pp.writeOperator("Literal", string(n.Value))
		pp.writeRange(n, false)
	case *AnyNode:
		pp.writeOperator("Any", "")
		pp.writeRange(n, false)
	case *WordCharNode:
		pp.writeOperator("WordChar", "")
		pp.writeRange(n, false)
	case *ClassNode:
		pp.writeOperator("Class", n.operand())
		pp.writeRange(n, false)
	case *StartAnchorNode:
		pp.writeOperator("StartAnchor", "")
		pp.writeRange(n, false)
	case *EndAnchorNode:
		pp.writeOperator("EndAnchor", "")
		pp.writeRange(n, false)
	case *BackrefNode:
		pp.writeOperator("Backreference", strconv.Itoa(n.Index))
		pp.writeRange(n, false)
	}
}

func (pp *patternPrinter) writeOperator(name, operand string) {
	pp.writef(name, PatternFormatToken_Operator)
	if operand != "" {
		pp.write("[")
		pp.writef(escapeOperand(operand), PatternFormatToken_Operand)
		pp.write("]")
	}
}

func (pp *patternPrinter) writeRange(n Pattern, hasChildren bool) {
	pp.write(" (")
	pp.writef(n.Range().String(), PatternFormatToken_Range)
	pp.write(")")
	if hasChildren {
		pp.write("\n")
	}
}

func (pp *patternPrinter) writeChildren(items []Pattern) {
	for i, item := range items {
		switch {
		case i == len(items)-1:
			pp.pwrite("└── ")
			pp.indent("    ")
			pp.visit(item)
			pp.unindent()
		default:
			pp.pwrite("├── ")
			pp.indent("│   ")
			pp.visit(item)
			pp.unindent()
			pp.write("\n")
		}
	}
}

var operandSanitizer = strings.NewReplacer(
	string('\n'), `\n`,
	string('\r'), `\r`,
	string('\t'), `\t`,
)

func escapeOperand(s string) string {
	return operandSanitizer.Replace(s)
}
