package diag

func newError(kind Kind, text string) Message {
	return Message{Kind: kind, Severity: SEVERITY_ERROR, Text: text}
}

func newWarning(kind Kind, text string) Message {
	return Message{Kind: kind, Severity: SEVERITY_WARNING, Text: text}
}

func SyntaxError() Message {
	return newError(KIND_SYNTAX_ERROR, f("syntax error in effective address"))
}

func InvalidToken(text string) Message {
	return newError(KIND_INVALID_TOKEN, f("invalid token: %v", text))
}

func TrailingText(text string) Message {
	return newError(KIND_SYNTAX_ERROR, f("unexpected text after operand: %v", text))
}

func WrongArity() Message {
	return newError(KIND_WRONG_ARITY, f("wrong number of operands"))
}

func AddressingModeNotAllowed() Message {
	return newError(KIND_ADDRESSING_MODE_NOT_ALLOWED, f("addressing mode not allowed"))
}

func ValueOutOfRange(value int64) Message {
	return newWarning(KIND_VALUE_OUT_OF_RANGE, f("value out of range: %#x", value))
}

func BranchOutOfRange() Message {
	return newError(KIND_BRANCH_OUT_OF_RANGE, f("relative branch target out of range"))
}

func InvalidCondition(cond string) Message {
	return newError(KIND_INVALID_CONDITION, f("invalid condition: %v", cond))
}

func InvalidImmediateMode() Message {
	return newError(KIND_INVALID_IMMEDIATE_MODE, f("operand to IM must be either 0, 1 or 2"))
}

func InvalidRestartTarget(target uint64) Message {
	return newError(KIND_INVALID_RESTART_TARGET,
		f("invalid target for RST instruction (the address must be 0, 8, 16, 24, 32, 40, 48 or 56, but was %#x)", target))
}

func OverflowInLiteral(text string) Message {
	return newWarning(KIND_OVERFLOW_IN_LITERAL, f("overflow in literal: %v", text))
}

func LossyConversion(value float64) Message {
	return newWarning(KIND_LOSSY_CONVERSION, f("lossy conversion of %v to integer", value))
}

func StringTooLong(text string) Message {
	return newWarning(KIND_STRING_TOO_LONG, f("string too long: %q", text))
}

func FunctionNotInteger() Message {
	return newError(KIND_FUNCTION_NOT_INTEGER, f("function cannot be converted to integer"))
}

func UndefinedSymbol(name string) Message {
	return newError(KIND_UNDEFINED_SYMBOL, f("undefined symbol: %v", name))
}

func UnknownMnemonic(name string) Message {
	return newError(KIND_UNKNOWN_MNEMONIC, f("unknown mnemonic: %v", name))
}

func DivisionByZero() Message {
	return newError(KIND_DIVISION_BY_ZERO, f("division by zero"))
}

func NotAFunction() Message {
	return newError(KIND_NOT_A_FUNCTION, f("value is not a function"))
}

func FunctionFailed(name string, err error) Message {
	return newError(KIND_FUNCTION_FAILED, f("%v: %v", name, err))
}

func NotIndexable() Message {
	return newError(KIND_NOT_INDEXABLE, f("value cannot be indexed"))
}

func DuplicateLabel(name string) Message {
	return newError(KIND_DUPLICATE_LABEL, f("label already defined: %v", name))
}

func MissingLabel(directive string) Message {
	return newError(KIND_MISSING_LABEL, f("%v requires a label", directive))
}
