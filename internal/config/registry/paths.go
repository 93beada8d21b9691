package registry

// Option paths.
const (
	BoundsMin        = "bounds.min"
	BoundsMinEnabled = "bounds.minEnabled"
	BoundsMax        = "bounds.max"
	BoundsMaxEnabled = "bounds.maxEnabled"

	FormatStyle                    = "format.style"
	FormatMaxIntegerDigits         = "format.maxIntegerDigits"
	FormatMaxIntegerDigitsEnabled  = "format.maxIntegerDigitsEnabled"
	FormatMaxFractionDigits        = "format.maxFractionDigits"
	FormatMaxFractionDigitsEnabled = "format.maxFractionDigitsEnabled"
	FormatRounding                 = "format.rounding"
	FormatLocale                   = "format.locale"
	FormatCurrency                 = "format.currency"
	FormatDecimalSeparator         = "format.decimalSeparator"
	FormatGroupSeparator           = "format.groupSeparator"
	FormatGroupSize                = "format.groupSize"
	FormatPlaceholder              = "format.placeholder"

	DialogExpressionShown          = "dialog.expressionShown"
	DialogExpressionEditable       = "dialog.expressionEditable"
	DialogAnswerButtonShown        = "dialog.answerButtonShown"
	DialogSignButtonShown          = "dialog.signButtonShown"
	DialogOrderOfOperationsApplied = "dialog.orderOfOperationsApplied"
	DialogEvaluateOnOperation      = "dialog.evaluateOnOperation"
	DialogZeroShownWhenNoValue     = "dialog.zeroShownWhenNoValue"
	DialogNumpadLayout             = "dialog.numpadLayout"
)

// Section names.
const (
	SectionBounds = "bounds"
	SectionFormat = "format"
	SectionDialog = "dialog"
)
