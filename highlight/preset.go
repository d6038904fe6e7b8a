package highlight

// DefaultPreset is the class-style preset from spec §6: every public tag
// maps to a stable "cmt-<tagname>" class, with a handful of composite
// mappings that fold several related tags onto one class.
var DefaultPreset = mustPreset()

func mustPreset() *HighlightStyle {
	entries := []StyleEntry{
		{Tags: LineComment, Class: "cmt-lineComment"},
		{Tags: BlockComment, Class: "cmt-blockComment"},
		{Tags: DocComment, Class: "cmt-docComment"},
		{Tags: Comment, Class: "cmt-comment"},

		{Tags: VariableName, Class: "cmt-variableName"},
		{Tags: TypeName, Class: "cmt-typeName"},
		{Tags: TagName, Class: "cmt-tagName"},
		{Tags: PropertyName, Class: "cmt-propertyName"},
		{Tags: AttributeName, Class: "cmt-attributeName"},
		{Tags: ClassName, Class: "cmt-className"},
		{Tags: LabelName, Class: "cmt-labelName"},
		{Tags: Namespace, Class: "cmt-namespace"},
		{Tags: MacroName, Class: "cmt-macroName"},
		{Tags: Name, Class: "cmt-name"},

		{Tags: []*Tag{Regexp, Escape, Special.Apply(String)}, Class: "cmt-string2"},
		{Tags: String, Class: "cmt-string"},
		{Tags: DocString, Class: "cmt-docString"},
		{Tags: Character, Class: "cmt-character"},
		{Tags: Integer, Class: "cmt-integer"},
		{Tags: Float, Class: "cmt-float"},
		{Tags: Number, Class: "cmt-number"},
		{Tags: Bool, Class: "cmt-bool"},
		{Tags: Color, Class: "cmt-color"},
		{Tags: URL, Class: "cmt-url"},
		{Tags: Literal, Class: "cmt-literal"},

		{Tags: Self, Class: "cmt-self"},
		{Tags: Null, Class: "cmt-null"},
		{Tags: Atom, Class: "cmt-atom"},
		{Tags: Unit, Class: "cmt-unit"},
		{Tags: ModifierKeyword, Class: "cmt-modifier"},
		{Tags: OperatorKeyword, Class: "cmt-operatorKeyword"},
		{Tags: ControlKeyword, Class: "cmt-controlKeyword"},
		{Tags: ModuleKeyword, Class: "cmt-moduleKeyword"},
		{Tags: Keyword, Class: "cmt-keyword"},

		{Tags: DerefOperator, Class: "cmt-derefOperator"},
		{Tags: ArithmeticOperator, Class: "cmt-arithmeticOperator"},
		{Tags: LogicOperator, Class: "cmt-logicOperator"},
		{Tags: BitwiseOperator, Class: "cmt-bitwiseOperator"},
		{Tags: CompareOperator, Class: "cmt-compareOperator"},
		{Tags: UpdateOperator, Class: "cmt-updateOperator"},
		{Tags: DefinitionOperator, Class: "cmt-definitionOperator"},
		{Tags: TypeOperator, Class: "cmt-typeOperator"},
		{Tags: ControlOperator, Class: "cmt-controlOperator"},
		{Tags: Operator, Class: "cmt-operator"},

		{Tags: Separator, Class: "cmt-separator"},
		{Tags: AngleBracket, Class: "cmt-angleBracket"},
		{Tags: SquareBracket, Class: "cmt-squareBracket"},
		{Tags: Paren, Class: "cmt-paren"},
		{Tags: Brace, Class: "cmt-brace"},
		{Tags: Bracket, Class: "cmt-bracket"},
		{Tags: Punctuation, Class: "cmt-punctuation"},

		{Tags: Heading1, Class: "cmt-heading1"},
		{Tags: Heading2, Class: "cmt-heading2"},
		{Tags: Heading3, Class: "cmt-heading3"},
		{Tags: Heading4, Class: "cmt-heading4"},
		{Tags: Heading5, Class: "cmt-heading5"},
		{Tags: Heading6, Class: "cmt-heading6"},
		{Tags: Heading, Class: "cmt-heading"},
		{Tags: ContentSeparator, Class: "cmt-contentSeparator"},
		{Tags: List, Class: "cmt-list"},
		{Tags: Quote, Class: "cmt-quote"},
		{Tags: Emphasis, Class: "cmt-emphasis"},
		{Tags: Strong, Class: "cmt-strong"},
		{Tags: Link, Class: "cmt-link"},
		{Tags: Monospace, Class: "cmt-monospace"},
		{Tags: Strikethrough, Class: "cmt-strikethrough"},
		{Tags: Content, Class: "cmt-content"},

		{Tags: Inserted, Class: "cmt-inserted"},
		{Tags: Deleted, Class: "cmt-deleted"},
		{Tags: Changed, Class: "cmt-changed"},
		{Tags: Invalid, Class: "cmt-invalid"},

		{Tags: DocumentMeta, Class: "cmt-documentMeta"},
		{Tags: Annotation, Class: "cmt-annotation"},
		{Tags: ProcessingInstruction, Class: "cmt-processingInstruction"},
		{Tags: Meta, Class: "cmt-meta"},

		{Tags: Definition.Apply(VariableName), Class: "cmt-variableName cmt-definition"},
		{Tags: Local.Apply(VariableName), Class: "cmt-variableName cmt-local"},
		{Tags: Function.Apply(VariableName), Class: "cmt-variableName cmt-function"},
		{Tags: Definition.Apply(PropertyName), Class: "cmt-propertyName cmt-definition"},
		{Tags: Constant.Apply(VariableName), Class: "cmt-variableName cmt-constant"},
		{Tags: Standard.Apply(Name), Class: "cmt-name cmt-standard"},
	}
	s, err := DefineHighlightStyle(entries, HighlightStyleOptions{})
	if err != nil {
		panic(err)
	}
	return s
}
