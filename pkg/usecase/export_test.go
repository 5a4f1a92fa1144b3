package usecase

// Export unexported functions for testing
var (
	ParseFlakeInputsForTest     = parseFlakeInputs
	ParseExcludePatternsForTest = parseExcludePatterns
)
