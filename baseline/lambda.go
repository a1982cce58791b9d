package baseline

import "strings"

// LambdaRange describes the recommended smoothness range for a technique.
// The range scopes interactive parameter controls; it does not constrain the
// estimators themselves.
type LambdaRange struct {
	Min     float64
	Max     float64
	Default float64
}

var lambdaByTechnique = map[string]LambdaRange{
	"ir":       {Min: 1e3, Max: 1e8, Default: 1e5},
	"infrared": {Min: 1e3, Max: 1e8, Default: 1e5},
	"raman":    {Min: 1e4, Max: 1e9, Default: 1e6},
	"uv-vis":   {Min: 1e2, Max: 1e7, Default: 1e4},
	"uv":       {Min: 1e2, Max: 1e7, Default: 1e4},
	"vis":      {Min: 1e2, Max: 1e7, Default: 1e4},
	"libs":     {Min: 1e3, Max: 1e8, Default: 1e5},
}

// RecommendedLambda returns the recommended smoothness range for the given
// technique, falling back to a broad general-purpose range for unknown
// techniques.
func RecommendedLambda(technique string) LambdaRange {
	if r, ok := lambdaByTechnique[strings.ToLower(strings.TrimSpace(technique))]; ok {
		return r
	}

	return LambdaRange{Min: 1e2, Max: 1e9, Default: 1e5}
}
