package bootstrap

const (
	DefaultNumSamples = 1000

	DefaultLowerQuantile = 0.05
	DefaultUpperQuantile = 0.95
)
