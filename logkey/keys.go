package logkey

const (
	Service   = "service"
	Component = "component"

	RunID = "run.id"

	RNGAlgorithm = "rng.algorithm"
	RNGSeed      = "rng.seed"

	DomainCount   = "domain.count"
	DomainWritten = "domain.written"

	OutputPath = "output.path"
	OutputGzip = "output.gzip"

	Duration = "duration"
	Error    = "error"
)
