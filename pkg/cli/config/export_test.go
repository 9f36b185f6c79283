package config

// NewGeminiForTest creates a Gemini config for testing purposes
func NewGeminiForTest(projectID, location string) *Gemini {
	return &Gemini{projectID: projectID, location: location}
}

func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{level: level, format: format, output: output}
}

func NewRepositoryForTest(backend, projectID string) *Repository {
	return &Repository{backend: backend, projectID: projectID}
}

func NewCatalogForTest(path string) *Catalog {
	return &Catalog{path: path}
}

func NewLocationForTest(name string) *Location {
	return &Location{name: name}
}

func NewStorageForTest(bucket string) *Storage {
	return &Storage{bucket: bucket}
}

func NewSentryForTest(dsn string) *Sentry {
	return &Sentry{dsn: dsn}
}
