package model

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

// IsProduction reports whether name denotes a production deployment.
func IsProduction(name string) bool {
	return name == EnvironmentProduction
}
