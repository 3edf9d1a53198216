package searchpath

import "os"

// EnvGetter abstracts environment variable access for testability.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads from the process environment.
type RealEnvGetter struct{}

// LookupEnv returns the value of the variable and whether it is set.
func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
