package render

import "os"

// ExecutionEnvironment tells the renderer whether it runs on a managed (serverless) runtime,
// where no system browser is installed and a bundled one must be resolved.
type ExecutionEnvironment interface {
	IsManaged() bool
}

// Managed is a fixed ExecutionEnvironment.
type Managed bool

func (m Managed) IsManaged() bool {
	return bool(m)
}

var managedMarkers = []struct {
	key   string
	value string
}{
	{key: "AWS_LAMBDA_FUNCTION_NAME"},
	{key: "VERCEL"},
	{key: "NETLIFY"},
	{key: "FUNCTION_TARGET"},
	{key: "GAE_ENV", value: "standard"},
}

type processEnvironment struct {
	lookup func(string) (string, bool)
}

// EnvironmentFromEnv detects a managed runtime from the variables those platforms set.
func EnvironmentFromEnv() ExecutionEnvironment {
	return processEnvironment{lookup: os.LookupEnv}
}

func (e processEnvironment) IsManaged() bool {
	for _, m := range managedMarkers {
		v, ok := e.lookup(m.key)
		if !ok || v == "" {
			continue
		}

		if m.value == "" || m.value == v {
			return true
		}
	}

	return false
}
